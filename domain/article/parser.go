package article

import (
	"encoding/json"
	"strings"
)

// wireArticle mirrors the JSONL record layout. Pointer fields distinguish
// absent required fields from present-but-empty ones.
type wireArticle struct {
	DateID        json.RawMessage `json:"date_id"`
	NamedEntities *[]FreeText     `json:"named_entities"`
	Content       *string         `json:"content"`
	Headline      string          `json:"headline"`
	SubjectCodes  []SubjectCode   `json:"subject_codes"`
	Questions     []RawQuestion   `json:"questions"`
	NewsItemID    string          `json:"news_item_id"`
}

// ParseJSONL decodes newline-delimited article records from raw text.
// Ingestion is best-effort: blank lines, decode failures, and records missing
// a day identifier, an entities array, or a string content field are skipped
// without aborting the parse. Input order is preserved. Callers must treat an
// empty result as the empty-dataset failure state.
func ParseJSONL(text string) []Article {
	lines := strings.Split(text, "\n")
	parsed := make([]Article, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var wire wireArticle
		if err := json.Unmarshal([]byte(line), &wire); err != nil {
			continue
		}
		dayKey := coerceDayKey(wire.DateID)
		if dayKey == "" || wire.NamedEntities == nil || wire.Content == nil {
			continue
		}
		parsed = append(parsed, Article{
			DateKey:      dayKey,
			Entities:     dedupeEntities(*wire.NamedEntities),
			Content:      *wire.Content,
			Headline:     wire.Headline,
			SubjectCodes: wire.SubjectCodes,
			Questions:    wire.Questions,
			ItemID:       wire.NewsItemID,
		})
	}
	return parsed
}

// coerceDayKey accepts the day identifier as either a JSON string or a JSON
// number and returns its string form. Upstream files carry numeric date_id
// values in places.
func coerceDayKey(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// dedupeEntities drops blank and repeated entity names, preserving first-seen
// order. An entity mentioned twice in one article counts once.
func dedupeEntities(raw []FreeText) []string {
	seen := make(map[string]struct{}, len(raw))
	entities := make([]string, 0, len(raw))
	for _, e := range raw {
		name := string(e)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		entities = append(entities, name)
	}
	return entities
}
