package article

import "encoding/json"

// SubstantialContentLength is the minimum content length (exclusive) for an
// article to qualify as a featured read or node-detail source.
const SubstantialContentLength = 50

// SubjectCode is one subject-matter label attached to an article. Labels may
// repeat within a single article; repeats count separately during subject
// aggregation.
type SubjectCode struct {
	SubjectMatter string `json:"subject_matter,omitempty"`
}

// FreeText decodes a JSON value that is expected to be a string. Non-string
// values decode to the empty string so downstream filters drop the entry
// instead of failing the whole record.
type FreeText string

// UnmarshalJSON implements lenient string decoding
func (t *FreeText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*t = ""
		return nil
	}
	*t = FreeText(s)
	return nil
}

// RawQuestion is the free-form question record carried on an article. The
// upstream generator guarantees that the first choice is the correct one;
// normalization relies on that contract rather than inferring correctness.
type RawQuestion struct {
	Question FreeText   `json:"question"`
	Choices  []FreeText `json:"choices"`
}

// Article is one news record. Created once at parse time and immutable
// thereafter; a new file load replaces the whole set.
type Article struct {
	DateKey      string        `json:"date_id"`
	Entities     []string      `json:"named_entities"`
	Content      string        `json:"content"`
	Headline     string        `json:"headline,omitempty"`
	SubjectCodes []SubjectCode `json:"subject_codes,omitempty"`
	Questions    []RawQuestion `json:"questions,omitempty"`
	ItemID       string        `json:"news_item_id,omitempty"`
}

// Substantial reports whether the article body is long enough to display
func (a Article) Substantial() bool {
	return len(a.Content) > SubstantialContentLength
}

// Mentions reports whether the article carries the given entity
func (a Article) Mentions(entity string) bool {
	for _, e := range a.Entities {
		if e == entity {
			return true
		}
	}
	return false
}

// HasQuestions reports whether the article carries at least one raw question
func (a Article) HasQuestions() bool {
	return len(a.Questions) > 0
}
