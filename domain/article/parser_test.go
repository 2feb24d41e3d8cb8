package article

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONL(t *testing.T) {
	t.Run("parses valid records preserving order", func(t *testing.T) {
		text := `{"date_id":"20240101","named_entities":["東京","大阪"],"content":"first"}
{"date_id":"20240102","named_entities":["京都"],"content":"second"}`

		articles := ParseJSONL(text)
		require.Len(t, articles, 2)
		assert.Equal(t, "20240101", articles[0].DateKey)
		assert.Equal(t, []string{"東京", "大阪"}, articles[0].Entities)
		assert.Equal(t, "first", articles[0].Content)
		assert.Equal(t, "20240102", articles[1].DateKey)
	})

	t.Run("skips blank and malformed lines without aborting", func(t *testing.T) {
		text := "\n" +
			`not json at all` + "\n" +
			`{"date_id":"20240101","named_entities":["A"],"content":"ok"}` + "\n" +
			"   \n" +
			`{"broken`

		articles := ParseJSONL(text)
		require.Len(t, articles, 1)
		assert.Equal(t, "ok", articles[0].Content)
	})

	t.Run("skips records missing required fields", func(t *testing.T) {
		tests := []struct {
			name string
			line string
		}{
			{"missing date", `{"named_entities":["A"],"content":"x"}`},
			{"missing entities", `{"date_id":"20240101","content":"x"}`},
			{"missing content", `{"date_id":"20240101","named_entities":["A"]}`},
			{"non-string content", `{"date_id":"20240101","named_entities":["A"],"content":42}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Empty(t, ParseJSONL(tt.line))
			})
		}
	})

	t.Run("coerces numeric day identifiers to strings", func(t *testing.T) {
		articles := ParseJSONL(`{"date_id":20240101,"named_entities":["A"],"content":"x"}`)
		require.Len(t, articles, 1)
		assert.Equal(t, "20240101", articles[0].DateKey)
	})

	t.Run("deduplicates entities preserving first-seen order", func(t *testing.T) {
		articles := ParseJSONL(`{"date_id":"20240101","named_entities":["B","A","B","","A"],"content":"x"}`)
		require.Len(t, articles, 1)
		assert.Equal(t, []string{"B", "A"}, articles[0].Entities)
	})

	t.Run("non-string entities degrade to empty and are dropped", func(t *testing.T) {
		articles := ParseJSONL(`{"date_id":"20240101","named_entities":["A",7,null],"content":"x"}`)
		require.Len(t, articles, 1)
		assert.Equal(t, []string{"A"}, articles[0].Entities)
	})

	t.Run("carries optional fields through", func(t *testing.T) {
		line := `{"date_id":"20240101","named_entities":["A"],"content":"x","headline":"h","news_item_id":"item-1",` +
			`"subject_codes":[{"subject_matter":"政治"}],"questions":[{"question":"Q?","choices":["a","b"]}]}`
		articles := ParseJSONL(line)
		require.Len(t, articles, 1)

		a := articles[0]
		assert.Equal(t, "h", a.Headline)
		assert.Equal(t, "item-1", a.ItemID)
		require.Len(t, a.SubjectCodes, 1)
		assert.Equal(t, "政治", a.SubjectCodes[0].SubjectMatter)
		require.Len(t, a.Questions, 1)
		assert.Equal(t, FreeText("Q?"), a.Questions[0].Question)
	})
}

func TestArticlePredicates(t *testing.T) {
	long := Article{Content: string(make([]byte, SubstantialContentLength+1))}
	short := Article{Content: "short"}

	assert.True(t, long.Substantial())
	assert.False(t, short.Substantial())

	a := Article{Entities: []string{"東京", "大阪"}}
	assert.True(t, a.Mentions("大阪"))
	assert.False(t, a.Mentions("京都"))

	assert.False(t, a.HasQuestions())
	a.Questions = []RawQuestion{{Question: "Q"}}
	assert.True(t, a.HasQuestions())
}
