package quiz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Igaki12/news-network-api/domain/article"
	"github.com/Igaki12/news-network-api/domain/graph"
	apperrors "github.com/Igaki12/news-network-api/pkg/errors"
)

func questionedArticle(entity, itemID string) article.Article {
	return article.Article{
		DateKey:  "20240101",
		Entities: []string{entity},
		Content:  strings.Repeat("x", article.SubstantialContentLength+1),
		ItemID:   itemID,
		Questions: []article.RawQuestion{
			{Question: article.FreeText("Q about " + entity), Choices: []article.FreeText{"right", "wrong1", "wrong2"}},
		},
	}
}

func metaWithQuestions(entities int) map[string]graph.NodeMeta {
	meta := make(map[string]graph.NodeMeta, entities)
	for i := 0; i < entities; i++ {
		id := fmt.Sprintf("E%d", i)
		meta[id] = graph.NodeMeta{
			ID:       id,
			Count:    1,
			Articles: []article.Article{questionedArticle(id, fmt.Sprintf("item-%d", i))},
		}
	}
	return meta
}

func TestPickRandom(t *testing.T) {
	t.Run("returns a normalized question when one exists", func(t *testing.T) {
		s := NewSelectorSeeded(1)
		pick, err := s.PickRandom("20240101", metaWithQuestions(3))
		require.NoError(t, err)
		require.NotNil(t, pick)
		assert.True(t, strings.HasPrefix(pick.Question.Prompt, "Q about "))
		assert.Equal(t, "right", pick.Question.CorrectText)
		assert.True(t, pick.Article.Mentions(pick.EntityID))
	})

	t.Run("single questioned entity is always pickable", func(t *testing.T) {
		meta := metaWithQuestions(1)
		for seed := int64(0); seed < 20; seed++ {
			s := NewSelectorSeeded(seed)
			pick, err := s.PickRandom("20240101", meta)
			require.NoError(t, err)
			assert.Equal(t, "E0", pick.EntityID)
		}
	})

	t.Run("fails when no entity carries a question", func(t *testing.T) {
		meta := map[string]graph.NodeMeta{
			"A": {ID: "A", Articles: []article.Article{{Content: "no questions"}}},
		}
		s := NewSelectorSeeded(1)
		_, err := s.PickRandom("20240101", meta)
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNoQuestion))
	})

	t.Run("fails on empty metadata", func(t *testing.T) {
		s := NewSelectorSeeded(1)
		_, err := s.PickRandom("20240101", nil)
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNoQuestion))
	})

	t.Run("skips entities whose questions never normalize", func(t *testing.T) {
		broken := questionedArticle("A", "item-a")
		broken.Questions = []article.RawQuestion{{Question: "", Choices: []article.FreeText{"x"}}}
		meta := map[string]graph.NodeMeta{
			"A": {ID: "A", Articles: []article.Article{broken}},
			"B": metaWithQuestions(2)["E1"],
		}
		s := NewSelectorSeeded(1)
		pick, err := s.PickRandom("20240101", meta)
		require.NoError(t, err)
		assert.Equal(t, "E1", pick.EntityID)
	})
}

func TestBuildExam(t *testing.T) {
	t.Run("assembles exactly ten questions from ten entities", func(t *testing.T) {
		s := NewSelectorSeeded(7)
		questions, err := s.BuildExam("20240101", metaWithQuestions(ExamSize))
		require.NoError(t, err)
		require.Len(t, questions, ExamSize)

		seenIDs := make(map[string]struct{})
		seenEntities := make(map[string]struct{})
		for _, q := range questions {
			assert.True(t, strings.HasPrefix(q.ID, "cbt-"))
			seenIDs[q.ID] = struct{}{}
			seenEntities[q.EntityID] = struct{}{}
		}
		assert.Len(t, seenIDs, ExamSize)
		assert.Len(t, seenEntities, ExamSize)
	})

	t.Run("caps at ten even with more candidates", func(t *testing.T) {
		s := NewSelectorSeeded(7)
		questions, err := s.BuildExam("20240101", metaWithQuestions(25))
		require.NoError(t, err)
		assert.Len(t, questions, ExamSize)
	})

	t.Run("fails below the exam floor without partial batches", func(t *testing.T) {
		s := NewSelectorSeeded(7)
		_, err := s.BuildExam("20240101", metaWithQuestions(7))
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInsufficientQuestions))
	})

	t.Run("reshuffled choices keep the same set and correctness", func(t *testing.T) {
		s := NewSelectorSeeded(7)
		questions, err := s.BuildExam("20240101", metaWithQuestions(ExamSize))
		require.NoError(t, err)

		for _, q := range questions {
			require.Len(t, q.Choices, 3)
			correct := 0
			texts := make(map[string]struct{})
			for _, c := range q.Choices {
				texts[c.Text] = struct{}{}
				if c.IsCorrect {
					correct++
					assert.Equal(t, q.CorrectText, c.Text)
				}
			}
			assert.Equal(t, 1, correct)
			assert.Len(t, texts, 3)
		}
	})
}

func TestPickFeatured(t *testing.T) {
	long := func(n int, itemID string) article.Article {
		return article.Article{
			Content: strings.Repeat("x", n),
			ItemID:  itemID,
		}
	}

	t.Run("never returns the excluded article", func(t *testing.T) {
		pool := []article.Article{
			long(100, "X"),
			long(90, "Y"),
		}
		for seed := int64(0); seed < 20; seed++ {
			s := NewSelectorSeeded(seed)
			picked := s.PickFeatured(pool, "X")
			require.NotNil(t, picked)
			assert.Equal(t, "Y", picked.ItemID)
		}
	})

	t.Run("filters out short articles", func(t *testing.T) {
		pool := []article.Article{
			long(10, "short"),
			long(200, "long"),
		}
		s := NewSelectorSeeded(1)
		picked := s.PickFeatured(pool, "")
		require.NotNil(t, picked)
		assert.Equal(t, "long", picked.ItemID)
	})

	t.Run("picks only from the five longest", func(t *testing.T) {
		pool := make([]article.Article, 0, 8)
		for i := 0; i < 8; i++ {
			pool = append(pool, long(60+i*10, fmt.Sprintf("item-%d", i)))
		}
		// items 3..7 are the five longest
		for seed := int64(0); seed < 30; seed++ {
			s := NewSelectorSeeded(seed)
			picked := s.PickFeatured(pool, "")
			require.NotNil(t, picked)
			assert.NotContains(t, []string{"item-0", "item-1", "item-2"}, picked.ItemID)
		}
	})

	t.Run("empty filtered pool yields nil", func(t *testing.T) {
		s := NewSelectorSeeded(1)
		assert.Nil(t, s.PickFeatured(nil, ""))
		assert.Nil(t, s.PickFeatured([]article.Article{long(100, "only")}, "only"))
		assert.Nil(t, s.PickFeatured([]article.Article{long(10, "short")}, ""))
	})
}
