package quiz

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/Igaki12/news-network-api/domain/article"
	"github.com/Igaki12/news-network-api/domain/graph"
	apperrors "github.com/Igaki12/news-network-api/pkg/errors"
)

const (
	// articleWindow bounds how many of an entity's richest articles are
	// considered per selection pass, limiting skew toward entities with
	// many articles.
	articleWindow = 5

	// ExamSize is the fixed question count for the timed exam
	ExamSize = 10
)

// Selector implements the randomized quiz sampling policies. The search over
// entities, articles, and questions is a bounded walk of pre-shuffled finite
// candidate lists consumed without replacement, so it always terminates.
//
// A Selector is not safe for concurrent use; callers serialize access.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a selector seeded for production use
func NewSelector() *Selector {
	return NewSelectorSeeded(time.Now().UnixNano())
}

// NewSelectorSeeded creates a selector with a fixed seed for reproducible runs
func NewSelectorSeeded(seed int64) *Selector {
	return &Selector{rng: rand.New(rand.NewSource(seed))}
}

// Pick is a single selected entity/article/question triple
type Pick struct {
	EntityID string          `json:"entityId"`
	Article  article.Article `json:"article"`
	Question Question        `json:"question"`
}

// ExamQuestion is one exam entry: a normalized question with a session-scoped
// id, its source article, and the originating entity.
type ExamQuestion struct {
	Question
	ID       string          `json:"id"`
	Article  article.Article `json:"article"`
	EntityID string          `json:"entityId"`
}

// PickRandom selects one random question for the day from the node metadata
// map. Entities are shuffled uniformly; within each, at most the first five
// qualifying articles are shuffled and their questions tried in shuffled
// order until one normalizes. There is no lower-quality fallback: when no
// entity yields a valid question the day has no question, full stop.
func (s *Selector) PickRandom(dayKey string, meta map[string]graph.NodeMeta) (*Pick, error) {
	metas := s.shuffledQuestionMetas(meta)
	if len(metas) == 0 {
		return nil, apperrors.NewNoQuestionError(dayKey)
	}

	for _, m := range metas {
		if a, q, ok := s.pickForEntity(m); ok {
			return &Pick{EntityID: m.ID, Article: a, Question: *q}, nil
		}
	}
	return nil, apperrors.NewNoQuestionError(dayKey)
}

// BuildExam assembles the fixed-size timed exam from the same candidate pool
// as PickRandom, taking at most one question per entity. The exam must not
// start short: fewer than ExamSize collected questions fails the whole batch.
// Each accepted question gets an independently reshuffled choice list and a
// composite id unique within the batch.
func (s *Selector) BuildExam(dayKey string, meta map[string]graph.NodeMeta) ([]ExamQuestion, error) {
	metas := s.shuffledQuestionMetas(meta)

	selected := make([]ExamQuestion, 0, ExamSize)
	counter := 0
	for _, m := range metas {
		if len(selected) >= ExamSize {
			break
		}
		a, q, ok := s.pickForEntity(m)
		if !ok {
			continue
		}
		selected = append(selected, ExamQuestion{
			Question: Question{
				Prompt:      q.Prompt,
				Choices:     s.shuffledChoices(q.Choices),
				CorrectText: q.CorrectText,
			},
			ID:       fmt.Sprintf("cbt-%s-%d", m.ID, counter),
			Article:  a,
			EntityID: m.ID,
		})
		counter++
	}

	if len(selected) < ExamSize {
		return nil, apperrors.NewInsufficientQuestionsError(len(selected), ExamSize)
	}
	return selected, nil
}

// PickFeatured chooses a representative article from the pool: substantial
// content only, optional exclusion by item id, then a uniform pick from the
// five longest survivors. Returns nil when the filtered pool is empty;
// callers surface that as a dead end rather than crashing.
func (s *Selector) PickFeatured(pool []article.Article, excludeID string) *article.Article {
	filtered := make([]article.Article, 0, len(pool))
	for _, a := range pool {
		if !a.Substantial() {
			continue
		}
		if excludeID != "" && a.ItemID == excludeID {
			continue
		}
		filtered = append(filtered, a)
	}
	if len(filtered) == 0 {
		return nil
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return len(filtered[i].Content) > len(filtered[j].Content)
	})

	topK := len(filtered)
	if topK > articleWindow {
		topK = articleWindow
	}
	chosen := filtered[s.rng.Intn(topK)]
	return &chosen
}

// shuffledQuestionMetas filters to entities with at least one questioned
// article and returns them uniformly shuffled. Metas are ordered by id before
// shuffling so the permutation does not depend on map iteration order.
func (s *Selector) shuffledQuestionMetas(meta map[string]graph.NodeMeta) []graph.NodeMeta {
	ids := make([]string, 0, len(meta))
	for id := range meta {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	metas := make([]graph.NodeMeta, 0, len(ids))
	for _, id := range ids {
		m := meta[id]
		for _, a := range m.Articles {
			if a.HasQuestions() {
				metas = append(metas, m)
				break
			}
		}
	}

	s.rng.Shuffle(len(metas), func(i, j int) {
		metas[i], metas[j] = metas[j], metas[i]
	})
	return metas
}

// pickForEntity tries to produce one normalized question for an entity. The
// first five questioned articles (the richest, since meta articles are
// length-sorted) are shuffled, then each article's questions are shuffled and
// normalized in order until one succeeds.
func (s *Selector) pickForEntity(m graph.NodeMeta) (article.Article, *Question, bool) {
	withQuestions := make([]article.Article, 0, len(m.Articles))
	for _, a := range m.Articles {
		if a.HasQuestions() {
			withQuestions = append(withQuestions, a)
		}
	}
	if len(withQuestions) == 0 {
		return article.Article{}, nil, false
	}
	if len(withQuestions) > articleWindow {
		withQuestions = withQuestions[:articleWindow]
	}

	s.rng.Shuffle(len(withQuestions), func(i, j int) {
		withQuestions[i], withQuestions[j] = withQuestions[j], withQuestions[i]
	})

	for _, a := range withQuestions {
		questions := make([]article.RawQuestion, len(a.Questions))
		copy(questions, a.Questions)
		s.rng.Shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
		})
		for i := range questions {
			if q := Normalize(&questions[i]); q != nil {
				return a, q, true
			}
		}
	}
	return article.Article{}, nil, false
}

// shuffledChoices returns an independently shuffled copy of a choice list
func (s *Selector) shuffledChoices(choices []Choice) []Choice {
	shuffled := make([]Choice, len(choices))
	copy(shuffled, choices)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
