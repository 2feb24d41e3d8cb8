package quiz

import (
	"math"
	"math/rand"
	"sync"
	"time"

	apperrors "github.com/Igaki12/news-network-api/pkg/errors"
)

// DefaultExamTimeLimit is the exam countdown length
const DefaultExamTimeLimit = 10 * time.Minute

// FinalizeReason records which path ended the exam
type FinalizeReason string

const (
	FinalizeComplete FinalizeReason = "complete"
	FinalizeTimeout  FinalizeReason = "timeout"
)

// ExamResult summarizes a finished exam
type ExamResult struct {
	CorrectCount       int            `json:"correctCount"`
	Total              int            `json:"total"`
	Accuracy           float64        `json:"accuracy"`
	ElapsedMs          int64          `json:"elapsedMs"`
	EstimatedDeviation int            `json:"estimatedDeviation"`
	Reason             FinalizeReason `json:"reason"`
	Passed             bool           `json:"passed"`
}

// ExamSession is one running timed exam. Exactly one finalization happens per
// session: the countdown-expiry path and the user-completion path both call
// Finalize, and only the first has effect. The result slot is single-assign
// behind the mutex, so the two paths cannot race.
type ExamSession struct {
	ID        string
	DayKey    string
	Questions []ExamQuestion

	mu        sync.Mutex
	answers   map[string]string // question id -> choice id
	startedAt time.Time
	timeLimit time.Duration
	result    *ExamResult
	rng       *rand.Rand
	now       func() time.Time
}

// NewExamSession starts an exam session over an assembled question batch.
// A nil rng falls back to a time-seeded source.
func NewExamSession(id, dayKey string, questions []ExamQuestion, timeLimit time.Duration, rng *rand.Rand) *ExamSession {
	if timeLimit <= 0 {
		timeLimit = DefaultExamTimeLimit
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	now := time.Now
	return &ExamSession{
		ID:        id,
		DayKey:    dayKey,
		Questions: questions,
		answers:   make(map[string]string, len(questions)),
		startedAt: now(),
		timeLimit: timeLimit,
		rng:       rng,
		now:       now,
	}
}

// Deadline returns the moment the countdown expires
func (e *ExamSession) Deadline() time.Time {
	return e.startedAt.Add(e.timeLimit)
}

// Answer records the selected choice for a question. Re-answering a question
// overwrites the earlier selection. Answers after finalization are rejected.
func (e *ExamSession) Answer(questionID, choiceID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.result != nil {
		return apperrors.NewConflictError("exam already finalized")
	}
	if e.expiredLocked() {
		e.finalizeLocked(FinalizeTimeout)
		return apperrors.NewConflictError("exam time limit reached")
	}

	question := e.findQuestion(questionID)
	if question == nil {
		return apperrors.NewNotFoundError("exam question")
	}
	for _, choice := range question.Choices {
		if choice.ID == choiceID {
			e.answers[questionID] = choiceID
			return nil
		}
	}
	return apperrors.NewNotFoundError("answer choice")
}

// AllAnswered reports whether every question has a recorded answer
func (e *ExamSession) AllAnswered() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.answers) == len(e.Questions)
}

// Finalize ends the exam and computes the result summary. The operation is
// set-once: subsequent calls, from either the timer or the user path, return
// the result of the first call unchanged.
func (e *ExamSession) Finalize(reason FinalizeReason) *ExamResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.finalizeLocked(reason)
}

// Result returns the finalized summary, or nil while the exam is running
func (e *ExamSession) Result() *ExamResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.result
}

// Expired reports whether the countdown has run out
func (e *ExamSession) Expired() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.expiredLocked()
}

func (e *ExamSession) expiredLocked() bool {
	return e.now().Sub(e.startedAt) >= e.timeLimit
}

func (e *ExamSession) findQuestion(questionID string) *ExamQuestion {
	for i := range e.Questions {
		if e.Questions[i].ID == questionID {
			return &e.Questions[i]
		}
	}
	return nil
}

func (e *ExamSession) finalizeLocked(reason FinalizeReason) *ExamResult {
	if e.result != nil {
		return e.result
	}

	total := len(e.Questions)
	correct := 0
	for _, question := range e.Questions {
		choiceID, answered := e.answers[question.ID]
		if !answered {
			continue
		}
		for _, choice := range question.Choices {
			if choice.ID == choiceID && choice.IsCorrect {
				correct++
				break
			}
		}
	}

	accuracy := 0.0
	if total > 0 {
		accuracy = float64(correct) / float64(total)
	}

	elapsed := e.timeLimit
	if reason != FinalizeTimeout {
		if d := e.now().Sub(e.startedAt); d < elapsed {
			elapsed = d
		}
	}

	passThreshold := int(math.Ceil(0.75 * float64(total)))

	e.result = &ExamResult{
		CorrectCount:       correct,
		Total:              total,
		Accuracy:           accuracy,
		ElapsedMs:          elapsed.Milliseconds(),
		EstimatedDeviation: e.estimatedDeviation(accuracy),
		Reason:             reason,
		Passed:             correct >= passThreshold,
	}
	return e.result
}

// estimatedDeviation produces the playful hensachi-style score shown on the
// result screen: centered on 50, scaled by accuracy, with a little noise,
// clamped to [35, 75].
func (e *ExamSession) estimatedDeviation(accuracy float64) int {
	raw := 50 + (accuracy-0.5)*40 + (e.rng.Float64()*8 - 4)
	deviation := int(math.Round(raw))
	if deviation < 35 {
		deviation = 35
	}
	if deviation > 75 {
		deviation = 75
	}
	return deviation
}
