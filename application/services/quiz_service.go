package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Igaki12/news-network-api/domain/article"
	"github.com/Igaki12/news-network-api/domain/quiz"
	apperrors "github.com/Igaki12/news-network-api/pkg/errors"
)

// QuizService drives quiz selection and timed exam sessions on top of the
// loaded dataset.
type QuizService struct {
	datasets *DatasetService

	selMu    sync.Mutex
	selector *quiz.Selector

	examMu sync.Mutex
	exams  map[string]*quiz.ExamSession
	timers map[string]*time.Timer

	timeLimit time.Duration
	logger    *zap.Logger
}

// NewQuizService creates the quiz service
func NewQuizService(datasets *DatasetService, timeLimit time.Duration, logger *zap.Logger) *QuizService {
	if timeLimit <= 0 {
		timeLimit = quiz.DefaultExamTimeLimit
	}
	return &QuizService{
		datasets:  datasets,
		selector:  quiz.NewSelector(),
		exams:     make(map[string]*quiz.ExamSession),
		timers:    make(map[string]*time.Timer),
		timeLimit: timeLimit,
		logger:    logger,
	}
}

// RandomQuestion picks one random quiz question for the day
func (s *QuizService) RandomQuestion(dayKey string) (*quiz.Pick, error) {
	result, err := s.datasets.GraphForDay(dayKey, 0)
	if err != nil {
		return nil, err
	}

	s.selMu.Lock()
	defer s.selMu.Unlock()
	return s.selector.PickRandom(dayKey, result.Meta)
}

// StartExam assembles the fixed-size exam for a day and opens a timed
// session. The countdown finalizes the exam on expiry even if the client
// never returns.
func (s *QuizService) StartExam(dayKey string) (*quiz.ExamSession, error) {
	result, err := s.datasets.GraphForDay(dayKey, 0)
	if err != nil {
		return nil, err
	}

	s.selMu.Lock()
	questions, err := s.selector.BuildExam(dayKey, result.Meta)
	s.selMu.Unlock()
	if err != nil {
		return nil, err
	}

	examID := uuid.New().String()
	session := quiz.NewExamSession(examID, dayKey, questions, s.timeLimit, nil)

	s.examMu.Lock()
	s.exams[examID] = session
	s.timers[examID] = time.AfterFunc(s.timeLimit, func() {
		session.Finalize(quiz.FinalizeTimeout)
		s.logger.Info("exam finalized by countdown", zap.String("exam_id", examID))
	})
	s.examMu.Unlock()

	s.logger.Info("exam started",
		zap.String("exam_id", examID),
		zap.String("day_key", dayKey),
		zap.Int("questions", len(questions)),
	)
	return session, nil
}

// AnswerExam records an answer. Answering the final open question finalizes
// the exam immediately and returns its result; otherwise the result is nil.
func (s *QuizService) AnswerExam(examID, questionID, choiceID string) (*quiz.ExamResult, error) {
	session, err := s.session(examID)
	if err != nil {
		return nil, err
	}
	if err := session.Answer(questionID, choiceID); err != nil {
		return nil, err
	}
	if session.AllAnswered() {
		result := session.Finalize(quiz.FinalizeComplete)
		s.stopTimer(examID)
		s.logger.Info("exam finalized by completion", zap.String("exam_id", examID))
		return result, nil
	}
	return nil, nil
}

// FinalizeExam ends an exam on the user's request, scoring whatever answers
// were recorded.
func (s *QuizService) FinalizeExam(examID string) (*quiz.ExamResult, error) {
	session, err := s.session(examID)
	if err != nil {
		return nil, err
	}
	result := session.Finalize(quiz.FinalizeComplete)
	s.stopTimer(examID)
	return result, nil
}

// ExamResult returns the finalized result for an exam, or a conflict while
// the exam is still running.
func (s *QuizService) ExamResult(examID string) (*quiz.ExamResult, error) {
	session, err := s.session(examID)
	if err != nil {
		return nil, err
	}
	result := session.Result()
	if result == nil {
		return nil, apperrors.NewConflictError("exam still in progress")
	}
	return result, nil
}

// Exam returns a running or finished session by id
func (s *QuizService) Exam(examID string) (*quiz.ExamSession, error) {
	return s.session(examID)
}

// FeaturedArticle picks a representative article for an entity, excluding one
// item id so the panel never repeats the article already on screen.
func (s *QuizService) FeaturedArticle(dayKey, entityID, excludeID string) (*article.Article, error) {
	pool, err := s.datasets.ArticlesForEntity(dayKey, entityID)
	if err != nil {
		return nil, err
	}

	s.selMu.Lock()
	picked := s.selector.PickFeatured(pool, excludeID)
	s.selMu.Unlock()

	if picked == nil {
		return nil, apperrors.NewNoArticleError()
	}
	return picked, nil
}

func (s *QuizService) session(examID string) (*quiz.ExamSession, error) {
	s.examMu.Lock()
	defer s.examMu.Unlock()
	session, ok := s.exams[examID]
	if !ok {
		return nil, apperrors.NewNotFoundError("exam " + examID)
	}
	return session, nil
}

func (s *QuizService) stopTimer(examID string) {
	s.examMu.Lock()
	if timer, ok := s.timers[examID]; ok {
		timer.Stop()
		delete(s.timers, examID)
	}
	s.examMu.Unlock()
}

// Close stops all countdown timers
func (s *QuizService) Close() {
	s.examMu.Lock()
	defer s.examMu.Unlock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}
