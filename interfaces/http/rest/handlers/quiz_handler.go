package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Igaki12/news-network-api/application/services"
	"github.com/Igaki12/news-network-api/infrastructure/cert"
	"github.com/Igaki12/news-network-api/pkg/auth"
	"github.com/Igaki12/news-network-api/pkg/common"
	apperrors "github.com/Igaki12/news-network-api/pkg/errors"
)

const answerBodyLimit = 64 << 10

// QuizHandler serves quiz selection, exam sessions, and the featured article
type QuizHandler struct {
	quizzes *services.QuizService
	logger  *zap.Logger
}

// NewQuizHandler creates the quiz handler
func NewQuizHandler(quizzes *services.QuizService, logger *zap.Logger) *QuizHandler {
	return &QuizHandler{quizzes: quizzes, logger: logger}
}

// RandomQuestion handles GET /api/v1/dates/{dateKey}/quiz/random
func (h *QuizHandler) RandomQuestion(w http.ResponseWriter, r *http.Request) {
	dayKey := chi.URLParam(r, "dateKey")

	pick, err := h.quizzes.RandomQuestion(dayKey)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, pick)
}

// StartExam handles POST /api/v1/dates/{dateKey}/exams
func (h *QuizHandler) StartExam(w http.ResponseWriter, r *http.Request) {
	dayKey := chi.URLParam(r, "dateKey")

	session, err := h.quizzes.StartExam(dayKey)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"examId":    session.ID,
		"dayKey":    session.DayKey,
		"questions": session.Questions,
		"deadline":  session.Deadline().Format(time.RFC3339),
	})
}

// AnswerRequest is the answer submission payload
type AnswerRequest struct {
	QuestionID string `json:"questionId"`
	ChoiceID   string `json:"choiceId"`
}

// AnswerExam handles POST /api/v1/exams/{examID}/answers. When the submitted
// answer completes the exam, the response carries the finalized result.
func (h *QuizHandler) AnswerExam(w http.ResponseWriter, r *http.Request) {
	examID := chi.URLParam(r, "examID")

	var req AnswerRequest
	if err := common.ParseJSONBody(r, &req, answerBodyLimit); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "invalid request body")
		return
	}
	if req.QuestionID == "" || req.ChoiceID == "" {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "questionId and choiceId are required")
		return
	}

	result, err := h.quizzes.AnswerExam(examID, req.QuestionID, req.ChoiceID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"recorded": true,
		"result":   result,
	})
}

// FinalizeExam handles POST /api/v1/exams/{examID}/finalize
func (h *QuizHandler) FinalizeExam(w http.ResponseWriter, r *http.Request) {
	examID := chi.URLParam(r, "examID")

	result, err := h.quizzes.FinalizeExam(examID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// ExamResult handles GET /api/v1/exams/{examID}/result
func (h *QuizHandler) ExamResult(w http.ResponseWriter, r *http.Request) {
	examID := chi.URLParam(r, "examID")

	result, err := h.quizzes.ExamResult(examID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// Certificate handles GET /api/v1/exams/{examID}/certificate, rendering the
// PDF completion certificate for a finalized exam.
func (h *QuizHandler) Certificate(w http.ResponseWriter, r *http.Request) {
	examID := chi.URLParam(r, "examID")

	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	session, err := h.quizzes.Exam(examID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	result := session.Result()
	if result == nil {
		common.RespondAppError(w, apperrors.NewConflictError("exam still in progress"))
		return
	}

	pdfBytes, err := cert.Generate(user.DisplayName, session.DayKey, result, time.Now())
	if err != nil {
		h.logger.Error("certificate generation failed", zap.Error(err))
		common.RespondAppError(w, apperrors.NewInternalError("failed to generate certificate"))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=certificate-%s.pdf", examID))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

// FeaturedArticle handles GET /api/v1/dates/{dateKey}/entities/{entityID}/featured
func (h *QuizHandler) FeaturedArticle(w http.ResponseWriter, r *http.Request) {
	dayKey := chi.URLParam(r, "dateKey")
	entityID := chi.URLParam(r, "entityID")
	excludeID := r.URL.Query().Get("exclude")

	picked, err := h.quizzes.FeaturedArticle(dayKey, entityID, excludeID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, picked)
}
