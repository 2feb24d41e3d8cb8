package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/Igaki12/news-network-api/infrastructure/config"
	"github.com/Igaki12/news-network-api/interfaces/http/rest/handlers"
	"github.com/Igaki12/news-network-api/interfaces/http/rest/middleware"
	"github.com/Igaki12/news-network-api/pkg/auth"
	"github.com/Igaki12/news-network-api/pkg/common"
)

// RouterDeps bundles everything the router needs
type RouterDeps struct {
	Config         *config.Config
	Logger         *zap.Logger
	TokenValidator *auth.TokenValidator
	AuthHandler    *handlers.AuthHandler
	DatasetHandler *handlers.DatasetHandler
	GraphHandler   *handlers.GraphHandler
	QuizHandler    *handlers.QuizHandler
}

// NewRouter assembles the HTTP routing tree
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logging(deps.Logger))

	if deps.Config.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   deps.Config.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		common.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Public auth endpoints
		r.Route("/auth", func(r chi.Router) {
			r.Get("/groups", deps.AuthHandler.ListGroups)
			r.Post("/signin", deps.AuthHandler.SignIn)
			r.Post("/signup", deps.AuthHandler.SignUp)
		})

		// Everything else requires a session token
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(deps.TokenValidator, deps.Logger))

			r.Route("/dataset", func(r chi.Router) {
				r.Post("/", deps.DatasetHandler.Upload)
				r.Post("/sample", deps.DatasetHandler.LoadSample)
				r.Delete("/", deps.DatasetHandler.Reset)
			})

			r.Get("/dates", deps.DatasetHandler.ListDays)

			r.Route("/dates/{dateKey}", func(r chi.Router) {
				r.Get("/graph", deps.GraphHandler.GetGraph)
				r.Get("/quiz/random", deps.QuizHandler.RandomQuestion)
				r.Post("/exams", deps.QuizHandler.StartExam)
				r.Get("/entities/{entityID}/featured", deps.QuizHandler.FeaturedArticle)
			})

			r.Route("/exams/{examID}", func(r chi.Router) {
				r.Post("/answers", deps.QuizHandler.AnswerExam)
				r.Post("/finalize", deps.QuizHandler.FinalizeExam)
				r.Get("/result", deps.QuizHandler.ExamResult)
				r.Get("/certificate", deps.QuizHandler.Certificate)
			})
		})
	})

	return r
}
