package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"studymate-backend/internal/handlers"
	"studymate-backend/internal/middleware"
	"studymate-backend/internal/websocket"
)

func New(
	studyHandler *handlers.StudyHandler,
	historyHandler *handlers.HistoryHandler,
	metaHandler *handlers.MetaHandler,
	wsHub *websocket.Hub,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	r.Get("/health", metaHandler.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", metaHandler.Health)

		// ──── WebSocket ────
		r.Get("/ws", wsHub.HandleWebSocket)

		r.Group(func(r chi.Router) {
			r.Use(middleware.ClientID)
			r.Use(middleware.Language)

			// ──── Study Routes ────
			r.Post("/facts/generate", studyHandler.GenerateFacts)
			r.Post("/summaries/generate", studyHandler.Summarize)
			r.Get("/fact-of-the-day", studyHandler.FactOfTheDay)
			r.Post("/current-affairs/generate", studyHandler.CurrentAffairs)
			r.Post("/exams/generate", studyHandler.ExamInfo)

			// ──── History Routes ────
			r.Route("/history", func(r chi.Router) {
				r.Get("/", historyHandler.List)
				r.Delete("/", historyHandler.Clear)
			})

			// ──── Display Routes ────
			r.Get("/topics/suggested", metaHandler.SuggestedTopics)
			r.Get("/translations", metaHandler.Translations)
			r.Get("/workspace", metaHandler.Workspace)
		})
	})

	return r
}
