package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(h *Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", h.healthz)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/chat/message", h.sendChatMessage)
		r.Get("/chat/history", h.chatHistory)

		r.Post("/moods", h.addMood)
		r.Get("/moods", h.listMoods)

		r.Post("/journal", h.addJournalEntry)
		r.Get("/journal", h.listJournalEntries)
		r.Get("/journal/prompt", h.journalPrompt)

		r.Get("/streaks", h.listStreaks)
		r.Get("/badges", h.listBadges)

		r.Get("/journeys", h.listJourneys)
		r.Get("/journeys/progress", h.listJourneyProgress)
		r.Post("/journeys/{journeyID}/start", h.startJourney)
		r.Post("/journeys/{journeyID}/tasks", h.completeJourneyTask)
		r.Post("/journeys/{journeyID}/advance", h.advanceJourneyDay)

		r.Post("/intentions", h.addIntention)
		r.Get("/intentions", h.listIntentions)
		r.Post("/intentions/suggest", h.suggestHabits)
		r.Post("/intentions/{intentionID}/complete", h.completeIntention)
		r.Delete("/intentions/{intentionID}", h.deleteIntention)

		r.Post("/community/posts", h.addPost)
		r.Get("/community/posts", h.listPosts)
		r.Post("/community/posts/{postID}/comments", h.addComment)
		r.Get("/community/posts/{postID}/comments", h.listComments)
		r.Post("/community/posts/{postID}/like", h.togglePostLike)
		r.Post("/community/comments/{commentID}/like", h.toggleCommentLike)

		r.Post("/contacts", h.saveContact)
		r.Get("/contacts", h.listContacts)
		r.Delete("/contacts/{contactID}", h.deleteContact)
		r.Post("/emergency/helpline-tap", h.helplineTap)

		r.Get("/insights", h.insights)
		r.Get("/suggestion", h.suggestion)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
