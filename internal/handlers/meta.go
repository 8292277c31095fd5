package handlers

import (
	"net/http"

	"studymate-backend/internal/i18n"
	"studymate-backend/internal/middleware"
	"studymate-backend/internal/models"
	"studymate-backend/internal/session"
)

type MetaHandler struct {
	tracker *session.Tracker
}

func NewMetaHandler(tracker *session.Tracker) *MetaHandler {
	return &MetaHandler{tracker: tracker}
}

func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *MetaHandler) SuggestedTopics(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLanguage(r.Context())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"language": lang,
		"topics":   i18n.For(lang).PredefinedTopics,
	})
}

func (h *MetaHandler) Translations(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLanguage(r.Context())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"language": lang,
		"strings":  i18n.For(lang),
	})
}

// Workspace returns the client's current state. Passing lang switches the
// workspace language for subsequent requests.
func (h *MetaHandler) Workspace(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.GetClientID(r.Context())
	if raw := r.URL.Query().Get("lang"); raw != "" {
		lang, _ := models.ParseLanguage(raw)
		h.tracker.SetLanguage(clientID, lang)
	}
	writeJSON(w, http.StatusOK, h.tracker.Snapshot(clientID))
}
