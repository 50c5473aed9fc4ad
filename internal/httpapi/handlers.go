package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"sahaayak/internal/model"
	"sahaayak/internal/service"
)

type Handler struct {
	svc    *service.Service
	logger *zap.Logger
}

func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) sendChatMessage(w http.ResponseWriter, r *http.Request) {
	var req service.ChatRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !requireUser(w, req.UserID) {
		return
	}
	resp, err := h.svc.SendChatMessage(r.Context(), req)
	if err != nil {
		h.serviceError(w, "chat message", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) chatHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.queryUser(w, r)
	if !ok {
		return
	}
	messages, err := h.svc.ChatHistory(userID)
	if err != nil {
		h.serviceError(w, "chat history", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

type moodRequest struct {
	UserID     string   `json:"user_id"`
	Date       string   `json:"date,omitempty"`
	Mood       string   `json:"mood"`
	Activities []string `json:"activities,omitempty"`
	People     []string `json:"people,omitempty"`
	Note       string   `json:"note,omitempty"`
	Source     string   `json:"source,omitempty"`
}

func (h *Handler) addMood(w http.ResponseWriter, r *http.Request) {
	var req moodRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !requireUser(w, req.UserID) {
		return
	}
	result, err := h.svc.AddMoodLog(req.UserID, model.MoodLog{
		Date:       req.Date,
		Mood:       req.Mood,
		Activities: req.Activities,
		People:     req.People,
		Note:       req.Note,
		Source:     req.Source,
	})
	if err != nil {
		h.serviceError(w, "add mood", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) listMoods(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.queryUser(w, r)
	if !ok {
		return
	}
	logs, err := h.svc.ListMoodLogs(userID)
	if err != nil {
		h.serviceError(w, "list moods", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"logs": logs})
}

type journalRequest struct {
	UserID  string    `json:"user_id"`
	Date    time.Time `json:"date,omitempty"`
	Prompt  string    `json:"prompt,omitempty"`
	Content string    `json:"content"`
	Mood    string    `json:"mood,omitempty"`
}

func (h *Handler) addJournalEntry(w http.ResponseWriter, r *http.Request) {
	var req journalRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !requireUser(w, req.UserID) {
		return
	}
	result, err := h.svc.AddJournalEntry(req.UserID, model.JournalEntry{
		Date:    req.Date,
		Prompt:  req.Prompt,
		Content: req.Content,
		Mood:    req.Mood,
	})
	if err != nil {
		h.serviceError(w, "add journal entry", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) listJournalEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.queryUser(w, r)
	if !ok {
		return
	}
	entries, err := h.svc.ListJournalEntries(userID)
	if err != nil {
		h.serviceError(w, "list journal entries", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

func (h *Handler) journalPrompt(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"prompt": h.svc.DailyJournalPrompt(r.Context()),
	})
}

func (h *Handler) listStreaks(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.queryUser(w, r)
	if !ok {
		return
	}
	streaks, err := h.svc.ListStreaks(userID)
	if err != nil {
		h.serviceError(w, "list streaks", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"streaks": streaks})
}

func (h *Handler) listBadges(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.queryUser(w, r)
	if !ok {
		return
	}
	badges, err := h.svc.ListBadges(userID)
	if err != nil {
		h.serviceError(w, "list badges", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"badges": badges})
}

func (h *Handler) listJourneys(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"journeys": h.svc.Journeys()})
}

func (h *Handler) listJourneyProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.queryUser(w, r)
	if !ok {
		return
	}
	progress, err := h.svc.ListJourneyProgress(userID)
	if err != nil {
		h.serviceError(w, "list journey progress", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"progress": progress})
}

type journeyRequest struct {
	UserID string `json:"user_id"`
	TaskID string `json:"task_id,omitempty"`
}

func (h *Handler) startJourney(w http.ResponseWriter, r *http.Request) {
	var req journeyRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !requireUser(w, req.UserID) {
		return
	}
	progress, err := h.svc.StartJourney(req.UserID, chi.URLParam(r, "journeyID"))
	if err != nil {
		h.serviceError(w, "start journey", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"progress": progress})
}

func (h *Handler) completeJourneyTask(w http.ResponseWriter, r *http.Request) {
	var req journeyRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !requireUser(w, req.UserID) {
		return
	}
	result, err := h.svc.CompleteJourneyTask(req.UserID, chi.URLParam(r, "journeyID"), req.TaskID)
	if err != nil {
		h.serviceError(w, "complete journey task", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) advanceJourneyDay(w http.ResponseWriter, r *http.Request) {
	var req journeyRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !requireUser(w, req.UserID) {
		return
	}
	result, err := h.svc.AdvanceJourneyDay(req.UserID, chi.URLParam(r, "journeyID"))
	if err != nil {
		h.serviceError(w, "advance journey day", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type intentionRequest struct {
	UserID    string                   `json:"user_id"`
	Title     string                   `json:"title"`
	Frequency model.IntentionFrequency `json:"frequency,omitempty"`
	Target    int                      `json:"target,omitempty"`
	Date      string                   `json:"date,omitempty"`
}

func (h *Handler) addIntention(w http.ResponseWriter, r *http.Request) {
	var req intentionRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !requireUser(w, req.UserID) {
		return
	}
	intention, err := h.svc.AddIntention(req.UserID, req.Title, req.Frequency, req.Target)
	if err != nil {
		h.serviceError(w, "add intention", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"intention": intention})
}

func (h *Handler) listIntentions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.queryUser(w, r)
	if !ok {
		return
	}
	intentions, err := h.svc.ListIntentions(userID, strings.TrimSpace(r.URL.Query().Get("date")))
	if err != nil {
		h.serviceError(w, "list intentions", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"intentions": intentions})
}

func (h *Handler) completeIntention(w http.ResponseWriter, r *http.Request) {
	var req intentionRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !requireUser(w, req.UserID) {
		return
	}
	intention, err := h.svc.CompleteIntention(req.UserID, chi.URLParam(r, "intentionID"), req.Date)
	if err != nil {
		h.serviceError(w, "complete intention", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"intention": intention})
}

func (h *Handler) deleteIntention(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.queryUser(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteIntention(userID, chi.URLParam(r, "intentionID")); err != nil {
		h.serviceError(w, "delete intention", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) suggestHabits(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Goal string `json:"goal"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"suggestions": h.svc.SuggestHabits(r.Context(), req.Goal),
	})
}

type postRequest struct {
	UserID     string `json:"user_id"`
	AuthorName string `json:"author_name,omitempty"`
	CircleID   string `json:"circle_id,omitempty"`
	Title      string `json:"title,omitempty"`
	Content    string `json:"content"`
}

func (h *Handler) addPost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !requireUser(w, req.UserID) {
		return
	}
	post, err := h.svc.AddPost(r.Context(), req.UserID, req.AuthorName, req.CircleID, req.Title, req.Content)
	if err != nil {
		h.serviceError(w, "add post", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"post": post})
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	circleID := strings.TrimSpace(r.URL.Query().Get("circle_id"))
	posts, err := h.svc.ListPosts(circleID)
	if err != nil {
		h.serviceError(w, "list posts", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !requireUser(w, req.UserID) {
		return
	}
	comment, err := h.svc.AddComment(r.Context(), req.UserID, req.AuthorName, chi.URLParam(r, "postID"), req.Content)
	if err != nil {
		h.serviceError(w, "add comment", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"comment": comment})
}

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.svc.ListComments(chi.URLParam(r, "postID"))
	if err != nil {
		h.serviceError(w, "list comments", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"comments": comments})
}

func (h *Handler) togglePostLike(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !requireUser(w, req.UserID) {
		return
	}
	post, err := h.svc.TogglePostLike(req.UserID, chi.URLParam(r, "postID"))
	if err != nil {
		h.serviceError(w, "toggle post like", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"post": post})
}

func (h *Handler) toggleCommentLike(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !requireUser(w, req.UserID) {
		return
	}
	comment, err := h.svc.ToggleCommentLike(req.UserID, chi.URLParam(r, "commentID"))
	if err != nil {
		h.serviceError(w, "toggle comment like", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"comment": comment})
}

type contactRequest struct {
	UserID       string `json:"user_id"`
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship,omitempty"`
}

func (h *Handler) saveContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !requireUser(w, req.UserID) {
		return
	}
	contact, err := h.svc.SaveEmergencyContact(req.UserID, model.EmergencyContact{
		ID:           req.ID,
		Name:         req.Name,
		Phone:        req.Phone,
		Relationship: req.Relationship,
	})
	if err != nil {
		h.serviceError(w, "save contact", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"contact": contact})
}

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.queryUser(w, r)
	if !ok {
		return
	}
	contacts, err := h.svc.ListEmergencyContacts(userID)
	if err != nil {
		h.serviceError(w, "list contacts", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"contacts": contacts})
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.queryUser(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteEmergencyContact(userID, chi.URLParam(r, "contactID")); err != nil {
		h.serviceError(w, "delete contact", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) helplineTap(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"user_id"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	if !requireUser(w, req.UserID) {
		return
	}
	event, err := h.svc.RecordHelplineTap(req.UserID)
	if err != nil {
		h.serviceError(w, "helpline tap", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"event": event})
}

func (h *Handler) insights(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.queryUser(w, r)
	if !ok {
		return
	}
	insight, err := h.svc.AnalyzeWellness(r.Context(), userID)
	if err != nil {
		h.serviceError(w, "wellness insight", err)
		return
	}
	writeJSON(w, http.StatusOK, insight)
}

func (h *Handler) suggestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.queryUser(w, r)
	if !ok {
		return
	}
	suggestion, err := h.svc.ProactiveSuggestion(r.Context(), userID)
	if err != nil {
		h.serviceError(w, "proactive suggestion", err)
		return
	}
	writeJSON(w, http.StatusOK, suggestion)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.Warn("request decode failed", zap.String("path", r.URL.Path), zap.Error(err))
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *Handler) queryUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return "", false
	}
	return userID, true
}

func requireUser(w http.ResponseWriter, userID string) bool {
	if strings.TrimSpace(userID) == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return false
	}
	return true
}

func (h *Handler) serviceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrMessageEmpty),
		errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrContentRequired),
		errors.Is(err, service.ErrUnknownStreak),
		errors.Is(err, service.ErrUnknownTask):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUnknownJourney),
		errors.Is(err, service.ErrIntentionNotFound),
		errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrContactNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrJourneyNotStarted):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrContentBlocked):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.Error("request failed", zap.String("op", op), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
