package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"sahaayak/internal/chat"
	"sahaayak/internal/content"
	"sahaayak/internal/model"
)

// historyWindow bounds how many prior messages are forwarded to the oracle.
const historyWindow = 10

const crisisSupportText = "It sounds like you are going through something really difficult right now. You don't have to face this alone. Please reach out to a helpline or someone you trust."

type ChatRequest struct {
	UserID         string        `json:"user_id"`
	Text           string        `json:"text"`
	Persona        model.Persona `json:"persona,omitempty"`
	DynamicPersona bool          `json:"dynamic_persona"`
}

type ChatResponse struct {
	Message  model.ChatMessage         `json:"message"`
	Playlist *model.PlaylistSuggestion `json:"playlist,omitempty"`
}

func (s *Service) SendChatMessage(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return ChatResponse{}, nil
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return ChatResponse{}, ErrMessageEmpty
	}
	defaultPersona := req.Persona
	if _, ok := content.PersonaByID(defaultPersona); !ok {
		defaultPersona = model.PersonaEmpathetic
	}

	history, err := s.store.ListChatMessages(req.UserID)
	if err != nil {
		return ChatResponse{}, err
	}

	// A new user message retires any quick replies still attached to the
	// previous assistant turn.
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Sender == model.SenderAssistant {
			if len(history[i].QuickReplies) > 0 {
				history[i].QuickReplies = nil
				if err := s.store.SaveChatMessage(req.UserID, history[i]); err != nil {
					return ChatResponse{}, err
				}
			}
			break
		}
	}

	turns := make([]model.ChatTurn, 0, historyWindow)
	start := len(history) - historyWindow
	if start < 0 {
		start = 0
	}
	for _, msg := range history[start:] {
		turns = append(turns, model.ChatTurn{Text: msg.Text, Sender: msg.Sender})
	}

	userMsg := model.ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    model.SenderUser,
		Timestamp: time.Now().UTC(),
	}
	if err := s.store.SaveChatMessage(req.UserID, userMsg); err != nil {
		return ChatResponse{}, err
	}

	result := s.orchestrator.Respond(ctx, chat.TurnRequest{
		Text:           text,
		History:        turns,
		DefaultPersona: defaultPersona,
		DynamicPersona: req.DynamicPersona,
	})

	replyText := result.Text
	if result.Crisis {
		replyText = crisisSupportText
	}
	assistantMsg := model.ChatMessage{
		ID:           uuid.NewString(),
		Text:         replyText,
		Sender:       model.SenderAssistant,
		Timestamp:    time.Now().UTC(),
		Persona:      result.Persona,
		QuickReplies: result.QuickReplies,
		Crisis:       result.Crisis,
	}
	if err := s.store.SaveChatMessage(req.UserID, assistantMsg); err != nil {
		return ChatResponse{}, err
	}

	return ChatResponse{Message: assistantMsg, Playlist: result.Playlist}, nil
}

func (s *Service) ChatHistory(userID string) ([]model.ChatMessage, error) {
	if strings.TrimSpace(userID) == "" {
		return []model.ChatMessage{}, nil
	}
	return s.store.ListChatMessages(userID)
}
