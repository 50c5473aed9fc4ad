package chat

import (
	"context"

	"go.uber.org/zap"

	"sahaayak/internal/content"
	"sahaayak/internal/model"
	"sahaayak/internal/oracle"
	"sahaayak/internal/safety"
)

const degradedReplyText = "I'm sorry, I'm having a little trouble connecting right now. Let's try again in a moment."

// localReply is returned when no oracle is configured at all. The companion
// stays useful in fully offline deployments.
const localReplyText = "Thank you for sharing. I'm here to listen. Remember to be kind to yourself."

var localQuickReplies = []string{"Tell me more", "Thanks", "Okay"}

type TurnRequest struct {
	Text           string
	History        []model.ChatTurn
	DefaultPersona model.Persona
	DynamicPersona bool
}

type TurnResult struct {
	Text         string
	QuickReplies []string
	Playlist     *model.PlaylistSuggestion
	Persona      model.Persona
	Crisis       bool
}

// Orchestrator turns one raw utterance into a safe, persona-consistent reply.
// Crisis classification always completes before any reply generation is
// attempted; that ordering is the engine's core safety invariant.
type Orchestrator struct {
	classifier *safety.Classifier
	selector   *Selector
	oracle     *oracle.Client
	logger     *zap.Logger
}

func NewOrchestrator(classifier *safety.Classifier, selector *Selector, client *oracle.Client, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		classifier: classifier,
		selector:   selector,
		oracle:     client,
		logger:     logger,
	}
}

// Respond never returns an error: every failure path degrades to a
// well-formed result.
func (o *Orchestrator) Respond(ctx context.Context, req TurnRequest) TurnResult {
	risk := o.classifier.Classify(ctx, req.Text)
	if risk == model.RiskHigh {
		o.logger.Info("crisis detected, short-circuiting turn")
		return TurnResult{
			Text:    CrisisSentinel,
			Persona: model.PersonaEmpathetic,
			Crisis:  true,
		}
	}

	persona := o.selector.Select(ctx, req.Text, req.DefaultPersona, req.DynamicPersona)

	if o.oracle == nil {
		return TurnResult{
			Text:         localReplyText,
			QuickReplies: append([]string(nil), localQuickReplies...),
			Persona:      persona,
		}
	}

	profile, ok := content.PersonaByID(persona)
	if !ok {
		profile, _ = content.PersonaByID(model.PersonaEmpathetic)
	}

	reply, err := o.oracle.Complete(ctx, profile.Prompt, req.History, req.Text)
	if err != nil {
		o.logger.Warn("reply generation failed, returning degraded reply", zap.Error(err))
		return TurnResult{
			Text:    degradedReplyText,
			Persona: req.DefaultPersona,
		}
	}

	text, quickReplies, playlist := extractDirectives(reply)
	if text == "" && playlist == nil {
		// The model answered with nothing usable after stripping tags.
		text = localReplyText
	}
	return TurnResult{
		Text:         text,
		QuickReplies: quickReplies,
		Playlist:     playlist,
		Persona:      persona,
	}
}
