package chat

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"sahaayak/internal/content"
	"sahaayak/internal/model"
	"sahaayak/internal/oracle"
)

const personaSelectionPrompt = `Analyze the user's message from a mental wellness chat. Which of these personas is most appropriate for a response:
- 'empathetic': For expressing sadness, loss, or deep feelings.
- 'coach': For seeking motivation, goals, or solutions.
- 'calm': For anxiety, stress, panic, or feeling overwhelmed.
- 'energetic': For excitement, sharing good news, or needing a hype-up.
- 'mindful': For wanting to ground, reflect, or be present.
- 'default': For neutral, general chat, greetings, or questions.

User Message: %q

Respond with ONLY ONE of these words: empathetic, coach, calm, energetic, mindful, default.`

// Selector chooses the effective persona for one reply. Any invalid, empty,
// or failed selection falls back to the user's default persona.
type Selector struct {
	oracle *oracle.Client
	logger *zap.Logger
}

func NewSelector(client *oracle.Client, logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{oracle: client, logger: logger}
}

func (s *Selector) Select(ctx context.Context, text string, defaultPersona model.Persona, dynamicEnabled bool) model.Persona {
	if !dynamicEnabled {
		return defaultPersona
	}
	if s.oracle == nil {
		return selectByKeywords(text, defaultPersona)
	}

	word, err := s.oracle.CompleteWord(ctx, fmt.Sprintf(personaSelectionPrompt, text))
	if err != nil {
		s.logger.Warn("persona selection oracle failed, using default persona", zap.Error(err))
		return selectByKeywords(text, defaultPersona)
	}
	if persona, ok := content.ParsePersona(word); ok {
		return persona
	}
	return defaultPersona
}

func selectByKeywords(text string, defaultPersona model.Persona) model.Persona {
	lowered := strings.ToLower(text)
	switch {
	case strings.Contains(lowered, "anxious") || strings.Contains(lowered, "stressed"):
		return model.PersonaCalm
	case strings.Contains(lowered, "sad") || strings.Contains(lowered, "depressed"):
		return model.PersonaEmpathetic
	case strings.Contains(lowered, "motivate") || strings.Contains(lowered, "procrastinating"):
		return model.PersonaCoach
	default:
		return defaultPersona
	}
}
