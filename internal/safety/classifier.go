package safety

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"sahaayak/internal/model"
	"sahaayak/internal/oracle"
)

// Keyword tiers for the local classifier. High-severity is always checked
// first; first match wins.
var (
	highRiskKeywords = []string{
		"kill myself", "end my life", "self-harm", "hopeless", "can't go on",
		"ending it", "want to die", "suicide", "hurt myself", "no reason to live",
	}
	lowRiskKeywords = []string{
		"lonely", "worthless", "anxious", "depressed", "crying", "overwhelmed",
		"stressed out", "can't sleep", "feeling down", "panic attack",
	}
)

const crisisClassifierPrompt = `You are a highly sensitive and empathetic crisis detection model for a youth mental wellness app.
Your sole task is to analyze the user's message for signs of distress and classify it into one of three levels.
Be cautious and prioritize user safety.

Definitions and examples:
- 'high': Urgent crisis. The user expresses direct or strong indirect suicidal thoughts, plans for self-harm, or overwhelming hopelessness.
  Examples: "I want to end my life", "I can't do this anymore, I'm going to hurt myself", "Life isn't worth living".

- 'low': Non-urgent but significant distress. The user expresses sadness, anxiety, stress, loneliness, or moderate hopelessness, without immediate intent for self-harm.
  Examples: "I feel so lonely all the time", "I'm failing all my exams and I feel worthless", "I've been crying for days".

- 'none': No detectable distress. General conversation, questions, or positive emotions.
  Examples: "Hi, how are you?", "Thanks for the tip!", "What is mindfulness?".

User Message: %q

Analyze the message carefully and respond with ONLY ONE WORD: 'high', 'low', or 'none'.`

// Classifier assigns a risk tier to a single utterance. It never returns an
// error: oracle failures fall back to the local keyword classifier, so the
// system is never silently unprotected.
type Classifier struct {
	oracle *oracle.Client
	logger *zap.Logger
}

func NewClassifier(client *oracle.Client, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{oracle: client, logger: logger}
}

func (c *Classifier) Classify(ctx context.Context, text string) model.RiskTier {
	if c.oracle == nil {
		return classifyByKeywords(text)
	}

	word, err := c.oracle.CompleteWord(ctx, crisisPrompt(text))
	if err != nil {
		c.logger.Warn("crisis classification oracle failed, using keyword fallback", zap.Error(err))
		return classifyByKeywords(text)
	}
	return parseRiskWord(word)
}

// parseRiskWord is substring-tolerant: "high" wins over "low", anything else
// is none.
func parseRiskWord(word string) model.RiskTier {
	normalized := strings.ToLower(strings.TrimSpace(word))
	if strings.Contains(normalized, "high") {
		return model.RiskHigh
	}
	if strings.Contains(normalized, "low") {
		return model.RiskLow
	}
	return model.RiskNone
}

// KeywordTier runs only the local keyword classifier. Callers that must not
// make an oracle call, such as offline analysis fallbacks, use this directly.
func KeywordTier(text string) model.RiskTier {
	return classifyByKeywords(text)
}

func classifyByKeywords(text string) model.RiskTier {
	lowered := strings.ToLower(text)
	for _, keyword := range highRiskKeywords {
		if strings.Contains(lowered, keyword) {
			return model.RiskHigh
		}
	}
	for _, keyword := range lowRiskKeywords {
		if strings.Contains(lowered, keyword) {
			return model.RiskLow
		}
	}
	return model.RiskNone
}

func crisisPrompt(text string) string {
	return fmt.Sprintf(crisisClassifierPrompt, text)
}
