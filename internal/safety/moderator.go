package safety

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"sahaayak/internal/model"
	"sahaayak/internal/oracle"
)

// blockedTerms is the local moderation fallback for when no oracle is
// configured. Substring match, any hit rejects.
var blockedTerms = []string{
	"kill", "suicide", "self-harm", "hate", "attack", "idiot", "stupid",
}

const (
	reasonBlockedTerm   = "This content violates community guidelines regarding harmful language."
	reasonCouldNotCheck = "Could not verify content safety. Please try again."
)

const moderationPrompt = `Analyze the following text from a youth mental wellness community forum for safety.
The community is a supportive space. The text MUST NOT contain:
- Harassment or bullying (insults, threats, targeting individuals).
- Hate speech (attacks based on race, religion, gender, etc.).
- Sexually explicit content.
- Encouragement or glorification of self-harm or suicide.

If the text is SAFE and appropriate, respond with: {"isSafe": true}.
If the text is UNSAFE, respond with: {"isSafe": false, "reason": "A brief, user-friendly explanation."}.

Example reasons for unsafe content:
- "This content appears to be bullying or harassment."
- "Content related to self-harm is not allowed in this supportive space."
- "Hate speech is not tolerated in this community."

Text to analyze: %q`

// Moderator gates user-authored community content before persistence. Its
// failure policy is the opposite of the Classifier's: any verification
// failure rejects the content.
type Moderator struct {
	oracle *oracle.Client
	logger *zap.Logger
}

func NewModerator(client *oracle.Client, logger *zap.Logger) *Moderator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Moderator{oracle: client, logger: logger}
}

func (m *Moderator) Moderate(ctx context.Context, text string) model.ModerationResult {
	if m.oracle == nil {
		return moderateByBlockedTerms(text)
	}

	payload, err := m.oracle.CompleteJSON(
		ctx,
		"You are a strict but fair content moderator. Only output JSON.",
		fmt.Sprintf(moderationPrompt, text),
	)
	if err != nil {
		m.logger.Warn("moderation oracle failed, rejecting content", zap.Error(err))
		return model.ModerationResult{IsSafe: false, Reason: reasonCouldNotCheck}
	}

	var parsed struct {
		IsSafe *bool  `json:"isSafe"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil || parsed.IsSafe == nil {
		m.logger.Warn("moderation response malformed, rejecting content", zap.Error(err))
		return model.ModerationResult{IsSafe: false, Reason: reasonCouldNotCheck}
	}
	if !*parsed.IsSafe {
		reason := strings.TrimSpace(parsed.Reason)
		if reason == "" {
			reason = reasonBlockedTerm
		}
		return model.ModerationResult{IsSafe: false, Reason: reason}
	}
	return model.ModerationResult{IsSafe: true}
}

func moderateByBlockedTerms(text string) model.ModerationResult {
	lowered := strings.ToLower(text)
	for _, term := range blockedTerms {
		if strings.Contains(lowered, term) {
			return model.ModerationResult{IsSafe: false, Reason: reasonBlockedTerm}
		}
	}
	return model.ModerationResult{IsSafe: true}
}
