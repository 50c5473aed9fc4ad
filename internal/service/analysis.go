package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"sahaayak/internal/model"
	"sahaayak/internal/safety"
)

const wellnessAnalysisSystem = `You are a caring wellness analyst for a youth mental wellness app.
You receive a summary of the user's recent mood logs and journal entries.
Write one short, warm, non-clinical insight about how they seem to be doing, addressed to them directly.
Also estimate a crisis level: 'none', 'low', or 'high'.
Respond with JSON only: {"insight": "...", "crisisLevel": "none|low|high"}.`

const proactiveSuggestionSystem = `You are a gentle companion in a youth mental wellness app.
You receive a summary of the user's recent moods, journal themes, and active journey.
Suggest one small, kind action for today. Keep it under two sentences.
Respond with JSON only: {"suggestion": "...", "actionText": "...", "actionLink": "..."}.
actionText and actionLink are optional; actionLink is an in-app path such as "/mood" or "/journal".`

const fallbackInsight = "Thanks for checking in. Looking after yourself by tracking how you feel is already a meaningful step. Be gentle with yourself today."

var fallbackSuggestion = model.ProactiveSuggestion{
	Suggestion: "Take a quiet moment to check in with yourself today.",
	ActionText: "Log your mood",
	ActionLink: "/mood",
}

// recent window sizes for the analysis summary.
const (
	analysisMoodWindow    = 14
	analysisJournalWindow = 5
)

// AnalyzeWellness summarizes the user's recent logs for the oracle and
// returns its insight. Without an oracle the latest writing is run through
// the keyword tier so a crisis signal is still surfaced.
func (s *Service) AnalyzeWellness(ctx context.Context, userID string) (model.WellnessInsight, error) {
	if strings.TrimSpace(userID) == "" {
		return model.WellnessInsight{}, nil
	}
	moods, err := s.store.ListMoodLogs(userID)
	if err != nil {
		return model.WellnessInsight{}, err
	}
	entries, err := s.store.ListJournalEntries(userID)
	if err != nil {
		return model.WellnessInsight{}, err
	}

	if s.oracle == nil {
		return localWellnessInsight(moods, entries), nil
	}
	payload, err := s.oracle.CompleteJSON(ctx, wellnessAnalysisSystem, wellnessSummary(moods, entries))
	if err != nil {
		s.logger.Warn("wellness analysis oracle failed", zap.Error(err))
		return localWellnessInsight(moods, entries), nil
	}
	var parsed struct {
		Insight     string `json:"insight"`
		CrisisLevel string `json:"crisisLevel"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil || strings.TrimSpace(parsed.Insight) == "" {
		return localWellnessInsight(moods, entries), nil
	}
	return model.WellnessInsight{
		Insight:     strings.TrimSpace(parsed.Insight),
		CrisisLevel: parseTier(parsed.CrisisLevel),
	}, nil
}

// ProactiveSuggestion produces one small nudge for today.
func (s *Service) ProactiveSuggestion(ctx context.Context, userID string) (model.ProactiveSuggestion, error) {
	if strings.TrimSpace(userID) == "" {
		return model.ProactiveSuggestion{}, nil
	}
	if s.oracle == nil {
		return fallbackSuggestion, nil
	}
	moods, err := s.store.ListMoodLogs(userID)
	if err != nil {
		return model.ProactiveSuggestion{}, err
	}
	entries, err := s.store.ListJournalEntries(userID)
	if err != nil {
		return model.ProactiveSuggestion{}, err
	}
	journeys, err := s.store.ListJourneyProgress(userID)
	if err != nil {
		return model.ProactiveSuggestion{}, err
	}

	var summary strings.Builder
	summary.WriteString(wellnessSummary(moods, entries))
	for _, progress := range journeys {
		fmt.Fprintf(&summary, "\nActive journey: %s, day %d.", progress.JourneyID, progress.CurrentDay)
	}

	payload, err := s.oracle.CompleteJSON(ctx, proactiveSuggestionSystem, summary.String())
	if err != nil {
		s.logger.Warn("proactive suggestion oracle failed", zap.Error(err))
		return fallbackSuggestion, nil
	}
	var parsed model.ProactiveSuggestion
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil || strings.TrimSpace(parsed.Suggestion) == "" {
		return fallbackSuggestion, nil
	}
	parsed.Suggestion = strings.TrimSpace(parsed.Suggestion)
	return parsed, nil
}

func wellnessSummary(moods []model.MoodLog, entries []model.JournalEntry) string {
	var b strings.Builder
	b.WriteString("Recent mood logs (newest first):\n")
	if len(moods) == 0 {
		b.WriteString("none\n")
	}
	for i, log := range moods {
		if i == analysisMoodWindow {
			break
		}
		fmt.Fprintf(&b, "- %s: %s", log.Date, log.Mood)
		if log.Note != "" {
			fmt.Fprintf(&b, " (%s)", log.Note)
		}
		b.WriteString("\n")
	}
	b.WriteString("Recent journal entries (newest first):\n")
	if len(entries) == 0 {
		b.WriteString("none\n")
	}
	for i, entry := range entries {
		if i == analysisJournalWindow {
			break
		}
		fmt.Fprintf(&b, "- %s: %s\n", entry.Date.Format(dateLayout), entry.Content)
	}
	return b.String()
}

func localWellnessInsight(moods []model.MoodLog, entries []model.JournalEntry) model.WellnessInsight {
	tier := model.RiskNone
	if len(entries) > 0 {
		tier = safety.KeywordTier(entries[0].Content)
	}
	if tier != model.RiskHigh && len(moods) > 0 {
		if noteTier := safety.KeywordTier(moods[0].Note); noteTier > tier {
			tier = noteTier
		}
	}
	return model.WellnessInsight{Insight: fallbackInsight, CrisisLevel: tier}
}

func parseTier(value string) model.RiskTier {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if strings.Contains(normalized, "high") {
		return model.RiskHigh
	}
	if strings.Contains(normalized, "low") {
		return model.RiskLow
	}
	return model.RiskNone
}
