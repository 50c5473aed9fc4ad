package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sahaayak/internal/model"
)

const fallbackJournalPrompt = "What is one small thing you are grateful for today?"

const journalPromptSystem = `You are a gentle journaling coach for a mental wellness app.
Offer exactly one short, open-ended reflective journal prompt for today.
Respond with the prompt sentence only, no preamble and no quotation marks.`

type JournalEntryResult struct {
	Entry  model.JournalEntry `json:"entry"`
	Streak model.Streak       `json:"streak"`
	Badges []model.Badge      `json:"badges,omitempty"`
}

// AddJournalEntry stores the entry, advances the journaling streak, and when
// a mood is attached also records a journal-source mood log for the same day.
func (s *Service) AddJournalEntry(userID string, entry model.JournalEntry) (JournalEntryResult, error) {
	if strings.TrimSpace(userID) == "" {
		return JournalEntryResult{}, nil
	}
	if strings.TrimSpace(entry.Content) == "" {
		return JournalEntryResult{}, ErrContentRequired
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now().UTC()
	}
	if err := s.store.SaveJournalEntry(userID, entry); err != nil {
		return JournalEntryResult{}, err
	}

	day := entry.Date.Format(dateLayout)
	streak, badges, err := s.RecordAction(userID, model.StreakJournaling, day)
	if err != nil {
		return JournalEntryResult{}, err
	}
	result := JournalEntryResult{Entry: entry, Streak: streak, Badges: badges}

	if strings.TrimSpace(entry.Mood) != "" {
		moodResult, err := s.AddMoodLog(userID, model.MoodLog{
			Date:   day,
			Mood:   entry.Mood,
			Note:   entry.Content,
			Source: MoodSourceJournal,
		})
		if err != nil {
			return JournalEntryResult{}, err
		}
		result.Badges = append(result.Badges, moodResult.Badges...)
	}
	return result, nil
}

func (s *Service) ListJournalEntries(userID string) ([]model.JournalEntry, error) {
	if strings.TrimSpace(userID) == "" {
		return []model.JournalEntry{}, nil
	}
	return s.store.ListJournalEntries(userID)
}

// DailyJournalPrompt asks the oracle for one reflective prompt, falling back
// to a fixed prompt when the oracle is absent or fails.
func (s *Service) DailyJournalPrompt(ctx context.Context) string {
	if s.oracle == nil {
		return fallbackJournalPrompt
	}
	reply, err := s.oracle.Complete(ctx, journalPromptSystem, nil, "Give me today's journal prompt.")
	if err != nil {
		s.logger.Warn("journal prompt generation failed", zap.Error(err))
		return fallbackJournalPrompt
	}
	prompt := strings.Trim(strings.TrimSpace(reply), `"'`)
	if prompt == "" {
		return fallbackJournalPrompt
	}
	return prompt
}
