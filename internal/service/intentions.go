package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sahaayak/internal/model"
)

const habitSuggestionSystem = `You help users of a mental wellness app turn a vague goal into concrete habits.
Break the user's goal into 3 or 4 small, trackable habits.
Respond with JSON only: {"suggestions": ["habit", ...]}.`

var fallbackHabitSuggestions = []string{
	"Spend 10 minutes on it each morning",
	"Write down one small step every evening",
	"Review your progress once a week",
}

type IntentionStatus struct {
	model.Intention
	Done bool `json:"done"`
}

func (s *Service) AddIntention(userID string, title string, frequency model.IntentionFrequency, target int) (model.Intention, error) {
	if strings.TrimSpace(userID) == "" {
		return model.Intention{}, nil
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Intention{}, ErrTitleRequired
	}
	if frequency != model.FrequencyWeekly {
		frequency = model.FrequencyDaily
	}
	if frequency == model.FrequencyDaily || target < 1 {
		target = 1
	}
	intention := model.Intention{
		ID:             uuid.NewString(),
		Title:          title,
		Frequency:      frequency,
		Target:         target,
		CompletedDates: []string{},
	}
	if err := s.store.SaveIntention(userID, intention); err != nil {
		return model.Intention{}, err
	}
	return intention, nil
}

// CompleteIntention appends the date (YYYY-MM-DD, empty means today) to the
// intention's completion history. Repeats on the same day are no-ops.
func (s *Service) CompleteIntention(userID string, id string, date string) (model.Intention, error) {
	if strings.TrimSpace(userID) == "" {
		return model.Intention{}, nil
	}
	intention, found, err := s.store.GetIntention(userID, id)
	if err != nil {
		return model.Intention{}, err
	}
	if !found {
		return model.Intention{}, ErrIntentionNotFound
	}
	if date == "" {
		date = today()
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return model.Intention{}, err
	}
	if !containsString(intention.CompletedDates, date) {
		intention.CompletedDates = append(intention.CompletedDates, date)
		if err := s.store.SaveIntention(userID, intention); err != nil {
			return model.Intention{}, err
		}
	}
	return intention, nil
}

func (s *Service) DeleteIntention(userID string, id string) error {
	if strings.TrimSpace(userID) == "" {
		return nil
	}
	if _, found, err := s.store.GetIntention(userID, id); err != nil {
		return err
	} else if !found {
		return ErrIntentionNotFound
	}
	return s.store.DeleteIntention(userID, id)
}

// ListIntentions returns the user's intentions with the done flag computed
// against asOf (YYYY-MM-DD, empty means today).
func (s *Service) ListIntentions(userID string, asOf string) ([]IntentionStatus, error) {
	if strings.TrimSpace(userID) == "" {
		return []IntentionStatus{}, nil
	}
	if asOf == "" {
		asOf = today()
	}
	intentions, err := s.store.ListIntentions(userID)
	if err != nil {
		return nil, err
	}
	result := make([]IntentionStatus, 0, len(intentions))
	for _, intention := range intentions {
		result = append(result, IntentionStatus{
			Intention: intention,
			Done:      IntentionDone(intention, asOf),
		})
	}
	return result, nil
}

// IntentionDone reports whether the intention is satisfied for the period
// containing date. Daily intentions need a completion on that day; weekly
// ones need at least Target completions within the Monday-start week.
func IntentionDone(intention model.Intention, date string) bool {
	if intention.Frequency == model.FrequencyDaily {
		return containsString(intention.CompletedDates, date)
	}
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	offset := (int(day.Weekday()) + 6) % 7
	weekStart := day.AddDate(0, 0, -offset)
	weekEnd := weekStart.AddDate(0, 0, 7)

	count := 0
	for _, completed := range intention.CompletedDates {
		d, err := time.Parse(dateLayout, completed)
		if err != nil {
			continue
		}
		if !d.Before(weekStart) && d.Before(weekEnd) {
			count++
		}
	}
	return count >= intention.Target
}

// SuggestHabits breaks a vague goal into trackable habits via the oracle,
// with a fixed fallback list.
func (s *Service) SuggestHabits(ctx context.Context, goal string) []string {
	goal = strings.TrimSpace(goal)
	if goal == "" || s.oracle == nil {
		return fallbackHabitSuggestions
	}
	payload, err := s.oracle.CompleteJSON(ctx, habitSuggestionSystem, "Goal: "+goal)
	if err != nil {
		s.logger.Warn("habit suggestion failed", zap.Error(err))
		return fallbackHabitSuggestions
	}
	var parsed struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil || len(parsed.Suggestions) == 0 {
		return fallbackHabitSuggestions
	}
	suggestions := make([]string, 0, 4)
	for _, habit := range parsed.Suggestions {
		habit = strings.TrimSpace(habit)
		if habit == "" {
			continue
		}
		suggestions = append(suggestions, habit)
		if len(suggestions) == 4 {
			break
		}
	}
	if len(suggestions) == 0 {
		return fallbackHabitSuggestions
	}
	return suggestions
}
