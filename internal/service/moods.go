package service

import (
	"strings"

	"github.com/google/uuid"

	"sahaayak/internal/model"
)

const (
	MoodSourceCheckIn = "check-in"
	MoodSourceJournal = "journal"
)

type MoodLogResult struct {
	Log    model.MoodLog `json:"log"`
	Streak model.Streak  `json:"streak"`
	Badges []model.Badge `json:"badges,omitempty"`
}

// AddMoodLog records a mood for one day and source. A second log for the same
// (date, source) pair replaces the first. Every log advances the
// mood-tracking streak for its date.
func (s *Service) AddMoodLog(userID string, log model.MoodLog) (MoodLogResult, error) {
	if strings.TrimSpace(userID) == "" {
		return MoodLogResult{}, nil
	}
	if strings.TrimSpace(log.Mood) == "" {
		return MoodLogResult{}, ErrContentRequired
	}
	if log.Date == "" {
		log.Date = today()
	}
	if log.Source == "" {
		log.Source = MoodSourceCheckIn
	}
	if log.ID == "" {
		log.ID = uuid.NewString()
	}

	existing, err := s.store.ListMoodLogs(userID)
	if err != nil {
		return MoodLogResult{}, err
	}
	for _, prev := range existing {
		if prev.Date == log.Date && prev.Source == log.Source {
			if err := s.store.DeleteMoodLog(userID, prev.ID); err != nil {
				return MoodLogResult{}, err
			}
		}
	}
	if err := s.store.SaveMoodLog(userID, log); err != nil {
		return MoodLogResult{}, err
	}

	streak, badges, err := s.RecordAction(userID, model.StreakMoodTracking, log.Date)
	if err != nil {
		return MoodLogResult{}, err
	}
	return MoodLogResult{Log: log, Streak: streak, Badges: badges}, nil
}

func (s *Service) ListMoodLogs(userID string) ([]model.MoodLog, error) {
	if strings.TrimSpace(userID) == "" {
		return []model.MoodLog{}, nil
	}
	return s.store.ListMoodLogs(userID)
}
