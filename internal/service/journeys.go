package service

import (
	"strings"

	"sahaayak/internal/content"
	"sahaayak/internal/model"
)

type JourneyProgressResult struct {
	Progress  model.JourneyProgress `json:"progress"`
	Completed bool                  `json:"completed"`
	Badges    []model.Badge         `json:"badges,omitempty"`
}

func (s *Service) Journeys() []model.Journey {
	return content.Journeys()
}

// StartJourney creates day-1 progress for a journey. Starting an already
// started journey returns the existing progress untouched.
func (s *Service) StartJourney(userID string, journeyID string) (model.JourneyProgress, error) {
	if strings.TrimSpace(userID) == "" {
		return model.JourneyProgress{}, nil
	}
	if _, ok := content.JourneyByID(journeyID); !ok {
		return model.JourneyProgress{}, ErrUnknownJourney
	}
	existing, found, err := s.store.GetJourneyProgress(userID, journeyID)
	if err != nil {
		return model.JourneyProgress{}, err
	}
	if found {
		return existing, nil
	}
	progress := model.JourneyProgress{
		JourneyID:           journeyID,
		CurrentDay:          1,
		CompletedTasksByDay: make(map[int][]string),
	}
	if err := s.store.SaveJourneyProgress(userID, progress); err != nil {
		return model.JourneyProgress{}, err
	}
	return progress, nil
}

// CompleteJourneyTask marks one task of the current day done. Completing the
// same task twice is a no-op.
func (s *Service) CompleteJourneyTask(userID string, journeyID string, taskID string) (JourneyProgressResult, error) {
	if strings.TrimSpace(userID) == "" {
		return JourneyProgressResult{}, nil
	}
	journey, ok := content.JourneyByID(journeyID)
	if !ok {
		return JourneyProgressResult{}, ErrUnknownJourney
	}
	progress, found, err := s.store.GetJourneyProgress(userID, journeyID)
	if err != nil {
		return JourneyProgressResult{}, err
	}
	if !found {
		return JourneyProgressResult{}, ErrJourneyNotStarted
	}

	day := currentJourneyDay(journey, progress.CurrentDay)
	if day == nil || !dayHasTask(*day, taskID) {
		return JourneyProgressResult{}, ErrUnknownTask
	}
	if progress.CompletedTasksByDay == nil {
		progress.CompletedTasksByDay = make(map[int][]string)
	}
	done := progress.CompletedTasksByDay[progress.CurrentDay]
	if !containsString(done, taskID) {
		progress.CompletedTasksByDay[progress.CurrentDay] = append(done, taskID)
		if err := s.store.SaveJourneyProgress(userID, progress); err != nil {
			return JourneyProgressResult{}, err
		}
	}
	return JourneyProgressResult{
		Progress:  progress,
		Completed: journeyCompleted(journey, progress),
	}, nil
}

// AdvanceJourneyDay moves to the next day unconditionally. Advancing off the
// final defined day completes the journey and awards its badge once.
func (s *Service) AdvanceJourneyDay(userID string, journeyID string) (JourneyProgressResult, error) {
	if strings.TrimSpace(userID) == "" {
		return JourneyProgressResult{}, nil
	}
	journey, ok := content.JourneyByID(journeyID)
	if !ok {
		return JourneyProgressResult{}, ErrUnknownJourney
	}
	progress, found, err := s.store.GetJourneyProgress(userID, journeyID)
	if err != nil {
		return JourneyProgressResult{}, err
	}
	if !found {
		return JourneyProgressResult{}, ErrJourneyNotStarted
	}

	leavingLastDay := progress.CurrentDay == len(journey.Days)
	progress.CurrentDay++
	if err := s.store.SaveJourneyProgress(userID, progress); err != nil {
		return JourneyProgressResult{}, err
	}

	result := JourneyProgressResult{
		Progress:  progress,
		Completed: journeyCompleted(journey, progress),
	}
	if leavingLastDay {
		badge, awarded, err := s.awardBadge(userID, journeyID+"_complete")
		if err != nil {
			return JourneyProgressResult{}, err
		}
		if awarded {
			result.Badges = append(result.Badges, badge)
		}
	}
	return result, nil
}

func (s *Service) IsJourneyCompleted(userID string, journeyID string) (bool, error) {
	if strings.TrimSpace(userID) == "" {
		return false, nil
	}
	journey, ok := content.JourneyByID(journeyID)
	if !ok {
		return false, ErrUnknownJourney
	}
	progress, found, err := s.store.GetJourneyProgress(userID, journeyID)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	return journeyCompleted(journey, progress), nil
}

func (s *Service) ListJourneyProgress(userID string) ([]model.JourneyProgress, error) {
	if strings.TrimSpace(userID) == "" {
		return []model.JourneyProgress{}, nil
	}
	return s.store.ListJourneyProgress(userID)
}

// journeyCompleted holds when the progress has moved past the final day, or
// is sitting on the final day with every task of that day done.
func journeyCompleted(journey model.Journey, progress model.JourneyProgress) bool {
	total := len(journey.Days)
	if progress.CurrentDay > total {
		return true
	}
	if progress.CurrentDay != total {
		return false
	}
	day := currentJourneyDay(journey, progress.CurrentDay)
	if day == nil {
		return false
	}
	done := progress.CompletedTasksByDay[progress.CurrentDay]
	for _, task := range day.Tasks {
		if !containsString(done, task.ID) {
			return false
		}
	}
	return true
}

func currentJourneyDay(journey model.Journey, dayNum int) *model.JourneyDay {
	for i := range journey.Days {
		if journey.Days[i].Day == dayNum {
			return &journey.Days[i]
		}
	}
	return nil
}

func dayHasTask(day model.JourneyDay, taskID string) bool {
	for _, task := range day.Tasks {
		if task.ID == taskID {
			return true
		}
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
