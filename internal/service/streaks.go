package service

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"sahaayak/internal/content"
	"sahaayak/internal/model"
)

// RecordAction rolls the streak for one action type forward to actionDate
// (YYYY-MM-DD, empty means today) and returns the streak plus any badges
// newly earned. Same-day repeats are no-ops, a one-day gap increments, a
// longer gap resets to 1, and a backdated action is ignored.
func (s *Service) RecordAction(userID string, streakType model.StreakType, actionDate string) (model.Streak, []model.Badge, error) {
	if strings.TrimSpace(userID) == "" {
		return model.Streak{}, nil, nil
	}
	if streakType != model.StreakJournaling && streakType != model.StreakMoodTracking {
		return model.Streak{}, nil, ErrUnknownStreak
	}
	if actionDate == "" {
		actionDate = today()
	}
	if _, err := time.Parse(dateLayout, actionDate); err != nil {
		return model.Streak{}, nil, err
	}

	streak, found, err := s.store.GetStreak(userID, streakType)
	if err != nil {
		return model.Streak{}, nil, err
	}

	var earned []model.Badge
	if !found {
		streak = model.Streak{Type: streakType, Count: 1, LastDate: actionDate}
		if err := s.store.SaveStreak(userID, streak); err != nil {
			return model.Streak{}, nil, err
		}
		if id, ok := content.FirstActionBadgeID(string(streakType)); ok {
			badge, awarded, err := s.awardBadge(userID, id)
			if err != nil {
				return model.Streak{}, nil, err
			}
			if awarded {
				earned = append(earned, badge)
			}
		}
		return streak, earned, nil
	}

	diff, ok := dayDiff(streak.LastDate, actionDate)
	if !ok {
		diff = 1
	}
	switch {
	case diff == 0:
		return streak, nil, nil
	case diff < 0:
		s.logger.Warn("ignoring backdated streak action",
			zap.String("type", string(streakType)),
			zap.String("last_date", streak.LastDate),
			zap.String("action_date", actionDate))
		return streak, nil, nil
	case diff == 1:
		streak.Count++
	default:
		streak.Count = 1
	}
	streak.LastDate = actionDate
	if err := s.store.SaveStreak(userID, streak); err != nil {
		return model.Streak{}, nil, err
	}

	if id, ok := content.StreakBadgeID(string(streakType), streak.Count); ok {
		badge, awarded, err := s.awardBadge(userID, id)
		if err != nil {
			return model.Streak{}, nil, err
		}
		if awarded {
			earned = append(earned, badge)
		}
	}
	return streak, earned, nil
}

// awardBadge persists a badge once. Already-earned badges are never touched.
func (s *Service) awardBadge(userID string, badgeID string) (model.Badge, bool, error) {
	if _, exists, err := s.store.GetBadge(userID, badgeID); err != nil {
		return model.Badge{}, false, err
	} else if exists {
		return model.Badge{}, false, nil
	}
	info, ok := content.BadgeByID(badgeID)
	if !ok {
		return model.Badge{}, false, nil
	}
	badge := model.Badge{
		ID:         info.ID,
		Icon:       info.Icon,
		DateEarned: time.Now().UTC(),
	}
	if err := s.store.SaveBadge(userID, badge); err != nil {
		return model.Badge{}, false, err
	}
	return badge, true, nil
}

func (s *Service) ListStreaks(userID string) ([]model.Streak, error) {
	if strings.TrimSpace(userID) == "" {
		return []model.Streak{}, nil
	}
	return s.store.ListStreaks(userID)
}

func (s *Service) ListBadges(userID string) ([]model.Badge, error) {
	if strings.TrimSpace(userID) == "" {
		return []model.Badge{}, nil
	}
	return s.store.ListBadges(userID)
}
