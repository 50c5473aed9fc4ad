package store

import (
	"sahaayak/internal/model"
)

// Store is the keyed record store behind the service. Per-user collections
// are addressed by userID; community posts and comments are global. Save
// operations are upserts keyed by record ID; per-record atomicity is the only
// transactional guarantee.
type Store interface {
	SaveChatMessage(userID string, msg model.ChatMessage) error
	ListChatMessages(userID string) ([]model.ChatMessage, error)

	SaveMoodLog(userID string, log model.MoodLog) error
	DeleteMoodLog(userID string, id string) error
	ListMoodLogs(userID string) ([]model.MoodLog, error)

	SaveJournalEntry(userID string, entry model.JournalEntry) error
	ListJournalEntries(userID string) ([]model.JournalEntry, error)

	SaveStreak(userID string, streak model.Streak) error
	GetStreak(userID string, streakType model.StreakType) (model.Streak, bool, error)
	ListStreaks(userID string) ([]model.Streak, error)

	SaveBadge(userID string, badge model.Badge) error
	GetBadge(userID string, badgeID string) (model.Badge, bool, error)
	ListBadges(userID string) ([]model.Badge, error)

	SaveJourneyProgress(userID string, progress model.JourneyProgress) error
	GetJourneyProgress(userID string, journeyID string) (model.JourneyProgress, bool, error)
	ListJourneyProgress(userID string) ([]model.JourneyProgress, error)

	SaveIntention(userID string, intention model.Intention) error
	GetIntention(userID string, id string) (model.Intention, bool, error)
	DeleteIntention(userID string, id string) error
	ListIntentions(userID string) ([]model.Intention, error)

	SaveEmergencyContact(userID string, contact model.EmergencyContact) error
	DeleteEmergencyContact(userID string, id string) error
	ListEmergencyContacts(userID string) ([]model.EmergencyContact, error)
	SaveEmergencyEvent(userID string, event model.EmergencyEvent) error
	ListEmergencyEvents(userID string) ([]model.EmergencyEvent, error)

	SavePost(post model.CommunityPost) error
	GetPost(id string) (model.CommunityPost, bool, error)
	ListPosts(circleID string) ([]model.CommunityPost, error)
	SaveComment(comment model.CommunityComment) error
	GetComment(id string) (model.CommunityComment, bool, error)
	ListCommentsByPost(postID string) ([]model.CommunityComment, error)
}
