package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"sahaayak/internal/model"
)

type userState struct {
	ChatMessages   []model.ChatMessage               `json:"chat_messages"`
	MoodLogs       map[string]model.MoodLog          `json:"mood_logs"`
	JournalEntries map[string]model.JournalEntry     `json:"journal_entries"`
	Streaks        map[string]model.Streak           `json:"streaks"`
	Badges         map[string]model.Badge            `json:"badges"`
	Journeys       map[string]model.JourneyProgress  `json:"journeys"`
	Intentions     map[string]model.Intention        `json:"intentions"`
	Contacts       map[string]model.EmergencyContact `json:"contacts"`
	Events         []model.EmergencyEvent            `json:"events"`
}

type fileState struct {
	Users    map[string]*userState             `json:"users"`
	Posts    map[string]model.CommunityPost    `json:"posts"`
	Comments map[string]model.CommunityComment `json:"comments"`
}

type JSONStore struct {
	filePath string
	mu       sync.RWMutex
	state    fileState
}

func NewJSONStore(filePath string) (*JSONStore, error) {
	s := &JSONStore{
		filePath: filePath,
		state: fileState{
			Users:    make(map[string]*userState),
			Posts:    make(map[string]model.CommunityPost),
			Comments: make(map[string]model.CommunityComment),
		},
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func newUserState() *userState {
	return &userState{
		ChatMessages:   make([]model.ChatMessage, 0),
		MoodLogs:       make(map[string]model.MoodLog),
		JournalEntries: make(map[string]model.JournalEntry),
		Streaks:        make(map[string]model.Streak),
		Badges:         make(map[string]model.Badge),
		Journeys:       make(map[string]model.JourneyProgress),
		Intentions:     make(map[string]model.Intention),
		Contacts:       make(map[string]model.EmergencyContact),
		Events:         make([]model.EmergencyEvent, 0),
	}
}

// userLocked returns the state bucket for userID, creating it on first use.
// Callers must hold the write lock.
func (s *JSONStore) userLocked(userID string) *userState {
	u, ok := s.state.Users[userID]
	if !ok {
		u = newUserState()
		s.state.Users[userID] = u
	}
	return u
}

func (s *JSONStore) SaveChatMessage(userID string, msg model.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.userLocked(userID)
	for i := range u.ChatMessages {
		if u.ChatMessages[i].ID == msg.ID {
			u.ChatMessages[i] = msg
			return s.persistLocked()
		}
	}
	u.ChatMessages = append(u.ChatMessages, msg)
	return s.persistLocked()
}

func (s *JSONStore) ListChatMessages(userID string) ([]model.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.state.Users[userID]
	if !ok {
		return []model.ChatMessage{}, nil
	}
	result := make([]model.ChatMessage, len(u.ChatMessages))
	copy(result, u.ChatMessages)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.Before(result[j].Timestamp)
	})
	return result, nil
}

func (s *JSONStore) SaveMoodLog(userID string, log model.MoodLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userLocked(userID).MoodLogs[log.ID] = log
	return s.persistLocked()
}

func (s *JSONStore) DeleteMoodLog(userID string, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.userLocked(userID).MoodLogs, id)
	return s.persistLocked()
}

func (s *JSONStore) ListMoodLogs(userID string) ([]model.MoodLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.MoodLog, 0)
	u, ok := s.state.Users[userID]
	if !ok {
		return result, nil
	}
	for _, log := range u.MoodLogs {
		result = append(result, log)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date > result[j].Date
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (s *JSONStore) SaveJournalEntry(userID string, entry model.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userLocked(userID).JournalEntries[entry.ID] = entry
	return s.persistLocked()
}

func (s *JSONStore) ListJournalEntries(userID string) ([]model.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.JournalEntry, 0)
	u, ok := s.state.Users[userID]
	if !ok {
		return result, nil
	}
	for _, entry := range u.JournalEntries {
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

func (s *JSONStore) SaveStreak(userID string, streak model.Streak) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userLocked(userID).Streaks[string(streak.Type)] = streak
	return s.persistLocked()
}

func (s *JSONStore) GetStreak(userID string, streakType model.StreakType) (model.Streak, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.state.Users[userID]
	if !ok {
		return model.Streak{}, false, nil
	}
	streak, ok := u.Streaks[string(streakType)]
	return streak, ok, nil
}

func (s *JSONStore) ListStreaks(userID string) ([]model.Streak, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.Streak, 0)
	u, ok := s.state.Users[userID]
	if !ok {
		return result, nil
	}
	for _, streak := range u.Streaks {
		result = append(result, streak)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Type < result[j].Type
	})
	return result, nil
}

func (s *JSONStore) SaveBadge(userID string, badge model.Badge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userLocked(userID).Badges[badge.ID] = badge
	return s.persistLocked()
}

func (s *JSONStore) GetBadge(userID string, badgeID string) (model.Badge, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.state.Users[userID]
	if !ok {
		return model.Badge{}, false, nil
	}
	badge, ok := u.Badges[badgeID]
	return badge, ok, nil
}

func (s *JSONStore) ListBadges(userID string) ([]model.Badge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.Badge, 0)
	u, ok := s.state.Users[userID]
	if !ok {
		return result, nil
	}
	for _, badge := range u.Badges {
		result = append(result, badge)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DateEarned.Before(result[j].DateEarned)
	})
	return result, nil
}

func (s *JSONStore) SaveJourneyProgress(userID string, progress model.JourneyProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userLocked(userID).Journeys[progress.JourneyID] = progress
	return s.persistLocked()
}

func (s *JSONStore) GetJourneyProgress(userID string, journeyID string) (model.JourneyProgress, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.state.Users[userID]
	if !ok {
		return model.JourneyProgress{}, false, nil
	}
	progress, ok := u.Journeys[journeyID]
	return progress, ok, nil
}

func (s *JSONStore) ListJourneyProgress(userID string) ([]model.JourneyProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.JourneyProgress, 0)
	u, ok := s.state.Users[userID]
	if !ok {
		return result, nil
	}
	for _, progress := range u.Journeys {
		result = append(result, progress)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].JourneyID < result[j].JourneyID
	})
	return result, nil
}

func (s *JSONStore) SaveIntention(userID string, intention model.Intention) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userLocked(userID).Intentions[intention.ID] = intention
	return s.persistLocked()
}

func (s *JSONStore) GetIntention(userID string, id string) (model.Intention, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.state.Users[userID]
	if !ok {
		return model.Intention{}, false, nil
	}
	intention, ok := u.Intentions[id]
	return intention, ok, nil
}

func (s *JSONStore) DeleteIntention(userID string, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.userLocked(userID).Intentions, id)
	return s.persistLocked()
}

func (s *JSONStore) ListIntentions(userID string) ([]model.Intention, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.Intention, 0)
	u, ok := s.state.Users[userID]
	if !ok {
		return result, nil
	}
	for _, intention := range u.Intentions {
		result = append(result, intention)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Title < result[j].Title
	})
	return result, nil
}

func (s *JSONStore) SaveEmergencyContact(userID string, contact model.EmergencyContact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userLocked(userID).Contacts[contact.ID] = contact
	return s.persistLocked()
}

func (s *JSONStore) DeleteEmergencyContact(userID string, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.userLocked(userID).Contacts, id)
	return s.persistLocked()
}

func (s *JSONStore) ListEmergencyContacts(userID string) ([]model.EmergencyContact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.EmergencyContact, 0)
	u, ok := s.state.Users[userID]
	if !ok {
		return result, nil
	}
	for _, contact := range u.Contacts {
		result = append(result, contact)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (s *JSONStore) SaveEmergencyEvent(userID string, event model.EmergencyEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.userLocked(userID)
	u.Events = append(u.Events, event)
	return s.persistLocked()
}

func (s *JSONStore) ListEmergencyEvents(userID string) ([]model.EmergencyEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.EmergencyEvent, 0)
	u, ok := s.state.Users[userID]
	if !ok {
		return result, nil
	}
	result = append(result, u.Events...)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	return result, nil
}

func (s *JSONStore) SavePost(post model.CommunityPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Posts[post.ID] = post
	return s.persistLocked()
}

func (s *JSONStore) GetPost(id string) (model.CommunityPost, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	post, ok := s.state.Posts[id]
	return post, ok, nil
}

func (s *JSONStore) ListPosts(circleID string) ([]model.CommunityPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.CommunityPost, 0)
	for _, post := range s.state.Posts {
		if post.CircleID == circleID {
			result = append(result, post)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	return result, nil
}

func (s *JSONStore) SaveComment(comment model.CommunityComment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Comments[comment.ID] = comment
	return s.persistLocked()
}

func (s *JSONStore) GetComment(id string) (model.CommunityComment, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	comment, ok := s.state.Comments[id]
	return comment, ok, nil
}

func (s *JSONStore) ListCommentsByPost(postID string) ([]model.CommunityComment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.CommunityComment, 0)
	for _, comment := range s.state.Comments {
		if comment.PostID == postID {
			result = append(result, comment)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp.Before(result[j].Timestamp)
	})
	return result, nil
}

func (s *JSONStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	var state fileState
	if err := json.Unmarshal(data, &state); err != nil {
		return err
	}
	if state.Users == nil {
		state.Users = make(map[string]*userState)
	}
	for _, u := range state.Users {
		if u.MoodLogs == nil {
			u.MoodLogs = make(map[string]model.MoodLog)
		}
		if u.JournalEntries == nil {
			u.JournalEntries = make(map[string]model.JournalEntry)
		}
		if u.Streaks == nil {
			u.Streaks = make(map[string]model.Streak)
		}
		if u.Badges == nil {
			u.Badges = make(map[string]model.Badge)
		}
		if u.Journeys == nil {
			u.Journeys = make(map[string]model.JourneyProgress)
		}
		if u.Intentions == nil {
			u.Intentions = make(map[string]model.Intention)
		}
		if u.Contacts == nil {
			u.Contacts = make(map[string]model.EmergencyContact)
		}
	}
	if state.Posts == nil {
		state.Posts = make(map[string]model.CommunityPost)
	}
	if state.Comments == nil {
		state.Comments = make(map[string]model.CommunityComment)
	}
	s.state = state
	return nil
}

func (s *JSONStore) persistLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := s.filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpPath, s.filePath)
}
