package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"sahaayak/internal/model"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(filePath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", filePath)
	if err != nil {
		return nil, err
	}
	st := &SQLiteStore{db: db}
	if err := st.initSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return st, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveChatMessage(userID string, msg model.ChatMessage) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO chat_messages
		(id, user_id, text, sender, timestamp, persona, quick_replies, crisis)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		msg.ID,
		userID,
		msg.Text,
		msg.Sender,
		toTS(msg.Timestamp),
		string(msg.Persona),
		toJSON(msg.QuickReplies),
		boolToInt(msg.Crisis),
	)
	return err
}

func (s *SQLiteStore) ListChatMessages(userID string) ([]model.ChatMessage, error) {
	rows, err := s.db.Query(`
		SELECT id, text, sender, timestamp, persona, quick_replies, crisis
		FROM chat_messages
		WHERE user_id = ?
		ORDER BY timestamp ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.ChatMessage, 0)
	for rows.Next() {
		var msg model.ChatMessage
		var ts, persona, quickReplies string
		var crisis int
		if err := rows.Scan(
			&msg.ID,
			&msg.Text,
			&msg.Sender,
			&ts,
			&persona,
			&quickReplies,
			&crisis,
		); err != nil {
			return nil, err
		}
		msg.Timestamp = fromTS(ts)
		msg.Persona = model.Persona(persona)
		msg.QuickReplies = fromJSONStrings(quickReplies)
		msg.Crisis = intToBool(crisis)
		result = append(result, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *SQLiteStore) SaveMoodLog(userID string, log model.MoodLog) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO mood_logs
		(id, user_id, date, mood, activities, people, note, source)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		log.ID,
		userID,
		log.Date,
		log.Mood,
		toJSON(log.Activities),
		toJSON(log.People),
		log.Note,
		log.Source,
	)
	return err
}

func (s *SQLiteStore) DeleteMoodLog(userID string, id string) error {
	_, err := s.db.Exec(`DELETE FROM mood_logs WHERE user_id = ? AND id = ?`, userID, id)
	return err
}

func (s *SQLiteStore) ListMoodLogs(userID string) ([]model.MoodLog, error) {
	rows, err := s.db.Query(`
		SELECT id, date, mood, activities, people, note, source
		FROM mood_logs
		WHERE user_id = ?
		ORDER BY date DESC, id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.MoodLog, 0)
	for rows.Next() {
		var log model.MoodLog
		var activities, people string
		if err := rows.Scan(
			&log.ID,
			&log.Date,
			&log.Mood,
			&activities,
			&people,
			&log.Note,
			&log.Source,
		); err != nil {
			return nil, err
		}
		log.Activities = fromJSONStrings(activities)
		log.People = fromJSONStrings(people)
		result = append(result, log)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *SQLiteStore) SaveJournalEntry(userID string, entry model.JournalEntry) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO journal_entries
		(id, user_id, date, prompt, content, mood)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID,
		userID,
		toTS(entry.Date),
		entry.Prompt,
		entry.Content,
		entry.Mood,
	)
	return err
}

func (s *SQLiteStore) ListJournalEntries(userID string) ([]model.JournalEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, date, prompt, content, mood
		FROM journal_entries
		WHERE user_id = ?
		ORDER BY date DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.JournalEntry, 0)
	for rows.Next() {
		var entry model.JournalEntry
		var date string
		if err := rows.Scan(
			&entry.ID,
			&date,
			&entry.Prompt,
			&entry.Content,
			&entry.Mood,
		); err != nil {
			return nil, err
		}
		entry.Date = fromTS(date)
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *SQLiteStore) SaveStreak(userID string, streak model.Streak) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO streaks
		(user_id, type, count, last_date)
		VALUES (?, ?, ?, ?)`,
		userID,
		string(streak.Type),
		streak.Count,
		streak.LastDate,
	)
	return err
}

func (s *SQLiteStore) GetStreak(userID string, streakType model.StreakType) (model.Streak, bool, error) {
	row := s.db.QueryRow(`
		SELECT type, count, last_date
		FROM streaks
		WHERE user_id = ? AND type = ?`,
		userID,
		string(streakType),
	)
	var streak model.Streak
	var kind string
	err := row.Scan(&kind, &streak.Count, &streak.LastDate)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Streak{}, false, nil
	}
	if err != nil {
		return model.Streak{}, false, err
	}
	streak.Type = model.StreakType(kind)
	return streak, true, nil
}

func (s *SQLiteStore) ListStreaks(userID string) ([]model.Streak, error) {
	rows, err := s.db.Query(`
		SELECT type, count, last_date
		FROM streaks
		WHERE user_id = ?
		ORDER BY type`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Streak, 0)
	for rows.Next() {
		var streak model.Streak
		var kind string
		if err := rows.Scan(&kind, &streak.Count, &streak.LastDate); err != nil {
			return nil, err
		}
		streak.Type = model.StreakType(kind)
		result = append(result, streak)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *SQLiteStore) SaveBadge(userID string, badge model.Badge) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO badges
		(user_id, id, icon, date_earned)
		VALUES (?, ?, ?, ?)`,
		userID,
		badge.ID,
		badge.Icon,
		toTS(badge.DateEarned),
	)
	return err
}

func (s *SQLiteStore) GetBadge(userID string, badgeID string) (model.Badge, bool, error) {
	row := s.db.QueryRow(`
		SELECT id, icon, date_earned
		FROM badges
		WHERE user_id = ? AND id = ?`,
		userID,
		badgeID,
	)
	var badge model.Badge
	var earned string
	err := row.Scan(&badge.ID, &badge.Icon, &earned)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Badge{}, false, nil
	}
	if err != nil {
		return model.Badge{}, false, err
	}
	badge.DateEarned = fromTS(earned)
	return badge, true, nil
}

func (s *SQLiteStore) ListBadges(userID string) ([]model.Badge, error) {
	rows, err := s.db.Query(`
		SELECT id, icon, date_earned
		FROM badges
		WHERE user_id = ?
		ORDER BY date_earned ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Badge, 0)
	for rows.Next() {
		var badge model.Badge
		var earned string
		if err := rows.Scan(&badge.ID, &badge.Icon, &earned); err != nil {
			return nil, err
		}
		badge.DateEarned = fromTS(earned)
		result = append(result, badge)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *SQLiteStore) SaveJourneyProgress(userID string, progress model.JourneyProgress) error {
	tasks, err := json.Marshal(progress.CompletedTasksByDay)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO journey_progress
		(user_id, journey_id, current_day, completed_tasks)
		VALUES (?, ?, ?, ?)`,
		userID,
		progress.JourneyID,
		progress.CurrentDay,
		string(tasks),
	)
	return err
}

func (s *SQLiteStore) GetJourneyProgress(userID string, journeyID string) (model.JourneyProgress, bool, error) {
	row := s.db.QueryRow(`
		SELECT journey_id, current_day, completed_tasks
		FROM journey_progress
		WHERE user_id = ? AND journey_id = ?`,
		userID,
		journeyID,
	)
	var progress model.JourneyProgress
	var tasks string
	err := row.Scan(&progress.JourneyID, &progress.CurrentDay, &tasks)
	if errors.Is(err, sql.ErrNoRows) {
		return model.JourneyProgress{}, false, nil
	}
	if err != nil {
		return model.JourneyProgress{}, false, err
	}
	progress.CompletedTasksByDay = fromJSONTaskMap(tasks)
	return progress, true, nil
}

func (s *SQLiteStore) ListJourneyProgress(userID string) ([]model.JourneyProgress, error) {
	rows, err := s.db.Query(`
		SELECT journey_id, current_day, completed_tasks
		FROM journey_progress
		WHERE user_id = ?
		ORDER BY journey_id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.JourneyProgress, 0)
	for rows.Next() {
		var progress model.JourneyProgress
		var tasks string
		if err := rows.Scan(&progress.JourneyID, &progress.CurrentDay, &tasks); err != nil {
			return nil, err
		}
		progress.CompletedTasksByDay = fromJSONTaskMap(tasks)
		result = append(result, progress)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *SQLiteStore) SaveIntention(userID string, intention model.Intention) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO intentions
		(id, user_id, title, frequency, target, completed_dates)
		VALUES (?, ?, ?, ?, ?, ?)`,
		intention.ID,
		userID,
		intention.Title,
		string(intention.Frequency),
		intention.Target,
		toJSON(intention.CompletedDates),
	)
	return err
}

func (s *SQLiteStore) GetIntention(userID string, id string) (model.Intention, bool, error) {
	row := s.db.QueryRow(`
		SELECT id, title, frequency, target, completed_dates
		FROM intentions
		WHERE user_id = ? AND id = ?`,
		userID,
		id,
	)
	var intention model.Intention
	var frequency, dates string
	err := row.Scan(&intention.ID, &intention.Title, &frequency, &intention.Target, &dates)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Intention{}, false, nil
	}
	if err != nil {
		return model.Intention{}, false, err
	}
	intention.Frequency = model.IntentionFrequency(frequency)
	intention.CompletedDates = fromJSONStrings(dates)
	return intention, true, nil
}

func (s *SQLiteStore) DeleteIntention(userID string, id string) error {
	_, err := s.db.Exec(`DELETE FROM intentions WHERE user_id = ? AND id = ?`, userID, id)
	return err
}

func (s *SQLiteStore) ListIntentions(userID string) ([]model.Intention, error) {
	rows, err := s.db.Query(`
		SELECT id, title, frequency, target, completed_dates
		FROM intentions
		WHERE user_id = ?
		ORDER BY title`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Intention, 0)
	for rows.Next() {
		var intention model.Intention
		var frequency, dates string
		if err := rows.Scan(&intention.ID, &intention.Title, &frequency, &intention.Target, &dates); err != nil {
			return nil, err
		}
		intention.Frequency = model.IntentionFrequency(frequency)
		intention.CompletedDates = fromJSONStrings(dates)
		result = append(result, intention)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *SQLiteStore) SaveEmergencyContact(userID string, contact model.EmergencyContact) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO emergency_contacts
		(id, user_id, name, phone, relationship)
		VALUES (?, ?, ?, ?, ?)`,
		contact.ID,
		userID,
		contact.Name,
		contact.Phone,
		contact.Relationship,
	)
	return err
}

func (s *SQLiteStore) DeleteEmergencyContact(userID string, id string) error {
	_, err := s.db.Exec(`DELETE FROM emergency_contacts WHERE user_id = ? AND id = ?`, userID, id)
	return err
}

func (s *SQLiteStore) ListEmergencyContacts(userID string) ([]model.EmergencyContact, error) {
	rows, err := s.db.Query(`
		SELECT id, name, phone, relationship
		FROM emergency_contacts
		WHERE user_id = ?
		ORDER BY name`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.EmergencyContact, 0)
	for rows.Next() {
		var contact model.EmergencyContact
		if err := rows.Scan(&contact.ID, &contact.Name, &contact.Phone, &contact.Relationship); err != nil {
			return nil, err
		}
		result = append(result, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *SQLiteStore) SaveEmergencyEvent(userID string, event model.EmergencyEvent) error {
	_, err := s.db.Exec(`
		INSERT INTO emergency_events
		(id, user_id, action, timestamp)
		VALUES (?, ?, ?, ?)`,
		event.ID,
		userID,
		event.Action,
		toTS(event.Timestamp),
	)
	return err
}

func (s *SQLiteStore) ListEmergencyEvents(userID string) ([]model.EmergencyEvent, error) {
	rows, err := s.db.Query(`
		SELECT id, action, timestamp
		FROM emergency_events
		WHERE user_id = ?
		ORDER BY timestamp DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.EmergencyEvent, 0)
	for rows.Next() {
		var event model.EmergencyEvent
		var ts string
		if err := rows.Scan(&event.ID, &event.Action, &ts); err != nil {
			return nil, err
		}
		event.Timestamp = fromTS(ts)
		result = append(result, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *SQLiteStore) SavePost(post model.CommunityPost) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO posts
		(id, circle_id, author_id, author_name, title, content, timestamp, likes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		post.ID,
		post.CircleID,
		post.AuthorID,
		post.AuthorName,
		post.Title,
		post.Content,
		toTS(post.Timestamp),
		toJSON(post.Likes),
	)
	return err
}

func (s *SQLiteStore) GetPost(id string) (model.CommunityPost, bool, error) {
	row := s.db.QueryRow(`
		SELECT id, circle_id, author_id, author_name, title, content, timestamp, likes
		FROM posts
		WHERE id = ?`,
		id,
	)
	var post model.CommunityPost
	var ts, likes string
	err := row.Scan(
		&post.ID,
		&post.CircleID,
		&post.AuthorID,
		&post.AuthorName,
		&post.Title,
		&post.Content,
		&ts,
		&likes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CommunityPost{}, false, nil
	}
	if err != nil {
		return model.CommunityPost{}, false, err
	}
	post.Timestamp = fromTS(ts)
	post.Likes = fromJSONStrings(likes)
	return post, true, nil
}

func (s *SQLiteStore) ListPosts(circleID string) ([]model.CommunityPost, error) {
	rows, err := s.db.Query(`
		SELECT id, circle_id, author_id, author_name, title, content, timestamp, likes
		FROM posts
		WHERE circle_id = ?
		ORDER BY timestamp DESC`,
		circleID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.CommunityPost, 0)
	for rows.Next() {
		var post model.CommunityPost
		var ts, likes string
		if err := rows.Scan(
			&post.ID,
			&post.CircleID,
			&post.AuthorID,
			&post.AuthorName,
			&post.Title,
			&post.Content,
			&ts,
			&likes,
		); err != nil {
			return nil, err
		}
		post.Timestamp = fromTS(ts)
		post.Likes = fromJSONStrings(likes)
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *SQLiteStore) SaveComment(comment model.CommunityComment) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO comments
		(id, post_id, author_id, author_name, content, timestamp, likes)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		comment.ID,
		comment.PostID,
		comment.AuthorID,
		comment.AuthorName,
		comment.Content,
		toTS(comment.Timestamp),
		toJSON(comment.Likes),
	)
	return err
}

func (s *SQLiteStore) GetComment(id string) (model.CommunityComment, bool, error) {
	row := s.db.QueryRow(`
		SELECT id, post_id, author_id, author_name, content, timestamp, likes
		FROM comments
		WHERE id = ?`,
		id,
	)
	var comment model.CommunityComment
	var ts, likes string
	err := row.Scan(
		&comment.ID,
		&comment.PostID,
		&comment.AuthorID,
		&comment.AuthorName,
		&comment.Content,
		&ts,
		&likes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CommunityComment{}, false, nil
	}
	if err != nil {
		return model.CommunityComment{}, false, err
	}
	comment.Timestamp = fromTS(ts)
	comment.Likes = fromJSONStrings(likes)
	return comment, true, nil
}

func (s *SQLiteStore) ListCommentsByPost(postID string) ([]model.CommunityComment, error) {
	rows, err := s.db.Query(`
		SELECT id, post_id, author_id, author_name, content, timestamp, likes
		FROM comments
		WHERE post_id = ?
		ORDER BY timestamp ASC`,
		postID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.CommunityComment, 0)
	for rows.Next() {
		var comment model.CommunityComment
		var ts, likes string
		if err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.AuthorID,
			&comment.AuthorName,
			&comment.Content,
			&ts,
			&likes,
		); err != nil {
			return nil, err
		}
		comment.Timestamp = fromTS(ts)
		comment.Likes = fromJSONStrings(likes)
		result = append(result, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *SQLiteStore) initSchema() error {
	_, err := s.db.Exec(`
		PRAGMA journal_mode=WAL;
		CREATE TABLE IF NOT EXISTS chat_messages (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			text TEXT NOT NULL,
			sender TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			persona TEXT NOT NULL DEFAULT '',
			quick_replies TEXT NOT NULL DEFAULT '[]',
			crisis INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_chat_user_time ON chat_messages(user_id, timestamp);
		CREATE TABLE IF NOT EXISTS mood_logs (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			date TEXT NOT NULL,
			mood TEXT NOT NULL,
			activities TEXT NOT NULL DEFAULT '[]',
			people TEXT NOT NULL DEFAULT '[]',
			note TEXT NOT NULL DEFAULT '',
			source TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_moods_user_date ON mood_logs(user_id, date);
		CREATE TABLE IF NOT EXISTS journal_entries (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			date TEXT NOT NULL,
			prompt TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL,
			mood TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_journal_user_date ON journal_entries(user_id, date);
		CREATE TABLE IF NOT EXISTS streaks (
			user_id TEXT NOT NULL,
			type TEXT NOT NULL,
			count INTEGER NOT NULL,
			last_date TEXT NOT NULL,
			PRIMARY KEY (user_id, type)
		);
		CREATE TABLE IF NOT EXISTS badges (
			user_id TEXT NOT NULL,
			id TEXT NOT NULL,
			icon TEXT NOT NULL,
			date_earned TEXT NOT NULL,
			PRIMARY KEY (user_id, id)
		);
		CREATE TABLE IF NOT EXISTS journey_progress (
			user_id TEXT NOT NULL,
			journey_id TEXT NOT NULL,
			current_day INTEGER NOT NULL,
			completed_tasks TEXT NOT NULL DEFAULT '{}',
			PRIMARY KEY (user_id, journey_id)
		);
		CREATE TABLE IF NOT EXISTS intentions (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			frequency TEXT NOT NULL,
			target INTEGER NOT NULL,
			completed_dates TEXT NOT NULL DEFAULT '[]'
		);
		CREATE INDEX IF NOT EXISTS idx_intentions_user ON intentions(user_id);
		CREATE TABLE IF NOT EXISTS emergency_contacts (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			relationship TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS emergency_events (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			action TEXT NOT NULL,
			timestamp TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS posts (
			id TEXT PRIMARY KEY,
			circle_id TEXT NOT NULL,
			author_id TEXT NOT NULL,
			author_name TEXT NOT NULL,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			likes TEXT NOT NULL DEFAULT '[]'
		);
		CREATE INDEX IF NOT EXISTS idx_posts_circle_time ON posts(circle_id, timestamp);
		CREATE TABLE IF NOT EXISTS comments (
			id TEXT PRIMARY KEY,
			post_id TEXT NOT NULL,
			author_id TEXT NOT NULL,
			author_name TEXT NOT NULL,
			content TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			likes TEXT NOT NULL DEFAULT '[]'
		);
		CREATE INDEX IF NOT EXISTS idx_comments_post_time ON comments(post_id, timestamp);
	`)
	return err
}

func toTS(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func fromTS(v string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}
	}
	return t
}

func toJSON(v []string) string {
	if v == nil {
		v = []string{}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func fromJSONStrings(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(v), &out); err != nil {
		return nil
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func fromJSONTaskMap(v string) map[int][]string {
	out := make(map[int][]string)
	if v == "" {
		return out
	}
	if err := json.Unmarshal([]byte(v), &out); err != nil {
		return make(map[int][]string)
	}
	return out
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func intToBool(v int) bool {
	return v != 0
}
