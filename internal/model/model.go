package model

import "time"

// RiskTier is the crisis-severity classification of one utterance,
// ordered by severity.
type RiskTier int

const (
	RiskNone RiskTier = iota
	RiskLow
	RiskHigh
)

func (r RiskTier) String() string {
	switch r {
	case RiskHigh:
		return "high"
	case RiskLow:
		return "low"
	default:
		return "none"
	}
}

// Persona is one of the fixed set of assistant personas.
type Persona string

const (
	PersonaEmpathetic Persona = "empathetic"
	PersonaCoach      Persona = "coach"
	PersonaCalm       Persona = "calm"
	PersonaMindful    Persona = "mindful"
	PersonaEnergetic  Persona = "energetic"
)

const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

type ChatMessage struct {
	ID           string    `json:"id"`
	Text         string    `json:"text"`
	Sender       string    `json:"sender"`
	Timestamp    time.Time `json:"timestamp"`
	Persona      Persona   `json:"persona,omitempty"`
	QuickReplies []string  `json:"quick_replies,omitempty"`
	Crisis       bool      `json:"crisis,omitempty"`
}

// ChatTurn is the minimal history shape handed to the oracle.
type ChatTurn struct {
	Text   string `json:"text"`
	Sender string `json:"sender"`
}

type ModerationResult struct {
	IsSafe bool   `json:"is_safe"`
	Reason string `json:"reason,omitempty"`
}

type PlaylistSuggestion struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type MoodLog struct {
	ID         string   `json:"id"`
	Date       string   `json:"date"` // YYYY-MM-DD
	Mood       string   `json:"mood"`
	Activities []string `json:"activities,omitempty"`
	People     []string `json:"people,omitempty"`
	Note       string   `json:"note,omitempty"`
	Source     string   `json:"source"` // "check-in" or "journal"
}

type JournalEntry struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Prompt  string    `json:"prompt,omitempty"`
	Content string    `json:"content"`
	Mood    string    `json:"mood,omitempty"`
}

type StreakType string

const (
	StreakJournaling   StreakType = "journaling"
	StreakMoodTracking StreakType = "mood_tracking"
)

// Streak holds the consecutive-day count for one action type.
// At most one record exists per (user, type).
type Streak struct {
	Type     StreakType `json:"type"`
	Count    int        `json:"count"`
	LastDate string     `json:"last_date"` // YYYY-MM-DD
}

// Badge is write-once: once earned it is never removed or recomputed.
type Badge struct {
	ID         string    `json:"id"`
	Icon       string    `json:"icon"`
	DateEarned time.Time `json:"date_earned"`
}

type JourneyTaskType string

const (
	TaskRead     JourneyTaskType = "read"
	TaskExercise JourneyTaskType = "exercise"
	TaskJournal  JourneyTaskType = "journal"
)

type JourneyTask struct {
	ID      string          `json:"id"`
	Type    JourneyTaskType `json:"type"`
	Title   string          `json:"title"`
	Content string          `json:"content"`
}

type JourneyDay struct {
	Day   int           `json:"day"`
	Title string        `json:"title"`
	Tasks []JourneyTask `json:"tasks"`
}

type Journey struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Icon        string       `json:"icon"`
	Days        []JourneyDay `json:"days"`
}

// JourneyProgress tracks a user's advancement through one journey.
// CurrentDay is 1-based and only ever increases.
type JourneyProgress struct {
	JourneyID           string           `json:"journey_id"`
	CurrentDay          int              `json:"current_day"`
	CompletedTasksByDay map[int][]string `json:"completed_tasks_by_day"`
}

type IntentionFrequency string

const (
	FrequencyDaily  IntentionFrequency = "daily"
	FrequencyWeekly IntentionFrequency = "weekly"
)

type Intention struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Frequency      IntentionFrequency `json:"frequency"`
	Target         int                `json:"target"`
	CompletedDates []string           `json:"completed_dates"` // YYYY-MM-DD
}

type EmergencyContact struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship,omitempty"`
}

type EmergencyEvent struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"` // e.g. "helpline_tap"
	Timestamp time.Time `json:"timestamp"`
}

type CommunityPost struct {
	ID         string    `json:"id"`
	CircleID   string    `json:"circle_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Likes      []string  `json:"likes"` // user IDs, set semantics
}

type CommunityComment struct {
	ID         string    `json:"id"`
	PostID     string    `json:"post_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Likes      []string  `json:"likes"`
}

type WellnessInsight struct {
	Insight     string   `json:"insight"`
	CrisisLevel RiskTier `json:"crisis_level"`
}

type ProactiveSuggestion struct {
	Suggestion string `json:"suggestion"`
	ActionText string `json:"action_text,omitempty"`
	ActionLink string `json:"action_link,omitempty"`
}
