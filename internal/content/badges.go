package content

// BadgeInfo describes one entry in the fixed badge catalog. Streak badges are
// keyed by type and threshold, journey badges by "<journeyID>_complete".
type BadgeInfo struct {
	ID          string
	Icon        string
	Name        string
	Description string
}

var badgeCatalog = map[string]BadgeInfo{
	"first_journal":  {ID: "first_journal", Icon: "🌱", Name: "First Entry", Description: "Wrote your first journal entry."},
	"journal_3_day":  {ID: "journal_3_day", Icon: "✍️", Name: "Steady Writer", Description: "Journaled 3 days in a row."},
	"journal_7_day":  {ID: "journal_7_day", Icon: "✨", Name: "Week of Words", Description: "Journaled 7 days in a row."},
	"first_mood":     {ID: "first_mood", Icon: "😊", Name: "First Check-in", Description: "Logged your first mood."},
	"mood_3_day":     {ID: "mood_3_day", Icon: "📈", Name: "Mood Mapper", Description: "Tracked your mood 3 days in a row."},
	"mood_7_day":     {ID: "mood_7_day", Icon: "🌟", Name: "Mood Master", Description: "Tracked your mood 7 days in a row."},

	"mindfulness_journey_complete":   {ID: "mindfulness_journey_complete", Icon: "🧘", Name: "Mindful Explorer", Description: "Completed the mindfulness journey."},
	"exam_stress_journey_complete":   {ID: "exam_stress_journey_complete", Icon: "✏️", Name: "Calm Scholar", Description: "Completed the exam stress journey."},
	"self_esteem_journey_complete":   {ID: "self_esteem_journey_complete", Icon: "💖", Name: "Inner Strength", Description: "Completed the self-esteem journey."},
	"digital_detox_journey_complete": {ID: "digital_detox_journey_complete", Icon: "📵", Name: "Unplugged", Description: "Completed the digital detox journey."},
	"anxiety_journey_complete":       {ID: "anxiety_journey_complete", Icon: "🌬️", Name: "Steady Breather", Description: "Completed the anxiety relief journey."},
}

func BadgeByID(id string) (BadgeInfo, bool) {
	info, ok := badgeCatalog[id]
	return info, ok
}

// StreakBadgeID maps a streak type and count to the badge earned at that
// count, if any. Thresholds are fixed at 3 and 7 days.
func StreakBadgeID(streakType string, count int) (string, bool) {
	var prefix string
	switch streakType {
	case "journaling":
		prefix = "journal"
	case "mood_tracking":
		prefix = "mood"
	default:
		return "", false
	}
	switch count {
	case 3:
		return prefix + "_3_day", true
	case 7:
		return prefix + "_7_day", true
	default:
		return "", false
	}
}

// FirstActionBadgeID maps a streak type to the badge earned on the very
// first qualifying action.
func FirstActionBadgeID(streakType string) (string, bool) {
	switch streakType {
	case "journaling":
		return "first_journal", true
	case "mood_tracking":
		return "first_mood", true
	default:
		return "", false
	}
}
