package service_test

import (
	"path/filepath"
	"testing"

	"sahaayak/internal/model"
	"sahaayak/internal/service"
	"sahaayak/internal/store"
)

func newTestService(t *testing.T) (*service.Service, *store.JSONStore) {
	t.Helper()
	dataFile := filepath.Join(t.TempDir(), "state.json")
	st, err := store.NewJSONStore(dataFile)
	if err != nil {
		t.Fatalf("NewJSONStore() error = %v", err)
	}
	return service.New(st, nil), st
}

func TestRecordActionFirstTimeAwardsFirstBadge(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	streak, badges, err := svc.RecordAction("user_1", model.StreakJournaling, "2026-08-01")
	if err != nil {
		t.Fatalf("RecordAction() error = %v", err)
	}
	if streak.Count != 1 || streak.LastDate != "2026-08-01" {
		t.Fatalf("unexpected streak %+v", streak)
	}
	if len(badges) != 1 || badges[0].ID != "first_journal" {
		t.Fatalf("expected first_journal badge, got %+v", badges)
	}
}

func TestRecordActionSameDayIsNoOp(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	if _, _, err := svc.RecordAction("user_1", model.StreakMoodTracking, "2026-08-01"); err != nil {
		t.Fatalf("RecordAction() error = %v", err)
	}
	streak, badges, err := svc.RecordAction("user_1", model.StreakMoodTracking, "2026-08-01")
	if err != nil {
		t.Fatalf("RecordAction() error = %v", err)
	}
	if streak.Count != 1 {
		t.Fatalf("expected count 1 after same-day repeat, got %d", streak.Count)
	}
	if len(badges) != 0 {
		t.Fatalf("expected no badges on repeat, got %+v", badges)
	}
}

func TestRecordActionConsecutiveDaysIncrementAndAwardThresholdBadges(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	days := []string{
		"2026-08-01", "2026-08-02", "2026-08-03", "2026-08-04",
		"2026-08-05", "2026-08-06", "2026-08-07",
	}
	var all []model.Badge
	var last model.Streak
	for _, day := range days {
		streak, badges, err := svc.RecordAction("user_1", model.StreakJournaling, day)
		if err != nil {
			t.Fatalf("RecordAction(%s) error = %v", day, err)
		}
		last = streak
		all = append(all, badges...)
	}
	if last.Count != 7 {
		t.Fatalf("expected streak 7, got %d", last.Count)
	}

	want := map[string]bool{"first_journal": false, "journal_3_day": false, "journal_7_day": false}
	for _, badge := range all {
		if _, ok := want[badge.ID]; !ok {
			t.Fatalf("unexpected badge %q", badge.ID)
		}
		want[badge.ID] = true
	}
	for id, seen := range want {
		if !seen {
			t.Fatalf("expected badge %q to be awarded", id)
		}
	}
}

func TestRecordActionGapResetsStreakButKeepsBadges(t *testing.T) {
	t.Parallel()
	svc, st := newTestService(t)

	for _, day := range []string{"2026-08-01", "2026-08-02", "2026-08-03"} {
		if _, _, err := svc.RecordAction("user_1", model.StreakJournaling, day); err != nil {
			t.Fatalf("RecordAction(%s) error = %v", day, err)
		}
	}
	streak, badges, err := svc.RecordAction("user_1", model.StreakJournaling, "2026-08-10")
	if err != nil {
		t.Fatalf("RecordAction() error = %v", err)
	}
	if streak.Count != 1 || streak.LastDate != "2026-08-10" {
		t.Fatalf("expected reset streak, got %+v", streak)
	}
	if len(badges) != 0 {
		t.Fatalf("expected no badges on reset, got %+v", badges)
	}

	stored, err := st.ListBadges("user_1")
	if err != nil {
		t.Fatalf("ListBadges() error = %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("expected earned badges to persist, got %+v", stored)
	}
}

func TestRecordActionBackdatedIsIgnored(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	if _, _, err := svc.RecordAction("user_1", model.StreakJournaling, "2026-08-05"); err != nil {
		t.Fatalf("RecordAction() error = %v", err)
	}
	streak, badges, err := svc.RecordAction("user_1", model.StreakJournaling, "2026-08-02")
	if err != nil {
		t.Fatalf("RecordAction() error = %v", err)
	}
	if streak.Count != 1 || streak.LastDate != "2026-08-05" {
		t.Fatalf("expected untouched streak, got %+v", streak)
	}
	if len(badges) != 0 {
		t.Fatalf("expected no badges, got %+v", badges)
	}
}

func TestRecordActionBadgeIsWriteOnce(t *testing.T) {
	t.Parallel()
	svc, st := newTestService(t)

	// Reach count 3 twice: once directly, once after a reset.
	for _, day := range []string{"2026-08-01", "2026-08-02", "2026-08-03"} {
		if _, _, err := svc.RecordAction("user_1", model.StreakMoodTracking, day); err != nil {
			t.Fatalf("RecordAction(%s) error = %v", day, err)
		}
	}
	for _, day := range []string{"2026-08-10", "2026-08-11", "2026-08-12"} {
		if _, _, err := svc.RecordAction("user_1", model.StreakMoodTracking, day); err != nil {
			t.Fatalf("RecordAction(%s) error = %v", day, err)
		}
	}

	badges, err := st.ListBadges("user_1")
	if err != nil {
		t.Fatalf("ListBadges() error = %v", err)
	}
	count := 0
	for _, badge := range badges {
		if badge.ID == "mood_3_day" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one mood_3_day badge, got %d", count)
	}
}

func TestRecordActionRejectsUnknownType(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	if _, _, err := svc.RecordAction("user_1", model.StreakType("meditation"), "2026-08-01"); err != service.ErrUnknownStreak {
		t.Fatalf("expected ErrUnknownStreak, got %v", err)
	}
}

func TestRecordActionEmptyUserIsNoOp(t *testing.T) {
	t.Parallel()
	svc, st := newTestService(t)

	if _, _, err := svc.RecordAction("", model.StreakJournaling, "2026-08-01"); err != nil {
		t.Fatalf("RecordAction() error = %v", err)
	}
	streaks, err := st.ListStreaks("")
	if err != nil {
		t.Fatalf("ListStreaks() error = %v", err)
	}
	if len(streaks) != 0 {
		t.Fatalf("expected no streaks persisted, got %+v", streaks)
	}
}

func TestAddMoodLogReplacesSameDateAndSource(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	first, err := svc.AddMoodLog("user_1", model.MoodLog{Date: "2026-08-01", Mood: "sad", Source: "check-in"})
	if err != nil {
		t.Fatalf("AddMoodLog() error = %v", err)
	}
	second, err := svc.AddMoodLog("user_1", model.MoodLog{Date: "2026-08-01", Mood: "okay", Source: "check-in"})
	if err != nil {
		t.Fatalf("AddMoodLog() error = %v", err)
	}
	if first.Log.ID == second.Log.ID {
		t.Fatalf("expected replacement to carry a new id")
	}

	logs, err := svc.ListMoodLogs("user_1")
	if err != nil {
		t.Fatalf("ListMoodLogs() error = %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log after replacement, got %d", len(logs))
	}
	if logs[0].Mood != "okay" {
		t.Fatalf("expected replacement mood, got %q", logs[0].Mood)
	}
}

func TestAddMoodLogKeepsDistinctSources(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	if _, err := svc.AddMoodLog("user_1", model.MoodLog{Date: "2026-08-01", Mood: "sad", Source: "check-in"}); err != nil {
		t.Fatalf("AddMoodLog() error = %v", err)
	}
	if _, err := svc.AddMoodLog("user_1", model.MoodLog{Date: "2026-08-01", Mood: "calm", Source: "journal"}); err != nil {
		t.Fatalf("AddMoodLog() error = %v", err)
	}
	logs, err := svc.ListMoodLogs("user_1")
	if err != nil {
		t.Fatalf("ListMoodLogs() error = %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected both sources kept, got %d", len(logs))
	}
}

func TestAddJournalEntryDerivesMoodLogAndStreak(t *testing.T) {
	t.Parallel()
	svc, st := newTestService(t)

	result, err := svc.AddJournalEntry("user_1", model.JournalEntry{
		Content: "Today was hard but I managed.",
		Mood:    "tired",
	})
	if err != nil {
		t.Fatalf("AddJournalEntry() error = %v", err)
	}
	if result.Streak.Type != model.StreakJournaling || result.Streak.Count != 1 {
		t.Fatalf("unexpected journaling streak %+v", result.Streak)
	}

	logs, err := st.ListMoodLogs("user_1")
	if err != nil {
		t.Fatalf("ListMoodLogs() error = %v", err)
	}
	if len(logs) != 1 || logs[0].Source != "journal" || logs[0].Mood != "tired" {
		t.Fatalf("expected derived journal mood log, got %+v", logs)
	}

	moodStreak, ok, err := st.GetStreak("user_1", model.StreakMoodTracking)
	if err != nil || !ok {
		t.Fatalf("GetStreak() err=%v ok=%v", err, ok)
	}
	if moodStreak.Count != 1 {
		t.Fatalf("expected mood streak started, got %+v", moodStreak)
	}
}

func TestAddJournalEntryWithoutMoodSkipsMoodLog(t *testing.T) {
	t.Parallel()
	svc, st := newTestService(t)

	if _, err := svc.AddJournalEntry("user_1", model.JournalEntry{Content: "plain entry"}); err != nil {
		t.Fatalf("AddJournalEntry() error = %v", err)
	}
	logs, err := st.ListMoodLogs("user_1")
	if err != nil {
		t.Fatalf("ListMoodLogs() error = %v", err)
	}
	if len(logs) != 0 {
		t.Fatalf("expected no mood logs, got %+v", logs)
	}
}
