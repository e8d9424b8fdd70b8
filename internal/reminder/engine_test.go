package reminder

import (
	"strings"
	"testing"
	"time"

	"smarter-goals/internal/clock"
)

func fixedEngine(now time.Time) *Engine {
	return NewEngine(clock.Fixed(now))
}

func daysAgo(now time.Time, n int) *time.Time {
	t := now.AddDate(0, 0, -n)
	return &t
}

func enabled(goalID string, frequency int) *Settings {
	return &Settings{GoalID: goalID, Enabled: true, Frequency: frequency}
}

func TestEscalationLevel(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	e := fixedEngine(now)

	cases := []struct {
		name       string
		lastAction *time.Time
		want       Level
	}{
		{"never acted", nil, LevelGentle},
		{"today", daysAgo(now, 0), LevelGentle},
		{"one day", daysAgo(now, 1), LevelGentle},
		{"two days", daysAgo(now, 2), LevelModerate},
		{"three days", daysAgo(now, 3), LevelModerate},
		{"four days", daysAgo(now, 4), LevelFirm},
		{"seven days", daysAgo(now, 7), LevelFirm},
		{"eight days", daysAgo(now, 8), LevelAggressive},
		{"ten days", daysAgo(now, 10), LevelAggressive},
	}
	for _, tc := range cases {
		if got := e.EscalationLevel(tc.lastAction); got != tc.want {
			t.Errorf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestShouldRemind(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	e := fixedEngine(now)

	if e.ShouldRemind(daysAgo(now, 10), nil) {
		t.Errorf("absent settings must suppress reminders")
	}
	if e.ShouldRemind(daysAgo(now, 10), &Settings{Enabled: false, Frequency: 1}) {
		t.Errorf("disabled settings must suppress reminders")
	}
	if !e.ShouldRemind(nil, enabled("g", 3)) {
		t.Errorf("a goal that never saw an action is always reminded")
	}
	if e.ShouldRemind(daysAgo(now, 2), enabled("g", 3)) {
		t.Errorf("2 days with a 3-day frequency is too soon")
	}
	if !e.ShouldRemind(daysAgo(now, 3), enabled("g", 3)) {
		t.Errorf("3 days with a 3-day frequency is due")
	}
	// Zero frequency falls back to daily.
	if !e.ShouldRemind(daysAgo(now, 1), enabled("g", 0)) {
		t.Errorf("zero frequency should behave as daily")
	}
}

func TestMessageFor(t *testing.T) {
	cases := []struct {
		level Level
		title string
		tone  string
	}{
		{LevelGentle, "🌱 Gentle Reminder", "encouraging"},
		{LevelModerate, "📅 Time to Act", "supportive"},
		{LevelFirm, "⚠️ Important Reminder", "urgent"},
		{LevelAggressive, "🚨 Action Required", "critical"},
	}
	for _, tc := range cases {
		msg := MessageFor("Run my first marathon", tc.level)
		if msg.Title != tc.title {
			t.Errorf("%s: title %q", tc.level, msg.Title)
		}
		if msg.Tone != tc.tone {
			t.Errorf("%s: tone %q", tc.level, msg.Tone)
		}
		if !strings.Contains(msg.Message, "Run my first marathon") {
			t.Errorf("%s: message should name the goal: %s", tc.level, msg.Message)
		}
	}
}

func TestSelect_HighestUrgencyWins(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	e := fixedEngine(now)

	candidates := []Candidate{
		{GoalID: "a", GoalTitle: "Goal A", LastAction: daysAgo(now, 5), Settings: enabled("a", 1)},  // firm
		{GoalID: "b", GoalTitle: "Goal B", LastAction: daysAgo(now, 10), Settings: enabled("b", 1)}, // aggressive
	}
	got := e.Select(candidates, false)
	if got == nil || got.GoalID != "b" || got.Level != LevelAggressive {
		t.Fatalf("expected aggressive reminder for b, got %+v", got)
	}

	// Order of candidates must not matter.
	got = e.Select([]Candidate{candidates[1], candidates[0]}, false)
	if got == nil || got.GoalID != "b" {
		t.Errorf("selection depends on candidate order: %+v", got)
	}
}

func TestSelect_TieGoesToEarlierCandidate(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	e := fixedEngine(now)

	candidates := []Candidate{
		{GoalID: "a", GoalTitle: "Goal A", LastAction: daysAgo(now, 5), Settings: enabled("a", 1)},
		{GoalID: "b", GoalTitle: "Goal B", LastAction: daysAgo(now, 6), Settings: enabled("b", 1)},
	}
	got := e.Select(candidates, false)
	if got == nil || got.GoalID != "a" {
		t.Errorf("both firm: the earlier candidate should win, got %+v", got)
	}
}

func TestSelect_GentleSuppression(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	e := fixedEngine(now)

	candidates := []Candidate{
		{GoalID: "a", GoalTitle: "Goal A", LastAction: nil, Settings: enabled("a", 1)},
	}
	if got := e.Select(candidates, false); got != nil {
		t.Errorf("gentle reminders are suppressed by default, got %+v", got)
	}
	got := e.Select(candidates, true)
	if got == nil || got.Level != LevelGentle {
		t.Fatalf("includeGentle should surface the gentle reminder, got %+v", got)
	}
	if got.Tone != "encouraging" {
		t.Errorf("tone: %s", got.Tone)
	}
}

func TestSelect_NothingDue(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	e := fixedEngine(now)

	candidates := []Candidate{
		{GoalID: "a", LastAction: daysAgo(now, 10), Settings: &Settings{Enabled: false}},
		{GoalID: "b", LastAction: daysAgo(now, 1), Settings: enabled("b", 3)},
		{GoalID: "c", LastAction: daysAgo(now, 10), Settings: nil},
	}
	if got := e.Select(candidates, true); got != nil {
		t.Errorf("no candidate is due, got %+v", got)
	}
}
