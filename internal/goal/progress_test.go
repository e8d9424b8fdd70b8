package goal

import (
	"testing"
	"time"

	"gorm.io/datatypes"

	"smarter-goals/internal/clock"
)

func TestActionProgress(t *testing.T) {
	calc := NewProgressCalculator(clock.System())

	plan := &Plan{
		Daily:  []DailyAction{{}, {}, {}, {}},
		Weekly: []WeeklyMilestone{{}, {}, {}},
	}
	if got := calc.ActionProgress(plan, 0); got != 0 {
		t.Errorf("0 of 7: got %d", got)
	}
	if got := calc.ActionProgress(plan, 3); got != 43 {
		t.Errorf("3 of 7 should round to 43, got %d", got)
	}
	if got := calc.ActionProgress(plan, 7); got != 100 {
		t.Errorf("7 of 7: got %d", got)
	}
	if got := calc.ActionProgress(&Plan{}, 5); got != 0 {
		t.Errorf("empty plan must report 0, got %d", got)
	}
	if got := calc.ActionProgress(nil, 5); got != 0 {
		t.Errorf("nil plan must report 0, got %d", got)
	}
	if got := calc.ActionProgress(plan, -2); got != 0 {
		t.Errorf("negative completed count must clamp to 0, got %d", got)
	}
}

func TestTimeProgress(t *testing.T) {
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	target := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		now  time.Time
		want int
	}{
		{"at start", time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC), 0},
		{"halfway", time.Date(2024, 1, 6, 3, 0, 0, 0, time.UTC), 50},
		{"at deadline", time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC), 100},
		{"past deadline clamps", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 100},
	}
	for _, tc := range cases {
		calc := NewProgressCalculator(clock.Fixed(tc.now))
		g := &Goal{TargetDate: &target, CreatedAt: created}
		if got := calc.TimeProgress(g); got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestTimeProgress_DegenerateWindows(t *testing.T) {
	now := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	calc := NewProgressCalculator(clock.Fixed(now))

	if got := calc.TimeProgress(&Goal{}); got != 0 {
		t.Errorf("goal without target date: expected 0, got %d", got)
	}

	created := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	target := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	g := &Goal{TargetDate: &target, CreatedAt: created}
	if got := calc.TimeProgress(g); got != 100 {
		t.Errorf("zero-length window counts as fully elapsed, got %d", got)
	}
}

func TestFeedbackFor_Bands(t *testing.T) {
	cases := []struct {
		action, elapsed int
		want            FeedbackTier
	}{
		{50, 30, TierExcellent},
		{50, 31, TierGreat},
		{50, 40, TierGreat},
		{50, 41, TierOnTrack},
		{50, 60, TierOnTrack},
		{50, 61, TierBehind},
		{50, 70, TierBehind},
		{50, 71, TierCritical},
		{0, 0, TierOnTrack},
	}
	for _, tc := range cases {
		fb := FeedbackFor(tc.action, tc.elapsed)
		if fb.Tier != tc.want {
			t.Errorf("action=%d time=%d: expected %s, got %s", tc.action, tc.elapsed, tc.want, fb.Tier)
		}
		if fb.Message == "" || fb.Color == "" {
			t.Errorf("feedback for tier %s is missing message or color", fb.Tier)
		}
	}
}

func TestRewardsFor(t *testing.T) {
	if got := RewardsFor(9); len(got) != 0 {
		t.Errorf("below first threshold: expected no rewards, got %v", got)
	}
	got := RewardsFor(10)
	if len(got) != 1 || got[0].Milestone != "10%" || !got[0].Unlocked {
		t.Errorf("at 10%%: got %v", got)
	}
	got = RewardsFor(60)
	if len(got) != 3 {
		t.Fatalf("at 60%%: expected 3 badges, got %d", len(got))
	}
	for i, milestone := range []string{"10%", "25%", "50%"} {
		if got[i].Milestone != milestone {
			t.Errorf("badge %d: expected %s, got %s", i, milestone, got[i].Milestone)
		}
	}
	got = RewardsFor(100)
	if len(got) != 5 {
		t.Fatalf("at 100%%: expected the whole ladder, got %d", len(got))
	}
	if got[4].Reward != "🎊 Goal Achieved Champion!" {
		t.Errorf("final badge: %s", got[4].Reward)
	}
}

func TestActionProgress_Monotonic(t *testing.T) {
	calc := NewProgressCalculator(clock.System())
	plan := &Plan{Daily: make([]DailyAction, 7), Weekly: make([]WeeklyMilestone, 12)}

	prev := 0
	for completed := 0; completed <= plan.TotalActions(); completed++ {
		got := calc.ActionProgress(plan, completed)
		if got < prev || got < 0 || got > 100 {
			t.Fatalf("completed=%d: progress %d breaks monotonic [0,100]", completed, got)
		}
		prev = got
	}
	if prev != 100 {
		t.Errorf("all actions done should read 100, got %d", prev)
	}
}

func TestRewards_Monotonic(t *testing.T) {
	prev := 0
	for p := 0; p <= 100; p++ {
		n := len(RewardsFor(p))
		if n < prev {
			t.Fatalf("rewards shrank from %d to %d at %d%%", prev, n, p)
		}
		prev = n
	}
}

func TestReportFor(t *testing.T) {
	now := time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC)
	calc := NewProgressCalculator(clock.Fixed(now))

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	target := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)
	plan := &Plan{Daily: []DailyAction{
		{Completed: true}, {Completed: true}, {Completed: true}, {Completed: true},
		{}, {}, {}, {}, {}, {},
	}}
	g := &Goal{
		Title:            "Finish my thesis draft",
		TargetDate:       &target,
		CreatedAt:        created,
		Breakdown:        datatypes.NewJSONType(plan),
		CompletedActions: 4,
	}

	report := calc.ReportFor(g)
	if report.ActionProgress != 40 {
		t.Errorf("action progress: expected 40, got %d", report.ActionProgress)
	}
	if report.TimeProgress != 50 {
		t.Errorf("time progress: expected 50, got %d", report.TimeProgress)
	}
	if report.Feedback.Tier != TierOnTrack {
		t.Errorf("40 vs 50 is within the on-track band, got %s", report.Feedback.Tier)
	}
	if len(report.Rewards) != 2 {
		t.Errorf("expected 10%% and 25%% badges, got %v", report.Rewards)
	}
}
