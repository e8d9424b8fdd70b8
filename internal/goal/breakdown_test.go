package goal

import (
	"strings"
	"testing"
	"time"

	"smarter-goals/internal/clock"
)

func fixedGenerator(now time.Time) *Generator {
	return NewGenerator(clock.Fixed(now))
}

func goalWithTarget(title, measurement string, target time.Time) *Goal {
	return &Goal{
		Title:       title,
		Measurement: measurement,
		Achievable:  "I have the time and resources",
		Relevant:    "This matters a lot to me",
		TargetDate:  &target,
	}
}

func TestBreakDown_NoTargetDate(t *testing.T) {
	gen := fixedGenerator(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
	plan, err := gen.BreakDown(&Goal{Title: "Run my first marathon"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan != nil {
		t.Errorf("expected nil plan without target date, got %+v", plan)
	}
}

func TestBreakDown_IncompleteGoal(t *testing.T) {
	gen := fixedGenerator(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
	target := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := gen.BreakDown(&Goal{Title: "short", TargetDate: &target})
	if err != ErrIncompleteGoal {
		t.Errorf("expected ErrIncompleteGoal, got %v", err)
	}
}

func TestBreakDown_SevenDayWindow(t *testing.T) {
	now := time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC)
	gen := fixedGenerator(now)
	g := goalWithTarget("Finish my thesis draft", "All chapters written", time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC))

	plan, err := gen.BreakDown(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Daily) != 7 {
		t.Fatalf("expected 7 daily entries, got %d", len(plan.Daily))
	}
	if plan.Daily[0].Date != "2024-01-01" || plan.Daily[6].Date != "2024-01-07" {
		t.Errorf("daily dates wrong: first=%s last=%s", plan.Daily[0].Date, plan.Daily[6].Date)
	}
	if len(plan.Weekly) != 1 || plan.Weekly[0].Week != 1 {
		t.Errorf("expected exactly 1 weekly entry, got %+v", plan.Weekly)
	}
	if len(plan.Monthly) != 1 {
		t.Errorf("expected exactly 1 monthly entry, got %d", len(plan.Monthly))
	}
	if len(plan.Yearly) != 0 {
		t.Errorf("expected no yearly entries for a 7-day window, got %d", len(plan.Yearly))
	}
	for _, e := range plan.Daily {
		if e.Completed {
			t.Errorf("entries must start uncompleted")
		}
	}
}

func TestBreakDown_TierCaps(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	gen := fixedGenerator(now)
	// Three years out: every capped tier must stay at its cap.
	g := goalWithTarget("Build a profitable business", "Steady $5000 monthly revenue", now.AddDate(3, 0, 0))

	plan, err := gen.BreakDown(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Daily) != MaxDailyEntries {
		t.Errorf("daily cap: expected %d, got %d", MaxDailyEntries, len(plan.Daily))
	}
	if len(plan.Weekly) != MaxWeeklyEntries {
		t.Errorf("weekly cap: expected %d, got %d", MaxWeeklyEntries, len(plan.Weekly))
	}
	if len(plan.Monthly) != MaxMonthlyEntries {
		t.Errorf("monthly cap: expected %d, got %d", MaxMonthlyEntries, len(plan.Monthly))
	}
	if len(plan.Yearly) != 3 {
		t.Errorf("expected 3 yearly reviews, got %d", len(plan.Yearly))
	}
}

func TestBreakDown_PastDeadlineFallback(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	gen := fixedGenerator(now)
	g := goalWithTarget("Ship the new landing page", "Page live in production", now.AddDate(0, 0, -30))

	plan, err := gen.BreakDown(g)
	if err != nil {
		t.Fatalf("a lapsed goal must still produce a plan: %v", err)
	}
	if len(plan.Daily) != 1 || len(plan.Weekly) != 1 || len(plan.Monthly) != 1 || len(plan.Yearly) != 1 {
		t.Errorf("fallback plan should have one entry per tier, got %d/%d/%d/%d",
			len(plan.Daily), len(plan.Weekly), len(plan.Monthly), len(plan.Yearly))
	}
	if !strings.Contains(plan.Daily[0].Action, "Review and adjust") {
		t.Errorf("unexpected fallback action: %s", plan.Daily[0].Action)
	}
}

func TestBreakDown_SameDayDeadline(t *testing.T) {
	now := time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC)
	gen := fixedGenerator(now)
	g := goalWithTarget("Ship the new landing page", "Page live in production", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	plan, err := gen.BreakDown(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Daily) != 1 {
		t.Errorf("same-day deadline should hit the fallback plan")
	}
}

func TestBreakDown_MonthlyAndYearlyText(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	gen := fixedGenerator(now)
	g := goalWithTarget("Write my first novel", "80000 words drafted", now.AddDate(1, 1, 0))

	plan, err := gen.BreakDown(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(plan.Monthly[0].Checkpoint, "Month 1 Review") || !strings.Contains(plan.Monthly[0].Checkpoint, g.Title) {
		t.Errorf("unexpected monthly text: %s", plan.Monthly[0].Checkpoint)
	}
	if len(plan.Yearly) != 1 {
		t.Fatalf("expected 1 yearly review, got %d", len(plan.Yearly))
	}
	if !strings.Contains(plan.Yearly[0].Review, "Annual Review") {
		t.Errorf("unexpected yearly text: %s", plan.Yearly[0].Review)
	}
}

func TestPlan_SetCompletedAndCounts(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	gen := fixedGenerator(now)
	g := goalWithTarget("Finish my thesis draft", "All chapters written", now.AddDate(0, 0, 14))

	plan, err := gen.BreakDown(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	total := plan.TotalActions()
	if total != len(plan.Daily)+len(plan.Weekly)+len(plan.Monthly)+len(plan.Yearly) {
		t.Errorf("TotalActions mismatch")
	}

	clone := plan.Clone()
	if err := clone.SetCompleted(TierDaily, 0, true); err != nil {
		t.Fatalf("SetCompleted: %v", err)
	}
	if clone.CompletedCount() != 1 {
		t.Errorf("expected 1 completed, got %d", clone.CompletedCount())
	}
	if plan.CompletedCount() != 0 {
		t.Errorf("Clone must not share state with the original plan")
	}
	if err := clone.SetCompleted(TierDaily, 99, true); err != ErrNoSuchEntry {
		t.Errorf("expected ErrNoSuchEntry for out-of-range index, got %v", err)
	}
	if err := clone.SetCompleted("hourly", 0, true); err != ErrNoSuchEntry {
		t.Errorf("expected ErrNoSuchEntry for unknown tier, got %v", err)
	}
}
