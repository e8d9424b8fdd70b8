package goal

import (
	"errors"
	"fmt"
	"time"

	"smarter-goals/internal/clock"
)

// ErrIncompleteGoal is returned when breakdown generation is requested
// for a goal that has a target date but still fails SMART validation.
// The generator refuses to fabricate a plan for an invalid goal.
var ErrIncompleteGoal = errors.New("goal has unmet SMART criteria")

// Generator synthesizes the four-tier action plan from a validated goal.
type Generator struct {
	validator  *Validator
	clk        clock.Clock
	categories []category
}

// NewGenerator creates a breakdown generator. The category list is
// evaluated in fixed priority order; the first matching category wins.
func NewGenerator(clk clock.Clock) *Generator {
	return &Generator{
		validator: NewValidator(),
		clk:       clk,
		categories: []category{
			readingCategory(),
			runningCategory(),
			learningCategory(),
			weightCategory(),
			businessCategory(),
		},
	}
}

// BreakDown produces the plan for g. Returns (nil, nil) if the target
// date is unset, ErrIncompleteGoal if other SMART criteria are missing,
// and a minimal fallback plan when the deadline has already passed.
func (gen *Generator) BreakDown(g *Goal) (*Plan, error) {
	if g.TargetDate == nil {
		return nil, nil
	}
	if missing := gen.validator.Validate(g); len(missing) > 0 {
		return nil, ErrIncompleteGoal
	}

	// One consistent "today" for every tier.
	today := startOfDay(gen.clk.Now())
	target := startOfDay(*g.TargetDate)
	totalDays := daysBetween(today, target)

	if totalDays <= 0 {
		return expiredPlan(today), nil
	}

	weeks := ceilDiv(totalDays, 7)
	months := ceilDiv(totalDays, 30)
	years := totalDays / 365 // whole remaining years only

	plan := &Plan{}

	for i := 0; i < minInt(MaxDailyEntries, totalDays); i++ {
		date := today.AddDate(0, 0, i)
		plan.Daily = append(plan.Daily, DailyAction{
			Date:   date.Format(DateFormat),
			Action: gen.dailyAction(g, i, totalDays),
		})
	}

	for i := 1; i <= minInt(MaxWeeklyEntries, weeks); i++ {
		date := today.AddDate(0, 0, 7*i)
		plan.Weekly = append(plan.Weekly, WeeklyMilestone{
			Week:      i,
			Date:      date.Format(DateFormat),
			Milestone: gen.weeklyMilestone(g, i, weeks),
		})
	}

	for i := 1; i <= minInt(MaxMonthlyEntries, months); i++ {
		date := today.AddDate(0, i, 0)
		plan.Monthly = append(plan.Monthly, MonthlyCheckpoint{
			Month:      i,
			Date:       date.Format(DateFormat),
			Checkpoint: monthlyCheckpoint(g, i),
		})
	}

	for i := 1; i <= years; i++ {
		date := today.AddDate(i, 0, 0)
		plan.Yearly = append(plan.Yearly, YearlyReview{
			Year:   i,
			Date:   date.Format(DateFormat),
			Review: yearlyReview(g, i),
		})
	}

	return plan, nil
}

// dailyAction dispatches to the first matching category generator.
func (gen *Generator) dailyAction(g *Goal, dayIndex, totalDays int) string {
	for _, c := range gen.categories {
		if c.match(g) {
			return c.daily(g, dayIndex, totalDays)
		}
	}
	return genericDailyAction(g, dayIndex, totalDays)
}

// weeklyMilestone uses the same dispatch with week indices.
func (gen *Generator) weeklyMilestone(g *Goal, weekIndex, totalWeeks int) string {
	for _, c := range gen.categories {
		if c.match(g) {
			return c.weekly(g, weekIndex, totalWeeks)
		}
	}
	return genericWeeklyMilestone(g, weekIndex, totalWeeks)
}

func monthlyCheckpoint(g *Goal, monthIndex int) string {
	return fmt.Sprintf("Month %d Review: Assess progress on %q, adjust strategy if needed, and plan next phase", monthIndex, g.Title)
}

func yearlyReview(g *Goal, yearIndex int) string {
	return fmt.Sprintf("Annual Review: Reflect on your journey with %q, celebrate achievements, and set new goals", g.Title)
}

// expiredPlan is the one-entry-per-tier fallback for a deadline already
// in the past. A lapsed goal must still render without error.
func expiredPlan(today time.Time) *Plan {
	return &Plan{
		Daily: []DailyAction{{
			Date:   today.Format(DateFormat),
			Action: "Review and adjust your timeline",
		}},
		Weekly: []WeeklyMilestone{{
			Week:      1,
			Date:      today.AddDate(0, 0, 7).Format(DateFormat),
			Milestone: "Assess progress and plan next steps",
		}},
		Monthly: []MonthlyCheckpoint{{
			Month:      1,
			Date:       today.AddDate(0, 1, 0).Format(DateFormat),
			Checkpoint: "Quarterly review",
		}},
		Yearly: []YearlyReview{{
			Year:   1,
			Date:   today.AddDate(1, 0, 0).Format(DateFormat),
			Review: "Annual reflection",
		}},
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b, both at midnight.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Round(24*time.Hour) / (24 * time.Hour))
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
