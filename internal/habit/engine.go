package habit

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"smarter-goals/internal/clock"
	"smarter-goals/internal/goal"
)

const dayFormat = "2006-01-02"

// Engine owns habit derivation and the streak state machine. Every
// transition returns a new Habit value; the caller persists it.
type Engine struct {
	clk clock.Clock
}

// NewEngine creates a habit engine.
func NewEngine(clk clock.Clock) *Engine {
	return &Engine{clk: clk}
}

var cueTemplates = []string{
	`After I wake up, I will work on %q`,
	"After I finish breakfast, I will take action on my goal",
	`At 9 AM, I will start working toward %q`,
	"When I see my goal reminder, I will take one step forward",
	"After I check my phone in the morning, I will work on my goal",
}

// FromGoal derives the companion habit for a goal.
func (e *Engine) FromGoal(g *goal.Goal, habitType Type) Habit {
	return Habit{
		ID:        uuid.New().String(),
		GoalID:    g.ID,
		UserID:    g.UserID,
		Name:      fmt.Sprintf("Work on: %s", g.Title),
		Type:      habitType,
		Cue:       generateCue(g),
		Craving:   generateCraving(g),
		Response:  generateResponse(g, habitType),
		Reward:    generateReward(g),
		CreatedAt: e.clk.Now(),
	}
}

func generateCue(g *goal.Goal) string {
	tmpl := cueTemplates[rand.Intn(len(cueTemplates))]
	if strings.Contains(tmpl, "%q") {
		return fmt.Sprintf(tmpl, g.Title)
	}
	return tmpl
}

func generateCraving(g *goal.Goal) string {
	reason := strings.TrimSpace(g.Relevant)
	if reason == "" {
		reason = "it matters to me"
	}
	return fmt.Sprintf("I want to achieve %q because %s", g.Title, reason)
}

func generateResponse(g *goal.Goal, habitType Type) string {
	switch habitType {
	case TypeWeekly:
		return fmt.Sprintf("Dedicate 2-3 hours this week to %q", g.Title)
	case TypeMonthly:
		return fmt.Sprintf("Review and plan next steps for %q", g.Title)
	default:
		return fmt.Sprintf("Spend 15-30 minutes working on %q", g.Title)
	}
}

func generateReward(g *goal.Goal) string {
	return fmt.Sprintf("Track progress, celebrate small wins, and visualize achieving %q", g.Title)
}

// CompletedToday reports whether the habit was already marked done on
// the current calendar day.
func (e *Engine) CompletedToday(h Habit) bool {
	if h.LastCompleted == nil {
		return false
	}
	return h.LastCompleted.Format(dayFormat) == e.clk.Now().Format(dayFormat)
}

// Toggle runs the streak transition for a daily completion toggle.
//
// Checking an already-completed-today habit is a no-op. A completion
// the day after the last one extends the streak and lifts bestStreak
// when passed. Any longer gap starts a fresh streak of 1 without
// touching bestStreak. Unchecking resets the streak to 0 but keeps the
// historical lastCompleted timestamp.
func (e *Engine) Toggle(h Habit, completed bool) Habit {
	now := e.clk.Now()
	today := now.Format(dayFormat)
	yesterday := now.AddDate(0, 0, -1).Format(dayFormat)

	lastDay := ""
	if h.LastCompleted != nil {
		lastDay = h.LastCompleted.Format(dayFormat)
	}

	if completed {
		switch lastDay {
		case today:
			return h
		case yesterday:
			h.Streak++
			if h.Streak > h.BestStreak {
				h.BestStreak = h.Streak
			}
		default:
			h.Streak = 1
		}
		stamp := now
		h.LastCompleted = &stamp
		return h
	}

	if lastDay != today {
		h.Streak = 0
	}
	return h
}

// Score rates habit strength 0-100: up to 50 points for the current
// streak, up to 50 for the best streak relative to a 30-day baseline.
func Score(h Habit) int {
	streakWeight := math.Min(float64(h.Streak)*2, 50)
	consistencyWeight := 0.0
	if h.BestStreak > 0 {
		consistencyWeight = math.Min(float64(h.BestStreak)/30*50, 50)
	}
	return int(math.Round(streakWeight + consistencyWeight))
}

// ApplyEdits replaces the free-text fields. An empty-after-trim
// replacement keeps the old value. Editing never touches streak state.
func ApplyEdits(h Habit, name, cue, craving, response, reward string) Habit {
	if s := strings.TrimSpace(name); s != "" {
		h.Name = s
	}
	if s := strings.TrimSpace(cue); s != "" {
		h.Cue = s
	}
	if s := strings.TrimSpace(craving); s != "" {
		h.Craving = s
	}
	if s := strings.TrimSpace(response); s != "" {
		h.Response = s
	}
	if s := strings.TrimSpace(reward); s != "" {
		h.Reward = s
	}
	return h
}
