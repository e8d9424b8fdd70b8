package reminder

import (
	"fmt"
	"time"

	"smarter-goals/internal/clock"
)

// Engine computes escalation levels and selects the single reminder to
// surface across all goals.
type Engine struct {
	clk clock.Clock
}

// NewEngine creates a reminder engine.
func NewEngine(clk clock.Clock) *Engine {
	return &Engine{clk: clk}
}

func (e *Engine) daysSince(t time.Time) int {
	return int(e.clk.Now().Sub(t).Hours() / 24)
}

// EscalationLevel ranks how urgently a goal should be surfaced based on
// how long ago its last action was.
func (e *Engine) EscalationLevel(lastAction *time.Time) Level {
	if lastAction == nil {
		return LevelGentle
	}
	days := e.daysSince(*lastAction)
	switch {
	case days <= 1:
		return LevelGentle
	case days <= 3:
		return LevelModerate
	case days <= 7:
		return LevelFirm
	default:
		return LevelAggressive
	}
}

// ShouldRemind applies the per-goal settings. Absent or disabled
// settings suppress reminders entirely; a goal that never saw an action
// is always reminded.
func (e *Engine) ShouldRemind(lastAction *time.Time, s *Settings) bool {
	if s == nil || !s.Enabled {
		return false
	}
	if lastAction == nil {
		return true
	}
	frequency := s.Frequency
	if frequency <= 0 {
		frequency = 1
	}
	return e.daysSince(*lastAction) >= frequency
}

// MessageFor returns the fixed template for a level, parameterized by
// the goal title.
func MessageFor(goalTitle string, level Level) Message {
	switch level {
	case LevelModerate:
		return Message{
			Title:   "📅 Time to Act",
			Message: fmt.Sprintf("It's been a few days since you last worked on %q. Let's get back on track with a small action today!", goalTitle),
			Tone:    "supportive",
		}
	case LevelFirm:
		return Message{
			Title:   "⚠️ Important Reminder",
			Message: fmt.Sprintf("Your goal %q needs attention. Consistency is key to success. Take action today, even if it's just 5 minutes!", goalTitle),
			Tone:    "urgent",
		}
	case LevelAggressive:
		return Message{
			Title:   "🚨 Action Required",
			Message: fmt.Sprintf("Your goal %q is at risk. It's been over a week since your last action. Remember why this matters to you and take action NOW!", goalTitle),
			Tone:    "critical",
		}
	default:
		return Message{
			Title:   "🌱 Gentle Reminder",
			Message: fmt.Sprintf("Hey! Just a friendly reminder to take a small step toward %q today. You've got this! 💪", goalTitle),
			Tone:    "encouraging",
		}
	}
}

// Select evaluates every candidate and returns the single
// highest-urgency reminder, or nil when nothing qualifies. Gentle
// reminders are suppressed unless includeGentle is set. Ties go to the
// earlier candidate.
func (e *Engine) Select(candidates []Candidate, includeGentle bool) *Reminder {
	var best *Reminder
	for _, c := range candidates {
		if !e.ShouldRemind(c.LastAction, c.Settings) {
			continue
		}
		level := e.EscalationLevel(c.LastAction)
		if level == LevelGentle && !includeGentle {
			continue
		}
		if best != nil && level.Urgency() <= best.Level.Urgency() {
			continue
		}
		msg := MessageFor(c.GoalTitle, level)
		best = &Reminder{
			GoalID:    c.GoalID,
			GoalTitle: c.GoalTitle,
			Level:     level,
			Title:     msg.Title,
			Message:   msg.Message,
			Tone:      msg.Tone,
		}
	}
	return best
}
