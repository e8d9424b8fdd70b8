package reminder

import "time"

// Level is the escalation level of a reminder, totally ordered by
// urgency: gentle < moderate < firm < aggressive.
type Level string

const (
	LevelGentle     Level = "gentle"
	LevelModerate   Level = "moderate"
	LevelFirm       Level = "firm"
	LevelAggressive Level = "aggressive"
)

// Urgency maps a level onto its rank for comparisons.
func (l Level) Urgency() int {
	switch l {
	case LevelModerate:
		return 1
	case LevelFirm:
		return 2
	case LevelAggressive:
		return 3
	default:
		return 0
	}
}

// Settings is the per-goal reminder configuration, stored and owned
// separately from the goal itself.
type Settings struct {
	GoalID    string    `gorm:"primaryKey;size:36" json:"goalId"`
	Enabled   bool      `json:"enabled"`
	Frequency int       `json:"frequency"` // days between reminders
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultSettings is what a goal gets when no settings were stored:
// enabled, one reminder per day.
func DefaultSettings(goalID string) Settings {
	return Settings{GoalID: goalID, Enabled: true, Frequency: 1}
}

// Message is the level-specific reminder text.
type Message struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Tone    string `json:"tone"`
}

// Reminder is one surfaced nudge for one goal.
type Reminder struct {
	GoalID    string `json:"goalId"`
	GoalTitle string `json:"goalTitle"`
	Level     Level  `json:"level"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Tone      string `json:"tone"`
}

// Candidate is one goal's reminder inputs for cross-goal selection.
type Candidate struct {
	GoalID     string
	GoalTitle  string
	LastAction *time.Time
	Settings   *Settings
}
