package habit

import "time"

// Type is the cadence of a habit.
type Type string

const (
	TypeDaily   Type = "daily"
	TypeWeekly  Type = "weekly"
	TypeMonthly Type = "monthly"
)

// Habit is the implementation-stack companion record derived from a
// goal: cue, craving, response, reward, plus the streak state. It holds
// a weak reference to its goal; cleanup on goal deletion is the
// caller's job, not the engine's.
type Habit struct {
	ID            string     `gorm:"primaryKey;size:36" json:"id"`
	GoalID        string     `gorm:"index;size:36" json:"goalId"`
	UserID        uint       `gorm:"index" json:"userId"`
	Name          string     `json:"name"`
	Type          Type       `gorm:"type:varchar(10)" json:"type"`
	Cue           string     `json:"cue"`
	Craving       string     `json:"craving"`
	Response      string     `json:"response"`
	Reward        string     `json:"reward"`
	Streak        int        `json:"streak"`
	BestStreak    int        `json:"bestStreak"`
	LastCompleted *time.Time `json:"lastCompleted,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
