package goal

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

// Tier caps: no matter how long the goal window is, the plan never holds
// more entries than this per tier. Longer horizons only show up in the
// coarser tiers.
const (
	MaxDailyEntries   = 7
	MaxWeeklyEntries  = 12
	MaxMonthlyEntries = 12
)

// DateFormat is the calendar-day format used for all plan entry dates.
const DateFormat = "2006-01-02"

// Goal is a SMART goal with its owned action plan.
type Goal struct {
	ID               string                    `gorm:"primaryKey;size:36" json:"id"`
	UserID           uint                      `gorm:"index" json:"userId"`
	Title            string                    `gorm:"size:255" json:"title"`
	Measurement      string                    `json:"measurement"`
	Achievable       string                    `json:"achievable"`
	Relevant         string                    `json:"relevant"`
	TargetDate       *time.Time                `json:"targetDate,omitempty"`
	Breakdown        datatypes.JSONType[*Plan] `json:"breakdown"`
	CompletedActions int                       `json:"completedActions"`
	LastActionDate   *time.Time                `json:"lastActionDate,omitempty"`
	CreatedAt        time.Time                 `json:"createdAt"`
	UpdatedAt        time.Time                 `json:"updatedAt"`
}

// Plan is the four-tier breakdown owned by exactly one goal.
type Plan struct {
	Daily   []DailyAction       `json:"daily"`
	Weekly  []WeeklyMilestone   `json:"weekly"`
	Monthly []MonthlyCheckpoint `json:"monthly"`
	Yearly  []YearlyReview      `json:"yearly"`
}

type DailyAction struct {
	Date      string `json:"date"`
	Action    string `json:"action"`
	Completed bool   `json:"completed"`
}

type WeeklyMilestone struct {
	Week      int    `json:"week"`
	Date      string `json:"date"`
	Milestone string `json:"milestone"`
	Completed bool   `json:"completed"`
}

type MonthlyCheckpoint struct {
	Month      int    `json:"month"`
	Date       string `json:"date"`
	Checkpoint string `json:"checkpoint"`
	Completed  bool   `json:"completed"`
}

type YearlyReview struct {
	Year      int    `json:"year"`
	Date      string `json:"date"`
	Review    string `json:"review"`
	Completed bool   `json:"completed"`
}

// Plan entry tiers, as used by the action toggle API.
const (
	TierDaily   = "daily"
	TierWeekly  = "weekly"
	TierMonthly = "monthly"
	TierYearly  = "yearly"
)

var ErrNoSuchEntry = errors.New("no plan entry at that tier/index")

// TotalActions is the summed length of all four tiers.
func (p *Plan) TotalActions() int {
	if p == nil {
		return 0
	}
	return len(p.Daily) + len(p.Weekly) + len(p.Monthly) + len(p.Yearly)
}

// CompletedCount counts checked entries across all tiers.
func (p *Plan) CompletedCount() int {
	if p == nil {
		return 0
	}
	count := 0
	for _, e := range p.Daily {
		if e.Completed {
			count++
		}
	}
	for _, e := range p.Weekly {
		if e.Completed {
			count++
		}
	}
	for _, e := range p.Monthly {
		if e.Completed {
			count++
		}
	}
	for _, e := range p.Yearly {
		if e.Completed {
			count++
		}
	}
	return count
}

// Clone returns a deep copy so a toggle can produce a new plan value
// without mutating the stored one.
func (p *Plan) Clone() *Plan {
	if p == nil {
		return nil
	}
	clone := &Plan{
		Daily:   make([]DailyAction, len(p.Daily)),
		Weekly:  make([]WeeklyMilestone, len(p.Weekly)),
		Monthly: make([]MonthlyCheckpoint, len(p.Monthly)),
		Yearly:  make([]YearlyReview, len(p.Yearly)),
	}
	copy(clone.Daily, p.Daily)
	copy(clone.Weekly, p.Weekly)
	copy(clone.Monthly, p.Monthly)
	copy(clone.Yearly, p.Yearly)
	return clone
}

// SetCompleted marks the entry at tier/index. Index is zero-based within
// the tier.
func (p *Plan) SetCompleted(tier string, index int, completed bool) error {
	if p == nil {
		return ErrNoSuchEntry
	}
	switch tier {
	case TierDaily:
		if index < 0 || index >= len(p.Daily) {
			return ErrNoSuchEntry
		}
		p.Daily[index].Completed = completed
	case TierWeekly:
		if index < 0 || index >= len(p.Weekly) {
			return ErrNoSuchEntry
		}
		p.Weekly[index].Completed = completed
	case TierMonthly:
		if index < 0 || index >= len(p.Monthly) {
			return ErrNoSuchEntry
		}
		p.Monthly[index].Completed = completed
	case TierYearly:
		if index < 0 || index >= len(p.Yearly) {
			return ErrNoSuchEntry
		}
		p.Yearly[index].Completed = completed
	default:
		return ErrNoSuchEntry
	}
	return nil
}

// Plan returns the owned breakdown, or nil if none was generated yet.
func (g *Goal) Plan() *Plan {
	return g.Breakdown.Data()
}
