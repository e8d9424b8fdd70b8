package goal

import (
	"time"

	"github.com/google/uuid"

	"smarter-goals/internal/clock"
)

// Factory handles the creation of Goal records.
type Factory struct {
	clk clock.Clock
}

// NewFactory creates a goal factory.
func NewFactory(clk clock.Clock) *Factory {
	return &Factory{clk: clk}
}

// Create builds a new goal owned by userID. The caller is expected to
// run validation and breakdown generation before persisting.
func (f *Factory) Create(userID uint, title, measurement, achievable, relevant string, targetDate *time.Time) *Goal {
	return &Goal{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       title,
		Measurement: measurement,
		Achievable:  achievable,
		Relevant:    relevant,
		TargetDate:  targetDate,
		CreatedAt:   f.clk.Now(),
	}
}
