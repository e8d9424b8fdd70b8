package goal

import "strings"

// Criterion identifies one of the five SMART completeness criteria.
type Criterion string

const (
	CriterionSpecific   Criterion = "specific"
	CriterionMeasurable Criterion = "measurable"
	CriterionAchievable Criterion = "achievable"
	CriterionRelevant   Criterion = "relevant"
	CriterionTimeBound  Criterion = "timeBound"
)

// MissingCriterion pairs an unmet criterion with the clarifying question
// shown to the user.
type MissingCriterion struct {
	Criterion Criterion `json:"criterion"`
	Question  string    `json:"question"`
}

// Validator checks a candidate goal against the SMART rubric.
type Validator struct {
	MinTitleLength int
	MinFieldLength int
}

// NewValidator creates a validator with the default length thresholds.
func NewValidator() *Validator {
	return &Validator{
		MinTitleLength: 10,
		MinFieldLength: 5,
	}
}

// Validate returns the unmet criteria in fixed S-M-A-R-T order. All five
// checks run independently; an empty result means the goal is complete.
func (v *Validator) Validate(g *Goal) []MissingCriterion {
	var missing []MissingCriterion

	if len(strings.TrimSpace(g.Title)) < v.MinTitleLength {
		missing = append(missing, MissingCriterion{
			Criterion: CriterionSpecific,
			Question:  "What exactly do you want to achieve? Be specific!",
		})
	}
	if len(strings.TrimSpace(g.Measurement)) < v.MinFieldLength {
		missing = append(missing, MissingCriterion{
			Criterion: CriterionMeasurable,
			Question:  `How will you measure success? (e.g., "lose 20 pounds", "save $5000")`,
		})
	}
	if len(strings.TrimSpace(g.Achievable)) < v.MinFieldLength {
		missing = append(missing, MissingCriterion{
			Criterion: CriterionAchievable,
			Question:  "Is this goal achievable? What resources/skills do you need?",
		})
	}
	if len(strings.TrimSpace(g.Relevant)) < v.MinFieldLength {
		missing = append(missing, MissingCriterion{
			Criterion: CriterionRelevant,
			Question:  "Why is this goal important to you? How does it align with your values?",
		})
	}
	if g.TargetDate == nil {
		missing = append(missing, MissingCriterion{
			Criterion: CriterionTimeBound,
			Question:  "When do you want to achieve this goal?",
		})
	}

	return missing
}

// IsComplete reports whether every SMART criterion is met.
func (v *Validator) IsComplete(g *Goal) bool {
	return len(v.Validate(g)) == 0
}
