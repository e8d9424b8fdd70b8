package goal

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// category is one (predicate, generator) pair of the breakdown
// dispatch. The Generator evaluates categories in priority order and
// stops at the first match, so a goal matching several keyword sets is
// classified by priority, never combined.
type category struct {
	name   string
	match  func(g *Goal) bool
	daily  func(g *Goal, dayIndex, totalDays int) string
	weekly func(g *Goal, weekIndex, totalWeeks int) string
}

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// numbersIn extracts every integer/decimal token from s, in order.
func numbersIn(s string) []float64 {
	var out []float64
	for _, m := range numberPattern.FindAllString(s, -1) {
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}

// firstNumber returns the first numeric token in the goal's title and
// measurement, or fallback if none is present.
func firstNumber(g *Goal, fallback float64) float64 {
	nums := numbersIn(g.Title + " " + g.Measurement)
	if len(nums) == 0 {
		return fallback
	}
	return nums[0]
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func titleHas(g *Goal, words ...string) bool {
	title := strings.ToLower(g.Title)
	for _, w := range words {
		if strings.Contains(title, w) {
			return true
		}
	}
	return false
}

func measurementHas(g *Goal, words ...string) bool {
	m := strings.ToLower(g.Measurement)
	for _, w := range words {
		if strings.Contains(m, w) {
			return true
		}
	}
	return false
}

// readingCategory: book/page goals. The page target is extracted from
// the goal text and bounded to [10, 1000], defaulting to 300. After
// three small fixed-amount starter days the daily target scales with
// the elapsed fraction of the window.
func readingCategory() category {
	targetPages := func(g *Goal) int {
		return int(clampFloat(firstNumber(g, 300), 10, 1000))
	}
	paceFor := func(g *Goal, index, total int) int {
		pages := int(math.Round(float64(targetPages(g)) * float64(index) / float64(total)))
		if pages < 1 {
			pages = 1
		}
		return pages
	}
	return category{
		name: "reading",
		match: func(g *Goal) bool {
			return titleHas(g, "read", "book") || measurementHas(g, "page")
		},
		daily: func(g *Goal, dayIndex, totalDays int) string {
			pace := paceFor(g, dayIndex+1, totalDays)
			switch {
			case dayIndex == 0:
				return "Read 1 page to get started"
			case dayIndex == 1:
				return fmt.Sprintf("Read %d pages today", minInt(5, pace))
			case dayIndex == 2:
				return fmt.Sprintf("Read %d pages today", minInt(10, pace))
			default:
				return fmt.Sprintf("Be at page %d to stay on pace for all %d pages", pace, targetPages(g))
			}
		},
		weekly: func(g *Goal, weekIndex, totalWeeks int) string {
			return fmt.Sprintf("Reach page %d of %d in your book", paceFor(g, weekIndex, totalWeeks), targetPages(g))
		},
	}
}

// runningCategory: distance goals. Target distance in km is bounded to
// [1, 50] with a default of 5; a second numeric token, if present, is
// read as a target time in minutes. The first four days follow a fixed
// ramp before the proportional formula takes over, capped at the
// target distance.
func runningCategory() category {
	targetKm := func(g *Goal) float64 {
		return clampFloat(firstNumber(g, 5), 1, 50)
	}
	targetMinutes := func(g *Goal) int {
		nums := numbersIn(g.Title + " " + g.Measurement)
		if len(nums) >= 2 {
			return int(nums[1])
		}
		return 0
	}
	distanceFor := func(g *Goal, index, total int) float64 {
		target := targetKm(g)
		km := target * float64(index) / float64(total)
		if km < 1 {
			km = 1
		}
		return math.Min(km, target)
	}
	return category{
		name: "running",
		match: func(g *Goal) bool {
			return titleHas(g, "run", "marathon", "km") || measurementHas(g, "km", "minute")
		},
		daily: func(g *Goal, dayIndex, totalDays int) string {
			switch dayIndex {
			case 0:
				return "Go for a 10-minute walk/run"
			case 1:
				return "Go for a 20-minute walk/run"
			case 2:
				return "Run 1 km at an easy pace"
			case 3:
				return "Run 2 km at a comfortable pace"
			default:
				return fmt.Sprintf("Run %.1f km today", distanceFor(g, dayIndex+1, totalDays))
			}
		},
		weekly: func(g *Goal, weekIndex, totalWeeks int) string {
			km := distanceFor(g, weekIndex, totalWeeks)
			if weekIndex == totalWeeks {
				if mins := targetMinutes(g); mins > 0 {
					return fmt.Sprintf("Run the full %.1f km, aiming for %d minutes", targetKm(g), mins)
				}
				return fmt.Sprintf("Run the full %.1f km without stopping", targetKm(g))
			}
			return fmt.Sprintf("Build up to running %.1f km without stopping", km)
		},
	}
}

// learningCategory: language/study goals. Fixed escalating practice
// durations by day bracket; no numeric extraction.
func learningCategory() category {
	return category{
		name: "learning",
		match: func(g *Goal) bool {
			return titleHas(g, "learn", "language", "study") || measurementHas(g, "conversation", "fluent")
		},
		daily: func(g *Goal, dayIndex, totalDays int) string {
			switch {
			case dayIndex == 0:
				return "Practice for 10 minutes: start with the basics"
			case dayIndex < 3:
				return "Practice for 15 minutes: review yesterday, then add new material"
			case dayIndex < 5:
				return "Practice for 20 minutes: focus on active recall"
			default:
				return "Practice for 30 minutes: mix review with real usage"
			}
		},
		weekly: func(g *Goal, weekIndex, totalWeeks int) string {
			percent := float64(weekIndex) / float64(totalWeeks) * 100
			switch {
			case percent < 25:
				return "Complete a full week of daily practice"
			case percent < 50:
				return "Hold a short conversation using what you've learned"
			case percent < 75:
				return "Spend the week with native-level material"
			default:
				return fmt.Sprintf("Put %q to the test in a real situation", g.Title)
			}
		},
	}
}

// weightCategory: weight/health goals. Fixed escalating exercise
// durations by day bracket; the weekly tier uses the extracted target
// amount when one is present.
func weightCategory() category {
	unit := func(g *Goal) string {
		if measurementHas(g, "kg") {
			return "kg"
		}
		return "pounds"
	}
	return category{
		name: "weight",
		match: func(g *Goal) bool {
			return titleHas(g, "lose", "weight", "pound") || measurementHas(g, "pound", "kg")
		},
		daily: func(g *Goal, dayIndex, totalDays int) string {
			switch {
			case dayIndex < 2:
				return "Do 15 minutes of light exercise"
			case dayIndex < 5:
				return "Do 30 minutes of exercise"
			default:
				return "Do 45 minutes of exercise"
			}
		},
		weekly: func(g *Goal, weekIndex, totalWeeks int) string {
			target := firstNumber(g, 0)
			if target > 0 {
				lost := target * float64(weekIndex) / float64(totalWeeks)
				return fmt.Sprintf("Week %d: be %.1f %s down toward your %.0f %s target", weekIndex, lost, unit(g), target, unit(g))
			}
			percent := float64(weekIndex) / float64(totalWeeks) * 100
			switch {
			case percent < 25:
				return "Establish your meal and exercise routine"
			case percent < 50:
				return "Hold the routine for a full week without a missed day"
			case percent < 75:
				return "Increase intensity and track your weekly weigh-in"
			default:
				return "Maintain your results and plan how to keep them"
			}
		},
	}
}

// businessCategory: business/financial goals. Fixed escalating work
// durations by day bracket; the weekly tier tracks a cumulative dollar
// target when one is present.
func businessCategory() category {
	return category{
		name: "business",
		match: func(g *Goal) bool {
			return titleHas(g, "business", "start", "entrepreneur", "save", "money") || measurementHas(g, "$", "revenue")
		},
		daily: func(g *Goal, dayIndex, totalDays int) string {
			switch {
			case dayIndex == 0:
				return "Spend 30 minutes researching your market"
			case dayIndex < 3:
				return "Put in 1 hour of focused work on your plan"
			case dayIndex < 6:
				return "Put in 2 hours building toward launch"
			default:
				return "Dedicate 3+ hours to your venture today"
			}
		},
		weekly: func(g *Goal, weekIndex, totalWeeks int) string {
			target := firstNumber(g, 0)
			if target > 0 {
				amount := target * float64(weekIndex) / float64(totalWeeks)
				return fmt.Sprintf("Reach $%.0f of your $%.0f target", amount, target)
			}
			percent := float64(weekIndex) / float64(totalWeeks) * 100
			switch {
			case percent < 25:
				return fmt.Sprintf("Validate the idea behind %q with three potential customers", g.Title)
			case percent < 50:
				return "Ship the first working version, however rough"
			case percent < 75:
				return "Get your first paying customer"
			default:
				return "Systematize what works and cut what doesn't"
			}
		},
	}
}

// genericDailyAction is the fallback when no category matches: early
// days by index bracket, later days by percent of the window elapsed.
func genericDailyAction(g *Goal, dayIndex, totalDays int) string {
	switch {
	case dayIndex == 0:
		return fmt.Sprintf("Start: Take one small step toward %q", g.Title)
	case dayIndex < 3:
		return "Build momentum: Spend 15 minutes working on your goal"
	case dayIndex < 7:
		return "Maintain consistency: Review your progress and adjust if needed"
	}
	percent := float64(dayIndex) / float64(totalDays) * 100
	switch {
	case percent < 50:
		return "Build momentum: Spend 15 minutes working on your goal"
	case percent < 80:
		return "Maintain consistency: Review your progress and adjust if needed"
	default:
		return "Final push: Connect with someone who can help you achieve this goal"
	}
}

func genericWeeklyMilestone(g *Goal, weekIndex, totalWeeks int) string {
	percent := float64(weekIndex) / float64(totalWeeks) * 100
	switch {
	case percent < 25:
		return fmt.Sprintf("Establish foundation for %q", g.Title)
	case percent < 50:
		return "Build consistent routine toward your goal"
	case percent < 75:
		return "Accelerate progress and overcome obstacles"
	default:
		return fmt.Sprintf("Finalize and celebrate achievement of %q", g.Title)
	}
}
