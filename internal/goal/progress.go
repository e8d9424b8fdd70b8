package goal

import (
	"math"

	"smarter-goals/internal/clock"
)

// FeedbackTier ranks how action progress compares to time progress.
type FeedbackTier string

const (
	TierExcellent FeedbackTier = "excellent"
	TierGreat     FeedbackTier = "great"
	TierOnTrack   FeedbackTier = "on-track"
	TierBehind    FeedbackTier = "behind"
	TierCritical  FeedbackTier = "critical"
)

// Feedback is the qualitative verdict derived from the divergence of
// the two progress measures.
type Feedback struct {
	Tier    FeedbackTier `json:"type"`
	Message string       `json:"message"`
	Color   string       `json:"color"`
}

// Reward is a badge unlocked at a fixed action-progress threshold.
type Reward struct {
	Milestone string `json:"milestone"`
	Reward    string `json:"reward"`
	Unlocked  bool   `json:"unlocked"`
}

// Report bundles everything the progress dashboard needs for one goal.
type Report struct {
	ActionProgress int      `json:"actionProgress"`
	TimeProgress   int      `json:"timeProgress"`
	Feedback       Feedback `json:"feedback"`
	Rewards        []Reward `json:"rewards"`
}

// ProgressCalculator derives the two independent progress measures.
// Action progress is recomputed from the plan on demand, never cached.
type ProgressCalculator struct {
	clk clock.Clock
}

func NewProgressCalculator(clk clock.Clock) *ProgressCalculator {
	return &ProgressCalculator{clk: clk}
}

// ActionProgress is completed actions over total planned actions, as a
// rounded percentage. A goal without a plan is at 0.
func (p *ProgressCalculator) ActionProgress(plan *Plan, completedActions int) int {
	total := plan.TotalActions()
	if total == 0 {
		return 0
	}
	if completedActions < 0 {
		completedActions = 0
	}
	return int(math.Round(float64(completedActions) / float64(total) * 100))
}

// TimeProgress is elapsed days over the goal window, clamped to
// [0, 100]. A window of zero or negative length is fully elapsed.
func (p *ProgressCalculator) TimeProgress(g *Goal) int {
	if g.TargetDate == nil || g.CreatedAt.IsZero() {
		return 0
	}
	start := startOfDay(g.CreatedAt)
	end := startOfDay(*g.TargetDate)
	now := startOfDay(p.clk.Now())

	total := daysBetween(start, end)
	if total <= 0 {
		return 100
	}
	elapsed := daysBetween(start, now)
	percent := int(math.Round(float64(elapsed) / float64(total) * 100))
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// FeedbackFor picks the tier from the fixed divergence bands.
func FeedbackFor(actionProgress, timeProgress int) Feedback {
	difference := actionProgress - timeProgress
	switch {
	case difference >= 20:
		return Feedback{TierExcellent, "🎉 Amazing! You're ahead of schedule! Keep up the momentum!", "green"}
	case difference >= 10:
		return Feedback{TierGreat, "✨ Great job! You're making good progress!", "blue"}
	case difference >= -10:
		return Feedback{TierOnTrack, "👍 You're on track! Keep going!", "yellow"}
	case difference >= -20:
		return Feedback{TierBehind, "⚠️ You're a bit behind. Let's pick up the pace!", "orange"}
	default:
		return Feedback{TierCritical, "🚨 You need to take action now! Every day counts!", "red"}
	}
}

var rewardLadder = []Reward{
	{Milestone: "10%", Reward: "🌟 First Milestone Badge"},
	{Milestone: "25%", Reward: "⭐ Quarter Complete Badge"},
	{Milestone: "50%", Reward: "🏆 Halfway Hero Badge"},
	{Milestone: "75%", Reward: "💎 Almost There Badge"},
	{Milestone: "100%", Reward: "🎊 Goal Achieved Champion!"},
}

var rewardThresholds = []int{10, 25, 50, 75, 100}

// RewardsFor returns the cumulative badges unlocked at actionProgress,
// in ascending threshold order.
func RewardsFor(actionProgress int) []Reward {
	var rewards []Reward
	for i, threshold := range rewardThresholds {
		if actionProgress >= threshold {
			badge := rewardLadder[i]
			badge.Unlocked = true
			rewards = append(rewards, badge)
		}
	}
	return rewards
}

// ReportFor computes the full dashboard view for one goal.
func (p *ProgressCalculator) ReportFor(g *Goal) Report {
	action := p.ActionProgress(g.Plan(), g.CompletedActions)
	elapsed := p.TimeProgress(g)
	return Report{
		ActionProgress: action,
		TimeProgress:   elapsed,
		Feedback:       FeedbackFor(action, elapsed),
		Rewards:        RewardsFor(action),
	}
}
