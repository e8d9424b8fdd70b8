package vision

import "strings"

// Entry is one vision-board tile for a goal: a category emoji plus a
// color theme, with an optional generated image reference.
type Entry struct {
	GoalID   string `json:"goalId"`
	Title    string `json:"title"`
	Emoji    string `json:"emoji"`
	Color    string `json:"color"`
	ImageURL string `json:"imageUrl,omitempty"`
}

var colorThemes = []string{
	"primary",
	"purple",
	"pink",
	"blue",
	"green",
	"yellow",
}

// EmojiFor maps a goal title onto a category emoji.
func EmojiFor(title string) string {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "run") || strings.Contains(t, "marathon") || strings.Contains(t, "fitness"):
		return "🏃"
	case strings.Contains(t, "learn") || strings.Contains(t, "language") || strings.Contains(t, "study"):
		return "📚"
	case strings.Contains(t, "business") || strings.Contains(t, "start") || strings.Contains(t, "entrepreneur"):
		return "💼"
	case strings.Contains(t, "save") || strings.Contains(t, "money") || strings.Contains(t, "financial"):
		return "💰"
	case strings.Contains(t, "health") || strings.Contains(t, "weight") || strings.Contains(t, "diet"):
		return "💪"
	case strings.Contains(t, "travel") || strings.Contains(t, "visit"):
		return "✈️"
	default:
		return "🎯"
	}
}

// ColorFor cycles the fixed color themes by board position.
func ColorFor(index int) string {
	return colorThemes[index%len(colorThemes)]
}
