package vision

import "testing"

func TestEmojiFor(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Run my first marathon", "🏃"},
		{"Learn conversational Spanish", "📚"},
		{"Start a side business", "💼"},
		{"Save money for a house deposit", "💰"},
		{"Lose weight before summer", "💪"},
		{"Travel to Japan", "✈️"},
		{"Finish my thesis draft", "🎯"},
	}
	for _, tc := range cases {
		if got := EmojiFor(tc.title); got != tc.want {
			t.Errorf("%q: expected %s, got %s", tc.title, tc.want, got)
		}
	}
}

func TestColorFor_Cycles(t *testing.T) {
	if ColorFor(0) != "primary" {
		t.Errorf("first tile: %s", ColorFor(0))
	}
	if ColorFor(6) != ColorFor(0) || ColorFor(7) != ColorFor(1) {
		t.Errorf("themes should cycle every 6 tiles")
	}
}
