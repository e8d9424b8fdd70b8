package motivation

import "math/rand"

// Quote is one inspirational quote from the static catalog.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Story is a short success story with its takeaway.
type Story struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Lesson  string `json:"lesson"`
}

var quotes = []Quote{
	{"The way to get started is to quit talking and begin doing.", "Walt Disney"},
	{"Don't be pushed around by the fears in your mind. Be led by the dreams in your heart.", "Roy T. Bennett"},
	{"The future belongs to those who believe in the beauty of their dreams.", "Eleanor Roosevelt"},
	{"It is during our darkest moments that we must focus to see the light.", "Aristotle"},
	{"Success is not final, failure is not fatal: it is the courage to continue that counts.", "Winston Churchill"},
	{"The only way to do great work is to love what you do.", "Steve Jobs"},
	{"If you can dream it, you can do it.", "Walt Disney"},
	{"The harder you work for something, the greater you'll feel when you achieve it.", "Unknown"},
	{"Dream bigger. Do bigger.", "Unknown"},
	{"Your limitation—it's only your imagination.", "Unknown"},
}

var stories = []Story{
	{
		Title:   "The Marathon Runner",
		Content: "Sarah decided to run a marathon. She started by running just 1 mile a day. After 30 days, she increased to 2 miles. By month 3, she was running 5 miles daily. On day 365, she completed her first marathon. Small daily actions compound into extraordinary achievements.",
		Lesson:  "Consistency beats intensity. Start small, stay consistent.",
	},
	{
		Title:   "The Language Learner",
		Content: "Marcus wanted to learn Spanish. Instead of cramming for hours, he committed to 15 minutes daily. He used apps, watched shows, and practiced with native speakers. After one year, he was fluent enough to travel to Spain and have full conversations. Small, daily practice led to mastery.",
		Lesson:  "Daily practice, no matter how small, leads to mastery.",
	},
	{
		Title:   "The Entrepreneur",
		Content: "Lisa started a business with just an idea and $100. She worked on it for 30 minutes every morning before her day job. After 6 months, she had her first paying customer. After 2 years, she quit her job and her business was generating $10,000/month. Small steps, big results.",
		Lesson:  "Start where you are. Use what you have. Do what you can.",
	},
}

// RandomQuote picks one quote from the catalog.
func RandomQuote() Quote {
	return quotes[rand.Intn(len(quotes))]
}

// RandomStory picks one story from the catalog.
func RandomStory() Story {
	return stories[rand.Intn(len(stories))]
}
