package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarter-goals/internal/clock"
	"smarter-goals/internal/db"
	"smarter-goals/internal/goal"
	"smarter-goals/internal/reminder"
)

// reminderCandidates builds the selection input for all of a user's
// goals. Goals without stored settings get the enabled/1-day default.
func reminderCandidates(userId uint) ([]reminder.Candidate, error) {
	var goals []goal.Goal
	if err := db.DB.Where("user_id = ?", userId).Order("created_at").Find(&goals).Error; err != nil {
		return nil, err
	}
	var stored []reminder.Settings
	if err := db.DB.Find(&stored).Error; err != nil {
		return nil, err
	}
	byGoal := make(map[string]reminder.Settings, len(stored))
	for _, s := range stored {
		byGoal[s.GoalID] = s
	}

	candidates := make([]reminder.Candidate, 0, len(goals))
	for _, g := range goals {
		settings, ok := byGoal[g.ID]
		if !ok {
			settings = reminder.DefaultSettings(g.ID)
		}
		candidates = append(candidates, reminder.Candidate{
			GoalID:     g.ID,
			GoalTitle:  g.Title,
			LastAction: g.LastActionDate,
			Settings:   &settings,
		})
	}
	return candidates, nil
}

// GET /reminders re-evaluates every goal's last-action recency and
// returns the single highest-urgency reminder, or none. Gentle
// reminders stay hidden unless ?gentle=true.
func GetReminderHandler(clk clock.Clock) gin.HandlerFunc {
	engine := reminder.NewEngine(clk)
	return func(c *gin.Context) {
		userId, _ := c.Get("userId")
		candidates, err := reminderCandidates(userId.(uint))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "List error"}})
			return
		}
		selected := engine.Select(candidates, c.Query("gentle") == "true")
		c.JSON(http.StatusOK, gin.H{"reminder": selected})
	}
}

// GET /goals/:id/reminder-settings
func GetReminderSettingsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		g, ok := findUserGoal(c, c.Param("id"))
		if !ok {
			return
		}
		var settings reminder.Settings
		if err := db.DB.Where("goal_id = ?", g.ID).First(&settings).Error; err != nil {
			settings = reminder.DefaultSettings(g.ID)
		}
		c.JSON(http.StatusOK, settings)
	}
}

type ReminderSettingsRequest struct {
	Enabled   *bool `json:"enabled"`
	Frequency *int  `json:"frequency"`
}

// PUT /goals/:id/reminder-settings
func UpdateReminderSettingsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		g, ok := findUserGoal(c, c.Param("id"))
		if !ok {
			return
		}
		var req ReminderSettingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		var settings reminder.Settings
		if err := db.DB.Where("goal_id = ?", g.ID).First(&settings).Error; err != nil {
			settings = reminder.DefaultSettings(g.ID)
		}
		if req.Enabled != nil {
			settings.Enabled = *req.Enabled
		}
		if req.Frequency != nil {
			if *req.Frequency < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "frequency must be at least 1 day"}})
				return
			}
			settings.Frequency = *req.Frequency
		}
		if err := db.DB.Save(&settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Update error"}})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}
