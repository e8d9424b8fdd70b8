package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"smarter-goals/internal/db"
	"smarter-goals/internal/goal"
	"smarter-goals/internal/vision"
)

// GET /vision returns one board tile per goal. With ?generate=true and
// a configured image API, each tile also gets a generated image; an
// image failure is logged and the tile falls back to its emoji theme.
func VisionBoardHandler(client *vision.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, _ := c.Get("userId")
		var goals []goal.Goal
		if err := db.DB.Where("user_id = ?", userId.(uint)).Order("created_at").Find(&goals).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "List error"}})
			return
		}

		generate := c.Query("generate") == "true" && client.Enabled()
		entries := make([]vision.Entry, 0, len(goals))
		for i, g := range goals {
			entry := vision.Entry{
				GoalID: g.ID,
				Title:  g.Title,
				Emoji:  vision.EmojiFor(g.Title),
				Color:  vision.ColorFor(i),
			}
			if generate {
				url, err := client.GenerateImage(c.Request.Context(), g.Title)
				if err != nil {
					log.Printf("[Vision] image generation for goal %s failed: %v", g.ID, err)
				} else {
					entry.ImageURL = url
				}
			}
			entries = append(entries, entry)
		}
		c.JSON(http.StatusOK, entries)
	}
}
