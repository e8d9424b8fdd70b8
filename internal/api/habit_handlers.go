package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarter-goals/internal/clock"
	"smarter-goals/internal/db"
	"smarter-goals/internal/habit"
)

func findUserHabit(c *gin.Context, id string) (*habit.Habit, bool) {
	userId, _ := c.Get("userId")
	var h habit.Habit
	if err := db.DB.Where("id = ? AND user_id = ?", id, userId.(uint)).First(&h).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Habit not found"}})
		return nil, false
	}
	return &h, true
}

// GET /habits
func ListHabitsHandler(clk clock.Clock) gin.HandlerFunc {
	engine := habit.NewEngine(clk)
	return func(c *gin.Context) {
		userId, _ := c.Get("userId")
		var habits []habit.Habit
		if err := db.DB.Where("user_id = ?", userId.(uint)).Order("created_at").Find(&habits).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "List error"}})
			return
		}
		result := make([]gin.H, 0, len(habits))
		for _, h := range habits {
			result = append(result, gin.H{
				"habit":          h,
				"score":          habit.Score(h),
				"completedToday": engine.CompletedToday(h),
			})
		}
		c.JSON(http.StatusOK, result)
	}
}

type HabitEditRequest struct {
	Name     string `json:"name"`
	Cue      string `json:"cue"`
	Craving  string `json:"craving"`
	Response string `json:"response"`
	Reward   string `json:"reward"`
}

// PUT /habits/:id replaces the free-text fields. Empty fields keep
// their old value; streak state is never touched by an edit.
func UpdateHabitHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		h, ok := findUserHabit(c, c.Param("id"))
		if !ok {
			return
		}
		var req HabitEditRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		updated := habit.ApplyEdits(*h, req.Name, req.Cue, req.Craving, req.Response, req.Reward)
		if err := db.DB.Save(&updated).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Update error"}})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

type HabitToggleRequest struct {
	Completed bool `json:"completed"`
}

// POST /habits/:id/toggle runs the daily streak transition.
func ToggleHabitHandler(clk clock.Clock) gin.HandlerFunc {
	engine := habit.NewEngine(clk)
	return func(c *gin.Context) {
		h, ok := findUserHabit(c, c.Param("id"))
		if !ok {
			return
		}
		var req HabitToggleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		updated := engine.Toggle(*h, req.Completed)
		if err := db.DB.Save(&updated).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Update error"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"habit":          updated,
			"score":          habit.Score(updated),
			"completedToday": engine.CompletedToday(updated),
		})
	}
}
