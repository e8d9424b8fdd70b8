package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"smarter-goals/internal/clock"
	"smarter-goals/internal/db"
	"smarter-goals/internal/goal"
	"smarter-goals/internal/habit"
	"smarter-goals/internal/reminder"
)

type GoalRequest struct {
	Title       string `json:"title"`
	Measurement string `json:"measurement"`
	Achievable  string `json:"achievable"`
	Relevant    string `json:"relevant"`
	TargetDate  string `json:"targetDate"` // yyyy-mm-dd, optional
}

func parseTargetDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(goal.DateFormat, s, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func findUserGoal(c *gin.Context, id string) (*goal.Goal, bool) {
	userId, _ := c.Get("userId")
	var g goal.Goal
	if err := db.DB.Where("id = ? AND user_id = ?", id, userId.(uint)).First(&g).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Goal not found"}})
		return nil, false
	}
	return &g, true
}

// POST /goals validates the submitted goal against the SMART rubric.
// An incomplete goal gets 422 with one clarifying question per unmet
// criterion; a complete one gets a breakdown and a companion habit.
func CreateGoalHandler(clk clock.Clock) gin.HandlerFunc {
	validator := goal.NewValidator()
	return func(c *gin.Context) {
		userId, _ := c.Get("userId")
		var req GoalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		targetDate, err := parseTargetDate(req.TargetDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "targetDate must be yyyy-mm-dd"}})
			return
		}

		g := goal.NewFactory(clk).Create(userId.(uint), req.Title, req.Measurement, req.Achievable, req.Relevant, targetDate)
		if missing := validator.Validate(g); len(missing) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"missing": missing})
			return
		}

		plan, err := goal.NewGenerator(clk).BreakDown(g)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to generate breakdown"}})
			return
		}
		g.Breakdown = datatypes.NewJSONType(plan)

		companion := habit.NewEngine(clk).FromGoal(g, habit.TypeDaily)
		settings := reminder.DefaultSettings(g.ID)

		err = db.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(g).Error; err != nil {
				return err
			}
			if err := tx.Create(&companion).Error; err != nil {
				return err
			}
			return tx.Create(&settings).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Create error"}})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"goal": g, "habit": companion})
	}
}

// GET /goals
func ListGoalsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, _ := c.Get("userId")
		var goals []goal.Goal
		if err := db.DB.Where("user_id = ?", userId.(uint)).Order("created_at").Find(&goals).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "List error"}})
			return
		}
		c.JSON(http.StatusOK, goals)
	}
}

// GET /goals/:id
func GetGoalHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		g, ok := findUserGoal(c, c.Param("id"))
		if !ok {
			return
		}
		c.JSON(http.StatusOK, g)
	}
}

// PUT /goals/:id edits the SMART fields. Any change to the title,
// measurement or target date regenerates the breakdown, which unchecks
// every entry.
func UpdateGoalHandler(clk clock.Clock) gin.HandlerFunc {
	validator := goal.NewValidator()
	return func(c *gin.Context) {
		g, ok := findUserGoal(c, c.Param("id"))
		if !ok {
			return
		}
		var req GoalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}

		regenerate := false
		if req.Title != "" && req.Title != g.Title {
			g.Title = req.Title
			regenerate = true
		}
		if req.Measurement != "" && req.Measurement != g.Measurement {
			g.Measurement = req.Measurement
			regenerate = true
		}
		if req.Achievable != "" {
			g.Achievable = req.Achievable
		}
		if req.Relevant != "" {
			g.Relevant = req.Relevant
		}
		if req.TargetDate != "" {
			targetDate, err := parseTargetDate(req.TargetDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "targetDate must be yyyy-mm-dd"}})
				return
			}
			if g.TargetDate == nil || !targetDate.Equal(*g.TargetDate) {
				g.TargetDate = targetDate
				regenerate = true
			}
		}

		if missing := validator.Validate(g); len(missing) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"missing": missing})
			return
		}

		if regenerate {
			plan, err := goal.NewGenerator(clk).BreakDown(g)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to regenerate breakdown"}})
				return
			}
			g.Breakdown = datatypes.NewJSONType(plan)
			g.CompletedActions = plan.CompletedCount()
		}

		if err := db.DB.Save(g).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Update error"}})
			return
		}
		c.JSON(http.StatusOK, g)
	}
}

// DELETE /goals/:id removes the goal, its habits and its reminder
// settings. The habit cleanup is the caller-side cascade; the habit
// engine itself never deletes anything.
func DeleteGoalHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		g, ok := findUserGoal(c, c.Param("id"))
		if !ok {
			return
		}
		err := db.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("goal_id = ?", g.ID).Delete(&habit.Habit{}).Error; err != nil {
				return err
			}
			if err := tx.Where("goal_id = ?", g.ID).Delete(&reminder.Settings{}).Error; err != nil {
				return err
			}
			return tx.Delete(g).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Delete error"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": g.ID})
	}
}

type ToggleActionRequest struct {
	Tier      string `json:"tier"`
	Index     int    `json:"index"`
	Completed bool   `json:"completed"`
}

// POST /goals/:id/actions checks or unchecks one plan entry. The
// completed-action count is recomputed from the plan, and a check
// stamps the goal's lastActionDate.
func ToggleActionHandler(clk clock.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		g, ok := findUserGoal(c, c.Param("id"))
		if !ok {
			return
		}
		var req ToggleActionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}

		plan := g.Plan().Clone()
		if err := plan.SetCompleted(req.Tier, req.Index, req.Completed); err != nil {
			if errors.Is(err, goal.ErrNoSuchEntry) {
				c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "No such plan entry"}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Toggle error"}})
			return
		}

		g.Breakdown = datatypes.NewJSONType(plan)
		g.CompletedActions = plan.CompletedCount()
		if req.Completed {
			now := clk.Now()
			g.LastActionDate = &now
		}

		if err := db.DB.Save(g).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Update error"}})
			return
		}
		c.JSON(http.StatusOK, g)
	}
}

// GET /goals/:id/progress
func GoalProgressHandler(clk clock.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		g, ok := findUserGoal(c, c.Param("id"))
		if !ok {
			return
		}
		calc := goal.NewProgressCalculator(clk)
		c.JSON(http.StatusOK, calc.ReportFor(g))
	}
}
