package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"smarter-goals/internal/auth"
	"smarter-goals/internal/clock"
	"smarter-goals/internal/config"
	"smarter-goals/internal/vision"
)

func SetupRouter(cfg *config.Config, rdb *redis.Client) *gin.Engine {
	r := gin.Default()
	clk := clock.System()
	visionClient := vision.NewClient(cfg.Vision.URL, cfg.Vision.APIKey, time.Duration(cfg.Vision.TimeoutSeconds)*time.Second)

	// API routes
	group := r.Group(cfg.Server.Subpath)
	{
		group.GET("/health", healthHandler)
		group.GET("/config", configHandler(cfg))

		// Setup: only if no users
		group.POST("/setup", SetupHandler())

		// Auth
		group.POST("/auth/login", LoginHandler(cfg, rdb))
		group.POST("/auth/logout", auth.AuthMiddleware(cfg, rdb, false), LogoutHandler(rdb))
		group.GET("/auth/me", auth.AuthMiddleware(cfg, rdb, false), MeHandler())

		// Goals and plans
		group.POST("/goals", auth.AuthMiddleware(cfg, rdb, false), CreateGoalHandler(clk))
		group.GET("/goals", auth.AuthMiddleware(cfg, rdb, false), ListGoalsHandler())
		group.GET("/goals/:id", auth.AuthMiddleware(cfg, rdb, false), GetGoalHandler())
		group.PUT("/goals/:id", auth.AuthMiddleware(cfg, rdb, false), UpdateGoalHandler(clk))
		group.DELETE("/goals/:id", auth.AuthMiddleware(cfg, rdb, false), DeleteGoalHandler())
		group.POST("/goals/:id/actions", auth.AuthMiddleware(cfg, rdb, false), ToggleActionHandler(clk))
		group.GET("/goals/:id/progress", auth.AuthMiddleware(cfg, rdb, false), GoalProgressHandler(clk))

		// Habits
		group.GET("/habits", auth.AuthMiddleware(cfg, rdb, false), ListHabitsHandler(clk))
		group.PUT("/habits/:id", auth.AuthMiddleware(cfg, rdb, false), UpdateHabitHandler())
		group.POST("/habits/:id/toggle", auth.AuthMiddleware(cfg, rdb, false), ToggleHabitHandler(clk))

		// Reminders
		group.GET("/reminders", auth.AuthMiddleware(cfg, rdb, false), GetReminderHandler(clk))
		group.GET("/goals/:id/reminder-settings", auth.AuthMiddleware(cfg, rdb, false), GetReminderSettingsHandler())
		group.PUT("/goals/:id/reminder-settings", auth.AuthMiddleware(cfg, rdb, false), UpdateReminderSettingsHandler())

		// Reminder push feed
		group.GET("/ws/reminders", WSRemindersHandler(cfg, rdb, clk))

		// Motivation
		group.GET("/motivation/quote", RandomQuoteHandler())
		group.GET("/motivation/story", RandomStoryHandler())

		// Vision board
		group.GET("/vision", auth.AuthMiddleware(cfg, rdb, false), VisionBoardHandler(visionClient))
	}
	return r
}
