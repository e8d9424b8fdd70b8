package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"smarter-goals/internal/auth"
	"smarter-goals/internal/clock"
	"smarter-goals/internal/config"
	"smarter-goals/internal/reminder"
)

var reminderUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /ws/reminders pushes the selected reminder on connect and on
// every refresh tick, so the client banner stays current without
// polling. Auth is a token query param since browsers cannot set
// headers on WebSocket upgrades.
func WSRemindersHandler(cfg *config.Config, rdb *redis.Client, clk clock.Clock) gin.HandlerFunc {
	engine := reminder.NewEngine(clk)
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		claims, err := auth.ParseJWT(cfg.Server.JWTSecret, tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Invalid or expired token"}})
			return
		}
		sessionToken, err := auth.GetSession(rdb, claims.UserID)
		if err != nil || sessionToken != tokenStr {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Session expired or invalid"}})
			return
		}

		conn, err := reminderUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[Reminders] WS upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		// Drain client messages so we notice a closed connection.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		send := func() error {
			candidates, err := reminderCandidates(claims.UserID)
			if err != nil {
				return err
			}
			return conn.WriteJSON(gin.H{"reminder": engine.Select(candidates, false)})
		}
		if err := send(); err != nil {
			return
		}

		ticker := time.NewTicker(time.Duration(cfg.Reminders.RefreshSeconds) * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := send(); err != nil {
					return
				}
			}
		}
	}
}
