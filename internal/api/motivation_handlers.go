package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarter-goals/internal/motivation"
)

// GET /motivation/quote
func RandomQuoteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, motivation.RandomQuote())
	}
}

// GET /motivation/story
func RandomStoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, motivation.RandomStory())
	}
}
