package routes

import (
	"net/http"
	"time"

	"tripgenius/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversation endpoints.
func RegisterChatRoutes(r *gin.Engine, chat *handlers.ChatHandler) {
	api := r.Group("/api/chat")
	{
		api.POST("/initiate", chat.InitiateHandler)
		api.POST("/continue", chat.ContinueHandler)
	}
}

// RegisterRecordRoutes registers trip-record endpoints.
func RegisterRecordRoutes(r *gin.Engine, records *handlers.RecordsHandler) {
	api := r.Group("/api/records")
	{
		api.GET("/recent", records.RecentRecordsHandler)
		api.GET("/session/:sessionID", records.SessionRecordsHandler)
	}
}

// RegisterRoutes wires CORS, health and all API routes onto the router.
func RegisterRoutes(r *gin.Engine, chat *handlers.ChatHandler, records *handlers.RecordsHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterChatRoutes(r, chat)
	if records != nil {
		RegisterRecordRoutes(r, records)
	}
}
