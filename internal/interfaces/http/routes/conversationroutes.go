package routes

import (
	"github.com/gin-gonic/gin"

	inboxhandlers "tradehub/internal/interfaces/http/handlers/inbox"
	messaginghandlers "tradehub/internal/interfaces/http/handlers/messaging"
	"tradehub/internal/interfaces/http/middleware"
)

type ConversationRouteConfig struct {
	MessagingHandler *messaginghandlers.Handler
	InboxHandler     *inboxhandlers.Handler
	AuthMiddleware   *middleware.AuthMiddleware
	SendRateLimiter  *middleware.SendRateLimiter
}

func SetupConversationRoutes(engine *gin.Engine, config *ConversationRouteConfig) {
	conversations := engine.Group("/conversations")
	conversations.Use(config.AuthMiddleware.RequireAuth(), middleware.RequireParticipant())
	{
		conversations.POST("/messages",
			config.SendRateLimiter.Limit(),
			config.MessagingHandler.SendMessage)

		conversations.GET("/:id/messages", config.MessagingHandler.ListThread)
		conversations.POST("/:id/read", config.InboxHandler.MarkConversationRead)
	}
}
