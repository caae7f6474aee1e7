package routes

import (
	"github.com/gin-gonic/gin"

	inboxhandlers "tradehub/internal/interfaces/http/handlers/inbox"
	supporthandlers "tradehub/internal/interfaces/http/handlers/support"
	"tradehub/internal/interfaces/http/middleware"
)

type SupportRouteConfig struct {
	SupportHandler  *supporthandlers.Handler
	InboxHandler    *inboxhandlers.Handler
	AuthMiddleware  *middleware.AuthMiddleware
	SendRateLimiter *middleware.SendRateLimiter
}

func SetupSupportRoutes(engine *gin.Engine, config *SupportRouteConfig) {
	tickets := engine.Group("/support/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth(), middleware.RequireParticipant())
	{
		tickets.POST("",
			config.SendRateLimiter.Limit(),
			config.SupportHandler.OpenTicket)

		tickets.GET("/:id/messages", config.SupportHandler.ListThread)
		tickets.POST("/:id/messages",
			config.SendRateLimiter.Limit(),
			config.SupportHandler.SendMessage)
		tickets.POST("/:id/read", config.InboxHandler.MarkTicketRead)
	}
}
