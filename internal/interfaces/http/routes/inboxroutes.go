package routes

import (
	"github.com/gin-gonic/gin"

	inboxhandlers "tradehub/internal/interfaces/http/handlers/inbox"
	"tradehub/internal/interfaces/http/middleware"
)

type InboxRouteConfig struct {
	InboxHandler   *inboxhandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupInboxRoutes(engine *gin.Engine, config *InboxRouteConfig) {
	engine.GET("/inbox",
		config.AuthMiddleware.RequireAuth(),
		middleware.RequireParticipant(),
		config.InboxHandler.ListInbox)
}
