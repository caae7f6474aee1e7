package routes

import (
	"github.com/gin-gonic/gin"

	supporthandlers "tradehub/internal/interfaces/http/handlers/support"
	"tradehub/internal/interfaces/http/middleware"
)

type AdminRouteConfig struct {
	AdminSupportHandler *supporthandlers.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	tickets := engine.Group("/admin/support/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth(), middleware.RequireAdmin())
	{
		tickets.GET("", config.AdminSupportHandler.ListTickets)
		tickets.GET("/:id/messages", config.AdminSupportHandler.GetThread)
		tickets.POST("/:id/messages", config.AdminSupportHandler.Reply)
		tickets.POST("/:id/close", config.AdminSupportHandler.CloseTicket)
	}
}
