package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tradehub/internal/infrastructure/config"
	"tradehub/internal/interfaces/http/middleware"
	"tradehub/internal/interfaces/http/routes"
	"tradehub/internal/shared/utils"
	"tradehub/internal/shared/version"
)

// Router owns the gin engine built from a Container.
type Router struct {
	engine    *gin.Engine
	container *Container
}

func NewRouter(container *Container) *Router {
	return &Router{
		engine:    gin.New(),
		container: container,
	}
}

// SetupRoutes installs global middleware and every route group.
func (r *Router) SetupRoutes(cfg *config.Config) error {
	if err := utils.RegisterValidators(); err != nil {
		return err
	}

	c := r.container

	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(c.log.Named("http")))
	r.engine.Use(middleware.Recovery(c.log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.health)

	routes.SetupInboxRoutes(r.engine, &routes.InboxRouteConfig{
		InboxHandler:   c.inboxHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupConversationRoutes(r.engine, &routes.ConversationRouteConfig{
		MessagingHandler: c.messagingHandler,
		InboxHandler:     c.inboxHandler,
		AuthMiddleware:   c.authMiddleware,
		SendRateLimiter:  c.sendRateLimiter,
	})
	routes.SetupSupportRoutes(r.engine, &routes.SupportRouteConfig{
		SupportHandler:  c.supportHandler,
		InboxHandler:    c.inboxHandler,
		AuthMiddleware:  c.authMiddleware,
		SendRateLimiter: c.sendRateLimiter,
	})
	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AdminSupportHandler: c.adminSupportHandler,
		AuthMiddleware:      c.authMiddleware,
	})

	return nil
}

// health reports whether the database answers. Redis is optional and only
// reported.
func (r *Router) health(ctx *gin.Context) {
	checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := r.container.db.DB()
	if err == nil {
		err = sqlDB.PingContext(checkCtx)
	}
	if err != nil {
		r.container.log.Errorw("health check: database unreachable", "error", err)
		utils.ErrorResponse(ctx, http.StatusServiceUnavailable, "database unreachable")
		return
	}

	status := gin.H{"database": "ok", "version": version.Current()}
	if r.container.redis != nil {
		status["redis"] = "ok"
		if err := r.container.redis.Ping(checkCtx).Err(); err != nil {
			status["redis"] = "unreachable"
		}
	}

	utils.SuccessResponse(ctx, http.StatusOK, "", status)
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
