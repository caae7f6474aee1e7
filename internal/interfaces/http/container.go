package http

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	inboxUsecases "tradehub/internal/application/inbox/usecases"
	messagingUsecases "tradehub/internal/application/messaging/usecases"
	supportUsecases "tradehub/internal/application/support/usecases"
	"tradehub/internal/domain/identity"
	"tradehub/internal/infrastructure/auth"
	"tradehub/internal/infrastructure/cache"
	"tradehub/internal/infrastructure/config"
	identityInfra "tradehub/internal/infrastructure/identity"
	"tradehub/internal/infrastructure/ratelimit"
	"tradehub/internal/infrastructure/repository"
	inboxHandlers "tradehub/internal/interfaces/http/handlers/inbox"
	messagingHandlers "tradehub/internal/interfaces/http/handlers/messaging"
	supportHandlers "tradehub/internal/interfaces/http/handlers/support"
	"tradehub/internal/interfaces/http/middleware"
	"tradehub/internal/shared/db"
	"tradehub/internal/shared/logger"
	"tradehub/internal/shared/services/markdown"
)

// Container wires repositories, use cases, handlers and middleware. The
// Redis client is optional: without it identity lookups go straight to the
// database and sends are not rate limited.
type Container struct {
	db    *gorm.DB
	redis *redis.Client
	cfg   *config.Config
	log   logger.Interface

	conversationRepo *repository.ConversationRepository
	messageRepo      *repository.MessageRepository
	ticketRepo       *repository.SupportTicketRepository
	resolver         identity.Resolver

	inboxHandler        *inboxHandlers.Handler
	messagingHandler    *messagingHandlers.Handler
	supportHandler      *supportHandlers.Handler
	adminSupportHandler *supportHandlers.AdminHandler

	authMiddleware  *middleware.AuthMiddleware
	sendRateLimiter *middleware.SendRateLimiter
}

func NewContainer(conn *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		db:    conn,
		redis: redisClient,
		cfg:   cfg,
		log:   log,
	}

	c.initRepositories()
	c.initHandlers()
	c.initMiddleware()

	return c
}

func (c *Container) initRepositories() {
	c.conversationRepo = repository.NewConversationRepository(c.db)
	c.messageRepo = repository.NewMessageRepository(c.db)
	c.ticketRepo = repository.NewSupportTicketRepository(c.db)

	var resolver identity.Resolver = identityInfra.NewGormResolver(c.db)
	if c.redis != nil {
		resolver = cache.NewCachedIdentityResolver(resolver, c.redis, c.cfg.Messaging.IdentityCacheTTL(), c.log.Named("identity_cache"))
	}
	c.resolver = resolver
}

func (c *Container) initHandlers() {
	renderer := markdown.NewRenderer()

	readState := inboxUsecases.NewReadStateTracker(c.conversationRepo, c.messageRepo, c.ticketRepo, c.log)
	listInbox := inboxUsecases.NewListInboxUseCase(
		c.conversationRepo,
		c.ticketRepo,
		c.resolver,
		c.cfg.Messaging.SupportDisplayName,
		c.log,
	)

	sendMessage := messagingUsecases.NewSendMessageUseCase(c.conversationRepo, c.messageRepo, db.NewTransactionManager(c.db), c.log)
	getThread := messagingUsecases.NewGetThreadUseCase(c.conversationRepo, c.messageRepo, c.log)
	openThread := messagingUsecases.NewOpenThreadUseCase(readState, getThread, c.log)

	openTicket := supportUsecases.NewOpenTicketUseCase(c.ticketRepo, renderer, c.log)
	sendSupportMessage := supportUsecases.NewSendSupportMessageUseCase(c.ticketRepo, renderer, c.log)
	getSupportThread := supportUsecases.NewGetSupportThreadUseCase(c.ticketRepo, renderer, c.log)
	openSupportThread := supportUsecases.NewOpenSupportThreadUseCase(readState, getSupportThread)
	closeTicket := supportUsecases.NewCloseTicketUseCase(c.ticketRepo, c.log)
	listTickets := supportUsecases.NewListTicketsUseCase(c.ticketRepo, c.log)

	c.inboxHandler = inboxHandlers.NewHandler(listInbox, readState, c.log)
	c.messagingHandler = messagingHandlers.NewHandler(sendMessage, getThread, openThread, c.log)
	c.supportHandler = supportHandlers.NewHandler(openTicket, sendSupportMessage, getSupportThread, openSupportThread, c.log)
	c.adminSupportHandler = supportHandlers.NewAdminHandler(listTickets, getSupportThread, sendSupportMessage, closeTicket, c.log)
}

func (c *Container) initMiddleware() {
	jwtSvc := auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)
	c.authMiddleware = middleware.NewAuthMiddleware(jwtSvc, c.log)

	var limiter ratelimit.RateLimiter
	if c.redis != nil {
		limiter = ratelimit.NewRedisRateLimiter(c.redis)
	}
	c.sendRateLimiter = middleware.NewSendRateLimiter(limiter, c.cfg.Messaging.SendRateLimitPerMinute, c.log)
}
