package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyPartyType = "party_type"
	ContextKeyPartyID   = "party_id"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers           = "users"
	TableCompanies       = "companies"
	TableConversations   = "conversations"
	TableMessages        = "messages"
	TableSupportTickets  = "support_tickets"
	TableSupportMessages = "support_messages"

	// Redis key prefixes
	RedisKeyIdentity = "tradehub:identity"
	RedisKeySendRate = "tradehub:ratelimit:send"
)
