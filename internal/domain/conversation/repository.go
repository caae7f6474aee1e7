package conversation

import (
	"context"
	"time"

	"tradehub/internal/domain/shared/party"
)

// Summary is a conversation annotated with its latest message and the
// viewer's unread count, as computed in one read.
type Summary struct {
	Conversation *Conversation
	LastBody     *string
	LastAt       *time.Time
	UnreadCount  int64
}

type ConversationRepository interface {
	// FindOrCreate returns the conversation for the pair, inserting it on
	// first use. Concurrent callers for the same pair observe one row.
	FindOrCreate(ctx context.Context, userID, companyID uint) (*Conversation, error)
	GetByID(ctx context.Context, id uint) (*Conversation, error)
	ListForUser(ctx context.Context, userID uint) ([]*Summary, error)
	ListForCompany(ctx context.Context, companyID uint) ([]*Summary, error)
}

type MessageRepository interface {
	// Append stores msg and bumps the owning conversation's updated_at.
	Append(ctx context.Context, msg *Message) error
	ListByConversation(ctx context.Context, conversationID uint) ([]*Message, error)
	// MarkRead stamps every unread message sent by viewer's counterpart and
	// returns how many rows changed.
	MarkRead(ctx context.Context, conversationID uint, viewer party.Type) (int64, error)
}
