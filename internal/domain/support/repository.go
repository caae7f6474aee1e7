package support

import (
	"context"
	"time"

	"tradehub/internal/domain/shared/party"
	vo "tradehub/internal/domain/support/valueobjects"
)

// TicketSummary is a ticket annotated with its latest message and the
// owner's unread count (admin messages newer than lastReadAt).
type TicketSummary struct {
	Ticket      *Ticket
	LastBody    *string
	LastAt      *time.Time
	UnreadCount int64
}

type TicketFilter struct {
	Status    *vo.TicketStatus
	OwnerType *party.Type
	Page      int
	PageSize  int
}

type TicketRepository interface {
	// Create stores a new ticket together with its opening message.
	Create(ctx context.Context, ticket *Ticket, first *Message) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	ListForOwner(ctx context.Context, ownerType party.Type, ownerID uint) ([]*TicketSummary, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	// AppendMessage persists msg and the ticket's new status atomically. It
	// fails with ErrTicketClosed if the stored ticket is already closed.
	AppendMessage(ctx context.Context, ticket *Ticket, msg *Message) error
	ListMessages(ctx context.Context, ticketID uint) ([]*Message, error)
	// MarkRead moves the owner's read boundary to at without touching
	// updated_at.
	MarkRead(ctx context.Context, ticketID uint, at time.Time) error
	Close(ctx context.Context, ticket *Ticket) error
}
