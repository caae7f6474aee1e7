package usecases

import (
	"context"
	"time"

	inboxdto "tradehub/internal/application/inbox/dto"
	"tradehub/internal/domain/shared/party"
	"tradehub/internal/domain/support"
)

type mockTicketRepository struct {
	CreateFunc        func(ctx context.Context, t *support.Ticket, first *support.Message) error
	GetByIDFunc       func(ctx context.Context, id uint) (*support.Ticket, error)
	ListForOwnerFunc  func(ctx context.Context, ownerType party.Type, ownerID uint) ([]*support.TicketSummary, error)
	ListFunc          func(ctx context.Context, filter support.TicketFilter) ([]*support.Ticket, int64, error)
	AppendMessageFunc func(ctx context.Context, t *support.Ticket, msg *support.Message) error
	ListMessagesFunc  func(ctx context.Context, ticketID uint) ([]*support.Message, error)
	MarkReadFunc      func(ctx context.Context, ticketID uint, at time.Time) error
	CloseFunc         func(ctx context.Context, t *support.Ticket) error
}

func (m *mockTicketRepository) Create(ctx context.Context, t *support.Ticket, first *support.Message) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t, first)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*support.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, support.ErrTicketNotFound
}

func (m *mockTicketRepository) ListForOwner(ctx context.Context, ownerType party.Type, ownerID uint) ([]*support.TicketSummary, error) {
	if m.ListForOwnerFunc != nil {
		return m.ListForOwnerFunc(ctx, ownerType, ownerID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter support.TicketFilter) ([]*support.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) AppendMessage(ctx context.Context, t *support.Ticket, msg *support.Message) error {
	if m.AppendMessageFunc != nil {
		return m.AppendMessageFunc(ctx, t, msg)
	}
	return nil
}

func (m *mockTicketRepository) ListMessages(ctx context.Context, ticketID uint) ([]*support.Message, error) {
	if m.ListMessagesFunc != nil {
		return m.ListMessagesFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) MarkRead(ctx context.Context, ticketID uint, at time.Time) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, ticketID, at)
	}
	return nil
}

func (m *mockTicketRepository) Close(ctx context.Context, t *support.Ticket) error {
	if m.CloseFunc != nil {
		return m.CloseFunc(ctx, t)
	}
	return nil
}

type mockTicketReadMarker struct {
	MarkTicketReadFunc func(ctx context.Context, ticketID uint, viewer party.Viewer) (*inboxdto.MarkReadResult, error)
}

func (m *mockTicketReadMarker) MarkTicketRead(ctx context.Context, ticketID uint, viewer party.Viewer) (*inboxdto.MarkReadResult, error) {
	if m.MarkTicketReadFunc != nil {
		return m.MarkTicketReadFunc(ctx, ticketID, viewer)
	}
	return &inboxdto.MarkReadResult{}, nil
}
