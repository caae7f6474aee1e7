package usecases

import (
	"context"
	"time"

	"tradehub/internal/domain/conversation"
	"tradehub/internal/domain/identity"
	"tradehub/internal/domain/shared/party"
	"tradehub/internal/domain/support"
)

type mockConversationRepository struct {
	FindOrCreateFunc   func(ctx context.Context, userID, companyID uint) (*conversation.Conversation, error)
	GetByIDFunc        func(ctx context.Context, id uint) (*conversation.Conversation, error)
	ListForUserFunc    func(ctx context.Context, userID uint) ([]*conversation.Summary, error)
	ListForCompanyFunc func(ctx context.Context, companyID uint) ([]*conversation.Summary, error)
}

func (m *mockConversationRepository) FindOrCreate(ctx context.Context, userID, companyID uint) (*conversation.Conversation, error) {
	if m.FindOrCreateFunc != nil {
		return m.FindOrCreateFunc(ctx, userID, companyID)
	}
	return nil, nil
}

func (m *mockConversationRepository) GetByID(ctx context.Context, id uint) (*conversation.Conversation, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, conversation.ErrConversationNotFound
}

func (m *mockConversationRepository) ListForUser(ctx context.Context, userID uint) ([]*conversation.Summary, error) {
	if m.ListForUserFunc != nil {
		return m.ListForUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockConversationRepository) ListForCompany(ctx context.Context, companyID uint) ([]*conversation.Summary, error) {
	if m.ListForCompanyFunc != nil {
		return m.ListForCompanyFunc(ctx, companyID)
	}
	return nil, nil
}

type mockMessageRepository struct {
	AppendFunc             func(ctx context.Context, msg *conversation.Message) error
	ListByConversationFunc func(ctx context.Context, conversationID uint) ([]*conversation.Message, error)
	MarkReadFunc           func(ctx context.Context, conversationID uint, viewer party.Type) (int64, error)
}

func (m *mockMessageRepository) Append(ctx context.Context, msg *conversation.Message) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepository) ListByConversation(ctx context.Context, conversationID uint) ([]*conversation.Message, error) {
	if m.ListByConversationFunc != nil {
		return m.ListByConversationFunc(ctx, conversationID)
	}
	return nil, nil
}

func (m *mockMessageRepository) MarkRead(ctx context.Context, conversationID uint, viewer party.Type) (int64, error) {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, conversationID, viewer)
	}
	return 0, nil
}

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

type mockResolver struct {
	ResolveFunc func(ctx context.Context, partyType party.Type, id uint) (*identity.Identity, error)
}

func (m *mockResolver) Resolve(ctx context.Context, partyType party.Type, id uint) (*identity.Identity, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, partyType, id)
	}
	return nil, nil
}
