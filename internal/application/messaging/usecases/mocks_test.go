package usecases

import (
	"context"

	inboxdto "tradehub/internal/application/inbox/dto"
	"tradehub/internal/application/messaging/dto"
	"tradehub/internal/domain/conversation"
	"tradehub/internal/domain/shared/party"
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

type mockReadMarker struct {
	MarkConversationReadFunc func(ctx context.Context, conversationID uint, viewer party.Viewer) (*inboxdto.MarkReadResult, error)
}

func (m *mockReadMarker) MarkConversationRead(ctx context.Context, conversationID uint, viewer party.Viewer) (*inboxdto.MarkReadResult, error) {
	if m.MarkConversationReadFunc != nil {
		return m.MarkConversationReadFunc(ctx, conversationID, viewer)
	}
	return &inboxdto.MarkReadResult{}, nil
}

type mockGetThread struct {
	ExecuteFunc func(ctx context.Context, query GetThreadQuery) (*dto.ThreadDTO, error)
}

func (m *mockGetThread) Execute(ctx context.Context, query GetThreadQuery) (*dto.ThreadDTO, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, query)
	}
	return &dto.ThreadDTO{}, nil
}

// mockTxRunner runs fn directly and can fail the commit.
type mockTxRunner struct {
	calls int
	err   error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return m.err
}
