package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradehub/internal/domain/conversation"
	"tradehub/internal/domain/shared/party"
	"tradehub/internal/domain/support"
	vo "tradehub/internal/domain/support/valueobjects"
	apperrors "tradehub/internal/shared/errors"
	"tradehub/internal/shared/logger"
)

func newTestTracker(convRepo *mockConversationRepository, msgRepo *mockMessageRepository, ticketRepo *mockTicketRepository) *ReadStateTracker {
	return NewReadStateTracker(convRepo, msgRepo, ticketRepo, logger.NewNopLogger())
}

func TestReadStateTracker_MarkConversationRead(t *testing.T) {
	conv, err := conversation.ReconstructConversation(10, 7, 3, baseTime, baseTime)
	require.NoError(t, err)

	convRepo := &mockConversationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*conversation.Conversation, error) {
			if id == conv.ID() {
				return conv, nil
			}
			return nil, conversation.ErrConversationNotFound
		},
	}

	unread := int64(2)
	var markedFor []party.Type
	msgRepo := &mockMessageRepository{
		MarkReadFunc: func(ctx context.Context, conversationID uint, viewer party.Type) (int64, error) {
			markedFor = append(markedFor, viewer)
			n := unread
			unread = 0
			return n, nil
		},
	}

	tracker := newTestTracker(convRepo, msgRepo, &mockTicketRepository{})
	user := party.Viewer{Type: party.TypeUser, ID: 7}

	t.Run("first open marks", func(t *testing.T) {
		result, err := tracker.MarkConversationRead(context.Background(), 10, user)
		require.NoError(t, err)
		assert.True(t, result.Found)
		assert.Equal(t, int64(2), result.Marked)
	})

	t.Run("second open is a no-op", func(t *testing.T) {
		result, err := tracker.MarkConversationRead(context.Background(), 10, user)
		require.NoError(t, err)
		assert.True(t, result.Found)
		assert.Zero(t, result.Marked)
	})

	t.Run("missing conversation is a no-op", func(t *testing.T) {
		result, err := tracker.MarkConversationRead(context.Background(), 99, user)
		require.NoError(t, err)
		assert.False(t, result.Found)
	})

	t.Run("outsider is forbidden", func(t *testing.T) {
		_, err := tracker.MarkConversationRead(context.Background(), 10, party.Viewer{Type: party.TypeCompany, ID: 4})
		assert.True(t, apperrors.IsForbiddenError(err))
	})

	t.Run("zero id is invalid", func(t *testing.T) {
		_, err := tracker.MarkConversationRead(context.Background(), 0, user)
		assert.True(t, apperrors.IsValidationError(err))
	})

	assert.Equal(t, []party.Type{party.TypeUser, party.TypeUser}, markedFor)
}

func TestReadStateTracker_MarkConversationRead_StorageFailure(t *testing.T) {
	conv, err := conversation.ReconstructConversation(10, 7, 3, baseTime, baseTime)
	require.NoError(t, err)

	convRepo := &mockConversationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*conversation.Conversation, error) {
			return conv, nil
		},
	}
	msgRepo := &mockMessageRepository{
		MarkReadFunc: func(ctx context.Context, conversationID uint, viewer party.Type) (int64, error) {
			return 0, errors.New("deadlock")
		},
	}

	_, err = newTestTracker(convRepo, msgRepo, &mockTicketRepository{}).
		MarkConversationRead(context.Background(), 10, party.Viewer{Type: party.TypeCompany, ID: 3})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.GetAppError(err).Type)
}

func TestReadStateTracker_MarkTicketRead(t *testing.T) {
	ticket, err := support.ReconstructTicket(12, party.TypeUser, 7, "Refund", vo.StatusAnswered, baseTime, baseTime, nil, nil)
	require.NoError(t, err)

	var boundaries []time.Time
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*support.Ticket, error) {
			if id == ticket.ID() {
				return ticket, nil
			}
			return nil, support.ErrTicketNotFound
		},
		MarkReadFunc: func(ctx context.Context, ticketID uint, at time.Time) error {
			assert.Equal(t, uint(12), ticketID)
			boundaries = append(boundaries, at)
			return nil
		},
	}
	tracker := newTestTracker(&mockConversationRepository{}, &mockMessageRepository{}, ticketRepo)

	t.Run("owner moves the boundary", func(t *testing.T) {
		result, err := tracker.MarkTicketRead(context.Background(), 12, party.Viewer{Type: party.TypeUser, ID: 7})
		require.NoError(t, err)
		assert.True(t, result.Found)
		require.Len(t, boundaries, 1)
		require.NotNil(t, ticket.LastReadAt())
		assert.Equal(t, boundaries[0], *ticket.LastReadAt())
	})

	t.Run("admin does not track read state", func(t *testing.T) {
		result, err := tracker.MarkTicketRead(context.Background(), 12, party.Viewer{Type: party.TypeAdmin})
		require.NoError(t, err)
		assert.True(t, result.Found)
		assert.Zero(t, result.Marked)
		assert.Len(t, boundaries, 1)
	})

	t.Run("other party is forbidden", func(t *testing.T) {
		_, err := tracker.MarkTicketRead(context.Background(), 12, party.Viewer{Type: party.TypeUser, ID: 8})
		assert.True(t, apperrors.IsForbiddenError(err))
	})

	t.Run("missing ticket is a no-op", func(t *testing.T) {
		result, err := tracker.MarkTicketRead(context.Background(), 404, party.Viewer{Type: party.TypeUser, ID: 7})
		require.NoError(t, err)
		assert.False(t, result.Found)
		assert.Len(t, boundaries, 1)
	})
}
