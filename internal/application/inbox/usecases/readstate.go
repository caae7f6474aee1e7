package usecases

import (
	"context"
	"errors"

	"tradehub/internal/application/inbox/dto"
	"tradehub/internal/domain/conversation"
	"tradehub/internal/domain/shared/party"
	"tradehub/internal/domain/support"
	"tradehub/internal/shared/biztime"
	apperrors "tradehub/internal/shared/errors"
	"tradehub/internal/shared/logger"
)

// ReadStateTracker moves read boundaries when a viewer opens a thread.
// Every call is safe to repeat.
type ReadStateTracker struct {
	conversationRepo conversation.ConversationRepository
	messageRepo      conversation.MessageRepository
	ticketRepo       support.TicketRepository
	logger           logger.Interface
}

func NewReadStateTracker(
	conversationRepo conversation.ConversationRepository,
	messageRepo conversation.MessageRepository,
	ticketRepo support.TicketRepository,
	logger logger.Interface,
) *ReadStateTracker {
	return &ReadStateTracker{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		ticketRepo:       ticketRepo,
		logger:           logger,
	}
}

// MarkConversationRead stamps every unread message from the viewer's
// counterpart. A missing conversation is a no-op.
func (t *ReadStateTracker) MarkConversationRead(ctx context.Context, conversationID uint, viewer party.Viewer) (*dto.MarkReadResult, error) {
	if conversationID == 0 {
		return nil, apperrors.NewValidationError("conversation ID is required", "conversation_id")
	}

	conv, err := t.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, conversation.ErrConversationNotFound) {
			return &dto.MarkReadResult{}, nil
		}
		t.logger.Errorw("failed to get conversation", "conversation_id", conversationID, "error", err)
		return nil, apperrors.NewInternalError("failed to mark conversation read").WithCause(err)
	}

	if !conv.HasParticipant(viewer) {
		return nil, apperrors.NewForbiddenError("you are not a participant of this conversation")
	}

	marked, err := t.messageRepo.MarkRead(ctx, conv.ID(), viewer.Type)
	if err != nil {
		t.logger.Errorw("failed to mark messages read",
			"conversation_id", conv.ID(),
			"party_type", viewer.Type,
			"error", err)
		return nil, apperrors.NewInternalError("failed to mark conversation read").WithCause(err)
	}

	return &dto.MarkReadResult{Found: true, Marked: marked}, nil
}

// MarkTicketRead moves the owner's read boundary to now. Admins share no
// read state, so an admin call changes nothing.
func (t *ReadStateTracker) MarkTicketRead(ctx context.Context, ticketID uint, viewer party.Viewer) (*dto.MarkReadResult, error) {
	if ticketID == 0 {
		return nil, apperrors.NewValidationError("ticket ID is required", "ticket_id")
	}

	ticket, err := t.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, support.ErrTicketNotFound) {
			return &dto.MarkReadResult{}, nil
		}
		t.logger.Errorw("failed to get ticket", "ticket_id", ticketID, "error", err)
		return nil, apperrors.NewInternalError("failed to mark ticket read").WithCause(err)
	}

	if viewer.Type.IsAdmin() {
		return &dto.MarkReadResult{Found: true}, nil
	}
	if !ticket.IsOwnedBy(viewer) {
		return nil, apperrors.NewForbiddenError("you do not own this ticket")
	}

	now := biztime.NowUTC()
	if err := t.ticketRepo.MarkRead(ctx, ticket.ID(), now); err != nil {
		t.logger.Errorw("failed to mark ticket read", "ticket_id", ticket.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to mark ticket read").WithCause(err)
	}
	ticket.MarkRead(now)

	return &dto.MarkReadResult{Found: true, Marked: 1}, nil
}
