package usecases

import (
	"context"
	"errors"

	"tradehub/internal/application/messaging/dto"
	"tradehub/internal/domain/conversation"
	"tradehub/internal/domain/shared/party"
	apperrors "tradehub/internal/shared/errors"
	"tradehub/internal/shared/logger"
)

type GetThreadQuery struct {
	ConversationID uint
	Viewer         party.Viewer
}

type GetThreadUseCase struct {
	conversationRepo conversation.ConversationRepository
	messageRepo      conversation.MessageRepository
	logger           logger.Interface
}

func NewGetThreadUseCase(
	conversationRepo conversation.ConversationRepository,
	messageRepo conversation.MessageRepository,
	logger logger.Interface,
) *GetThreadUseCase {
	return &GetThreadUseCase{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		logger:           logger,
	}
}

// Execute lists the conversation's messages. A missing conversation is a
// NotFound error here, unlike mark-read.
func (uc *GetThreadUseCase) Execute(ctx context.Context, query GetThreadQuery) (*dto.ThreadDTO, error) {
	if query.ConversationID == 0 {
		return nil, apperrors.NewValidationError("conversation ID is required", "conversation_id")
	}

	conv, err := uc.conversationRepo.GetByID(ctx, query.ConversationID)
	if err != nil {
		if errors.Is(err, conversation.ErrConversationNotFound) {
			return nil, apperrors.NewNotFoundError("conversation not found")
		}
		uc.logger.Errorw("failed to get conversation", "conversation_id", query.ConversationID, "error", err)
		return nil, apperrors.NewInternalError("failed to get conversation").WithCause(err)
	}

	if !conv.HasParticipant(query.Viewer) {
		uc.logger.Warnw("viewer is not a participant",
			"conversation_id", conv.ID(),
			"party_type", query.Viewer.Type,
			"party_id", query.Viewer.ID)
		return nil, apperrors.NewForbiddenError("you are not a participant of this conversation")
	}

	messages, err := uc.messageRepo.ListByConversation(ctx, conv.ID())
	if err != nil {
		uc.logger.Errorw("failed to list messages", "conversation_id", conv.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to list messages").WithCause(err)
	}

	return dto.ToThreadDTO(conv, messages), nil
}
