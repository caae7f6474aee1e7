package usecases

import (
	"context"
	"errors"

	"tradehub/internal/application/messaging/dto"
	"tradehub/internal/domain/conversation"
	"tradehub/internal/domain/shared/party"
	"tradehub/internal/domain/shared/text"
	apperrors "tradehub/internal/shared/errors"
	"tradehub/internal/shared/logger"
)

type SendMessageCommand struct {
	UserID     uint
	CompanyID  uint
	SenderType party.Type
	SenderID   uint
	Text       string
}

type SendMessageResult struct {
	Conversation dto.ConversationDTO `json:"conversation"`
	Message      dto.MessageDTO      `json:"message"`
}

// TransactionRunner runs fn in a single database transaction.
// *db.TransactionManager satisfies it.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type SendMessageUseCase struct {
	conversationRepo conversation.ConversationRepository
	messageRepo      conversation.MessageRepository
	txMgr            TransactionRunner
	logger           logger.Interface
}

func NewSendMessageUseCase(
	conversationRepo conversation.ConversationRepository,
	messageRepo conversation.MessageRepository,
	txMgr TransactionRunner,
	logger logger.Interface,
) *SendMessageUseCase {
	return &SendMessageUseCase{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		txMgr:            txMgr,
		logger:           logger,
	}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, cmd SendMessageCommand) (*SendMessageResult, error) {
	body, err := uc.validateCommand(cmd)
	if err != nil {
		return nil, err
	}

	conv, err := uc.conversationRepo.FindOrCreate(ctx, cmd.UserID, cmd.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to find or create conversation",
			"user_id", cmd.UserID,
			"company_id", cmd.CompanyID,
			"error", err)
		return nil, apperrors.NewInternalError("failed to load conversation").WithCause(err)
	}

	msg, err := conv.NewMessage(cmd.SenderType, cmd.SenderID, body)
	if err != nil {
		switch {
		case errors.Is(err, text.ErrEmptyBody):
			return nil, apperrors.NewValidationError("message text cannot be empty", "text")
		case errors.Is(err, conversation.ErrSenderNotParticipant):
			return nil, apperrors.NewValidationError(err.Error(), "sender_id")
		}
		uc.logger.Errorw("failed to build message", "conversation_id", conv.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to build message").WithCause(err)
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.messageRepo.Append(txCtx, msg)
	})
	if err != nil {
		uc.logger.Errorw("failed to append message",
			"conversation_id", conv.ID(),
			"error", err)
		return nil, apperrors.NewInternalError("failed to send message").WithCause(err)
	}
	conv.Touch(msg.CreatedAt())

	uc.logger.Infow("message sent",
		"conversation_id", conv.ID(),
		"message_id", msg.ID(),
		"sender_type", cmd.SenderType)

	return &SendMessageResult{
		Conversation: dto.ToConversationDTO(conv),
		Message:      dto.ToMessageDTO(msg),
	}, nil
}

// validateCommand rejects malformed input before any store access and
// returns the normalized message body.
func (uc *SendMessageUseCase) validateCommand(cmd SendMessageCommand) (string, error) {
	if cmd.UserID == 0 {
		return "", apperrors.NewValidationError("user ID is required", "user_id")
	}
	if cmd.CompanyID == 0 {
		return "", apperrors.NewValidationError("company ID is required", "company_id")
	}
	if !cmd.SenderType.IsParticipant() {
		return "", apperrors.NewValidationError("sender must be a user or a company", "sender_type")
	}

	expected := cmd.UserID
	if cmd.SenderType == party.TypeCompany {
		expected = cmd.CompanyID
	}
	if cmd.SenderID != expected {
		return "", apperrors.NewValidationError(conversation.ErrSenderNotParticipant.Error(), "sender_id")
	}

	body, err := text.NormalizeBody(cmd.Text)
	if err != nil {
		return "", apperrors.NewValidationError("message text cannot be empty", "text")
	}
	return body, nil
}
