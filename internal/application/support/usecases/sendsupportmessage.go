package usecases

import (
	"context"

	"tradehub/internal/application/support/dto"
	"tradehub/internal/domain/shared/party"
	"tradehub/internal/domain/shared/text"
	"tradehub/internal/domain/support"
	apperrors "tradehub/internal/shared/errors"
	"tradehub/internal/shared/logger"
	"tradehub/internal/shared/services/markdown"
)

type SendSupportMessageCommand struct {
	TicketID   uint
	SenderType party.Type
	// SenderID is nil for admin-originated notices.
	SenderID *uint
	Text     string
}

type SendSupportMessageResult struct {
	Ticket  dto.TicketDTO         `json:"ticket"`
	Message dto.SupportMessageDTO `json:"message"`
}

type SendSupportMessageUseCase struct {
	ticketRepo support.TicketRepository
	renderer   markdown.Renderer
	logger     logger.Interface
}

func NewSendSupportMessageUseCase(
	ticketRepo support.TicketRepository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *SendSupportMessageUseCase {
	return &SendSupportMessageUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

// Execute appends a message and moves the ticket to answered (admin) or
// open (owner). Closed tickets reject the message with a terminal state
// error and keep their status.
func (uc *SendSupportMessageUseCase) Execute(ctx context.Context, cmd SendSupportMessageCommand) (*SendSupportMessageResult, error) {
	if cmd.TicketID == 0 {
		return nil, apperrors.NewValidationError("ticket ID is required", "ticket_id")
	}
	if !cmd.SenderType.IsValid() {
		return nil, apperrors.NewValidationError("invalid sender type", "sender_type")
	}
	if !cmd.SenderType.IsAdmin() && (cmd.SenderID == nil || *cmd.SenderID == 0) {
		return nil, apperrors.NewValidationError("sender ID is required", "sender_id")
	}
	body, err := text.NormalizeBody(cmd.Text)
	if err != nil {
		return nil, apperrors.NewValidationError("message text cannot be empty", "text")
	}

	ticket, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if appErr := toAppError(err); appErr != nil {
			return nil, appErr
		}
		uc.logger.Errorw("failed to get support ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, apperrors.NewInternalError("failed to get support ticket").WithCause(err)
	}

	msg, err := ticket.AddMessage(cmd.SenderType, cmd.SenderID, body)
	if err != nil {
		if appErr := toAppError(err); appErr != nil {
			uc.logger.Warnw("support message rejected",
				"ticket_id", cmd.TicketID,
				"sender_type", cmd.SenderType,
				"error", err)
			return nil, appErr
		}
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.AppendMessage(ctx, ticket, msg); err != nil {
		if appErr := toAppError(err); appErr != nil {
			uc.logger.Warnw("support message rejected by store",
				"ticket_id", cmd.TicketID,
				"error", err)
			return nil, appErr
		}
		uc.logger.Errorw("failed to append support message", "ticket_id", cmd.TicketID, "error", err)
		return nil, apperrors.NewInternalError("failed to send support message").WithCause(err)
	}

	uc.logger.Infow("support message sent",
		"ticket_id", ticket.ID(),
		"message_id", msg.ID(),
		"sender_type", cmd.SenderType,
		"status", ticket.Status())

	return &SendSupportMessageResult{
		Ticket:  dto.ToTicketDTO(ticket),
		Message: dto.ToSupportMessageDTO(msg, uc.renderer),
	}, nil
}
