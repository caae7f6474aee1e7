package usecases

import (
	"context"
	"strings"

	"tradehub/internal/application/support/dto"
	"tradehub/internal/domain/shared/party"
	"tradehub/internal/domain/shared/text"
	"tradehub/internal/domain/support"
	apperrors "tradehub/internal/shared/errors"
	"tradehub/internal/shared/logger"
	"tradehub/internal/shared/services/markdown"
)

type OpenTicketCommand struct {
	Owner   party.Viewer
	Subject string
	Text    string
}

// OpenTicketUseCase creates a ticket together with its first message.
type OpenTicketUseCase struct {
	ticketRepo support.TicketRepository
	renderer   markdown.Renderer
	logger     logger.Interface
}

func NewOpenTicketUseCase(
	ticketRepo support.TicketRepository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *OpenTicketUseCase {
	return &OpenTicketUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *OpenTicketUseCase) Execute(ctx context.Context, cmd OpenTicketCommand) (*dto.SupportThreadDTO, error) {
	if !cmd.Owner.Type.IsParticipant() || cmd.Owner.ID == 0 {
		return nil, apperrors.NewForbiddenError("only users and companies can open support tickets")
	}
	if strings.TrimSpace(cmd.Subject) == "" {
		return nil, apperrors.NewValidationError("subject is required", "subject")
	}
	body, err := text.NormalizeBody(cmd.Text)
	if err != nil {
		return nil, apperrors.NewValidationError("message text cannot be empty", "text")
	}

	ticket, err := support.NewTicket(cmd.Owner.Type, cmd.Owner.ID, cmd.Subject)
	if err != nil {
		if appErr := toAppError(err); appErr != nil {
			return nil, appErr
		}
		return nil, apperrors.NewValidationError(err.Error(), "subject")
	}

	first, err := support.NewMessage(0, cmd.Owner.Type, senderIDOf(cmd.Owner), body)
	if err != nil {
		if appErr := toAppError(err); appErr != nil {
			return nil, appErr
		}
		return nil, apperrors.NewValidationError(err.Error(), "text")
	}

	if err := uc.ticketRepo.Create(ctx, ticket, first); err != nil {
		uc.logger.Errorw("failed to create support ticket",
			"owner_type", cmd.Owner.Type,
			"owner_id", cmd.Owner.ID,
			"error", err)
		return nil, apperrors.NewInternalError("failed to create support ticket").WithCause(err)
	}

	uc.logger.Infow("support ticket opened",
		"ticket_id", ticket.ID(),
		"owner_type", cmd.Owner.Type,
		"owner_id", cmd.Owner.ID)

	return dto.ToSupportThreadDTO(ticket, []*support.Message{first}, uc.renderer), nil
}
