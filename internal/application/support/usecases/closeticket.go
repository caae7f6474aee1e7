package usecases

import (
	"context"

	"tradehub/internal/application/support/dto"
	"tradehub/internal/domain/shared/party"
	"tradehub/internal/domain/support"
	apperrors "tradehub/internal/shared/errors"
	"tradehub/internal/shared/logger"
)

type CloseTicketCommand struct {
	TicketID uint
	Actor    party.Viewer
}

// CloseTicketUseCase is the moderation action that ends a ticket. Only
// admins reach it; there is no owner-facing close.
type CloseTicketUseCase struct {
	ticketRepo support.TicketRepository
	logger     logger.Interface
}

func NewCloseTicketUseCase(ticketRepo support.TicketRepository, logger logger.Interface) *CloseTicketUseCase {
	return &CloseTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) (*dto.TicketDTO, error) {
	if !cmd.Actor.Type.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only admins can close support tickets")
	}
	if cmd.TicketID == 0 {
		return nil, apperrors.NewValidationError("ticket ID is required", "ticket_id")
	}

	ticket, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if appErr := toAppError(err); appErr != nil {
			return nil, appErr
		}
		uc.logger.Errorw("failed to get support ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, apperrors.NewInternalError("failed to get support ticket").WithCause(err)
	}

	if err := ticket.Close(); err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}

	if err := uc.ticketRepo.Close(ctx, ticket); err != nil {
		uc.logger.Errorw("failed to close support ticket", "ticket_id", ticket.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to close support ticket").WithCause(err)
	}

	uc.logger.Infow("support ticket closed", "ticket_id", ticket.ID(), "admin_id", cmd.Actor.ID)

	result := dto.ToTicketDTO(ticket)
	return &result, nil
}
