package usecases

import (
	"context"

	"tradehub/internal/application/support/dto"
	"tradehub/internal/domain/shared/party"
	"tradehub/internal/domain/support"
	apperrors "tradehub/internal/shared/errors"
	"tradehub/internal/shared/logger"
	"tradehub/internal/shared/services/markdown"
)

type GetSupportThreadQuery struct {
	TicketID uint
	Viewer   party.Viewer
}

type GetSupportThreadUseCase struct {
	ticketRepo support.TicketRepository
	renderer   markdown.Renderer
	logger     logger.Interface
}

func NewGetSupportThreadUseCase(
	ticketRepo support.TicketRepository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *GetSupportThreadUseCase {
	return &GetSupportThreadUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *GetSupportThreadUseCase) Execute(ctx context.Context, query GetSupportThreadQuery) (*dto.SupportThreadDTO, error) {
	if query.TicketID == 0 {
		return nil, apperrors.NewValidationError("ticket ID is required", "ticket_id")
	}

	ticket, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		if appErr := toAppError(err); appErr != nil {
			return nil, appErr
		}
		uc.logger.Errorw("failed to get support ticket", "ticket_id", query.TicketID, "error", err)
		return nil, apperrors.NewInternalError("failed to get support ticket").WithCause(err)
	}

	if !ticket.CanBeViewedBy(query.Viewer) {
		return nil, apperrors.NewForbiddenError("you do not own this ticket")
	}

	messages, err := uc.ticketRepo.ListMessages(ctx, ticket.ID())
	if err != nil {
		uc.logger.Errorw("failed to list support messages", "ticket_id", ticket.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to list support messages").WithCause(err)
	}

	return dto.ToSupportThreadDTO(ticket, messages, uc.renderer), nil
}

// OpenSupportThreadUseCase marks the ticket read for its owner before
// returning the thread.
type OpenSupportThreadUseCase struct {
	marker    TicketReadMarker
	getThread GetSupportThreadExecutor
}

func NewOpenSupportThreadUseCase(marker TicketReadMarker, getThread GetSupportThreadExecutor) *OpenSupportThreadUseCase {
	return &OpenSupportThreadUseCase{
		marker:    marker,
		getThread: getThread,
	}
}

func (uc *OpenSupportThreadUseCase) Execute(ctx context.Context, query GetSupportThreadQuery) (*dto.SupportThreadDTO, error) {
	if _, err := uc.marker.MarkTicketRead(ctx, query.TicketID, query.Viewer); err != nil {
		return nil, err
	}
	return uc.getThread.Execute(ctx, query)
}
