package usecases

import (
	"context"

	"tradehub/internal/application/support/dto"
	"tradehub/internal/domain/shared/party"
	"tradehub/internal/domain/support"
	vo "tradehub/internal/domain/support/valueobjects"
	"tradehub/internal/shared/constants"
	apperrors "tradehub/internal/shared/errors"
	"tradehub/internal/shared/logger"
)

type ListTicketsQuery struct {
	Actor     party.Viewer
	Status    string
	OwnerType string
	Page      int
	PageSize  int
}

// ListTicketsUseCase serves the admin support queue, most recently active
// tickets first.
type ListTicketsUseCase struct {
	ticketRepo support.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo support.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*dto.TicketListDTO, error) {
	if !query.Actor.Type.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only admins can list the support queue")
	}

	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize <= 0 {
		query.PageSize = constants.DefaultPageSize
	}
	if query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.MaxPageSize
	}

	filter := support.TicketFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error(), "status")
		}
		filter.Status = &status
	}
	if query.OwnerType != "" {
		ownerType, err := party.NewType(query.OwnerType)
		if err != nil || !ownerType.IsParticipant() {
			return nil, apperrors.NewValidationError("owner type must be user or company", "owner_type")
		}
		filter.OwnerType = &ownerType
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list support tickets", "error", err)
		return nil, apperrors.NewInternalError("failed to list support tickets").WithCause(err)
	}

	return &dto.TicketListDTO{
		Tickets:  dto.ToTicketDTOs(tickets),
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}
