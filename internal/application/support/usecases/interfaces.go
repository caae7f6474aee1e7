package usecases

import (
	"context"
	"errors"

	inboxdto "tradehub/internal/application/inbox/dto"
	"tradehub/internal/application/support/dto"
	"tradehub/internal/domain/shared/party"
	"tradehub/internal/domain/shared/text"
	"tradehub/internal/domain/support"
	apperrors "tradehub/internal/shared/errors"
)

type GetSupportThreadExecutor interface {
	Execute(ctx context.Context, query GetSupportThreadQuery) (*dto.SupportThreadDTO, error)
}

// TicketReadMarker advances the owner's read boundary on a ticket.
type TicketReadMarker interface {
	MarkTicketRead(ctx context.Context, ticketID uint, viewer party.Viewer) (*inboxdto.MarkReadResult, error)
}

// toAppError maps domain rejections to caller-facing errors. It returns nil
// for errors it does not recognise.
func toAppError(err error) error {
	switch {
	case errors.Is(err, support.ErrTicketNotFound):
		return apperrors.NewNotFoundError("support ticket not found")
	case errors.Is(err, support.ErrTicketClosed):
		return apperrors.NewTerminalStateError("support ticket is closed")
	case errors.Is(err, support.ErrNotTicketOwner):
		return apperrors.NewForbiddenError("you do not own this ticket")
	case errors.Is(err, support.ErrInvalidOwner):
		return apperrors.NewValidationError(err.Error(), "owner")
	case errors.Is(err, text.ErrEmptyBody):
		return apperrors.NewValidationError("message text cannot be empty", "text")
	}
	return nil
}

func senderIDOf(v party.Viewer) *uint {
	if v.ID == 0 {
		return nil
	}
	id := v.ID
	return &id
}
