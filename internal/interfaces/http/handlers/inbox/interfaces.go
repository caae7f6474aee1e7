package inbox

import (
	"context"

	"tradehub/internal/application/inbox/dto"
	"tradehub/internal/application/inbox/usecases"
	"tradehub/internal/domain/shared/party"
)

type ListInboxExecutor interface {
	Execute(ctx context.Context, query usecases.ListInboxQuery) ([]dto.EntryDTO, error)
}

// ReadMarker is satisfied by *usecases.ReadStateTracker.
type ReadMarker interface {
	MarkConversationRead(ctx context.Context, conversationID uint, viewer party.Viewer) (*dto.MarkReadResult, error)
	MarkTicketRead(ctx context.Context, ticketID uint, viewer party.Viewer) (*dto.MarkReadResult, error)
}
