package support

import (
	"context"

	"tradehub/internal/application/support/dto"
	"tradehub/internal/application/support/usecases"
)

type OpenTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.OpenTicketCommand) (*dto.SupportThreadDTO, error)
}

type SendSupportMessageExecutor interface {
	Execute(ctx context.Context, cmd usecases.SendSupportMessageCommand) (*usecases.SendSupportMessageResult, error)
}

type ThreadExecutor interface {
	Execute(ctx context.Context, query usecases.GetSupportThreadQuery) (*dto.SupportThreadDTO, error)
}

type CloseTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.CloseTicketCommand) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query usecases.ListTicketsQuery) (*dto.TicketListDTO, error)
}
