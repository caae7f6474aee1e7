package messaging

import (
	"context"

	"tradehub/internal/application/messaging/dto"
	"tradehub/internal/application/messaging/usecases"
)

type SendMessageExecutor interface {
	Execute(ctx context.Context, cmd usecases.SendMessageCommand) (*usecases.SendMessageResult, error)
}

type ThreadExecutor interface {
	Execute(ctx context.Context, query usecases.GetThreadQuery) (*dto.ThreadDTO, error)
}
