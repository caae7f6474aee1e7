package usecases

import (
	"context"

	inboxdto "tradehub/internal/application/inbox/dto"
	"tradehub/internal/application/messaging/dto"
	"tradehub/internal/domain/shared/party"
)

type SendMessageExecutor interface {
	Execute(ctx context.Context, cmd SendMessageCommand) (*SendMessageResult, error)
}

type GetThreadExecutor interface {
	Execute(ctx context.Context, query GetThreadQuery) (*dto.ThreadDTO, error)
}

// ConversationReadMarker advances a viewer's read boundary on a conversation.
type ConversationReadMarker interface {
	MarkConversationRead(ctx context.Context, conversationID uint, viewer party.Viewer) (*inboxdto.MarkReadResult, error)
}
