package usecases

import (
	"context"

	"tradehub/internal/application/messaging/dto"
	"tradehub/internal/shared/logger"
)

// OpenThreadUseCase is what a client calls when it displays a thread: the
// read boundary moves first, so the next inbox poll already shows zero.
type OpenThreadUseCase struct {
	marker    ConversationReadMarker
	getThread GetThreadExecutor
	logger    logger.Interface
}

func NewOpenThreadUseCase(
	marker ConversationReadMarker,
	getThread GetThreadExecutor,
	logger logger.Interface,
) *OpenThreadUseCase {
	return &OpenThreadUseCase{
		marker:    marker,
		getThread: getThread,
		logger:    logger,
	}
}

func (uc *OpenThreadUseCase) Execute(ctx context.Context, query GetThreadQuery) (*dto.ThreadDTO, error) {
	result, err := uc.marker.MarkConversationRead(ctx, query.ConversationID, query.Viewer)
	if err != nil {
		return nil, err
	}
	if result.Marked > 0 {
		uc.logger.Debugw("thread opened",
			"conversation_id", query.ConversationID,
			"marked", result.Marked)
	}

	return uc.getThread.Execute(ctx, query)
}
