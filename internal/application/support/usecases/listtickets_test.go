package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradehub/internal/domain/shared/party"
	"tradehub/internal/domain/support"
	vo "tradehub/internal/domain/support/valueobjects"
	"tradehub/internal/shared/constants"
	apperrors "tradehub/internal/shared/errors"
	"tradehub/internal/shared/logger"
)

func TestListTicketsUseCase_Execute(t *testing.T) {
	var got support.TicketFilter
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter support.TicketFilter) ([]*support.Ticket, int64, error) {
			got = filter
			return []*support.Ticket{reconstructTicket(t, 12, 7, vo.StatusOpen)}, 41, nil
		},
	}
	uc := NewListTicketsUseCase(repo, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), ListTicketsQuery{
		Actor:     party.Viewer{Type: party.TypeAdmin, ID: 1},
		Status:    "open",
		OwnerType: "user",
		Page:      0,
		PageSize:  500,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(41), result.Total)
	assert.Equal(t, constants.DefaultPage, result.Page)
	assert.Equal(t, constants.MaxPageSize, result.PageSize)
	require.Len(t, result.Tickets, 1)
	require.NotNil(t, got.Status)
	assert.Equal(t, vo.StatusOpen, *got.Status)
	require.NotNil(t, got.OwnerType)
	assert.Equal(t, party.TypeUser, *got.OwnerType)
}

func TestListTicketsUseCase_Rejections(t *testing.T) {
	uc := NewListTicketsUseCase(&mockTicketRepository{}, logger.NewNopLogger())
	admin := party.Viewer{Type: party.TypeAdmin}

	_, err := uc.Execute(context.Background(), ListTicketsQuery{Actor: party.Viewer{Type: party.TypeUser, ID: 7}})
	assert.True(t, apperrors.IsForbiddenError(err))

	_, err = uc.Execute(context.Background(), ListTicketsQuery{Actor: admin, Status: "pending"})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), ListTicketsQuery{Actor: admin, OwnerType: "admin"})
	assert.True(t, apperrors.IsValidationError(err))

	result, err := uc.Execute(context.Background(), ListTicketsQuery{Actor: admin})
	require.NoError(t, err)
	assert.NotNil(t, result.Tickets)
	assert.Equal(t, constants.DefaultPageSize, result.PageSize)
}
