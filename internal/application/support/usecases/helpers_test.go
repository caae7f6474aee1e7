package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tradehub/internal/domain/shared/party"
	"tradehub/internal/domain/support"
	vo "tradehub/internal/domain/support/valueobjects"
)

var baseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func uintPtr(v uint) *uint { return &v }

func reconstructTicket(t *testing.T, id, ownerID uint, status vo.TicketStatus) *support.Ticket {
	t.Helper()
	tk, err := support.ReconstructTicket(id, party.TypeUser, ownerID, "Refund", status, baseTime, baseTime, nil, nil)
	require.NoError(t, err)
	return tk
}

// repoWith returns a repository serving tk by id.
func repoWith(tk *support.Ticket) *mockTicketRepository {
	return &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*support.Ticket, error) {
			if id == tk.ID() {
				return tk, nil
			}
			return nil, support.ErrTicketNotFound
		},
	}
}
