package mappers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradehub/internal/domain/shared/party"
	"tradehub/internal/domain/support"
	"tradehub/internal/infrastructure/persistence/models"
)

func TestSupportTicketMapper_OwnerDerivation(t *testing.T) {
	m := NewSupportTicketMapper()
	userID, companyID := uint(7), uint(3)

	tk, err := m.ToDomain(&models.SupportTicketModel{ID: 1, UserID: &userID, Subject: "s", Status: "open", CreatedAt: 1, UpdatedAt: 1})
	require.NoError(t, err)
	assert.Equal(t, party.TypeUser, tk.OwnerType())
	assert.Equal(t, uint(7), tk.OwnerID())

	tk, err = m.ToDomain(&models.SupportTicketModel{ID: 2, CompanyID: &companyID, Subject: "s", Status: "answered", CreatedAt: 1, UpdatedAt: 1})
	require.NoError(t, err)
	assert.Equal(t, party.TypeCompany, tk.OwnerType())

	_, err = m.ToDomain(&models.SupportTicketModel{ID: 3, UserID: &userID, CompanyID: &companyID, Subject: "s", Status: "open"})
	assert.Error(t, err)
	_, err = m.ToDomain(&models.SupportTicketModel{ID: 4, Subject: "s", Status: "open"})
	assert.Error(t, err)
	_, err = m.ToDomain(&models.SupportTicketModel{ID: 5, UserID: &userID, Subject: "s", Status: "pending"})
	assert.Error(t, err)
}

func TestSupportTicketMapper_ToModelKeepsSingleOwner(t *testing.T) {
	tk, err := support.NewTicket(party.TypeCompany, 3, "Invoice")
	require.NoError(t, err)

	model := NewSupportTicketMapper().ToModel(tk)
	assert.Nil(t, model.UserID)
	require.NotNil(t, model.CompanyID)
	assert.Equal(t, uint(3), *model.CompanyID)
	assert.Equal(t, "open", model.Status)
}
