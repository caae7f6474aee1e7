package mappers

import (
	"fmt"

	"tradehub/internal/domain/shared/party"
	"tradehub/internal/domain/support"
	vo "tradehub/internal/domain/support/valueobjects"
	"tradehub/internal/infrastructure/persistence/models"
	"tradehub/internal/shared/biztime"
)

// SupportTicketMapper handles the conversion between support tickets and persistence models.
type SupportTicketMapper interface {
	ToModel(t *support.Ticket) *models.SupportTicketModel
	ToDomain(model *models.SupportTicketModel) (*support.Ticket, error)
	MessageToModel(m *support.Message) *models.SupportMessageModel
	MessageToDomain(model *models.SupportMessageModel) (*support.Message, error)
}

type SupportTicketMapperImpl struct{}

func NewSupportTicketMapper() SupportTicketMapper {
	return &SupportTicketMapperImpl{}
}

func (m *SupportTicketMapperImpl) ToModel(t *support.Ticket) *models.SupportTicketModel {
	return &models.SupportTicketModel{
		ID:         t.ID(),
		UserID:     t.UserID(),
		CompanyID:  t.CompanyID(),
		Subject:    t.Subject(),
		Status:     t.Status().String(),
		CreatedAt:  biztime.ToMillis(t.CreatedAt()),
		UpdatedAt:  biztime.ToMillis(t.UpdatedAt()),
		LastReadAt: biztime.ToMillisPtr(t.LastReadAt()),
		ClosedAt:   biztime.ToMillisPtr(t.ClosedAt()),
	}
}

// ToDomain derives the owner from whichever of user_id/company_id is set.
func (m *SupportTicketMapperImpl) ToDomain(model *models.SupportTicketModel) (*support.Ticket, error) {
	var (
		ownerType party.Type
		ownerID   uint
	)
	switch {
	case model.UserID != nil && model.CompanyID == nil:
		ownerType, ownerID = party.TypeUser, *model.UserID
	case model.CompanyID != nil && model.UserID == nil:
		ownerType, ownerID = party.TypeCompany, *model.CompanyID
	default:
		return nil, fmt.Errorf("support ticket %d must have exactly one owner", model.ID)
	}

	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct support ticket (id=%d): %w", model.ID, err)
	}

	t, err := support.ReconstructTicket(
		model.ID,
		ownerType,
		ownerID,
		model.Subject,
		status,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
		biztime.FromMillisPtr(model.LastReadAt),
		biztime.FromMillisPtr(model.ClosedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct support ticket (id=%d): %w", model.ID, err)
	}
	return t, nil
}

func (m *SupportTicketMapperImpl) MessageToModel(msg *support.Message) *models.SupportMessageModel {
	return &models.SupportMessageModel{
		ID:         msg.ID(),
		TicketID:   msg.TicketID(),
		SenderType: msg.SenderType().String(),
		SenderID:   msg.SenderID(),
		Body:       msg.Body(),
		CreatedAt:  biztime.ToMillis(msg.CreatedAt()),
	}
}

func (m *SupportTicketMapperImpl) MessageToDomain(model *models.SupportMessageModel) (*support.Message, error) {
	msg, err := support.ReconstructMessage(
		model.ID,
		model.TicketID,
		party.Type(model.SenderType),
		model.SenderID,
		model.Body,
		biztime.FromMillis(model.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct support message (id=%d): %w", model.ID, err)
	}
	return msg, nil
}
