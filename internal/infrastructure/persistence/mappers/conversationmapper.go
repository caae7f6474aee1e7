package mappers

import (
	"fmt"

	"tradehub/internal/domain/conversation"
	"tradehub/internal/domain/shared/party"
	"tradehub/internal/infrastructure/persistence/models"
	"tradehub/internal/shared/biztime"
)

// ConversationMapper handles the conversion between conversation entities and persistence models.
type ConversationMapper interface {
	ToModel(c *conversation.Conversation) *models.ConversationModel
	ToDomain(model *models.ConversationModel) (*conversation.Conversation, error)
	MessageToModel(m *conversation.Message) *models.MessageModel
	MessageToDomain(model *models.MessageModel) (*conversation.Message, error)
}

type ConversationMapperImpl struct{}

func NewConversationMapper() ConversationMapper {
	return &ConversationMapperImpl{}
}

func (m *ConversationMapperImpl) ToModel(c *conversation.Conversation) *models.ConversationModel {
	return &models.ConversationModel{
		ID:        c.ID(),
		UserID:    c.UserID(),
		CompanyID: c.CompanyID(),
		CreatedAt: biztime.ToMillis(c.CreatedAt()),
		UpdatedAt: biztime.ToMillis(c.UpdatedAt()),
	}
}

func (m *ConversationMapperImpl) ToDomain(model *models.ConversationModel) (*conversation.Conversation, error) {
	c, err := conversation.ReconstructConversation(
		model.ID,
		model.UserID,
		model.CompanyID,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct conversation (id=%d): %w", model.ID, err)
	}
	return c, nil
}

func (m *ConversationMapperImpl) MessageToModel(msg *conversation.Message) *models.MessageModel {
	return &models.MessageModel{
		ID:             msg.ID(),
		ConversationID: msg.ConversationID(),
		SenderType:     msg.SenderType().String(),
		SenderID:       msg.SenderID(),
		Body:           msg.Body(),
		CreatedAt:      biztime.ToMillis(msg.CreatedAt()),
		ReadAt:         biztime.ToMillisPtr(msg.ReadAt()),
	}
}

func (m *ConversationMapperImpl) MessageToDomain(model *models.MessageModel) (*conversation.Message, error) {
	msg, err := conversation.ReconstructMessage(
		model.ID,
		model.ConversationID,
		party.Type(model.SenderType),
		model.SenderID,
		model.Body,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillisPtr(model.ReadAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct message (id=%d): %w", model.ID, err)
	}
	return msg, nil
}
