package dto

import (
	"time"

	"tradehub/internal/domain/conversation"
	"tradehub/internal/shared/biztime"
)

type ConversationDTO struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	CompanyID uint      `json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MessageDTO struct {
	ID             uint       `json:"id"`
	ConversationID uint       `json:"conversation_id"`
	SenderType     string     `json:"sender_type"`
	SenderID       uint       `json:"sender_id"`
	Body           string     `json:"body"`
	CreatedAt      time.Time  `json:"created_at"`
	ReadAt         *time.Time `json:"read_at"`
}

// ThreadDTO is one conversation with its messages in display order.
type ThreadDTO struct {
	Conversation ConversationDTO `json:"conversation"`
	Messages     []MessageDTO    `json:"messages"`
}

func ToConversationDTO(c *conversation.Conversation) ConversationDTO {
	return ConversationDTO{
		ID:        c.ID(),
		UserID:    c.UserID(),
		CompanyID: c.CompanyID(),
		CreatedAt: biztime.ToBizTimezone(c.CreatedAt()),
		UpdatedAt: biztime.ToBizTimezone(c.UpdatedAt()),
	}
}

func ToMessageDTO(m *conversation.Message) MessageDTO {
	return MessageDTO{
		ID:             m.ID(),
		ConversationID: m.ConversationID(),
		SenderType:     m.SenderType().String(),
		SenderID:       m.SenderID(),
		Body:           m.Body(),
		CreatedAt:      biztime.ToBizTimezone(m.CreatedAt()),
		ReadAt:         biztime.ToBizTimezonePtr(m.ReadAt()),
	}
}

func ToThreadDTO(c *conversation.Conversation, messages []*conversation.Message) *ThreadDTO {
	items := make([]MessageDTO, 0, len(messages))
	for _, m := range messages {
		items = append(items, ToMessageDTO(m))
	}
	return &ThreadDTO{
		Conversation: ToConversationDTO(c),
		Messages:     items,
	}
}
