package conversation

import (
	"fmt"
	"time"

	"tradehub/internal/domain/shared/party"
	"tradehub/internal/domain/shared/text"
	"tradehub/internal/shared/biztime"
)

type Message struct {
	id             uint
	conversationID uint
	senderType     party.Type
	senderID       uint
	body           string
	createdAt      time.Time
	readAt         *time.Time
}

func newMessage(conversationID uint, senderType party.Type, senderID uint, body string) (*Message, error) {
	normalized, err := text.NormalizeBody(body)
	if err != nil {
		return nil, err
	}

	return &Message{
		conversationID: conversationID,
		senderType:     senderType,
		senderID:       senderID,
		body:           normalized,
		createdAt:      biztime.NowUTC(),
	}, nil
}

func ReconstructMessage(
	id uint,
	conversationID uint,
	senderType party.Type,
	senderID uint,
	body string,
	createdAt time.Time,
	readAt *time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if conversationID == 0 {
		return nil, fmt.Errorf("conversation ID is required")
	}
	if !senderType.IsParticipant() {
		return nil, fmt.Errorf("invalid sender type: %s", senderType)
	}

	return &Message{
		id:             id,
		conversationID: conversationID,
		senderType:     senderType,
		senderID:       senderID,
		body:           body,
		createdAt:      createdAt,
		readAt:         readAt,
	}, nil
}

func (m *Message) ID() uint {
	return m.id
}

func (m *Message) ConversationID() uint {
	return m.conversationID
}

func (m *Message) SenderType() party.Type {
	return m.senderType
}

func (m *Message) SenderID() uint {
	return m.senderID
}

func (m *Message) Body() string {
	return m.body
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) ReadAt() *time.Time {
	return m.readAt
}

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}

// IsUnreadFor reports whether the message counts against viewer's unread
// total. Messages a party sent itself never do.
func (m *Message) IsUnreadFor(viewer party.Type) bool {
	return m.readAt == nil && m.senderType == viewer.Counterpart()
}
