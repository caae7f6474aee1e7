package support

import (
	"fmt"
	"time"

	"tradehub/internal/domain/shared/party"
	"tradehub/internal/domain/shared/text"
	"tradehub/internal/shared/biztime"
)

// Message is one entry in a ticket's log. senderID is nil for admin
// system notices.
type Message struct {
	id         uint
	ticketID   uint
	senderType party.Type
	senderID   *uint
	body       string
	createdAt  time.Time
}

// NewMessage builds a message for ticketID, which may be zero while the
// ticket itself is still being created.
func NewMessage(ticketID uint, senderType party.Type, senderID *uint, body string) (*Message, error) {
	if !senderType.IsValid() {
		return nil, fmt.Errorf("invalid sender type: %s", senderType)
	}
	if !senderType.IsAdmin() && (senderID == nil || *senderID == 0) {
		return nil, fmt.Errorf("sender ID is required")
	}

	normalized, err := text.NormalizeBody(body)
	if err != nil {
		return nil, err
	}

	return &Message{
		ticketID:   ticketID,
		senderType: senderType,
		senderID:   senderID,
		body:       normalized,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructMessage(
	id uint,
	ticketID uint,
	senderType party.Type,
	senderID *uint,
	body string,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !senderType.IsValid() {
		return nil, fmt.Errorf("invalid sender type: %s", senderType)
	}

	return &Message{
		id:         id,
		ticketID:   ticketID,
		senderType: senderType,
		senderID:   senderID,
		body:       body,
		createdAt:  createdAt,
	}, nil
}

func (m *Message) ID() uint {
	return m.id
}

func (m *Message) TicketID() uint {
	return m.ticketID
}

func (m *Message) SenderType() party.Type {
	return m.senderType
}

func (m *Message) SenderID() *uint {
	return m.senderID
}

func (m *Message) Body() string {
	return m.body
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) IsFromAdmin() bool {
	return m.senderType.IsAdmin()
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

// SetTicketID binds a message built before its ticket was persisted.
func (m *Message) SetTicketID(ticketID uint) error {
	if m.ticketID != 0 && m.ticketID != ticketID {
		return fmt.Errorf("message already belongs to ticket %d", m.ticketID)
	}
	if ticketID == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	m.ticketID = ticketID
	return nil
}
