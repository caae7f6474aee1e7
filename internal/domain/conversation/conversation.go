// Package conversation models direct user↔company threads and their messages.
package conversation

import (
	"fmt"
	"time"

	"tradehub/internal/domain/shared/party"
	"tradehub/internal/shared/biztime"
)

// Conversation is the persistent identity of the thread between one user and
// one company. At most one exists per (userID, companyID) pair.
type Conversation struct {
	id        uint
	userID    uint
	companyID uint
	createdAt time.Time
	updatedAt time.Time
}

func NewConversation(userID, companyID uint) (*Conversation, error) {
	if userID == 0 || companyID == 0 {
		return nil, ErrInvalidParties
	}

	now := biztime.NowUTC()
	return &Conversation{
		userID:    userID,
		companyID: companyID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructConversation(id, userID, companyID uint, createdAt, updatedAt time.Time) (*Conversation, error) {
	if id == 0 {
		return nil, fmt.Errorf("conversation ID cannot be zero")
	}
	if userID == 0 || companyID == 0 {
		return nil, ErrInvalidParties
	}

	return &Conversation{
		id:        id,
		userID:    userID,
		companyID: companyID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Conversation) ID() uint {
	return c.id
}

func (c *Conversation) UserID() uint {
	return c.userID
}

func (c *Conversation) CompanyID() uint {
	return c.companyID
}

func (c *Conversation) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Conversation) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Conversation) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("conversation ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("conversation ID cannot be zero")
	}
	c.id = id
	return nil
}

// PartyID returns the id bound to the given side, or 0 for non-participants.
func (c *Conversation) PartyID(t party.Type) uint {
	switch t {
	case party.TypeUser:
		return c.userID
	case party.TypeCompany:
		return c.companyID
	default:
		return 0
	}
}

// HasParticipant reports whether the viewer is one of the two bound parties.
func (c *Conversation) HasParticipant(v party.Viewer) bool {
	return v.Type.IsParticipant() && c.PartyID(v.Type) == v.ID
}

// CounterpartOf returns the side and id opposite to viewerType.
func (c *Conversation) CounterpartOf(viewerType party.Type) (party.Type, uint) {
	other := viewerType.Counterpart()
	return other, c.PartyID(other)
}

// NewMessage builds an unread message from the given sender. The sender tag
// must match one of the two bound parties.
func (c *Conversation) NewMessage(senderType party.Type, senderID uint, body string) (*Message, error) {
	if c.id == 0 {
		return nil, fmt.Errorf("conversation must be persisted before adding messages")
	}
	if !senderType.IsParticipant() || c.PartyID(senderType) != senderID {
		return nil, ErrSenderNotParticipant
	}
	return newMessage(c.id, senderType, senderID, body)
}

// Touch records activity on the conversation.
func (c *Conversation) Touch(at time.Time) {
	if at.After(c.updatedAt) {
		c.updatedAt = at
	}
}
