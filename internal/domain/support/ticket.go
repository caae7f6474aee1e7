// Package support models single-owner support tickets answered by admins.
package support

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"tradehub/internal/domain/shared/party"
	vo "tradehub/internal/domain/support/valueobjects"
	"tradehub/internal/shared/biztime"
)

const maxSubjectLength = 200

type Ticket struct {
	id         uint
	ownerType  party.Type
	ownerID    uint
	subject    string
	status     vo.TicketStatus
	createdAt  time.Time
	updatedAt  time.Time
	lastReadAt *time.Time
	closedAt   *time.Time
}

func NewTicket(ownerType party.Type, ownerID uint, subject string) (*Ticket, error) {
	if !ownerType.IsParticipant() || ownerID == 0 {
		return nil, ErrInvalidOwner
	}
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, fmt.Errorf("subject is required")
	}
	if utf8.RuneCountInString(subject) > maxSubjectLength {
		return nil, fmt.Errorf("subject exceeds maximum length of %d characters", maxSubjectLength)
	}

	now := biztime.NowUTC()
	return &Ticket{
		ownerType: ownerType,
		ownerID:   ownerID,
		subject:   subject,
		status:    vo.StatusOpen,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTicket(
	id uint,
	ownerType party.Type,
	ownerID uint,
	subject string,
	status vo.TicketStatus,
	createdAt, updatedAt time.Time,
	lastReadAt *time.Time,
	closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !ownerType.IsParticipant() || ownerID == 0 {
		return nil, ErrInvalidOwner
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:         id,
		ownerType:  ownerType,
		ownerID:    ownerID,
		subject:    subject,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		lastReadAt: lastReadAt,
		closedAt:   closedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) OwnerType() party.Type {
	return t.ownerType
}

func (t *Ticket) OwnerID() uint {
	return t.ownerID
}

// UserID returns the owning user id, or nil for company-owned tickets.
func (t *Ticket) UserID() *uint {
	if t.ownerType != party.TypeUser {
		return nil
	}
	id := t.ownerID
	return &id
}

// CompanyID returns the owning company id, or nil for user-owned tickets.
func (t *Ticket) CompanyID() *uint {
	if t.ownerType != party.TypeCompany {
		return nil
	}
	id := t.ownerID
	return &id
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) LastReadAt() *time.Time {
	return t.lastReadAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) IsOwnedBy(v party.Viewer) bool {
	return v.Type == t.ownerType && v.ID == t.ownerID
}

// CanBeViewedBy is true for the owner and for any admin.
func (t *Ticket) CanBeViewedBy(v party.Viewer) bool {
	return v.Type.IsAdmin() || t.IsOwnedBy(v)
}

// RecordMessage applies the status change caused by a message from role:
// admin replies mark the ticket answered, anything else reopens it.
func (t *Ticket) RecordMessage(role party.Type) error {
	if t.status.IsClosed() {
		return ErrTicketClosed
	}

	next := vo.StatusOpen
	if role.IsAdmin() {
		next = vo.StatusAnswered
	}
	t.status = next
	t.updatedAt = biztime.NowUTC()
	return nil
}

// AddMessage validates the sender, builds the message and applies the
// resulting status change. Admin messages may carry a nil senderID.
func (t *Ticket) AddMessage(senderType party.Type, senderID *uint, body string) (*Message, error) {
	if t.id == 0 {
		return nil, fmt.Errorf("ticket must be persisted before adding messages")
	}
	if t.status.IsClosed() {
		return nil, ErrTicketClosed
	}
	if !senderType.IsAdmin() {
		if senderID == nil || !t.IsOwnedBy(party.Viewer{Type: senderType, ID: *senderID}) {
			return nil, ErrNotTicketOwner
		}
	}

	msg, err := NewMessage(t.id, senderType, senderID, body)
	if err != nil {
		return nil, err
	}
	if err := t.RecordMessage(senderType); err != nil {
		return nil, err
	}
	return msg, nil
}

// Close is the moderation transition into the terminal state. Closing an
// already closed ticket is a no-op.
func (t *Ticket) Close() error {
	if t.status.IsClosed() {
		return nil
	}
	if !t.status.CanTransitionTo(vo.StatusClosed) {
		return fmt.Errorf("cannot close ticket with status %s", t.status)
	}

	now := biztime.NowUTC()
	t.status = vo.StatusClosed
	t.closedAt = &now
	t.updatedAt = now
	return nil
}

func (t *Ticket) MarkRead(at time.Time) {
	t.lastReadAt = &at
}
