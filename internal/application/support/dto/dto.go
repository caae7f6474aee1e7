package dto

import (
	"time"

	"tradehub/internal/domain/support"
	"tradehub/internal/shared/biztime"
	"tradehub/internal/shared/services/markdown"
)

type TicketDTO struct {
	ID         uint       `json:"id"`
	OwnerType  string     `json:"owner_type"`
	OwnerID    uint       `json:"owner_id"`
	Subject    string     `json:"subject"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	LastReadAt *time.Time `json:"last_read_at,omitempty"`
	ClosedAt   *time.Time `json:"closed_at,omitempty"`
}

// SupportMessageDTO carries the stored plain body plus an HTML rendering for
// clients that display formatted replies.
type SupportMessageDTO struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticket_id"`
	SenderType string    `json:"sender_type"`
	SenderID   *uint     `json:"sender_id"`
	Body       string    `json:"body"`
	HTML       string    `json:"html,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type SupportThreadDTO struct {
	Ticket   TicketDTO           `json:"ticket"`
	Messages []SupportMessageDTO `json:"messages"`
}

type TicketListDTO struct {
	Tickets  []TicketDTO `json:"tickets"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

func ToTicketDTO(t *support.Ticket) TicketDTO {
	return TicketDTO{
		ID:         t.ID(),
		OwnerType:  t.OwnerType().String(),
		OwnerID:    t.OwnerID(),
		Subject:    t.Subject(),
		Status:     t.Status().String(),
		CreatedAt:  biztime.ToBizTimezone(t.CreatedAt()),
		UpdatedAt:  biztime.ToBizTimezone(t.UpdatedAt()),
		LastReadAt: biztime.ToBizTimezonePtr(t.LastReadAt()),
		ClosedAt:   biztime.ToBizTimezonePtr(t.ClosedAt()),
	}
}

func ToTicketDTOs(tickets []*support.Ticket) []TicketDTO {
	out := make([]TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ToTicketDTO(t))
	}
	return out
}

// ToSupportMessageDTO renders the body when r is non-nil.
func ToSupportMessageDTO(m *support.Message, r markdown.Renderer) SupportMessageDTO {
	out := SupportMessageDTO{
		ID:         m.ID(),
		TicketID:   m.TicketID(),
		SenderType: m.SenderType().String(),
		SenderID:   m.SenderID(),
		Body:       m.Body(),
		CreatedAt:  biztime.ToBizTimezone(m.CreatedAt()),
	}
	if r != nil {
		out.HTML = markdown.RenderOrEscape(r, m.Body())
	}
	return out
}

func ToSupportThreadDTO(t *support.Ticket, messages []*support.Message, r markdown.Renderer) *SupportThreadDTO {
	items := make([]SupportMessageDTO, 0, len(messages))
	for _, m := range messages {
		items = append(items, ToSupportMessageDTO(m, r))
	}
	return &SupportThreadDTO{
		Ticket:   ToTicketDTO(t),
		Messages: items,
	}
}
