package dto

import (
	"fmt"
	"time"

	"tradehub/internal/domain/inbox"
	"tradehub/internal/shared/biztime"
)

// EntryDTO is one row of the unified inbox. Type tells the client which
// thread API to call when the entry is opened.
type EntryDTO struct {
	Type         string          `json:"type"`
	ID           uint            `json:"id"`
	Preview      string          `json:"preview"`
	LastActivity time.Time       `json:"last_activity"`
	UnreadCount  int64           `json:"unread_count"`
	Counterparty CounterpartyDTO `json:"counterparty"`
	Subject      string          `json:"subject,omitempty"`
	Status       string          `json:"status,omitempty"`
}

type CounterpartyDTO struct {
	Type        string `json:"type"`
	ID          uint   `json:"id,omitempty"`
	DisplayName string `json:"display_name"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Username    string `json:"username,omitempty"`
	AvatarRef   string `json:"avatar_ref,omitempty"`
}

// MarkReadResult reports what a mark-read call did. Found is false when the
// thread does not exist, which callers treat as a no-op.
type MarkReadResult struct {
	Found  bool  `json:"found"`
	Marked int64 `json:"marked"`
}

func ToEntryDTO(e inbox.Entry) EntryDTO {
	out := EntryDTO{
		Type:         string(e.Kind()),
		ID:           e.ID(),
		Preview:      e.Preview(),
		LastActivity: biztime.ToBizTimezone(e.LastActivity()),
		UnreadCount:  e.UnreadCount(),
		Counterparty: toCounterpartyDTO(e.Counterparty()),
	}

	if s, ok := e.(*inbox.SupportEntry); ok {
		out.Subject = s.Subject()
		out.Status = s.Status().String()
	}
	return out
}

func ToEntryDTOs(entries []inbox.Entry) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToEntryDTO(e))
	}
	return out
}

func toCounterpartyDTO(c inbox.Counterparty) CounterpartyDTO {
	out := CounterpartyDTO{
		Type:        c.Type.String(),
		ID:          c.ID,
		DisplayName: c.DisplayName,
	}
	if c.Identity != nil {
		out.FirstName = c.Identity.FirstName
		out.LastName = c.Identity.LastName
		out.Username = c.Identity.Username
		out.AvatarRef = c.Identity.AvatarRef
	}
	if out.DisplayName == "" {
		out.DisplayName = fmt.Sprintf("%s #%d", c.Type, c.ID)
	}
	return out
}
