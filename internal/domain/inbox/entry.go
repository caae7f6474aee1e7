// Package inbox defines the unified inbox: one sorted list mixing direct
// conversations and support tickets behind a common Entry surface.
package inbox

import (
	"sort"
	"time"

	"tradehub/internal/domain/conversation"
	"tradehub/internal/domain/identity"
	"tradehub/internal/domain/shared/party"
	"tradehub/internal/domain/support"
	vo "tradehub/internal/domain/support/valueobjects"
)

// EmptyPreview is shown for threads without any message.
const EmptyPreview = "No messages yet"

type EntryType string

const (
	TypeConversation EntryType = "conversation"
	TypeSupport      EntryType = "support"
)

// Counterparty is who the viewer talks to in a thread. Identity is nil when
// the lookup found nothing or for the support pseudo-identity.
type Counterparty struct {
	Type        party.Type
	ID          uint
	DisplayName string
	Identity    *identity.Identity
}

// Entry is implemented by ConversationEntry and SupportEntry only.
type Entry interface {
	Kind() EntryType
	ID() uint
	Preview() string
	LastActivity() time.Time
	UnreadCount() int64
	Counterparty() Counterparty
}

type ConversationEntry struct {
	summary      *conversation.Summary
	counterparty Counterparty
}

// NewConversationEntry wraps a conversation summary seen from viewerType,
// attaching the resolved identity of the other side (nil if unknown).
func NewConversationEntry(summary *conversation.Summary, viewerType party.Type, other *identity.Identity) *ConversationEntry {
	otherType, otherID := summary.Conversation.CounterpartOf(viewerType)
	return &ConversationEntry{
		summary: summary,
		counterparty: Counterparty{
			Type:        otherType,
			ID:          otherID,
			DisplayName: other.DisplayName(),
			Identity:    other,
		},
	}
}

func (e *ConversationEntry) Kind() EntryType {
	return TypeConversation
}

func (e *ConversationEntry) ID() uint {
	return e.summary.Conversation.ID()
}

func (e *ConversationEntry) Preview() string {
	return preview(e.summary.LastBody)
}

func (e *ConversationEntry) LastActivity() time.Time {
	c := e.summary.Conversation
	return coalesce(e.summary.LastAt, c.UpdatedAt(), c.CreatedAt())
}

func (e *ConversationEntry) UnreadCount() int64 {
	return e.summary.UnreadCount
}

func (e *ConversationEntry) Counterparty() Counterparty {
	return e.counterparty
}

func (e *ConversationEntry) Conversation() *conversation.Conversation {
	return e.summary.Conversation
}

type SupportEntry struct {
	summary      *support.TicketSummary
	counterparty Counterparty
}

// NewSupportEntry wraps a ticket summary. The other side is always the
// support desk, shown under displayName without any identity lookup.
func NewSupportEntry(summary *support.TicketSummary, displayName string) *SupportEntry {
	return &SupportEntry{
		summary: summary,
		counterparty: Counterparty{
			Type:        party.TypeAdmin,
			DisplayName: displayName,
		},
	}
}

func (e *SupportEntry) Kind() EntryType {
	return TypeSupport
}

func (e *SupportEntry) ID() uint {
	return e.summary.Ticket.ID()
}

func (e *SupportEntry) Preview() string {
	return preview(e.summary.LastBody)
}

func (e *SupportEntry) LastActivity() time.Time {
	t := e.summary.Ticket
	return coalesce(e.summary.LastAt, t.UpdatedAt(), t.CreatedAt())
}

func (e *SupportEntry) UnreadCount() int64 {
	return e.summary.UnreadCount
}

func (e *SupportEntry) Counterparty() Counterparty {
	return e.counterparty
}

func (e *SupportEntry) Subject() string {
	return e.summary.Ticket.Subject()
}

func (e *SupportEntry) Status() vo.TicketStatus {
	return e.summary.Ticket.Status()
}

// Sort orders entries by last activity, newest first. Equal timestamps fall
// back to kind and then id, both descending, so repeated polls agree.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		ta, tb := a.LastActivity(), b.LastActivity()
		if !ta.Equal(tb) {
			return ta.After(tb)
		}
		if a.Kind() != b.Kind() {
			return a.Kind() > b.Kind()
		}
		return a.ID() > b.ID()
	})
}

func preview(body *string) string {
	if body == nil || *body == "" {
		return EmptyPreview
	}
	return *body
}

func coalesce(last *time.Time, fallbacks ...time.Time) time.Time {
	if last != nil && !last.IsZero() {
		return *last
	}
	for _, t := range fallbacks {
		if !t.IsZero() {
			return t
		}
	}
	return time.Time{}
}
