package support

import "errors"

var (
	ErrTicketNotFound = errors.New("support ticket not found")
	ErrNotTicketOwner = errors.New("sender does not own this ticket")
	ErrInvalidOwner   = errors.New("ticket owner must be a user or a company")

	// ErrTicketClosed rejects any message on a closed ticket. Closed tickets
	// are never reopened by new messages.
	ErrTicketClosed = errors.New("support ticket is closed")
)
