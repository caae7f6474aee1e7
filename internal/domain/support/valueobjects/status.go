package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen     TicketStatus = "open"
	StatusAnswered TicketStatus = "answered"
	StatusClosed   TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:     true,
	StatusAnswered: true,
	StatusClosed:   true,
}

// closed is terminal: nothing leaves it.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusOpen: {
		StatusAnswered,
		StatusClosed,
	},
	StatusAnswered: {
		StatusOpen,
		StatusClosed,
	},
	StatusClosed: {},
}

func (s TicketStatus) String() string {
	return string(s)
}

func (s TicketStatus) IsValid() bool {
	return validTicketStatuses[s]
}

func (s TicketStatus) IsOpen() bool {
	return s == StatusOpen
}

func (s TicketStatus) IsAnswered() bool {
	return s == StatusAnswered
}

func (s TicketStatus) IsClosed() bool {
	return s == StatusClosed
}

func (s TicketStatus) CanTransitionTo(target TicketStatus) bool {
	for _, allowed := range ticketStatusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func NewTicketStatus(s string) (TicketStatus, error) {
	status := TicketStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return status, nil
}
