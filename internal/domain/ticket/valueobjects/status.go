package valueobjects

import (
	"fmt"
	"strings"
)

type TicketStatus string

const (
	StatusOpen       TicketStatus = "Open"
	StatusInProgress TicketStatus = "InProgress"
	StatusResolved   TicketStatus = "Resolved"
	StatusRejected   TicketStatus = "Rejected"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusRejected:   true,
}

// AllStatuses lists the statuses in lifecycle order.
func AllStatuses() []TicketStatus {
	return []TicketStatus{StatusOpen, StatusInProgress, StatusResolved, StatusRejected}
}

func (ts TicketStatus) String() string {
	return string(ts)
}

// Upper returns the token as it appears in notification messages.
func (ts TicketStatus) Upper() string {
	return strings.ToUpper(string(ts))
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

// CanTransitionTo reports whether an admin may move a ticket from ts to next.
// Every valid status is reachable from every other one, including itself.
func (ts TicketStatus) CanTransitionTo(next TicketStatus) bool {
	return ts.IsValid() && next.IsValid()
}

func (ts TicketStatus) IsRejected() bool {
	return ts == StatusRejected
}

// IsClosed reports whether the ticket awaits creator acknowledgement.
func (ts TicketStatus) IsClosed() bool {
	return ts == StatusResolved || ts == StatusRejected
}

// NewTicketStatus parses an exact status token.
func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(strings.TrimSpace(s))
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %q", s)
	}
	return ts, nil
}
