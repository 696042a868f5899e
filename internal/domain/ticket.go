package domain

import "strings"

// TicketStatus enumerates lifecycle states for tickets. Statuses are matched
// case-insensitively but stored with the casing the client submitted.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in-progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

var validStatuses = []TicketStatus{
	TicketStatusOpen,
	TicketStatusInProgress,
	TicketStatusResolved,
	TicketStatusClosed,
}

// ValidTicketStatus reports whether the value matches one of the known
// statuses, ignoring case.
func ValidTicketStatus(value string) bool {
	for _, status := range validStatuses {
		if strings.EqualFold(value, string(status)) {
			return true
		}
	}
	return false
}

// Ticket is the aggregate for work items. Team is a free-text reference and
// is not validated against the teams collection.
type Ticket struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Team        string `json:"team"`
	Status      string `json:"status"`
	Assignee    string `json:"assignee"`
	Reporter    string `json:"reporter"`
}

// EntityID returns the ticket's collection id.
func (t Ticket) EntityID() int { return t.ID }
