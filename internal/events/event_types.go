package events

import "time"

// EventType identifies an entity mutation.
type EventType string

const (
	EventTeamCreated   EventType = "team.created"
	EventTeamUpdated   EventType = "team.updated"
	EventTeamDeleted   EventType = "team.deleted"
	EventTicketCreated EventType = "ticket.created"
	EventTicketUpdated EventType = "ticket.updated"
	EventTicketDeleted EventType = "ticket.deleted"
	EventUserCreated   EventType = "user.created"
	EventUserUpdated   EventType = "user.updated"
	EventUserDeleted   EventType = "user.deleted"
)

// AllTypes lists every event type, for subscribers that want the full feed.
func AllTypes() []EventType {
	return []EventType{
		EventTeamCreated, EventTeamUpdated, EventTeamDeleted,
		EventTicketCreated, EventTicketUpdated, EventTicketDeleted,
		EventUserCreated, EventUserUpdated, EventUserDeleted,
	}
}

// Event records a single committed mutation.
type Event struct {
	ID        string
	Type      EventType
	EntityID  int
	Timestamp time.Time
}
