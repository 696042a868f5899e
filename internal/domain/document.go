package domain

// Document is the aggregate root for all persisted data. It is loaded and
// saved as a single unit; no collection is persisted on its own.
type Document struct {
	Teams   []Team   `json:"teams"`
	Tickets []Ticket `json:"tickets"`
	Users   []User   `json:"users"`
}

// Normalize replaces nil collections with empty slices so a freshly decoded
// document always marshals its collections as arrays.
func (d *Document) Normalize() {
	if d.Teams == nil {
		d.Teams = []Team{}
	}
	if d.Tickets == nil {
		d.Tickets = []Ticket{}
	}
	if d.Users == nil {
		d.Users = []User{}
	}
}
