package dto

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Team        string `json:"team"`
	Status      string `json:"status"`
	Assignee    string `json:"assignee"`
	Reporter    string `json:"reporter"`
}

// UpdateTicketRequest payload. Pointer fields distinguish a field absent
// from the payload from one submitted empty.
type UpdateTicketRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Team        *string `json:"team"`
	Status      *string `json:"status"`
	Assignee    *string `json:"assignee"`
	Reporter    *string `json:"reporter"`
}
