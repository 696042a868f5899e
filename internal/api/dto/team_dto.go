package dto

// CreateTeamRequest payload.
type CreateTeamRequest struct {
	Teamname string   `json:"teamname"`
	Members  []string `json:"members"`
}

// UpdateTeamRequest payload. Pointer fields distinguish a field absent from
// the payload from one submitted empty.
type UpdateTeamRequest struct {
	Teamname *string   `json:"teamname"`
	Members  *[]string `json:"members"`
}
