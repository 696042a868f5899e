package domain

// Team groups member names under a unique team name.
type Team struct {
	ID       int      `json:"id"`
	Teamname string   `json:"teamname"`
	Members  []string `json:"members"`
}

// EntityID returns the team's collection id.
func (t Team) EntityID() int { return t.ID }
