package domain

// User is the domain model for directory members. EmailId, PhoneNumber and
// EmployeeId must each be unique across the collection (case-insensitive).
// TeamId is a free-text reference and is not validated against teams.
type User struct {
	ID          int    `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	EmailID     string `json:"emailId"`
	PhoneNumber string `json:"phoneNumber"`
	EmployeeID  string `json:"employeeId"`
	Designation string `json:"designation"`
	TeamID      string `json:"teamId"`
}

// EntityID returns the user's collection id.
func (u User) EntityID() int { return u.ID }
