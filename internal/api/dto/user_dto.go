package dto

// CreateUserRequest payload.
type CreateUserRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	EmailID     string `json:"emailId"`
	PhoneNumber string `json:"phoneNumber"`
	EmployeeID  string `json:"employeeId"`
	Designation string `json:"designation"`
	TeamID      string `json:"teamId"`
}

// UpdateUserRequest payload. Pointer fields distinguish a field absent from
// the payload from one submitted empty.
type UpdateUserRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	EmailID     *string `json:"emailId"`
	PhoneNumber *string `json:"phoneNumber"`
	EmployeeID  *string `json:"employeeId"`
	Designation *string `json:"designation"`
	TeamID      *string `json:"teamId"`
}
