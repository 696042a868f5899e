package validation

import (
	"strings"

	"github.com/opskit/teamdesk/internal/api/dto"
	"github.com/opskit/teamdesk/internal/domain"
	"github.com/opskit/teamdesk/pkg/util"
)

// UserForCreate validates a create payload against the current users
// collection and returns the normalized user, id unset. EmailId,
// phoneNumber and employeeId are each checked for uniqueness independently;
// a single request reports every field that collides.
func UserForCreate(req dto.CreateUserRequest, existing []domain.User) (domain.User, error) {
	user := domain.User{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		EmailID:     strings.TrimSpace(req.EmailID),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		EmployeeID:  strings.TrimSpace(req.EmployeeID),
		Designation: strings.TrimSpace(req.Designation),
		TeamID:      strings.TrimSpace(req.TeamID),
	}

	missing := map[string]string{}
	if user.FirstName == "" {
		missing["firstName"] = "First name is required"
	}
	if user.LastName == "" {
		missing["lastName"] = "Last name is required"
	}
	if user.EmailID == "" {
		missing["emailId"] = "Email ID is required"
	}
	if user.PhoneNumber == "" {
		missing["phoneNumber"] = "Phone number is required"
	}
	if user.EmployeeID == "" {
		missing["employeeId"] = "Employee ID is required"
	}
	if user.Designation == "" {
		missing["designation"] = "Designation is required"
	}
	if user.TeamID == "" {
		missing["teamId"] = "Team ID is required"
	}
	if len(missing) > 0 {
		return domain.User{}, util.NewValidationError(
			"All fields are required",
			map[string]any{"missingFields": missing},
		)
	}

	if !emailPattern.MatchString(user.EmailID) {
		return domain.User{}, util.NewValidationError(
			"Invalid email format",
			map[string]any{"invalidEmail": user.EmailID},
		)
	}
	if !phonePattern.MatchString(user.PhoneNumber) {
		return domain.User{}, util.NewValidationError(
			"Invalid phone number format",
			map[string]any{"invalidPhoneNumber": user.PhoneNumber},
		)
	}

	if err := userUniqueness(existing, user, 0); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// UserForUpdate validates a partial payload and merges the submitted fields
// onto current. Omitted fields are left untouched and unchecked. Changed
// unique fields are re-checked against all other users; the scan skips the
// user being updated, so resubmitting an unchanged email is not a collision.
func UserForUpdate(req dto.UpdateUserRequest, current domain.User, existing []domain.User) (domain.User, error) {
	updated := current

	if req.FirstName != nil {
		trimmed := strings.TrimSpace(*req.FirstName)
		if trimmed == "" {
			return domain.User{}, util.NewValidationError("First name cannot be empty", nil)
		}
		updated.FirstName = trimmed
	}
	if req.LastName != nil {
		trimmed := strings.TrimSpace(*req.LastName)
		if trimmed == "" {
			return domain.User{}, util.NewValidationError("Last name cannot be empty", nil)
		}
		updated.LastName = trimmed
	}
	if req.EmailID != nil {
		trimmed := strings.TrimSpace(*req.EmailID)
		if trimmed == "" {
			return domain.User{}, util.NewValidationError("Email ID cannot be empty", nil)
		}
		if !emailPattern.MatchString(trimmed) {
			return domain.User{}, util.NewValidationError(
				"Invalid email format",
				map[string]any{"invalidEmail": trimmed},
			)
		}
		updated.EmailID = trimmed
	}
	if req.PhoneNumber != nil {
		trimmed := strings.TrimSpace(*req.PhoneNumber)
		if trimmed == "" {
			return domain.User{}, util.NewValidationError("Phone number cannot be empty", nil)
		}
		if !phonePattern.MatchString(trimmed) {
			return domain.User{}, util.NewValidationError(
				"Invalid phone number format",
				map[string]any{"invalidPhoneNumber": trimmed},
			)
		}
		updated.PhoneNumber = trimmed
	}
	if req.EmployeeID != nil {
		trimmed := strings.TrimSpace(*req.EmployeeID)
		if trimmed == "" {
			return domain.User{}, util.NewValidationError("Employee ID cannot be empty", nil)
		}
		updated.EmployeeID = trimmed
	}
	if req.Designation != nil {
		trimmed := strings.TrimSpace(*req.Designation)
		if trimmed == "" {
			return domain.User{}, util.NewValidationError("Designation cannot be empty", nil)
		}
		updated.Designation = trimmed
	}
	if req.TeamID != nil {
		trimmed := strings.TrimSpace(*req.TeamID)
		if trimmed == "" {
			return domain.User{}, util.NewValidationError("Team ID cannot be empty", nil)
		}
		updated.TeamID = trimmed
	}

	if err := userUniqueness(existing, updated, current.ID); err != nil {
		return domain.User{}, err
	}

	return updated, nil
}

func userUniqueness(users []domain.User, candidate domain.User, selfID int) error {
	var dupEmail, dupPhone, dupEmployee bool
	for _, user := range users {
		if user.ID == selfID {
			continue
		}
		if strings.EqualFold(user.EmailID, candidate.EmailID) {
			dupEmail = true
		}
		if strings.EqualFold(user.PhoneNumber, candidate.PhoneNumber) {
			dupPhone = true
		}
		if strings.EqualFold(user.EmployeeID, candidate.EmployeeID) {
			dupEmployee = true
		}
	}
	if !dupEmail && !dupPhone && !dupEmployee {
		return nil
	}

	details := map[string]any{}
	if dupEmail {
		details["duplicateEmail"] = candidate.EmailID
	}
	if dupPhone {
		details["duplicatePhno"] = candidate.PhoneNumber
	}
	if dupEmployee {
		details["duplicateEmpid"] = candidate.EmployeeID
	}
	return util.NewValidationError("A user with this emailid, phno, empid already exists", details)
}
