package validation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opskit/teamdesk/internal/api/dto"
	"github.com/opskit/teamdesk/internal/domain"
	"github.com/opskit/teamdesk/internal/validation"
)

func validUserRequest() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		FirstName:   "Al",
		LastName:    "Smith",
		EmailID:     "al@example.com",
		PhoneNumber: "1234567890",
		EmployeeID:  "E1",
		Designation: "QA",
		TeamID:      "1",
	}
}

func existingUser() domain.User {
	return domain.User{
		ID:          1,
		FirstName:   "Al",
		LastName:    "Smith",
		EmailID:     "al@example.com",
		PhoneNumber: "1234567890",
		EmployeeID:  "E1",
		Designation: "QA",
		TeamID:      "1",
	}
}

func TestUserForCreateTrims(t *testing.T) {
	req := validUserRequest()
	req.FirstName = "  Al  "

	user, err := validation.UserForCreate(req, nil)
	require.NoError(t, err)
	require.Equal(t, "Al", user.FirstName)
}

func TestUserForCreateMissingFields(t *testing.T) {
	_, err := validation.UserForCreate(dto.CreateUserRequest{}, nil)
	domainErr := requireValidation(t, err)
	require.Equal(t, "All fields are required", domainErr.Message)

	missing, ok := domainErr.Details["missingFields"].(map[string]string)
	require.True(t, ok)
	require.Len(t, missing, 7)
	require.Equal(t, "First name is required", missing["firstName"])
}

func TestUserForCreateInvalidEmail(t *testing.T) {
	req := validUserRequest()
	req.EmailID = "bad"

	_, err := validation.UserForCreate(req, nil)
	domainErr := requireValidation(t, err)
	require.Equal(t, "Invalid email format", domainErr.Message)
	require.Equal(t, "bad", domainErr.Details["invalidEmail"])
}

func TestUserForCreateInvalidPhone(t *testing.T) {
	req := validUserRequest()
	req.PhoneNumber = "12345"

	_, err := validation.UserForCreate(req, nil)
	domainErr := requireValidation(t, err)
	require.Equal(t, "Invalid phone number format", domainErr.Message)
	require.Equal(t, "12345", domainErr.Details["invalidPhoneNumber"])
}

func TestUserForCreateReportsAllDuplicates(t *testing.T) {
	req := validUserRequest()
	req.EmailID = "AL@EXAMPLE.COM"

	_, err := validation.UserForCreate(req, []domain.User{existingUser()})
	domainErr := requireValidation(t, err)
	require.Equal(t, "A user with this emailid, phno, empid already exists", domainErr.Message)
	require.Contains(t, domainErr.Details, "duplicateEmail")
	require.Contains(t, domainErr.Details, "duplicatePhno")
	require.Contains(t, domainErr.Details, "duplicateEmpid")
}

func TestUserForCreateSingleDuplicateField(t *testing.T) {
	req := validUserRequest()
	req.PhoneNumber = "0987654321"
	req.EmployeeID = "E2"

	_, err := validation.UserForCreate(req, []domain.User{existingUser()})
	domainErr := requireValidation(t, err)
	require.Contains(t, domainErr.Details, "duplicateEmail")
	require.NotContains(t, domainErr.Details, "duplicatePhno")
	require.NotContains(t, domainErr.Details, "duplicateEmpid")
}

func TestUserForUpdatePartial(t *testing.T) {
	current := existingUser()

	updated, err := validation.UserForUpdate(dto.UpdateUserRequest{Designation: strPtr("Lead")}, current, []domain.User{current})
	require.NoError(t, err)
	require.Equal(t, "Lead", updated.Designation)
	require.Equal(t, "al@example.com", updated.EmailID)
}

func TestUserForUpdateOwnEmailIsNotACollision(t *testing.T) {
	current := existingUser()

	updated, err := validation.UserForUpdate(dto.UpdateUserRequest{EmailID: strPtr("al@example.com")}, current, []domain.User{current})
	require.NoError(t, err)
	require.Equal(t, "al@example.com", updated.EmailID)
}

func TestUserForUpdateCollidesWithOtherUser(t *testing.T) {
	current := existingUser()
	other := domain.User{ID: 2, EmailID: "bo@example.com", PhoneNumber: "1112223334", EmployeeID: "E2"}

	_, err := validation.UserForUpdate(dto.UpdateUserRequest{EmailID: strPtr("BO@example.com")}, current, []domain.User{current, other})
	domainErr := requireValidation(t, err)
	require.Contains(t, domainErr.Details, "duplicateEmail")
}

func TestUserForUpdateEmptyField(t *testing.T) {
	current := existingUser()

	_, err := validation.UserForUpdate(dto.UpdateUserRequest{FirstName: strPtr("  ")}, current, []domain.User{current})
	domainErr := requireValidation(t, err)
	require.Equal(t, "First name cannot be empty", domainErr.Message)
}

func TestUserForUpdateInvalidFormats(t *testing.T) {
	current := existingUser()

	_, err := validation.UserForUpdate(dto.UpdateUserRequest{EmailID: strPtr("bad")}, current, []domain.User{current})
	domainErr := requireValidation(t, err)
	require.Equal(t, "Invalid email format", domainErr.Message)

	_, err = validation.UserForUpdate(dto.UpdateUserRequest{PhoneNumber: strPtr("123")}, current, []domain.User{current})
	domainErr = requireValidation(t, err)
	require.Equal(t, "Invalid phone number format", domainErr.Message)
}
