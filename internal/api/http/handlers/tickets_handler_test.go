package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestTicketLifecycle(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/tickets", fiber.Map{
		"title":       "Broken build",
		"description": "CI fails on main",
		"team":        "QA",
		"status":      "Open",
		"assignee":    "Al",
		"reporter":    "Bo",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	ticket := body["ticket"].(map[string]any)
	require.Equal(t, float64(1), ticket["id"])
	require.Equal(t, "Open", ticket["status"])

	// status enum rejected
	resp, body = doJSON(t, app, http.MethodPost, "/tickets", fiber.Map{
		"title":       "Another",
		"description": "d",
		"team":        "QA",
		"status":      "archived",
		"assignee":    "Al",
		"reporter":    "Bo",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Invalid status value", body["message"])
	require.Equal(t, "archived", body["invalidStatus"])

	// partial update
	resp, body = doJSON(t, app, http.MethodPut, "/tickets/1", fiber.Map{"status": "resolved"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ticket = body["ticket"].(map[string]any)
	require.Equal(t, "resolved", ticket["status"])
	require.Equal(t, "Broken build", ticket["title"])

	resp, body = doJSON(t, app, http.MethodDelete, "/tickets/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Ticket with ID 1 deleted successfully", body["message"])
}

func TestUserLifecycle(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/users", fiber.Map{
		"firstName":   "Al",
		"lastName":    "Smith",
		"emailId":     "al@example.com",
		"phoneNumber": "1234567890",
		"employeeId":  "E1",
		"designation": "QA",
		"teamId":      "1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	user := body["user"].(map[string]any)
	require.Equal(t, float64(1), user["id"])

	// malformed email rejected
	resp, body = doJSON(t, app, http.MethodPost, "/users", fiber.Map{
		"firstName":   "Bo",
		"lastName":    "Jones",
		"emailId":     "bad",
		"phoneNumber": "0987654321",
		"employeeId":  "E2",
		"designation": "Dev",
		"teamId":      "1",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Invalid email format", body["message"])
	require.Equal(t, "bad", body["invalidEmail"])

	// duplicate email rejected
	resp, body = doJSON(t, app, http.MethodPost, "/users", fiber.Map{
		"firstName":   "Bo",
		"lastName":    "Jones",
		"emailId":     "AL@example.com",
		"phoneNumber": "0987654321",
		"employeeId":  "E2",
		"designation": "Dev",
		"teamId":      "1",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, body, "duplicateEmail")

	resp, body = doJSON(t, app, http.MethodPut, "/users/1", fiber.Map{"designation": "Lead"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user = body["user"].(map[string]any)
	require.Equal(t, "Lead", user["designation"])
	require.Equal(t, "al@example.com", user["emailId"])
}
