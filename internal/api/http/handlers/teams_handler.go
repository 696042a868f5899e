package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/opskit/teamdesk/internal/api/dto"
	"github.com/opskit/teamdesk/internal/service"
	"github.com/opskit/teamdesk/pkg/util"
)

// TeamsHandler exposes team CRUD endpoints.
type TeamsHandler struct {
	service *service.TeamService
}

// NewTeamsHandler constructs handler.
func NewTeamsHandler(teamService *service.TeamService) *TeamsHandler {
	return &TeamsHandler{service: teamService}
}

// List handles GET /teams.
func (h *TeamsHandler) List(c *fiber.Ctx) error {
	teams, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(teams)
}

// Get handles GET /teams/:id.
func (h *TeamsHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "Team")
	if err != nil {
		return err
	}
	team, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(team)
}

// Create handles POST /teams.
func (h *TeamsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	team, err := h.service.Create(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"error":   false,
		"message": "Team created successfully",
		"team":    team,
	})
}

// Update handles PUT /teams/:id.
func (h *TeamsHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "Team")
	if err != nil {
		return err
	}
	var req dto.UpdateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	team, err := h.service.Update(c.Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Team updated successfully",
		"team":    team,
	})
}

// Delete handles DELETE /teams/:id.
func (h *TeamsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "Team")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"error":   false,
		"message": fmt.Sprintf("Team with ID %d deleted successfully", id),
	})
}
