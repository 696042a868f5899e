package validation

import (
	"strings"

	"github.com/opskit/teamdesk/internal/api/dto"
	"github.com/opskit/teamdesk/internal/domain"
	"github.com/opskit/teamdesk/pkg/util"
)

// TicketForCreate validates a create payload and returns the normalized
// ticket, id unset. Tickets carry no uniqueness constraint; Team is free
// text and not checked against the teams collection.
func TicketForCreate(req dto.CreateTicketRequest) (domain.Ticket, error) {
	ticket := domain.Ticket{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Team:        strings.TrimSpace(req.Team),
		Status:      strings.TrimSpace(req.Status),
		Assignee:    strings.TrimSpace(req.Assignee),
		Reporter:    strings.TrimSpace(req.Reporter),
	}

	missing := map[string]string{}
	if ticket.Title == "" {
		missing["title"] = "Title is required"
	}
	if ticket.Description == "" {
		missing["description"] = "Description is required"
	}
	if ticket.Team == "" {
		missing["team"] = "Team is required"
	}
	if ticket.Status == "" {
		missing["status"] = "Status is required"
	}
	if ticket.Assignee == "" {
		missing["assignee"] = "Assignee is required"
	}
	if ticket.Reporter == "" {
		missing["reporter"] = "Reporter is required"
	}
	if len(missing) > 0 {
		return domain.Ticket{}, util.NewValidationError(
			"All fields are required",
			map[string]any{"missingFields": missing},
		)
	}

	if !domain.ValidTicketStatus(ticket.Status) {
		return domain.Ticket{}, util.NewValidationError(
			"Invalid status value",
			map[string]any{"invalidStatus": ticket.Status},
		)
	}

	return ticket, nil
}

// TicketForUpdate validates a partial payload and merges the submitted
// fields onto current. Omitted fields are left untouched and unchecked.
func TicketForUpdate(req dto.UpdateTicketRequest, current domain.Ticket) (domain.Ticket, error) {
	updated := current

	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		if trimmed == "" {
			return domain.Ticket{}, util.NewValidationError("Title cannot be empty", nil)
		}
		updated.Title = trimmed
	}
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		if trimmed == "" {
			return domain.Ticket{}, util.NewValidationError("Description cannot be empty", nil)
		}
		updated.Description = trimmed
	}
	if req.Team != nil {
		trimmed := strings.TrimSpace(*req.Team)
		if trimmed == "" {
			return domain.Ticket{}, util.NewValidationError("Team cannot be empty", nil)
		}
		updated.Team = trimmed
	}
	if req.Status != nil {
		trimmed := strings.TrimSpace(*req.Status)
		if trimmed == "" {
			return domain.Ticket{}, util.NewValidationError("Status cannot be empty", nil)
		}
		if !domain.ValidTicketStatus(trimmed) {
			return domain.Ticket{}, util.NewValidationError(
				"Invalid status value",
				map[string]any{"invalidStatus": trimmed},
			)
		}
		updated.Status = trimmed
	}
	if req.Assignee != nil {
		trimmed := strings.TrimSpace(*req.Assignee)
		if trimmed == "" {
			return domain.Ticket{}, util.NewValidationError("Assignee cannot be empty", nil)
		}
		updated.Assignee = trimmed
	}
	if req.Reporter != nil {
		trimmed := strings.TrimSpace(*req.Reporter)
		if trimmed == "" {
			return domain.Ticket{}, util.NewValidationError("Reporter cannot be empty", nil)
		}
		updated.Reporter = trimmed
	}

	return updated, nil
}
