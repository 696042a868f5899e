package validation

import (
	"strings"

	"github.com/opskit/teamdesk/internal/api/dto"
	"github.com/opskit/teamdesk/internal/domain"
	"github.com/opskit/teamdesk/pkg/util"
)

// TeamForCreate validates a create payload against the current teams
// collection and returns the normalized team, id unset.
func TeamForCreate(req dto.CreateTeamRequest, existing []domain.Team) (domain.Team, error) {
	trimmedName := strings.TrimSpace(req.Teamname)

	if trimmedName == "" || len(req.Members) == 0 {
		missing := map[string]string{}
		if trimmedName == "" {
			missing["teamname"] = "Team name is required"
		}
		if len(req.Members) == 0 {
			missing["members"] = "Members are required and must be a non-empty array"
		}
		return domain.Team{}, util.NewValidationError(
			"All fields are required and members must be a non-empty array of strings",
			map[string]any{"missingFields": missing},
		)
	}

	members, invalid := trimMembers(req.Members)
	if len(invalid) > 0 {
		return domain.Team{}, util.NewValidationError(
			"All members must be non-empty strings",
			map[string]any{"invalidMembers": invalid},
		)
	}

	if teamnameTaken(existing, trimmedName, 0) {
		return domain.Team{}, util.NewValidationError(
			"A team with this title already exists",
			map[string]any{"duplicateTitle": trimmedName},
		)
	}

	return domain.Team{Teamname: trimmedName, Members: members}, nil
}

// TeamForUpdate validates a partial payload and merges the submitted fields
// onto current. Omitted fields are left untouched and unchecked. The
// uniqueness scan skips the team being updated, so resubmitting the team's
// own name is not a collision.
func TeamForUpdate(req dto.UpdateTeamRequest, current domain.Team, existing []domain.Team) (domain.Team, error) {
	updated := current

	if req.Teamname != nil {
		trimmedName := strings.TrimSpace(*req.Teamname)
		if trimmedName == "" {
			return domain.Team{}, util.NewValidationError("Team name cannot be empty", nil)
		}
		if teamnameTaken(existing, trimmedName, current.ID) {
			return domain.Team{}, util.NewValidationError(
				"A team with this title already exists",
				map[string]any{"duplicateTitle": trimmedName},
			)
		}
		updated.Teamname = trimmedName
	}

	if req.Members != nil {
		if len(*req.Members) == 0 {
			return domain.Team{}, util.NewValidationError("Members must be a non-empty array of strings", nil)
		}
		members, invalid := trimMembers(*req.Members)
		if len(invalid) > 0 {
			return domain.Team{}, util.NewValidationError(
				"All members must be non-empty strings",
				map[string]any{"invalidMembers": invalid},
			)
		}
		updated.Members = members
	}

	return updated, nil
}

func trimMembers(members []string) (trimmed, invalid []string) {
	trimmed = make([]string, 0, len(members))
	for _, member := range members {
		clean := strings.TrimSpace(member)
		if clean == "" {
			invalid = append(invalid, member)
			continue
		}
		trimmed = append(trimmed, clean)
	}
	return trimmed, invalid
}

func teamnameTaken(teams []domain.Team, name string, selfID int) bool {
	for _, team := range teams {
		if team.ID == selfID {
			continue
		}
		if strings.EqualFold(team.Teamname, name) {
			return true
		}
	}
	return false
}
