package service

import (
	"context"
	"fmt"

	"github.com/opskit/teamdesk/internal/api/dto"
	"github.com/opskit/teamdesk/internal/domain"
	"github.com/opskit/teamdesk/internal/events"
	"github.com/opskit/teamdesk/internal/persistence"
	"github.com/opskit/teamdesk/internal/repository"
	"github.com/opskit/teamdesk/internal/validation"
	"github.com/opskit/teamdesk/pkg/util"
)

// TeamService coordinates team CRUD against the shared document.
type TeamService struct {
	store      *persistence.Store
	dispatcher events.Dispatcher
}

// TeamDependencies bundles collaborators for the team service.
type TeamDependencies struct {
	Store      *persistence.Store
	Dispatcher events.Dispatcher
}

// NewTeamService constructs the service.
func NewTeamService(deps TeamDependencies) *TeamService {
	return &TeamService{store: deps.Store, dispatcher: deps.Dispatcher}
}

// List returns all teams.
func (s *TeamService) List(ctx context.Context) ([]domain.Team, error) {
	var teams []domain.Team
	err := s.store.View(func(doc domain.Document) error {
		teams = doc.Teams
		return nil
	})
	return teams, err
}

// Get returns the team with the given id.
func (s *TeamService) Get(ctx context.Context, id int) (*domain.Team, error) {
	var team domain.Team
	err := s.store.View(func(doc domain.Document) error {
		found, ok := repository.FindByID(doc.Teams, id)
		if !ok {
			return util.NewNotFound(fmt.Sprintf("Team with ID %d not found", id))
		}
		team = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// Create validates the payload, assigns the next id and persists the team.
func (s *TeamService) Create(ctx context.Context, req dto.CreateTeamRequest) (*domain.Team, error) {
	var created domain.Team
	err := s.store.Update(func(doc *domain.Document) error {
		team, err := validation.TeamForCreate(req, doc.Teams)
		if err != nil {
			return err
		}
		team.ID = repository.NextID(doc.Teams)
		doc.Teams = repository.Insert(doc.Teams, team)
		created = team
		return nil
	})
	if err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.EventTeamCreated, created.ID)
	return &created, nil
}

// Update merges the submitted fields onto the stored team and persists it.
func (s *TeamService) Update(ctx context.Context, id int, req dto.UpdateTeamRequest) (*domain.Team, error) {
	var updated domain.Team
	err := s.store.Update(func(doc *domain.Document) error {
		current, ok := repository.FindByID(doc.Teams, id)
		if !ok {
			return util.NewNotFound(fmt.Sprintf("Team with ID %d not found", id))
		}
		team, err := validation.TeamForUpdate(req, current, doc.Teams)
		if err != nil {
			return err
		}
		doc.Teams = repository.Replace(doc.Teams, id, team)
		updated = team
		return nil
	})
	if err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.EventTeamUpdated, updated.ID)
	return &updated, nil
}

// Delete removes the team with the given id.
func (s *TeamService) Delete(ctx context.Context, id int) error {
	err := s.store.Update(func(doc *domain.Document) error {
		if _, ok := repository.FindByID(doc.Teams, id); !ok {
			return util.NewNotFound(fmt.Sprintf("Team with ID %d not found", id))
		}
		doc.Teams = repository.Remove(doc.Teams, id)
		return nil
	})
	if err != nil {
		return err
	}
	publish(ctx, s.dispatcher, events.EventTeamDeleted, id)
	return nil
}
