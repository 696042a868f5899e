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

// UserService coordinates user CRUD against the shared document.
type UserService struct {
	store      *persistence.Store
	dispatcher events.Dispatcher
}

// UserDependencies bundles collaborators for the user service.
type UserDependencies struct {
	Store      *persistence.Store
	Dispatcher events.Dispatcher
}

// NewUserService constructs the service.
func NewUserService(deps UserDependencies) *UserService {
	return &UserService{store: deps.Store, dispatcher: deps.Dispatcher}
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := s.store.View(func(doc domain.Document) error {
		users = doc.Users
		return nil
	})
	return users, err
}

// Get returns the user with the given id.
func (s *UserService) Get(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	err := s.store.View(func(doc domain.Document) error {
		found, ok := repository.FindByID(doc.Users, id)
		if !ok {
			return util.NewNotFound(fmt.Sprintf("User with ID %d not found", id))
		}
		user = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create validates the payload, assigns the next id and persists the user.
func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	var created domain.User
	err := s.store.Update(func(doc *domain.Document) error {
		user, err := validation.UserForCreate(req, doc.Users)
		if err != nil {
			return err
		}
		user.ID = repository.NextID(doc.Users)
		doc.Users = repository.Insert(doc.Users, user)
		created = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.EventUserCreated, created.ID)
	return &created, nil
}

// Update merges the submitted fields onto the stored user and persists it.
func (s *UserService) Update(ctx context.Context, id int, req dto.UpdateUserRequest) (*domain.User, error) {
	var updated domain.User
	err := s.store.Update(func(doc *domain.Document) error {
		current, ok := repository.FindByID(doc.Users, id)
		if !ok {
			return util.NewNotFound(fmt.Sprintf("User with ID %d not found", id))
		}
		user, err := validation.UserForUpdate(req, current, doc.Users)
		if err != nil {
			return err
		}
		doc.Users = repository.Replace(doc.Users, id, user)
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.EventUserUpdated, updated.ID)
	return &updated, nil
}

// Delete removes the user with the given id. Teams referenced by the user
// are untouched; there is no cascade in either direction.
func (s *UserService) Delete(ctx context.Context, id int) error {
	err := s.store.Update(func(doc *domain.Document) error {
		if _, ok := repository.FindByID(doc.Users, id); !ok {
			return util.NewNotFound(fmt.Sprintf("User with ID %d not found", id))
		}
		doc.Users = repository.Remove(doc.Users, id)
		return nil
	})
	if err != nil {
		return err
	}
	publish(ctx, s.dispatcher, events.EventUserDeleted, id)
	return nil
}
