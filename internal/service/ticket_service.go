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

// TicketService coordinates ticket CRUD against the shared document.
type TicketService struct {
	store      *persistence.Store
	dispatcher events.Dispatcher
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	Store      *persistence.Store
	Dispatcher events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{store: deps.Store, dispatcher: deps.Dispatcher}
}

// List returns all tickets.
func (s *TicketService) List(ctx context.Context) ([]domain.Ticket, error) {
	var tickets []domain.Ticket
	err := s.store.View(func(doc domain.Document) error {
		tickets = doc.Tickets
		return nil
	})
	return tickets, err
}

// Get returns the ticket with the given id.
func (s *TicketService) Get(ctx context.Context, id int) (*domain.Ticket, error) {
	var ticket domain.Ticket
	err := s.store.View(func(doc domain.Document) error {
		found, ok := repository.FindByID(doc.Tickets, id)
		if !ok {
			return util.NewNotFound(fmt.Sprintf("Ticket with ID %d not found", id))
		}
		ticket = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Create validates the payload, assigns the next id and persists the ticket.
func (s *TicketService) Create(ctx context.Context, req dto.CreateTicketRequest) (*domain.Ticket, error) {
	var created domain.Ticket
	err := s.store.Update(func(doc *domain.Document) error {
		ticket, err := validation.TicketForCreate(req)
		if err != nil {
			return err
		}
		ticket.ID = repository.NextID(doc.Tickets)
		doc.Tickets = repository.Insert(doc.Tickets, ticket)
		created = ticket
		return nil
	})
	if err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.EventTicketCreated, created.ID)
	return &created, nil
}

// Update merges the submitted fields onto the stored ticket and persists it.
func (s *TicketService) Update(ctx context.Context, id int, req dto.UpdateTicketRequest) (*domain.Ticket, error) {
	var updated domain.Ticket
	err := s.store.Update(func(doc *domain.Document) error {
		current, ok := repository.FindByID(doc.Tickets, id)
		if !ok {
			return util.NewNotFound(fmt.Sprintf("Ticket with ID %d not found", id))
		}
		ticket, err := validation.TicketForUpdate(req, current)
		if err != nil {
			return err
		}
		doc.Tickets = repository.Replace(doc.Tickets, id, ticket)
		updated = ticket
		return nil
	})
	if err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.EventTicketUpdated, updated.ID)
	return &updated, nil
}

// Delete removes the ticket with the given id.
func (s *TicketService) Delete(ctx context.Context, id int) error {
	err := s.store.Update(func(doc *domain.Document) error {
		if _, ok := repository.FindByID(doc.Tickets, id); !ok {
			return util.NewNotFound(fmt.Sprintf("Ticket with ID %d not found", id))
		}
		doc.Tickets = repository.Remove(doc.Tickets, id)
		return nil
	})
	if err != nil {
		return err
	}
	publish(ctx, s.dispatcher, events.EventTicketDeleted, id)
	return nil
}
