package persistence_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/opskit/teamdesk/internal/config"
	"github.com/opskit/teamdesk/internal/domain"
	"github.com/opskit/teamdesk/internal/persistence"
	"github.com/opskit/teamdesk/pkg/util"
)

func newTestStore(t *testing.T) (*persistence.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "operations.json")
	store, err := persistence.NewStore(config.StoreConfig{Path: path}, zap.NewNop())
	require.NoError(t, err)
	return store, path
}

func TestStoreSeedsEmptyDocument(t *testing.T) {
	store, path := newTestStore(t)

	doc, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, doc.Teams)
	require.Empty(t, doc.Tickets)
	require.Empty(t, doc.Users)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, `{"teams":[],"tickets":[],"users":[]}`, string(raw))
}

func TestStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	doc := domain.Document{
		Teams: []domain.Team{
			{ID: 1, Teamname: "QA", Members: []string{"Al", "Bo"}},
		},
		Tickets: []domain.Ticket{
			{ID: 1, Title: "Broken build", Description: "CI fails", Team: "QA", Status: "Open", Assignee: "Al", Reporter: "Bo"},
		},
		Users: []domain.User{
			{ID: 1, FirstName: "Al", LastName: "Smith", EmailID: "al@example.com", PhoneNumber: "1234567890", EmployeeID: "E1", Designation: "QA", TeamID: "1"},
		},
	}
	require.NoError(t, store.Save(doc))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, doc, loaded)
}

func TestStoreLoadMalformed(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := store.Load()
	require.Error(t, err)

	var domainErr *util.DomainError
	require.True(t, errors.As(err, &domainErr))
	require.Equal(t, "STORE_FAILURE", domainErr.Code)
	require.Equal(t, 500, domainErr.HTTPStatus)
}

func TestUpdateDoesNotPersistOnError(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Save(domain.Document{
		Teams:   []domain.Team{{ID: 1, Teamname: "QA", Members: []string{"Al"}}},
		Tickets: []domain.Ticket{},
		Users:   []domain.User{},
	}))

	boom := errors.New("validation failed")
	err := store.Update(func(doc *domain.Document) error {
		doc.Teams = nil
		return boom
	})
	require.ErrorIs(t, err, boom)

	doc, err := store.Load()
	require.NoError(t, err)
	require.Len(t, doc.Teams, 1)
	require.Equal(t, "QA", doc.Teams[0].Teamname)
}

func TestUpdatePersistsOnSuccess(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.Update(func(doc *domain.Document) error {
		doc.Teams = append(doc.Teams, domain.Team{ID: 1, Teamname: "Infra", Members: []string{"Cy"}})
		return nil
	})
	require.NoError(t, err)

	doc, err := store.Load()
	require.NoError(t, err)
	require.Len(t, doc.Teams, 1)
	require.Equal(t, "Infra", doc.Teams[0].Teamname)
}
