package repository_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opskit/teamdesk/internal/domain"
	"github.com/opskit/teamdesk/internal/repository"
)

func TestNextID(t *testing.T) {
	var teams []domain.Team
	require.Equal(t, 1, repository.NextID(teams))

	teams = append(teams, domain.Team{ID: 1}, domain.Team{ID: 2}, domain.Team{ID: 3})
	require.Equal(t, 4, repository.NextID(teams))

	// deleting an earlier entity never frees its id
	teams = repository.Remove(teams, 1)
	require.Equal(t, 4, repository.NextID(teams))
}

func TestFindByID(t *testing.T) {
	teams := []domain.Team{{ID: 1, Teamname: "QA"}, {ID: 3, Teamname: "Infra"}}

	team, ok := repository.FindByID(teams, 3)
	require.True(t, ok)
	require.Equal(t, "Infra", team.Teamname)

	_, ok = repository.FindByID(teams, 2)
	require.False(t, ok)
}

func TestReplaceKeepsSortOrder(t *testing.T) {
	tickets := []domain.Ticket{
		{ID: 1, Title: "a"},
		{ID: 2, Title: "b"},
		{ID: 3, Title: "c"},
	}

	tickets = repository.Replace(tickets, 2, domain.Ticket{ID: 2, Title: "b2"})

	require.Len(t, tickets, 3)
	for i, ticket := range tickets {
		require.Equal(t, i+1, ticket.ID)
	}
	require.Equal(t, "b2", tickets[1].Title)
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	users := []domain.User{{ID: 1}, {ID: 2}}

	out := repository.Remove(users, 9)
	require.Equal(t, users, out)

	out = repository.Remove(users, 1)
	require.Len(t, out, 1)
	require.Equal(t, 2, out[0].ID)
}
