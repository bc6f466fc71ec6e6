package memory

import (
	"context"
	"testing"
	"time"

	"workspace-membership/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStore(t *testing.T) *Memory {
	t.Helper()
	return New(zap.NewNop().Sugar())
}

func TestUserRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	_, err := store.GetUser(ctx, "alice")
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	bio := "hi"
	user := entities.User{
		ID:      "alice",
		Profile: entities.UserProfile{Name: "Alice", Username: "alice", Bio: &bio},
	}
	require.NoError(t, store.PutUser(ctx, user))

	got, err := store.GetUser(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", got.Profile.Username)

	// Fetched records must be isolated from stored state.
	*got.Profile.Bio = "changed"
	got2, err := store.GetUser(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "hi", *got2.Profile.Bio)

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestTeamMemberOrderPreserved(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	joined := time.Now().UTC()
	team := entities.Team{
		ID:      "t1",
		Name:    "backend",
		OwnerID: "alice",
		Members: []entities.Member{
			{UserID: "alice", Role: entities.RoleOwner, JoinedAt: joined},
			{UserID: "bob", Role: entities.RoleCollaborator, JoinedAt: joined},
			{UserID: "carol", Role: entities.RoleManager, JoinedAt: joined},
		},
	}
	require.NoError(t, store.PutTeam(ctx, team))

	got, err := store.GetTeam(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, []entities.Identity{"alice", "bob", "carol"}, memberIDs(got.Members))

	got.Members[0].UserID = "mallory"
	again, err := store.GetTeam(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, entities.Identity("alice"), again.Members[0].UserID)

	require.NoError(t, store.DeleteTeam(ctx, "t1"))
	require.ErrorIs(t, store.DeleteTeam(ctx, "t1"), entities.ErrTeamNotFound)
}

func TestProjectAndInviteRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	project := entities.Project{ID: "p1", Name: "site", Owner: entities.UserOwner("alice")}
	require.NoError(t, store.PutProject(ctx, project))
	got, err := store.GetProject(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, entities.OwnerKindUser, got.Owner.Kind)
	require.Empty(t, got.Members)

	_, err = store.GetInvite(ctx, "i1")
	require.ErrorIs(t, err, entities.ErrInviteNotFound)

	invite := entities.Invite{
		ID:        "i1",
		Target:    entities.ProjectTarget("p1"),
		Role:      entities.RoleCollaborator,
		InvitedBy: "alice",
		Invited:   "bob",
		Status:    entities.InviteStatusPending,
	}
	require.NoError(t, store.PutInvite(ctx, invite))

	invites, err := store.ListInvites(ctx)
	require.NoError(t, err)
	require.Len(t, invites, 1)
	require.Equal(t, entities.InviteStatusPending, invites[0].Status)
}

func memberIDs(members []entities.Member) []entities.Identity {
	ids := make([]entities.Identity, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.UserID)
	}
	return ids
}
