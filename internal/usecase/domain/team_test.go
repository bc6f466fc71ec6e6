package domain

import (
	"context"
	"testing"

	"workspace-membership/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestUsecase_CreateTeamEnrollsOwner(t *testing.T) {
	uc := newTestUsecase(t)
	mustRegister(t, uc, "alice-id", "alice")

	team := mustCreateTeam(t, uc, "alice-id", "core", false)

	require.Equal(t, entities.Identity("alice-id"), team.OwnerID)
	require.Len(t, team.Members, 1)
	require.Equal(t, entities.Identity("alice-id"), team.Members[0].UserID)
	require.Equal(t, entities.RoleOwner, team.Members[0].Role)
}

func TestUsecase_CreateTeamRequiresRegistration(t *testing.T) {
	uc := newTestUsecase(t)

	_, err := uc.CreateTeam(context.Background(), "stranger", "core", "", false)
	require.ErrorIs(t, err, entities.ErrUnauthorized)
}

func TestUsecase_CreateTeamRequiresName(t *testing.T) {
	uc := newTestUsecase(t)
	mustRegister(t, uc, "alice-id", "alice")

	_, err := uc.CreateTeam(context.Background(), "alice-id", "  ", "", false)
	require.ErrorIs(t, err, entities.ErrInvalidInput)
}

func TestUsecase_TeamVisibility(t *testing.T) {
	uc := newTestUsecase(t)
	mustRegister(t, uc, "alice-id", "alice")
	mustRegister(t, uc, "bob-id", "bob")

	private := mustCreateTeam(t, uc, "alice-id", "private", false)
	public := mustCreateTeam(t, uc, "alice-id", "public", true)

	// A non-member sees public teams and nothing else.
	team, err := uc.Team(context.Background(), "bob-id", private.ID)
	require.NoError(t, err)
	require.Nil(t, team)

	team, err = uc.Team(context.Background(), "bob-id", public.ID)
	require.NoError(t, err)
	require.NotNil(t, team)

	// Missing and hidden are indistinguishable.
	team, err = uc.Team(context.Background(), "bob-id", "no-such-team")
	require.NoError(t, err)
	require.Nil(t, team)
}

func TestUsecase_UpdateTeamRoleGate(t *testing.T) {
	uc := newTestUsecase(t)
	mustRegister(t, uc, "alice-id", "alice")
	mustRegister(t, uc, "bob-id", "bob")
	mustRegister(t, uc, "carol-id", "carol")

	team := mustCreateTeam(t, uc, "alice-id", "core", true)
	enroll(t, uc, "alice-id", "bob-id", entities.TeamTarget(team.ID), entities.RoleCollaborator)
	enroll(t, uc, "alice-id", "carol-id", entities.TeamTarget(team.ID), entities.RoleManager)

	name := "renamed"
	_, err := uc.UpdateTeam(context.Background(), "bob-id", team.ID, entities.TeamUpdate{Name: &name})
	require.ErrorIs(t, err, entities.ErrInsufficientPermissions)

	updated, err := uc.UpdateTeam(context.Background(), "carol-id", team.ID, entities.TeamUpdate{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "renamed", updated.Name)
}

func TestUsecase_UpdateTeamNonMember(t *testing.T) {
	uc := newTestUsecase(t)
	mustRegister(t, uc, "alice-id", "alice")
	mustRegister(t, uc, "bob-id", "bob")

	team := mustCreateTeam(t, uc, "alice-id", "core", true)

	name := "renamed"
	_, err := uc.UpdateTeam(context.Background(), "bob-id", team.ID, entities.TeamUpdate{Name: &name})
	require.ErrorIs(t, err, entities.ErrInsufficientPermissions)
}

func TestUsecase_DeleteTeamChecksOwnerField(t *testing.T) {
	uc := newTestUsecase(t)
	mustRegister(t, uc, "alice-id", "alice")
	mustRegister(t, uc, "bob-id", "bob")

	team := mustCreateTeam(t, uc, "alice-id", "core", true)
	// Even a second Owner-role member cannot delete: deletion checks
	// the recorded owner identity, not the role.
	enroll(t, uc, "alice-id", "bob-id", entities.TeamTarget(team.ID), entities.RoleOwner)

	err := uc.DeleteTeam(context.Background(), "bob-id", team.ID)
	require.ErrorIs(t, err, entities.ErrInsufficientPermissions)

	require.NoError(t, uc.DeleteTeam(context.Background(), "alice-id", team.ID))

	got, err := uc.Team(context.Background(), "alice-id", team.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestUsecase_UserTeamsSelfOnly(t *testing.T) {
	uc := newTestUsecase(t)
	mustRegister(t, uc, "alice-id", "alice")
	mustRegister(t, uc, "bob-id", "bob")

	mustCreateTeam(t, uc, "alice-id", "core", false)

	teams, err := uc.UserTeams(context.Background(), "alice-id", "alice-id")
	require.NoError(t, err)
	require.Len(t, teams, 1)

	// Querying someone else's membership yields nothing.
	teams, err = uc.UserTeams(context.Background(), "bob-id", "alice-id")
	require.NoError(t, err)
	require.Empty(t, teams)
}

func TestUsecase_PublicTeamsOpenListing(t *testing.T) {
	uc := newTestUsecase(t)
	mustRegister(t, uc, "alice-id", "alice")

	mustCreateTeam(t, uc, "alice-id", "hidden", false)
	public := mustCreateTeam(t, uc, "alice-id", "open", true)

	teams, err := uc.PublicTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 1)
	require.Equal(t, public.ID, teams[0].ID)
}
