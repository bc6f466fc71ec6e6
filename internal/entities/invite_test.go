package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInviteExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.False(t, Invite{}.Expired(now), "no expiry never expires")

	past := now.Add(-time.Hour)
	require.True(t, Invite{ExpiresAt: &past}.Expired(now))

	future := now.Add(time.Hour)
	require.False(t, Invite{ExpiresAt: &future}.Expired(now))

	exact := now
	require.False(t, Invite{ExpiresAt: &exact}.Expired(now), "expiry is exclusive")
}

func TestMembershipLookup(t *testing.T) {
	team := Team{Members: []Member{
		{UserID: "alice", Role: RoleOwner},
		{UserID: "bob", Role: RoleCollaborator},
	}}

	require.True(t, team.HasMember("alice"))
	require.False(t, team.HasMember("carol"))
	require.Equal(t, RoleOwner, team.RoleOf("alice"))
	require.Equal(t, RoleUnspecified, team.RoleOf("carol"))

	project := Project{Members: []Member{{UserID: "bob", Role: RoleManager}}}
	require.Equal(t, RoleManager, project.RoleOf("bob"))
	require.False(t, project.HasMember("alice"))
}
