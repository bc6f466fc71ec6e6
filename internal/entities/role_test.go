package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoleAtLeastOrdering(t *testing.T) {
	tests := []struct {
		name     string
		actual   Role
		required Role
		ok       bool
	}{
		{"owner satisfies owner", RoleOwner, RoleOwner, true},
		{"owner satisfies manager", RoleOwner, RoleManager, true},
		{"owner satisfies collaborator", RoleOwner, RoleCollaborator, true},
		{"manager satisfies manager", RoleManager, RoleManager, true},
		{"manager satisfies collaborator", RoleManager, RoleCollaborator, true},
		{"manager does not satisfy owner", RoleManager, RoleOwner, false},
		{"collaborator does not satisfy manager", RoleCollaborator, RoleManager, false},
		{"collaborator does not satisfy owner", RoleCollaborator, RoleOwner, false},
		{"unspecified satisfies nothing", RoleUnspecified, RoleCollaborator, false},
		{"unspecified threshold authorizes nothing", RoleOwner, RoleUnspecified, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.ok, tc.actual.AtLeast(tc.required))
		})
	}
}

func TestRoleLabelRoundTrip(t *testing.T) {
	for _, r := range []Role{RoleOwner, RoleManager, RoleCollaborator} {
		require.Equal(t, r, RoleFromLabel(r.Label()))
	}
	require.Equal(t, RoleUnspecified, RoleFromLabel("admin"))
	require.Equal(t, RoleManager, RoleFromLabel(" manager "))
}
