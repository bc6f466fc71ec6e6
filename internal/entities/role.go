package entities

import "strings"

// Role ranks a member inside a team or project. Ranks are totally
// ordered: Owner > Manager > Collaborator.
type Role int

const (
	// RoleUnspecified represents an invalid role.
	RoleUnspecified Role = iota
	// RoleCollaborator is the lowest rank.
	RoleCollaborator
	// RoleManager may manage members and entity fields.
	RoleManager
	// RoleOwner may perform destructive and ownership actions.
	RoleOwner
)

// AtLeast reports whether the role satisfies the required threshold.
// Unspecified roles never authorize anything.
func (r Role) AtLeast(required Role) bool {
	if r == RoleUnspecified || required == RoleUnspecified {
		return false
	}
	return r >= required
}

// Valid reports whether the role is one of the three known ranks.
func (r Role) Valid() bool {
	return r == RoleCollaborator || r == RoleManager || r == RoleOwner
}

// Label returns the string label for a role.
func (r Role) Label() string {
	switch r {
	case RoleOwner:
		return "OWNER"
	case RoleManager:
		return "MANAGER"
	case RoleCollaborator:
		return "COLLABORATOR"
	default:
		return "UNSPECIFIED"
	}
}

// RoleFromLabel converts a role label to a Role value.
func RoleFromLabel(label string) Role {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "OWNER":
		return RoleOwner
	case "MANAGER":
		return RoleManager
	case "COLLABORATOR":
		return RoleCollaborator
	default:
		return RoleUnspecified
	}
}
