package entities

import (
	"strings"
	"time"
)

// OwnerKind discriminates the owner union of a project.
type OwnerKind int

const (
	// OwnerKindUnspecified represents an invalid owner kind.
	OwnerKindUnspecified OwnerKind = iota
	// OwnerKindUser marks an individual identity as owner.
	OwnerKindUser
	// OwnerKindTeam marks a team as owner.
	OwnerKindTeam
)

// Label returns the string label for an owner kind.
func (k OwnerKind) Label() string {
	switch k {
	case OwnerKindUser:
		return "USER"
	case OwnerKindTeam:
		return "TEAM"
	default:
		return "UNSPECIFIED"
	}
}

// OwnerKindFromLabel converts an owner kind label to its value.
func OwnerKindFromLabel(label string) OwnerKind {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "USER":
		return OwnerKindUser
	case "TEAM":
		return OwnerKindTeam
	default:
		return OwnerKindUnspecified
	}
}

// Owner is the tagged union owning a project: an individual identity
// or a team id, depending on Kind.
type Owner struct {
	Kind   OwnerKind
	UserID Identity
	TeamID string
}

// UserOwner builds an individual owner.
func UserOwner(id Identity) Owner {
	return Owner{Kind: OwnerKindUser, UserID: id}
}

// TeamOwner builds a team owner.
func TeamOwner(teamID string) Owner {
	return Owner{Kind: OwnerKindTeam, TeamID: teamID}
}

// Project groups members around an owning user or team. Projects
// start with no members: the stated owner is not auto-enrolled.
type Project struct {
	ID          string
	Name        string
	Description string
	Owner       Owner
	Members     []Member
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasMember reports whether the identity appears in the member list.
func (p Project) HasMember(id Identity) bool {
	for _, m := range p.Members {
		if m.UserID == id {
			return true
		}
	}
	return false
}

// RoleOf returns the member's role, or RoleUnspecified when the
// identity is not a member.
func (p Project) RoleOf(id Identity) Role {
	for _, m := range p.Members {
		if m.UserID == id {
			return m.Role
		}
	}
	return RoleUnspecified
}

// ProjectUpdate carries partial project changes; nil fields are left untouched.
type ProjectUpdate struct {
	Name        *string
	Description *string
}
