package entities

import "time"

// Member records that an identity belongs to a team or project with a
// role. Member order is insertion order and is preserved by storage.
type Member struct {
	UserID   Identity
	Role     Role
	JoinedAt time.Time
}

// Team aggregates members under a name with a visibility flag.
// OwnerID denormalizes the creator; delete authorization checks this
// field, not the Owner role in Members.
type Team struct {
	ID          string
	Name        string
	Description string
	IsPublic    bool
	OwnerID     Identity
	Members     []Member
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasMember reports whether the identity appears in the member list.
func (t Team) HasMember(id Identity) bool {
	for _, m := range t.Members {
		if m.UserID == id {
			return true
		}
	}
	return false
}

// RoleOf returns the member's role, or RoleUnspecified when the
// identity is not a member.
func (t Team) RoleOf(id Identity) Role {
	for _, m := range t.Members {
		if m.UserID == id {
			return m.Role
		}
	}
	return RoleUnspecified
}

// TeamUpdate carries partial team changes; nil fields are left untouched.
type TeamUpdate struct {
	Name        *string
	Description *string
	IsPublic    *bool
}
