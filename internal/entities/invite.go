package entities

import (
	"strings"
	"time"
)

// InviteStatus tracks the one-shot lifecycle of an invite. Pending is
// the only state that permits transitions; the other three are terminal.
type InviteStatus int

const (
	// InviteStatusUnspecified represents an invalid status.
	InviteStatusUnspecified InviteStatus = iota
	// InviteStatusPending indicates an invite awaiting resolution.
	InviteStatusPending
	// InviteStatusAccepted indicates the invited identity joined the target.
	InviteStatusAccepted
	// InviteStatusDeclined indicates the invited identity refused.
	InviteStatusDeclined
	// InviteStatusCancelled indicates the inviter withdrew the invite.
	InviteStatusCancelled
)

// Label returns the string label for an invite status.
func (s InviteStatus) Label() string {
	switch s {
	case InviteStatusPending:
		return "PENDING"
	case InviteStatusAccepted:
		return "ACCEPTED"
	case InviteStatusDeclined:
		return "DECLINED"
	case InviteStatusCancelled:
		return "CANCELLED"
	default:
		return "UNSPECIFIED"
	}
}

// InviteStatusFromLabel converts a status label to its value.
func InviteStatusFromLabel(label string) InviteStatus {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "PENDING":
		return InviteStatusPending
	case "ACCEPTED":
		return InviteStatusAccepted
	case "DECLINED":
		return InviteStatusDeclined
	case "CANCELLED":
		return InviteStatusCancelled
	default:
		return InviteStatusUnspecified
	}
}

// TargetKind discriminates the invite target union.
type TargetKind int

const (
	// TargetKindUnspecified represents an invalid target kind.
	TargetKindUnspecified TargetKind = iota
	// TargetKindTeam targets a team.
	TargetKindTeam
	// TargetKindProject targets a project.
	TargetKindProject
)

// Label returns the string label for a target kind.
func (k TargetKind) Label() string {
	switch k {
	case TargetKindTeam:
		return "TEAM"
	case TargetKindProject:
		return "PROJECT"
	default:
		return "UNSPECIFIED"
	}
}

// TargetKindFromLabel converts a target kind label to its value.
func TargetKindFromLabel(label string) TargetKind {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "TEAM":
		return TargetKindTeam
	case "PROJECT":
		return TargetKindProject
	default:
		return TargetKindUnspecified
	}
}

// InviteTarget names the team or project an invite grants access to.
type InviteTarget struct {
	Kind TargetKind
	ID   string
}

// TeamTarget builds a team invite target.
func TeamTarget(teamID string) InviteTarget {
	return InviteTarget{Kind: TargetKindTeam, ID: teamID}
}

// ProjectTarget builds a project invite target.
func ProjectTarget(projectID string) InviteTarget {
	return InviteTarget{Kind: TargetKindProject, ID: projectID}
}

// Invite proposes granting a role on a target to an identity.
type Invite struct {
	ID        string
	Target    InviteTarget
	Role      Role
	InvitedBy Identity
	Invited   Identity
	Status    InviteStatus
	ExpiresAt *time.Time
	CreatedAt time.Time
}

// Expired reports whether the invite carries an expiry in the past.
// Invites without an expiry never expire by time.
func (i Invite) Expired(now time.Time) bool {
	return i.ExpiresAt != nil && now.After(*i.ExpiresAt)
}
