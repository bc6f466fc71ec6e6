package usecase

import (
	"context"
	"time"

	"workspace-membership/internal/entities"
)

// UserUsecaseInterface abstracts identity directory operations for the delivery layer.
type UserUsecaseInterface interface {
	Register(ctx context.Context, caller entities.Identity, profile entities.UserProfile) (*entities.User, error)
	User(ctx context.Context, caller, userID entities.Identity) (*entities.User, error)
	Users(ctx context.Context, caller entities.Identity) ([]entities.User, error)
	UpdateProfile(ctx context.Context, caller, userID entities.Identity, upd entities.UserProfileUpdate) (*entities.User, error)
	UpdateUsername(ctx context.Context, caller, userID entities.Identity, username string) (*entities.User, error)
	UpdateTheme(ctx context.Context, caller entities.Identity, theme entities.ThemePreferences) (*entities.User, error)
	Registered(ctx context.Context, caller entities.Identity) (bool, error)
	UsernameAvailable(ctx context.Context, username string) (bool, error)
}

// TeamUsecaseInterface abstracts team membership operations.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, caller entities.Identity, name, description string, isPublic bool) (*entities.Team, error)
	Team(ctx context.Context, caller entities.Identity, teamID string) (*entities.Team, error)
	UpdateTeam(ctx context.Context, caller entities.Identity, teamID string, upd entities.TeamUpdate) (*entities.Team, error)
	DeleteTeam(ctx context.Context, caller entities.Identity, teamID string) error
	UserTeams(ctx context.Context, caller, userID entities.Identity) ([]entities.Team, error)
	PublicTeams(ctx context.Context) ([]entities.Team, error)
}

// ProjectUsecaseInterface abstracts project membership operations.
type ProjectUsecaseInterface interface {
	CreateProject(ctx context.Context, caller entities.Identity, name, description string, owner entities.Owner) (*entities.Project, error)
	Project(ctx context.Context, caller entities.Identity, projectID string) (*entities.Project, error)
	UpdateProject(ctx context.Context, caller entities.Identity, projectID string, upd entities.ProjectUpdate) (*entities.Project, error)
	DeleteProject(ctx context.Context, caller entities.Identity, projectID string) error
	TransferOwnership(ctx context.Context, caller entities.Identity, projectID string, newOwner entities.Owner) (*entities.Project, error)
	UserProjects(ctx context.Context, caller, userID entities.Identity) ([]entities.Project, error)
	TeamProjects(ctx context.Context, caller entities.Identity, teamID string) ([]entities.Project, error)
}

// InviteUsecaseInterface abstracts the invitation lifecycle.
type InviteUsecaseInterface interface {
	CreateInvite(ctx context.Context, caller entities.Identity, target entities.InviteTarget, role entities.Role, invited entities.Identity, expiresAt *time.Time) (*entities.Invite, error)
	AcceptInvite(ctx context.Context, caller entities.Identity, inviteID string) error
	DeclineInvite(ctx context.Context, caller entities.Identity, inviteID string) error
	CancelInvite(ctx context.Context, caller entities.Identity, inviteID string) error
	RemoveMember(ctx context.Context, caller entities.Identity, target entities.InviteTarget, member entities.Identity) error
	Invites(ctx context.Context, caller, subject entities.Identity) ([]entities.Invite, error)
	PendingInvites(ctx context.Context, caller, subject entities.Identity) ([]entities.Invite, error)
}
