// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"workspace-membership/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user record storage. Records are opaque to the
// store; all membership and profile invariants live in the usecase layer.
type UserInterface interface {
	PutUser(ctx context.Context, user entities.User) error
	GetUser(ctx context.Context, id entities.Identity) (*entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
}

// TeamInterface exposes team record storage.
type TeamInterface interface {
	PutTeam(ctx context.Context, team entities.Team) error
	GetTeam(ctx context.Context, id string) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id string) error
	ListTeams(ctx context.Context) ([]entities.Team, error)
}

// ProjectInterface exposes project record storage.
type ProjectInterface interface {
	PutProject(ctx context.Context, project entities.Project) error
	GetProject(ctx context.Context, id string) (*entities.Project, error)
	DeleteProject(ctx context.Context, id string) error
	ListProjects(ctx context.Context) ([]entities.Project, error)
}

// InviteInterface exposes invite record storage.
type InviteInterface interface {
	PutInvite(ctx context.Context, invite entities.Invite) error
	GetInvite(ctx context.Context, id string) (*entities.Invite, error)
	ListInvites(ctx context.Context) ([]entities.Invite, error)
}
