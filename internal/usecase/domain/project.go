// Package domain contains application Usecases orchestrating domain logic by project.
package domain

import (
	"context"
	"fmt"
	"strings"

	"workspace-membership/internal/entities"
)

// CreateProject creates a project owned by an individual identity or
// a team. Unlike teams, projects start with no members at all: the
// stated owner is not auto-enrolled.
func (u *Usecase) CreateProject(ctx context.Context, caller entities.Identity, name, description string, owner entities.Owner) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidInput)
	}

	projectID := u.newID()

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.requireCaller(ctx, caller); err != nil {
		return nil, err
	}

	switch owner.Kind {
	case entities.OwnerKindUser:
		if owner.UserID != caller {
			return nil, entities.ErrInsufficientPermissions
		}
	case entities.OwnerKindTeam:
		team, err := u.visibleTeam(ctx, caller, owner.TeamID)
		if err != nil {
			return nil, err
		}
		if team == nil {
			return nil, entities.ErrTeamNotFound
		}
		role, err := memberRole(team.RoleOf(caller))
		if err != nil {
			return nil, err
		}
		if !role.AtLeast(entities.RoleManager) {
			return nil, entities.ErrInsufficientPermissions
		}
	default:
		return nil, fmt.Errorf("%w: owner kind is required", entities.ErrInvalidInput)
	}

	now := u.now()
	project := entities.Project{
		ID:          projectID,
		Name:        name,
		Description: description,
		Owner:       owner,
		Members:     []entities.Member{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.repo.PutProject(ctx, project); err != nil {
		return nil, err
	}

	u.log.Infow("project created", "project_id", projectID, "owner_kind", owner.Kind.Label())
	return &project, nil
}

// Project returns a project only to its members; there is no public
// project concept. Absent covers both not-found and not-authorized.
func (u *Usecase) Project(ctx context.Context, caller entities.Identity, projectID string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ok, err := u.registered(ctx, caller)
	if err != nil || !ok {
		return nil, err
	}
	return u.visibleProject(ctx, caller, projectID)
}

// UpdateProject applies partial project changes; requires role Manager or above.
func (u *Usecase) UpdateProject(ctx context.Context, caller entities.Identity, projectID string, upd entities.ProjectUpdate) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.requireCaller(ctx, caller); err != nil {
		return nil, err
	}

	project, err := u.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	role, err := memberRole(project.RoleOf(caller))
	if err != nil {
		return nil, err
	}
	if !role.AtLeast(entities.RoleManager) {
		return nil, entities.ErrInsufficientPermissions
	}

	if upd.Name != nil {
		project.Name = *upd.Name
	}
	if upd.Description != nil {
		project.Description = *upd.Description
	}
	project.UpdatedAt = u.now()

	if err := u.repo.PutProject(ctx, *project); err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes a project. Requires the Owner role in the
// member list; the owner field is not consulted here.
func (u *Usecase) DeleteProject(ctx context.Context, caller entities.Identity, projectID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.requireCaller(ctx, caller); err != nil {
		return err
	}

	project, err := u.repo.GetProject(ctx, projectID)
	if err != nil {
		return err
	}
	role, err := memberRole(project.RoleOf(caller))
	if err != nil {
		return err
	}
	if role != entities.RoleOwner {
		return entities.ErrInsufficientPermissions
	}

	if err := u.repo.DeleteProject(ctx, projectID); err != nil {
		return err
	}
	u.log.Infow("project deleted", "project_id", projectID)
	return nil
}

// TransferOwnership points the project's owner field at a new owner.
// Member roles are left untouched: the previous owner keeps its Owner
// role entry and the new owner is not added as a member. Callers that
// need the member list reconciled must do so through member operations.
func (u *Usecase) TransferOwnership(ctx context.Context, caller entities.Identity, projectID string, newOwner entities.Owner) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if newOwner.Kind == entities.OwnerKindUnspecified {
		return nil, fmt.Errorf("%w: owner kind is required", entities.ErrInvalidInput)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.requireCaller(ctx, caller); err != nil {
		return nil, err
	}

	project, err := u.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	role, err := memberRole(project.RoleOf(caller))
	if err != nil {
		return nil, err
	}
	if role != entities.RoleOwner {
		return nil, entities.ErrInsufficientPermissions
	}

	project.Owner = newOwner
	project.UpdatedAt = u.now()
	if err := u.repo.PutProject(ctx, *project); err != nil {
		return nil, err
	}

	u.log.Infow("project ownership transferred", "project_id", projectID, "owner_kind", newOwner.Kind.Label())
	return project, nil
}

// UserProjects lists the projects the identity is a member of.
// Callers may only query themselves.
func (u *Usecase) UserProjects(ctx context.Context, caller, userID entities.Identity) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ok, err := u.registered(ctx, caller)
	if err != nil {
		return nil, err
	}
	if !ok || caller != userID {
		return []entities.Project{}, nil
	}

	projects, err := u.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	mine := make([]entities.Project, 0)
	for _, p := range projects {
		if p.HasMember(userID) {
			mine = append(mine, p)
		}
	}
	return mine, nil
}

// TeamProjects lists projects owned by a team, visible only to that
// team's members; everyone else gets an empty list.
func (u *Usecase) TeamProjects(ctx context.Context, caller entities.Identity, teamID string) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ok, err := u.registered(ctx, caller)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []entities.Project{}, nil
	}

	team, err := u.repo.GetTeam(ctx, teamID)
	if err != nil || !team.HasMember(caller) {
		return []entities.Project{}, nil
	}

	projects, err := u.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	owned := make([]entities.Project, 0)
	for _, p := range projects {
		if p.Owner.Kind == entities.OwnerKindTeam && p.Owner.TeamID == teamID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

// visibleProject applies the members-only project visibility rule.
func (u *Usecase) visibleProject(ctx context.Context, caller entities.Identity, projectID string) (*entities.Project, error) {
	project, err := u.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, nil
	}
	if !project.HasMember(caller) {
		return nil, nil
	}
	return project, nil
}

// addProjectMember appends a member; re-adding an existing member fails.
func (u *Usecase) addProjectMember(ctx context.Context, projectID string, userID entities.Identity, role entities.Role) error {
	project, err := u.repo.GetProject(ctx, projectID)
	if err != nil {
		return err
	}
	if project.HasMember(userID) {
		return entities.ErrAlreadyExists
	}

	now := u.now()
	project.Members = append(project.Members, entities.Member{UserID: userID, Role: role, JoinedAt: now})
	project.UpdatedAt = now
	return u.repo.PutProject(ctx, *project)
}

// removeProjectMember drops a member by predicate retain.
func (u *Usecase) removeProjectMember(ctx context.Context, projectID string, userID entities.Identity) error {
	project, err := u.repo.GetProject(ctx, projectID)
	if err != nil {
		return err
	}

	kept := project.Members[:0]
	for _, m := range project.Members {
		if m.UserID != userID {
			kept = append(kept, m)
		}
	}
	project.Members = kept
	project.UpdatedAt = u.now()
	return u.repo.PutProject(ctx, *project)
}
