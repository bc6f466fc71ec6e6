// Package domain contains application Usecases orchestrating domain logic by team.
package domain

import (
	"context"
	"fmt"
	"strings"

	"workspace-membership/internal/entities"
)

// CreateTeam creates a team and enrolls the caller as its sole Owner
// member. The team therefore always has at least one member.
func (u *Usecase) CreateTeam(ctx context.Context, caller entities.Identity, name, description string, isPublic bool) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidInput)
	}

	// Identifier generation completes before any state is read.
	teamID := u.newID()

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.requireCaller(ctx, caller); err != nil {
		return nil, err
	}

	now := u.now()
	team := entities.Team{
		ID:          teamID,
		Name:        name,
		Description: description,
		IsPublic:    isPublic,
		OwnerID:     caller,
		Members: []entities.Member{
			{UserID: caller, Role: entities.RoleOwner, JoinedAt: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.repo.PutTeam(ctx, team); err != nil {
		return nil, err
	}

	u.log.Infow("team created", "team_id", teamID, "owner", caller)
	return &team, nil
}

// Team returns a team when the caller may see it: the team is public
// or the caller is a member. Not-found and not-authorized are both
// reported as an absent result.
func (u *Usecase) Team(ctx context.Context, caller entities.Identity, teamID string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ok, err := u.registered(ctx, caller)
	if err != nil || !ok {
		return nil, err
	}
	return u.visibleTeam(ctx, caller, teamID)
}

// UpdateTeam applies partial team changes; requires role Manager or above.
func (u *Usecase) UpdateTeam(ctx context.Context, caller entities.Identity, teamID string, upd entities.TeamUpdate) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.requireCaller(ctx, caller); err != nil {
		return nil, err
	}

	team, err := u.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	role, err := memberRole(team.RoleOf(caller))
	if err != nil {
		return nil, err
	}
	if !role.AtLeast(entities.RoleManager) {
		return nil, entities.ErrInsufficientPermissions
	}

	if upd.Name != nil {
		team.Name = *upd.Name
	}
	if upd.Description != nil {
		team.Description = *upd.Description
	}
	if upd.IsPublic != nil {
		team.IsPublic = *upd.IsPublic
	}
	team.UpdatedAt = u.now()

	if err := u.repo.PutTeam(ctx, *team); err != nil {
		return nil, err
	}
	return team, nil
}

// DeleteTeam removes a team. Only the recorded owner identity may
// delete; this checks the denormalized owner field, not the Owner role.
func (u *Usecase) DeleteTeam(ctx context.Context, caller entities.Identity, teamID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.requireCaller(ctx, caller); err != nil {
		return err
	}

	team, err := u.repo.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if team.OwnerID != caller {
		return entities.ErrInsufficientPermissions
	}

	if err := u.repo.DeleteTeam(ctx, teamID); err != nil {
		return err
	}
	u.log.Infow("team deleted", "team_id", teamID, "owner", caller)
	return nil
}

// UserTeams lists the teams the identity belongs to. Callers may only
// query themselves; anything else yields an empty list.
func (u *Usecase) UserTeams(ctx context.Context, caller, userID entities.Identity) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ok, err := u.registered(ctx, caller)
	if err != nil {
		return nil, err
	}
	if !ok || caller != userID {
		return []entities.Team{}, nil
	}

	teams, err := u.repo.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	mine := make([]entities.Team, 0)
	for _, t := range teams {
		if t.HasMember(userID) {
			mine = append(mine, t)
		}
	}
	return mine, nil
}

// PublicTeams lists all public teams. The listing itself is public.
func (u *Usecase) PublicTeams(ctx context.Context) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	teams, err := u.repo.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	public := make([]entities.Team, 0)
	for _, t := range teams {
		if t.IsPublic {
			public = append(public, t)
		}
	}
	return public, nil
}

// visibleTeam applies the team visibility rule for a caller. Missing
// and hidden teams are indistinguishable to the caller.
func (u *Usecase) visibleTeam(ctx context.Context, caller entities.Identity, teamID string) (*entities.Team, error) {
	team, err := u.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, nil
	}
	if !team.IsPublic && !team.HasMember(caller) {
		return nil, nil
	}
	return team, nil
}

// addTeamMember appends a member; re-adding an existing member fails
// so an invite can never silently change a role.
func (u *Usecase) addTeamMember(ctx context.Context, teamID string, userID entities.Identity, role entities.Role) error {
	team, err := u.repo.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if team.HasMember(userID) {
		return entities.ErrAlreadyExists
	}

	now := u.now()
	team.Members = append(team.Members, entities.Member{UserID: userID, Role: role, JoinedAt: now})
	team.UpdatedAt = now
	return u.repo.PutTeam(ctx, *team)
}

// removeTeamMember drops a member by predicate retain; removing a
// non-member is not an error. updated_at is bumped unconditionally.
func (u *Usecase) removeTeamMember(ctx context.Context, teamID string, userID entities.Identity) error {
	team, err := u.repo.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}

	kept := team.Members[:0]
	for _, m := range team.Members {
		if m.UserID != userID {
			kept = append(kept, m)
		}
	}
	team.Members = kept
	team.UpdatedAt = u.now()
	return u.repo.PutTeam(ctx, *team)
}
