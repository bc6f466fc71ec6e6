// Package domain contains application Usecases orchestrating the invite lifecycle.
package domain

import (
	"context"
	"fmt"
	"time"

	"workspace-membership/internal/entities"
)

// CreateInvite records a pending invite from the caller to another
// registered identity. Invite creation is not permission-gated
// against the target: membership rules are enforced at acceptance.
// A nil expiresAt means the invite never expires.
func (u *Usecase) CreateInvite(ctx context.Context, caller entities.Identity, target entities.InviteTarget, role entities.Role, invited entities.Identity, expiresAt *time.Time) (*entities.Invite, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if target.Kind == entities.TargetKindUnspecified || target.ID == "" {
		return nil, fmt.Errorf("%w: invite target is required", entities.ErrInvalidInput)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: role is required", entities.ErrInvalidInput)
	}

	inviteID := u.newID()

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.requireCaller(ctx, caller); err != nil {
		return nil, err
	}
	ok, err := u.registered(ctx, invited)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, entities.ErrUserNotFound
	}

	invite := entities.Invite{
		ID:        inviteID,
		Target:    target,
		Role:      role,
		InvitedBy: caller,
		Invited:   invited,
		Status:    entities.InviteStatusPending,
		ExpiresAt: expiresAt,
		CreatedAt: u.now(),
	}
	if err := u.repo.PutInvite(ctx, invite); err != nil {
		return nil, err
	}

	u.log.Infow("invite created", "invite_id", inviteID, "target", target.Kind.Label(), "invited", invited)
	return &invite, nil
}

// AcceptInvite resolves a pending invite by enrolling the invited
// identity in the target. The membership mutation runs before the
// status flip: when the add fails the invite remains Pending.
func (u *Usecase) AcceptInvite(ctx context.Context, caller entities.Identity, inviteID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.requireCaller(ctx, caller); err != nil {
		return err
	}

	invite, err := u.repo.GetInvite(ctx, inviteID)
	if err != nil {
		return err
	}
	if invite.Invited != caller {
		return entities.ErrUnauthorized
	}
	if invite.Status != entities.InviteStatusPending {
		return entities.ErrInviteExpired
	}
	if invite.Expired(u.now()) {
		return entities.ErrInviteExpired
	}

	switch invite.Target.Kind {
	case entities.TargetKindTeam:
		if err := u.addTeamMember(ctx, invite.Target.ID, caller, invite.Role); err != nil {
			return err
		}
	case entities.TargetKindProject:
		if err := u.addProjectMember(ctx, invite.Target.ID, caller, invite.Role); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: invite target is invalid", entities.ErrInvalidInput)
	}

	invite.Status = entities.InviteStatusAccepted
	if err := u.repo.PutInvite(ctx, *invite); err != nil {
		return err
	}

	u.log.Infow("invite accepted", "invite_id", inviteID, "user_id", caller)
	return nil
}

// DeclineInvite marks a pending invite declined. Only the invited
// identity may decline.
func (u *Usecase) DeclineInvite(ctx context.Context, caller entities.Identity, inviteID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.requireCaller(ctx, caller); err != nil {
		return err
	}

	invite, err := u.repo.GetInvite(ctx, inviteID)
	if err != nil {
		return err
	}
	if invite.Invited != caller {
		return entities.ErrUnauthorized
	}
	if invite.Status != entities.InviteStatusPending {
		return entities.ErrInviteExpired
	}

	invite.Status = entities.InviteStatusDeclined
	return u.repo.PutInvite(ctx, *invite)
}

// CancelInvite marks a pending invite cancelled. Only the original
// inviter may cancel.
func (u *Usecase) CancelInvite(ctx context.Context, caller entities.Identity, inviteID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.requireCaller(ctx, caller); err != nil {
		return err
	}

	invite, err := u.repo.GetInvite(ctx, inviteID)
	if err != nil {
		return err
	}
	if invite.InvitedBy != caller {
		return entities.ErrUnauthorized
	}
	if invite.Status != entities.InviteStatusPending {
		return entities.ErrInviteExpired
	}

	invite.Status = entities.InviteStatusCancelled
	return u.repo.PutInvite(ctx, *invite)
}

// RemoveMember removes an identity from a team or project. The
// caller must hold at least the Manager role on the target. Removing
// a non-member succeeds: removal is a predicate retain, not a lookup.
func (u *Usecase) RemoveMember(ctx context.Context, caller entities.Identity, target entities.InviteTarget, member entities.Identity) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.requireCaller(ctx, caller); err != nil {
		return err
	}

	switch target.Kind {
	case entities.TargetKindTeam:
		team, err := u.visibleTeam(ctx, caller, target.ID)
		if err != nil {
			return err
		}
		if team == nil {
			return entities.ErrTeamNotFound
		}
		role, err := memberRole(team.RoleOf(caller))
		if err != nil {
			return err
		}
		if !role.AtLeast(entities.RoleManager) {
			return entities.ErrInsufficientPermissions
		}
		return u.removeTeamMember(ctx, target.ID, member)
	case entities.TargetKindProject:
		project, err := u.visibleProject(ctx, caller, target.ID)
		if err != nil {
			return err
		}
		if project == nil {
			return entities.ErrProjectNotFound
		}
		role, err := memberRole(project.RoleOf(caller))
		if err != nil {
			return err
		}
		if !role.AtLeast(entities.RoleManager) {
			return entities.ErrInsufficientPermissions
		}
		return u.removeProjectMember(ctx, target.ID, member)
	default:
		return fmt.Errorf("%w: target is required", entities.ErrInvalidInput)
	}
}

// Invites lists invites the subject is a party to, as inviter or
// invited. Callers may only query themselves.
func (u *Usecase) Invites(ctx context.Context, caller, subject entities.Identity) ([]entities.Invite, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ok, err := u.registered(ctx, caller)
	if err != nil {
		return nil, err
	}
	if !ok || caller != subject {
		return []entities.Invite{}, nil
	}

	all, err := u.repo.ListInvites(ctx)
	if err != nil {
		return nil, err
	}
	invites := make([]entities.Invite, 0)
	for _, i := range all {
		if i.InvitedBy == subject || i.Invited == subject {
			invites = append(invites, i)
		}
	}
	return invites, nil
}

// PendingInvites lists pending invites addressed to the subject.
func (u *Usecase) PendingInvites(ctx context.Context, caller, subject entities.Identity) ([]entities.Invite, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ok, err := u.registered(ctx, caller)
	if err != nil {
		return nil, err
	}
	if !ok || caller != subject {
		return []entities.Invite{}, nil
	}

	all, err := u.repo.ListInvites(ctx)
	if err != nil {
		return nil, err
	}
	invites := make([]entities.Invite, 0)
	for _, i := range all {
		if i.Status == entities.InviteStatusPending && i.Invited == subject {
			invites = append(invites, i)
		}
	}
	return invites, nil
}
