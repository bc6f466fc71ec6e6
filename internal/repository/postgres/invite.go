package postgres

import (
	"context"
	"errors"
	"fmt"

	"workspace-membership/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	upsertInviteQuery = `
INSERT INTO invites(id, target_kind, target_ref, role, invited_by, invited_user, status, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status
`
	selectInviteQuery = `
SELECT id, target_kind, target_ref, role, invited_by, invited_user, status, expires_at, created_at
FROM invites WHERE id = $1`
	listInvitesQuery = `
SELECT id, target_kind, target_ref, role, invited_by, invited_user, status, expires_at, created_at
FROM invites ORDER BY created_at`
)

// PutInvite upserts an invite record. Only status changes after
// creation, so the conflict clause updates nothing else.
func (p *Postgres) PutInvite(ctx context.Context, invite entities.Invite) error {
	_, err := p.db.Exec(ctx, upsertInviteQuery,
		invite.ID, invite.Target.Kind.Label(), invite.Target.ID, invite.Role.Label(),
		string(invite.InvitedBy), string(invite.Invited), invite.Status.Label(),
		invite.ExpiresAt, invite.CreatedAt,
	)
	if err != nil {
		p.log.Errorw("failed to upsert invite", "error", err, "invite_id", invite.ID)
		return fmt.Errorf("upsert invite: %w", err)
	}
	return nil
}

// GetInvite fetches an invite by id.
func (p *Postgres) GetInvite(ctx context.Context, id string) (*entities.Invite, error) {
	invite, err := scanInvite(p.db.QueryRow(ctx, selectInviteQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrInviteNotFound
		}
		return nil, fmt.Errorf("get invite: %w", err)
	}
	return invite, nil
}

// ListInvites returns all invite records.
func (p *Postgres) ListInvites(ctx context.Context) ([]entities.Invite, error) {
	rows, err := p.db.Query(ctx, listInvitesQuery)
	if err != nil {
		return nil, fmt.Errorf("list invites: %w", err)
	}
	defer rows.Close()

	invites := make([]entities.Invite, 0)
	for rows.Next() {
		invite, err := scanInvite(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invite: %w", err)
		}
		invites = append(invites, *invite)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invites: %w", err)
	}
	return invites, nil
}

func scanInvite(row pgx.Row) (*entities.Invite, error) {
	var (
		i          entities.Invite
		targetKind string
		role       string
		invitedBy  string
		invited    string
		status     string
	)
	err := row.Scan(&i.ID, &targetKind, &i.Target.ID, &role, &invitedBy, &invited, &status, &i.ExpiresAt, &i.CreatedAt)
	if err != nil {
		return nil, err
	}
	i.Target.Kind = entities.TargetKindFromLabel(targetKind)
	i.Role = entities.RoleFromLabel(role)
	i.InvitedBy = entities.Identity(invitedBy)
	i.Invited = entities.Identity(invited)
	i.Status = entities.InviteStatusFromLabel(status)
	return &i, nil
}
