package postgres

import (
	"context"
	"errors"
	"fmt"

	"workspace-membership/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	upsertTeamQuery = `
INSERT INTO teams(id, name, description, is_public, owner_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    is_public = EXCLUDED.is_public,
    owner_id = EXCLUDED.owner_id,
    updated_at = EXCLUDED.updated_at
`
	deleteTeamMembersQuery = `DELETE FROM team_members WHERE team_id = $1`
	insertTeamMemberQuery  = `
INSERT INTO team_members(team_id, user_id, role, joined_at, position) VALUES ($1, $2, $3, $4, $5)`
	selectTeamQuery = `
SELECT id, name, description, is_public, owner_id, created_at, updated_at FROM teams WHERE id = $1`
	selectTeamMembersQuery = `
SELECT user_id, role, joined_at FROM team_members WHERE team_id = $1 ORDER BY position`
	listTeamsQuery  = `SELECT id, name, description, is_public, owner_id, created_at, updated_at FROM teams ORDER BY created_at`
	deleteTeamQuery = `DELETE FROM teams WHERE id = $1`
)

// PutTeam upserts a team and replaces its member list in one transaction.
func (p *Postgres) PutTeam(ctx context.Context, team entities.Team) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, upsertTeamQuery,
		team.ID, team.Name, team.Description, team.IsPublic,
		string(team.OwnerID), team.CreatedAt, team.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert team: %w", err)
	}

	if _, err := tx.Exec(ctx, deleteTeamMembersQuery, team.ID); err != nil {
		return fmt.Errorf("clear team members: %w", err)
	}
	for i, m := range team.Members {
		_, err := tx.Exec(ctx, insertTeamMemberQuery,
			team.ID, string(m.UserID), m.Role.Label(), m.JoinedAt, i)
		if err != nil {
			return fmt.Errorf("insert team member: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// GetTeam fetches a team with its ordered member list.
func (p *Postgres) GetTeam(ctx context.Context, id string) (*entities.Team, error) {
	var t entities.Team
	var ownerID string
	err := p.db.QueryRow(ctx, selectTeamQuery, id).Scan(
		&t.ID, &t.Name, &t.Description, &t.IsPublic, &ownerID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	t.OwnerID = entities.Identity(ownerID)

	members, err := p.teamMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Members = members
	return &t, nil
}

// DeleteTeam removes a team; member rows cascade.
func (p *Postgres) DeleteTeam(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, deleteTeamQuery, id)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrTeamNotFound
	}
	return nil
}

// ListTeams returns all teams with their members.
func (p *Postgres) ListTeams(ctx context.Context) ([]entities.Team, error) {
	rows, err := p.db.Query(ctx, listTeamsQuery)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		var t entities.Team
		var ownerID string
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.IsPublic, &ownerID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		t.OwnerID = entities.Identity(ownerID)
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}

	for i := range teams {
		members, err := p.teamMembers(ctx, teams[i].ID)
		if err != nil {
			return nil, err
		}
		teams[i].Members = members
	}
	return teams, nil
}

func (p *Postgres) teamMembers(ctx context.Context, teamID string) ([]entities.Member, error) {
	rows, err := p.db.Query(ctx, selectTeamMembersQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.Member, 0)
	for rows.Next() {
		var (
			m      entities.Member
			userID string
			role   string
		)
		if err := rows.Scan(&userID, &role, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		m.UserID = entities.Identity(userID)
		m.Role = entities.RoleFromLabel(role)
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate team members: %w", err)
	}
	return members, nil
}
