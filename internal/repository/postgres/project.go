package postgres

import (
	"context"
	"errors"
	"fmt"

	"workspace-membership/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	upsertProjectQuery = `
INSERT INTO projects(id, name, description, owner_kind, owner_ref, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    owner_kind = EXCLUDED.owner_kind,
    owner_ref = EXCLUDED.owner_ref,
    updated_at = EXCLUDED.updated_at
`
	deleteProjectMembersQuery = `DELETE FROM project_members WHERE project_id = $1`
	insertProjectMemberQuery  = `
INSERT INTO project_members(project_id, user_id, role, joined_at, position) VALUES ($1, $2, $3, $4, $5)`
	selectProjectQuery = `
SELECT id, name, description, owner_kind, owner_ref, created_at, updated_at FROM projects WHERE id = $1`
	selectProjectMembersQuery = `
SELECT user_id, role, joined_at FROM project_members WHERE project_id = $1 ORDER BY position`
	listProjectsQuery  = `SELECT id, name, description, owner_kind, owner_ref, created_at, updated_at FROM projects ORDER BY created_at`
	deleteProjectQuery = `DELETE FROM projects WHERE id = $1`
)

// PutProject upserts a project and replaces its member list in one transaction.
func (p *Postgres) PutProject(ctx context.Context, project entities.Project) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	kind, ref := ownerColumns(project.Owner)
	_, err = tx.Exec(ctx, upsertProjectQuery,
		project.ID, project.Name, project.Description, kind, ref,
		project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert project: %w", err)
	}

	if _, err := tx.Exec(ctx, deleteProjectMembersQuery, project.ID); err != nil {
		return fmt.Errorf("clear project members: %w", err)
	}
	for i, m := range project.Members {
		_, err := tx.Exec(ctx, insertProjectMemberQuery,
			project.ID, string(m.UserID), m.Role.Label(), m.JoinedAt, i)
		if err != nil {
			return fmt.Errorf("insert project member: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// GetProject fetches a project with its ordered member list.
func (p *Postgres) GetProject(ctx context.Context, id string) (*entities.Project, error) {
	var (
		proj entities.Project
		kind string
		ref  string
	)
	err := p.db.QueryRow(ctx, selectProjectQuery, id).Scan(
		&proj.ID, &proj.Name, &proj.Description, &kind, &ref, &proj.CreatedAt, &proj.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	proj.Owner = ownerFromColumns(kind, ref)

	members, err := p.projectMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	proj.Members = members
	return &proj, nil
}

// DeleteProject removes a project; member rows cascade.
func (p *Postgres) DeleteProject(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, deleteProjectQuery, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrProjectNotFound
	}
	return nil
}

// ListProjects returns all projects with their members.
func (p *Postgres) ListProjects(ctx context.Context) ([]entities.Project, error) {
	rows, err := p.db.Query(ctx, listProjectsQuery)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]entities.Project, 0)
	for rows.Next() {
		var (
			proj entities.Project
			kind string
			ref  string
		)
		if err := rows.Scan(&proj.ID, &proj.Name, &proj.Description, &kind, &ref, &proj.CreatedAt, &proj.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		proj.Owner = ownerFromColumns(kind, ref)
		projects = append(projects, proj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	for i := range projects {
		members, err := p.projectMembers(ctx, projects[i].ID)
		if err != nil {
			return nil, err
		}
		projects[i].Members = members
	}
	return projects, nil
}

func (p *Postgres) projectMembers(ctx context.Context, projectID string) ([]entities.Member, error) {
	rows, err := p.db.Query(ctx, selectProjectMembersQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("get project members: %w", err)
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
			return nil, fmt.Errorf("scan project member: %w", err)
		}
		m.UserID = entities.Identity(userID)
		m.Role = entities.RoleFromLabel(role)
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project members: %w", err)
	}
	return members, nil
}

func ownerColumns(owner entities.Owner) (kind string, ref string) {
	switch owner.Kind {
	case entities.OwnerKindUser:
		return owner.Kind.Label(), string(owner.UserID)
	case entities.OwnerKindTeam:
		return owner.Kind.Label(), owner.TeamID
	default:
		return entities.OwnerKindUnspecified.Label(), ""
	}
}

func ownerFromColumns(kind, ref string) entities.Owner {
	switch entities.OwnerKindFromLabel(kind) {
	case entities.OwnerKindUser:
		return entities.UserOwner(entities.Identity(ref))
	case entities.OwnerKindTeam:
		return entities.TeamOwner(ref)
	default:
		return entities.Owner{}
	}
}
