package postgres

import (
	"context"
	"errors"
	"fmt"

	"workspace-membership/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	upsertUserQuery = `
INSERT INTO users(id, name, username, email, avatar_url, bio, theme_color, theme_dark_mode, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    username = EXCLUDED.username,
    email = EXCLUDED.email,
    avatar_url = EXCLUDED.avatar_url,
    bio = EXCLUDED.bio,
    theme_color = EXCLUDED.theme_color,
    theme_dark_mode = EXCLUDED.theme_dark_mode,
    updated_at = EXCLUDED.updated_at
`
	selectUserQuery = `
SELECT id, name, username, email, avatar_url, bio, theme_color, theme_dark_mode, created_at, updated_at
FROM users WHERE id = $1`
	listUsersQuery = `
SELECT id, name, username, email, avatar_url, bio, theme_color, theme_dark_mode, created_at, updated_at
FROM users ORDER BY created_at`
)

// PutUser upserts a user record.
func (p *Postgres) PutUser(ctx context.Context, user entities.User) error {
	var themeColor *string
	var themeDark *bool
	if user.Profile.Theme != nil {
		themeColor = &user.Profile.Theme.Color
		themeDark = &user.Profile.Theme.DarkMode
	}

	_, err := p.db.Exec(ctx, upsertUserQuery,
		string(user.ID), user.Profile.Name, user.Profile.Username,
		user.Profile.Email, user.Profile.AvatarURL, user.Profile.Bio,
		themeColor, themeDark, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		p.log.Errorw("failed to upsert user", "error", err, "user_id", user.ID)
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

// GetUser fetches a user by identity.
func (p *Postgres) GetUser(ctx context.Context, id entities.Identity) (*entities.User, error) {
	row := p.db.QueryRow(ctx, selectUserQuery, string(id))
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// ListUsers returns all user records.
func (p *Postgres) ListUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, listUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var (
		u          entities.User
		id         string
		themeColor *string
		themeDark  *bool
	)
	err := row.Scan(&id, &u.Profile.Name, &u.Profile.Username,
		&u.Profile.Email, &u.Profile.AvatarURL, &u.Profile.Bio,
		&themeColor, &themeDark, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.ID = entities.Identity(id)
	if themeColor != nil && themeDark != nil {
		u.Profile.Theme = &entities.ThemePreferences{Color: *themeColor, DarkMode: *themeDark}
	}
	return &u, nil
}
