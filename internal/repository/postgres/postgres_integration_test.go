package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"workspace-membership/config"
	"workspace-membership/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	email := "alice@example.com"

	user := entities.User{
		ID: "alice-id",
		Profile: entities.UserProfile{
			Name:     "Alice",
			Username: "alice",
			Email:    &email,
			Theme:    &entities.ThemePreferences{Color: "green", DarkMode: true},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.PutUser(ctx, user))
	require.NoError(t, repo.PutUser(ctx, entities.User{
		ID:        "bob-id",
		Profile:   entities.UserProfile{Name: "Bob", Username: "bob"},
		CreatedAt: now,
		UpdatedAt: now,
	}))

	fetched, err := repo.GetUser(ctx, "alice-id")
	require.NoError(t, err)
	require.Equal(t, "alice", fetched.Profile.Username)
	require.NotNil(t, fetched.Profile.Email)
	require.Equal(t, email, *fetched.Profile.Email)
	require.NotNil(t, fetched.Profile.Theme)
	require.True(t, fetched.Profile.Theme.DarkMode)

	_, err = repo.GetUser(ctx, "ghost-id")
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	// Upsert overwrites the record in place.
	user.Profile.Username = "alice2"
	user.UpdatedAt = now.Add(time.Minute)
	require.NoError(t, repo.PutUser(ctx, user))
	fetched, err = repo.GetUser(ctx, "alice-id")
	require.NoError(t, err)
	require.Equal(t, "alice2", fetched.Profile.Username)
}

func TestTeamRoundTripIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, id := range []entities.Identity{"alice-id", "bob-id", "carol-id"} {
		require.NoError(t, repo.PutUser(ctx, entities.User{
			ID:        id,
			Profile:   entities.UserProfile{Name: string(id), Username: string(id)[:5]},
			CreatedAt: now,
			UpdatedAt: now,
		}))
	}

	team := entities.Team{
		ID:       "team-1",
		Name:     "core",
		IsPublic: true,
		OwnerID:  "alice-id",
		Members: []entities.Member{
			{UserID: "alice-id", Role: entities.RoleOwner, JoinedAt: now},
			{UserID: "bob-id", Role: entities.RoleManager, JoinedAt: now},
			{UserID: "carol-id", Role: entities.RoleCollaborator, JoinedAt: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.PutTeam(ctx, team))

	fetched, err := repo.GetTeam(ctx, "team-1")
	require.NoError(t, err)
	require.Equal(t, entities.Identity("alice-id"), fetched.OwnerID)
	require.Len(t, fetched.Members, 3)
	// Member order survives the round trip.
	require.Equal(t, entities.Identity("alice-id"), fetched.Members[0].UserID)
	require.Equal(t, entities.Identity("carol-id"), fetched.Members[2].UserID)
	require.Equal(t, entities.RoleManager, fetched.RoleOf("bob-id"))

	// Member rows are replaced, not merged.
	team.Members = team.Members[:1]
	require.NoError(t, repo.PutTeam(ctx, team))
	fetched, err = repo.GetTeam(ctx, "team-1")
	require.NoError(t, err)
	require.Len(t, fetched.Members, 1)

	teams, err := repo.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 1)

	require.NoError(t, repo.DeleteTeam(ctx, "team-1"))
	_, err = repo.GetTeam(ctx, "team-1")
	require.ErrorIs(t, err, entities.ErrTeamNotFound)
}

func TestProjectAndInviteIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, id := range []entities.Identity{"alice-id", "bob-id"} {
		require.NoError(t, repo.PutUser(ctx, entities.User{
			ID:        id,
			Profile:   entities.UserProfile{Name: string(id), Username: string(id)[:5]},
			CreatedAt: now,
			UpdatedAt: now,
		}))
	}

	project := entities.Project{
		ID:        "proj-1",
		Name:      "site",
		Owner:     entities.UserOwner("alice-id"),
		Members:   []entities.Member{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.PutProject(ctx, project))

	fetched, err := repo.GetProject(ctx, "proj-1")
	require.NoError(t, err)
	require.Equal(t, entities.OwnerKindUser, fetched.Owner.Kind)
	require.Equal(t, entities.Identity("alice-id"), fetched.Owner.UserID)
	require.Empty(t, fetched.Members)

	project.Owner = entities.TeamOwner("team-9")
	project.Members = []entities.Member{{UserID: "bob-id", Role: entities.RoleCollaborator, JoinedAt: now}}
	require.NoError(t, repo.PutProject(ctx, project))
	fetched, err = repo.GetProject(ctx, "proj-1")
	require.NoError(t, err)
	require.Equal(t, entities.OwnerKindTeam, fetched.Owner.Kind)
	require.Equal(t, "team-9", fetched.Owner.TeamID)
	require.Len(t, fetched.Members, 1)

	expires := now.Add(48 * time.Hour)
	invite := entities.Invite{
		ID:        "inv-1",
		Target:    entities.ProjectTarget("proj-1"),
		Role:      entities.RoleManager,
		InvitedBy: "alice-id",
		Invited:   "bob-id",
		Status:    entities.InviteStatusPending,
		ExpiresAt: &expires,
		CreatedAt: now,
	}
	require.NoError(t, repo.PutInvite(ctx, invite))

	gotInvite, err := repo.GetInvite(ctx, "inv-1")
	require.NoError(t, err)
	require.Equal(t, entities.TargetKindProject, gotInvite.Target.Kind)
	require.Equal(t, entities.InviteStatusPending, gotInvite.Status)
	require.NotNil(t, gotInvite.ExpiresAt)
	require.True(t, gotInvite.ExpiresAt.Equal(expires))

	invite.Status = entities.InviteStatusAccepted
	require.NoError(t, repo.PutInvite(ctx, invite))
	gotInvite, err = repo.GetInvite(ctx, "inv-1")
	require.NoError(t, err)
	require.Equal(t, entities.InviteStatusAccepted, gotInvite.Status)

	invites, err := repo.ListInvites(ctx)
	require.NoError(t, err)
	require.Len(t, invites, 1)

	require.NoError(t, repo.DeleteProject(ctx, "proj-1"))
	_, err = repo.GetProject(ctx, "proj-1")
	require.ErrorIs(t, err, entities.ErrProjectNotFound)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=workspace_membership_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server:     config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		Repository: config.RepositoryConfig{Backend: "postgres"},
		HTTP:       config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "workspace_membership_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=workspace_membership_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
