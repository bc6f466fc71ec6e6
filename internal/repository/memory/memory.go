// Package memory implements the repository against in-process maps.
//
// One RWMutex guards the four maps; every operation is a single
// critical section, so callers never observe a partially updated
// record. Entities are copied on the way in and out to keep stored
// state isolated from caller mutation.
package memory

import (
	"context"

	"sync"

	"workspace-membership/internal/entities"

	"go.uber.org/zap"
)

// Memory holds all service state in maps keyed by record id.
type Memory struct {
	log *zap.SugaredLogger

	mu       sync.RWMutex
	users    map[entities.Identity]entities.User
	teams    map[string]entities.Team
	projects map[string]entities.Project
	invites  map[string]entities.Invite
}

// New creates an empty in-memory repository.
func New(log *zap.SugaredLogger) *Memory {
	return &Memory{
		log:      log.Named("repo.memory"),
		users:    make(map[entities.Identity]entities.User),
		teams:    make(map[string]entities.Team),
		projects: make(map[string]entities.Project),
		invites:  make(map[string]entities.Invite),
	}
}

// OnStart is a no-op for the in-memory backend.
func (m *Memory) OnStart(_ context.Context) error { return nil }

// OnStop is a no-op for the in-memory backend.
func (m *Memory) OnStop(_ context.Context) error { return nil }

// PutUser upserts a user record.
func (m *Memory) PutUser(_ context.Context, user entities.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = copyUser(user)
	return nil
}

// GetUser fetches a user by identity.
func (m *Memory) GetUser(_ context.Context, id entities.Identity) (*entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	out := copyUser(user)
	return &out, nil
}

// ListUsers returns all user records.
func (m *Memory) ListUsers(_ context.Context) ([]entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	users := make([]entities.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, copyUser(u))
	}
	return users, nil
}

// PutTeam upserts a team record.
func (m *Memory) PutTeam(_ context.Context, team entities.Team) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teams[team.ID] = copyTeam(team)
	return nil
}

// GetTeam fetches a team by id.
func (m *Memory) GetTeam(_ context.Context, id string) (*entities.Team, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	team, ok := m.teams[id]
	if !ok {
		return nil, entities.ErrTeamNotFound
	}
	out := copyTeam(team)
	return &out, nil
}

// DeleteTeam removes a team record. Deleting a missing team is an error.
func (m *Memory) DeleteTeam(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.teams[id]; !ok {
		return entities.ErrTeamNotFound
	}
	delete(m.teams, id)
	return nil
}

// ListTeams returns all team records.
func (m *Memory) ListTeams(_ context.Context) ([]entities.Team, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	teams := make([]entities.Team, 0, len(m.teams))
	for _, t := range m.teams {
		teams = append(teams, copyTeam(t))
	}
	return teams, nil
}

// PutProject upserts a project record.
func (m *Memory) PutProject(_ context.Context, project entities.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.projects[project.ID] = copyProject(project)
	return nil
}

// GetProject fetches a project by id.
func (m *Memory) GetProject(_ context.Context, id string) (*entities.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	project, ok := m.projects[id]
	if !ok {
		return nil, entities.ErrProjectNotFound
	}
	out := copyProject(project)
	return &out, nil
}

// DeleteProject removes a project record.
func (m *Memory) DeleteProject(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.projects[id]; !ok {
		return entities.ErrProjectNotFound
	}
	delete(m.projects, id)
	return nil
}

// ListProjects returns all project records.
func (m *Memory) ListProjects(_ context.Context) ([]entities.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	projects := make([]entities.Project, 0, len(m.projects))
	for _, p := range m.projects {
		projects = append(projects, copyProject(p))
	}
	return projects, nil
}

// PutInvite upserts an invite record.
func (m *Memory) PutInvite(_ context.Context, invite entities.Invite) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invites[invite.ID] = copyInvite(invite)
	return nil
}

// GetInvite fetches an invite by id.
func (m *Memory) GetInvite(_ context.Context, id string) (*entities.Invite, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	invite, ok := m.invites[id]
	if !ok {
		return nil, entities.ErrInviteNotFound
	}
	out := copyInvite(invite)
	return &out, nil
}

// ListInvites returns all invite records.
func (m *Memory) ListInvites(_ context.Context) ([]entities.Invite, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	invites := make([]entities.Invite, 0, len(m.invites))
	for _, i := range m.invites {
		invites = append(invites, copyInvite(i))
	}
	return invites, nil
}

func copyUser(u entities.User) entities.User {
	u.Profile.Email = copyStringPtr(u.Profile.Email)
	u.Profile.AvatarURL = copyStringPtr(u.Profile.AvatarURL)
	u.Profile.Bio = copyStringPtr(u.Profile.Bio)
	if u.Profile.Theme != nil {
		theme := *u.Profile.Theme
		u.Profile.Theme = &theme
	}
	return u
}

func copyTeam(t entities.Team) entities.Team {
	t.Members = append([]entities.Member(nil), t.Members...)
	return t
}

func copyProject(p entities.Project) entities.Project {
	p.Members = append([]entities.Member(nil), p.Members...)
	return p
}

func copyInvite(i entities.Invite) entities.Invite {
	if i.ExpiresAt != nil {
		at := *i.ExpiresAt
		i.ExpiresAt = &at
	}
	return i
}

func copyStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
