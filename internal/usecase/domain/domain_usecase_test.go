package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"workspace-membership/internal/entities"
	"workspace-membership/internal/repository"
	"workspace-membership/internal/repository/memory"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testStart = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestUsecase builds a usecase over the in-memory backend with a
// fixed clock and sequential identifiers.
func newTestUsecase(t *testing.T) *Usecase {
	t.Helper()

	repo := memory.New(zap.NewNop().Sugar())
	uc := New(zap.NewNop().Sugar(), context.Background(), repo, time.Second)

	var seq int
	uc.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	uc.now = func() time.Time { return testStart }
	return uc
}

func mustRegister(t *testing.T, uc *Usecase, id entities.Identity, username string) {
	t.Helper()
	_, err := uc.Register(context.Background(), id, entities.UserProfile{
		Name:     "User " + username,
		Username: username,
	})
	require.NoError(t, err)
}

func mustCreateTeam(t *testing.T, uc *Usecase, owner entities.Identity, name string, public bool) *entities.Team {
	t.Helper()
	team, err := uc.CreateTeam(context.Background(), owner, name, "", public)
	require.NoError(t, err)
	return team
}

func mustCreateProject(t *testing.T, uc *Usecase, caller entities.Identity, name string, owner entities.Owner) *entities.Project {
	t.Helper()
	project, err := uc.CreateProject(context.Background(), caller, name, "", owner)
	require.NoError(t, err)
	return project
}

// enroll pushes an identity into a target through the full invite
// round-trip.
func enroll(t *testing.T, uc *Usecase, inviter, invited entities.Identity, target entities.InviteTarget, role entities.Role) {
	t.Helper()
	invite, err := uc.CreateInvite(context.Background(), inviter, target, role, invited, nil)
	require.NoError(t, err)
	require.NoError(t, uc.AcceptInvite(context.Background(), invited, invite.ID))
}

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) PutUser(ctx context.Context, user entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *repoMock) GetUser(ctx context.Context, id entities.Identity) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) ListUsers(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *repoMock) PutTeam(ctx context.Context, team entities.Team) error {
	return m.Called(ctx, team).Error(0)
}

func (m *repoMock) GetTeam(ctx context.Context, id string) (*entities.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) DeleteTeam(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) ListTeams(ctx context.Context) ([]entities.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Team), args.Error(1)
}

func (m *repoMock) PutProject(ctx context.Context, project entities.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *repoMock) GetProject(ctx context.Context, id string) (*entities.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *repoMock) DeleteProject(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) ListProjects(ctx context.Context) ([]entities.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Project), args.Error(1)
}

func (m *repoMock) PutInvite(ctx context.Context, invite entities.Invite) error {
	return m.Called(ctx, invite).Error(0)
}

func (m *repoMock) GetInvite(ctx context.Context, id string) (*entities.Invite, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Invite), args.Error(1)
}

func (m *repoMock) ListInvites(ctx context.Context) ([]entities.Invite, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Invite), args.Error(1)
}

func TestUsecase_RegisterStoreErrorPropagates(t *testing.T) {
	repo := &repoMock{}
	uc := New(zap.NewNop().Sugar(), context.Background(), repo, time.Second)

	storeErr := errors.New("connection reset")
	repo.On("GetUser", mock.Anything, entities.Identity("alice-id")).Return(nil, storeErr)

	_, err := uc.Register(context.Background(), "alice-id", entities.UserProfile{Name: "Alice", Username: "alice"})
	require.ErrorIs(t, err, storeErr)
	repo.AssertNotCalled(t, "PutUser", mock.Anything, mock.Anything)
}

func TestUsecase_UsersStoreErrorPropagates(t *testing.T) {
	repo := &repoMock{}
	uc := New(zap.NewNop().Sugar(), context.Background(), repo, time.Second)

	repo.On("GetUser", mock.Anything, entities.Identity("alice-id")).Return(&entities.User{ID: "alice-id"}, nil)
	storeErr := errors.New("connection reset")
	repo.On("ListUsers", mock.Anything).Return(nil, storeErr)

	_, err := uc.Users(context.Background(), "alice-id")
	require.ErrorIs(t, err, storeErr)
}

func TestUsecase_RegisterValidationSkipsStore(t *testing.T) {
	repo := &repoMock{}
	uc := New(zap.NewNop().Sugar(), context.Background(), repo, time.Second)

	_, err := uc.Register(context.Background(), "alice-id", entities.UserProfile{Name: "Alice", Username: ""})
	require.ErrorIs(t, err, entities.ErrInvalidInput)
	repo.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
}
