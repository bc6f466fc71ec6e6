// Package domain contains application Usecases orchestrating the
// membership and invitation rules.
package domain

import (
	"context"
	"errors"
	"sync"
	"time"

	"workspace-membership/internal/entities"
	"workspace-membership/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
//
// Mutating operations are serialized by a single mutex so that every
// call sees and writes a consistent snapshot of the four stores.
// Identifier generation happens before any state is read.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	timeout time.Duration

	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log,
		repo:    repo,
		timeout: timeout,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// registered reports whether the identity has a user record.
func (u *Usecase) registered(ctx context.Context, id entities.Identity) (bool, error) {
	_, err := u.repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// requireCaller is the authentication gate shared by every mutating
// operation: an unregistered caller is Unauthorized.
func (u *Usecase) requireCaller(ctx context.Context, caller entities.Identity) error {
	ok, err := u.registered(ctx, caller)
	if err != nil {
		return err
	}
	if !ok {
		return entities.ErrUnauthorized
	}
	return nil
}

// memberRole reports a member's role; absence of membership is
// reported as InsufficientPermissions, deliberately conflating
// "not a member" with "not authorized".
func memberRole(role entities.Role) (entities.Role, error) {
	if role == entities.RoleUnspecified {
		return entities.RoleUnspecified, entities.ErrInsufficientPermissions
	}
	return role, nil
}
