// Package domain contains application Usecases orchestrating domain logic by user.
package domain

import (
	"context"
	"fmt"
	"strings"

	"workspace-membership/internal/entities"
)

// Register creates the user record for a caller identity. Each
// identity registers at most once; usernames are unique across the
// directory, compared case-sensitively by full scan.
func (u *Usecase) Register(ctx context.Context, caller entities.Identity, profile entities.UserProfile) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateUsername(profile.Username); err != nil {
		return nil, err
	}
	if strings.TrimSpace(profile.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", entities.ErrInvalidInput)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	ok, err := u.registered(ctx, caller)
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, entities.ErrAlreadyExists
	}

	taken, err := u.usernameTaken(ctx, profile.Username, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: username is already taken", entities.ErrInvalidInput)
	}

	now := u.now()
	user := entities.User{
		ID:        caller,
		Profile:   profile,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.repo.PutUser(ctx, user); err != nil {
		return nil, err
	}

	u.log.Infow("user registered", "user_id", caller, "username", profile.Username)
	return &user, nil
}

// User returns a user record by id. Unregistered callers get an
// absent result instead of an error.
func (u *Usecase) User(ctx context.Context, caller, userID entities.Identity) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ok, err := u.registered(ctx, caller)
	if err != nil || !ok {
		return nil, err
	}

	user, err := u.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, nil
	}
	return user, nil
}

// Users returns all registered users, or an empty list when the
// caller is not registered.
func (u *Usecase) Users(ctx context.Context, caller entities.Identity) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ok, err := u.registered(ctx, caller)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []entities.User{}, nil
	}
	return u.repo.ListUsers(ctx)
}

// UpdateProfile applies a partial profile update to the caller's own
// record. Acting on another identity fails with Unauthorized.
func (u *Usecase) UpdateProfile(ctx context.Context, caller, userID entities.Identity, upd entities.UserProfileUpdate) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if caller != userID {
		return nil, entities.ErrUnauthorized
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	user, err := u.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.Username != nil {
		if err := validateUsername(*upd.Username); err != nil {
			return nil, err
		}
		taken, err := u.usernameTaken(ctx, *upd.Username, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: username is already taken", entities.ErrInvalidInput)
		}
		user.Profile.Username = *upd.Username
	}
	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", entities.ErrInvalidInput)
		}
		user.Profile.Name = *upd.Name
	}
	if upd.Email != nil {
		user.Profile.Email = upd.Email
	}
	if upd.AvatarURL != nil {
		user.Profile.AvatarURL = upd.AvatarURL
	}
	if upd.Bio != nil {
		user.Profile.Bio = upd.Bio
	}
	if upd.Theme != nil {
		user.Profile.Theme = upd.Theme
	}
	user.UpdatedAt = u.now()

	if err := u.repo.PutUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUsername changes the caller's username after re-running the
// registration-time validation and uniqueness check.
func (u *Usecase) UpdateUsername(ctx context.Context, caller, userID entities.Identity, username string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if caller != userID {
		return nil, entities.ErrUnauthorized
	}
	if err := validateUsername(username); err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	user, err := u.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	taken, err := u.usernameTaken(ctx, username, userID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: username is already taken", entities.ErrInvalidInput)
	}

	user.Profile.Username = username
	user.UpdatedAt = u.now()
	if err := u.repo.PutUser(ctx, *user); err != nil {
		return nil, err
	}

	u.log.Infow("username updated", "user_id", userID, "username", username)
	return user, nil
}

// UpdateTheme stores the caller's theme preferences.
func (u *Usecase) UpdateTheme(ctx context.Context, caller entities.Identity, theme entities.ThemePreferences) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	u.mu.Lock()
	defer u.mu.Unlock()

	user, err := u.repo.GetUser(ctx, caller)
	if err != nil {
		return nil, err
	}

	user.Profile.Theme = &theme
	user.UpdatedAt = u.now()
	if err := u.repo.PutUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

// Registered reports whether the caller identity has a user record.
func (u *Usecase) Registered(ctx context.Context, caller entities.Identity) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.registered(ctx, caller)
}

// UsernameAvailable reports whether no user currently holds the username.
func (u *Usecase) UsernameAvailable(ctx context.Context, username string) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	taken, err := u.usernameTaken(ctx, username, "")
	if err != nil {
		return false, err
	}
	return !taken, nil
}

// usernameTaken scans the directory for a case-sensitive exact match,
// skipping the excluded identity. O(n) per call, acceptable at the
// directory sizes this service targets.
func (u *Usecase) usernameTaken(ctx context.Context, username string, exclude entities.Identity) (bool, error) {
	users, err := u.repo.ListUsers(ctx)
	if err != nil {
		return false, err
	}
	for _, existing := range users {
		if existing.ID == exclude {
			continue
		}
		if existing.Profile.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username cannot be empty", entities.ErrInvalidInput)
	}
	if len(username) > entities.MaxUsernameLen {
		return fmt.Errorf("%w: username too long (max %d characters)", entities.ErrInvalidInput, entities.MaxUsernameLen)
	}
	return nil
}
