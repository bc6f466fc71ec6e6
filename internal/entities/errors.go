// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrUnauthorized signals the caller is not registered or acts on behalf of someone else.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInsufficientPermissions signals the caller's role is too low or absent.
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	// ErrInvalidInput signals failed input validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrAlreadyExists signals a uniqueness conflict.
	ErrAlreadyExists = errors.New("already exists")
	// ErrUserNotFound signals a missing user record.
	ErrUserNotFound = errors.New("user not found")
	// ErrTeamNotFound signals a missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrProjectNotFound signals a missing project.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInviteNotFound signals a missing invite.
	ErrInviteNotFound = errors.New("invite not found")
	// ErrInviteExpired signals an invite past its expiry or already resolved.
	ErrInviteExpired = errors.New("invite expired")
)
