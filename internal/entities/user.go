package entities

import "time"

// Identity is the opaque, comparable token of an authenticated caller.
// The hosting runtime resolves credentials to an Identity before any
// call reaches this service.
type Identity string

// MaxUsernameLen caps usernames at registration and update time.
const MaxUsernameLen = 12

// ThemePreferences stores a user's UI theme choice.
type ThemePreferences struct {
	Color    string
	DarkMode bool
}

// UserProfile holds the mutable profile fields of a user.
type UserProfile struct {
	Name      string
	Username  string
	Email     *string
	AvatarURL *string
	Bio       *string
	Theme     *ThemePreferences
}

// User is a registered identity with its profile.
type User struct {
	ID        Identity
	Profile   UserProfile
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserProfileUpdate carries partial profile changes; nil fields are
// left untouched.
type UserProfileUpdate struct {
	Name      *string
	Username  *string
	Email     *string
	AvatarURL *string
	Bio       *string
	Theme     *ThemePreferences
}
