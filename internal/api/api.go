// Package api defines the transport DTOs and route table of the
// membership service HTTP surface.
package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// ErrorCode is the machine-readable error discriminator returned to clients.
type ErrorCode string

const (
	// CodeUnauthorized maps entities.ErrUnauthorized.
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// CodeInsufficientPermissions maps entities.ErrInsufficientPermissions.
	CodeInsufficientPermissions ErrorCode = "INSUFFICIENT_PERMISSIONS"
	// CodeNotFound maps the per-entity not-found errors.
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodeAlreadyExists maps entities.ErrAlreadyExists.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
	// CodeInvalidInput maps entities.ErrInvalidInput.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	// CodeInviteExpired maps entities.ErrInviteExpired.
	CodeInviteExpired ErrorCode = "INVITE_EXPIRED"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

// ThemePreferences mirrors a user's theme choice.
type ThemePreferences struct {
	Color    string `json:"color"`
	DarkMode bool   `json:"dark_mode"`
}

// UserProfile carries the mutable profile fields.
type UserProfile struct {
	Name      string            `json:"name"`
	Username  string            `json:"username"`
	Email     *string           `json:"email,omitempty"`
	AvatarURL *string           `json:"avatar_url,omitempty"`
	Bio       *string           `json:"bio,omitempty"`
	Theme     *ThemePreferences `json:"theme_preferences,omitempty"`
}

// User is the transport shape of a registered user.
type User struct {
	UserID    string      `json:"user_id"`
	Profile   UserProfile `json:"profile"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Member is the transport shape of a team or project member.
type Member struct {
	UserID   string    `json:"user_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// Team is the transport shape of a team.
type Team struct {
	TeamID      string    `json:"team_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"is_public"`
	OwnerID     string    `json:"owner_id"`
	Members     []Member  `json:"members"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Owner is the transport shape of a project owner union.
type Owner struct {
	Kind   string `json:"kind"`
	UserID string `json:"user_id,omitempty"`
	TeamID string `json:"team_id,omitempty"`
}

// Project is the transport shape of a project.
type Project struct {
	ProjectID   string    `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Owner       Owner     `json:"owner"`
	Members     []Member  `json:"members"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InviteTarget is the transport shape of an invite target union.
type InviteTarget struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// Invite is the transport shape of an invite.
type Invite struct {
	InviteID    string       `json:"invite_id"`
	Target      InviteTarget `json:"target"`
	Role        string       `json:"role"`
	InvitedBy   string       `json:"invited_by"`
	InvitedUser string       `json:"invited_user"`
	Status      string       `json:"status"`
	ExpiresAt   *time.Time   `json:"expires_at,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// UpdateProfileRequest carries a partial profile update.
type UpdateProfileRequest struct {
	UserID    string            `json:"user_id"`
	Name      *string           `json:"name,omitempty"`
	Username  *string           `json:"username,omitempty"`
	Email     *string           `json:"email,omitempty"`
	AvatarURL *string           `json:"avatar_url,omitempty"`
	Bio       *string           `json:"bio,omitempty"`
	Theme     *ThemePreferences `json:"theme_preferences,omitempty"`
}

// UpdateUsernameRequest renames a user.
type UpdateUsernameRequest struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// CreateTeamRequest creates a team.
type CreateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
}

// UpdateTeamRequest carries a partial team update.
type UpdateTeamRequest struct {
	TeamID      string  `json:"team_id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsPublic    *bool   `json:"is_public,omitempty"`
}

// DeleteTeamRequest deletes a team.
type DeleteTeamRequest struct {
	TeamID string `json:"team_id"`
}

// CreateProjectRequest creates a project.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Owner       Owner  `json:"owner"`
}

// UpdateProjectRequest carries a partial project update.
type UpdateProjectRequest struct {
	ProjectID   string  `json:"project_id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// DeleteProjectRequest deletes a project.
type DeleteProjectRequest struct {
	ProjectID string `json:"project_id"`
}

// TransferOwnershipRequest points a project at a new owner.
type TransferOwnershipRequest struct {
	ProjectID string `json:"project_id"`
	NewOwner  Owner  `json:"new_owner"`
}

// CreateInviteRequest creates a pending invite.
type CreateInviteRequest struct {
	Target      InviteTarget `json:"target"`
	Role        string       `json:"role"`
	InvitedUser string       `json:"invited_user"`
	ExpiresAt   *time.Time   `json:"expires_at,omitempty"`
}

// ResolveInviteRequest accepts, declines or cancels an invite by id.
type ResolveInviteRequest struct {
	InviteID string `json:"invite_id"`
}

// RemoveMemberRequest removes an identity from a target.
type RemoveMemberRequest struct {
	Target InviteTarget `json:"target"`
	UserID string       `json:"user_id"`
}

// ServerInterface is implemented by the fiber handler set.
type ServerInterface interface {
	PostUsersRegister(c *fiber.Ctx) error
	GetUsersGet(c *fiber.Ctx) error
	GetUsersList(c *fiber.Ctx) error
	PostUsersUpdateProfile(c *fiber.Ctx) error
	PostUsersUpdateUsername(c *fiber.Ctx) error
	PostUsersUpdateTheme(c *fiber.Ctx) error
	GetUsersRegistered(c *fiber.Ctx) error
	GetUsersUsernameAvailable(c *fiber.Ctx) error

	PostTeamsCreate(c *fiber.Ctx) error
	GetTeamsGet(c *fiber.Ctx) error
	PostTeamsUpdate(c *fiber.Ctx) error
	PostTeamsDelete(c *fiber.Ctx) error
	GetTeamsListForUser(c *fiber.Ctx) error
	GetTeamsListPublic(c *fiber.Ctx) error

	PostProjectsCreate(c *fiber.Ctx) error
	GetProjectsGet(c *fiber.Ctx) error
	PostProjectsUpdate(c *fiber.Ctx) error
	PostProjectsDelete(c *fiber.Ctx) error
	PostProjectsTransferOwnership(c *fiber.Ctx) error
	GetProjectsListForUser(c *fiber.Ctx) error
	GetProjectsListForTeam(c *fiber.Ctx) error

	PostInvitesCreate(c *fiber.Ctx) error
	PostInvitesAccept(c *fiber.Ctx) error
	PostInvitesDecline(c *fiber.Ctx) error
	PostInvitesCancel(c *fiber.Ctx) error
	PostInvitesRemoveMember(c *fiber.Ctx) error
	GetInvitesList(c *fiber.Ctx) error
	GetInvitesListPending(c *fiber.Ctx) error
}

// RegisterHandlers binds the route table to a fiber router.
func RegisterHandlers(router fiber.Router, h ServerInterface) {
	router.Post("/users/register", h.PostUsersRegister)
	router.Get("/users/get", h.GetUsersGet)
	router.Get("/users/list", h.GetUsersList)
	router.Post("/users/update-profile", h.PostUsersUpdateProfile)
	router.Post("/users/update-username", h.PostUsersUpdateUsername)
	router.Post("/users/update-theme", h.PostUsersUpdateTheme)
	router.Get("/users/registered", h.GetUsersRegistered)
	router.Get("/users/username-available", h.GetUsersUsernameAvailable)

	router.Post("/teams/create", h.PostTeamsCreate)
	router.Get("/teams/get", h.GetTeamsGet)
	router.Post("/teams/update", h.PostTeamsUpdate)
	router.Post("/teams/delete", h.PostTeamsDelete)
	router.Get("/teams/list-for-user", h.GetTeamsListForUser)
	router.Get("/teams/list-public", h.GetTeamsListPublic)

	router.Post("/projects/create", h.PostProjectsCreate)
	router.Get("/projects/get", h.GetProjectsGet)
	router.Post("/projects/update", h.PostProjectsUpdate)
	router.Post("/projects/delete", h.PostProjectsDelete)
	router.Post("/projects/transfer-ownership", h.PostProjectsTransferOwnership)
	router.Get("/projects/list-for-user", h.GetProjectsListForUser)
	router.Get("/projects/list-for-team", h.GetProjectsListForTeam)

	router.Post("/invites/create", h.PostInvitesCreate)
	router.Post("/invites/accept", h.PostInvitesAccept)
	router.Post("/invites/decline", h.PostInvitesDecline)
	router.Post("/invites/cancel", h.PostInvitesCancel)
	router.Post("/invites/remove-member", h.PostInvitesRemoveMember)
	router.Get("/invites/list", h.GetInvitesList)
	router.Get("/invites/list-pending", h.GetInvitesListPending)
}
