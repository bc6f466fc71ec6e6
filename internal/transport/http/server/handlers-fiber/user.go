package handlers_fiber

import (
	"net/http"

	"workspace-membership/internal/api"
	"workspace-membership/internal/entities"
	"workspace-membership/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostUsersRegister creates the user record for the caller identity.
func (h *Handler) PostUsersRegister(c *fiber.Ctx) error {
	var body api.UserProfile
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidInput, "invalid body"))
	}

	user, err := h.uc.Register(c.Context(), caller(c), mapper.FromAPIProfile(body))
	if err != nil {
		h.log.Errorw("failed to register user", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		User api.User `json:"user"`
	}{User: mapper.ToAPIUser(*user)})
}

// GetUsersGet returns a user by id; absent users yield a null payload.
func (h *Handler) GetUsersGet(c *fiber.Ctx) error {
	user, err := h.uc.User(c.Context(), caller(c), entities.Identity(c.Query("user_id")))
	if err != nil {
		return writeError(c, err)
	}

	resp := struct {
		User *api.User `json:"user"`
	}{}
	if user != nil {
		u := mapper.ToAPIUser(*user)
		resp.User = &u
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetUsersList returns all users visible to the caller.
func (h *Handler) GetUsersList(c *fiber.Ctx) error {
	users, err := h.uc.Users(c.Context(), caller(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Users []api.User `json:"users"`
	}{Users: mapper.ToAPIUserList(users)})
}

// PostUsersUpdateProfile applies a partial profile update.
func (h *Handler) PostUsersUpdateProfile(c *fiber.Ctx) error {
	var body api.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidInput, "invalid body"))
	}

	upd := entities.UserProfileUpdate{
		Name:      body.Name,
		Username:  body.Username,
		Email:     body.Email,
		AvatarURL: body.AvatarURL,
		Bio:       body.Bio,
	}
	if body.Theme != nil {
		upd.Theme = &entities.ThemePreferences{Color: body.Theme.Color, DarkMode: body.Theme.DarkMode}
	}

	user, err := h.uc.UpdateProfile(c.Context(), caller(c), entities.Identity(body.UserID), upd)
	if err != nil {
		h.log.Errorw("failed to update profile", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		User api.User `json:"user"`
	}{User: mapper.ToAPIUser(*user)})
}

// PostUsersUpdateUsername renames the caller's user record.
func (h *Handler) PostUsersUpdateUsername(c *fiber.Ctx) error {
	var body api.UpdateUsernameRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidInput, "invalid body"))
	}

	user, err := h.uc.UpdateUsername(c.Context(), caller(c), entities.Identity(body.UserID), body.Username)
	if err != nil {
		h.log.Errorw("failed to update username", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		User api.User `json:"user"`
	}{User: mapper.ToAPIUser(*user)})
}

// PostUsersUpdateTheme stores the caller's theme preferences.
func (h *Handler) PostUsersUpdateTheme(c *fiber.Ctx) error {
	var body api.ThemePreferences
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidInput, "invalid body"))
	}

	user, err := h.uc.UpdateTheme(c.Context(), caller(c), entities.ThemePreferences{Color: body.Color, DarkMode: body.DarkMode})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		User api.User `json:"user"`
	}{User: mapper.ToAPIUser(*user)})
}

// GetUsersRegistered reports whether the caller has a user record.
func (h *Handler) GetUsersRegistered(c *fiber.Ctx) error {
	registered, err := h.uc.Registered(c.Context(), caller(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Registered bool `json:"registered"`
	}{Registered: registered})
}

// GetUsersUsernameAvailable reports whether a username is unclaimed.
func (h *Handler) GetUsersUsernameAvailable(c *fiber.Ctx) error {
	available, err := h.uc.UsernameAvailable(c.Context(), c.Query("username"))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Available bool `json:"available"`
	}{Available: available})
}
