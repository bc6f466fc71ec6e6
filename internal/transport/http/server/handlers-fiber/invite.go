package handlers_fiber

import (
	"net/http"

	"workspace-membership/internal/api"
	"workspace-membership/internal/entities"
	"workspace-membership/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostInvitesCreate records a pending invite for a team or project.
func (h *Handler) PostInvitesCreate(c *fiber.Ctx) error {
	var body api.CreateInviteRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidInput, "invalid body"))
	}

	invite, err := h.uc.CreateInvite(
		c.Context(),
		caller(c),
		mapper.FromAPITarget(body.Target),
		entities.RoleFromLabel(body.Role),
		entities.Identity(body.InvitedUser),
		body.ExpiresAt,
	)
	if err != nil {
		h.log.Errorw("failed to create invite", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Invite api.Invite `json:"invite"`
	}{Invite: mapper.ToAPIInvite(*invite)})
}

// PostInvitesAccept enrolls the invited user and settles the invite.
func (h *Handler) PostInvitesAccept(c *fiber.Ctx) error {
	var body api.ResolveInviteRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidInput, "invalid body"))
	}

	if err := h.uc.AcceptInvite(c.Context(), caller(c), body.InviteID); err != nil {
		h.log.Errorw("failed to accept invite", "error", err.Error())
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// PostInvitesDecline settles an invite without enrolling anyone.
func (h *Handler) PostInvitesDecline(c *fiber.Ctx) error {
	var body api.ResolveInviteRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidInput, "invalid body"))
	}

	if err := h.uc.DeclineInvite(c.Context(), caller(c), body.InviteID); err != nil {
		h.log.Errorw("failed to decline invite", "error", err.Error())
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// PostInvitesCancel withdraws an invite on behalf of its sender.
func (h *Handler) PostInvitesCancel(c *fiber.Ctx) error {
	var body api.ResolveInviteRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidInput, "invalid body"))
	}

	if err := h.uc.CancelInvite(c.Context(), caller(c), body.InviteID); err != nil {
		h.log.Errorw("failed to cancel invite", "error", err.Error())
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// PostInvitesRemoveMember removes an identity from a team or project.
func (h *Handler) PostInvitesRemoveMember(c *fiber.Ctx) error {
	var body api.RemoveMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidInput, "invalid body"))
	}

	if err := h.uc.RemoveMember(c.Context(), caller(c), mapper.FromAPITarget(body.Target), entities.Identity(body.UserID)); err != nil {
		h.log.Errorw("failed to remove member", "error", err.Error())
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// GetInvitesList returns every invite a user is party to.
func (h *Handler) GetInvitesList(c *fiber.Ctx) error {
	invites, err := h.uc.Invites(c.Context(), caller(c), entities.Identity(c.Query("user_id")))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Invites []api.Invite `json:"invites"`
	}{Invites: mapper.ToAPIInviteList(invites)})
}

// GetInvitesListPending returns the open invites addressed to a user.
func (h *Handler) GetInvitesListPending(c *fiber.Ctx) error {
	invites, err := h.uc.PendingInvites(c.Context(), caller(c), entities.Identity(c.Query("user_id")))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Invites []api.Invite `json:"invites"`
	}{Invites: mapper.ToAPIInviteList(invites)})
}
