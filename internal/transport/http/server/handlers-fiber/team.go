package handlers_fiber

import (
	"net/http"

	"workspace-membership/internal/api"
	"workspace-membership/internal/entities"
	"workspace-membership/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostTeamsCreate creates a team with the caller enrolled as owner.
func (h *Handler) PostTeamsCreate(c *fiber.Ctx) error {
	var body api.CreateTeamRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidInput, "invalid body"))
	}

	team, err := h.uc.CreateTeam(c.Context(), caller(c), body.Name, body.Description, body.IsPublic)
	if err != nil {
		h.log.Errorw("failed to create team", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Team api.Team `json:"team"`
	}{Team: mapper.ToAPITeam(*team)})
}

// GetTeamsGet returns a team by id; hidden teams yield a null payload.
func (h *Handler) GetTeamsGet(c *fiber.Ctx) error {
	team, err := h.uc.Team(c.Context(), caller(c), c.Query("team_id"))
	if err != nil {
		return writeError(c, err)
	}

	resp := struct {
		Team *api.Team `json:"team"`
	}{}
	if team != nil {
		t := mapper.ToAPITeam(*team)
		resp.Team = &t
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// PostTeamsUpdate applies a partial team update.
func (h *Handler) PostTeamsUpdate(c *fiber.Ctx) error {
	var body api.UpdateTeamRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidInput, "invalid body"))
	}

	upd := entities.TeamUpdate{
		Name:        body.Name,
		Description: body.Description,
		IsPublic:    body.IsPublic,
	}

	team, err := h.uc.UpdateTeam(c.Context(), caller(c), body.TeamID, upd)
	if err != nil {
		h.log.Errorw("failed to update team", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Team api.Team `json:"team"`
	}{Team: mapper.ToAPITeam(*team)})
}

// PostTeamsDelete removes a team and its membership records.
func (h *Handler) PostTeamsDelete(c *fiber.Ctx) error {
	var body api.DeleteTeamRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidInput, "invalid body"))
	}

	if err := h.uc.DeleteTeam(c.Context(), caller(c), body.TeamID); err != nil {
		h.log.Errorw("failed to delete team", "error", err.Error())
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// GetTeamsListForUser returns the teams a user belongs to.
func (h *Handler) GetTeamsListForUser(c *fiber.Ctx) error {
	teams, err := h.uc.UserTeams(c.Context(), caller(c), entities.Identity(c.Query("user_id")))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Teams []api.Team `json:"teams"`
	}{Teams: mapper.ToAPITeamList(teams)})
}

// GetTeamsListPublic returns every publicly visible team.
func (h *Handler) GetTeamsListPublic(c *fiber.Ctx) error {
	teams, err := h.uc.PublicTeams(c.Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Teams []api.Team `json:"teams"`
	}{Teams: mapper.ToAPITeamList(teams)})
}
