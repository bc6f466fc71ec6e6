package handlers_fiber

import (
	"net/http"

	"workspace-membership/internal/api"
	"workspace-membership/internal/entities"
	"workspace-membership/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostProjectsCreate creates a project under a user or team owner.
func (h *Handler) PostProjectsCreate(c *fiber.Ctx) error {
	var body api.CreateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidInput, "invalid body"))
	}

	project, err := h.uc.CreateProject(c.Context(), caller(c), body.Name, body.Description, mapper.FromAPIOwner(body.Owner))
	if err != nil {
		h.log.Errorw("failed to create project", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Project api.Project `json:"project"`
	}{Project: mapper.ToAPIProject(*project)})
}

// GetProjectsGet returns a project by id; hidden projects yield a null payload.
func (h *Handler) GetProjectsGet(c *fiber.Ctx) error {
	project, err := h.uc.Project(c.Context(), caller(c), c.Query("project_id"))
	if err != nil {
		return writeError(c, err)
	}

	resp := struct {
		Project *api.Project `json:"project"`
	}{}
	if project != nil {
		p := mapper.ToAPIProject(*project)
		resp.Project = &p
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// PostProjectsUpdate applies a partial project update.
func (h *Handler) PostProjectsUpdate(c *fiber.Ctx) error {
	var body api.UpdateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidInput, "invalid body"))
	}

	upd := entities.ProjectUpdate{
		Name:        body.Name,
		Description: body.Description,
	}

	project, err := h.uc.UpdateProject(c.Context(), caller(c), body.ProjectID, upd)
	if err != nil {
		h.log.Errorw("failed to update project", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Project api.Project `json:"project"`
	}{Project: mapper.ToAPIProject(*project)})
}

// PostProjectsDelete removes a project and its membership records.
func (h *Handler) PostProjectsDelete(c *fiber.Ctx) error {
	var body api.DeleteProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidInput, "invalid body"))
	}

	if err := h.uc.DeleteProject(c.Context(), caller(c), body.ProjectID); err != nil {
		h.log.Errorw("failed to delete project", "error", err.Error())
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// PostProjectsTransferOwnership points a project at a new owner.
func (h *Handler) PostProjectsTransferOwnership(c *fiber.Ctx) error {
	var body api.TransferOwnershipRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidInput, "invalid body"))
	}

	project, err := h.uc.TransferOwnership(c.Context(), caller(c), body.ProjectID, mapper.FromAPIOwner(body.NewOwner))
	if err != nil {
		h.log.Errorw("failed to transfer project ownership", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Project api.Project `json:"project"`
	}{Project: mapper.ToAPIProject(*project)})
}

// GetProjectsListForUser returns the projects a user is a member of.
func (h *Handler) GetProjectsListForUser(c *fiber.Ctx) error {
	projects, err := h.uc.UserProjects(c.Context(), caller(c), entities.Identity(c.Query("user_id")))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Projects []api.Project `json:"projects"`
	}{Projects: mapper.ToAPIProjectList(projects)})
}

// GetProjectsListForTeam returns the projects owned by a team.
func (h *Handler) GetProjectsListForTeam(c *fiber.Ctx) error {
	projects, err := h.uc.TeamProjects(c.Context(), caller(c), c.Query("team_id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Projects []api.Project `json:"projects"`
	}{Projects: mapper.ToAPIProjectList(projects)})
}
