package handlers_fiber

import (
	"errors"
	"net/http"

	"workspace-membership/internal/api"
	"workspace-membership/internal/entities"
	"workspace-membership/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

func caller(c *fiber.Ctx) entities.Identity {
	return entities.Identity(middleware.CallerFromCtx(c))
}

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.CodeInvalidInput
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrUnauthorized):
		status = http.StatusUnauthorized
		code = api.CodeUnauthorized
		msg = "caller is not authorized"
	case errors.Is(err, entities.ErrInsufficientPermissions):
		status = http.StatusForbidden
		code = api.CodeInsufficientPermissions
		msg = "caller role is insufficient"
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrTeamNotFound),
		errors.Is(err, entities.ErrProjectNotFound),
		errors.Is(err, entities.ErrInviteNotFound):
		status = http.StatusNotFound
		code = api.CodeNotFound
		msg = "resource not found"
	case errors.Is(err, entities.ErrAlreadyExists):
		status = http.StatusConflict
		code = api.CodeAlreadyExists
		msg = "resource already exists"
	case errors.Is(err, entities.ErrInviteExpired):
		status = http.StatusConflict
		code = api.CodeInviteExpired
		msg = "invite is expired or already resolved"
	case errors.Is(err, entities.ErrInvalidInput):
		status = http.StatusBadRequest
		code = api.CodeInvalidInput
		msg = err.Error()
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: struct {
		Code    api.ErrorCode `json:"code"`
		Message string        `json:"message"`
	}{Code: code, Message: msg}}
}
