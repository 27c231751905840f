package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cgpe/repopa/internal/core/domain"
	"github.com/cgpe/repopa/internal/core/ports"
)

// UserHandler exposes administrator-only account management.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Nombre   string `json:"nombre"   validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required,oneof=ADMIN CAPTURA CONSULTA"`
}

type changePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	RolID     string    `json:"rol_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(c *domain.Credential) userResponse {
	return userResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Email:     c.Email,
		RolID:     c.RolID,
		CreatedAt: c.CreatedAt.UTC(),
	}
}

// Create handles POST /v1/usuarios.
//
// @Summary      Create a user account
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      201   {object}  userResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/usuarios [post]
func (h *UserHandler) Create(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created, err := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
		Session:  sess,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserResponse(created))
}

// ChangePassword handles PUT /v1/usuarios/:id/password.
//
// @Summary      Change a user's password
// @Tags         usuarios
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string                 true  "User id"
// @Param        body  body  changePasswordRequest  true  "New password"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/usuarios/{id}/password [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.service.ChangePassword(c.Request().Context(), sess, c.Param("id"), req.Password); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/usuarios/:id, a soft delete via the activo flag.
//
// @Summary      Deactivate a user account
// @Tags         usuarios
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/usuarios/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.service.DeactivateUser(c.Request().Context(), sess, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/usuarios.
//
// @Summary      List active user accounts
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/usuarios [get]
func (h *UserHandler) List(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	creds, err := h.service.ListUsers(c.Request().Context(), sess)
	if err != nil {
		return err
	}

	out := make([]userResponse, len(creds))
	for i, cred := range creds {
		out[i] = toUserResponse(cred)
	}
	return c.JSON(http.StatusOK, out)
}
