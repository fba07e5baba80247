package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/dto"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/service"
	pkgerrors "github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/pkg/errors"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/pkg/response"
)

// UserHandler serves user management endpoints.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates the UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 20001, "user not found")
	case errors.Is(err, service.ErrEmailTaken):
		response.Conflict(c, 20002, "email already registered")
	case errors.Is(err, service.ErrRoleNotFound):
		response.NotFound(c, 21001, "role not found")
	case errors.Is(err, pkgerrors.ErrEmptyUpdate):
		response.BadRequest(c, 10001, "no fields provided for update")
	default:
		response.InternalError(c)
	}
}

// Create creates a user.
// POST /api/v1/users
func (h *UserHandler) Create(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	user, err := h.userSvc.Create(c.Request.Context(), actorID, &req)
	if err != nil {
		handleUserError(c, err)
		return
	}
	response.Created(c, user)
}

// Get returns one user.
// GET /api/v1/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleUserError(c, err)
		return
	}
	response.OK(c, user)
}

// Update applies a partial update to a user.
// PATCH /api/v1/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	user, err := h.userSvc.Update(c.Request.Context(), actorID, c.Param("id"), &req)
	if err != nil {
		handleUserError(c, err)
		return
	}
	response.OK(c, user)
}

// Delete soft-deletes a user.
// DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.userSvc.Delete(c.Request.Context(), actorID, c.Param("id")); err != nil {
		handleUserError(c, err)
		return
	}
	response.OK(c, nil)
}

// List returns a user page.
// GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	users, total, err := h.userSvc.List(c.Request.Context(), &req)
	if err != nil {
		handleUserError(c, err)
		return
	}
	response.OKPage(c, users, total, req.Page, req.PageSize)
}

// AssignRole attaches a role to a user.
// POST /api/v1/users/:id/roles
func (h *UserHandler) AssignRole(c *gin.Context) {
	var req dto.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	if err := h.userSvc.AssignRole(c.Request.Context(), c.Param("id"), req.RoleID); err != nil {
		handleUserError(c, err)
		return
	}
	response.OK(c, nil)
}

// RemoveRole detaches a role from a user.
// DELETE /api/v1/users/:id/roles/:roleID
func (h *UserHandler) RemoveRole(c *gin.Context) {
	if err := h.userSvc.RemoveRole(c.Request.Context(), c.Param("id"), c.Param("roleID")); err != nil {
		handleUserError(c, err)
		return
	}
	response.OK(c, nil)
}
