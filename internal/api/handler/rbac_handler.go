package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/dto"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/service"
	pkgerrors "github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/pkg/errors"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/pkg/response"
)

// RoleHandler serves role management endpoints.
type RoleHandler struct {
	roleSvc service.RoleService
}

// NewRoleHandler creates the RoleHandler.
func NewRoleHandler(roleSvc service.RoleService) *RoleHandler {
	return &RoleHandler{roleSvc: roleSvc}
}

func handleRoleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRoleNotFound):
		response.NotFound(c, 21001, "role not found")
	case errors.Is(err, service.ErrRoleNameTaken):
		response.Conflict(c, 21002, "role name already in use")
	case errors.Is(err, service.ErrPermissionNotFound):
		response.NotFound(c, 21003, "permission not found")
	case errors.Is(err, pkgerrors.ErrEmptyUpdate):
		response.BadRequest(c, 10001, "no fields provided for update")
	default:
		response.InternalError(c)
	}
}

// Create creates a role.
// POST /api/v1/roles
func (h *RoleHandler) Create(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	role, err := h.roleSvc.Create(c.Request.Context(), actorID, &req)
	if err != nil {
		handleRoleError(c, err)
		return
	}
	response.Created(c, role)
}

// Get returns one role with its permissions.
// GET /api/v1/roles/:id
func (h *RoleHandler) Get(c *gin.Context) {
	role, err := h.roleSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleRoleError(c, err)
		return
	}
	response.OK(c, role)
}

// Update applies a partial update to a role.
// PATCH /api/v1/roles/:id
func (h *RoleHandler) Update(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	role, err := h.roleSvc.Update(c.Request.Context(), actorID, c.Param("id"), &req)
	if err != nil {
		handleRoleError(c, err)
		return
	}
	response.OK(c, role)
}

// Delete soft-deletes a role.
// DELETE /api/v1/roles/:id
func (h *RoleHandler) Delete(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.roleSvc.Delete(c.Request.Context(), actorID, c.Param("id")); err != nil {
		handleRoleError(c, err)
		return
	}
	response.OK(c, nil)
}

// List returns a role page.
// GET /api/v1/roles
func (h *RoleHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	roles, total, err := h.roleSvc.List(c.Request.Context(), &req)
	if err != nil {
		handleRoleError(c, err)
		return
	}
	response.OKPage(c, roles, total, req.Page, req.PageSize)
}

// GrantPermission attaches a permission to a role.
// POST /api/v1/roles/:id/permissions
func (h *RoleHandler) GrantPermission(c *gin.Context) {
	var req dto.GrantPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	if err := h.roleSvc.GrantPermission(c.Request.Context(), c.Param("id"), req.PermissionID); err != nil {
		handleRoleError(c, err)
		return
	}
	response.OK(c, nil)
}

// RevokePermission detaches a permission from a role.
// DELETE /api/v1/roles/:id/permissions/:permissionID
func (h *RoleHandler) RevokePermission(c *gin.Context) {
	if err := h.roleSvc.RevokePermission(c.Request.Context(), c.Param("id"), c.Param("permissionID")); err != nil {
		handleRoleError(c, err)
		return
	}
	response.OK(c, nil)
}

// ── Permission handler ──

// PermissionHandler serves permission catalog endpoints.
type PermissionHandler struct {
	permissionSvc service.PermissionService
}

// NewPermissionHandler creates the PermissionHandler.
func NewPermissionHandler(permissionSvc service.PermissionService) *PermissionHandler {
	return &PermissionHandler{permissionSvc: permissionSvc}
}

func handlePermissionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionNotFound):
		response.NotFound(c, 21003, "permission not found")
	case errors.Is(err, service.ErrPermissionNameTaken):
		response.Conflict(c, 21004, "permission name already in use")
	case errors.Is(err, pkgerrors.ErrEmptyUpdate):
		response.BadRequest(c, 10001, "no fields provided for update")
	default:
		response.InternalError(c)
	}
}

// Create creates a permission.
// POST /api/v1/permissions
func (h *PermissionHandler) Create(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	permission, err := h.permissionSvc.Create(c.Request.Context(), actorID, &req)
	if err != nil {
		handlePermissionError(c, err)
		return
	}
	response.Created(c, permission)
}

// Get returns one permission.
// GET /api/v1/permissions/:id
func (h *PermissionHandler) Get(c *gin.Context) {
	permission, err := h.permissionSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handlePermissionError(c, err)
		return
	}
	response.OK(c, permission)
}

// Update applies a partial update to a permission.
// PATCH /api/v1/permissions/:id
func (h *PermissionHandler) Update(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	permission, err := h.permissionSvc.Update(c.Request.Context(), actorID, c.Param("id"), &req)
	if err != nil {
		handlePermissionError(c, err)
		return
	}
	response.OK(c, permission)
}

// Delete soft-deletes a permission.
// DELETE /api/v1/permissions/:id
func (h *PermissionHandler) Delete(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.permissionSvc.Delete(c.Request.Context(), actorID, c.Param("id")); err != nil {
		handlePermissionError(c, err)
		return
	}
	response.OK(c, nil)
}

// List returns a permission page.
// GET /api/v1/permissions
func (h *PermissionHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	permissions, total, err := h.permissionSvc.List(c.Request.Context(), &req)
	if err != nil {
		handlePermissionError(c, err)
		return
	}
	response.OKPage(c, permissions, total, req.Page, req.PageSize)
}
