package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/dto"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/service"
	pkgerrors "github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/pkg/errors"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/pkg/response"
)

// ClassHistoryHandler serves class-history endpoints and the manual
// materializer trigger.
type ClassHistoryHandler struct {
	historySvc      service.ClassHistoryService
	materializerSvc service.MaterializerService
}

// NewClassHistoryHandler creates the ClassHistoryHandler.
func NewClassHistoryHandler(historySvc service.ClassHistoryService, materializerSvc service.MaterializerService) *ClassHistoryHandler {
	return &ClassHistoryHandler{historySvc: historySvc, materializerSvc: materializerSvc}
}

func handleHistoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrHistoryNotFound):
		response.NotFound(c, 24001, "class history not found")
	case errors.Is(err, service.ErrHistoryExists):
		response.Conflict(c, 24002, "a history row already exists for this date, slot and section")
	case errors.Is(err, service.ErrNotAuthenticated):
		response.Unauthorized(c, 10002, "not authenticated")
	case errors.Is(err, service.ErrNoRoleAssigned):
		response.Forbidden(c, 10003, "no role assigned")
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, 10003, "permission denied")
	case errors.Is(err, pkgerrors.ErrEmptyUpdate):
		response.BadRequest(c, 10001, "no fields provided for update")
	default:
		response.InternalError(c)
	}
}

// Create creates a history row manually.
// POST /api/v1/class-histories
func (h *ClassHistoryHandler) Create(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateClassHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	history, err := h.historySvc.Create(c.Request.Context(), actorID, &req)
	if err != nil {
		handleHistoryError(c, err)
		return
	}
	response.Created(c, history)
}

// Get returns one history row.
// GET /api/v1/class-histories/:id
func (h *ClassHistoryHandler) Get(c *gin.Context) {
	history, err := h.historySvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleHistoryError(c, err)
		return
	}
	response.OK(c, history)
}

// Update changes status and/or notes of a history row. The own-record
// policy is enforced in the service; teachers can update their own classes.
// PATCH /api/v1/class-histories/:id
func (h *ClassHistoryHandler) Update(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateClassHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	history, err := h.historySvc.Update(c.Request.Context(), actorID, c.Param("id"), &req)
	if err != nil {
		handleHistoryError(c, err)
		return
	}
	response.OK(c, history)
}

// Delete soft-deletes a history row.
// DELETE /api/v1/class-histories/:id
func (h *ClassHistoryHandler) Delete(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.historySvc.Delete(c.Request.Context(), actorID, c.Param("id")); err != nil {
		handleHistoryError(c, err)
		return
	}
	response.OK(c, nil)
}

// List returns a filtered history page.
// GET /api/v1/class-histories
func (h *ClassHistoryHandler) List(c *gin.Context) {
	var req dto.ClassHistoryListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	histories, total, err := h.historySvc.List(c.Request.Context(), &req)
	if err != nil {
		handleHistoryError(c, err)
		return
	}
	response.OKPage(c, histories, total, req.Page, req.PageSize)
}

// Materialize triggers a materializer run outside the cron schedule.
// Re-running is safe; existing rows are skipped.
// POST /api/v1/materializer/run
func (h *ClassHistoryHandler) Materialize(c *gin.Context) {
	result, err := h.materializerSvc.MaterializeWeek(c.Request.Context(), time.Now())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, dto.MaterializeResultResponse{
		Inserted: result.Inserted,
		Skipped:  result.Skipped,
	})
}
