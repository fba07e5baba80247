package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/dto"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/service"
	pkgerrors "github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/pkg/errors"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/pkg/response"
)

// ScheduleHandler serves weekly-template endpoints.
type ScheduleHandler struct {
	scheduleSvc service.WeeklyScheduleService
}

// NewScheduleHandler creates the ScheduleHandler.
func NewScheduleHandler(scheduleSvc service.WeeklyScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

func handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrScheduleNotFound):
		response.NotFound(c, 23001, "weekly schedule not found")
	case errors.Is(err, service.ErrScheduleConflict):
		response.Conflict(c, 23002, "a template already exists for this day, slot and section")
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 20001, "user not found")
	case errors.Is(err, service.ErrSlotNotFound),
		errors.Is(err, service.ErrSectionNotFound),
		errors.Is(err, service.ErrRoomNotFound),
		errors.Is(err, service.ErrCourseNotFound):
		handleCatalogError(c, err)
	case errors.Is(err, pkgerrors.ErrEmptyUpdate):
		response.BadRequest(c, 10001, "no fields provided for update")
	default:
		response.InternalError(c)
	}
}

// Create creates a weekly template row.
// POST /api/v1/schedules
func (h *ScheduleHandler) Create(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateWeeklyScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	schedule, err := h.scheduleSvc.Create(c.Request.Context(), actorID, &req)
	if err != nil {
		handleScheduleError(c, err)
		return
	}
	response.Created(c, schedule)
}

// Get returns one template row.
// GET /api/v1/schedules/:id
func (h *ScheduleHandler) Get(c *gin.Context) {
	schedule, err := h.scheduleSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleScheduleError(c, err)
		return
	}
	response.OK(c, schedule)
}

// Update applies a partial update to a template row.
// PATCH /api/v1/schedules/:id
func (h *ScheduleHandler) Update(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateWeeklyScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	schedule, err := h.scheduleSvc.Update(c.Request.Context(), actorID, c.Param("id"), &req)
	if err != nil {
		handleScheduleError(c, err)
		return
	}
	response.OK(c, schedule)
}

// Delete soft-deletes a template row.
// DELETE /api/v1/schedules/:id
func (h *ScheduleHandler) Delete(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.scheduleSvc.Delete(c.Request.Context(), actorID, c.Param("id")); err != nil {
		handleScheduleError(c, err)
		return
	}
	response.OK(c, nil)
}

// List returns a filtered template page.
// GET /api/v1/schedules
func (h *ScheduleHandler) List(c *gin.Context) {
	var req dto.WeeklyScheduleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	schedules, total, err := h.scheduleSvc.List(c.Request.Context(), &req)
	if err != nil {
		handleScheduleError(c, err)
		return
	}
	response.OKPage(c, schedules, total, req.Page, req.PageSize)
}
