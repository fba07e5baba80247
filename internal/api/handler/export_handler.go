package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/dto"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/service"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves report downloads and the calendar feed.
type ExportHandler struct {
	exportSvc   service.ExportService
	calendarSvc service.CalendarService
}

// NewExportHandler creates the ExportHandler.
func NewExportHandler(exportSvc service.ExportService, calendarSvc service.CalendarService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc, calendarSvc: calendarSvc}
}

// ExportSchedule downloads the weekly template grid as .xlsx.
// GET /api/v1/exports/schedule?section_id=
func (h *ExportHandler) ExportSchedule(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportWeeklySchedule(c.Request.Context(), c.Query("section_id"))
	if err != nil {
		if errors.Is(err, service.ErrExportNoSchedules) {
			response.NotFound(c, 25001, "no weekly schedules to export")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ExportHistories downloads a class delivery report as .xlsx.
// GET /api/v1/exports/class-histories?from=&to=&section_id=&teacher_id=&status=
func (h *ExportHandler) ExportHistories(c *gin.Context) {
	var req dto.ClassHistoryListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	buf, filename, err := h.exportSvc.ExportClassHistories(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrExportNoHistories) {
			response.NotFound(c, 25002, "no class histories in the requested range")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// SectionCalendar serves the iCalendar feed of one section's weekly template.
// GET /api/v1/sections/:id/calendar.ics
func (h *ExportHandler) SectionCalendar(c *gin.Context) {
	feed, err := h.calendarSvc.SectionFeed(c.Request.Context(), c.Param("id"), time.Now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSectionNotFound):
			response.NotFound(c, 22002, "section not found")
		case errors.Is(err, service.ErrCalendarNoSchedules):
			response.NotFound(c, 25003, "no weekly schedules for this section")
		default:
			response.InternalError(c)
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="schedule.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}
