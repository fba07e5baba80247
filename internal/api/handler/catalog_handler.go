package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/dto"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/service"
	pkgerrors "github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/pkg/errors"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/pkg/response"
)

func handleCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBatchNotFound):
		response.NotFound(c, 22001, "batch not found")
	case errors.Is(err, service.ErrSectionNotFound):
		response.NotFound(c, 22002, "section not found")
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 22003, "course not found")
	case errors.Is(err, service.ErrRoomNotFound):
		response.NotFound(c, 22004, "room not found")
	case errors.Is(err, service.ErrSlotNotFound):
		response.NotFound(c, 22005, "slot not found")
	case errors.Is(err, pkgerrors.ErrEmptyUpdate):
		response.BadRequest(c, 10001, "no fields provided for update")
	default:
		response.InternalError(c)
	}
}

// ── Batch handler ──

// BatchHandler serves batch endpoints.
type BatchHandler struct {
	batchSvc service.BatchService
}

// NewBatchHandler creates the BatchHandler.
func NewBatchHandler(batchSvc service.BatchService) *BatchHandler {
	return &BatchHandler{batchSvc: batchSvc}
}

// Create creates a batch.
// POST /api/v1/batches
func (h *BatchHandler) Create(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	batch, err := h.batchSvc.Create(c.Request.Context(), actorID, &req)
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.Created(c, batch)
}

// Get returns one batch.
// GET /api/v1/batches/:id
func (h *BatchHandler) Get(c *gin.Context) {
	batch, err := h.batchSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, batch)
}

// Update applies a partial update to a batch.
// PATCH /api/v1/batches/:id
func (h *BatchHandler) Update(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	batch, err := h.batchSvc.Update(c.Request.Context(), actorID, c.Param("id"), &req)
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, batch)
}

// Delete soft-deletes a batch.
// DELETE /api/v1/batches/:id
func (h *BatchHandler) Delete(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.batchSvc.Delete(c.Request.Context(), actorID, c.Param("id")); err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, nil)
}

// List returns a batch page.
// GET /api/v1/batches
func (h *BatchHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	batches, total, err := h.batchSvc.List(c.Request.Context(), &req)
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OKPage(c, batches, total, req.Page, req.PageSize)
}

// ── Section handler ──

// SectionHandler serves section endpoints.
type SectionHandler struct {
	sectionSvc service.SectionService
}

// NewSectionHandler creates the SectionHandler.
func NewSectionHandler(sectionSvc service.SectionService) *SectionHandler {
	return &SectionHandler{sectionSvc: sectionSvc}
}

// Create creates a section.
// POST /api/v1/sections
func (h *SectionHandler) Create(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	section, err := h.sectionSvc.Create(c.Request.Context(), actorID, &req)
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.Created(c, section)
}

// Get returns one section.
// GET /api/v1/sections/:id
func (h *SectionHandler) Get(c *gin.Context) {
	section, err := h.sectionSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, section)
}

// Update applies a partial update to a section.
// PATCH /api/v1/sections/:id
func (h *SectionHandler) Update(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	section, err := h.sectionSvc.Update(c.Request.Context(), actorID, c.Param("id"), &req)
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, section)
}

// Delete soft-deletes a section.
// DELETE /api/v1/sections/:id
func (h *SectionHandler) Delete(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.sectionSvc.Delete(c.Request.Context(), actorID, c.Param("id")); err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, nil)
}

// List returns a section page, optionally filtered by batch.
// GET /api/v1/sections
func (h *SectionHandler) List(c *gin.Context) {
	var req dto.SectionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	sections, total, err := h.sectionSvc.List(c.Request.Context(), &req)
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OKPage(c, sections, total, req.Page, req.PageSize)
}

// ── Course handler ──

// CourseHandler serves course endpoints.
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler creates the CourseHandler.
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// Create creates a course.
// POST /api/v1/courses
func (h *CourseHandler) Create(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	course, err := h.courseSvc.Create(c.Request.Context(), actorID, &req)
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.Created(c, course)
}

// Get returns one course.
// GET /api/v1/courses/:id
func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.courseSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, course)
}

// Update applies a partial update to a course.
// PATCH /api/v1/courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	course, err := h.courseSvc.Update(c.Request.Context(), actorID, c.Param("id"), &req)
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, course)
}

// Delete soft-deletes a course.
// DELETE /api/v1/courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.courseSvc.Delete(c.Request.Context(), actorID, c.Param("id")); err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, nil)
}

// List returns a course page.
// GET /api/v1/courses
func (h *CourseHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	courses, total, err := h.courseSvc.List(c.Request.Context(), &req)
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OKPage(c, courses, total, req.Page, req.PageSize)
}

// ── Room handler ──

// RoomHandler serves room endpoints.
type RoomHandler struct {
	roomSvc service.RoomService
}

// NewRoomHandler creates the RoomHandler.
func NewRoomHandler(roomSvc service.RoomService) *RoomHandler {
	return &RoomHandler{roomSvc: roomSvc}
}

// Create creates a room.
// POST /api/v1/rooms
func (h *RoomHandler) Create(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	room, err := h.roomSvc.Create(c.Request.Context(), actorID, &req)
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.Created(c, room)
}

// Get returns one room.
// GET /api/v1/rooms/:id
func (h *RoomHandler) Get(c *gin.Context) {
	room, err := h.roomSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, room)
}

// Update applies a partial update to a room.
// PATCH /api/v1/rooms/:id
func (h *RoomHandler) Update(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	room, err := h.roomSvc.Update(c.Request.Context(), actorID, c.Param("id"), &req)
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, room)
}

// Delete soft-deletes a room.
// DELETE /api/v1/rooms/:id
func (h *RoomHandler) Delete(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.roomSvc.Delete(c.Request.Context(), actorID, c.Param("id")); err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, nil)
}

// List returns a room page.
// GET /api/v1/rooms
func (h *RoomHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	rooms, total, err := h.roomSvc.List(c.Request.Context(), &req)
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OKPage(c, rooms, total, req.Page, req.PageSize)
}

// ── Slot handler ──

// SlotHandler serves slot endpoints.
type SlotHandler struct {
	slotSvc service.SlotService
}

// NewSlotHandler creates the SlotHandler.
func NewSlotHandler(slotSvc service.SlotService) *SlotHandler {
	return &SlotHandler{slotSvc: slotSvc}
}

// Create creates a slot.
// POST /api/v1/slots
func (h *SlotHandler) Create(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	slot, err := h.slotSvc.Create(c.Request.Context(), actorID, &req)
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.Created(c, slot)
}

// Get returns one slot.
// GET /api/v1/slots/:id
func (h *SlotHandler) Get(c *gin.Context) {
	slot, err := h.slotSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, slot)
}

// Update applies a partial update to a slot.
// PATCH /api/v1/slots/:id
func (h *SlotHandler) Update(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	slot, err := h.slotSvc.Update(c.Request.Context(), actorID, c.Param("id"), &req)
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, slot)
}

// Delete soft-deletes a slot.
// DELETE /api/v1/slots/:id
func (h *SlotHandler) Delete(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.slotSvc.Delete(c.Request.Context(), actorID, c.Param("id")); err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, nil)
}

// List returns all slots ordered by ordinal. Slots are few; no pagination.
// GET /api/v1/slots
func (h *SlotHandler) List(c *gin.Context) {
	slots, err := h.slotSvc.List(c.Request.Context())
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, slots)
}
