package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/dto"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/model"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/repository"
	pkgerrors "github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/pkg/errors"
)

var (
	ErrBatchNotFound   = errors.New("batch not found")
	ErrSectionNotFound = errors.New("section not found")
	ErrCourseNotFound  = errors.New("course not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrSlotNotFound    = errors.New("slot not found")
)

// BatchService manages intake cohorts.
type BatchService interface {
	Create(ctx context.Context, actorID string, req *dto.CreateBatchRequest) (*dto.BatchResponse, error)
	GetByID(ctx context.Context, id string) (*dto.BatchResponse, error)
	Update(ctx context.Context, actorID, id string, req *dto.UpdateBatchRequest) (*dto.BatchResponse, error)
	Delete(ctx context.Context, actorID, id string) error
	List(ctx context.Context, req *dto.ListRequest) ([]dto.BatchResponse, int64, error)
}

// SectionService manages teaching groups.
type SectionService interface {
	Create(ctx context.Context, actorID string, req *dto.CreateSectionRequest) (*dto.SectionResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SectionResponse, error)
	Update(ctx context.Context, actorID, id string, req *dto.UpdateSectionRequest) (*dto.SectionResponse, error)
	Delete(ctx context.Context, actorID, id string) error
	List(ctx context.Context, req *dto.SectionListRequest) ([]dto.SectionResponse, int64, error)
}

// CourseService manages the course catalog.
type CourseService interface {
	Create(ctx context.Context, actorID string, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	GetByID(ctx context.Context, id string) (*dto.CourseResponse, error)
	Update(ctx context.Context, actorID, id string, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	Delete(ctx context.Context, actorID, id string) error
	List(ctx context.Context, req *dto.ListRequest) ([]dto.CourseResponse, int64, error)
}

// RoomService manages classrooms.
type RoomService interface {
	Create(ctx context.Context, actorID string, req *dto.CreateRoomRequest) (*dto.RoomResponse, error)
	GetByID(ctx context.Context, id string) (*dto.RoomResponse, error)
	Update(ctx context.Context, actorID, id string, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error)
	Delete(ctx context.Context, actorID, id string) error
	List(ctx context.Context, req *dto.ListRequest) ([]dto.RoomResponse, int64, error)
}

// SlotService manages the daily teaching periods.
type SlotService interface {
	Create(ctx context.Context, actorID string, req *dto.CreateSlotRequest) (*dto.SlotResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SlotResponse, error)
	Update(ctx context.Context, actorID, id string, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error)
	Delete(ctx context.Context, actorID, id string) error
	List(ctx context.Context) ([]dto.SlotResponse, error)
}

// ── Batch service ──

type batchService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewBatchService creates the BatchService.
func NewBatchService(repo *repository.Repository, logger *zap.Logger) BatchService {
	return &batchService{repo: repo, logger: logger}
}

func (s *batchService) Create(ctx context.Context, actorID string, req *dto.CreateBatchRequest) (*dto.BatchResponse, error) {
	batch := &model.Batch{
		Name:        req.Name,
		Description: req.Description,
	}
	if actorID != "" {
		batch.CreatedBy = &actorID
	}

	if err := s.repo.Batch.Create(ctx, batch); err != nil {
		s.logger.Error("create batch failed", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	return toBatchResponse(batch), nil
}

func (s *batchService) GetByID(ctx context.Context, id string) (*dto.BatchResponse, error) {
	batch, err := s.repo.Batch.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, err
	}
	return toBatchResponse(batch), nil
}

func (s *batchService) Update(ctx context.Context, actorID, id string, req *dto.UpdateBatchRequest) (*dto.BatchResponse, error) {
	if req.Name == nil && req.Description == nil {
		return nil, pkgerrors.ErrEmptyUpdate
	}

	batch, err := s.repo.Batch.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		batch.Name = *req.Name
	}
	if req.Description != nil {
		batch.Description = req.Description
	}
	if actorID != "" {
		batch.UpdatedBy = &actorID
	}

	if err := s.repo.Batch.Update(ctx, batch); err != nil {
		return nil, err
	}
	return toBatchResponse(batch), nil
}

func (s *batchService) Delete(ctx context.Context, actorID, id string) error {
	if _, err := s.repo.Batch.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBatchNotFound
		}
		return err
	}
	return s.repo.Batch.Delete(ctx, id, actorID)
}

func (s *batchService) List(ctx context.Context, req *dto.ListRequest) ([]dto.BatchResponse, int64, error) {
	batches, total, err := s.repo.Batch.List(ctx, req.Offset(), req.PageSize)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]dto.BatchResponse, 0, len(batches))
	for i := range batches {
		resp = append(resp, *toBatchResponse(&batches[i]))
	}
	return resp, total, nil
}

// ── Section service ──

type sectionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSectionService creates the SectionService.
func NewSectionService(repo *repository.Repository, logger *zap.Logger) SectionService {
	return &sectionService{repo: repo, logger: logger}
}

func (s *sectionService) Create(ctx context.Context, actorID string, req *dto.CreateSectionRequest) (*dto.SectionResponse, error) {
	if _, err := s.repo.Batch.GetByID(ctx, req.BatchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, err
	}

	section := &model.Section{
		Name:    req.Name,
		BatchID: req.BatchID,
	}
	if actorID != "" {
		section.CreatedBy = &actorID
	}

	if err := s.repo.Section.Create(ctx, section); err != nil {
		s.logger.Error("create section failed", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Section.GetByID(ctx, section.SectionID)
	if err != nil {
		return nil, err
	}
	return toSectionResponse(created), nil
}

func (s *sectionService) GetByID(ctx context.Context, id string) (*dto.SectionResponse, error) {
	section, err := s.repo.Section.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return toSectionResponse(section), nil
}

func (s *sectionService) Update(ctx context.Context, actorID, id string, req *dto.UpdateSectionRequest) (*dto.SectionResponse, error) {
	if req.Name == nil && req.BatchID == nil {
		return nil, pkgerrors.ErrEmptyUpdate
	}

	section, err := s.repo.Section.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}

	if req.BatchID != nil && *req.BatchID != section.BatchID {
		if _, err := s.repo.Batch.GetByID(ctx, *req.BatchID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBatchNotFound
			}
			return nil, err
		}
		section.BatchID = *req.BatchID
		section.Batch = nil
	}
	if req.Name != nil {
		section.Name = *req.Name
	}
	if actorID != "" {
		section.UpdatedBy = &actorID
	}

	if err := s.repo.Section.Update(ctx, section); err != nil {
		return nil, err
	}

	updated, err := s.repo.Section.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSectionResponse(updated), nil
}

func (s *sectionService) Delete(ctx context.Context, actorID, id string) error {
	if _, err := s.repo.Section.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSectionNotFound
		}
		return err
	}
	return s.repo.Section.Delete(ctx, id, actorID)
}

func (s *sectionService) List(ctx context.Context, req *dto.SectionListRequest) ([]dto.SectionResponse, int64, error) {
	sections, total, err := s.repo.Section.List(ctx, req.BatchID, req.Offset(), req.PageSize)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]dto.SectionResponse, 0, len(sections))
	for i := range sections {
		resp = append(resp, *toSectionResponse(&sections[i]))
	}
	return resp, total, nil
}

// ── Course service ──

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService creates the CourseService.
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

func (s *courseService) Create(ctx context.Context, actorID string, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	course := &model.Course{
		Code:  req.Code,
		Title: req.Title,
	}
	if actorID != "" {
		course.CreatedBy = &actorID
	}

	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("create course failed", zap.String("code", req.Code), zap.Error(err))
		return nil, err
	}
	return toCourseResponse(course), nil
}

func (s *courseService) GetByID(ctx context.Context, id string) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return toCourseResponse(course), nil
}

func (s *courseService) Update(ctx context.Context, actorID, id string, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	if req.Code == nil && req.Title == nil {
		return nil, pkgerrors.ErrEmptyUpdate
	}

	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	if req.Code != nil {
		course.Code = *req.Code
	}
	if req.Title != nil {
		course.Title = *req.Title
	}
	if actorID != "" {
		course.UpdatedBy = &actorID
	}

	if err := s.repo.Course.Update(ctx, course); err != nil {
		return nil, err
	}
	return toCourseResponse(course), nil
}

func (s *courseService) Delete(ctx context.Context, actorID, id string) error {
	if _, err := s.repo.Course.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}
	return s.repo.Course.Delete(ctx, id, actorID)
}

func (s *courseService) List(ctx context.Context, req *dto.ListRequest) ([]dto.CourseResponse, int64, error) {
	courses, total, err := s.repo.Course.List(ctx, req.Offset(), req.PageSize)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		resp = append(resp, *toCourseResponse(&courses[i]))
	}
	return resp, total, nil
}

// ── Room service ──

type roomService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRoomService creates the RoomService.
func NewRoomService(repo *repository.Repository, logger *zap.Logger) RoomService {
	return &roomService{repo: repo, logger: logger}
}

func (s *roomService) Create(ctx context.Context, actorID string, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	room := &model.Room{
		Name:     req.Name,
		Capacity: req.Capacity,
	}
	if actorID != "" {
		room.CreatedBy = &actorID
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.logger.Error("create room failed", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	return toRoomResponse(room), nil
}

func (s *roomService) GetByID(ctx context.Context, id string) (*dto.RoomResponse, error) {
	room, err := s.repo.Room.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return toRoomResponse(room), nil
}

func (s *roomService) Update(ctx context.Context, actorID, id string, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	if req.Name == nil && req.Capacity == nil {
		return nil, pkgerrors.ErrEmptyUpdate
	}

	room, err := s.repo.Room.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if actorID != "" {
		room.UpdatedBy = &actorID
	}

	if err := s.repo.Room.Update(ctx, room); err != nil {
		return nil, err
	}
	return toRoomResponse(room), nil
}

func (s *roomService) Delete(ctx context.Context, actorID, id string) error {
	if _, err := s.repo.Room.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return err
	}
	return s.repo.Room.Delete(ctx, id, actorID)
}

func (s *roomService) List(ctx context.Context, req *dto.ListRequest) ([]dto.RoomResponse, int64, error) {
	rooms, total, err := s.repo.Room.List(ctx, req.Offset(), req.PageSize)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]dto.RoomResponse, 0, len(rooms))
	for i := range rooms {
		resp = append(resp, *toRoomResponse(&rooms[i]))
	}
	return resp, total, nil
}

// ── Slot service ──

type slotService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSlotService creates the SlotService.
func NewSlotService(repo *repository.Repository, logger *zap.Logger) SlotService {
	return &slotService{repo: repo, logger: logger}
}

func (s *slotService) Create(ctx context.Context, actorID string, req *dto.CreateSlotRequest) (*dto.SlotResponse, error) {
	slot := &model.Slot{
		Ordinal:   req.Ordinal,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if actorID != "" {
		slot.CreatedBy = &actorID
	}

	if err := s.repo.Slot.Create(ctx, slot); err != nil {
		s.logger.Error("create slot failed", zap.Int("ordinal", req.Ordinal), zap.Error(err))
		return nil, err
	}
	return toSlotResponse(slot), nil
}

func (s *slotService) GetByID(ctx context.Context, id string) (*dto.SlotResponse, error) {
	slot, err := s.repo.Slot.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return toSlotResponse(slot), nil
}

func (s *slotService) Update(ctx context.Context, actorID, id string, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error) {
	if req.Ordinal == nil && req.StartTime == nil && req.EndTime == nil {
		return nil, pkgerrors.ErrEmptyUpdate
	}

	slot, err := s.repo.Slot.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}

	if req.Ordinal != nil {
		slot.Ordinal = *req.Ordinal
	}
	if req.StartTime != nil {
		slot.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		slot.EndTime = *req.EndTime
	}
	if actorID != "" {
		slot.UpdatedBy = &actorID
	}

	if err := s.repo.Slot.Update(ctx, slot); err != nil {
		return nil, err
	}
	return toSlotResponse(slot), nil
}

func (s *slotService) Delete(ctx context.Context, actorID, id string) error {
	if _, err := s.repo.Slot.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSlotNotFound
		}
		return err
	}
	return s.repo.Slot.Delete(ctx, id, actorID)
}

func (s *slotService) List(ctx context.Context) ([]dto.SlotResponse, error) {
	slots, err := s.repo.Slot.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.SlotResponse, 0, len(slots))
	for i := range slots {
		resp = append(resp, *toSlotResponse(&slots[i]))
	}
	return resp, nil
}
