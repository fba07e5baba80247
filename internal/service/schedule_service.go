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
	ErrScheduleNotFound = errors.New("weekly schedule not found")
	ErrScheduleConflict = errors.New("a template already exists for this day, slot and section")
)

// WeeklyScheduleService manages the recurring weekly template.
type WeeklyScheduleService interface {
	Create(ctx context.Context, actorID string, req *dto.CreateWeeklyScheduleRequest) (*dto.WeeklyScheduleResponse, error)
	GetByID(ctx context.Context, id string) (*dto.WeeklyScheduleResponse, error)
	Update(ctx context.Context, actorID, id string, req *dto.UpdateWeeklyScheduleRequest) (*dto.WeeklyScheduleResponse, error)
	Delete(ctx context.Context, actorID, id string) error
	List(ctx context.Context, req *dto.WeeklyScheduleListRequest) ([]dto.WeeklyScheduleResponse, int64, error)
}

type weeklyScheduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewWeeklyScheduleService creates the WeeklyScheduleService.
func NewWeeklyScheduleService(repo *repository.Repository, logger *zap.Logger) WeeklyScheduleService {
	return &weeklyScheduleService{repo: repo, logger: logger}
}

// validateRefs checks that every referenced entity exists before the template
// row is written. The database would reject dangling IDs anyway; checking
// here turns constraint violations into named errors.
func (s *weeklyScheduleService) validateRefs(ctx context.Context, slotID, sectionID, teacherID, roomID, courseID string) error {
	if slotID != "" {
		if _, err := s.repo.Slot.GetByID(ctx, slotID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlotNotFound
			}
			return err
		}
	}
	if sectionID != "" {
		if _, err := s.repo.Section.GetByID(ctx, sectionID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSectionNotFound
			}
			return err
		}
	}
	if teacherID != "" {
		if _, err := s.repo.User.GetByID(ctx, teacherID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
	}
	if roomID != "" {
		if _, err := s.repo.Room.GetByID(ctx, roomID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
	}
	if courseID != "" {
		if _, err := s.repo.Course.GetByID(ctx, courseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCourseNotFound
			}
			return err
		}
	}
	return nil
}

// hasConflict reports whether another active template already occupies
// (day, slot, section), excluding excludeID.
func (s *weeklyScheduleService) hasConflict(ctx context.Context, day model.Weekday, slotID, sectionID, excludeID string) (bool, error) {
	existing, _, err := s.repo.Schedule.List(ctx, repository.WeeklyScheduleFilter{
		Day:       day,
		SectionID: sectionID,
	}, 0, 100)
	if err != nil {
		return false, err
	}
	for _, e := range existing {
		if e.SlotID == slotID && e.ScheduleID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *weeklyScheduleService) Create(ctx context.Context, actorID string, req *dto.CreateWeeklyScheduleRequest) (*dto.WeeklyScheduleResponse, error) {
	if err := s.validateRefs(ctx, req.SlotID, req.SectionID, req.TeacherID, req.RoomID, req.CourseID); err != nil {
		return nil, err
	}

	day := model.Weekday(req.Day)
	conflict, err := s.hasConflict(ctx, day, req.SlotID, req.SectionID, "")
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrScheduleConflict
	}

	schedule := &model.WeeklySchedule{
		Day:       day,
		SlotID:    req.SlotID,
		SectionID: req.SectionID,
		TeacherID: req.TeacherID,
		RoomID:    req.RoomID,
		CourseID:  req.CourseID,
		Status:    "active",
	}
	if actorID != "" {
		schedule.CreatedBy = &actorID
	}

	if err := s.repo.Schedule.Create(ctx, schedule); err != nil {
		s.logger.Error("create weekly schedule failed",
			zap.String("day", req.Day),
			zap.String("section_id", req.SectionID),
			zap.Error(err),
		)
		return nil, err
	}

	created, err := s.repo.Schedule.GetByID(ctx, schedule.ScheduleID)
	if err != nil {
		return nil, err
	}
	return toWeeklyScheduleResponse(created), nil
}

func (s *weeklyScheduleService) GetByID(ctx context.Context, id string) (*dto.WeeklyScheduleResponse, error) {
	schedule, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return toWeeklyScheduleResponse(schedule), nil
}

func (s *weeklyScheduleService) Update(ctx context.Context, actorID, id string, req *dto.UpdateWeeklyScheduleRequest) (*dto.WeeklyScheduleResponse, error) {
	if req.Day == nil && req.SlotID == nil && req.SectionID == nil &&
		req.TeacherID == nil && req.RoomID == nil && req.CourseID == nil && req.Status == nil {
		return nil, pkgerrors.ErrEmptyUpdate
	}

	schedule, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}

	var slotID, sectionID, teacherID, roomID, courseID string
	if req.SlotID != nil {
		slotID = *req.SlotID
	}
	if req.SectionID != nil {
		sectionID = *req.SectionID
	}
	if req.TeacherID != nil {
		teacherID = *req.TeacherID
	}
	if req.RoomID != nil {
		roomID = *req.RoomID
	}
	if req.CourseID != nil {
		courseID = *req.CourseID
	}
	if err := s.validateRefs(ctx, slotID, sectionID, teacherID, roomID, courseID); err != nil {
		return nil, err
	}

	day := schedule.Day
	newSlotID := schedule.SlotID
	newSectionID := schedule.SectionID
	if req.Day != nil {
		day = model.Weekday(*req.Day)
	}
	if req.SlotID != nil {
		newSlotID = *req.SlotID
	}
	if req.SectionID != nil {
		newSectionID = *req.SectionID
	}
	if day != schedule.Day || newSlotID != schedule.SlotID || newSectionID != schedule.SectionID {
		conflict, err := s.hasConflict(ctx, day, newSlotID, newSectionID, id)
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, ErrScheduleConflict
		}
	}

	schedule.Day = day
	schedule.SlotID = newSlotID
	schedule.SectionID = newSectionID
	if req.TeacherID != nil {
		schedule.TeacherID = *req.TeacherID
	}
	if req.RoomID != nil {
		schedule.RoomID = *req.RoomID
	}
	if req.CourseID != nil {
		schedule.CourseID = *req.CourseID
	}
	if req.Status != nil {
		schedule.Status = *req.Status
	}
	if actorID != "" {
		schedule.UpdatedBy = &actorID
	}

	// drop preloaded associations so Save does not upsert them
	schedule.Slot, schedule.Section, schedule.Teacher = nil, nil, nil
	schedule.Room, schedule.Course = nil, nil

	if err := s.repo.Schedule.Update(ctx, schedule); err != nil {
		s.logger.Error("update weekly schedule failed", zap.String("schedule_id", id), zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toWeeklyScheduleResponse(updated), nil
}

func (s *weeklyScheduleService) Delete(ctx context.Context, actorID, id string) error {
	if _, err := s.repo.Schedule.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScheduleNotFound
		}
		return err
	}
	return s.repo.Schedule.Delete(ctx, id, actorID)
}

func (s *weeklyScheduleService) List(ctx context.Context, req *dto.WeeklyScheduleListRequest) ([]dto.WeeklyScheduleResponse, int64, error) {
	filter := repository.WeeklyScheduleFilter{
		Day:       model.Weekday(req.Day),
		SectionID: req.SectionID,
		TeacherID: req.TeacherID,
	}
	schedules, total, err := s.repo.Schedule.List(ctx, filter, req.Offset(), req.PageSize)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]dto.WeeklyScheduleResponse, 0, len(schedules))
	for i := range schedules {
		resp = append(resp, *toWeeklyScheduleResponse(&schedules[i]))
	}
	return resp, total, nil
}
