package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/model"
)

// WeeklyScheduleFilter narrows template listings.
type WeeklyScheduleFilter struct {
	Day       model.Weekday
	SectionID string
	TeacherID string
}

// WeeklyScheduleRepository is the weekly-template data-access interface.
type WeeklyScheduleRepository interface {
	Create(ctx context.Context, schedule *model.WeeklySchedule) error
	GetByID(ctx context.Context, id string) (*model.WeeklySchedule, error)
	Update(ctx context.Context, schedule *model.WeeklySchedule) error
	Delete(ctx context.Context, id string, deletedBy string) error
	List(ctx context.Context, filter WeeklyScheduleFilter, offset, limit int) ([]model.WeeklySchedule, int64, error)

	// ListAll returns every active template row. The materializer reads the
	// whole table each run; templates are small (one row per weekday, slot,
	// section combination).
	ListAll(ctx context.Context) ([]model.WeeklySchedule, error)
}

type weeklyScheduleRepo struct {
	db *gorm.DB
}

// NewWeeklyScheduleRepo creates the GORM-backed WeeklyScheduleRepository.
func NewWeeklyScheduleRepo(db *gorm.DB) WeeklyScheduleRepository {
	return &weeklyScheduleRepo{db: db}
}

func (r *weeklyScheduleRepo) Create(ctx context.Context, schedule *model.WeeklySchedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *weeklyScheduleRepo) GetByID(ctx context.Context, id string) (*model.WeeklySchedule, error) {
	var schedule model.WeeklySchedule
	err := r.db.WithContext(ctx).
		Preload("Slot").
		Preload("Section").Preload("Section.Batch").
		Preload("Teacher").
		Preload("Room").
		Preload("Course").
		Where("schedule_id = ?", id).
		First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *weeklyScheduleRepo) Update(ctx context.Context, schedule *model.WeeklySchedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

func (r *weeklyScheduleRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.WeeklySchedule{}).
		Where("schedule_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}

func (r *weeklyScheduleRepo) List(ctx context.Context, filter WeeklyScheduleFilter, offset, limit int) ([]model.WeeklySchedule, int64, error) {
	var schedules []model.WeeklySchedule
	var total int64

	db := r.db.WithContext(ctx).Model(&model.WeeklySchedule{})
	if filter.Day != "" {
		db = db.Where("day = ?", filter.Day)
	}
	if filter.SectionID != "" {
		db = db.Where("section_id = ?", filter.SectionID)
	}
	if filter.TeacherID != "" {
		db = db.Where("teacher_id = ?", filter.TeacherID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Slot").
		Preload("Section").
		Preload("Teacher").
		Preload("Room").
		Preload("Course").
		Offset(offset).Limit(limit).
		Order("day ASC, slot_id ASC").
		Find(&schedules).Error; err != nil {
		return nil, 0, err
	}

	return schedules, total, nil
}

func (r *weeklyScheduleRepo) ListAll(ctx context.Context) ([]model.WeeklySchedule, error) {
	var schedules []model.WeeklySchedule
	err := r.db.WithContext(ctx).
		Find(&schedules).Error
	return schedules, err
}
