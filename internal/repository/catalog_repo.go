package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/model"
)

// BatchRepository is the batch data-access interface.
type BatchRepository interface {
	Create(ctx context.Context, batch *model.Batch) error
	GetByID(ctx context.Context, id string) (*model.Batch, error)
	Update(ctx context.Context, batch *model.Batch) error
	Delete(ctx context.Context, id string, deletedBy string) error
	List(ctx context.Context, offset, limit int) ([]model.Batch, int64, error)
}

// SectionRepository is the section data-access interface.
type SectionRepository interface {
	Create(ctx context.Context, section *model.Section) error
	GetByID(ctx context.Context, id string) (*model.Section, error)
	Update(ctx context.Context, section *model.Section) error
	Delete(ctx context.Context, id string, deletedBy string) error
	List(ctx context.Context, batchID string, offset, limit int) ([]model.Section, int64, error)
}

// CourseRepository is the course data-access interface.
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	GetByID(ctx context.Context, id string) (*model.Course, error)
	Update(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, id string, deletedBy string) error
	List(ctx context.Context, offset, limit int) ([]model.Course, int64, error)
}

// RoomRepository is the room data-access interface.
type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) error
	GetByID(ctx context.Context, id string) (*model.Room, error)
	Update(ctx context.Context, room *model.Room) error
	Delete(ctx context.Context, id string, deletedBy string) error
	List(ctx context.Context, offset, limit int) ([]model.Room, int64, error)
}

// SlotRepository is the slot data-access interface.
type SlotRepository interface {
	Create(ctx context.Context, slot *model.Slot) error
	GetByID(ctx context.Context, id string) (*model.Slot, error)
	Update(ctx context.Context, slot *model.Slot) error
	Delete(ctx context.Context, id string, deletedBy string) error
	List(ctx context.Context) ([]model.Slot, error)
}

// ── Batch repository ──

type batchRepo struct {
	db *gorm.DB
}

// NewBatchRepo creates the GORM-backed BatchRepository.
func NewBatchRepo(db *gorm.DB) BatchRepository {
	return &batchRepo{db: db}
}

func (r *batchRepo) Create(ctx context.Context, batch *model.Batch) error {
	return r.db.WithContext(ctx).Create(batch).Error
}

func (r *batchRepo) GetByID(ctx context.Context, id string) (*model.Batch, error) {
	var batch model.Batch
	err := r.db.WithContext(ctx).
		Where("batch_id = ?", id).
		First(&batch).Error
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

func (r *batchRepo) Update(ctx context.Context, batch *model.Batch) error {
	return r.db.WithContext(ctx).Save(batch).Error
}

func (r *batchRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Batch{}).
		Where("batch_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}

func (r *batchRepo) List(ctx context.Context, offset, limit int) ([]model.Batch, int64, error) {
	var batches []model.Batch
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Batch{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("name ASC").
		Find(&batches).Error; err != nil {
		return nil, 0, err
	}

	return batches, total, nil
}

// ── Section repository ──

type sectionRepo struct {
	db *gorm.DB
}

// NewSectionRepo creates the GORM-backed SectionRepository.
func NewSectionRepo(db *gorm.DB) SectionRepository {
	return &sectionRepo{db: db}
}

func (r *sectionRepo) Create(ctx context.Context, section *model.Section) error {
	return r.db.WithContext(ctx).Create(section).Error
}

func (r *sectionRepo) GetByID(ctx context.Context, id string) (*model.Section, error) {
	var section model.Section
	err := r.db.WithContext(ctx).
		Preload("Batch").
		Where("section_id = ?", id).
		First(&section).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *sectionRepo) Update(ctx context.Context, section *model.Section) error {
	return r.db.WithContext(ctx).Save(section).Error
}

func (r *sectionRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Section{}).
		Where("section_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}

func (r *sectionRepo) List(ctx context.Context, batchID string, offset, limit int) ([]model.Section, int64, error) {
	var sections []model.Section
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Section{})
	if batchID != "" {
		db = db.Where("batch_id = ?", batchID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Batch").
		Offset(offset).Limit(limit).
		Order("name ASC").
		Find(&sections).Error; err != nil {
		return nil, 0, err
	}

	return sections, total, nil
}

// ── Course repository ──

type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo creates the GORM-backed CourseRepository.
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepo) GetByID(ctx context.Context, id string) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Where("course_id = ?", id).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) Update(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *courseRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Course{}).
		Where("course_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}

func (r *courseRepo) List(ctx context.Context, offset, limit int) ([]model.Course, int64, error) {
	var courses []model.Course
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Course{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("code ASC").
		Find(&courses).Error; err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// ── Room repository ──

type roomRepo struct {
	db *gorm.DB
}

// NewRoomRepo creates the GORM-backed RoomRepository.
func NewRoomRepo(db *gorm.DB) RoomRepository {
	return &roomRepo{db: db}
}

func (r *roomRepo) Create(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepo) GetByID(ctx context.Context, id string) (*model.Room, error) {
	var room model.Room
	err := r.db.WithContext(ctx).
		Where("room_id = ?", id).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepo) Update(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *roomRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Room{}).
		Where("room_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}

func (r *roomRepo) List(ctx context.Context, offset, limit int) ([]model.Room, int64, error) {
	var rooms []model.Room
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Room{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("name ASC").
		Find(&rooms).Error; err != nil {
		return nil, 0, err
	}

	return rooms, total, nil
}

// ── Slot repository ──

type slotRepo struct {
	db *gorm.DB
}

// NewSlotRepo creates the GORM-backed SlotRepository.
func NewSlotRepo(db *gorm.DB) SlotRepository {
	return &slotRepo{db: db}
}

func (r *slotRepo) Create(ctx context.Context, slot *model.Slot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *slotRepo) GetByID(ctx context.Context, id string) (*model.Slot, error) {
	var slot model.Slot
	err := r.db.WithContext(ctx).
		Where("slot_id = ?", id).
		First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *slotRepo) Update(ctx context.Context, slot *model.Slot) error {
	return r.db.WithContext(ctx).Save(slot).Error
}

func (r *slotRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Slot{}).
		Where("slot_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}

func (r *slotRepo) List(ctx context.Context) ([]model.Slot, error) {
	var slots []model.Slot
	err := r.db.WithContext(ctx).
		Order("ordinal ASC").
		Find(&slots).Error
	return slots, err
}
