package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/model"
)

// ClassHistoryFilter narrows history listings.
type ClassHistoryFilter struct {
	From      *time.Time
	To        *time.Time
	SectionID string
	TeacherID string
	Status    string
}

// ClassHistoryRepository is the class-history data-access interface.
type ClassHistoryRepository interface {
	Create(ctx context.Context, history *model.ClassHistory) error
	GetByID(ctx context.Context, id string) (*model.ClassHistory, error)
	GetByDateSlotSection(ctx context.Context, date time.Time, slotID, sectionID string) (*model.ClassHistory, error)
	Update(ctx context.Context, history *model.ClassHistory) error
	Delete(ctx context.Context, id string, deletedBy string) error
	List(ctx context.Context, filter ClassHistoryFilter, offset, limit int) ([]model.ClassHistory, int64, error)

	// BatchInsertIgnore inserts candidate rows in one statement, silently
	// skipping any row whose (date, slot, section) key already exists.
	// Returns the number of rows actually inserted. This is the idempotence
	// mechanism of the weekly materializer: a skipped row is not an error.
	BatchInsertIgnore(ctx context.Context, rows []model.ClassHistory) (int64, error)
}

type classHistoryRepo struct {
	db *gorm.DB
}

// NewClassHistoryRepo creates the GORM-backed ClassHistoryRepository.
func NewClassHistoryRepo(db *gorm.DB) ClassHistoryRepository {
	return &classHistoryRepo{db: db}
}

func (r *classHistoryRepo) Create(ctx context.Context, history *model.ClassHistory) error {
	return r.db.WithContext(ctx).Create(history).Error
}

func (r *classHistoryRepo) GetByID(ctx context.Context, id string) (*model.ClassHistory, error) {
	var history model.ClassHistory
	err := r.db.WithContext(ctx).
		Preload("Slot").
		Preload("Section").Preload("Section.Batch").
		Preload("Teacher").
		Preload("Room").
		Preload("Course").
		Where("history_id = ?", id).
		First(&history).Error
	if err != nil {
		return nil, err
	}
	return &history, nil
}

// GetByDateSlotSection reads one row by its logical key.
func (r *classHistoryRepo) GetByDateSlotSection(ctx context.Context, date time.Time, slotID, sectionID string) (*model.ClassHistory, error) {
	var history model.ClassHistory
	err := r.db.WithContext(ctx).
		Preload("Slot").
		Preload("Section").Preload("Section.Batch").
		Preload("Teacher").
		Preload("Room").
		Preload("Course").
		Where("date = ? AND slot_id = ? AND section_id = ?", date, slotID, sectionID).
		First(&history).Error
	if err != nil {
		return nil, err
	}
	return &history, nil
}

func (r *classHistoryRepo) Update(ctx context.Context, history *model.ClassHistory) error {
	return r.db.WithContext(ctx).Save(history).Error
}

func (r *classHistoryRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.ClassHistory{}).
		Where("history_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}

func (r *classHistoryRepo) List(ctx context.Context, filter ClassHistoryFilter, offset, limit int) ([]model.ClassHistory, int64, error) {
	var histories []model.ClassHistory
	var total int64

	db := r.db.WithContext(ctx).Model(&model.ClassHistory{})
	if filter.From != nil {
		db = db.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		db = db.Where("date <= ?", *filter.To)
	}
	if filter.SectionID != "" {
		db = db.Where("section_id = ?", filter.SectionID)
	}
	if filter.TeacherID != "" {
		db = db.Where("teacher_id = ?", filter.TeacherID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
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
		Order("date DESC, slot_id ASC").
		Find(&histories).Error; err != nil {
		return nil, 0, err
	}

	return histories, total, nil
}

func (r *classHistoryRepo) BatchInsertIgnore(ctx context.Context, rows []model.ClassHistory) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
