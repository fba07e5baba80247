package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/dto"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/model"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/repository"
	pkgerrors "github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/pkg/errors"
)

var (
	ErrHistoryNotFound = errors.New("class history not found")
	ErrHistoryExists   = errors.New("a history row already exists for this date, slot and section")
)

// ClassHistoryService manages dated class occurrences. Update enforces the
// own-record policy: a caller without the broad update permission may still
// update occurrences they teach.
type ClassHistoryService interface {
	Create(ctx context.Context, actorID string, req *dto.CreateClassHistoryRequest) (*dto.ClassHistoryResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ClassHistoryResponse, error)
	Update(ctx context.Context, actorID, id string, req *dto.UpdateClassHistoryRequest) (*dto.ClassHistoryResponse, error)
	Delete(ctx context.Context, actorID, id string) error
	List(ctx context.Context, req *dto.ClassHistoryListRequest) ([]dto.ClassHistoryResponse, int64, error)
}

type classHistoryService struct {
	repo   *repository.Repository
	authz  AuthzService
	logger *zap.Logger
}

// NewClassHistoryService creates the ClassHistoryService.
func NewClassHistoryService(repo *repository.Repository, authz AuthzService, logger *zap.Logger) ClassHistoryService {
	return &classHistoryService{repo: repo, authz: authz, logger: logger}
}

func (s *classHistoryService) Create(ctx context.Context, actorID string, req *dto.CreateClassHistoryRequest) (*dto.ClassHistoryResponse, error) {
	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		return nil, err
	}

	status := model.StatusNotDelivered
	if req.Status != nil {
		status = *req.Status
	}

	history := &model.ClassHistory{
		Date:      date,
		SlotID:    req.SlotID,
		SectionID: req.SectionID,
		TeacherID: req.TeacherID,
		RoomID:    req.RoomID,
		CourseID:  req.CourseID,
		Status:    status,
		Notes:     req.Notes,
	}
	if actorID != "" {
		history.CreatedBy = &actorID
	}

	inserted, err := s.repo.ClassHistory.BatchInsertIgnore(ctx, []model.ClassHistory{*history})
	if err != nil {
		s.logger.Error("create class history failed",
			zap.String("date", req.Date),
			zap.String("section_id", req.SectionID),
			zap.Error(err),
		)
		return nil, err
	}
	if inserted == 0 {
		return nil, ErrHistoryExists
	}

	// read the row back by its logical key to recover the generated id
	created, err := s.repo.ClassHistory.GetByDateSlotSection(ctx, date, req.SlotID, req.SectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHistoryNotFound
		}
		return nil, err
	}
	return toClassHistoryResponse(created), nil
}

func (s *classHistoryService) GetByID(ctx context.Context, id string) (*dto.ClassHistoryResponse, error) {
	history, err := s.repo.ClassHistory.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHistoryNotFound
		}
		return nil, err
	}
	return toClassHistoryResponse(history), nil
}

func (s *classHistoryService) Update(ctx context.Context, actorID, id string, req *dto.UpdateClassHistoryRequest) (*dto.ClassHistoryResponse, error) {
	if req.Status == nil && req.Notes == nil {
		return nil, pkgerrors.ErrEmptyUpdate
	}

	history, err := s.repo.ClassHistory.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHistoryNotFound
		}
		return nil, err
	}

	// The assigned teacher counts as the record owner for the own-record
	// fallback.
	pol := Policy{Permission: "class_history:update", OwnPermission: "class_history:update_own"}
	if err := s.authz.CheckPolicy(ctx, actorID, pol, history.TeacherID); err != nil {
		return nil, err
	}

	if req.Status != nil {
		history.Status = *req.Status
	}
	if req.Notes != nil {
		history.Notes = req.Notes
	}
	if actorID != "" {
		history.UpdatedBy = &actorID
	}

	// drop preloaded associations so Save does not upsert them
	history.Slot, history.Section, history.Teacher = nil, nil, nil
	history.Room, history.Course = nil, nil

	if err := s.repo.ClassHistory.Update(ctx, history); err != nil {
		s.logger.Error("update class history failed", zap.String("history_id", id), zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.ClassHistory.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toClassHistoryResponse(updated), nil
}

func (s *classHistoryService) Delete(ctx context.Context, actorID, id string) error {
	if _, err := s.repo.ClassHistory.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHistoryNotFound
		}
		return err
	}
	return s.repo.ClassHistory.Delete(ctx, id, actorID)
}

func (s *classHistoryService) List(ctx context.Context, req *dto.ClassHistoryListRequest) ([]dto.ClassHistoryResponse, int64, error) {
	filter := repository.ClassHistoryFilter{
		SectionID: req.SectionID,
		TeacherID: req.TeacherID,
		Status:    req.Status,
	}
	if req.From != "" {
		from, err := time.ParseInLocation("2006-01-02", req.From, time.UTC)
		if err != nil {
			return nil, 0, err
		}
		filter.From = &from
	}
	if req.To != "" {
		to, err := time.ParseInLocation("2006-01-02", req.To, time.UTC)
		if err != nil {
			return nil, 0, err
		}
		filter.To = &to
	}

	histories, total, err := s.repo.ClassHistory.List(ctx, filter, req.Offset(), req.PageSize)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]dto.ClassHistoryResponse, 0, len(histories))
	for i := range histories {
		resp = append(resp, *toClassHistoryResponse(&histories[i]))
	}
	return resp, total, nil
}
