package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/model"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/repository"
)

// MaterializeResult reports one materializer run.
type MaterializeResult struct {
	Inserted int
	Skipped  int
}

// MaterializerService projects the weekly template onto dated class-history
// rows. Runs are idempotent: re-running over an overlapping window inserts
// nothing new, because candidate rows are keyed on (date, slot, section) and
// inserted with insert-if-absent semantics.
type MaterializerService interface {
	// MaterializeWeek computes, for every template row, the next occurrence
	// of its weekday strictly after now, and inserts the corresponding
	// history row unless one already exists for that (date, slot, section).
	MaterializeWeek(ctx context.Context, now time.Time) (*MaterializeResult, error)
}

type materializerService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMaterializerService creates the MaterializerService.
func NewMaterializerService(repo *repository.Repository, logger *zap.Logger) MaterializerService {
	return &materializerService{repo: repo, logger: logger}
}

func (s *materializerService) MaterializeWeek(ctx context.Context, now time.Time) (*MaterializeResult, error) {
	templates, err := s.repo.Schedule.ListAll(ctx)
	if err != nil {
		s.logger.Error("materializer: list templates failed", zap.Error(err))
		return nil, fmt.Errorf("list weekly templates: %w", err)
	}

	result := &MaterializeResult{}
	if len(templates) == 0 {
		s.logger.Info("materializer: no templates to project")
		return result, nil
	}

	// Build candidates, collapsing templates that land on the same
	// (date, slot, section) key. The first template wins; later collisions
	// count as skipped, mirroring the insert-if-absent policy.
	type key struct {
		date      string
		slotID    string
		sectionID string
	}
	seen := make(map[key]bool, len(templates))
	candidates := make([]model.ClassHistory, 0, len(templates))

	for _, tmpl := range templates {
		weekday, ok := tmpl.Day.Time()
		if !ok {
			s.logger.Warn("materializer: template has invalid day, skipping",
				zap.String("schedule_id", tmpl.ScheduleID),
				zap.String("day", string(tmpl.Day)),
			)
			result.Skipped++
			continue
		}

		date := nextOccurrence(now, weekday)
		k := key{date: date.Format("2006-01-02"), slotID: tmpl.SlotID, sectionID: tmpl.SectionID}
		if seen[k] {
			result.Skipped++
			continue
		}
		seen[k] = true

		candidates = append(candidates, model.ClassHistory{
			Date:      date,
			SlotID:    tmpl.SlotID,
			SectionID: tmpl.SectionID,
			TeacherID: tmpl.TeacherID,
			RoomID:    tmpl.RoomID,
			CourseID:  tmpl.CourseID,
			Status:    model.StatusNotDelivered,
			Notes:     nil,
		})
	}

	inserted, err := s.repo.ClassHistory.BatchInsertIgnore(ctx, candidates)
	if err != nil {
		s.logger.Error("materializer: batch insert failed", zap.Error(err))
		return nil, fmt.Errorf("insert class histories: %w", err)
	}

	result.Inserted = int(inserted)
	result.Skipped += len(candidates) - int(inserted)

	s.logger.Info("materializer run complete",
		zap.Int("templates", len(templates)),
		zap.Int("inserted", result.Inserted),
		zap.Int("skipped", result.Skipped),
	)

	return result, nil
}

// nextOccurrence returns the next calendar date strictly after now whose
// weekday matches target, normalized to 00:00:00 UTC. When now itself falls
// on the target weekday the occurrence is seven days later, never today.
func nextOccurrence(now time.Time, target time.Weekday) time.Time {
	day := now.UTC()
	delta := (int(target) - int(day.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	next := day.AddDate(0, 0, delta)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, time.UTC)
}
