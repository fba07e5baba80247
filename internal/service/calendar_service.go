package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/model"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/repository"
)

var ErrCalendarNoSchedules = errors.New("no weekly schedules for this section")

// CalendarService renders a section's weekly template as an iCalendar
// (RFC 5545) feed. Each template row becomes one weekly-recurring VEVENT
// anchored on its next occurrence.
type CalendarService interface {
	SectionFeed(ctx context.Context, sectionID string, now time.Time) (string, error)
}

type calendarService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCalendarService creates the CalendarService.
func NewCalendarService(repo *repository.Repository, logger *zap.Logger) CalendarService {
	return &calendarService{repo: repo, logger: logger}
}

func (s *calendarService) SectionFeed(ctx context.Context, sectionID string, now time.Time) (string, error) {
	section, err := s.repo.Section.GetByID(ctx, sectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrSectionNotFound
		}
		return "", err
	}

	templates, _, err := s.repo.Schedule.List(ctx, repository.WeeklyScheduleFilter{
		SectionID: sectionID,
	}, 0, 500)
	if err != nil {
		s.logger.Error("calendar: list schedules failed", zap.Error(err))
		return "", err
	}
	if len(templates) == 0 {
		return "", ErrCalendarNoSchedules
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//class-reporting//section feed//EN")
	cal.SetName(fmt.Sprintf("Class Schedule: %s", section.Name))

	for i := range templates {
		t := &templates[i]
		weekday, ok := t.Day.Time()
		if !ok {
			continue
		}

		start, end := eventWindow(now, weekday, t.Slot)

		event := cal.AddEvent(fmt.Sprintf("%s@class-reporting", t.ScheduleID))
		event.SetDtStampTime(now.UTC())
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(eventSummary(t))
		if t.Room != nil {
			event.SetLocation(t.Room.Name)
		}
		if t.Teacher != nil {
			event.SetDescription("Teacher: " + t.Teacher.Name)
		}
		event.AddRrule("FREQ=WEEKLY")
	}

	return cal.Serialize(), nil
}

// eventWindow computes the first event occurrence from the template's next
// weekday occurrence and the slot's start/end times. A slot time is "HH:MM"
// or "HH:MM:SS"; unparseable times fall back to a whole-day window.
func eventWindow(now time.Time, weekday time.Weekday, slot *model.Slot) (time.Time, time.Time) {
	date := nextOccurrence(now, weekday)
	if slot == nil {
		return date, date.Add(24 * time.Hour)
	}

	start, okStart := parseClock(slot.StartTime)
	end, okEnd := parseClock(slot.EndTime)
	if !okStart || !okEnd {
		return date, date.Add(24 * time.Hour)
	}

	return date.Add(start), date.Add(end)
}

// parseClock converts "HH:MM" or "HH:MM:SS" into an offset from midnight.
func parseClock(s string) (time.Duration, bool) {
	var h, m, sec int
	switch strings.Count(s, ":") {
	case 1:
		if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
			return 0, false
		}
	case 2:
		if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
			return 0, false
		}
	default:
		return 0, false
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, true
}

func eventSummary(t *model.WeeklySchedule) string {
	if t.Course != nil {
		return fmt.Sprintf("%s %s", t.Course.Code, t.Course.Title)
	}
	return "Class"
}
