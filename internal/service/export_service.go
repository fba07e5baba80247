package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/dto"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/model"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/repository"
)

var (
	ErrExportNoSchedules  = errors.New("no weekly schedules to export")
	ErrExportNoHistories  = errors.New("no class histories in the requested range")
	ErrExportGenerateFail = errors.New("failed to generate excel file")
)

// ExportService renders schedules and history reports as Excel (.xlsx).
// Content is returned as a bytes.Buffer; the handler sets the response
// headers and streams it out.
type ExportService interface {
	// ExportWeeklySchedule renders the weekly template as a grid: one row
	// per slot, one column per weekday. A sectionID narrows the export to
	// one section; empty exports everything.
	ExportWeeklySchedule(ctx context.Context, sectionID string) (*bytes.Buffer, string, error)

	// ExportClassHistories renders a flat delivery report over a date range.
	ExportClassHistories(ctx context.Context, req *dto.ClassHistoryListRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// weekdayColumns fixes the column order of the schedule grid.
var weekdayColumns = []model.Weekday{
	model.Sunday, model.Monday, model.Tuesday, model.Wednesday,
	model.Thursday, model.Friday, model.Saturday,
}

func (s *exportService) ExportWeeklySchedule(ctx context.Context, sectionID string) (*bytes.Buffer, string, error) {
	templates, err := s.repo.Schedule.ListAll(ctx)
	if err != nil {
		s.logger.Error("export: list schedules failed", zap.Error(err))
		return nil, "", err
	}
	if sectionID != "" {
		filtered := templates[:0]
		for _, t := range templates {
			if t.SectionID == sectionID {
				filtered = append(filtered, t)
			}
		}
		templates = filtered
	}
	if len(templates) == 0 {
		return nil, "", ErrExportNoSchedules
	}

	slots, err := s.repo.Slot.List(ctx)
	if err != nil {
		s.logger.Error("export: list slots failed", zap.Error(err))
		return nil, "", err
	}

	// cell index: "day:slotID" → one line per section sharing the cell
	cellLines := make(map[string][]string, len(templates))
	for _, t := range templates {
		text := scheduleCellText(ctx, s.repo, &t)
		if sectionID == "" {
			sectionText := t.SectionID
			if section, err := s.repo.Section.GetByID(ctx, t.SectionID); err == nil {
				sectionText = section.Name
			}
			text = sectionText + ": " + text
		}
		key := fmt.Sprintf("%s:%s", t.Day, t.SlotID)
		cellLines[key] = append(cellLines[key], text)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Weekly Schedule"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 16)
	for i := range weekdayColumns {
		col, _ := excelize.ColumnNumberToName(2 + i)
		f.SetColWidth(sheetName, col, col, 26)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// header row
	f.SetCellValue(sheetName, "A1", "Slot")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)
	for i, day := range weekdayColumns {
		c := cell(colName(1+i), 1)
		f.SetCellValue(sheetName, c, string(day))
		f.SetCellStyle(sheetName, c, c, headerStyle)
	}

	// one row per slot, ordered by ordinal
	row := 2
	for _, slot := range slots {
		f.SetCellValue(sheetName, cell("A", row), fmt.Sprintf("%s-%s", slot.StartTime, slot.EndTime))
		for i, day := range weekdayColumns {
			key := fmt.Sprintf("%s:%s", day, slot.SlotID)
			if lines, ok := cellLines[key]; ok {
				f.SetCellValue(sheetName, cell(colName(1+i), row), strings.Join(lines, "\n"))
			} else {
				f.SetCellValue(sheetName, cell(colName(1+i), row), "-")
			}
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("export: write excel failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, "weekly_schedule.xlsx", nil
}

func (s *exportService) ExportClassHistories(ctx context.Context, req *dto.ClassHistoryListRequest) (*bytes.Buffer, string, error) {
	filter := repository.ClassHistoryFilter{
		SectionID: req.SectionID,
		TeacherID: req.TeacherID,
		Status:    req.Status,
	}
	if req.From != "" {
		from, err := time.ParseInLocation("2006-01-02", req.From, time.UTC)
		if err != nil {
			return nil, "", err
		}
		filter.From = &from
	}
	if req.To != "" {
		to, err := time.ParseInLocation("2006-01-02", req.To, time.UTC)
		if err != nil {
			return nil, "", err
		}
		filter.To = &to
	}

	// reports cover the whole range, not a page
	histories, _, err := s.repo.ClassHistory.List(ctx, filter, 0, 10000)
	if err != nil {
		s.logger.Error("export: list histories failed", zap.Error(err))
		return nil, "", err
	}
	if len(histories) == 0 {
		return nil, "", ErrExportNoHistories
	}

	sort.Slice(histories, func(i, j int) bool {
		return histories[i].Date.Before(histories[j].Date)
	})

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Class Report"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []string{"Date", "Slot", "Section", "Course", "Teacher", "Room", "Status", "Notes"}
	widths := []float64{12, 14, 14, 24, 20, 12, 14, 40}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	for i, h := range headers {
		col := colName(i)
		f.SetColWidth(sheetName, col, col, widths[i])
		c := cell(col, 1)
		f.SetCellValue(sheetName, c, h)
		f.SetCellStyle(sheetName, c, c, headerStyle)
	}

	row := 2
	for i := range histories {
		h := &histories[i]
		f.SetCellValue(sheetName, cell("A", row), h.Date.Format("2006-01-02"))
		if h.Slot != nil {
			f.SetCellValue(sheetName, cell("B", row), fmt.Sprintf("%s-%s", h.Slot.StartTime, h.Slot.EndTime))
		}
		if h.Section != nil {
			f.SetCellValue(sheetName, cell("C", row), h.Section.Name)
		}
		if h.Course != nil {
			f.SetCellValue(sheetName, cell("D", row), fmt.Sprintf("%s %s", h.Course.Code, h.Course.Title))
		}
		if h.Teacher != nil {
			f.SetCellValue(sheetName, cell("E", row), h.Teacher.Name)
		}
		if h.Room != nil {
			f.SetCellValue(sheetName, cell("F", row), h.Room.Name)
		}
		f.SetCellValue(sheetName, cell("G", row), h.Status)
		if h.Notes != nil {
			f.SetCellValue(sheetName, cell("H", row), *h.Notes)
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("export: write excel failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := "class_report.xlsx"
	if req.From != "" || req.To != "" {
		filename = fmt.Sprintf("class_report_%s_%s.xlsx", req.From, req.To)
	}
	return buf, filename, nil
}

// scheduleCellText builds the grid cell for one template row. The schedule
// list is preload-free (ListAll), so referenced names are resolved here.
func scheduleCellText(ctx context.Context, repo *repository.Repository, t *model.WeeklySchedule) string {
	courseText := t.CourseID
	if course, err := repo.Course.GetByID(ctx, t.CourseID); err == nil {
		courseText = course.Code
	}
	teacherText := ""
	if teacher, err := repo.User.GetByID(ctx, t.TeacherID); err == nil {
		teacherText = teacher.Name
	}
	roomText := ""
	if room, err := repo.Room.GetByID(ctx, t.RoomID); err == nil {
		roomText = room.Name
	}

	text := courseText
	if teacherText != "" {
		text += " / " + teacherText
	}
	if roomText != "" {
		text += " (" + roomText + ")"
	}
	return text
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
