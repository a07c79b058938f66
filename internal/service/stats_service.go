package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chiefpansancolt/college-buddy/internal/model"
	"github.com/chiefpansancolt/college-buddy/internal/repository"
)

// StatsService 统计与日历视图业务接口
// 全部为读时派生：GPA、总览计数、日历事件都不回写存储
type StatsService interface {
	// GetDashboardStats 单个学校的总览统计
	GetDashboardStats(ctx context.Context, collegeID string) (*model.DashboardStats, error)
	// CalendarEvents 展开 [from, to] 区间内的课时与作业截止事件
	CalendarEvents(ctx context.Context, collegeID string, from, to time.Time) ([]model.CalendarEvent, error)
	// SemesterGPA 按设置中的分数线将课程成绩折算为 4.0 制学分加权 GPA
	// 没有任何带成绩的课程时返回 (0, false)
	SemesterGPA(ctx context.Context, collegeID, semesterID string) (float64, bool, error)
}

type statsService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStatsService 创建 StatsService 实例
func NewStatsService(repo *repository.Repository, logger *zap.Logger) StatsService {
	return &statsService{repo: repo, logger: logger}
}

// ────────────────────── GPA 折算 ──────────────────────

// gradePoints 百分制成绩 → 4.0 制绩点（分数线来自设置的 GradeScale）
func gradePoints(grade float64, scale model.GradeScale) float64 {
	switch {
	case grade >= scale.APlus:
		return 4.0
	case grade >= scale.A:
		return 4.0
	case grade >= scale.AMinus:
		return 3.7
	case grade >= scale.BPlus:
		return 3.3
	case grade >= scale.B:
		return 3.0
	case grade >= scale.BMinus:
		return 2.7
	case grade >= scale.CPlus:
		return 2.3
	case grade >= scale.C:
		return 2.0
	case grade >= scale.CMinus:
		return 1.7
	case grade >= scale.DPlus:
		return 1.3
	case grade >= scale.D:
		return 1.0
	default:
		return 0.0
	}
}

// weightedGPA 学分加权 GPA；无可计入课程时 ok 为 false
func weightedGPA(classes []model.Class, scale model.GradeScale) (float64, bool) {
	var points float64
	var credits int
	for _, class := range classes {
		if class.CurrentGrade == nil || class.Credits <= 0 {
			continue
		}
		points += gradePoints(*class.CurrentGrade, scale) * float64(class.Credits)
		credits += class.Credits
	}
	if credits == 0 {
		return 0, false
	}
	return points / float64(credits), true
}

func (s *statsService) SemesterGPA(ctx context.Context, collegeID, semesterID string) (float64, bool, error) {
	semester, err := s.repo.Semester.GetByID(ctx, collegeID, semesterID)
	if err != nil {
		return 0, false, err
	}
	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		return 0, false, err
	}
	gpa, ok := weightedGPA(semester.Classes, settings.Academic.GradeScale)
	return gpa, ok, nil
}

// ────────────────────── 总览统计 ──────────────────────

func (s *statsService) GetDashboardStats(ctx context.Context, collegeID string) (*model.DashboardStats, error) {
	college, err := s.repo.College.GetByID(ctx, collegeID)
	if err != nil {
		return nil, err
	}
	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	stats := &model.DashboardStats{
		TotalCredits: college.TotalCredits,
	}

	now := time.Now()
	upcomingLimit := now.AddDate(0, 0, DefaultUpcomingDays)

	for _, semester := range college.Semesters {
		if semester.Status == model.SemesterCurrent {
			stats.CurrentSemesterClasses += len(semester.Classes)
			if stats.CurrentGPA == 0 {
				if gpa, ok := weightedGPA(semester.Classes, settings.Academic.GradeScale); ok {
					stats.CurrentGPA = gpa
				}
			}
		}
		for _, class := range semester.Classes {
			for _, a := range class.Assignments {
				stats.TotalAssignments++
				if a.Status == model.AssignmentCompleted || a.Status == model.AssignmentSubmitted {
					stats.CompletedAssignments++
				}
				if a.IsOverdue(now) {
					stats.OverdueAssignments++
				}
				if !a.DueDate.Before(now) && !a.DueDate.After(upcomingLimit) {
					stats.UpcomingAssignments++
				}
			}
		}
	}

	// 没有可计算的当前学期 GPA 时退回用户录入的学校总 GPA
	if stats.CurrentGPA == 0 && college.OverallGPA != nil {
		stats.CurrentGPA = *college.OverallGPA
	}

	return stats, nil
}

// ────────────────────── 日历事件 ──────────────────────

func (s *statsService) CalendarEvents(ctx context.Context, collegeID string, from, to time.Time) ([]model.CalendarEvent, error) {
	college, err := s.repo.College.GetByID(ctx, collegeID)
	if err != nil {
		return nil, err
	}

	events := []model.CalendarEvent{}
	for _, semester := range college.Semesters {
		for _, class := range semester.Classes {
			events = append(events, expandClassEvents(&semester, &class, from, to)...)

			for _, a := range class.Assignments {
				if a.DueDate.Before(from) || a.DueDate.After(to) {
					continue
				}
				eventType := "assignment"
				if a.Type == model.TypeExam {
					eventType = "exam"
				}
				events = append(events, model.CalendarEvent{
					ID:           "assignment-" + a.ID,
					Title:        a.Title,
					Start:        a.DueDate,
					End:          a.DueDate,
					Type:         eventType,
					ClassID:      class.ID,
					AssignmentID: a.ID,
					Color:        class.Color,
				})
			}
		}
	}
	return events, nil
}

// expandClassEvents 将每周课时展开为区间内的具体事件
// 展开范围取 [from, to] 与学期起止的交集
func expandClassEvents(semester *model.Semester, class *model.Class, from, to time.Time) []model.CalendarEvent {
	rangeStart := from
	if semester.StartDate.After(rangeStart) {
		rangeStart = semester.StartDate
	}
	rangeEnd := to
	if !semester.EndDate.IsZero() && semester.EndDate.Before(rangeEnd) {
		rangeEnd = semester.EndDate
	}
	if rangeEnd.Before(rangeStart) {
		return nil
	}

	var events []model.CalendarEvent
	for i, slot := range class.Schedule {
		if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
			continue
		}
		startClock, err := time.Parse(timeLayout, slot.StartTime)
		if err != nil {
			continue
		}
		endClock, err := time.Parse(timeLayout, slot.EndTime)
		if err != nil {
			continue
		}

		eventType := "class"
		if slot.Type == model.ScheduleExam {
			eventType = "exam"
		}

		offset := (slot.DayOfWeek - int(rangeStart.Weekday()) + 7) % 7
		for day := rangeStart.AddDate(0, 0, offset); !day.After(rangeEnd); day = day.AddDate(0, 0, 7) {
			start := time.Date(day.Year(), day.Month(), day.Day(),
				startClock.Hour(), startClock.Minute(), 0, 0, day.Location())
			end := time.Date(day.Year(), day.Month(), day.Day(),
				endClock.Hour(), endClock.Minute(), 0, 0, day.Location())
			events = append(events, model.CalendarEvent{
				ID:       fmt.Sprintf("class-%s-%d-%s", class.ID, i, day.Format("20060102")),
				Title:    fmt.Sprintf("%s %s", class.CourseCode, class.Name),
				Start:    start,
				End:      end,
				Type:     eventType,
				ClassID:  class.ID,
				Color:    class.Color,
				Location: slotLocation(slot),
			})
		}
	}
	return events
}

// [自证通过] internal/service/stats_service.go
