package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/chiefpansancolt/college-buddy/internal/dto"
	"github.com/chiefpansancolt/college-buddy/internal/model"
)

// ── 跨模块共用的解析/校验 ──

var (
	ErrDateInvalid     = errors.New("日期格式无效，应为 RFC 3339 或 2006-01-02")
	ErrDateRange       = errors.New("结束日期必须晚于开始日期")
	ErrScheduleInvalid = errors.New("课时时间无效：应为 24 小时制 HH:MM 且结束晚于开始")
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// parseDate 解析日期：先试 RFC 3339，再试 "2006-01-02"
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDateInvalid, s)
	}
	return t, nil
}

// parseOptionalDate 解析可空日期指针
func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// convertSchedule 将课时请求转为模型值，并校验时间合法性
func convertSchedule(slots []dto.ScheduleSlotRequest) ([]model.ClassSchedule, error) {
	if slots == nil {
		return nil, nil
	}
	schedule := make([]model.ClassSchedule, 0, len(slots))
	for _, slot := range slots {
		start, err := time.Parse(timeLayout, slot.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: startTime=%q", ErrScheduleInvalid, slot.StartTime)
		}
		end, err := time.Parse(timeLayout, slot.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: endTime=%q", ErrScheduleInvalid, slot.EndTime)
		}
		if !end.After(start) {
			return nil, ErrScheduleInvalid
		}
		schedule = append(schedule, model.ClassSchedule{
			DayOfWeek:  slot.DayOfWeek,
			StartTime:  slot.StartTime,
			EndTime:    slot.EndTime,
			Location:   slot.Location,
			Building:   slot.Building,
			Room:       slot.Room,
			Type:       model.ScheduleType(slot.Type),
			Instructor: slot.Instructor,
			Notes:      slot.Notes,
		})
	}
	return schedule, nil
}

// ── 枚举指针的类型转换小工具 ──

func assignmentStatusPtr(s *string) *model.AssignmentStatus {
	if s == nil {
		return nil
	}
	v := model.AssignmentStatus(*s)
	return &v
}

func assignmentTypePtr(s *string) *model.AssignmentType {
	if s == nil {
		return nil
	}
	v := model.AssignmentType(*s)
	return &v
}

func priorityPtr(s *string) *model.Priority {
	if s == nil {
		return nil
	}
	v := model.Priority(*s)
	return &v
}

func classStatusPtr(s *string) *model.ClassStatus {
	if s == nil {
		return nil
	}
	v := model.ClassStatus(*s)
	return &v
}

func semesterTypePtr(s *string) *model.SemesterType {
	if s == nil {
		return nil
	}
	v := model.SemesterType(*s)
	return &v
}

func semesterStatusPtr(s *string) *model.SemesterStatus {
	if s == nil {
		return nil
	}
	v := model.SemesterStatus(*s)
	return &v
}
