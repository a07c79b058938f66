package model

import (
	"fmt"
	"strings"
)

// ── 展示常量（与旧版 Web 端一致） ──

// DefaultClassColor 课程默认颜色（蓝）
const DefaultClassColor = "#3B82F6"

// ClassColors 课程可选颜色
var ClassColors = []string{
	"#3B82F6", // Blue
	"#EF4444", // Red
	"#10B981", // Green
	"#F59E0B", // Yellow
	"#8B5CF6", // Purple
	"#F97316", // Orange
	"#06B6D4", // Cyan
	"#EC4899", // Pink
}

// DayNames 星期名称，下标即 ClassSchedule.DayOfWeek（0=Sunday）
var DayNames = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var scheduleTypeColors = map[ScheduleType]string{
	ScheduleLecture:    "#3B82F6",
	ScheduleLab:        "#10B981",
	ScheduleDiscussion: "#F59E0B",
	ScheduleSeminar:    "#8B5CF6",
	ScheduleTutorial:   "#EF4444",
	ScheduleWorkshop:   "#F97316",
	ScheduleExam:       "#6B7280",
	ScheduleOther:      "#EC4899",
}

// ScheduleTypeColor 返回课时类型的展示颜色，未知类型回退灰色
func ScheduleTypeColor(t ScheduleType) string {
	if c, ok := scheduleTypeColors[t]; ok {
		return c
	}
	return "#6B7280"
}

var scheduleTypeLabels = map[ScheduleType]string{
	ScheduleLecture:    "Lecture",
	ScheduleLab:        "Lab",
	ScheduleDiscussion: "Discussion",
	ScheduleSeminar:    "Seminar",
	ScheduleTutorial:   "Tutorial",
	ScheduleWorkshop:   "Workshop",
	ScheduleExam:       "Exam",
	ScheduleOther:      "Other",
}

// FormatSchedule 将课时列表格式化为单行文本，按类型分组
// 例: "Lecture: Monday 09:00-10:15 @ Science Hall, 204; Lab: Wednesday 14:00-16:00"
func FormatSchedule(schedule []ClassSchedule) string {
	if len(schedule) == 0 {
		return "No schedule set"
	}

	// 保持首次出现的类型顺序，组内保持插入顺序
	var order []ScheduleType
	grouped := make(map[ScheduleType][]ClassSchedule)
	for _, slot := range schedule {
		if _, ok := grouped[slot.Type]; !ok {
			order = append(order, slot.Type)
		}
		grouped[slot.Type] = append(grouped[slot.Type], slot)
	}

	groups := make([]string, 0, len(order))
	for _, t := range order {
		label := scheduleTypeLabels[t]
		if label == "" {
			label = string(t)
		}
		slots := make([]string, 0, len(grouped[t]))
		for _, slot := range grouped[t] {
			day := "Unknown"
			if slot.DayOfWeek >= 0 && slot.DayOfWeek < len(DayNames) {
				day = DayNames[slot.DayOfWeek]
			}
			text := fmt.Sprintf("%s %s-%s", day, slot.StartTime, slot.EndTime)
			var parts []string
			for _, p := range []string{slot.Building, slot.Room, slot.Location} {
				if p != "" {
					parts = append(parts, p)
				}
			}
			if len(parts) > 0 {
				text += " @ " + strings.Join(parts, ", ")
			}
			slots = append(slots, text)
		}
		groups = append(groups, label+": "+strings.Join(slots, ", "))
	}

	return strings.Join(groups, "; ")
}
