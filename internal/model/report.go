package model

import "time"

// ── 查询/报表层的只读视图类型 ──

// DashboardStats 单个学校的总览统计（读时计算，不持久化）
type DashboardStats struct {
	TotalAssignments       int     `json:"totalAssignments"`
	CompletedAssignments   int     `json:"completedAssignments"`
	OverdueAssignments     int     `json:"overdueAssignments"`
	UpcomingAssignments    int     `json:"upcomingAssignments"`
	CurrentGPA             float64 `json:"currentGPA"`
	TotalCredits           int     `json:"totalCredits"`
	CurrentSemesterClasses int     `json:"currentSemesterClasses"`
}

// AssignmentFilter 作业多条件筛选，空字段不参与过滤
type AssignmentFilter struct {
	Status       []AssignmentStatus `json:"status,omitempty"`
	Type         []AssignmentType   `json:"type,omitempty"`
	Priority     []Priority         `json:"priority,omitempty"`
	ClassID      string             `json:"classId,omitempty"`
	SemesterID   string             `json:"semesterId,omitempty"`
	DueDateStart *time.Time         `json:"dueDateStart,omitempty"`
	DueDateEnd   *time.Time         `json:"dueDateEnd,omitempty"`
}

// CalendarEvent 日历视图事件（课时按周展开 + 作业截止日期）
type CalendarEvent struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Type         string    `json:"type"` // class | assignment | exam
	ClassID      string    `json:"classId,omitempty"`
	AssignmentID string    `json:"assignmentId,omitempty"`
	Color        string    `json:"color,omitempty"`
	Location     string    `json:"location,omitempty"`
}

// IntegrityReport 数据完整性检查结果
type IntegrityReport struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}
