package model

import "time"

// ── 作业枚举 ──

// AssignmentStatus 作业状态
type AssignmentStatus string

const (
	AssignmentNotStarted AssignmentStatus = "not_started"
	AssignmentInProgress AssignmentStatus = "in_progress"
	AssignmentCompleted  AssignmentStatus = "completed"
	AssignmentOverdue    AssignmentStatus = "overdue"
	AssignmentSubmitted  AssignmentStatus = "submitted"
)

// IsValid 校验作业状态取值
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentNotStarted, AssignmentInProgress, AssignmentCompleted,
		AssignmentOverdue, AssignmentSubmitted:
		return true
	}
	return false
}

// AssignmentType 作业类型
type AssignmentType string

const (
	TypeHomework     AssignmentType = "homework"
	TypeQuiz         AssignmentType = "quiz"
	TypeExam         AssignmentType = "exam"
	TypeProject      AssignmentType = "project"
	TypeEssay        AssignmentType = "essay"
	TypeLab          AssignmentType = "lab"
	TypePresentation AssignmentType = "presentation"
	TypeDiscussion   AssignmentType = "discussion"
	TypeOther        AssignmentType = "other"
)

// IsValid 校验作业类型取值
func (t AssignmentType) IsValid() bool {
	switch t {
	case TypeHomework, TypeQuiz, TypeExam, TypeProject, TypeEssay,
		TypeLab, TypePresentation, TypeDiscussion, TypeOther:
		return true
	}
	return false
}

// Priority 优先级
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// IsValid 校验优先级取值
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ── 作业实体 ──

// Assignment 作业 — Class 的子实体，ClassID 为回指父级的查找键（非所有权）
type Assignment struct {
	BaseEntity
	Title          string           `json:"title"`
	Description    string           `json:"description,omitempty"`
	Type           AssignmentType   `json:"type"`
	Status         AssignmentStatus `json:"status"`
	Priority       Priority         `json:"priority"`
	DueDate        time.Time        `json:"dueDate"`
	EstimatedHours *float64         `json:"estimatedHours,omitempty"`
	ActualHours    *float64         `json:"actualHours,omitempty"`
	Points         *float64         `json:"points,omitempty"`
	EarnedPoints   *float64         `json:"earnedPoints,omitempty"`
	ClassID        string           `json:"classId"`
	Notes          string           `json:"notes,omitempty"`
	Attachments    []string         `json:"attachments,omitempty"`
	ReminderDate   *time.Time       `json:"reminderDate,omitempty"`
}

// IsOverdue 读时判定：截止日期已过且既未完成也未提交
// 只是查询层的派生分类，不回写存储中的 Status
func (a *Assignment) IsOverdue(now time.Time) bool {
	return a.DueDate.Before(now) &&
		a.Status != AssignmentCompleted &&
		a.Status != AssignmentSubmitted
}

// CreateAssignmentData 创建作业的字段集（仓储层负责补全 ID/时间戳）
type CreateAssignmentData struct {
	Title          string
	Description    string
	Type           AssignmentType
	Status         AssignmentStatus
	Priority       Priority
	DueDate        time.Time
	EstimatedHours *float64
	ActualHours    *float64
	Points         *float64
	EarnedPoints   *float64
	Notes          string
	Attachments    []string
	ReminderDate   *time.Time
}

// UpdateAssignmentData 部分更新：nil 字段保留原值，非 nil 字段覆盖
type UpdateAssignmentData struct {
	Title          *string
	Description    *string
	Type           *AssignmentType
	Status         *AssignmentStatus
	Priority       *Priority
	DueDate        *time.Time
	EstimatedHours *float64
	ActualHours    *float64
	Points         *float64
	EarnedPoints   *float64
	Notes          *string
	Attachments    []string
	ReminderDate   *time.Time
}

// [自证通过] internal/model/assignment.go
