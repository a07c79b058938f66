package model

// ── 课程枚举 ──

// ClassStatus 课程状态
type ClassStatus string

const (
	ClassActive    ClassStatus = "active"
	ClassCompleted ClassStatus = "completed"
	ClassDropped   ClassStatus = "dropped"
	ClassWithdrawn ClassStatus = "withdrawn"
)

// IsValid 校验课程状态取值
func (s ClassStatus) IsValid() bool {
	switch s {
	case ClassActive, ClassCompleted, ClassDropped, ClassWithdrawn:
		return true
	}
	return false
}

// ScheduleType 课时类型（区分讲座 / 实验 / 研讨等场次）
type ScheduleType string

const (
	ScheduleLecture    ScheduleType = "lecture"
	ScheduleLab        ScheduleType = "lab"
	ScheduleDiscussion ScheduleType = "discussion"
	ScheduleSeminar    ScheduleType = "seminar"
	ScheduleTutorial   ScheduleType = "tutorial"
	ScheduleWorkshop   ScheduleType = "workshop"
	ScheduleExam       ScheduleType = "exam"
	ScheduleOther      ScheduleType = "other"
)

// IsValid 校验课时类型取值
func (t ScheduleType) IsValid() bool {
	switch t {
	case ScheduleLecture, ScheduleLab, ScheduleDiscussion, ScheduleSeminar,
		ScheduleTutorial, ScheduleWorkshop, ScheduleExam, ScheduleOther:
		return true
	}
	return false
}

// ── 课程实体 ──

// ClassSchedule 每周固定课时（值类型，无独立 ID）
// DayOfWeek: 0=周日 … 6=周六；时间为 24 小时制 "HH:MM"
type ClassSchedule struct {
	DayOfWeek  int          `json:"dayOfWeek"`
	StartTime  string       `json:"startTime"`
	EndTime    string       `json:"endTime"`
	Location   string       `json:"location,omitempty"`
	Building   string       `json:"building,omitempty"`
	Room       string       `json:"room,omitempty"`
	Type       ScheduleType `json:"type"`
	Instructor string       `json:"instructor,omitempty"` // 该场次单独的授课教师（如实验课助教）
	Notes      string       `json:"notes,omitempty"`
}

// Class 课程 — Semester 的子实体，SemesterID 为回指父级的查找键
type Class struct {
	BaseEntity
	Name            string          `json:"name"`
	CourseCode      string          `json:"courseCode"`
	Section         string          `json:"section,omitempty"`
	Credits         int             `json:"credits"`
	Instructor      string          `json:"instructor"`
	InstructorEmail string          `json:"instructorEmail,omitempty"`
	Status          ClassStatus     `json:"status"`
	Schedule        []ClassSchedule `json:"schedule"`
	Syllabus        string          `json:"syllabus,omitempty"`
	Description     string          `json:"description,omitempty"`
	OfficeHours     string          `json:"officeHours,omitempty"`
	SemesterID      string          `json:"semesterId"`
	Assignments     []Assignment    `json:"assignments"`
	CurrentGrade    *float64        `json:"currentGrade,omitempty"` // 0-100
	TargetGrade     *float64        `json:"targetGrade,omitempty"`
	Color           string          `json:"color,omitempty"` // 十六进制颜色，默认蓝色
}

// CreateClassData 创建课程的字段集
type CreateClassData struct {
	Name            string
	CourseCode      string
	Section         string
	Credits         int
	Instructor      string
	InstructorEmail string
	Status          ClassStatus
	Schedule        []ClassSchedule
	Syllabus        string
	Description     string
	OfficeHours     string
	CurrentGrade    *float64
	TargetGrade     *float64
	Color           string
}

// UpdateClassData 部分更新：nil 字段保留原值，非 nil 字段覆盖
type UpdateClassData struct {
	Name            *string
	CourseCode      *string
	Section         *string
	Credits         *int
	Instructor      *string
	InstructorEmail *string
	Status          *ClassStatus
	Schedule        []ClassSchedule
	Syllabus        *string
	Description     *string
	OfficeHours     *string
	CurrentGrade    *float64
	TargetGrade     *float64
	Color           *string
}
