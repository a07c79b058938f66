package dto

// ── 课程模块 DTO ──

// ScheduleSlotRequest 每周课时
// DayOfWeek 0=周日 … 6=周六；时间为 24 小时制 "HH:MM"，结束须晚于开始（Service 层校验）
type ScheduleSlotRequest struct {
	DayOfWeek  int    `json:"dayOfWeek"  binding:"gte=0,lte=6"`
	StartTime  string `json:"startTime"  binding:"required"`
	EndTime    string `json:"endTime"    binding:"required"`
	Location   string `json:"location"   binding:"omitempty,max=200"`
	Building   string `json:"building"   binding:"omitempty,max=200"`
	Room       string `json:"room"       binding:"omitempty,max=50"`
	Type       string `json:"type"       binding:"required,oneof=lecture lab discussion seminar tutorial workshop exam other"`
	Instructor string `json:"instructor" binding:"omitempty,max=200"`
	Notes      string `json:"notes"      binding:"omitempty,max=1000"`
}

// CreateClassRequest 创建课程请求
type CreateClassRequest struct {
	Name            string                `json:"name"            binding:"required,min=1,max=200"`
	CourseCode      string                `json:"courseCode"      binding:"required,max=50"`
	Section         string                `json:"section"         binding:"omitempty,max=50"`
	Credits         int                   `json:"credits"         binding:"required,gt=0"`
	Instructor      string                `json:"instructor"      binding:"required,max=200"`
	InstructorEmail string                `json:"instructorEmail" binding:"omitempty,email"`
	Status          string                `json:"status"          binding:"required,oneof=active completed dropped withdrawn"`
	Schedule        []ScheduleSlotRequest `json:"schedule"        binding:"omitempty,dive"`
	Syllabus        string                `json:"syllabus"        binding:"omitempty,max=500"`
	Description     string                `json:"description"     binding:"omitempty,max=2000"`
	OfficeHours     string                `json:"officeHours"     binding:"omitempty,max=500"`
	CurrentGrade    *float64              `json:"currentGrade"    binding:"omitempty,gte=0,lte=100"`
	TargetGrade     *float64              `json:"targetGrade"     binding:"omitempty,gte=0,lte=100"`
	Color           string                `json:"color"           binding:"omitempty,hexcolor"`
}

// UpdateClassRequest 更新课程请求（缺省字段保持原值；Schedule 非空时整体替换）
type UpdateClassRequest struct {
	Name            *string               `json:"name"            binding:"omitempty,min=1,max=200"`
	CourseCode      *string               `json:"courseCode"      binding:"omitempty,max=50"`
	Section         *string               `json:"section"         binding:"omitempty,max=50"`
	Credits         *int                  `json:"credits"         binding:"omitempty,gt=0"`
	Instructor      *string               `json:"instructor"      binding:"omitempty,max=200"`
	InstructorEmail *string               `json:"instructorEmail" binding:"omitempty,email"`
	Status          *string               `json:"status"          binding:"omitempty,oneof=active completed dropped withdrawn"`
	Schedule        []ScheduleSlotRequest `json:"schedule"        binding:"omitempty,dive"`
	Syllabus        *string               `json:"syllabus"        binding:"omitempty,max=500"`
	Description     *string               `json:"description"     binding:"omitempty,max=2000"`
	OfficeHours     *string               `json:"officeHours"     binding:"omitempty,max=500"`
	CurrentGrade    *float64              `json:"currentGrade"    binding:"omitempty,gte=0,lte=100"`
	TargetGrade     *float64              `json:"targetGrade"     binding:"omitempty,gte=0,lte=100"`
	Color           *string               `json:"color"           binding:"omitempty,hexcolor"`
}
