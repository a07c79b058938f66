package dto

// ── 作业模块 DTO ──

// CreateAssignmentRequest 创建作业请求
// 日期接受 RFC 3339 或 "2006-01-02"（Service 层解析）
type CreateAssignmentRequest struct {
	Title          string   `json:"title"          binding:"required,min=1,max=300"`
	Description    string   `json:"description"    binding:"omitempty,max=2000"`
	Type           string   `json:"type"           binding:"required,oneof=homework quiz exam project essay lab presentation discussion other"`
	Status         string   `json:"status"         binding:"required,oneof=not_started in_progress completed overdue submitted"`
	Priority       string   `json:"priority"       binding:"required,oneof=low medium high urgent"`
	DueDate        string   `json:"dueDate"        binding:"required"`
	EstimatedHours *float64 `json:"estimatedHours" binding:"omitempty,gte=0"`
	ActualHours    *float64 `json:"actualHours"    binding:"omitempty,gte=0"`
	Points         *float64 `json:"points"         binding:"omitempty,gte=0"`
	EarnedPoints   *float64 `json:"earnedPoints"   binding:"omitempty,gte=0"`
	Notes          string   `json:"notes"          binding:"omitempty,max=2000"`
	Attachments    []string `json:"attachments"    binding:"omitempty,dive,max=500"`
	ReminderDate   *string  `json:"reminderDate"`
}

// UpdateAssignmentRequest 更新作业请求（缺省字段保持原值）
type UpdateAssignmentRequest struct {
	Title          *string  `json:"title"          binding:"omitempty,min=1,max=300"`
	Description    *string  `json:"description"    binding:"omitempty,max=2000"`
	Type           *string  `json:"type"           binding:"omitempty,oneof=homework quiz exam project essay lab presentation discussion other"`
	Status         *string  `json:"status"         binding:"omitempty,oneof=not_started in_progress completed overdue submitted"`
	Priority       *string  `json:"priority"       binding:"omitempty,oneof=low medium high urgent"`
	DueDate        *string  `json:"dueDate"`
	EstimatedHours *float64 `json:"estimatedHours" binding:"omitempty,gte=0"`
	ActualHours    *float64 `json:"actualHours"    binding:"omitempty,gte=0"`
	Points         *float64 `json:"points"         binding:"omitempty,gte=0"`
	EarnedPoints   *float64 `json:"earnedPoints"   binding:"omitempty,gte=0"`
	Notes          *string  `json:"notes"          binding:"omitempty,max=2000"`
	Attachments    []string `json:"attachments"    binding:"omitempty,dive,max=500"`
	ReminderDate   *string  `json:"reminderDate"`
}

// FilterAssignmentsRequest 组合筛选作业请求
// 所有条件均可选，给出的条件之间取交集
type FilterAssignmentsRequest struct {
	Status       []string `json:"status"       binding:"omitempty,dive,oneof=not_started in_progress completed overdue submitted"`
	Type         []string `json:"type"         binding:"omitempty,dive,oneof=homework quiz exam project essay lab presentation discussion other"`
	Priority     []string `json:"priority"     binding:"omitempty,dive,oneof=low medium high urgent"`
	ClassID      string   `json:"classId"`
	SemesterID   string   `json:"semesterId"`
	DueDateStart *string  `json:"dueDateStart"`
	DueDateEnd   *string  `json:"dueDateEnd"`
}

// AssignmentLocator 作业在四级层级中的完整定位
type AssignmentLocator struct {
	CollegeID    string `json:"collegeId"    binding:"required"`
	SemesterID   string `json:"semesterId"   binding:"required"`
	ClassID      string `json:"classId"      binding:"required"`
	AssignmentID string `json:"assignmentId" binding:"required"`
}

// BulkUpdateItem 批量更新中的一项
type BulkUpdateItem struct {
	AssignmentLocator
	Data UpdateAssignmentRequest `json:"data" binding:"required"`
}

// BulkUpdateRequest 批量更新作业请求
// 各项彼此独立：单项失败不影响其余项，也不回滚
type BulkUpdateRequest struct {
	Updates []BulkUpdateItem `json:"updates" binding:"required,min=1,dive"`
}

// BulkUpdateResponse 批量更新结果，与输入同序
type BulkUpdateResponse struct {
	Results []bool `json:"results"`
}
