package dto

// ── 学期模块 DTO ──

// CreateSemesterRequest 创建学期请求
// 日期为 "2006-01-02"；结束日期须晚于开始日期（Service 层校验）
type CreateSemesterRequest struct {
	Name      string   `json:"name"      binding:"required,min=1,max=200"`
	Type      string   `json:"type"      binding:"required,oneof=fall spring summer winter"`
	Year      int      `json:"year"      binding:"required,gte=1900,lte=2200"`
	Status    string   `json:"status"    binding:"required,oneof=upcoming current completed"`
	StartDate string   `json:"startDate" binding:"required"`
	EndDate   string   `json:"endDate"   binding:"required"`
	GPA       *float64 `json:"gpa"       binding:"omitempty,gte=0,lte=4"`
	TargetGPA *float64 `json:"targetGPA" binding:"omitempty,gte=0,lte=4"`
}

// UpdateSemesterRequest 更新学期请求（缺省字段保持原值）
type UpdateSemesterRequest struct {
	Name      *string  `json:"name"      binding:"omitempty,min=1,max=200"`
	Type      *string  `json:"type"      binding:"omitempty,oneof=fall spring summer winter"`
	Year      *int     `json:"year"      binding:"omitempty,gte=1900,lte=2200"`
	Status    *string  `json:"status"    binding:"omitempty,oneof=upcoming current completed"`
	StartDate *string  `json:"startDate"`
	EndDate   *string  `json:"endDate"`
	GPA       *float64 `json:"gpa"       binding:"omitempty,gte=0,lte=4"`
	TargetGPA *float64 `json:"targetGPA" binding:"omitempty,gte=0,lte=4"`
}
