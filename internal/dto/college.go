package dto

// ── 学校模块 DTO ──
//
// JSON 字段名与实体存储格式一致（camelCase），前端表单直接对上

// CreateCollegeRequest 创建学校请求
type CreateCollegeRequest struct {
	Name         string   `json:"name"         binding:"required,min=1,max=200"`
	Abbreviation string   `json:"abbreviation" binding:"omitempty,max=20"`
	Website      string   `json:"website"      binding:"omitempty,max=500"`
	Location     string   `json:"location"     binding:"omitempty,max=200"`
	OverallGPA   *float64 `json:"overallGPA"   binding:"omitempty,gte=0,lte=4"`
}

// UpdateCollegeRequest 更新学校请求（缺省字段保持原值）
type UpdateCollegeRequest struct {
	Name         *string  `json:"name"         binding:"omitempty,min=1,max=200"`
	Abbreviation *string  `json:"abbreviation" binding:"omitempty,max=20"`
	Website      *string  `json:"website"      binding:"omitempty,max=500"`
	Location     *string  `json:"location"     binding:"omitempty,max=200"`
	OverallGPA   *float64 `json:"overallGPA"   binding:"omitempty,gte=0,lte=4"`
}
