package dto

import "github.com/chiefpansancolt/college-buddy/internal/model"

// ── 设置模块 DTO ──

// UpdateSettingsRequest 更新应用设置请求（缺省字段保持原值）
// Notifications / Academic 非空时整块替换
type UpdateSettingsRequest struct {
	Theme         *string                     `json:"theme"         binding:"omitempty,oneof=light dark system"`
	DefaultView   *string                     `json:"defaultView"   binding:"omitempty,oneof=calendar list kanban"`
	Notifications *model.NotificationSettings `json:"notifications"`
	Academic      *model.AcademicSettings     `json:"academic"`
}
