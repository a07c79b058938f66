package model

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity 所有实体共有的审计字段（College / Semester / Class / Assignment 嵌入）
// JSON 字段名沿用旧版 Web 端的存储格式（camelCase），保证导入导出互通
type BaseEntity struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewBaseEntity 分配新实体的 ID 与时间戳
// ID 使用 UUID 而非时间戳，避免连续快速创建时的碰撞
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch 刷新 UpdatedAt（任何后代变更时沿祖先链逐级调用）
func (b *BaseEntity) Touch() {
	b.UpdatedAt = time.Now()
}
