package repository

import (
	"context"

	"github.com/chiefpansancolt/college-buddy/internal/model"
)

// DataRepository 整图级操作：导出快照与导入覆盖
type DataRepository interface {
	// Snapshot 返回当前完整数据图（导出、完整性校验、跨实体查询用）
	Snapshot(ctx context.Context) (*model.AppData, error)
	// Replace 用给定数据图整体覆盖存储（导入成功后调用）
	Replace(ctx context.Context, data *model.AppData) error
}

type dataRepo struct {
	g *graph
}

func (r *dataRepo) Snapshot(_ context.Context) (*model.AppData, error) {
	var snapshot *model.AppData
	r.g.read(func(d *model.AppData) {
		snapshot = d
	})
	return snapshot, nil
}

func (r *dataRepo) Replace(_ context.Context, data *model.AppData) error {
	r.g.mu.Lock()
	defer r.g.mu.Unlock()
	r.g.store.Save(data)
	return nil
}
