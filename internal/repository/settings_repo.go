package repository

import (
	"context"

	"github.com/chiefpansancolt/college-buddy/internal/model"
)

// SettingsRepository 应用设置数据访问接口
// 设置随数据图整体持久化，没有"未找到"路径
type SettingsRepository interface {
	Get(ctx context.Context) (*model.AppSettings, error)
	Update(ctx context.Context, patch *model.UpdateSettingsData) (*model.AppSettings, error)
}

type settingsRepo struct {
	g *graph
}

func (r *settingsRepo) Get(_ context.Context) (*model.AppSettings, error) {
	var settings model.AppSettings
	r.g.read(func(d *model.AppData) {
		settings = d.Settings
	})
	return &settings, nil
}

func (r *settingsRepo) Update(_ context.Context, patch *model.UpdateSettingsData) (*model.AppSettings, error) {
	var settings model.AppSettings
	r.g.write(func(d *model.AppData) bool {
		if patch.Theme != nil {
			d.Settings.Theme = *patch.Theme
		}
		if patch.DefaultView != nil {
			d.Settings.DefaultView = *patch.DefaultView
		}
		if patch.Notifications != nil {
			d.Settings.Notifications = *patch.Notifications
		}
		if patch.Academic != nil {
			d.Settings.Academic = *patch.Academic
		}
		settings = d.Settings
		return true
	})
	return &settings, nil
}
