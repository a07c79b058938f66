package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/chiefpansancolt/college-buddy/internal/dto"
	"github.com/chiefpansancolt/college-buddy/internal/model"
	"github.com/chiefpansancolt/college-buddy/internal/repository"
)

// SettingsService 应用设置业务接口
type SettingsService interface {
	Get(ctx context.Context) (*model.AppSettings, error)
	Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*model.AppSettings, error)
}

type settingsService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSettingsService 创建 SettingsService 实例
func NewSettingsService(repo *repository.Repository, logger *zap.Logger) SettingsService {
	return &settingsService{repo: repo, logger: logger}
}

func (s *settingsService) Get(ctx context.Context) (*model.AppSettings, error) {
	return s.repo.Settings.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*model.AppSettings, error) {
	settings, err := s.repo.Settings.Update(ctx, &model.UpdateSettingsData{
		Theme:         req.Theme,
		DefaultView:   req.DefaultView,
		Notifications: req.Notifications,
		Academic:      req.Academic,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("更新应用设置")
	return settings, nil
}
