package service

import (
	"go.uber.org/zap"

	"github.com/chiefpansancolt/college-buddy/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	College    CollegeService
	Semester   SemesterService
	Class      ClassService
	Assignment AssignmentService
	Settings   SettingsService
	Data       DataService
	Export     ExportService
	Stats      StatsService
}

// NewService 创建 Service 聚合
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		College:    NewCollegeService(repo, logger),
		Semester:   NewSemesterService(repo, logger),
		Class:      NewClassService(repo, logger),
		Assignment: NewAssignmentService(repo, logger),
		Settings:   NewSettingsService(repo, logger),
		Data:       NewDataService(repo, logger),
		Export:     NewExportService(repo, logger),
		Stats:      NewStatsService(repo, logger),
	}
}
