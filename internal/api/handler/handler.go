package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/chiefpansancolt/college-buddy/internal/repository"
	"github.com/chiefpansancolt/college-buddy/internal/service"
	"github.com/chiefpansancolt/college-buddy/pkg/response"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	College    *CollegeHandler
	Semester   *SemesterHandler
	Class      *ClassHandler
	Assignment *AssignmentHandler
	Settings   *SettingsHandler
	Data       *DataHandler
	Export     *ExportHandler
	Stats      *StatsHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		College:    NewCollegeHandler(svc.College),
		Semester:   NewSemesterHandler(svc.Semester),
		Class:      NewClassHandler(svc.Class),
		Assignment: NewAssignmentHandler(svc.Assignment),
		Settings:   NewSettingsHandler(svc.Settings),
		Data:       NewDataHandler(svc.Data),
		Export:     NewExportHandler(svc.Export),
		Stats:      NewStatsHandler(svc.Stats),
	}
}

// handleServiceError 统一的业务错误 → HTTP 映射
// 未找到返回 404、调用方输入问题返回 400，其余一律 500
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrCollegeNotFound):
		response.NotFound(c, 20001, err.Error())
	case errors.Is(err, repository.ErrSemesterNotFound):
		response.NotFound(c, 20002, err.Error())
	case errors.Is(err, repository.ErrClassNotFound):
		response.NotFound(c, 20003, err.Error())
	case errors.Is(err, repository.ErrAssignmentNotFound):
		response.NotFound(c, 20004, err.Error())
	case errors.Is(err, service.ErrDateInvalid):
		response.BadRequest(c, 30001, err.Error())
	case errors.Is(err, service.ErrDateRange):
		response.BadRequest(c, 30002, err.Error())
	case errors.Is(err, service.ErrScheduleInvalid):
		response.BadRequest(c, 30003, err.Error())
	case errors.Is(err, service.ErrImportInvalid):
		response.BadRequest(c, 30004, err.Error())
	case errors.Is(err, service.ErrExportNoClasses):
		response.BadRequest(c, 30005, err.Error())
	default:
		response.InternalError(c)
	}
}
