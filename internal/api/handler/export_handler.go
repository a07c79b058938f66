package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/chiefpansancolt/college-buddy/internal/service"
	"github.com/chiefpansancolt/college-buddy/pkg/response"
)

// ExportHandler 学期级导出（Excel 课表 / iCalendar 日历）
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportExcel 导出某学期的课程与作业为 Excel
// GET /api/v1/colleges/:id/semesters/:semesterId/export/excel
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	collegeID := c.Param("id")
	semesterID := c.Param("semesterId")
	if collegeID == "" || semesterID == "" {
		response.BadRequest(c, 10001, "学期ID不能为空")
		return
	}

	buf, filename, err := h.exportSvc.ExportExcel(c.Request.Context(), collegeID, semesterID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// 设置下载响应头
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// ExportCalendar 导出某学期的上课时段与作业截止为 iCalendar
// GET /api/v1/colleges/:id/semesters/:semesterId/export/ics
func (h *ExportHandler) ExportCalendar(c *gin.Context) {
	collegeID := c.Param("id")
	semesterID := c.Param("semesterId")
	if collegeID == "" || semesterID == "" {
		response.BadRequest(c, 10001, "学期ID不能为空")
		return
	}

	buf, filename, err := h.exportSvc.ExportCalendar(c.Request.Context(), collegeID, semesterID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}
