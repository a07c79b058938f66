package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chiefpansancolt/college-buddy/internal/service"
	"github.com/chiefpansancolt/college-buddy/pkg/response"
)

// StatsHandler 仪表盘统计、GPA 与日历视图
type StatsHandler struct {
	statsSvc service.StatsService
}

// NewStatsHandler 创建 StatsHandler
func NewStatsHandler(statsSvc service.StatsService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

// GetDashboardStats 获取某学院的仪表盘统计
// GET /api/v1/colleges/:id/stats
func (h *StatsHandler) GetDashboardStats(c *gin.Context) {
	collegeID := c.Param("id")
	if collegeID == "" {
		response.BadRequest(c, 10001, "学院ID不能为空")
		return
	}

	stats, err := h.statsSvc.GetDashboardStats(c.Request.Context(), collegeID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, stats)
}

// GetSemesterGPA 获取某学期的学分加权 GPA
// GET /api/v1/colleges/:id/semesters/:semesterId/gpa
func (h *StatsHandler) GetSemesterGPA(c *gin.Context) {
	collegeID := c.Param("id")
	semesterID := c.Param("semesterId")
	if collegeID == "" || semesterID == "" {
		response.BadRequest(c, 10001, "学期ID不能为空")
		return
	}

	gpa, ok, err := h.statsSvc.SemesterGPA(c.Request.Context(), collegeID, semesterID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// hasGrades=false 表示该学期还没有任何已评分课程
	response.OK(c, gin.H{"gpa": gpa, "hasGrades": ok})
}

// GetCalendarEvents 获取时间窗内的上课时段与作业截止事件
// GET /api/v1/colleges/:id/calendar?from=2026-09-01&to=2026-09-30
func (h *StatsHandler) GetCalendarEvents(c *gin.Context) {
	collegeID := c.Param("id")
	if collegeID == "" {
		response.BadRequest(c, 10001, "学院ID不能为空")
		return
	}

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		response.BadRequest(c, 10001, "from 日期格式无效")
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		response.BadRequest(c, 10001, "to 日期格式无效")
		return
	}
	if to.Before(from) {
		response.BadRequest(c, 10001, "to 不能早于 from")
		return
	}

	events, err := h.statsSvc.CalendarEvents(c.Request.Context(), collegeID, from, to)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": events})
}
