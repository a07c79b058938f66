package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/chiefpansancolt/college-buddy/internal/dto"
	"github.com/chiefpansancolt/college-buddy/internal/service"
	"github.com/chiefpansancolt/college-buddy/pkg/response"
)

// SemesterHandler 学期模块 HTTP 处理器
type SemesterHandler struct {
	semesterSvc service.SemesterService
}

// NewSemesterHandler 创建 SemesterHandler
func NewSemesterHandler(semesterSvc service.SemesterService) *SemesterHandler {
	return &SemesterHandler{semesterSvc: semesterSvc}
}

// ListSemesters 获取某学院下的学期列表
// GET /api/v1/colleges/:id/semesters?sort=chrono
func (h *SemesterHandler) ListSemesters(c *gin.Context) {
	collegeID := c.Param("id")
	if collegeID == "" {
		response.BadRequest(c, 10001, "学院ID不能为空")
		return
	}

	sortChrono := c.Query("sort") == "chrono"

	semesters, err := h.semesterSvc.List(c.Request.Context(), collegeID, sortChrono)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": semesters})
}

// GetSemester 获取学期详情
// GET /api/v1/colleges/:id/semesters/:semesterId
func (h *SemesterHandler) GetSemester(c *gin.Context) {
	collegeID := c.Param("id")
	id := c.Param("semesterId")
	if collegeID == "" || id == "" {
		response.BadRequest(c, 10001, "学期ID不能为空")
		return
	}

	semester, err := h.semesterSvc.GetByID(c.Request.Context(), collegeID, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, semester)
}

// GetCurrentSemester 获取当前进行中的学期
// GET /api/v1/colleges/:id/semesters/current
func (h *SemesterHandler) GetCurrentSemester(c *gin.Context) {
	collegeID := c.Param("id")
	if collegeID == "" {
		response.BadRequest(c, 10001, "学院ID不能为空")
		return
	}

	semester, err := h.semesterSvc.GetCurrent(c.Request.Context(), collegeID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, semester)
}

// CreateSemester 创建学期
// POST /api/v1/colleges/:id/semesters
func (h *SemesterHandler) CreateSemester(c *gin.Context) {
	collegeID := c.Param("id")
	if collegeID == "" {
		response.BadRequest(c, 10001, "学院ID不能为空")
		return
	}

	var req dto.CreateSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	semester, err := h.semesterSvc.Create(c.Request.Context(), collegeID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, semester)
}

// UpdateSemester 更新学期
// PUT /api/v1/colleges/:id/semesters/:semesterId
func (h *SemesterHandler) UpdateSemester(c *gin.Context) {
	collegeID := c.Param("id")
	id := c.Param("semesterId")
	if collegeID == "" || id == "" {
		response.BadRequest(c, 10001, "学期ID不能为空")
		return
	}

	var req dto.UpdateSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	semester, err := h.semesterSvc.Update(c.Request.Context(), collegeID, id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, semester)
}

// DeleteSemester 删除学期（级联删除其下课程与作业，并回算学院总学分）
// DELETE /api/v1/colleges/:id/semesters/:semesterId
func (h *SemesterHandler) DeleteSemester(c *gin.Context) {
	collegeID := c.Param("id")
	id := c.Param("semesterId")
	if collegeID == "" || id == "" {
		response.BadRequest(c, 10001, "学期ID不能为空")
		return
	}

	if err := h.semesterSvc.Delete(c.Request.Context(), collegeID, id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, nil)
}
