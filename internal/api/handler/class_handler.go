package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/chiefpansancolt/college-buddy/internal/dto"
	"github.com/chiefpansancolt/college-buddy/internal/service"
	"github.com/chiefpansancolt/college-buddy/pkg/response"
)

// ClassHandler 课程模块 HTTP 处理器
type ClassHandler struct {
	classSvc service.ClassService
}

// NewClassHandler 创建 ClassHandler
func NewClassHandler(classSvc service.ClassService) *ClassHandler {
	return &ClassHandler{classSvc: classSvc}
}

// ListClasses 获取某学期下的课程列表
// GET /api/v1/colleges/:id/semesters/:semesterId/classes
func (h *ClassHandler) ListClasses(c *gin.Context) {
	collegeID := c.Param("id")
	semesterID := c.Param("semesterId")
	if collegeID == "" || semesterID == "" {
		response.BadRequest(c, 10001, "学期ID不能为空")
		return
	}

	classes, err := h.classSvc.List(c.Request.Context(), collegeID, semesterID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": classes})
}

// ListActiveClasses 获取某学期下进行中的课程
// GET /api/v1/colleges/:id/semesters/:semesterId/classes/active
func (h *ClassHandler) ListActiveClasses(c *gin.Context) {
	collegeID := c.Param("id")
	semesterID := c.Param("semesterId")
	if collegeID == "" || semesterID == "" {
		response.BadRequest(c, 10001, "学期ID不能为空")
		return
	}

	classes, err := h.classSvc.ListActive(c.Request.Context(), collegeID, semesterID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": classes})
}

// GetClass 获取课程详情
// GET /api/v1/colleges/:id/semesters/:semesterId/classes/:classId
func (h *ClassHandler) GetClass(c *gin.Context) {
	collegeID := c.Param("id")
	semesterID := c.Param("semesterId")
	id := c.Param("classId")
	if collegeID == "" || semesterID == "" || id == "" {
		response.BadRequest(c, 10001, "课程ID不能为空")
		return
	}

	class, err := h.classSvc.GetByID(c.Request.Context(), collegeID, semesterID, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, class)
}

// CreateClass 创建课程
// POST /api/v1/colleges/:id/semesters/:semesterId/classes
func (h *ClassHandler) CreateClass(c *gin.Context) {
	collegeID := c.Param("id")
	semesterID := c.Param("semesterId")
	if collegeID == "" || semesterID == "" {
		response.BadRequest(c, 10001, "学期ID不能为空")
		return
	}

	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	class, err := h.classSvc.Create(c.Request.Context(), collegeID, semesterID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, class)
}

// UpdateClass 更新课程
// PUT /api/v1/colleges/:id/semesters/:semesterId/classes/:classId
func (h *ClassHandler) UpdateClass(c *gin.Context) {
	collegeID := c.Param("id")
	semesterID := c.Param("semesterId")
	id := c.Param("classId")
	if collegeID == "" || semesterID == "" || id == "" {
		response.BadRequest(c, 10001, "课程ID不能为空")
		return
	}

	var req dto.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	class, err := h.classSvc.Update(c.Request.Context(), collegeID, semesterID, id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, class)
}

// DeleteClass 删除课程（级联删除其下作业，并回算学分合计）
// DELETE /api/v1/colleges/:id/semesters/:semesterId/classes/:classId
func (h *ClassHandler) DeleteClass(c *gin.Context) {
	collegeID := c.Param("id")
	semesterID := c.Param("semesterId")
	id := c.Param("classId")
	if collegeID == "" || semesterID == "" || id == "" {
		response.BadRequest(c, 10001, "课程ID不能为空")
		return
	}

	if err := h.classSvc.Delete(c.Request.Context(), collegeID, semesterID, id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, nil)
}
