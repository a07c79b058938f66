package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chiefpansancolt/college-buddy/internal/dto"
	"github.com/chiefpansancolt/college-buddy/internal/model"
	"github.com/chiefpansancolt/college-buddy/internal/service"
	"github.com/chiefpansancolt/college-buddy/pkg/response"
)

// AssignmentHandler 作业模块 HTTP 处理器
// 既提供挂在课程路径下的 CRUD，也提供跨层级的全局作业查询
type AssignmentHandler struct {
	assignmentSvc service.AssignmentService
}

// NewAssignmentHandler 创建 AssignmentHandler
func NewAssignmentHandler(assignmentSvc service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentSvc: assignmentSvc}
}

// ── 课程路径下的 CRUD ──

// CreateAssignment 创建作业
// POST /api/v1/colleges/:id/semesters/:semesterId/classes/:classId/assignments
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	collegeID, semesterID, classID := c.Param("id"), c.Param("semesterId"), c.Param("classId")
	if collegeID == "" || semesterID == "" || classID == "" {
		response.BadRequest(c, 10001, "课程ID不能为空")
		return
	}

	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	assignment, err := h.assignmentSvc.Create(c.Request.Context(), collegeID, semesterID, classID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, assignment)
}

// ListClassAssignments 列出课程下的作业
// GET /api/v1/colleges/:id/semesters/:semesterId/classes/:classId/assignments
func (h *AssignmentHandler) ListClassAssignments(c *gin.Context) {
	collegeID, semesterID, classID := c.Param("id"), c.Param("semesterId"), c.Param("classId")
	if collegeID == "" || semesterID == "" || classID == "" {
		response.BadRequest(c, 10001, "课程ID不能为空")
		return
	}

	assignments, err := h.assignmentSvc.ListByClass(c.Request.Context(), collegeID, semesterID, classID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": assignments})
}

// GetAssignment 获取作业详情
// GET /api/v1/colleges/:id/semesters/:semesterId/classes/:classId/assignments/:assignmentId
func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	collegeID, semesterID, classID := c.Param("id"), c.Param("semesterId"), c.Param("classId")
	id := c.Param("assignmentId")
	if collegeID == "" || semesterID == "" || classID == "" || id == "" {
		response.BadRequest(c, 10001, "作业ID不能为空")
		return
	}

	assignment, err := h.assignmentSvc.GetByID(c.Request.Context(), collegeID, semesterID, classID, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, assignment)
}

// UpdateAssignment 更新作业
// PUT /api/v1/colleges/:id/semesters/:semesterId/classes/:classId/assignments/:assignmentId
func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	collegeID, semesterID, classID := c.Param("id"), c.Param("semesterId"), c.Param("classId")
	id := c.Param("assignmentId")
	if collegeID == "" || semesterID == "" || classID == "" || id == "" {
		response.BadRequest(c, 10001, "作业ID不能为空")
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	assignment, err := h.assignmentSvc.Update(c.Request.Context(), collegeID, semesterID, classID, id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, assignment)
}

// DeleteAssignment 删除作业
// DELETE /api/v1/colleges/:id/semesters/:semesterId/classes/:classId/assignments/:assignmentId
func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	collegeID, semesterID, classID := c.Param("id"), c.Param("semesterId"), c.Param("classId")
	id := c.Param("assignmentId")
	if collegeID == "" || semesterID == "" || classID == "" || id == "" {
		response.BadRequest(c, 10001, "作业ID不能为空")
		return
	}

	if err := h.assignmentSvc.Delete(c.Request.Context(), collegeID, semesterID, classID, id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, nil)
}

// ── 全局作业查询 ──

// ListAssignments 获取全部作业，可选按状态过滤
// GET /api/v1/assignments?status=in_progress
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	var (
		assignments []model.Assignment
		err         error
	)

	if raw := c.Query("status"); raw != "" {
		status := model.AssignmentStatus(raw)
		if !status.IsValid() {
			response.BadRequest(c, 10001, "无效的作业状态")
			return
		}
		assignments, err = h.assignmentSvc.ListByStatus(c.Request.Context(), status)
	} else {
		assignments, err = h.assignmentSvc.ListAll(c.Request.Context())
	}
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": assignments})
}

// ListUpcomingAssignments 获取即将到期的作业
// GET /api/v1/assignments/upcoming?days=7
func (h *AssignmentHandler) ListUpcomingAssignments(c *gin.Context) {
	days := service.DefaultUpcomingDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.BadRequest(c, 10001, "days 必须是正整数")
			return
		}
		days = parsed
	}

	assignments, err := h.assignmentSvc.ListUpcoming(c.Request.Context(), days)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": assignments})
}

// ListOverdueAssignments 获取逾期作业（派生判定，不改写存储状态）
// GET /api/v1/assignments/overdue
func (h *AssignmentHandler) ListOverdueAssignments(c *gin.Context) {
	assignments, err := h.assignmentSvc.ListOverdue(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": assignments})
}

// FilterAssignments 组合条件筛选作业
// POST /api/v1/assignments/filter
func (h *AssignmentHandler) FilterAssignments(c *gin.Context) {
	var req dto.FilterAssignmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	assignments, err := h.assignmentSvc.FilterByRequest(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": assignments})
}

// BulkUpdateAssignments 批量更新作业，各项独立成败
// PUT /api/v1/assignments/bulk
func (h *AssignmentHandler) BulkUpdateAssignments(c *gin.Context) {
	var req dto.BulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	results := h.assignmentSvc.BulkUpdate(c.Request.Context(), &req)

	response.OK(c, dto.BulkUpdateResponse{Results: results})
}
