package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/chiefpansancolt/college-buddy/internal/dto"
	"github.com/chiefpansancolt/college-buddy/internal/service"
	"github.com/chiefpansancolt/college-buddy/pkg/response"
)

// CollegeHandler 学院模块 HTTP 处理器
type CollegeHandler struct {
	collegeSvc service.CollegeService
}

// NewCollegeHandler 创建 CollegeHandler
func NewCollegeHandler(collegeSvc service.CollegeService) *CollegeHandler {
	return &CollegeHandler{collegeSvc: collegeSvc}
}

// ListColleges 获取学院列表
// GET /api/v1/colleges
func (h *CollegeHandler) ListColleges(c *gin.Context) {
	colleges, err := h.collegeSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": colleges})
}

// GetCollege 获取学院详情
// GET /api/v1/colleges/:id
func (h *CollegeHandler) GetCollege(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "学院ID不能为空")
		return
	}

	college, err := h.collegeSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, college)
}

// CreateCollege 创建学院
// POST /api/v1/colleges
func (h *CollegeHandler) CreateCollege(c *gin.Context) {
	var req dto.CreateCollegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	college, err := h.collegeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, college)
}

// UpdateCollege 更新学院
// PUT /api/v1/colleges/:id
func (h *CollegeHandler) UpdateCollege(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "学院ID不能为空")
		return
	}

	var req dto.UpdateCollegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	college, err := h.collegeSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, college)
}

// DeleteCollege 删除学院（级联删除其下所有学期、课程与作业）
// DELETE /api/v1/colleges/:id
func (h *CollegeHandler) DeleteCollege(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "学院ID不能为空")
		return
	}

	if err := h.collegeSvc.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, nil)
}
