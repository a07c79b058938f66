package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/chiefpansancolt/college-buddy/internal/service"
	"github.com/chiefpansancolt/college-buddy/pkg/response"
)

// DataHandler 全量数据导入导出与一致性校验
type DataHandler struct {
	dataSvc service.DataService
}

// NewDataHandler 创建 DataHandler
func NewDataHandler(dataSvc service.DataService) *DataHandler {
	return &DataHandler{dataSvc: dataSvc}
}

// ExportData 导出整棵数据树为 JSON 文件
// GET /api/v1/data/export
func (h *DataHandler) ExportData(c *gin.Context) {
	text, err := h.dataSvc.Export(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="college-tracker-data.json"`)
	c.Data(200, "application/json; charset=utf-8", []byte(text))
}

// ImportData 从 JSON 全量替换数据树
// 请求体即导出格式本身；解析失败时现有数据保持不变
// POST /api/v1/data/import
func (h *DataHandler) ImportData(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		response.BadRequest(c, 10001, "请求体不能为空")
		return
	}

	if err := h.dataSvc.Import(c.Request.Context(), string(body)); err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, nil)
}

// ValidateData 校验层级引用一致性
// GET /api/v1/data/validate
func (h *DataHandler) ValidateData(c *gin.Context) {
	report, err := h.dataSvc.ValidateIntegrity(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, report)
}
