package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/chiefpansancolt/college-buddy/config"
	"github.com/chiefpansancolt/college-buddy/internal/api/handler"
	"github.com/chiefpansancolt/college-buddy/internal/api/router"
	"github.com/chiefpansancolt/college-buddy/internal/repository"
	"github.com/chiefpansancolt/college-buddy/internal/service"
	"github.com/chiefpansancolt/college-buddy/pkg/database"
	applogger "github.com/chiefpansancolt/college-buddy/pkg/logger"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 打开本地存储（可选：无介质时降级为内存运行，不中断启动）
	var store repository.Store
	db, err := database.NewDB(&cfg.Storage, logger)
	if err != nil {
		logger.Warn("打开本地存储失败，数据将仅存活于进程内", zap.Error(err))
		store = repository.NewMemoryStore()
	} else if db == nil {
		logger.Info("已按配置使用内存存储")
		store = repository.NewMemoryStore()
	} else {
		// 3.1 建表迁移（单 KV 表，整图存于固定键下）
		if err := db.AutoMigrate(&repository.AppRecord{}); err != nil {
			logger.Fatal("数据库迁移失败", zap.Error(err))
		}
		logger.Info("本地存储就绪", zap.String("path", cfg.Storage.Path))
		store = repository.NewStore(db, logger)
	}

	// 4. 依赖注入: Repository → Service → Handler
	repo := repository.NewRepository(store)
	svc := service.NewService(repo, logger)
	h := handler.NewHandler(svc)

	// 5. 初始化路由
	engine := router.Setup(cfg, h, logger)

	// 6. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 7. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	if db != nil {
		if sqlDB, err := db.DB(); err == nil && sqlDB != nil {
			sqlDB.Close()
		}
	}

	logger.Info("服务器已关闭")
}
