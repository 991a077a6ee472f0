package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oraculo/bootstrap"
	"oraculo/pkg/app"
	"oraculo/pkg/config"
	"oraculo/pkg/database"
	"oraculo/pkg/logger"
	"oraculo/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动 HTTP 服务",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bootstrap.SetupDB()
		bootstrap.SetupRedis()
		services := bootstrap.SetupServices()

		scheduler, err := bootstrap.SetupScheduler(services)
		if err != nil {
			return err
		}
		defer scheduler.Stop()

		router := setupServer()
		bootstrap.SetupRoute(router, services.RouteDependencies())

		server := &http.Server{
			Addr:    ":" + config.Get("app.port"),
			Handler: router,
		}
		return start(server)
	},
}

// setupServer 配置并返回 Gin 服务器实例
func setupServer() *gin.Engine {
	if app.IsLocal() || config.GetBool("app.debug") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.New()
}

// start 启动服务器并处理优雅关闭
func start(server *http.Server) error {
	// 创建系统信号监听器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server", zap.String("addr", server.Addr), zap.String("status", "starting"))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// 等待中断信号或启动失败
	select {
	case err := <-serverErr:
		return fmt.Errorf("服务器启动失败: %w", err)
	case <-quit:
	}
	logger.InfoString("Server", "Shutdown", "正在关闭服务器...")

	// 创建一个带超时的上下文
	timeout := time.Duration(config.GetInt("app.shutdown_timeout", 5)) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// 优雅关闭服务器
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("服务器关闭异常: %w", err)
	}

	if redis.Redis != nil {
		logger.LogIf(redis.Redis.Close())
	}
	logger.LogIf(database.Close())

	logger.InfoString("Server", "Shutdown", "服务器已成功关闭")
	return nil
}
