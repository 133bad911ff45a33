// @title Fastnote API
// @version 1.0
// @description 个人笔记服务

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
package main

import (
	"context"
	"crypto/tls"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fastnote/fastnote/config"
	"github.com/fastnote/fastnote/internal/database"
	"github.com/fastnote/fastnote/internal/logger"
	"github.com/fastnote/fastnote/internal/middleware"
	"github.com/fastnote/fastnote/internal/router"
	"golang.org/x/net/http2"
)

func main() {
	seed := flag.Bool("seed", false, "初始化示例数据后退出")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志系统
	if err := logger.Init(&logger.Config{
		Level:    cfg.Log.Level,
		Format:   cfg.Log.Format,
		Output:   cfg.Log.Output,
		FilePath: cfg.Log.FilePath,
	}); err != nil {
		logger.Fatalf("Failed to initialize logger: %v", err)
	}

	// 初始化数据库
	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}

	// 仅初始化示例数据
	if *seed {
		if err := database.SeedData(db); err != nil {
			logger.Fatalf("Failed to seed data: %v", err)
		}
		return
	}

	// 初始化中间件
	loggerMiddleware := middleware.NewLoggerMiddleware(logger.GetLogger())

	// 初始化路由
	r := router.NewRouter(loggerMiddleware, db, cfg)

	// 创建HTTP服务器
	srv := &http.Server{
		Handler:      r.GetEngine(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	if cfg.Server.EnableHTTPS {
		srv.Addr = ":" + strconv.Itoa(cfg.Server.HTTPSPort)
		srv.TLSConfig = &tls.Config{
			NextProtos: []string{"h2", "http/1.1"}, // 支持HTTP/2和HTTP/1.1
		}

		// 如果启用HTTP/2，配置HTTP/2支持
		if cfg.Server.EnableHTTP2 {
			if err := http2.ConfigureServer(srv, &http2.Server{}); err != nil {
				logger.Fatalf("配置HTTP/2失败: %v", err)
			}
		}

		go func() {
			logger.Infof("HTTPS服务器启动在端口 %d (HTTP/2: %v)", cfg.Server.HTTPSPort, cfg.Server.EnableHTTP2)
			if err := srv.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile); err != nil && err != http.ErrServerClosed {
				logger.Fatalf("HTTPS服务器启动失败: %v", err)
			}
		}()
	} else {
		srv.Addr = ":" + strconv.Itoa(cfg.Server.Port)
		go func() {
			logger.Infof("HTTP服务器启动在端口 %d", cfg.Server.Port)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Fatalf("HTTP服务器启动失败: %v", err)
			}
		}()
	}

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("正在关闭服务器...")

	// 优雅关闭服务器
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalf("服务器强制关闭: %v", err)
	}

	logger.Info("服务器已退出")
}
