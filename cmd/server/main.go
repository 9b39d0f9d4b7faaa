package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/LumenLBP/lumen-game-backend/api"
	"github.com/LumenLBP/lumen-game-backend/internal/platform/config"
	"github.com/LumenLBP/lumen-game-backend/internal/platform/database"
	"github.com/LumenLBP/lumen-game-backend/internal/platform/health"
	"github.com/LumenLBP/lumen-game-backend/internal/platform/shutdown"
	"github.com/LumenLBP/lumen-game-backend/internal/platform/startup"
	"github.com/LumenLBP/lumen-game-backend/pkg/lifecycle"
	"github.com/LumenLBP/lumen-game-backend/pkg/token"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. 加载配置（.env中的变量可以覆盖config.yaml）
	_ = godotenv.Load()
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("无法加载配置: %v", err))
	}

	// 2. 初始化密钥、数据库和Redis
	token.GenerateSecretKey()
	database.InitDB(cfg.Database)
	database.InitRedis(cfg.Database.Redis)

	// 3. 阻塞式获取初始Run ID
	health.InitializeRunID()

	// 4. 执行应用首次启动初始化流程
	if err := startup.InitializeApplication(); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	// 5. 阻塞式执行一次启动后健康检查
	fmt.Println("正在执行启动后健康检查...")
	health.PerformCheck()

	// 6. 创建生命周期管理器，异步启动后台健康检查器
	gracefulManager := lifecycle.NewManager()
	forcefulManager := lifecycle.NewManager()

	healthHandle, err := gracefulManager.NewServiceHandle("redis-health-checker")
	if err != nil {
		panic(fmt.Sprintf("无法注册健康检查器: %v", err))
	}
	go health.StartRedisHealthCheck(healthHandle)

	// 7. 创建Gin引擎并配置CORS
	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r)

	// 8. 启动服务器并等待停机信号
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}
	go func() {
		fmt.Printf("服务器已准备就绪，开始监听 %s\n", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic("Failed to start server: " + err.Error())
		}
	}()

	shutdown.NewCoordinator(gracefulManager, forcefulManager).ListenForSignalsAndShutdown(server)
}
