package api

import (
	"github.com/LumenLBP/lumen-game-backend/internal/gameapi"
	"github.com/LumenLBP/lumen-game-backend/internal/moderation"
	"github.com/LumenLBP/lumen-game-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine) {
	// 所有路由都先经过会话加载，匿名访问不会被拦截
	router.Use(user.LoadSessionMiddleware())

	// 网站前端使用的路由
	router.GET("/users/page/:pageNumber", user.GetUsersPage)
	router.GET("/user/:userId", user.GetUserProfile)
	router.GET("/moderation/cases/:pageNumber", moderation.GetCasesPage)
	router.GET("/online", gameapi.GetOnlineCount)

	// 游戏客户端使用的路由组 /gameapi，带按IP限流
	game := router.Group("/gameapi", gameapi.RateLimitMiddleware())
	{
		game.POST("/login/:username", gameapi.LoginUser)
		game.GET("/user/:username", gameapi.GetUserBlob)
		game.GET("/slot/:slotId", gameapi.GetSlotBlob)
	}
}
