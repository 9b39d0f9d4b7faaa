package user

import (
	"github.com/LumenLBP/lumen-game-backend/internal/platform/database"
	"github.com/LumenLBP/lumen-game-backend/pkg/token"
	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName 是网站会话Cookie的名称
	SessionCookieName = "lumen-session"
	// SessionCookieMaxAge 是会话Cookie的有效期（秒）
	SessionCookieMaxAge = 30 * 24 * 60 * 60
	// WebUserKey 是Gin上下文中已登录用户的键名
	WebUserKey = "webUser"
)

// LoadSessionMiddleware 读取并校验会话Cookie，把对应的用户放入Gin上下文。
// Cookie缺失、签名无效、用户不存在时一律按匿名访问处理，不中断请求。
func LoadSessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil {
			c.Next()
			return
		}

		payload, err := token.DecodeSessionCookie(cookie)
		if err != nil {
			c.Next()
			return
		}

		u, err := GetUserByID(database.DB, payload.UserID)
		if err != nil || u == nil {
			c.Next()
			return
		}

		c.Set(WebUserKey, u)
		c.Next()
	}
}

// UserFromContext 返回中间件放入上下文的用户，匿名访问时返回nil。
func UserFromContext(c *gin.Context) *User {
	value, exists := c.Get(WebUserKey)
	if !exists {
		return nil
	}
	u, ok := value.(*User)
	if !ok {
		return nil
	}
	return u
}
