package gameapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/LumenLBP/lumen-game-backend/internal/platform/config"
	"github.com/LumenLBP/lumen-game-backend/internal/platform/database"
	"github.com/LumenLBP/lumen-game-backend/internal/presence"
	"github.com/LumenLBP/lumen-game-backend/internal/slot"
	"github.com/LumenLBP/lumen-game-backend/internal/user"
	"github.com/LumenLBP/lumen-game-backend/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 本文件实现面向游戏客户端的接口。
// 响应是老式标签文本（见 pkg/lbpxml），不是JSON；
// 元素顺序和标签名都是客户端兼容性约定。

const legacyContentType = "text/xml"

// parseGameVersion 从查询参数解析客户端版本，缺省按LBP1处理。
func parseGameVersion(c *gin.Context) slot.GameVersion {
	raw := c.Query("game")
	if raw == "" {
		return slot.GameVersionLBP1
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < int(slot.GameVersionLBP1) || v > int(slot.GameVersionVita) {
		return slot.GameVersionLBP1
	}
	return slot.GameVersion(v)
}

// LoginUser 处理玩家的首次联机握手。
// 账号在首次联机时创建；之后每次登录都会刷新在线记录，
// 并下发一个签名的会话Cookie供网站侧复用。
func LoginUser(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少玩家句柄"})
		return
	}

	// 1. 查找或创建账号
	u, err := user.GetOrCreateUser(database.DB, username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "登录处理失败"})
		return
	}

	// 2. 记录最近使用的游戏版本
	gameVersion := parseGameVersion(c)
	if u.Game != int(gameVersion) {
		u.Game = int(gameVersion)
		if err := database.DB.Model(u).Update("game", u.Game).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "登录处理失败"})
			return
		}
	}

	// 3. 下发签名会话
	sessionCookie, err := token.EncodeSessionCookie(token.SessionPayload{
		UserID:    u.UserID,
		SessionID: uuid.NewString(),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "登录处理失败"})
		return
	}
	c.SetCookie(user.SessionCookieName, sessionCookie, user.SessionCookieMaxAge, "/", "", false, true)

	// 4. 刷新在线记录并返回序列化的资料卡
	if err := presence.MarkOnline(u.UserID); err != nil {
		fmt.Printf("刷新在线记录失败: %v\n", err)
	}

	blob, err := user.Serialize(database.DB, u, config.Cfg.Game, gameVersion)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "序列化用户数据失败"})
		return
	}
	c.Data(http.StatusOK, legacyContentType, []byte(blob))
}

// GetUserBlob 返回一个玩家资料卡的老式文本表示。
func GetUserBlob(c *gin.Context) {
	username := c.Param("username")

	u, err := user.GetUserByUsername(database.DB, username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "数据库查询失败"})
		return
	}
	if u == nil || u.Banned {
		c.JSON(http.StatusNotFound, gin.H{"error": "找不到该玩家"})
		return
	}

	// 有会话的访问者顺带刷新自己的在线记录
	if requester := user.UserFromContext(c); requester != nil {
		if err := presence.MarkOnline(requester.UserID); err != nil {
			fmt.Printf("刷新在线记录失败: %v\n", err)
		}
	}

	blob, err := user.Serialize(database.DB, u, config.Cfg.Game, parseGameVersion(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "序列化用户数据失败"})
		return
	}
	c.Data(http.StatusOK, legacyContentType, []byte(blob))
}

// GetSlotBlob 返回一个关卡的老式文本表示。
// 被审核隐藏的关卡对客户端不可见，与不存在的关卡无法区分。
func GetSlotBlob(c *gin.Context) {
	slotID, err := strconv.Atoi(c.Param("slotId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "关卡ID格式错误"})
		return
	}

	s, err := slot.GetSlotByID(database.DB, slotID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "数据库查询失败"})
		return
	}
	if s == nil || s.Hidden {
		c.JSON(http.StatusNotFound, gin.H{"error": "找不到该关卡"})
		return
	}

	creator, err := user.GetUserByID(database.DB, s.CreatorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "数据库查询失败"})
		return
	}
	creatorUsername := ""
	if creator != nil {
		creatorUsername = creator.Username
	}

	blob, err := slot.Serialize(database.DB, s, creatorUsername)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "序列化关卡数据失败"})
		return
	}
	c.Data(http.StatusOK, legacyContentType, []byte(blob))
}

// GetOnlineCount 返回当前在线玩家数，供网站首页展示。
func GetOnlineCount(c *gin.Context) {
	count, err := presence.OnlineCount()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "服务暂时不可用，请稍后重试"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"online": count})
}
