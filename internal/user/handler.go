package user

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/LumenLBP/lumen-game-backend/internal/photo"
	"github.com/LumenLBP/lumen-game-backend/internal/platform/config"
	"github.com/LumenLBP/lumen-game-backend/internal/platform/database"
	"github.com/LumenLBP/lumen-game-backend/pkg/paging"
	"github.com/gin-gonic/gin"
)

// --- 用户列表页的API响应模型 ---

type ListedUserResponse struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
	IconHash string `json:"iconHash"`
	Status   int    `json:"status"`
}

type UsersPageResponse struct {
	PageNumber int                  `json:"pageNumber"`
	PageAmount int                  `json:"pageAmount"`
	UserCount  int64                `json:"userCount"`
	Users      []ListedUserResponse `json:"users"`
}

// --- 资料页的API响应模型 ---

type ProfilePhotoResponse struct {
	PhotoID   int    `json:"photoId"`
	SlotID    int    `json:"slotId"`
	Timestamp int64  `json:"timestamp"`
	SmallHash string `json:"smallHash"`
	LargeHash string `json:"largeHash"`
}

type ProfileResponse struct {
	UserID       int                    `json:"userId"`
	Username     string                 `json:"username"`
	IconHash     string                 `json:"iconHash"`
	Biography    string                 `json:"biography"`
	PlanetHash   string                 `json:"planetHash"`
	Pins         string                 `json:"pins"`
	Photos       []ProfilePhotoResponse `json:"photos"`
	IsHearted    bool                   `json:"isHearted"`
	LocationX    int                    `json:"locationX"`
	LocationY    int                    `json:"locationY"`
}

// --- 控制器函数 ---

// GetUsersPage 返回用户列表的一页。
// 越界的页码会被302重定向到修正后的页码，而不是返回错误。
func GetUsersPage(c *gin.Context) {
	pageNumber, err := strconv.Atoi(c.Param("pageNumber"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "页码格式错误"})
		return
	}

	// 1. 统计未封禁的用户总数并计算总页数
	var userCount int64
	if err := database.DB.Model(&User{}).Where("banned = ?", false).Count(&userCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取用户总数失败"})
		return
	}
	// 没有任何用户时按一个空页处理，否则页码0会被重定向到自身形成循环
	// （历史版本在这种情况下直接报500）
	pageAmount := paging.PageAmountAtLeastOne(userCount, config.Cfg.Game.PageSize)

	// 2. 越界页码重定向到修正后的页码
	if pageNumber < 0 || pageNumber >= pageAmount {
		c.Redirect(http.StatusFound, fmt.Sprintf("/users/page/%d", paging.ClampPage(pageNumber, pageAmount)))
		return
	}

	// 3. 取出这一页的用户：状态升序，同状态按ID降序（新账号在前）
	var users []User
	err = database.DB.Where("banned = ?", false).
		Order("status asc").
		Order("user_id desc").
		Offset(pageNumber * config.Cfg.Game.PageSize).
		Limit(config.Cfg.Game.PageSize).
		Find(&users).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取用户列表失败"})
		return
	}

	response := UsersPageResponse{
		PageNumber: pageNumber,
		PageAmount: pageAmount,
		UserCount:  userCount,
		Users:      make([]ListedUserResponse, 0, len(users)),
	}
	for _, u := range users {
		response.Users = append(response.Users, ListedUserResponse{
			UserID:   u.UserID,
			Username: u.Username,
			IconHash: u.IconHash,
			Status:   u.Status,
		})
	}
	c.JSON(http.StatusOK, response)
}

// GetUserProfile 返回单个用户的资料页数据。
func GetUserProfile(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "用户ID格式错误"})
		return
	}

	// 1. 查找目标用户，不存在时直接404
	profileUser, err := GetUserByID(database.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "数据库查询失败"})
		return
	}
	if profileUser == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "页面不存在"})
		return
	}

	// 2. 取出该用户最近拍摄的5张照片
	var photos []photo.Photo
	err = database.DB.Where("creator_id = ?", userID).
		Order("timestamp desc").
		Limit(5).
		Find(&photos).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取照片失败"})
		return
	}

	// 3. 已登录的访问者需要知道自己是否收藏了这个资料页（仅用于UI状态）
	isHearted := false
	if requester := UserFromContext(c); requester != nil {
		isHearted, err = IsProfileHearted(database.DB, requester.UserID, profileUser.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "数据库查询失败"})
			return
		}
	}

	loc := profileUser.Location()
	response := ProfileResponse{
		UserID:     profileUser.UserID,
		Username:   profileUser.Username,
		IconHash:   profileUser.IconHash,
		Biography:  profileUser.Biography,
		PlanetHash: profileUser.PlanetHash,
		Pins:       profileUser.Pins,
		Photos:     make([]ProfilePhotoResponse, 0, len(photos)),
		IsHearted:  isHearted,
		LocationX:  loc.X,
		LocationY:  loc.Y,
	}
	for _, p := range photos {
		response.Photos = append(response.Photos, ProfilePhotoResponse{
			PhotoID:   p.PhotoID,
			SlotID:    p.SlotID,
			Timestamp: p.Timestamp,
			SmallHash: p.SmallHash,
			LargeHash: p.LargeHash,
		})
	}
	c.JSON(http.StatusOK, response)
}
