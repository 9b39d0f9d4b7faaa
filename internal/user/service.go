package user

import (
	"errors"
	"fmt"

	"github.com/LumenLBP/lumen-game-backend/internal/interaction"
	"github.com/LumenLBP/lumen-game-backend/internal/photo"
	"github.com/LumenLBP/lumen-game-backend/internal/slot"
	"gorm.io/gorm"
)

// 本文件实现用户的查找与派生计数。与关卡侧一致，每个计数都是
// 对传入db的一次独立count查询，序列化时通过 LoadProfileCounts 批量获取。

// GetUserByID 按主键查找用户。未找到时返回 (nil, nil)。
func GetUserByID(db *gorm.DB, userID int) (*User, error) {
	var u User
	if err := db.First(&u, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("无法查询用户 %d: %w", userID, err)
	}
	return &u, nil
}

// GetUserByUsername 按玩家句柄查找用户。未找到时返回 (nil, nil)。
func GetUserByUsername(db *gorm.DB, username string) (*User, error) {
	var u User
	if err := db.First(&u, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("无法查询用户 %s: %w", username, err)
	}
	return &u, nil
}

// GetOrCreateUser 返回指定句柄的用户，不存在时创建。
// 账号在玩家首次联机时创建，之后从不硬删除。
func GetOrCreateUser(db *gorm.DB, username string) (*User, error) {
	u, err := GetUserByUsername(db, username)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	newUser := User{Username: username}
	if err := db.Create(&newUser).Error; err != nil {
		return nil, fmt.Errorf("无法创建用户 %s: %w", username, err)
	}
	return &newUser, nil
}

// ProfileCounts 汇集资料卡序列化所需的全部派生计数。
type ProfileCounts struct {
	// Comments 是该用户发表过的评论数
	Comments int64
	// PhotosByMe 是该用户拍摄的照片数
	PhotosByMe int64
	// PhotosWithMe 是该用户出现在其中的照片数
	PhotosWithMe int64
	// HeartedLevels 是该用户收藏的关卡数
	HeartedLevels int64
	// HeartedUsers 是该用户收藏的其他玩家数
	HeartedUsers int64
	// QueuedLevels 是该用户待玩队列中的关卡数
	QueuedLevels int64
	// Hearts 是收藏了该用户的玩家数
	Hearts int64
}

// LoadProfileCounts 为一个用户批量执行全部计数查询。
// 每个字段仍是一次独立查询的结果，只是集中在一处发起。
func LoadProfileCounts(db *gorm.DB, userID int) (*ProfileCounts, error) {
	var counts ProfileCounts

	if err := db.Model(&interaction.Comment{}).
		Where("poster_user_id = ?", userID).
		Count(&counts.Comments).Error; err != nil {
		return nil, fmt.Errorf("无法统计评论数: %w", err)
	}
	if err := db.Model(&photo.Photo{}).
		Where("creator_id = ?", userID).
		Count(&counts.PhotosByMe).Error; err != nil {
		return nil, fmt.Errorf("无法统计照片数: %w", err)
	}
	if err := db.Model(&photo.PhotoSubject{}).
		Where("user_id = ?", userID).
		Count(&counts.PhotosWithMe).Error; err != nil {
		return nil, fmt.Errorf("无法统计出镜照片数: %w", err)
	}
	if err := db.Model(&interaction.HeartedLevel{}).
		Where("user_id = ?", userID).
		Count(&counts.HeartedLevels).Error; err != nil {
		return nil, fmt.Errorf("无法统计收藏关卡数: %w", err)
	}
	if err := db.Model(&interaction.HeartedProfile{}).
		Where("user_id = ?", userID).
		Count(&counts.HeartedUsers).Error; err != nil {
		return nil, fmt.Errorf("无法统计收藏玩家数: %w", err)
	}
	if err := db.Model(&interaction.QueuedLevel{}).
		Where("user_id = ?", userID).
		Count(&counts.QueuedLevels).Error; err != nil {
		return nil, fmt.Errorf("无法统计队列关卡数: %w", err)
	}
	if err := db.Model(&interaction.HeartedProfile{}).
		Where("hearted_user_id = ?", userID).
		Count(&counts.Hearts).Error; err != nil {
		return nil, fmt.Errorf("无法统计被收藏数: %w", err)
	}
	return &counts, nil
}

// UsedSlots 统计该用户已发布的关卡总数。
func UsedSlots(db *gorm.DB, userID int) (int64, error) {
	var count int64
	err := db.Model(&slot.Slot{}).Where("creator_id = ?", userID).Count(&count).Error
	return count, err
}

// UsedSlotsForGame 统计该用户在某个版本下已发布的关卡数。
func UsedSlotsForGame(db *gorm.DB, userID int, version slot.GameVersion) (int64, error) {
	var count int64
	err := db.Model(&slot.Slot{}).
		Where("creator_id = ? AND game_version = ?", userID, version).
		Count(&count).Error
	return count, err
}

// FreeSlots 返回该用户剩余的关卡配额：entitledSlots - 已用数。
// 与线上行为一致，不做负值钳制。
func FreeSlots(db *gorm.DB, userID int, entitledSlots int) (int64, error) {
	used, err := UsedSlots(db, userID)
	if err != nil {
		return 0, err
	}
	return int64(entitledSlots) - used, nil
}

// IsProfileHearted 判断 requesterID 是否收藏了 targetID 的资料页。
func IsProfileHearted(db *gorm.DB, requesterID, targetID int) (bool, error) {
	var count int64
	err := db.Model(&interaction.HeartedProfile{}).
		Where("user_id = ? AND hearted_user_id = ?", requesterID, targetID).
		Count(&count).Error
	return count > 0, err
}
