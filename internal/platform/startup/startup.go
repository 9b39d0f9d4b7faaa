package startup

import (
	"fmt"

	"github.com/LumenLBP/lumen-game-backend/internal/interaction"
	"github.com/LumenLBP/lumen-game-backend/internal/moderation"
	"github.com/LumenLBP/lumen-game-backend/internal/photo"
	"github.com/LumenLBP/lumen-game-backend/internal/platform/database"
	"github.com/LumenLBP/lumen-game-backend/internal/presence"
	"github.com/LumenLBP/lumen-game-backend/internal/slot"
	"github.com/LumenLBP/lumen-game-backend/internal/user"
)

// InitializeApplication 是应用首次启动时执行的总入口
func InitializeApplication() error {
	fmt.Println("开始应用首次初始化...")

	if err := migrateDB(); err != nil {
		return err
	}
	if err := presence.WarmupCache(); err != nil {
		return err
	}

	fmt.Println("应用初始化完成！")
	return nil
}

// migrateDB 负责自动迁移全部实体的表结构
func migrateDB() error {
	err := database.DB.AutoMigrate(
		&user.User{},
		&slot.Slot{},
		&photo.Photo{},
		&photo.PhotoSubject{},
		&interaction.Comment{},
		&interaction.RatedLevel{},
		&interaction.HeartedLevel{},
		&interaction.HeartedProfile{},
		&interaction.QueuedLevel{},
		&moderation.ModerationCase{},
	)
	if err != nil {
		return fmt.Errorf("无法迁移数据库表结构: %w", err)
	}
	fmt.Println("数据库表迁移成功。")
	return nil
}

// RebuildCache 在Redis从重启中恢复后重建其中的易失数据。
// 目前Redis只承载在线记录和限流计数，两者都从空状态重建即可。
func RebuildCache() error {
	fmt.Println("开始缓存热重建...")
	if err := presence.WarmupCache(); err != nil {
		return err
	}
	fmt.Println("缓存热重建完成。")
	return nil
}
