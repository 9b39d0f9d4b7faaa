package database

import (
	"context"
	"fmt"

	"github.com/LumenLBP/lumen-game-backend/internal/platform/config"
	"github.com/redis/go-redis/v9"
)

// RDB 是全局的Redis客户端。Redis只承载在线玩家记录和游戏端限流计数
// 这类可以从空状态重建的易失数据（见 internal/presence 和 internal/gameapi）。
var RDB *redis.Client

// Ctx 是Redis操作使用的全局上下文
var Ctx = context.Background()

// InitRedis 按配置建立Redis连接并用Ping验证可用性。
// 连接不上时直接中止启动，运行期的断连由健康检查器接管。
func InitRedis(cfg config.RedisConfig) {
	RDB = redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if _, err := RDB.Ping(Ctx).Result(); err != nil {
		panic("无法连接到Redis: " + err.Error())
	}

	fmt.Println("Redis 连接成功！")
}
