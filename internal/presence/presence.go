package presence

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/LumenLBP/lumen-game-backend/internal/platform/database"
	"github.com/redis/go-redis/v9"
)

// 本包维护"当前在线玩家"的Redis缓存。
// 游戏端每次请求都会刷新自己的在线记录；记录只存在于Redis中，
// Redis重启后从空集重建即可，不需要从SQL恢复。

const (
	// OnlineKey 是一个 Redis Sorted Set 的键，用于记录在线玩家。
	// Score: 玩家最近一次联机的Unix时间戳（秒）
	// Member: 玩家的UserID
	OnlineKey = "presence:online"

	// onlineWindow 定义了多久没有联机的玩家被视为离线
	onlineWindow = 5 * time.Minute
)

// MarkOnline 刷新一个玩家的在线记录。
// Redis不健康时静默放弃，在线计数允许短暂失真。
func MarkOnline(userID int) error {
	if !database.IsRedisHealthy() {
		return nil
	}

	err := database.RDB.ZAdd(database.Ctx, OnlineKey, redis.Z{
		Score:  float64(time.Now().Unix()),
		Member: strconv.Itoa(userID),
	}).Err()
	if err != nil {
		return fmt.Errorf("无法刷新用户 %d 的在线记录: %w", userID, err)
	}
	return nil
}

// OnlineCount 返回当前在线玩家数。
// 统计前会先清理窗口之外的过期记录，两步在一个事务Pipeline中完成。
func OnlineCount() (int64, error) {
	if !database.IsRedisHealthy() {
		return 0, errors.New("服务暂时不可用，无法获取在线人数")
	}

	minScore := float64(time.Now().Add(-onlineWindow).Unix())

	pipe := database.RDB.TxPipeline()
	pipe.ZRemRangeByScore(database.Ctx, OnlineKey, "-inf", fmt.Sprintf("(%f", minScore))
	countCmd := pipe.ZCard(database.Ctx, OnlineKey)
	if _, err := pipe.Exec(database.Ctx); err != nil {
		return 0, fmt.Errorf("执行在线人数统计失败: %w", err)
	}
	return countCmd.Val(), nil
}

// WarmupCache 清空在线记录。
// 在应用启动和Redis重启恢复后调用：旧的在线状态已不可信，从空集重建。
func WarmupCache() error {
	if err := database.RDB.Del(database.Ctx, OnlineKey).Err(); err != nil {
		return fmt.Errorf("无法清空在线玩家缓存: %w", err)
	}
	fmt.Println("在线玩家缓存已重置。")
	return nil
}
