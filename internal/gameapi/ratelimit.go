package gameapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/LumenLBP/lumen-game-backend/internal/platform/database"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// rateLimitKeyPrefix 是Redis中限流有序集合的键名前缀
	rateLimitKeyPrefix = "gameapi:rate:"
	// rateLimitWindow 定义了限流的滑动时间窗口
	rateLimitWindow = time.Minute
	// rateLimitTTL 是每个IP记录的生存时间，比窗口稍长以作缓冲
	rateLimitTTL = 2 * time.Minute
	// rateLimitMax 是窗口内允许的最大请求数
	rateLimitMax = 120
)

// RateLimitMiddleware 对游戏端接口做按IP的滑动窗口限流。
// 计数存放在Redis有序集合中：Score是请求时间戳，Member是随机ID。
// Redis不健康时直接拒绝请求，避免失去保护地裸跑。
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !database.IsRedisHealthy() {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "服务暂时不可用，请稍后重试"})
			return
		}

		now := time.Now()
		key := rateLimitKeyPrefix + c.ClientIP()
		minScore := float64(now.Add(-rateLimitWindow).UnixMicro())

		// 清理过期记录、写入本次请求、刷新TTL、读取计数，在一个事务中完成
		pipe := database.RDB.TxPipeline()
		pipe.ZRemRangeByScore(database.Ctx, key, "-inf", fmt.Sprintf("(%f", minScore))
		pipe.ZAdd(database.Ctx, key, redis.Z{
			Score:  float64(now.UnixMicro()),
			Member: uuid.NewString(),
		})
		pipe.Expire(database.Ctx, key, rateLimitTTL)
		countCmd := pipe.ZCard(database.Ctx, key)
		if _, err := pipe.Exec(database.Ctx); err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "服务暂时不可用，请稍后重试"})
			return
		}

		if countCmd.Val() > rateLimitMax {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "请求过于频繁"})
			return
		}

		c.Next()
	}
}
