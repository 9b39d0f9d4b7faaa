package lifecycle

import (
	"context"
	"time"
)

// Handle 是 Manager 分发给单个后台服务的生命周期句柄。
// 持有者在退出前必须通过 defer 调用 Close，否则停机流程会一直等它。
type Handle struct {
	ctx context.Context
	// Close 向Manager确认本服务已经退出
	Close func()
}

// Ctx 返回承载停机信号的上下文。
func (h *Handle) Ctx() context.Context {
	return h.ctx
}

// Done 返回停机信号channel，Manager广播停机时关闭。
func (h *Handle) Done() <-chan struct{} {
	return h.ctx.Done()
}

// Err 在停机信号发出后返回取消原因。
func (h *Handle) Err() error {
	return h.ctx.Err()
}

// Sleep 暂停指定时长，期间收到停机信号则立即醒来并返回错误。
// 健康检查这类轮询循环用它代替 time.Sleep，保证停机不被整轮间隔拖住。
func (h *Handle) Sleep(duration time.Duration) error {
	timer := time.NewTimer(duration)

	select {
	case <-h.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return h.Err()
	case <-timer.C:
		return nil
	}
}
