package game

import (
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// timeoutEvent 是定时器到期后投递给房间 actor 的事件。
// Gen 是武装计时器时的代号，actor 用它识别并丢弃迟到的过期事件
type timeoutEvent struct {
	Phase Phase
	Gen   uint64
}

// phaseScheduler 管理房间的唯一一只阶段定时器。
// 到期不直接推进状态，只向 actor 的事件队列投递 timeoutEvent，
// 保证定时推进和玩家动作推进在同一个串行上下文中排队执行。
// 任何时刻最多只有一只活跃定时器：重新武装前必定先取消旧的
type phaseScheduler struct {
	clock clockwork.Clock
	tmoCh chan timeoutEvent

	timer clockwork.Timer
	gen   uint64
}

func newPhaseScheduler(clock clockwork.Clock) *phaseScheduler {
	return &phaseScheduler{
		clock: clock,
		tmoCh: make(chan timeoutEvent, 8),
	}
}

// Arm 为指定阶段的截止时间武装定时器，先取消之前的那只。
// 截止时间已经过去时立即投递事件，不再起定时器
func (ps *phaseScheduler) Arm(phase Phase, endsAt time.Time) {
	ps.Cancel()

	ps.gen++
	gen := ps.gen

	delay := endsAt.Sub(ps.clock.Now())
	if delay <= 0 {
		ps.deliver(timeoutEvent{Phase: phase, Gen: gen})
		return
	}

	ps.timer = ps.clock.AfterFunc(delay, func() {
		ps.deliver(timeoutEvent{Phase: phase, Gen: gen})
	})
}

// Cancel 停止当前定时器。已经在途的过期事件由代号检查兜底
func (ps *phaseScheduler) Cancel() {
	if ps.timer != nil {
		ps.timer.Stop()
		ps.timer = nil
	}

	ps.gen++
}

// Stale 判断事件是否来自已被取消或替换的定时器
func (ps *phaseScheduler) Stale(ev timeoutEvent) bool {
	return ev.Gen != ps.gen
}

func (ps *phaseScheduler) deliver(ev timeoutEvent) {
	select {
	case ps.tmoCh <- ev:
	default:
		zap.L().Warn(
			"投递超时事件失败：通道已满",
			zap.String("phase", string(ev.Phase)),
		)
	}
}
