package service

import (
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/rlarin/imposter-game/internal/metrics"
	"github.com/rlarin/imposter-game/internal/service/game"
)

// 生成唯一房间代码的最大尝试次数
const ROOM_CODE_ATTEMPTS = 16

type RoomService struct {
	state *roomServiceState

	words       game.WordProvider
	recorder    metrics.Recorder
	clock       clockwork.Clock
	trollChance float64
}

type roomServiceState struct {
	mu sync.RWMutex

	// 从房间代码到房间执行体的映射
	actors map[string]*game.RoomActor

	cleanUpDone chan struct{}
}

func NewRoomService(
	words game.WordProvider,
	recorder metrics.Recorder,
	clock clockwork.Clock,
	trollChance float64,
) *RoomService {
	state := &roomServiceState{
		actors:      make(map[string]*game.RoomActor),
		cleanUpDone: make(chan struct{}),
	}

	// 启动一个 goroutine 定期清理已销毁的房间
	go startCleanupLoop(state)

	return &RoomService{
		state:       state,
		words:       words,
		recorder:    recorder,
		clock:       clock,
		trollChance: trollChance,
	}
}

func startCleanupLoop(state *roomServiceState) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-state.cleanUpDone:
			return

		case <-ticker.C:
			state.mu.Lock()

			for code, actor := range state.actors {
				select {
				case <-actor.Done():
					zap.S().Infof("房间 %s 已销毁，从注册表移除", code)
					delete(state.actors, code)
				default:
				}
			}

			state.mu.Unlock()
		}
	}
}

func (rs *RoomService) Close() {
	close(rs.state.cleanUpDone)
}

// CreateRoom 创建一个新房间并启动其事件循环协程，返回房间代码。
// 房间此时没有任何玩家，第一个通过 WebSocket 加入的玩家成为主持人
func (rs *RoomService) CreateRoom() (string, error) {
	rs.state.mu.Lock()
	defer rs.state.mu.Unlock()

	for range ROOM_CODE_ATTEMPTS {
		code := game.GenRoomCode()

		if _, exists := rs.state.actors[code]; exists {
			continue
		}

		actor := game.NewRoomActor(code, rs.words, rs.recorder, rs.clock, rs.trollChance)
		rs.state.actors[code] = actor

		go actor.Run()

		zap.S().Infof("房间 %s 创建成功", code)

		return code, nil
	}

	return "", errors.New("无法生成唯一的房间代码")
}

// FindOrCreateRoom 按代码查找房间，不存在（或已销毁）时按该代码
// 懒创建一个新房间。玩家凭口头分享的房间码直接加入时走这条路，
// 不要求先调用创建接口。代码格式非法时返回错误
func (rs *RoomService) FindOrCreateRoom(code string) (*game.RoomActor, error) {
	normalized, ok := game.NormalizeRoomCode(code)
	if !ok {
		return nil, errors.New("无效的房间代码")
	}

	rs.state.mu.Lock()
	defer rs.state.mu.Unlock()

	if actor, exists := rs.state.actors[normalized]; exists {
		select {
		case <-actor.Done():
			// 已销毁的房间占着代码，用新房间顶掉
		default:
			return actor, nil
		}
	}

	actor := game.NewRoomActor(normalized, rs.words, rs.recorder, rs.clock, rs.trollChance)
	rs.state.actors[normalized] = actor

	go actor.Run()

	zap.S().Infof("房间 %s 按需创建", normalized)

	return actor, nil
}

// FindRoom 按代码查找仍然存活的房间执行体
func (rs *RoomService) FindRoom(code string) (*game.RoomActor, bool) {
	rs.state.mu.RLock()
	defer rs.state.mu.RUnlock()

	actor, ok := rs.state.actors[code]
	if !ok {
		return nil, false
	}

	select {
	case <-actor.Done():
		return nil, false
	default:
	}

	return actor, true
}

// RoomSnapshot 返回房间状态的只读副本，供 REST 查询接口使用
func (rs *RoomService) RoomSnapshot(code string) (game.Room, bool) {
	actor, ok := rs.FindRoom(code)
	if !ok {
		return game.Room{}, false
	}

	return actor.Snapshot()
}
