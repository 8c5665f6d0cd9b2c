package game

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/rlarin/imposter-game/internal/metrics"
)

// 每个连接的响应通道缓冲大小
const RESP_BUFFER_SIZE = 64

// 创建后始终无人加入的房间在这个时长后自行销毁
const ROOM_IDLE_TIMEOUT = 5 * time.Minute

// Conn 代表一个已升级的传输层连接。
// 写协程从 RespCh 读取并发送给客户端，从 Done 感知断开信号。
// RespCh 永远不会被关闭：连接的读循环在收到断开信号后可能仍在
// 投递事件，关闭通道会让迟到的单播直接崩溃整个房间
type Conn struct {
	ID     string
	RespCh chan ResponseWrapper

	done     chan struct{}
	dropOnce sync.Once
}

func NewConn() *Conn {
	return &Conn{
		ID:     GenID(),
		RespCh: make(chan ResponseWrapper, RESP_BUFFER_SIZE),
		done:   make(chan struct{}),
	}
}

// Done 在房间要求断开该连接后关闭，供写协程观察
func (c *Conn) Done() <-chan struct{} {
	return c.done
}

func (c *Conn) drop() {
	c.dropOnce.Do(func() {
		close(c.done)
	})
}

type actorEvent struct {
	conn *Conn
	req  RequestWrapper
	// closed 表示该连接的读循环已经退出（非正常断开）
	closed bool
	// idle 表示房间闲置定时器到期
	idle bool
	// queryCh 非空表示这是一个只读快照查询，不修改房间状态
	queryCh chan Room
}

// RoomActor 是房间的单写者执行体：房间状态的所有变更都发生在
// 它唯一的事件循环协程里。客户端动作和定时器到期都作为事件
// 投递到同一个队列，严格按到达顺序串行处理，因此不需要任何锁
type RoomActor struct {
	room Room

	words       WordProvider
	recorder    metrics.Recorder
	sched       *phaseScheduler
	clock       clockwork.Clock
	trollChance float64
	locale      string

	reqCh  chan actorEvent
	doneCh chan struct{}

	// 连接注册表：传输层连接与稳定玩家身份的双向索引。
	// 连接是传输层关注点，所以不放进 Room 值里
	connPlayers map[string]string
	playerConns map[string]*Conn

	// 已被房间断开、但读循环尚未退出的连接。
	// 来自这些连接的迟到事件一律忽略，读循环退出时清除
	dropped map[string]struct{}

	idleTimer clockwork.Timer

	closed bool
}

func NewRoomActor(
	code string,
	words WordProvider,
	recorder metrics.Recorder,
	clock clockwork.Clock,
	trollChance float64,
) *RoomActor {
	a := &RoomActor{
		room:        NewRoom(code, clock.Now()),
		words:       words,
		recorder:    recorder,
		sched:       newPhaseScheduler(clock),
		clock:       clock,
		trollChance: trollChance,
		locale:      "en",
		reqCh:       make(chan actorEvent, RESP_BUFFER_SIZE),
		doneCh:      make(chan struct{}),
		connPlayers: make(map[string]string),
		playerConns: make(map[string]*Conn),
		dropped:     make(map[string]struct{}),
	}

	// 创建后一直无人加入的房间不会产生任何事件，
	// 由闲置定时器触发自毁，第一个玩家加入时停掉
	a.idleTimer = clock.AfterFunc(ROOM_IDLE_TIMEOUT, func() {
		select {
		case a.reqCh <- actorEvent{idle: true}:
		case <-a.doneCh:
		default:
		}
	})

	return a
}

// Done 在房间被销毁后关闭，供清理循环和传输层观察
func (a *RoomActor) Done() <-chan struct{} {
	return a.doneCh
}

// Deliver 把一个客户端请求投递到房间的事件队列。
// 队列已满或房间已销毁时返回 false，由调用方向客户端报错
func (a *RoomActor) Deliver(conn *Conn, req RequestWrapper) bool {
	select {
	case <-a.doneCh:
		return false
	default:
	}

	select {
	case a.reqCh <- actorEvent{conn: conn, req: req}:
		return true
	default:
		return false
	}
}

// ConnClosed 通知房间某个连接的读循环已退出
func (a *RoomActor) ConnClosed(conn *Conn) {
	select {
	case a.reqCh <- actorEvent{conn: conn, closed: true}:
	case <-a.doneCh:
	}
}

// Run 是房间的事件循环，必须在独立协程中运行。
// 房间销毁（主持人掉线或所有连接退出）后自动返回
func (a *RoomActor) Run() {
	zap.L().Info("房间事件循环启动", zap.String("room_code", a.room.Code))

	for !a.closed {
		select {
		case ev := <-a.reqCh:
			switch {
			case ev.queryCh != nil:
				ev.queryCh <- a.room.clone()
			case ev.idle:
				a.onIdle()
			case ev.closed:
				a.onDisconnect(ev.conn)
			default:
				a.dispatch(ev.conn, ev.req)
			}

		case tmo := <-a.sched.tmoCh:
			a.onTimeout(tmo)
		}
	}

	zap.L().Info("房间事件循环退出", zap.String("room_code", a.room.Code))
}

// dispatch 把客户端请求路由到对应的处理逻辑。
// 所有校验失败都只回给出错的连接，不影响房间状态和其他玩家
func (a *RoomActor) dispatch(conn *Conn, req RequestWrapper) {
	// 已被断开的连接可能还有在途请求，全部忽略
	if _, isDropped := a.dropped[conn.ID]; isDropped {
		return
	}

	if req.ReqType == REQ_JOIN {
		jr := TryUnwrapJoinRequest(req)
		if jr == nil {
			a.unicast(conn, WrapErrResponse("无效的请求格式"))
			return
		}

		a.onJoin(conn, jr.PlayerName)

		return
	}

	// join 之外的所有请求都要求连接已绑定玩家身份
	playerID, ok := a.connPlayers[conn.ID]
	if !ok {
		a.unicast(conn, WrapErrResponse("连接尚未加入房间"))
		return
	}

	switch req.ReqType {
	case REQ_LEAVE:
		a.onLeave(conn, playerID)

	case REQ_START_GAME:
		sr := TryUnwrapStartGameRequest(req)
		if sr == nil {
			a.unicast(conn, WrapErrResponse("无效的请求格式"))
			return
		}

		a.onStartGame(conn, playerID, sr.Category, sr.Locale)

	case REQ_SUBMIT_CLUE:
		cr := TryUnwrapSubmitClueRequest(req)
		if cr == nil {
			a.unicast(conn, WrapErrResponse("无效的请求格式"))
			return
		}

		a.onSubmitClue(conn, playerID, cr.Word)

	case REQ_CAST_VOTE:
		vr := TryUnwrapCastVoteRequest(req)
		if vr == nil {
			a.unicast(conn, WrapErrResponse("无效的请求格式"))
			return
		}

		a.onCastVote(conn, playerID, vr.TargetID)

	case REQ_IMPOSTER_GUESS:
		gr := TryUnwrapImposterGuessRequest(req)
		if gr == nil {
			a.unicast(conn, WrapErrResponse("无效的请求格式"))
			return
		}

		a.onImposterGuess(conn, playerID, gr.Word)

	case REQ_PLAY_AGAIN:
		a.onPlayAgain(conn, playerID, false)

	case REQ_RESET_GAME:
		a.onPlayAgain(conn, playerID, true)

	case REQ_KICK_PLAYER:
		kr := TryUnwrapKickPlayerRequest(req)
		if kr == nil {
			a.unicast(conn, WrapErrResponse("无效的请求格式"))
			return
		}

		a.onKickPlayer(conn, playerID, kr.PlayerID)

	case REQ_UPDATE_SETTINGS:
		ur := TryUnwrapUpdateSettingsRequest(req)
		if ur == nil {
			a.unicast(conn, WrapErrResponse("无效的请求格式"))
			return
		}

		a.onUpdateSettings(conn, playerID, ur.Settings)

	case REQ_INITIATE_WORD_CHANGE:
		a.onInitiateWordChange(conn, playerID)

	case REQ_VOTE_WORD_CHANGE:
		wr := TryUnwrapVoteWordChangeRequest(req)
		if wr == nil {
			a.unicast(conn, WrapErrResponse("无效的请求格式"))
			return
		}

		a.onVoteWordChange(conn, playerID, wr.Vote)

	default:
		a.unicast(conn, WrapErrResponse("未知的请求类型"))
	}
}

func (a *RoomActor) onJoin(conn *Conn, playerName string) {
	name, err := ValidatePlayerName(playerName)
	if err != nil {
		a.unicast(conn, WrapErrResponse(err.Error()))
		return
	}

	// 同名玩家已注册视为断线重连：重新绑定连接，顶掉旧连接
	if existing, ok := a.room.FindPlayerByName(name); ok {
		if oldConn, bound := a.playerConns[existing.ID]; bound {
			a.dropConn(oldConn)
		}

		a.connPlayers[conn.ID] = existing.ID
		a.playerConns[existing.ID] = conn
		a.room = ReconnectPlayer(a.room, existing.ID)

		zap.L().Info(
			"玩家断线重连",
			zap.String("room_code", a.room.Code),
			zap.String("player_id", existing.ID),
			zap.String("player_name", name),
		)

		a.broadcastState()

		return
	}

	room, player, err := AddPlayer(a.room, name)
	if err != nil {
		a.unicast(conn, WrapErrResponse(err.Error()))
		return
	}

	a.room = room
	a.connPlayers[conn.ID] = player.ID
	a.playerConns[player.ID] = conn

	if a.idleTimer != nil {
		a.idleTimer.Stop()
		a.idleTimer = nil
	}

	zap.L().Info(
		"玩家加入房间",
		zap.String("room_code", a.room.Code),
		zap.String("player_id", player.ID),
		zap.String("player_name", name),
		zap.Bool("is_host", player.IsHost),
	)

	a.broadcast(WrapResponse(RESP_PLAYER_JOINED, PlayerJoinedResponse{Player: player}))
	a.broadcastState()
	a.registerMetrics()
}

// onLeave 处理主动离开：玩家被彻底移除。
// 主持人主动离开时身份迁移给最早加入的玩家，房间继续存在
func (a *RoomActor) onLeave(conn *Conn, playerID string) {
	a.room = RemovePlayer(a.room, playerID)

	delete(a.playerConns, playerID)
	a.dropConn(conn)

	zap.L().Info(
		"玩家离开房间",
		zap.String("room_code", a.room.Code),
		zap.String("player_id", playerID),
	)

	if len(a.room.Players) == 0 || a.room.ConnectedCount() == 0 {
		a.closeRoom()
		return
	}

	a.broadcast(WrapResponse(RESP_PLAYER_LEFT, PlayerLeftResponse{PlayerID: playerID}))

	// 离开的人可能正是大家在等的最后一个提交者
	if !a.onActiveSetShrunk() {
		a.broadcastState()
	}
}

// onDisconnect 处理非正常断开：玩家保留在房间里并标记为离线以便重连。
// 主持人的连接断开会直接导致整个房间被销毁
func (a *RoomActor) onDisconnect(conn *Conn) {
	// 房间主动断开过的连接在这里完成注销
	if _, wasDropped := a.dropped[conn.ID]; wasDropped {
		delete(a.dropped, conn.ID)
		return
	}

	playerID, ok := a.connPlayers[conn.ID]
	if !ok {
		return
	}

	// 该连接可能已被重连顶替，此时注册表里的连接不再是它
	if current, bound := a.playerConns[playerID]; !bound || current.ID != conn.ID {
		delete(a.connPlayers, conn.ID)
		return
	}

	delete(a.connPlayers, conn.ID)
	delete(a.playerConns, playerID)

	if playerID == a.room.HostID {
		zap.L().Info(
			"主持人连接断开，关闭房间",
			zap.String("room_code", a.room.Code),
		)

		a.broadcast(WrapResponse(
			RESP_ROOM_CLOSED,
			RoomClosedResponse{Reason: ROOM_CLOSED_HOST_LEFT},
		))
		a.closeRoom()

		return
	}

	a.room = DisconnectPlayer(a.room, playerID)

	zap.L().Info(
		"玩家连接断开",
		zap.String("room_code", a.room.Code),
		zap.String("player_id", playerID),
	)

	if a.room.ConnectedCount() == 0 {
		a.closeRoom()
		return
	}

	// 掉线的人可能正是大家在等的最后一个提交者
	if !a.onActiveSetShrunk() {
		a.broadcastState()
	}
}

// onIdle 处理闲置定时器到期：从未有人加入的房间自行销毁
func (a *RoomActor) onIdle() {
	if len(a.room.Players) > 0 {
		return
	}

	zap.L().Info("房间长时间无人加入，自动销毁", zap.String("room_code", a.room.Code))
	a.closeRoom()
}

// onActiveSetShrunk 在在场玩家集合缩小后重新检查各完成条件。
// 没有计时器兜底时（关闭计时或换词投票），等一个已离场玩家
// 的提交会让房间永远卡住。推进了阶段时返回 true
func (a *RoomActor) onActiveSetShrunk() bool {
	if a.room.Phase == PHASE_CLUE_ROUND && AllWordChangeVotesIn(a.room) {
		a.resolveWordChange()
	}

	switch a.room.Phase {
	case PHASE_CLUE_ROUND:
		if AllCluesSubmitted(a.room) {
			a.advance()
			return true
		}

	case PHASE_VOTING:
		if AllVotesSubmitted(a.room) {
			a.advance()
			return true
		}
	}

	return false
}

func (a *RoomActor) onStartGame(conn *Conn, playerID, category, locale string) {
	if playerID != a.room.HostID {
		a.unicast(conn, WrapErrResponse("只有主持人可以开始游戏"))
		return
	}

	if locale == "" {
		locale = "en"
	}

	room, err := StartGame(a.room, category, locale, a.words, a.trollChance, a.clock.Now())
	if err != nil {
		a.unicast(conn, WrapErrResponse(err.Error()))
		return
	}

	a.room = room
	a.locale = locale

	zap.L().Info(
		"游戏开始",
		zap.String("room_code", a.room.Code),
		zap.String("category", category),
		zap.Bool("troll_mode", a.room.EveryoneIsImposter),
	)

	a.broadcastPhase(nil)
	a.broadcastState()
	a.reschedule()
	a.registerMetrics()
}

func (a *RoomActor) onSubmitClue(conn *Conn, playerID, word string) {
	room, err := SubmitClue(a.room, playerID, word)
	if err != nil {
		a.unicast(conn, WrapErrResponse(err.Error()))
		return
	}

	a.room = room

	// 所有人都交了线索与计时到期共用同一条转移边：先到者生效
	if AllCluesSubmitted(a.room) {
		a.advance()
		return
	}

	a.broadcastState()
}

func (a *RoomActor) onCastVote(conn *Conn, playerID, targetID string) {
	room, err := CastVote(a.room, playerID, targetID)
	if err != nil {
		a.unicast(conn, WrapErrResponse(err.Error()))
		return
	}

	a.room = room

	if AllVotesSubmitted(a.room) {
		a.advance()
		return
	}

	a.broadcastState()
}

func (a *RoomActor) onImposterGuess(conn *Conn, playerID, word string) {
	room, err := ImposterGuessWord(a.room, playerID, word, a.clock.Now())
	if err != nil {
		a.unicast(conn, WrapErrResponse(err.Error()))
		return
	}

	a.sched.Cancel()
	a.room = room

	a.broadcastPhase(map[string]any{"winner": a.room.Winner})
	a.broadcastState()
	a.registerMetrics()
}

func (a *RoomActor) onPlayAgain(conn *Conn, playerID string, reset bool) {
	if playerID != a.room.HostID {
		a.unicast(conn, WrapErrResponse("只有主持人可以重开游戏"))
		return
	}

	if reset && a.room.Phase == PHASE_LOBBY {
		a.unicast(conn, WrapErrResponse("房间已经在大厅中"))
		return
	}

	if !reset && a.room.Phase != PHASE_GAME_OVER {
		a.unicast(conn, WrapErrResponse("游戏尚未结束"))
		return
	}

	a.sched.Cancel()
	a.room = PlayAgain(a.room, a.clock.Now())

	a.broadcastPhase(nil)
	a.broadcastState()
}

func (a *RoomActor) onKickPlayer(conn *Conn, playerID, targetID string) {
	if playerID != a.room.HostID {
		a.unicast(conn, WrapErrResponse("只有主持人可以踢出玩家"))
		return
	}

	if a.room.Phase != PHASE_LOBBY {
		a.unicast(conn, WrapErrResponse("只能在大厅阶段踢出玩家"))
		return
	}

	if targetID == playerID {
		a.unicast(conn, WrapErrResponse("不能踢出自己"))
		return
	}

	if _, ok := a.room.FindPlayer(targetID); !ok {
		a.unicast(conn, WrapErrResponse("玩家不存在"))
		return
	}

	kicked := WrapResponse(RESP_PLAYER_KICKED, PlayerKickedResponse{PlayerID: targetID})

	// 先给被踢者单发通知，再断开其连接
	if targetConn, ok := a.playerConns[targetID]; ok {
		a.unicast(targetConn, kicked)
		delete(a.playerConns, targetID)
		a.dropConn(targetConn)
	}

	a.room = RemovePlayer(a.room, targetID)

	zap.L().Info(
		"玩家被踢出房间",
		zap.String("room_code", a.room.Code),
		zap.String("player_id", targetID),
	)

	a.broadcast(kicked)
	a.broadcastState()
}

func (a *RoomActor) onUpdateSettings(conn *Conn, playerID string, patch SettingsPatch) {
	if playerID != a.room.HostID {
		a.unicast(conn, WrapErrResponse("只有主持人可以修改设置"))
		return
	}

	room, err := UpdateSettings(a.room, patch)
	if err != nil {
		a.unicast(conn, WrapErrResponse(err.Error()))
		return
	}

	a.room = room

	a.broadcast(WrapResponse(
		RESP_SETTINGS_UPDATED,
		SettingsUpdatedResponse{Settings: a.room.Settings},
	))
	a.broadcastState()
}

func (a *RoomActor) onInitiateWordChange(conn *Conn, playerID string) {
	room, err := InitiateWordChange(a.room, playerID)
	if err != nil {
		a.unicast(conn, WrapErrResponse(err.Error()))
		return
	}

	a.room = room

	initiator, _ := a.room.FindPlayer(playerID)

	// 换词投票独立于主计时流程运行，不暂停也不延长线索阶段的截止时间
	a.broadcast(WrapResponse(
		RESP_WORD_CHANGE_VOTE_STARTED,
		WordChangeVoteStartedResponse{
			InitiatorID:   playerID,
			InitiatorName: initiator.Name,
		},
	))
	a.broadcastState()
}

func (a *RoomActor) onVoteWordChange(conn *Conn, playerID string, vote bool) {
	room, err := CastWordChangeVote(a.room, playerID, vote)
	if err != nil {
		a.unicast(conn, WrapErrResponse(err.Error()))
		return
	}

	a.room = room

	a.broadcast(WrapResponse(
		RESP_WORD_CHANGE_VOTE_CAST,
		WordChangeVoteCastResponse{VoterID: playerID},
	))

	// 即使赞成票已提前过半也不提前结算，等所有在场玩家都投完
	if AllWordChangeVotesIn(a.room) {
		a.resolveWordChange()
	}

	a.broadcastState()
}

// resolveWordChange 结算进行中的换词投票并广播结果
func (a *RoomActor) resolveWordChange() {
	newRoom, passed, newHints := ResolveWordChange(a.room, a.locale, a.words)
	a.room = newRoom

	zap.L().Info(
		"换词投票结算",
		zap.String("room_code", a.room.Code),
		zap.Bool("passed", passed),
		zap.Int("new_hints", newHints),
	)

	a.broadcast(WrapResponse(
		RESP_WORD_CHANGE_VOTE_RESULT,
		WordChangeVoteResultResponse{
			Passed:        passed,
			NewHintsCount: newHints,
		},
	))
}

// onTimeout 处理定时器到期事件。来自已被取消或替换的定时器的
// 迟到事件，以及阶段已被动作推进后才到达的事件，都是空操作
func (a *RoomActor) onTimeout(ev timeoutEvent) {
	if a.sched.Stale(ev) || ev.Phase != a.room.Phase {
		zap.L().Debug(
			"忽略过期的超时事件",
			zap.String("room_code", a.room.Code),
			zap.String("event_phase", string(ev.Phase)),
			zap.String("current_phase", string(a.room.Phase)),
		)

		return
	}

	a.advance()
}

// advance 推进一个阶段并完成广播和重新定时
func (a *RoomActor) advance() {
	prev := a.room.Phase
	a.room = AdvancePhase(a.room, a.clock.Now())

	if a.room.Phase == prev {
		a.broadcastState()
		return
	}

	zap.L().Info(
		"阶段切换",
		zap.String("room_code", a.room.Code),
		zap.String("from", string(prev)),
		zap.String("to", string(a.room.Phase)),
	)

	var data map[string]any

	switch a.room.Phase {
	case PHASE_VOTE_RESULTS:
		_, counts, _ := TallyVotes(a.room.Votes)
		data = map[string]any{
			"eliminated_player_id": a.room.EliminatedPlayerID,
			"vote_counts":          counts,
		}

	case PHASE_GAME_OVER:
		data = map[string]any{"winner": a.room.Winner}
		a.registerMetrics()
	}

	a.broadcastPhase(data)
	a.broadcastState()
	a.reschedule()
}

// reschedule 按新阶段的截止时间重新武装唯一的阶段定时器
func (a *RoomActor) reschedule() {
	if a.room.PhaseEndsAt == nil {
		a.sched.Cancel()
		return
	}

	a.sched.Arm(a.room.Phase, *a.room.PhaseEndsAt)
}

// closeRoom 销毁房间：取消定时器，断开所有剩余连接，退出事件循环
func (a *RoomActor) closeRoom() {
	a.sched.Cancel()

	if a.idleTimer != nil {
		a.idleTimer.Stop()
		a.idleTimer = nil
	}

	for playerID, conn := range a.playerConns {
		delete(a.playerConns, playerID)
		a.dropConn(conn)
	}

	a.closed = true
	close(a.doneCh)

	zap.L().Info("房间已销毁", zap.String("room_code", a.room.Code))
}

// dropConn 把连接移出注册表并通知其写协程退出。
// 读循环退出时的 ConnClosed 事件负责把它移出 dropped 集合
func (a *RoomActor) dropConn(conn *Conn) {
	delete(a.connPlayers, conn.ID)
	a.dropped[conn.ID] = struct{}{}
	conn.drop()
}

func (a *RoomActor) unicast(conn *Conn, resp ResponseWrapper) {
	select {
	case conn.RespCh <- resp:
	default:
		zap.L().Warn(
			"发送单播响应失败：连接响应通道已满",
			zap.String("room_code", a.room.Code),
			zap.String("conn_id", conn.ID),
		)
	}
}

func (a *RoomActor) broadcast(resp ResponseWrapper) {
	for _, conn := range a.playerConns {
		a.unicast(conn, resp)
	}
}

// broadcastState 给每个在线玩家分别计算并发送脱敏视图，绝不跨玩家复用
func (a *RoomActor) broadcastState() {
	for playerID, conn := range a.playerConns {
		a.unicast(conn, WrapResponse(RESP_ROOM_STATE, RoomStateResponse{
			Room:     SafeRoomState(a.room, playerID),
			PlayerID: playerID,
		}))
	}
}

func (a *RoomActor) broadcastPhase(data map[string]any) {
	resp := PhaseChangedResponse{Phase: a.room.Phase}
	if data != nil {
		resp.Data = data
	}

	a.broadcast(WrapResponse(RESP_PHASE_CHANGED, resp))
}

func (a *RoomActor) registerMetrics() {
	host, _ := a.room.FindPlayer(a.room.HostID)

	a.recorder.RegisterRoomMetrics(metrics.RoomSnapshot{
		RoomCode:       a.room.Code,
		HostName:       host.Name,
		PlayerCount:    len(a.room.Players),
		ConnectedCount: a.room.ConnectedCount(),
		Phase:          string(a.room.Phase),
		CreatedAt:      a.room.CreatedAt,
		UpdatedAt:      a.clock.Now(),
	})
}

// Snapshot 通过事件循环串行获取房间状态的只读副本，
// 供 REST 查询接口使用。房间已销毁时返回 false
func (a *RoomActor) Snapshot() (Room, bool) {
	queryCh := make(chan Room, 1)

	select {
	case a.reqCh <- actorEvent{queryCh: queryCh}:
	case <-a.doneCh:
		return Room{}, false
	}

	select {
	case room := <-queryCh:
		return room, true
	case <-a.doneCh:
		return Room{}, false
	}
}
