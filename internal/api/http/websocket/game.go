package websocket

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kataras/iris/v12"
	"go.uber.org/zap"

	"github.com/rlarin/imposter-game/internal/service/game"
	"github.com/rlarin/imposter-game/internal/state"
)

// JoinRoom 把 HTTP 连接升级为 WebSocket 并接入指定房间的事件循环。
// 路由形如 GET /api/v1/ws/rooms/{code}，加入本身由房间内的 join 消息完成
func JoinRoom(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		code := ctx.Params().Get("code")

		// 凭口头分享的房间码直接连入时房间可能还不存在，按需创建
		actor, err := appState.RoomSvc.FindOrCreateRoom(code)
		if err != nil {
			ctx.StatusCode(iris.StatusBadRequest)
			ctx.JSON(iris.Map{
				"error": err.Error(),
			})
			return
		}

		conn, err := upgrader.Upgrade(
			ctx.ResponseWriter(),
			ctx.Request(),
			nil,
		)
		if err != nil {
			zap.L().Error("升级到WebSocket失败", zap.Error(err))
			ctx.StatusCode(iris.StatusBadRequest)
			return
		}

		defer conn.Close()

		conn.SetReadDeadline(time.Now().Add(HEARTBEAT_TIMEOUT))
		conn.SetPongHandler(heartbeatHandler(conn))

		clientIP := ctx.RemoteAddr()
		gameConn := game.NewConn()

		zap.L().Info(
			"WebSocket连接建立",
			zap.String("client_ip", clientIP),
			zap.String("room_code", code),
			zap.String("conn_id", gameConn.ID),
		)

		// 写入协程：从房间的响应通道取消息发给客户端，兼负责心跳。
		// 房间要求断开（踢出、房间销毁、重连顶替）时通过 Done 通知，
		// 这里主动关闭底层连接让读循环随之退出
		go func() {
			ticker := time.NewTicker(HEARTBEAT_INTERVAL)
			defer ticker.Stop()

			for {
				select {
				case <-gameConn.Done():
					zap.L().Info(
						"房间要求断开该连接",
						zap.String("client_ip", clientIP),
						zap.String("conn_id", gameConn.ID),
					)

					conn.Close()

					return

				case <-ticker.C:
					conn.SetWriteDeadline(time.Now().Add(HEARTBEAT_TIMEOUT))

					if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
						zap.L().Error(
							"发送心跳失败",
							zap.String("client_ip", clientIP),
							zap.Error(err),
						)
						return
					}

				case resp := <-gameConn.RespCh:
					if err := conn.WriteJSON(resp); err != nil {
						zap.L().Error(
							"发送消息失败",
							zap.String("client_ip", clientIP),
							zap.Error(err),
						)
						return
					}
				}
			}
		}()

		// 读取协程（主协程）
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(
					err,
					websocket.CloseGoingAway,
					websocket.CloseAbnormalClosure,
				) {
					zap.L().Error(
						"读取消息失败",
						zap.String("client_ip", clientIP),
						zap.Error(err),
					)
				}

				break
			}

			var wrapper game.RequestWrapper

			if err := json.Unmarshal(msg, &wrapper); err != nil {
				zap.L().Error(
					"解析消息失败",
					zap.String("client_ip", clientIP),
					zap.Error(err),
				)

				pushErr(gameConn, "无效的请求格式")

				continue
			}

			if !actor.Deliver(gameConn, wrapper) {
				zap.L().Warn(
					"投递请求失败：房间已关闭或繁忙",
					zap.String("client_ip", clientIP),
					zap.String("room_code", code),
				)

				pushErr(gameConn, "房间繁忙，请稍后再试")
			}
		}

		// 读循环退出，通知房间该连接已断开
		actor.ConnClosed(gameConn)

		zap.L().Info(
			"WebSocket连接处理完成",
			zap.String("client_ip", clientIP),
			zap.String("room_code", code),
			zap.String("conn_id", gameConn.ID),
		)
	}
}

// pushErr 把连接层的协议错误放进响应通道，由写协程统一发送
func pushErr(gameConn *game.Conn, errMsg string) {
	select {
	case gameConn.RespCh <- game.WrapErrResponse(errMsg):
	default:
		zap.L().Warn("响应通道已满，丢弃错误消息")
	}
}
