// Package metrics 向外部管理后台上报房间快照。
// 上报是 fire-and-forget 的：任何失败只记日志，绝不影响对局正确性
package metrics

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type RoomSnapshot struct {
	RoomCode       string    `json:"room_code"`
	HostName       string    `json:"host_name"`
	PlayerCount    int       `json:"player_count"`
	ConnectedCount int       `json:"connected_count"`
	Phase          string    `json:"phase"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Recorder interface {
	RegisterRoomMetrics(snap RoomSnapshot)
}

// NewRecorder 根据配置选择实现：没有配置上报地址时使用空实现
func NewRecorder(adminURL string) Recorder {
	if adminURL == "" {
		return noopRecorder{}
	}

	return &httpRecorder{
		url: adminURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type noopRecorder struct{}

func (noopRecorder) RegisterRoomMetrics(RoomSnapshot) {}

// httpRecorder 异步把快照 POST 到管理后台
type httpRecorder struct {
	url    string
	client *http.Client
}

func (hr *httpRecorder) RegisterRoomMetrics(snap RoomSnapshot) {
	go func() {
		body, err := json.Marshal(snap)
		if err != nil {
			zap.L().Warn("序列化房间快照失败", zap.Error(err))
			return
		}

		resp, err := hr.client.Post(hr.url, "application/json", bytes.NewReader(body))
		if err != nil {
			zap.L().Warn(
				"上报房间指标失败",
				zap.String("room_code", snap.RoomCode),
				zap.Error(err),
			)

			return
		}

		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			zap.L().Warn(
				"管理后台拒绝了房间指标",
				zap.String("room_code", snap.RoomCode),
				zap.Int("status", resp.StatusCode),
			)
		}
	}()
}
