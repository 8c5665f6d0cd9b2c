package main

import (
	"github.com/jonboulle/clockwork"

	"github.com/rlarin/imposter-game/internal/api/http"
	"github.com/rlarin/imposter-game/internal/config"
	"github.com/rlarin/imposter-game/internal/logger"
	"github.com/rlarin/imposter-game/internal/metrics"
	"github.com/rlarin/imposter-game/internal/service"
	"github.com/rlarin/imposter-game/internal/state"
	"github.com/rlarin/imposter-game/internal/words"
)

func main() {
	// 加载配置
	cfg := config.InitConfig()

	// 初始化日志器
	logger.InitLogger(cfg.LogLevel)

	wordsProvider := words.NewStaticProvider()

	roomSvc := service.NewRoomService(
		wordsProvider,
		metrics.NewRecorder(cfg.AdminMetricsURL),
		clockwork.NewRealClock(),
		cfg.TrollChance,
	)
	defer roomSvc.Close()

	// 组装应用状态
	appState := state.NewAppState(cfg, roomSvc, wordsProvider)

	// 启动服务器
	http.RunServer(appState)
}
