package state

import (
	"github.com/rlarin/imposter-game/internal/config"
	"github.com/rlarin/imposter-game/internal/service"
	"github.com/rlarin/imposter-game/internal/words"
)

type AppState struct {
	Cfg     *config.AppConfig
	RoomSvc *service.RoomService
	Words   *words.StaticProvider
}

func NewAppState(
	cfg *config.AppConfig,
	roomSvc *service.RoomService,
	wordsProvider *words.StaticProvider,
) *AppState {
	return &AppState{
		Cfg:     cfg,
		RoomSvc: roomSvc,
		Words:   wordsProvider,
	}
}
