package http

import (
	"github.com/kataras/iris/v12"

	"github.com/rlarin/imposter-game/internal/service/game"
	"github.com/rlarin/imposter-game/internal/state"
	"github.com/rlarin/imposter-game/internal/words"
)

func CreateRoom(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		code, err := appState.RoomSvc.CreateRoom()
		if err != nil {
			ctx.StatusCode(iris.StatusInternalServerError)
			ctx.JSON(iris.Map{
				"error": err.Error(),
			})
			return
		}

		ctx.JSON(iris.Map{
			"room_code": code,
		})
	}
}

// GetRoom 返回房间的公开信息，供前端在加入前确认房间存在
func GetRoom(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		code := ctx.Params().Get("code")

		room, ok := appState.RoomSvc.RoomSnapshot(code)
		if !ok {
			ctx.StatusCode(iris.StatusNotFound)
			ctx.JSON(iris.Map{
				"error": "房间不存在",
			})
			return
		}

		ctx.JSON(iris.Map{
			"room_code":    room.Code,
			"phase":        room.Phase,
			"player_count": len(room.Players),
			"joinable":     room.Phase == game.PHASE_LOBBY && len(room.Players) < game.MAX_PLAYERS,
		})
	}
}

func GetCategories(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		locale := ctx.URLParamDefault("locale", words.DEFAULT_LOCALE)

		ctx.JSON(iris.Map{
			"categories": appState.Words.Categories(locale),
		})
	}
}
