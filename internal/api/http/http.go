package http

import (
	"fmt"

	"github.com/kataras/iris/v12"

	"github.com/rlarin/imposter-game/internal/api/http/websocket"
	"github.com/rlarin/imposter-game/internal/state"
)

func RunServer(appState *state.AppState) {
	app := iris.Default()

	app.HandleDir(
		"/",
		iris.Dir("./imposter-fe"),
		iris.DirOptions{
			IndexName: "index.html",
			SPA:       true,
			Compress:  true,
		},
	)

	api := app.Party("/api/v1")

	api.Post("/rooms/create", CreateRoom(appState))
	api.Get("/rooms/{code}", GetRoom(appState))
	api.Get("/categories", GetCategories(appState))

	api.Get("/ws/rooms/{code}", websocket.JoinRoom(appState))

	addr := fmt.Sprintf(
		"%s:%d",
		appState.Cfg.Host,
		appState.Cfg.Port,
	)

	app.Listen(addr)
}
