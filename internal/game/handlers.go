package game

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"sketchparty/internal/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type GameHandler struct {
	router *SessionRouter
}

func NewGameHandler(router *SessionRouter) *GameHandler {
	return &GameHandler{router: router}
}

func (h *GameHandler) ConnectHandler(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		// Upgrade already replied with an HTTP error.
		logger.Warningf("WS upgrade failed: %v", err)
		return
	}

	logger.Infof("Connection from %s", ctx.ClientIP())
	socketConn := NewWebsocketConnection(conn)
	h.router.HandleConnection(&socketConn)
}

func RegisterRoute(engine *gin.Engine, handler *GameHandler) {
	engine.GET("/ws", handler.ConnectHandler)
}
