package handlers

import (
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/loganlanou/popx/internal/auth"
)

const (
	liveWriteWait  = 10 * time.Second
	livePongWait   = 60 * time.Second
	livePingPeriod = 54 * time.Second
)

// LiveHandler streams auth state changes of one browser over a WebSocket
type LiveHandler struct {
	upgrader websocket.Upgrader
}

func NewLiveHandler() *LiveHandler {
	return &LiveHandler{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleSession sends the current state on connect and again after every change
func (h *LiveHandler) HandleSession(c echo.Context) error {
	authCtx, _, err := browserState(c)
	if err != nil {
		return err
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		slog.Debug("websocket upgrade failed", "error", err)
		return nil
	}
	defer conn.Close()

	sessionID, _ := auth.GetSessionID(c)
	slog.Debug("live session connected", "session_id", sessionID)

	// only the newest state matters, so the buffer holds one
	updates := make(chan auth.State, 1)
	unsubscribe := authCtx.Subscribe(func(s auth.State) {
		select {
		case <-updates:
		default:
		}
		updates <- s
	})
	defer unsubscribe()

	conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
	if err := conn.WriteJSON(authCtx.State()); err != nil {
		return nil
	}

	closed := make(chan struct{})
	go readLoop(conn, closed)

	ticker := time.NewTicker(livePingPeriod)
	defer ticker.Stop()

	for {
		select {
		case state := <-updates:
			conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := conn.WriteJSON(state); err != nil {
				slog.Debug("live session write failed", "session_id", sessionID, "error", err)
				return nil
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		case <-closed:
			slog.Debug("live session disconnected", "session_id", sessionID)
			return nil
		}
	}
}

// readLoop discards client messages and reports when the connection goes away
func readLoop(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	conn.SetReadDeadline(time.Now().Add(livePongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(livePongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("live session closed unexpectedly", "error", err)
			}
			return
		}
	}
}
