package ws

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kompox/patternapi/domain/model"
	"github.com/kompox/patternapi/internal/codec"
	"github.com/kompox/patternapi/internal/logging"
)

// Handler upgrades HTTP requests and serves datagrams through an executor.
// Every datagram is executed concurrently; replies may arrive out of order.
type Handler struct {
	exec     model.Executor
	upgrader websocket.Upgrader
	logger   logging.Logger
}

// NewHandler returns a Handler executing datagrams with exec.
func NewHandler(exec model.Executor, logger logging.Logger) *Handler {
	return &Handler{
		exec:   exec,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn(r.Context(), "websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	ctx, cancel := context.WithCancel(logging.WithLogger(context.Background(), h.logger.With("remote", r.RemoteAddr)))
	defer cancel()

	var (
		wmu sync.Mutex
		wg  sync.WaitGroup
	)
	send := func(d *model.Datagram) {
		b, err := codec.Marshal(d)
		if err != nil {
			h.logger.Error(ctx, "encode reply failed", "id", d.ID, "error", err)
			return
		}
		wmu.Lock()
		defer wmu.Unlock()
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
			h.logger.Warn(ctx, "write reply failed", "id", d.ID, "error", err)
		}
	}

	for {
		_, b, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn(ctx, "websocket read failed", "error", err)
			}
			break
		}
		var d model.Datagram
		if err := codec.Unmarshal(b, &d); err != nil || d.ID == "" {
			h.logger.Warn(ctx, "dropping malformed datagram", "error", err)
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			reply, err := h.exec.Execute(ctx, &d)
			if err != nil {
				reply = &model.Datagram{ID: d.ID, Pattern: d.Pattern, Err: err.Error()}
			}
			send(reply)
		}()
	}
	cancel()
	wg.Wait()
}
