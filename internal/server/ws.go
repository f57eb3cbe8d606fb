package server

import (
	"net/http"
	"sync"

	"gig-marketplace/internal/notify"
	"gig-marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// registerMessage is the first frame a client sends to bind its connection
// to a user identity
type registerMessage struct {
	UserID string `json:"user_id"`
}

// syncConn serializes writes to the underlying connection. gorilla/websocket
// allows at most one concurrent writer, while hires committing at the same
// time for the same freelancer dispatch from separate request goroutines.
type syncConn struct {
	mu   sync.Mutex
	conn notify.Connection
}

func (c *syncConn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// WebSocketHandler upgrades the connection and keeps it registered in the
// notification registry until the client disconnects
func WebSocketHandler(registry notify.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			utils.Warn("ws: failed to upgrade connection", map[string]any{"error": err.Error()})
			return
		}

		serveConnection(conn, registry)
	}
}

func serveConnection(conn *websocket.Conn, registry notify.Registry) {
	safe := &syncConn{conn: conn}
	defer func() {
		registry.Unregister(safe)
		conn.Close()
	}()

	registered := false
	for {
		var msg registerMessage
		if err := conn.ReadJSON(&msg); err != nil {
			// Normal close or dead connection; either way the registration
			// is torn down.
			return
		}
		// One identity per connection: frames after the first registration
		// are ignored so teardown removes exactly what was registered.
		if registered || msg.UserID == "" {
			continue
		}

		registry.Register(msg.UserID, safe)
		registered = true
		utils.Info("ws: user registered", map[string]any{"user_id": msg.UserID})
	}
}
