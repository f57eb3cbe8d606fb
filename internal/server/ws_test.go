package server

import (
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gig-marketplace/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// overlapConn flags any two writes that are in flight at the same time
type overlapConn struct {
	active     int32
	writes     int32
	overlapped int32
}

func (c *overlapConn) WriteJSON(_ any) error {
	if atomic.AddInt32(&c.active, 1) > 1 {
		atomic.StoreInt32(&c.overlapped, 1)
	}
	time.Sleep(time.Millisecond) // keep the write open long enough to observe overlap
	atomic.AddInt32(&c.active, -1)
	atomic.AddInt32(&c.writes, 1)
	return nil
}

// Tests that concurrent hire notifications to the same user never produce
// overlapping writes on the registered connection
func TestSyncConn_SerializesConcurrentNotifies(t *testing.T) {
	t.Parallel()

	inner := &overlapConn{}
	registry := notify.NewMemoryRegistry()
	registry.Register("U2", &syncConn{conn: inner})
	dispatcher := notify.NewDispatcher(registry)

	const writers = 32
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			dispatcher.Notify("U2", notify.Event{
				Type:    "success",
				Message: "Congratulations! You have been hired!",
				GigID:   "gig1",
			})
		}()
	}
	wg.Wait()

	require.EqualValues(t, writers, atomic.LoadInt32(&inner.writes))
	require.Zero(t, atomic.LoadInt32(&inner.overlapped), "writes must be serialized")
}

// Tests that a connection binds to a single identity: register frames after
// the first are ignored, and disconnecting removes the registration
func TestWebSocketHandler_SingleIdentityPerConnection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	registry := notify.NewMemoryRegistry()
	router := gin.New()
	router.GET("/ws", WebSocketHandler(registry))

	srv := httptest.NewServer(router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(map[string]string{"user_id": "U1"}))
	require.NoError(t, conn.WriteJSON(map[string]string{"user_id": "U2"}))

	require.Eventually(t, func() bool {
		_, ok := registry.Lookup("U1")
		return ok
	}, 2*time.Second, 10*time.Millisecond, "first identity should register")

	// The second frame must not create a second registration
	_, ok := registry.Lookup("U2")
	require.False(t, ok)

	require.NoError(t, conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second)))
	require.Eventually(t, func() bool {
		_, ok := registry.Lookup("U1")
		return !ok
	}, 2*time.Second, 10*time.Millisecond, "disconnect should unregister")
}
