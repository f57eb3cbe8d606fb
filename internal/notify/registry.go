package notify

import "sync"

// Connection is the live connection handle the dispatcher writes events to.
// *websocket.Conn satisfies it.
type Connection interface {
	WriteJSON(v any) error
}

// Registry maps user identifiers to their active live connection
type Registry interface {
	Register(userID string, conn Connection)
	Unregister(conn Connection)
	Lookup(userID string) (Connection, bool)
}

// MemoryRegistry is a concurrency-safe in-memory implementation of Registry.
// Re-registering a user replaces the previous connection (last write wins).
type MemoryRegistry struct {
	mu    sync.RWMutex
	conns map[string]Connection // key: userID -> value: active connection
}

// NewMemoryRegistry creates a new in-memory registry instance
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		conns: make(map[string]Connection),
	}
}

// Register associates a user with an active connection
func (r *MemoryRegistry) Register(userID string, conn Connection) {
	if userID == "" || conn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[userID] = conn
}

// Unregister removes whatever user the connection is registered under.
// The O(N) reverse scan is acceptable for the expected connection counts.
func (r *MemoryRegistry) Unregister(conn Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for userID, c := range r.conns {
		if c == conn {
			delete(r.conns, userID)
			break
		}
	}
}

// Lookup returns the user's active connection, if any
func (r *MemoryRegistry) Lookup(userID string) (Connection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conn, ok := r.conns[userID]
	return conn, ok
}
