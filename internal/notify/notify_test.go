package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeConn records WriteJSON calls and can simulate a dead connection
type fakeConn struct {
	writes []any
	err    error
}

func (c *fakeConn) WriteJSON(v any) error {
	if c.err != nil {
		return c.err
	}
	c.writes = append(c.writes, v)
	return nil
}

// Test registry registration lifecycle
func TestMemoryRegistry(t *testing.T) {
	t.Parallel()

	registry := NewMemoryRegistry()

	t.Run("lookup_unregistered_user", func(t *testing.T) {
		_, ok := registry.Lookup("nobody")
		require.False(t, ok)
	})

	t.Run("register_and_lookup", func(t *testing.T) {
		conn := &fakeConn{}
		registry.Register("user1", conn)

		got, ok := registry.Lookup("user1")
		require.True(t, ok)
		require.Same(t, conn, got)
	})

	t.Run("last_registration_wins", func(t *testing.T) {
		first := &fakeConn{}
		second := &fakeConn{}
		registry.Register("user2", first)
		registry.Register("user2", second)

		got, ok := registry.Lookup("user2")
		require.True(t, ok)
		require.Same(t, second, got)
	})

	t.Run("unregister_removes_entry", func(t *testing.T) {
		conn := &fakeConn{}
		registry.Register("user3", conn)
		registry.Unregister(conn)

		_, ok := registry.Lookup("user3")
		require.False(t, ok)
	})

	t.Run("unregister_unknown_conn_is_noop", func(t *testing.T) {
		registry.Unregister(&fakeConn{})
	})

	t.Run("register_empty_user_ignored", func(t *testing.T) {
		registry.Register("", &fakeConn{})
		_, ok := registry.Lookup("")
		require.False(t, ok)
	})
}

// Test dispatcher delivery semantics
func TestDispatcher_Notify(t *testing.T) {
	t.Parallel()

	event := Event{
		Type:    "success",
		Message: `Congratulations! You have been hired for "Logo design"!`,
		GigID:   "gig1",
	}

	t.Run("delivers_to_registered_user", func(t *testing.T) {
		registry := NewMemoryRegistry()
		conn := &fakeConn{}
		registry.Register("user1", conn)

		dispatcher := NewDispatcher(registry)
		dispatcher.Notify("user1", event)

		require.Len(t, conn.writes, 1)
		require.Equal(t, event, conn.writes[0])
	})

	t.Run("no_connection_is_silent_noop", func(t *testing.T) {
		dispatcher := NewDispatcher(NewMemoryRegistry())
		dispatcher.Notify("offline_user", event)
	})

	t.Run("write_failure_is_swallowed", func(t *testing.T) {
		registry := NewMemoryRegistry()
		conn := &fakeConn{err: errors.New("connection closed")}
		registry.Register("user1", conn)

		dispatcher := NewDispatcher(registry)
		dispatcher.Notify("user1", event)

		require.Empty(t, conn.writes)
	})
}
