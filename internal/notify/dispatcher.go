package notify

import (
	"gig-marketplace/utils"
)

// Event is a notification payload pushed to a connected user
type Event struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	GigID   string `json:"gig_id"`
}

// Dispatcher delivers events to users over their registered live connection.
// Delivery is best-effort: no queueing, no retry, no persistence.
type Dispatcher struct {
	registry Registry
}

// NewDispatcher creates a new Dispatcher instance
func NewDispatcher(registry Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Notify sends the event to the user's active connection if one is
// registered. Users without a connection are skipped silently; write
// failures are logged and swallowed.
func (d *Dispatcher) Notify(userID string, event Event) {
	conn, ok := d.registry.Lookup(userID)
	if !ok {
		utils.Info("notify: user not connected, skipping", map[string]any{
			"user_id": userID,
			"gig_id":  event.GigID,
		})
		return
	}

	if err := conn.WriteJSON(event); err != nil {
		utils.Warn("notify: failed to deliver event", map[string]any{
			"user_id": userID,
			"gig_id":  event.GigID,
			"error":   err.Error(),
		})
		return
	}

	utils.Info("notify: event delivered", map[string]any{
		"user_id": userID,
		"gig_id":  event.GigID,
	})
}
