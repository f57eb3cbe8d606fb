package models

import "time"

type (
	GigStatus string // Lifecycle state of a gig
	BidStatus string // Lifecycle state of a bid
)

const (
	GigOpen      GigStatus = "open"      // Accepting bids
	GigAssigned  GigStatus = "assigned"  // A freelancer has been hired
	GigCompleted GigStatus = "completed" // Work finished, closed out

	BidPending  BidStatus = "pending"  // Awaiting the gig owner's decision
	BidHired    BidStatus = "hired"    // Selected by the gig owner
	BidRejected BidStatus = "rejected" // Lost to another bid
)

// User represents a marketplace participant
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Gig represents a posted job with a budget, owned by the posting user
type Gig struct {
	GigID       string    `json:"gig_id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget"`
	Status      GigStatus `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Bid represents a freelancer's offer to perform a gig
type Bid struct {
	BidID        string    `json:"bid_id"`
	GigID        string    `json:"gig_id"`
	FreelancerID string    `json:"freelancer_id"`
	Amount       float64   `json:"amount"`
	Message      string    `json:"message"`
	Status       BidStatus `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
