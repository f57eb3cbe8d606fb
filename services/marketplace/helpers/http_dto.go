package helpers

// Request/Response DTOs
type CreateGigRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Budget      float64 `json:"budget" binding:"required,gt=0"`
}

type PlaceBidRequest struct {
	GigID   string  `json:"gig_id" binding:"required"`
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	Message string  `json:"message" binding:"required"`
}

type GigResponse struct {
	GigID       string  `json:"gig_id"`
	OwnerID     string  `json:"owner_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

type BidResponse struct {
	BidID        string  `json:"bid_id"`
	GigID        string  `json:"gig_id"`
	FreelancerID string  `json:"freelancer_id"`
	Amount       float64 `json:"amount"`
	Message      string  `json:"message"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

type HireResponse struct {
	Gig GigResponse `json:"gig"`
	Bid BidResponse `json:"bid"`
}
