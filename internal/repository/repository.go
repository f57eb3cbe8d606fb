package repository

import (
	"context"

	model "gig-marketplace/internal/models"
)

// HireCheck re-validates a hire decision against the gig and bid as read
// inside the transaction boundary. Returning a non-nil error aborts the
// transaction with no state change.
type HireCheck func(gig model.Gig, bid model.Bid) error

// MarketplaceDB defines gig and bid storage for the marketplace
type MarketplaceDB interface {
	CreateGig(ctx context.Context, gig model.Gig) error
	GetGig(ctx context.Context, gigID string) (model.Gig, error)
	GetOpenGigs(ctx context.Context, keyword string) ([]model.Gig, error)
	GetGigsByOwner(ctx context.Context, ownerID string) ([]model.Gig, error)

	CreateBid(ctx context.Context, bid model.Bid) error
	GetBid(ctx context.Context, bidID string) (model.Bid, error)
	GetBidsByGig(ctx context.Context, gigID string) ([]model.Bid, error)
	GetBidsByFreelancer(ctx context.Context, freelancerID string) ([]model.Bid, error)

	// HireBid atomically marks the gig assigned, the target bid hired and
	// every sibling bid rejected. The bid and its gig are re-read under the
	// transaction and passed to check before any write happens; either all
	// three writes become visible together or none do.
	HireBid(ctx context.Context, bidID string, check HireCheck) (model.Gig, model.Bid, error)
}
