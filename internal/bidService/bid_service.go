package bidding

import (
	"context"
	"fmt"
	"time"

	"gig-marketplace/internal/marketerrors"
	"gig-marketplace/internal/models"
	"gig-marketplace/internal/repository"
	"gig-marketplace/utils"
)

// BidService defines the business logic for placing and listing bids
type BidService struct {
	repo repository.MarketplaceDB
}

// NewBidService creates a new BidService instance
func NewBidService(repo repository.MarketplaceDB) *BidService {
	return &BidService{
		repo: repo,
	}
}

// PlaceBid validates and records a freelancer's bid on a gig
func (s *BidService) PlaceBid(ctx context.Context, gigID, freelancerID string, amount float64, message string) (models.Bid, error) {
	if err := s.validateBid(ctx, gigID, freelancerID, amount, message); err != nil {
		return models.Bid{}, err
	}

	bid := models.Bid{
		BidID:        utils.GenerateID(),
		GigID:        gigID,
		FreelancerID: freelancerID,
		Amount:       amount,
		Message:      message,
		Status:       models.BidPending,
		CreatedAt:    time.Now().UTC(),
	}

	// The store re-checks openness and uniqueness under its own guard, so a
	// racing hire or duplicate submit still fails cleanly here.
	if err := s.repo.CreateBid(ctx, bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid on gig %s by user %s: %w", gigID, freelancerID, err)
	}

	return bid, nil
}

// validateBid checks input validity and business rules for bidding
func (s *BidService) validateBid(ctx context.Context, gigID, freelancerID string, amount float64, message string) error {
	if gigID == "" || freelancerID == "" {
		return fmt.Errorf("service: %w - missing gigID or freelancerID", marketerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return fmt.Errorf("service: %w - non-positive bid amount", marketerrors.ErrInvalidBid)
	}
	if message == "" {
		return fmt.Errorf("service: %w - empty bid message", marketerrors.ErrInvalidBid)
	}

	gig, err := s.repo.GetGig(ctx, gigID)
	if err != nil {
		return fmt.Errorf("service: failed to check gig %s: %w", gigID, err)
	}
	if gig.OwnerID == freelancerID {
		return fmt.Errorf("service: %w", marketerrors.ErrOwnGigBid)
	}
	if gig.Status != models.GigOpen {
		return fmt.Errorf("service: %w", marketerrors.ErrGigNotOpen)
	}

	return nil
}

// GetBidsForGig returns all bids on a gig; only the gig owner may view them
func (s *BidService) GetBidsForGig(ctx context.Context, gigID, actingUserID string) ([]models.Bid, error) {
	if gigID == "" || actingUserID == "" {
		return nil, fmt.Errorf("service: %w - missing gigID or actingUserID", marketerrors.ErrInvalidBid)
	}

	gig, err := s.repo.GetGig(ctx, gigID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to check gig %s: %w", gigID, err)
	}
	if gig.OwnerID != actingUserID {
		return nil, fmt.Errorf("service: %w", marketerrors.ErrNotGigOwner)
	}

	bids, err := s.repo.GetBidsByGig(ctx, gigID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for gig %s: %w", gigID, err)
	}

	return bids, nil
}

// GetMyBids returns all bids placed by the acting user
func (s *BidService) GetMyBids(ctx context.Context, freelancerID string) ([]models.Bid, error) {
	if freelancerID == "" {
		return nil, fmt.Errorf("service: %w - empty freelancer ID", marketerrors.ErrInvalidBid)
	}

	bids, err := s.repo.GetBidsByFreelancer(ctx, freelancerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for user %s: %w", freelancerID, err)
	}

	return bids, nil
}
