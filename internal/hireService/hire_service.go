package hire

import (
	"context"
	"errors"
	"fmt"

	"gig-marketplace/internal/marketerrors"
	"gig-marketplace/internal/models"
	"gig-marketplace/internal/notify"
	"gig-marketplace/internal/repository"
	"gig-marketplace/utils"
)

// Notifier pushes a post-hire event to the hired freelancer. Delivery is
// best-effort and its outcome never affects the hire result.
type Notifier interface {
	Notify(userID string, event notify.Event)
}

// HireService coordinates the atomic hire transition: gig assigned, winning
// bid hired, every competing bid rejected.
type HireService struct {
	repo     repository.MarketplaceDB
	notifier Notifier
}

// NewHireService creates a new HireService instance
func NewHireService(repo repository.MarketplaceDB, notifier Notifier) *HireService {
	return &HireService{
		repo:     repo,
		notifier: notifier,
	}
}

// Hire selects the given bid as the winner on behalf of the acting user.
// Preconditions are checked up front for early, precise errors and then
// re-validated inside the store's transaction to close the race window with
// concurrent hires on the same gig.
func (s *HireService) Hire(ctx context.Context, bidID, actingUserID string) (models.Gig, models.Bid, error) {
	if bidID == "" || actingUserID == "" {
		return models.Gig{}, models.Bid{}, fmt.Errorf("service: %w - missing bidID or actingUserID", marketerrors.ErrInvalidBid)
	}

	bid, err := s.repo.GetBid(ctx, bidID)
	if err != nil {
		return models.Gig{}, models.Bid{}, fmt.Errorf("service: failed to load bid %s: %w", bidID, err)
	}

	gig, err := s.repo.GetGig(ctx, bid.GigID)
	if err != nil {
		return models.Gig{}, models.Bid{}, fmt.Errorf("service: failed to load gig %s: %w", bid.GigID, err)
	}

	if err := validateHire(gig, actingUserID); err != nil {
		return models.Gig{}, models.Bid{}, fmt.Errorf("service: %w", err)
	}

	gig, bid, err = s.repo.HireBid(ctx, bidID, func(gig models.Gig, bid models.Bid) error {
		// Re-run under the transaction: the gig may have been assigned (or
		// its ownership data changed) between the pre-check and the lock.
		return validateHire(gig, actingUserID)
	})
	if err != nil {
		if isHireKind(err) {
			return models.Gig{}, models.Bid{}, fmt.Errorf("service: failed to hire bid %s: %w", bidID, err)
		}
		// Unexpected infrastructure failure: the transaction has been rolled
		// back, report the generic hire error.
		return models.Gig{}, models.Bid{}, fmt.Errorf("service: %w - %v", marketerrors.ErrHireFailed, err)
	}

	utils.Info("hire committed", map[string]any{
		"gig_id":        gig.GigID,
		"bid_id":        bid.BidID,
		"freelancer_id": bid.FreelancerID,
	})

	// The hire is durably committed; notification is fire-and-forget.
	if s.notifier != nil {
		s.notifier.Notify(bid.FreelancerID, notify.Event{
			Type:    "success",
			Message: fmt.Sprintf("Congratulations! You have been hired for %q!", gig.Title),
			GigID:   gig.GigID,
		})
	}

	return gig, bid, nil
}

// validateHire holds the authorization and state checks shared by the
// pre-check and the in-transaction re-check
func validateHire(gig models.Gig, actingUserID string) error {
	if gig.OwnerID != actingUserID {
		return marketerrors.ErrNotGigOwner
	}
	if gig.Status != models.GigOpen {
		return marketerrors.ErrGigNotOpen
	}
	return nil
}

// isHireKind reports whether err is one of the taxonomy errors the caller
// maps to a client-facing status
func isHireKind(err error) bool {
	return errors.Is(err, marketerrors.ErrBidNotFound) ||
		errors.Is(err, marketerrors.ErrGigNotFound) ||
		errors.Is(err, marketerrors.ErrNotGigOwner) ||
		errors.Is(err, marketerrors.ErrGigNotOpen)
}
