package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gig-marketplace/internal/marketerrors"
	model "gig-marketplace/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of MarketplaceDB
type MemoryRepo struct {
	mu      sync.RWMutex
	gigs    map[string]model.Gig // key: gigID -> value: gig
	bids    map[string]model.Bid // key: bidID -> value: bid
	gigBids map[string][]string  // key: gigID -> value: list of bidIDs placed on the gig
	bidKeys map[string]struct{}  // key: gigID|freelancerID -> uniqueness guard
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		gigs:    make(map[string]model.Gig),
		bids:    make(map[string]model.Bid),
		gigBids: make(map[string][]string),
		bidKeys: make(map[string]struct{}),
	}
}

func bidKey(gigID, freelancerID string) string {
	return gigID + "|" + freelancerID
}

// CreateGig stores a new gig
func (r *MemoryRepo) CreateGig(_ context.Context, gig model.Gig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gigs[gig.GigID] = gig
	return nil
}

// GetGig returns a gig by its identifier
func (r *MemoryRepo) GetGig(_ context.Context, gigID string) (model.Gig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gig, ok := r.gigs[gigID]
	if !ok {
		return model.Gig{}, fmt.Errorf("get gig %s: %w", gigID, marketerrors.ErrGigNotFound)
	}
	return gig, nil
}

// GetOpenGigs returns open gigs, newest first, optionally filtered by a
// case-insensitive title keyword
func (r *MemoryRepo) GetOpenGigs(_ context.Context, keyword string) ([]model.Gig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keyword = strings.ToLower(keyword)
	gigs := make([]model.Gig, 0)
	for _, gig := range r.gigs {
		if gig.Status != model.GigOpen {
			continue
		}
		if keyword != "" && !strings.Contains(strings.ToLower(gig.Title), keyword) {
			continue
		}
		gigs = append(gigs, gig)
	}
	sort.Slice(gigs, func(i, j int) bool { return gigs[i].CreatedAt.After(gigs[j].CreatedAt) })
	return gigs, nil
}

// GetGigsByOwner returns all gigs posted by a user, newest first
func (r *MemoryRepo) GetGigsByOwner(_ context.Context, ownerID string) ([]model.Gig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gigs := make([]model.Gig, 0)
	for _, gig := range r.gigs {
		if gig.OwnerID == ownerID {
			gigs = append(gigs, gig)
		}
	}
	sort.Slice(gigs, func(i, j int) bool { return gigs[i].CreatedAt.After(gigs[j].CreatedAt) })
	return gigs, nil
}

// CreateBid records a freelancer's bid on a gig. The gig must exist and still
// be open, and the (gig, freelancer) pair must not have bid before.
func (r *MemoryRepo) CreateBid(_ context.Context, bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	gig, ok := r.gigs[bid.GigID]
	if !ok {
		return fmt.Errorf("create bid for gig %s: %w", bid.GigID, marketerrors.ErrGigNotFound)
	}
	if gig.Status != model.GigOpen {
		return fmt.Errorf("create bid for gig %s: %w", bid.GigID, marketerrors.ErrGigNotOpen)
	}

	key := bidKey(bid.GigID, bid.FreelancerID)
	if _, exists := r.bidKeys[key]; exists {
		return fmt.Errorf("create bid for gig %s by user %s: %w", bid.GigID, bid.FreelancerID, marketerrors.ErrDuplicateBid)
	}

	r.bids[bid.BidID] = bid
	r.gigBids[bid.GigID] = append(r.gigBids[bid.GigID], bid.BidID)
	r.bidKeys[key] = struct{}{}

	return nil
}

// GetBid returns a bid by its identifier
func (r *MemoryRepo) GetBid(_ context.Context, bidID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, marketerrors.ErrBidNotFound)
	}
	return bid, nil
}

// GetBidsByGig returns all bids placed on a gig
func (r *MemoryRepo) GetBidsByGig(_ context.Context, gigID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.gigs[gigID]; !ok {
		return nil, fmt.Errorf("get bids for gig %s: %w", gigID, marketerrors.ErrGigNotFound)
	}

	bids := make([]model.Bid, 0, len(r.gigBids[gigID]))
	for _, id := range r.gigBids[gigID] {
		bids = append(bids, r.bids[id])
	}
	return bids, nil
}

// GetBidsByFreelancer returns all bids placed by a user, newest first
func (r *MemoryRepo) GetBidsByFreelancer(_ context.Context, freelancerID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0)
	for _, bid := range r.bids {
		if bid.FreelancerID == freelancerID {
			bids = append(bids, bid)
		}
	}
	sort.Slice(bids, func(i, j int) bool { return bids[i].CreatedAt.After(bids[j].CreatedAt) })
	return bids, nil
}

// HireBid performs the atomic hire transition. The write lock is the
// transaction boundary here: check runs against the current state and no
// mutation happens unless it passes, so readers never observe a partial
// transition.
func (r *MemoryRepo) HireBid(_ context.Context, bidID string, check HireCheck) (model.Gig, model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s: %w", bidID, marketerrors.ErrBidNotFound)
	}

	gig, ok := r.gigs[bid.GigID]
	if !ok {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s: %w", bidID, marketerrors.ErrGigNotFound)
	}

	if check != nil {
		if err := check(gig, bid); err != nil {
			return model.Gig{}, model.Bid{}, err
		}
	}

	gig.Status = model.GigAssigned
	bid.Status = model.BidHired
	r.gigs[gig.GigID] = gig
	r.bids[bid.BidID] = bid

	for _, siblingID := range r.gigBids[gig.GigID] {
		if siblingID == bid.BidID {
			continue
		}
		sibling := r.bids[siblingID]
		sibling.Status = model.BidRejected
		r.bids[siblingID] = sibling
	}

	return gig, bid, nil
}
