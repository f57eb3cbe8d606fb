package gig

import (
	"context"
	"fmt"
	"time"

	"gig-marketplace/internal/marketerrors"
	"gig-marketplace/internal/models"
	"gig-marketplace/internal/repository"
	"gig-marketplace/utils"
)

// GigService defines the business logic for posting and browsing gigs
type GigService struct {
	repo repository.MarketplaceDB
}

// NewGigService creates a new GigService instance
func NewGigService(repo repository.MarketplaceDB) *GigService {
	return &GigService{
		repo: repo,
	}
}

// CreateGig validates and stores a new gig owned by the acting user
func (s *GigService) CreateGig(ctx context.Context, ownerID, title, description string, budget float64) (models.Gig, error) {
	if ownerID == "" {
		return models.Gig{}, fmt.Errorf("service: %w - missing owner ID", marketerrors.ErrInvalidGig)
	}
	if title == "" || description == "" {
		return models.Gig{}, fmt.Errorf("service: %w - missing title or description", marketerrors.ErrInvalidGig)
	}
	if budget <= 0 {
		return models.Gig{}, fmt.Errorf("service: %w - non-positive budget", marketerrors.ErrInvalidGig)
	}

	gig := models.Gig{
		GigID:       utils.GenerateID(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Budget:      budget,
		Status:      models.GigOpen,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.CreateGig(ctx, gig); err != nil {
		return models.Gig{}, fmt.Errorf("service: failed to create gig for user %s: %w", ownerID, err)
	}

	return gig, nil
}

// GetGig returns a single gig by its identifier
func (s *GigService) GetGig(ctx context.Context, gigID string) (models.Gig, error) {
	if gigID == "" {
		return models.Gig{}, fmt.Errorf("service: %w - empty gig ID", marketerrors.ErrInvalidGig)
	}

	gig, err := s.repo.GetGig(ctx, gigID)
	if err != nil {
		return models.Gig{}, fmt.Errorf("service: failed to get gig %s: %w", gigID, err)
	}

	return gig, nil
}

// ListOpenGigs returns open gigs, optionally filtered by a title keyword
func (s *GigService) ListOpenGigs(ctx context.Context, keyword string) ([]models.Gig, error) {
	gigs, err := s.repo.GetOpenGigs(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list open gigs: %w", err)
	}

	return gigs, nil
}

// ListMyGigs returns all gigs posted by the acting user
func (s *GigService) ListMyGigs(ctx context.Context, ownerID string) ([]models.Gig, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("service: %w - empty owner ID", marketerrors.ErrInvalidGig)
	}

	gigs, err := s.repo.GetGigsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list gigs for user %s: %w", ownerID, err)
	}

	return gigs, nil
}
