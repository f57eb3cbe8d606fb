package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"gig-marketplace/internal/marketerrors"
	model "gig-marketplace/internal/models"
	"gig-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrGigNotFound):
		return http.StatusNotFound, "gig not found"
	case errors.Is(err, marketerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, marketerrors.ErrNotGigOwner):
		return http.StatusUnauthorized, "not authorized for this gig"
	case errors.Is(err, marketerrors.ErrGigNotOpen):
		return http.StatusConflict, "gig is already assigned or closed"
	case errors.Is(err, marketerrors.ErrDuplicateBid):
		return http.StatusConflict, "bid already placed on this gig"
	case errors.Is(err, marketerrors.ErrOwnGigBid):
		return http.StatusBadRequest, "cannot bid on your own gig"
	case errors.Is(err, marketerrors.ErrInvalidGig):
		return http.StatusBadRequest, "invalid gig details"
	case errors.Is(err, marketerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, marketerrors.ErrHireFailed):
		return http.StatusInternalServerError, "hiring failed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ToGigResponse converts a gig model to its wire representation
func ToGigResponse(gig model.Gig) GigResponse {
	return GigResponse{
		GigID:       gig.GigID,
		OwnerID:     gig.OwnerID,
		Title:       gig.Title,
		Description: gig.Description,
		Budget:      gig.Budget,
		Status:      string(gig.Status),
		CreatedAt:   gig.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToBidResponse converts a bid model to its wire representation
func ToBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:        bid.BidID,
		GigID:        bid.GigID,
		FreelancerID: bid.FreelancerID,
		Amount:       bid.Amount,
		Message:      bid.Message,
		Status:       string(bid.Status),
		CreatedAt:    bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}
