package handler

import (
	"context"
	"fmt"
	"net/http"

	model "gig-marketplace/internal/models"
	"gig-marketplace/services/marketplace/helpers"
	"gig-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// ActingUserKey is the context key the auth middleware stores the trusted
// acting user ID under.
const ActingUserKey = "acting_user_id"

type GigServiceInterface interface {
	CreateGig(ctx context.Context, ownerID, title, description string, budget float64) (model.Gig, error)
	GetGig(ctx context.Context, gigID string) (model.Gig, error)
	ListOpenGigs(ctx context.Context, keyword string) ([]model.Gig, error)
	ListMyGigs(ctx context.Context, ownerID string) ([]model.Gig, error)
}

type BidServiceInterface interface {
	PlaceBid(ctx context.Context, gigID, freelancerID string, amount float64, message string) (model.Bid, error)
	GetBidsForGig(ctx context.Context, gigID, actingUserID string) ([]model.Bid, error)
	GetMyBids(ctx context.Context, freelancerID string) ([]model.Bid, error)
}

type HireServiceInterface interface {
	Hire(ctx context.Context, bidID, actingUserID string) (model.Gig, model.Bid, error)
}

type MarketplaceHandler struct {
	gigs GigServiceInterface
	bids BidServiceInterface
	hire HireServiceInterface
}

func NewMarketplaceHandler(gigs GigServiceInterface, bids BidServiceInterface, hire HireServiceInterface) *MarketplaceHandler {
	return &MarketplaceHandler{gigs: gigs, bids: bids, hire: hire}
}

// actingUser returns the trusted acting user ID set by the auth middleware
func actingUser(c *gin.Context) string {
	return c.GetString(ActingUserKey)
}

// CreateGigHandler handles POST /gigs
func (h *MarketplaceHandler) CreateGigHandler(c *gin.Context) {
	var req helpers.CreateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateGigHandler", err)
		return
	}

	userID := actingUser(c)
	gig, err := h.gigs.CreateGig(c.Request.Context(), userID, req.Title, req.Description, req.Budget)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateGigHandler: failed to create gig", map[string]any{
			"handler": "CreateGigHandler",
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToGigResponse(gig), "gig created successfully")
	helpers.LogSuccess("CreateGigHandler", "gig created successfully", map[string]any{
		"gig_id":  gig.GigID,
		"user_id": userID,
		"budget":  gig.Budget,
	})
}

// ListGigsHandler handles GET /gigs
func (h *MarketplaceHandler) ListGigsHandler(c *gin.Context) {
	keyword := c.Query("keyword")
	gigs, err := h.gigs.ListOpenGigs(c.Request.Context(), keyword)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListGigsHandler: error listing gigs", map[string]any{"keyword": keyword, "error": err.Error()})
		return
	}

	resp := make([]helpers.GigResponse, 0, len(gigs))
	for _, gig := range gigs {
		resp = append(resp, helpers.ToGigResponse(gig))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "gigs retrieved successfully")
}

// GetGigHandler handles GET /gigs/:gig_id
func (h *MarketplaceHandler) GetGigHandler(c *gin.Context) {
	gigID := c.Param("gig_id")
	gig, err := h.gigs.GetGig(c.Request.Context(), gigID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetGigHandler: error retrieving gig", map[string]any{"gig_id": gigID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToGigResponse(gig), "gig retrieved successfully")
}

// ListMyGigsHandler handles GET /users/me/gigs
func (h *MarketplaceHandler) ListMyGigsHandler(c *gin.Context) {
	userID := actingUser(c)
	gigs, err := h.gigs.ListMyGigs(c.Request.Context(), userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListMyGigsHandler: error listing gigs", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	resp := make([]helpers.GigResponse, 0, len(gigs))
	for _, gig := range gigs {
		resp = append(resp, helpers.ToGigResponse(gig))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "gigs retrieved successfully")
}

// PlaceBidHandler handles POST /bids
func (h *MarketplaceHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	userID := actingUser(c)
	bid, err := h.bids.PlaceBid(c.Request.Context(), req.GigID, userID, req.Amount, req.Message)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler": "PlaceBidHandler",
			"gig_id":  req.GigID,
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":  bid.BidID,
		"gig_id":  bid.GigID,
		"user_id": userID,
		"amount":  bid.Amount,
	})
}

// GetBidsByGigHandler handles GET /gigs/:gig_id/bids
func (h *MarketplaceHandler) GetBidsByGigHandler(c *gin.Context) {
	gigID := c.Param("gig_id")
	userID := actingUser(c)
	bids, err := h.bids.GetBidsForGig(c.Request.Context(), gigID, userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByGigHandler: error retrieving bids", map[string]any{"gig_id": gigID, "user_id": userID, "error": err.Error()})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, helpers.ToBidResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByGigHandler", "bids retrieved successfully", map[string]any{
		"gig_id": gigID,
		"count":  len(resp),
	})
}

// GetMyBidsHandler handles GET /users/me/bids
func (h *MarketplaceHandler) GetMyBidsHandler(c *gin.Context) {
	userID := actingUser(c)
	bids, err := h.bids.GetMyBids(c.Request.Context(), userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetMyBidsHandler: error retrieving bids", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, helpers.ToBidResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
}

// HireHandler handles PATCH /bids/:bid_id/hire
func (h *MarketplaceHandler) HireHandler(c *gin.Context) {
	bidID := c.Param("bid_id")
	userID := actingUser(c)

	gig, bid, err := h.hire.Hire(c.Request.Context(), bidID, userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("HireHandler: failed to hire", map[string]any{
			"handler": "HireHandler",
			"bid_id":  bidID,
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.HireResponse{
		Gig: helpers.ToGigResponse(gig),
		Bid: helpers.ToBidResponse(bid),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "freelancer hired successfully")
	helpers.LogSuccess("HireHandler", "freelancer hired successfully", map[string]any{
		"gig_id":        gig.GigID,
		"bid_id":        bid.BidID,
		"freelancer_id": bid.FreelancerID,
		"user_id":       userID,
	})
}
