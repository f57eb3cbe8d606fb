package server

import (
	bidding "gig-marketplace/internal/bidService"
	gig "gig-marketplace/internal/gigService"
	hire "gig-marketplace/internal/hireService"
	"gig-marketplace/internal/notify"
	handler "gig-marketplace/services/marketplace/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(gigService *gig.GigService, bidService *bidding.BidService, hireService *hire.HireService, registry notify.Registry) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	marketplaceHandler := handler.NewMarketplaceHandler(gigService, bidService, hireService)

	gigs := router.Group("/gigs")
	{
		gigs.GET("", marketplaceHandler.ListGigsHandler)
		gigs.POST("", AuthRequiredMiddleware, marketplaceHandler.CreateGigHandler)
		gigs.GET("/:gig_id", marketplaceHandler.GetGigHandler)
		gigs.GET("/:gig_id/bids", AuthRequiredMiddleware, marketplaceHandler.GetBidsByGigHandler)
	}

	bids := router.Group("/bids")
	bids.Use(AuthRequiredMiddleware)
	{
		bids.POST("", marketplaceHandler.PlaceBidHandler)
		bids.PATCH("/:bid_id/hire", marketplaceHandler.HireHandler)
	}

	users := router.Group("/users/me")
	users.Use(AuthRequiredMiddleware)
	{
		users.GET("/gigs", marketplaceHandler.ListMyGigsHandler)
		users.GET("/bids", marketplaceHandler.GetMyBidsHandler)
	}

	router.GET("/ws", WebSocketHandler(registry))

	return router
}
