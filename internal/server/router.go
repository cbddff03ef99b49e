package server

import (
	"auction-offers/internal/auth"
	handler "auction-offers/services/negotiation/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(offerService handler.OfferServiceInterface, auctionService handler.AuctionServiceInterface, tokens *auth.TokenManager) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	offerHandler := handler.NewOfferHandler(offerService)
	auctionHandler := handler.NewAuctionHandler(auctionService)

	adminOnly := AdminAuthMiddleware(tokens)

	api := router.Group("/api/v1")

	offers := api.Group("/offers")
	{
		offers.POST("/auction/:auction_id", offerHandler.SubmitOfferHandler)
		offers.POST("/auction/:auction_id/offer/:offer_id/accept-counter", offerHandler.AcceptCounterHandler)
		offers.POST("/auction/:auction_id/offer/:offer_id/withdraw", offerHandler.WithdrawOfferHandler)
		offers.POST("/:offer_id/reactivate", adminOnly, offerHandler.ReactivateOfferHandler)

		admin := offers.Group("/admin", adminOnly)
		{
			admin.GET("/all", offerHandler.ListAllOffersHandler)
			admin.GET("/stats", offerHandler.OfferStatsHandler)
			admin.POST("/:offer_id/respond", offerHandler.RespondToOfferHandler)
			admin.POST("/:offer_id/counter", offerHandler.CounterOfferHandler)
			admin.POST("/:offer_id/cancel", offerHandler.CancelOfferHandler)
		}
	}

	auctions := api.Group("/auctions")
	{
		auctions.POST("", adminOnly, auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/bids", auctionHandler.PlaceBidHandler)
		auctions.GET("/:auction_id/bids", auctionHandler.ListBidsHandler)
		auctions.PATCH("/:auction_id/lower-reserve", adminOnly, auctionHandler.LowerReserveHandler)
	}

	return router
}
