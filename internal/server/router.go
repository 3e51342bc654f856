package server

import (
	"github.com/gin-gonic/gin"

	"auction-house/internal/world"
	handler "auction-house/services/auction/handler"
)

// SetupRouter configures all Gin routes for the auction house
func SetupRouter(service handler.AuctionServiceInterface, w *world.World) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(service, w)

	players := router.Group("/players/:player_id")
	{
		players.POST("/sell-orders", auctionHandler.CreateSellOrderHandler)
		players.GET("/sell-orders", auctionHandler.GetSellerListingsHandler)
		players.DELETE("/sell-orders/:listing_id", auctionHandler.CancelListingHandler)

		players.POST("/tags", auctionHandler.TagItemHandler)
		players.GET("/tags", auctionHandler.ListTagsHandler)
		players.DELETE("/tags", auctionHandler.ClearTagsHandler)
		players.DELETE("/tags/:item_id", auctionHandler.UntagItemHandler)
	}

	listings := router.Group("/listings")
	{
		listings.GET("", auctionHandler.GetListingsHandler)
		listings.GET("/:listing_id", auctionHandler.GetListingHandler)
		listings.POST("/:listing_id/bids", auctionHandler.PlaceBidHandler)
	}

	return router
}
