package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	model "auction-house/internal/models"
	"auction-house/internal/world"
	"auction-house/services/auction/helpers"
	"auction-house/utils"
)

type AuctionServiceInterface interface {
	PlaceSell(p *world.Player, req model.SellRequest) (model.Listing, error)
	PlaceBid(p *world.Player, listingID uint32, amount uint) error
	CancelListing(p *world.Player, listingID uint32) error
	TagItem(p *world.Player, itemID uint32) error
	UntagItem(p *world.Player, itemID uint32) error
	ListTags(p *world.Player) string
	ClearTags(p *world.Player)
	Listing(listingID uint32) (model.Listing, error)
	ActiveListings() ([]model.Listing, error)
	ListingsBySeller(sellerID uint32) ([]model.Listing, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
	world   *world.World
}

func NewAuctionHandler(service AuctionServiceInterface, w *world.World) *AuctionHandler {
	return &AuctionHandler{service: service, world: w}
}

// player resolves the :player_id route param to a connected character.
func (h *AuctionHandler) player(c *gin.Context) (*world.Player, bool) {
	id, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid player id: %w", err), "invalid player id")
		return nil, false
	}
	p, ok := h.world.Player(uint32(id))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, fmt.Errorf("player %d is not online", id), "player not found")
		return nil, false
	}
	return p, true
}

func listingParam(c *gin.Context) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param("listing_id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid listing id: %w", err), "invalid listing id")
		return 0, false
	}
	return uint32(id), true
}

// CreateSellOrderHandler handles POST /players/:player_id/sell-orders
func (h *AuctionHandler) CreateSellOrderHandler(c *gin.Context) {
	p, ok := h.player(c)
	if !ok {
		return
	}

	var req helpers.CreateSellOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateSellOrderHandler", err)
		return
	}

	listing, err := h.service.PlaceSell(p, model.SellRequest{
		ItemID:         req.ItemID,
		StartPrice:     req.StartPrice,
		BuyoutPrice:    req.BuyoutPrice,
		NumberOfStacks: req.NumberOfStacks,
		StackSize:      req.StackSize,
		CurrencyWcid:   req.CurrencyWcid,
		HoursDuration:  req.HoursDuration,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Error("CreateSellOrderHandler: failed to place sell order", map[string]any{
			"handler":   "CreateSellOrderHandler",
			"player_id": p.ID,
			"item_id":   req.ItemID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, listing, "sell order placed successfully")
	helpers.LogSuccess("CreateSellOrderHandler", "sell order placed successfully", map[string]any{
		"listing_id": listing.ListingID,
		"seller_id":  p.ID,
		"item_id":    req.ItemID,
	})
}

// PlaceBidHandler handles POST /listings/:listing_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	listingID, ok := listingParam(c)
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	p, ok := h.world.Player(req.PlayerID)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, fmt.Errorf("player %d is not online", req.PlayerID), "player not found")
		return
	}

	if err := h.service.PlaceBid(p, listingID, req.BidAmount); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"listing_id": listingID,
			"player_id":  req.PlayerID,
			"amount":     req.BidAmount,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"listing_id": listingID,
		"player_id":  req.PlayerID,
		"amount":     req.BidAmount,
	})
}

// CancelListingHandler handles DELETE /players/:player_id/sell-orders/:listing_id
func (h *AuctionHandler) CancelListingHandler(c *gin.Context) {
	p, ok := h.player(c)
	if !ok {
		return
	}
	listingID, ok := listingParam(c)
	if !ok {
		return
	}

	if err := h.service.CancelListing(p, listingID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("CancelListingHandler: failed to cancel listing", map[string]any{
			"listing_id": listingID,
			"player_id":  p.ID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "listing cancelled successfully")
	helpers.LogSuccess("CancelListingHandler", "listing cancelled successfully", map[string]any{
		"listing_id": listingID,
		"player_id":  p.ID,
	})
}

// TagItemHandler handles POST /players/:player_id/tags
func (h *AuctionHandler) TagItemHandler(c *gin.Context) {
	p, ok := h.player(c)
	if !ok {
		return
	}

	var req helpers.TagItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "TagItemHandler", err)
		return
	}

	if err := h.service.TagItem(p, req.ItemID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("TagItemHandler: failed to tag item", map[string]any{
			"player_id": p.ID,
			"item_id":   req.ItemID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, nil, "item tagged successfully")
	helpers.LogSuccess("TagItemHandler", "item tagged successfully", map[string]any{
		"player_id": p.ID,
		"item_id":   req.ItemID,
	})
}

// UntagItemHandler handles DELETE /players/:player_id/tags/:item_id
func (h *AuctionHandler) UntagItemHandler(c *gin.Context) {
	p, ok := h.player(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid item id: %w", err), "invalid item id")
		return
	}

	if err := h.service.UntagItem(p, uint32(itemID)); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "item untagged successfully")
}

// ListTagsHandler handles GET /players/:player_id/tags
func (h *AuctionHandler) ListTagsHandler(c *gin.Context) {
	p, ok := h.player(c)
	if !ok {
		return
	}
	utils.JSONResponse(c, http.StatusOK, h.service.ListTags(p), "tagged items retrieved successfully")
}

// ClearTagsHandler handles DELETE /players/:player_id/tags
func (h *AuctionHandler) ClearTagsHandler(c *gin.Context) {
	p, ok := h.player(c)
	if !ok {
		return
	}
	h.service.ClearTags(p)
	utils.JSONResponse(c, http.StatusOK, nil, "tagged items cleared successfully")
}

// GetListingsHandler handles GET /listings
func (h *AuctionHandler) GetListingsHandler(c *gin.Context) {
	listings, err := h.service.ActiveListings()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("GetListingsHandler: error retrieving listings", map[string]any{"error": err.Error()})
		return
	}

	if listings == nil {
		listings = []model.Listing{}
	}
	utils.JSONResponse(c, http.StatusOK, listings, "listings retrieved successfully")
}

// GetListingHandler handles GET /listings/:listing_id
func (h *AuctionHandler) GetListingHandler(c *gin.Context) {
	listingID, ok := listingParam(c)
	if !ok {
		return
	}

	listing, err := h.service.Listing(listingID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}
	utils.JSONResponse(c, http.StatusOK, listing, "listing retrieved successfully")
}

// GetSellerListingsHandler handles GET /players/:player_id/sell-orders
func (h *AuctionHandler) GetSellerListingsHandler(c *gin.Context) {
	p, ok := h.player(c)
	if !ok {
		return
	}

	listings, err := h.service.ListingsBySeller(p.ID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	if listings == nil {
		listings = []model.Listing{}
	}
	utils.JSONResponse(c, http.StatusOK, listings, "seller listings retrieved successfully")
}
