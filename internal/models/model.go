package models

import (
	"fmt"
	"time"

	"auction-house/internal/auctionerrors"
)

// MaxAuctionHours is the longest duration for an auction, a week.
const MaxAuctionHours = 168

// Listing lifecycle states. A listing is terminal once it leaves "active".
const (
	StatusActive    = "active"
	StatusSold      = "sold"
	StatusExpired   = "expired"
	StatusCancelled = "cancelled"
)

// Listing represents one persisted auction sale, active or completed.
type Listing struct {
	ListingID         uint32    `json:"listing_id"`
	SellerID          uint32    `json:"seller_id"`
	SellerName        string    `json:"seller_name"`
	CurrencyWcid      uint32    `json:"currency_wcid"`
	CurrencyName      string    `json:"currency_name"`
	StartPrice        uint      `json:"start_price"`
	BuyoutPrice       uint      `json:"buyout_price"`
	StackSize         int       `json:"stack_size"`
	NumberOfStacks    int       `json:"number_of_stacks"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	Status            string    `json:"status"`
	HighestBidderID   uint32    `json:"highest_bidder_id"`
	HighestBidderName string    `json:"highest_bidder_name"`
	HighestBid        uint      `json:"highest_bid"`
}

// ListingItem links one physical item under auction to its sell order.
type ListingItem struct {
	ID        int64  `json:"id"`
	ListingID uint32 `json:"listing_id"`
	ItemID    uint32 `json:"item_id"`
	StackSize int    `json:"stack_size"`
}

// SellRequest is the ephemeral input of one sell workflow invocation.
type SellRequest struct {
	ItemID         uint32 `json:"item_id"`
	StartPrice     uint   `json:"start_price"`
	BuyoutPrice    uint   `json:"buyout_price"`
	NumberOfStacks int    `json:"number_of_stacks"`
	StackSize      int    `json:"stack_size"`
	CurrencyWcid   uint32 `json:"currency_wcid"`
	HoursDuration  int    `json:"hours_duration"`
}

// Validate checks the request invariants before any mutation happens.
func (r SellRequest) Validate() error {
	if r.ItemID == 0 {
		return fmt.Errorf("models: %w - ItemId must be greater than 0", auctionerrors.ErrSellValidation)
	}
	if r.StackSize <= 0 {
		return fmt.Errorf("models: %w - StackSize must be greater than 0", auctionerrors.ErrSellValidation)
	}
	if r.NumberOfStacks <= 0 {
		return fmt.Errorf("models: %w - NumberOfStacks must be greater than 0", auctionerrors.ErrSellValidation)
	}
	if r.HoursDuration <= 0 {
		return fmt.Errorf("models: %w - HoursDuration must be greater than 0", auctionerrors.ErrSellValidation)
	}
	if r.HoursDuration > MaxAuctionHours {
		return fmt.Errorf("models: %w - requested %d hours", auctionerrors.ErrDurationExceeded, r.HoursDuration)
	}
	return nil
}
