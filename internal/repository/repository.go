package repository

import (
	"time"

	model "auction-house/internal/models"
)

// AuctionDB is the transactional listing store. Reads run outside any
// transaction; every write goes through ExecuteInTransaction so the listing
// and its listing-item rows commit or roll back as a unit.
type AuctionDB interface {
	ExecuteInTransaction(fn func(tx AuctionTx) error) error
	GetListing(listingID uint32) (model.Listing, error)
	ActiveListings() ([]model.Listing, error)
	ListingsBySeller(sellerID uint32) ([]model.Listing, error)
	ListingItems(listingID uint32) ([]model.ListingItem, error)
	ExpiredListings(now time.Time) ([]model.Listing, error)
}

// AuctionTx is the write surface available inside one transaction.
type AuctionTx interface {
	PlaceSellOrder(order model.Listing) (model.Listing, error)
	PlaceListingItem(itemID, listingID uint32, stackSize int) error
	UpdateListingBid(listingID, bidderID uint32, bidderName string, amount uint) error
	UpdateListingStatus(listingID uint32, status string) error
}
