package auction

import (
	"fmt"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/internal/world"
	"auction-house/utils"
)

// CancelListing withdraws an active, unbid listing. The listed items go
// back to the seller through the off-line channel and the listing turns
// terminal.
func (s *AuctionService) CancelListing(p *world.Player, listingID uint32) error {
	unlock := s.lockListing(listingID)
	defer unlock()

	listing, err := s.db.GetListing(listingID)
	if err != nil {
		return err
	}
	if listing.SellerID != p.ID {
		return fmt.Errorf("auction: %w - listing %d", auctionerrors.ErrNotSeller, listingID)
	}
	if listing.Status != model.StatusActive {
		return fmt.Errorf("auction: %w - listing %d is %s", auctionerrors.ErrListingNotActive, listingID, listing.Status)
	}
	if listing.HighestBidderID != 0 {
		return fmt.Errorf("auction: %w - listing %d", auctionerrors.ErrListingHasBids, listingID)
	}

	err = s.db.ExecuteInTransaction(func(tx repository.AuctionTx) error {
		return tx.UpdateListingStatus(listingID, model.StatusCancelled)
	})
	if err != nil {
		return err
	}

	s.releaseListingItems(listing, listing.SellerID)
	s.forgetListing(listingID)
	s.world.Notify(p.ID, fmt.Sprintf("You have cancelled listing %d, its items are in your mailbox", listingID), world.ChannelSystem)
	return nil
}

// CompleteExpiredListings sweeps every active listing past its end time:
// a listing with a standing bid is sold (items to the winner, proceeds to
// the seller), one without expires back to the seller. Returns how many
// listings were closed.
func (s *AuctionService) CompleteExpiredListings() (int, error) {
	expired, err := s.db.ExpiredListings(s.world.Now())
	if err != nil {
		return 0, err
	}

	closed := 0
	for _, stale := range expired {
		if s.closeExpiredListing(stale.ListingID) {
			closed++
		}
	}
	return closed, nil
}

// closeExpiredListing settles one expired listing under its listing lock.
// The sweep's snapshot may predate a bid that landed just before the end
// time, so the listing is re-read under the lock before settlement.
func (s *AuctionService) closeExpiredListing(listingID uint32) bool {
	unlock := s.lockListing(listingID)
	defer unlock()

	listing, err := s.db.GetListing(listingID)
	if err != nil {
		utils.Error("failed to re-read expired listing", map[string]any{
			"listing_id": listingID,
			"error":      err.Error(),
		})
		return false
	}
	if listing.Status != model.StatusActive {
		return false
	}

	status := model.StatusExpired
	if listing.HighestBidderID != 0 {
		status = model.StatusSold
	}
	err = s.db.ExecuteInTransaction(func(tx repository.AuctionTx) error {
		return tx.UpdateListingStatus(listing.ListingID, status)
	})
	if err != nil {
		utils.Error("failed to close expired listing", map[string]any{
			"listing_id": listing.ListingID,
			"error":      err.Error(),
		})
		return false
	}

	if status == model.StatusSold {
		s.settleSale(listing)
	} else {
		s.releaseListingItems(listing, listing.SellerID)
		s.world.Notify(listing.SellerID, fmt.Sprintf("Listing %d expired without bids, its items are in your mailbox",
			listing.ListingID), world.ChannelSystem)
	}
	s.forgetListing(listing.ListingID)
	return true
}

// settleSale hands the listed items to the winning bidder and the bid
// currency to the seller, both off-line. Delivery failures are logged and
// left for manual reconciliation; losing an item silently is worse.
func (s *AuctionService) settleSale(listing model.Listing) {
	s.releaseListingItems(listing, listing.HighestBidderID)

	proceeds := s.items.ItemsWhere(func(item *world.Item) bool {
		return item.BidOwnerID == listing.HighestBidderID && item.BidListingID == listing.ListingID
	})
	for _, item := range proceeds {
		if !s.items.TryRemove(item.ID) {
			continue
		}
		if err := s.mail.Deliver(listing.SellerID, item, listing.HighestBidderName); err != nil {
			utils.Error("failed to deliver sale proceeds", map[string]any{
				"listing_id": listing.ListingID,
				"seller_id":  listing.SellerID,
				"item_id":    item.ID,
				"error":      err.Error(),
			})
		}
	}

	s.world.Notify(listing.HighestBidderID, fmt.Sprintf("You won listing %d, its items are in your mailbox",
		listing.ListingID), world.ChannelBroadcast)
	s.world.Notify(listing.SellerID, fmt.Sprintf("Listing %d sold for %d %s, the proceeds are in your mailbox",
		listing.ListingID, listing.HighestBid, listing.CurrencyName), world.ChannelBroadcast)
}

// releaseListingItems clears a listing out of the shared containers and
// mails its physical items to the recipient.
func (s *AuctionService) releaseListingItems(listing model.Listing, recipientID uint32) {
	items := s.items.ItemsWhere(func(item *world.Item) bool {
		return item.ListingID == listing.ListingID
	})
	for _, item := range items {
		if !s.items.TryRemove(item.ID) {
			continue
		}
		if err := s.mail.Deliver(recipientID, item, "Auction House"); err != nil {
			utils.Error("failed to deliver listing item", map[string]any{
				"listing_id":   listing.ListingID,
				"recipient_id": recipientID,
				"item_id":      item.ID,
				"error":        err.Error(),
			})
		}
	}

	receipts := s.listings.ItemsWhere(func(item *world.Item) bool {
		return item.ListingID == listing.ListingID
	})
	for _, receipt := range receipts {
		s.listings.TryRemove(receipt.ID)
	}
}
