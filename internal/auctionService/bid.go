package auction

import (
	"fmt"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/internal/world"
	"auction-house/utils"
)

// previousBid captures the listing's highest-bidder state before a new bid
// mutates it, for compensation.
type previousBid struct {
	BidderID   uint32
	BidderName string
	Amount     uint
}

// PlaceBid bids currency items against a listing, mirroring the sell
// saga's shape: validate, evict the previous bid, collect currency, update
// the listing, with compensating rollback on any failure. The whole
// read-validate-write runs under the listing lock so the snapshot cannot go
// stale against a competing bid, a cancellation or the expiry sweep.
func (s *AuctionService) PlaceBid(p *world.Player, listingID uint32, amount uint) error {
	unlock := s.lockListing(listingID)
	defer unlock()

	listing, err := s.db.GetListing(listingID)
	if err != nil {
		return err
	}
	if err := s.validateBid(p, listing, amount); err != nil {
		return err
	}

	prev := previousBid{
		BidderID:   listing.HighestBidderID,
		BidderName: listing.HighestBidderName,
		Amount:     listing.HighestBid,
	}
	var evicted, collected []*world.Item

	err = s.db.ExecuteInTransaction(func(tx repository.AuctionTx) error {
		evicted = s.evictPreviousBid(prev.BidderID, listingID)

		var err error
		collected, err = s.collectBidCurrency(p, listing, amount)
		if err != nil {
			return err
		}
		return tx.UpdateListingBid(listingID, p.ID, p.Name, amount)
	})
	if err != nil {
		s.compensateBid(p, listingID, prev, evicted, collected, err)
		return err
	}

	s.world.Notify(p.ID, fmt.Sprintf("Your bid of %d %s on listing %d is now the highest",
		amount, listing.CurrencyName, listingID), world.ChannelBroadcast)
	if prev.BidderID != 0 {
		s.world.Notify(prev.BidderID, fmt.Sprintf("You have been outbid on listing %d, your %d %s moved to your bank",
			listingID, prev.Amount, listing.CurrencyName), world.ChannelSystem)
	}
	return nil
}

// validateBid runs the bid validation chain in order, first failure wins.
func (s *AuctionService) validateBid(p *world.Player, listing model.Listing, amount uint) error {
	if listing.Status != model.StatusActive {
		return fmt.Errorf("auction: %w - listing %d is %s", auctionerrors.ErrListingNotActive, listing.ListingID, listing.Status)
	}
	if p.ID == listing.SellerID {
		return fmt.Errorf("auction: %w", auctionerrors.ErrSelfBid)
	}
	if p.ID == listing.HighestBidderID {
		return fmt.Errorf("auction: %w", auctionerrors.ErrDuplicateBid)
	}
	if listing.HighestBid > 0 && amount < listing.HighestBid {
		return fmt.Errorf("auction: %w - current highest bid is %d", auctionerrors.ErrBidTooLow, listing.HighestBid)
	}
	if listing.CurrencyWcid == 0 {
		return fmt.Errorf("auction: %w - listing %d", auctionerrors.ErrNoCurrency, listing.ListingID)
	}
	if s.world.Now().After(listing.EndTime) {
		return fmt.Errorf("auction: %w - listing %d ended %s", auctionerrors.ErrListingExpired, listing.ListingID, listing.EndTime)
	}
	if amount < listing.StartPrice {
		return fmt.Errorf("auction: %w - start price is %d", auctionerrors.ErrBelowStartPrice, listing.StartPrice)
	}
	if p.Holdings(listing.CurrencyWcid) < int(amount) {
		return fmt.Errorf("auction: %w - bid is %d %s", auctionerrors.ErrInsufficientFunds, amount, listing.CurrencyName)
	}
	return nil
}

// evictPreviousBid moves the previous highest bidder's currency items out
// of the shared items container into that bidder's bank holding area.
func (s *AuctionService) evictPreviousBid(prevBidderID, listingID uint32) []*world.Item {
	if prevBidderID == 0 {
		return nil
	}
	var evicted []*world.Item
	items := s.items.ItemsWhere(func(item *world.Item) bool {
		return item.BidOwnerID == prevBidderID && item.BidListingID == listingID
	})
	for _, item := range items {
		if !s.items.TryRemove(item.ID) {
			continue
		}
		evicted = append(evicted, item)
		if !s.bank.Deposit(prevBidderID, item) {
			utils.Error("failed to park evicted bid currency", map[string]any{
				"bidder_id":  prevBidderID,
				"listing_id": listingID,
				"item_id":    item.ID,
			})
		}
	}
	return evicted
}

// collectBidCurrency detaches currency items from the bidder's inventory
// greedily until the bid amount is met, stamping each with bid-owner and
// listing metadata and placing it into the shared items container.
func (s *AuctionService) collectBidCurrency(p *world.Player, listing model.Listing, amount uint) ([]*world.Item, error) {
	var collected []*world.Item
	remaining := int(amount)
	for remaining > 0 {
		coins := p.ItemsOfType(listing.CurrencyWcid)
		if len(coins) == 0 {
			return collected, fmt.Errorf("auction: %w - still short %d %s",
				auctionerrors.ErrInsufficientBidItems, remaining, listing.CurrencyName)
		}

		take := coins[0].StackSize
		if take > remaining {
			take = remaining
		}
		detached, err := s.transfer.RemoveForTransfer(p, coins[0].ID, take)
		if err != nil {
			return collected, err
		}
		detached.BidOwnerID = p.ID
		detached.BidListingID = listing.ListingID
		collected = append(collected, detached)

		if !s.items.TryAdd(detached) {
			return collected, fmt.Errorf("auction: %w - couldn't transfer bid currency %s to the items container",
				auctionerrors.ErrContainerRejected, detached.Name)
		}
		remaining -= detached.StackSize
	}
	return collected, nil
}

// compensateBid unwinds a failed bid. The listing's previous highest-bidder
// fields are restored, the evicted items stay parked in the previous
// bidder's holding area, and the newly collected items go back into the new
// bidder's live inventory - that inventory was just consumed from, hence
// known-good. Best-effort: compensating failures are logged, never re-thrown.
func (s *AuctionService) compensateBid(p *world.Player, listingID uint32, prev previousBid,
	evicted, collected []*world.Item, cause error) {

	utils.Error("placing bid failed, compensating", map[string]any{
		"bidder_id":  p.ID,
		"listing_id": listingID,
		"evicted":    len(evicted),
		"collected":  len(collected),
		"error":      cause.Error(),
	})

	restore := func(tx repository.AuctionTx) error {
		return tx.UpdateListingBid(listingID, prev.BidderID, prev.BidderName, prev.Amount)
	}
	if err := s.db.ExecuteInTransaction(restore); err != nil {
		utils.Error("failed to restore previous bid on listing", map[string]any{
			"listing_id": listingID,
			"error":      err.Error(),
		})
	}

	// Evicted items remain in the previous bidder's holding area rather
	// than moving back under the listing; asymmetric with the collected
	// path, preserved as the house behaves.
	for _, item := range evicted {
		if !s.bank.Holds(prev.BidderID, item.ID) && !s.bank.Deposit(prev.BidderID, item) {
			utils.Error("failed to restore evicted bid currency to holding area", map[string]any{
				"bidder_id": prev.BidderID,
				"item_id":   item.ID,
			})
		}
	}

	for _, item := range collected {
		s.items.TryRemove(item.ID)
		item.ClearAuctionStamps()
		if err := p.AddItem(item); err != nil {
			utils.Warn("live re-insert of bid currency failed, falling back to mail", map[string]any{
				"bidder_id": p.ID,
				"item_id":   item.ID,
				"error":     err.Error(),
			})
			if mailErr := s.mail.Deliver(p.ID, item, "Auction House"); mailErr != nil {
				utils.Error("failed to return bid currency by mail", map[string]any{
					"bidder_id": p.ID,
					"item_id":   item.ID,
					"error":     mailErr.Error(),
				})
			}
		}
	}

	s.world.Notify(p.ID, "placing bid failed", world.ChannelSystem)
	s.world.Notify(p.ID, cause.Error(), world.ChannelSystem)
}
