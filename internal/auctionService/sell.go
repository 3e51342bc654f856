package auction

import (
	"fmt"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/internal/world"
	"auction-house/utils"
)

// sellContext accumulates everything one sell invocation has mutated so
// far. It exists for the duration of one PlaceSell call and is the unit of
// compensation on failure.
type sellContext struct {
	order   model.Listing
	removed []*world.Item
	receipt *world.Item
}

// PlaceSell lists items for sale as a single logical transaction. The
// listing and listing-item rows commit or roll back as a unit in the
// store; the container placements are not covered by that transaction and
// are reconciled by compensateSell when the transaction fails. Best-effort
// saga, not a two-phase commit.
func (s *AuctionService) PlaceSell(p *world.Player, req model.SellRequest) (model.Listing, error) {
	if err := req.Validate(); err != nil {
		return model.Listing{}, err
	}
	currency, ok := s.world.LookupCurrency(req.CurrencyWcid)
	if !ok {
		return model.Listing{}, fmt.Errorf("auction: %w - no currency with wcid %d", auctionerrors.ErrSellValidation, req.CurrencyWcid)
	}

	startTime := s.world.Now()
	endTime := startTime.Add(time.Duration(req.HoursDuration) * time.Hour)

	ctx := &sellContext{}
	err := s.db.ExecuteInTransaction(func(tx repository.AuctionTx) error {
		return s.placeSellInTx(tx, p, req, currency, startTime, endTime, ctx)
	})
	if err != nil {
		s.compensateSell(p, ctx, err)
		return model.Listing{}, err
	}

	s.tags.Clear(p.ID)
	s.world.Notify(p.ID, fmt.Sprintf(
		"Successfully created an auction listing with Id = %d, Seller = %s, Currency = %s, StartingPrice = %d",
		ctx.order.ListingID, p.Name, currency.Name, req.StartPrice), world.ChannelBroadcast)
	for _, item := range ctx.removed {
		s.world.Notify(p.ID, fmt.Sprintf("--> Id = %d, %s", item.ID, item.Info()), world.ChannelSystem)
	}
	return ctx.order, nil
}

func (s *AuctionService) placeSellInTx(tx repository.AuctionTx, p *world.Player, req model.SellRequest,
	currency world.CurrencyDefinition, startTime, endTime time.Time, ctx *sellContext) error {

	// The end time was derived when the request was decoded; recheck it
	// against the clock at transaction open so a clock step in between
	// cannot commit a listing past the duration ceiling.
	if endTime.After(s.world.Now().Add(model.MaxAuctionHours * time.Hour)) {
		return fmt.Errorf("auction: %w", auctionerrors.ErrDurationExceeded)
	}

	order, err := tx.PlaceSellOrder(model.Listing{
		SellerID:       p.ID,
		SellerName:     p.Name,
		CurrencyWcid:   currency.Wcid,
		CurrencyName:   currency.Name,
		StartPrice:     req.StartPrice,
		BuyoutPrice:    req.BuyoutPrice,
		StackSize:      req.StackSize,
		NumberOfStacks: req.NumberOfStacks,
		StartTime:      startTime,
		EndTime:        endTime,
		Status:         model.StatusActive,
	})
	if err != nil {
		return err
	}
	ctx.order = order

	item := p.Find(req.ItemID, world.ScopeEverywhere)
	if item == nil {
		return fmt.Errorf("auction: %w - item %d", auctionerrors.ErrItemNotFound, req.ItemID)
	}
	if item.LootGenerated && (req.NumberOfStacks > 1 || req.StackSize > 1) {
		return fmt.Errorf("auction: %w - %s", auctionerrors.ErrLootGeneratedStackSplit, item.Name)
	}
	if req.NumberOfStacks*req.StackSize > item.StackSize {
		return fmt.Errorf("auction: %w - requested %d x %d, have %d",
			auctionerrors.ErrInsufficientStack, req.NumberOfStacks, req.StackSize, item.StackSize)
	}

	for i := 0; i < req.NumberOfStacks; i++ {
		detached, err := s.transfer.RemoveForTransfer(p, req.ItemID, req.StackSize)
		if err != nil {
			return err
		}
		detached.ListingID = order.ListingID
		ctx.removed = append(ctx.removed, detached)

		if !s.items.TryAdd(detached) {
			return fmt.Errorf("auction: %w - couldn't transfer listing item %s to the items container",
				auctionerrors.ErrContainerRejected, detached.Name)
		}
		if err := tx.PlaceListingItem(detached.ID, order.ListingID, detached.StackSize); err != nil {
			return err
		}
	}

	receipt := s.world.NewItem(listingReceiptWcid, "Auction Listing Invoice", 1, 1)
	receipt.ListingID = order.ListingID
	ctx.receipt = receipt
	if !s.listings.TryAdd(receipt) {
		return fmt.Errorf("auction: %w - couldn't transfer receipt %s to the listings container",
			auctionerrors.ErrContainerRejected, receipt.Name)
	}
	return nil
}

// compensateSell unwinds a failed sell invocation. Every item already
// detached is delivered back to the seller through the off-line channel
// rather than re-inserted live: the failure may stem from the seller's
// inventory being in a transient bad state, and an in-place retry could
// re-trigger the same fault. Compensation is best-effort; a failing
// compensating action is logged and never re-thrown.
func (s *AuctionService) compensateSell(p *world.Player, ctx *sellContext, cause error) {
	utils.Error("placing auction listing failed, compensating", map[string]any{
		"seller_id":  p.ID,
		"listing_id": ctx.order.ListingID,
		"removed":    len(ctx.removed),
		"error":      cause.Error(),
	})

	for _, item := range ctx.removed {
		s.items.TryRemove(item.ID)
		if err := s.mail.Deliver(p.ID, item, "Auction House"); err != nil {
			utils.Error("failed to return listing item by mail", map[string]any{
				"seller_id": p.ID,
				"item_id":   item.ID,
				"error":     err.Error(),
			})
		}
	}
	if ctx.receipt != nil {
		s.listings.TryRemove(ctx.receipt.ID)
	}

	s.world.Notify(p.ID, "placing auction listing failed", world.ChannelSystem)
	s.world.Notify(p.ID, cause.Error(), world.ChannelSystem)
}
