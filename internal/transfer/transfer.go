package transfer

import (
	"fmt"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/world"
)

// Service is the only path by which an item crosses between a player's
// personal inventory and a shared container.
type Service struct{}

func NewService() *Service { return &Service{} }

// RemoveForTransfer detaches amount units of an item from the player's
// holdings and returns the detached item. amount <= 0 means the full stack.
//
// Preconditions are checked in order, first failure wins: player not busy,
// item present on the player, item not attuned (directly or transitively),
// item not part of an active trade. The detach itself is a single
// indivisible operation; a failed detach leaves no partial split behind.
//
// The returned item carries no shared-container metadata; the caller stamps
// listing or bid ownership before placing it into a shared container.
func (s *Service) RemoveForTransfer(p *world.Player, itemID uint32, amount int) (*world.Item, error) {
	if p.Busy() {
		return nil, fmt.Errorf("transfer: %w", auctionerrors.ErrPlayerBusy)
	}

	item := p.Find(itemID, world.ScopeEverywhere)
	if item == nil {
		return nil, fmt.Errorf("transfer: %w - item %d", auctionerrors.ErrItemNotFound, itemID)
	}
	if item.ContainsAttuned() {
		return nil, fmt.Errorf("transfer: %w - %s", auctionerrors.ErrItemAttuned, item.Name)
	}
	if p.IsTradingItem(item) {
		return nil, fmt.Errorf("transfer: %w - %s", auctionerrors.ErrItemInTrade, item.Name)
	}

	detached, err := p.Detach(itemID, amount)
	if err != nil {
		return nil, fmt.Errorf("transfer: %w - %v", auctionerrors.ErrTransferFailed, err)
	}
	detached.ClearAuctionStamps()
	return detached, nil
}
