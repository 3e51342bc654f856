package bank

import (
	"auction-house/internal/container"
	"auction-house/internal/world"
)

// Manager is the bidder holding area: a shared container whose items are
// stamped with the id of the player they are held for. The bid workflow
// parks evicted currency here.
type Manager struct {
	box *container.SharedContainer
}

func NewManager() *Manager {
	visible := func(item *world.Item, viewerID uint32) bool {
		return item.BankID != 0 && item.BankID == viewerID
	}
	return &Manager{box: container.NewSharedContainer("BankContainer", visible)}
}

// Deposit re-stamps an item as bank-held for the player and places it into
// the holding container.
func (m *Manager) Deposit(playerID uint32, item *world.Item) bool {
	if item == nil {
		return false
	}
	item.ClearAuctionStamps()
	item.BankID = playerID
	return m.box.TryAdd(item)
}

// Holds reports whether the container holds the item for the player.
func (m *Manager) Holds(playerID, itemID uint32) bool {
	item, ok := m.box.Get(itemID)
	return ok && item.BankID == playerID
}

// ItemsFor returns the items held for one player.
func (m *Manager) ItemsFor(playerID uint32) []*world.Item {
	return m.box.SendInventory(playerID)
}

// Withdraw removes an item held for the player and clears its bank stamp.
func (m *Manager) Withdraw(playerID, itemID uint32) (*world.Item, bool) {
	item, ok := m.box.Get(itemID)
	if !ok || item.BankID != playerID {
		return nil, false
	}
	if !m.box.TryRemove(itemID) {
		return nil, false
	}
	item.ClearAuctionStamps()
	return item, true
}

// Container exposes the underlying shared container for the move guard.
func (m *Manager) Container() *container.SharedContainer { return m.box }
