package world

import (
	"fmt"
	"sort"
	"sync"
)

// SearchScope selects where on a player an item lookup searches.
type SearchScope int

const (
	ScopeInventory SearchScope = 1 << iota
	ScopeEquipped
	ScopeEverywhere = ScopeInventory | ScopeEquipped
)

// Player is one connected character with a private inventory. All inventory
// mutation goes through its methods; the mutex serializes the player's own
// concurrent requests.
type Player struct {
	ID   uint32
	Name string

	mu          sync.Mutex
	busy        bool
	teleporting bool
	loggingOut  bool
	trading     bool
	inventory   map[uint32]*Item
	equipped    map[uint32]*Item
	tradeWindow map[uint32]struct{}
	messages    []string

	world *World
}

// Busy reports whether the player is in a state that blocks item transfers.
func (p *Player) Busy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.busy || p.teleporting || p.loggingOut
}

func (p *Player) SetBusy(v bool)        { p.mu.Lock(); p.busy = v; p.mu.Unlock() }
func (p *Player) SetTeleporting(v bool) { p.mu.Lock(); p.teleporting = v; p.mu.Unlock() }
func (p *Player) SetLoggingOut(v bool)  { p.mu.Lock(); p.loggingOut = v; p.mu.Unlock() }

// OpenTrade marks the given items as sitting in an active trade window.
func (p *Player) OpenTrade(itemIDs ...uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.trading = true
	for _, id := range itemIDs {
		p.tradeWindow[id] = struct{}{}
	}
}

// CloseTrade ends the trade exchange and releases the traded items.
func (p *Player) CloseTrade() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.trading = false
	p.tradeWindow = make(map[uint32]struct{})
}

// IsTradingItem reports whether the item, or anything it contains, is part
// of the player's active trade exchange.
func (p *Player) IsTradingItem(item *Item) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.trading {
		return false
	}
	return p.inTradeLocked(item)
}

func (p *Player) inTradeLocked(item *Item) bool {
	if _, ok := p.tradeWindow[item.ID]; ok {
		return true
	}
	for _, c := range item.Contents {
		if p.inTradeLocked(c) {
			return true
		}
	}
	return false
}

// Find resolves an item within the requested scope, nil when absent.
func (p *Player) Find(itemID uint32, scope SearchScope) *Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	if scope&ScopeInventory != 0 {
		if item, ok := p.inventory[itemID]; ok {
			return item
		}
	}
	if scope&ScopeEquipped != 0 {
		if item, ok := p.equipped[itemID]; ok {
			return item
		}
	}
	return nil
}

// AddItem places a detached item into the player's inventory, merging into
// an existing stack of the same template when there is room.
func (p *Player) AddItem(item *Item) error {
	if item == nil {
		return fmt.Errorf("world: cannot add nil item to %s", p.Name)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.inventory[item.ID]; ok {
		return fmt.Errorf("world: item %d already held by %s", item.ID, p.Name)
	}
	if item.MaxStackSize > 1 {
		for _, held := range p.inventory {
			if held.Wcid == item.Wcid && held.StackSize+item.StackSize <= held.MaxStackSize {
				held.StackSize += item.StackSize
				return nil
			}
		}
	}
	p.inventory[item.ID] = item
	return nil
}

// Equip moves an item into the equipped slots without inventory checks.
// Seeding helper, used by main and tests.
func (p *Player) Equip(item *Item) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.equipped[item.ID] = item
}

// Detach removes amount units of the item from the player's holdings as a
// single indivisible operation and returns the detached item. Removing the
// full stack detaches the item itself; removing less splits off a fresh
// stack and leaves the remainder in place.
func (p *Player) Detach(itemID uint32, amount int) (*Item, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	item, equipped := p.inventory[itemID], false
	if item == nil {
		item = p.equipped[itemID]
		equipped = item != nil
	}
	if item == nil {
		return nil, fmt.Errorf("world: item %d not held by %s", itemID, p.Name)
	}
	if amount <= 0 {
		amount = item.StackSize
	}
	if amount > item.StackSize {
		return nil, fmt.Errorf("world: item %d holds %d units, cannot detach %d", itemID, item.StackSize, amount)
	}

	if amount == item.StackSize {
		if equipped {
			delete(p.equipped, itemID)
		} else {
			delete(p.inventory, itemID)
		}
		return item, nil
	}

	item.StackSize -= amount
	return p.world.splitFrom(item, amount), nil
}

// Holdings sums the stack sizes of every inventory item of the given
// template. Used for currency balance checks.
func (p *Player) Holdings(wcid uint32) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	total := 0
	for _, item := range p.inventory {
		if item.Wcid == wcid {
			total += item.StackSize
		}
	}
	return total
}

// ItemsOfType returns the player's inventory items of one template, ordered
// by id so greedy currency collection is deterministic.
func (p *Player) ItemsOfType(wcid uint32) []*Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	var items []*Item
	for _, item := range p.inventory {
		if item.Wcid == wcid {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(a, b int) bool { return items[a].ID < items[b].ID })
	return items
}

// InventoryCount reports how many distinct items the player holds.
func (p *Player) InventoryCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.inventory)
}

func (p *Player) notify(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, text)
}

// Messages returns a copy of everything the house has told this player.
func (p *Player) Messages() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.messages...)
}
