package world

import (
	"sync"
	"sync/atomic"
	"time"

	"auction-house/utils"
)

// Message channels, mirroring the host's chat message types.
const (
	ChannelSystem    = "system"
	ChannelBroadcast = "broadcast"
)

// CurrencyDefinition describes one item template accepted as auction
// currency.
type CurrencyDefinition struct {
	Wcid   uint32 `json:"wcid"`
	Name   string `json:"name"`
	IconID uint32 `json:"icon_id"`
}

// World is the in-process slice of the host game engine the auction house
// talks to: the player registry, the item factory, the currency catalog,
// the clock and chat messaging.
type World struct {
	mu         sync.Mutex
	players    map[uint32]*Player
	currencies map[uint32]CurrencyDefinition
	nextItemID atomic.Uint32

	// Clock is swappable so tests can drive listing expiry.
	Clock func() time.Time
}

func NewWorld() *World {
	w := &World{
		players:    make(map[uint32]*Player),
		currencies: make(map[uint32]CurrencyDefinition),
		Clock:      func() time.Time { return time.Now().UTC() },
	}
	w.nextItemID.Store(1000)
	return w
}

func (w *World) Now() time.Time { return w.Clock() }

// AddPlayer registers a character and returns it.
func (w *World) AddPlayer(id uint32, name string) *Player {
	p := &Player{
		ID:          id,
		Name:        name,
		inventory:   make(map[uint32]*Item),
		equipped:    make(map[uint32]*Item),
		tradeWindow: make(map[uint32]struct{}),
		world:       w,
	}
	w.mu.Lock()
	w.players[id] = p
	w.mu.Unlock()
	return p
}

// Player resolves a registered character by id.
func (w *World) Player(id uint32) (*Player, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	p, ok := w.players[id]
	return p, ok
}

// NewItem mints a world object with a fresh id.
func (w *World) NewItem(wcid uint32, name string, stackSize, maxStackSize int) *Item {
	return &Item{
		ID:           w.nextItemID.Add(1),
		Wcid:         wcid,
		Name:         name,
		StackSize:    stackSize,
		MaxStackSize: maxStackSize,
	}
}

// splitFrom mints the detached half of a stack split, carrying the source
// item's template but never its shared-container metadata.
func (w *World) splitFrom(src *Item, amount int) *Item {
	return &Item{
		ID:            w.nextItemID.Add(1),
		Wcid:          src.Wcid,
		Name:          src.Name,
		IconID:        src.IconID,
		Value:         src.Value,
		StackSize:     amount,
		MaxStackSize:  src.MaxStackSize,
		LootGenerated: src.LootGenerated,
	}
}

// RegisterCurrency adds a template to the currency catalog.
func (w *World) RegisterCurrency(def CurrencyDefinition) {
	w.mu.Lock()
	w.currencies[def.Wcid] = def
	w.mu.Unlock()
}

// LookupCurrency resolves a currency definition by template id.
func (w *World) LookupCurrency(wcid uint32) (CurrencyDefinition, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	def, ok := w.currencies[wcid]
	return def, ok
}

// Notify delivers a chat line to a player. Unknown recipients are logged
// and dropped, never fatal.
func (w *World) Notify(playerID uint32, text, channel string) {
	p, ok := w.Player(playerID)
	if !ok {
		utils.Warn("notify: unknown player", map[string]any{"player_id": playerID, "channel": channel})
		return
	}
	p.notify("[AuctionHouse] " + text)
}
