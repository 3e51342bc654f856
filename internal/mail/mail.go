package mail

import (
	"fmt"
	"sync"
	"time"

	"auction-house/internal/world"
	"auction-house/utils"
)

// Delivery is one queued off-line handover of an item to a player.
type Delivery struct {
	DeliveryID  string
	RecipientID uint32
	Item        *world.Item
	Sender      string
	SentAt      time.Time
}

// Manager is the off-line delivery channel: when direct inventory insertion
// is unsafe or unavailable, items are queued here and handed over the next
// time the recipient collects.
type Manager struct {
	clock func() time.Time

	mu      sync.Mutex
	pending map[uint32][]Delivery
}

func NewManager(clock func() time.Time) *Manager {
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	return &Manager{clock: clock, pending: make(map[uint32][]Delivery)}
}

// Deliver queues an item for a recipient. The item's shared-container
// metadata is cleared before it is queued; a mailed item belongs to nobody
// but its recipient.
func (m *Manager) Deliver(recipientID uint32, item *world.Item, sender string) error {
	if item == nil {
		return fmt.Errorf("mail: cannot deliver nil item to %d", recipientID)
	}
	item.ClearAuctionStamps()

	d := Delivery{
		DeliveryID:  utils.GenerateID(),
		RecipientID: recipientID,
		Item:        item,
		Sender:      sender,
		SentAt:      m.clock(),
	}
	m.mu.Lock()
	m.pending[recipientID] = append(m.pending[recipientID], d)
	m.mu.Unlock()

	utils.Info("queued offline delivery", map[string]any{
		"delivery_id":  d.DeliveryID,
		"recipient_id": recipientID,
		"item_id":      item.ID,
		"sender":       sender,
	})
	return nil
}

// PendingFor returns a copy of the player's queued deliveries.
func (m *Manager) PendingFor(recipientID uint32) []Delivery {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Delivery(nil), m.pending[recipientID]...)
}

// Collect moves every queued item the player can hold into their live
// inventory. Items that still do not fit stay queued for a later collect.
func (m *Manager) Collect(p *world.Player) int {
	m.mu.Lock()
	queued := m.pending[p.ID]
	delete(m.pending, p.ID)
	m.mu.Unlock()

	collected := 0
	var remaining []Delivery
	for _, d := range queued {
		if err := p.AddItem(d.Item); err != nil {
			utils.Warn("delivery does not fit, requeueing", map[string]any{
				"delivery_id": d.DeliveryID,
				"player_id":   p.ID,
				"error":       err.Error(),
			})
			remaining = append(remaining, d)
			continue
		}
		collected++
	}

	if len(remaining) > 0 {
		m.mu.Lock()
		m.pending[p.ID] = append(remaining, m.pending[p.ID]...)
		m.mu.Unlock()
	}
	return collected
}
