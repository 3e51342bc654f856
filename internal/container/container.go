package container

import (
	"sort"
	"sync"

	"auction-house/internal/world"
)

// VisibilityFunc decides whether one item in a shared container is shown to
// a given viewer when the container sends its inventory.
type VisibilityFunc func(item *world.Item, viewerID uint32) bool

// CustomContainer is the capability surface a server-managed container
// exposes to the host's generic container dispatch: instead of intercepting
// open/close/send-inventory on flagged containers, the host calls these
// hooks directly.
type CustomContainer interface {
	Open(viewerID uint32)
	Close(viewerID uint32)
	SendInventory(viewerID uint32) []*world.Item
	TryAdd(item *world.Item) bool
	TryRemove(itemID uint32) bool
}

// SharedContainer is a server-owned inventory container not owned by any
// single player. Every mutating call takes the container's dedicated lock
// for the duration of that single operation; the lock is never held across
// a multi-step workflow.
type SharedContainer struct {
	name    string
	visible VisibilityFunc

	mu       sync.Mutex
	items    map[uint32]*world.Item
	open     bool
	viewerID uint32
}

func NewSharedContainer(name string, visible VisibilityFunc) *SharedContainer {
	return &SharedContainer{
		name:    name,
		visible: visible,
		items:   make(map[uint32]*world.Item),
	}
}

func (c *SharedContainer) Name() string { return c.name }

// TryAdd places an item into the container. It refuses nil items, duplicate
// ids, and items that do not carry exactly one ownership stamp - an
// unstamped item must never reside in a shared container.
func (c *SharedContainer) TryAdd(item *world.Item) bool {
	if item == nil || !item.Stamped() {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[item.ID]; ok {
		return false
	}
	c.items[item.ID] = item
	return true
}

// TryRemove takes an item out of the container by id.
func (c *SharedContainer) TryRemove(itemID uint32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[itemID]; !ok {
		return false
	}
	delete(c.items, itemID)
	return true
}

// Get resolves a contained item without removing it.
func (c *SharedContainer) Get(itemID uint32) (*world.Item, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[itemID]
	return item, ok
}

// Count reports how many items the container currently holds.
func (c *SharedContainer) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// ItemsWhere snapshots the contained items matching pred, ordered by id.
// Callers receive copies of the slice, not the live map.
func (c *SharedContainer) ItemsWhere(pred func(*world.Item) bool) []*world.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*world.Item
	for _, item := range c.items {
		if pred == nil || pred(item) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out
}

// Open marks the container as viewed by a player.
func (c *SharedContainer) Open(viewerID uint32) {
	c.mu.Lock()
	c.open = true
	c.viewerID = viewerID
	c.mu.Unlock()
}

// Close releases the container from its current viewer.
func (c *SharedContainer) Close(viewerID uint32) {
	c.mu.Lock()
	if c.viewerID == viewerID {
		c.open = false
		c.viewerID = 0
	}
	c.mu.Unlock()
}

// SendInventory returns the contained items the viewer is allowed to see,
// ordered by id. With no visibility rule configured everything is shown.
func (c *SharedContainer) SendInventory(viewerID uint32) []*world.Item {
	visible := c.visible
	return c.ItemsWhere(func(item *world.Item) bool {
		return visible == nil || visible(item, viewerID)
	})
}
