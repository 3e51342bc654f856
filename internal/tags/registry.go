package tags

import (
	"fmt"
	"strings"
	"sync"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/world"
)

const shardCount = 16

// Registry maps player ids to the set of item ids the player has marked as
// sell candidates. Keys are sharded so distinct players never contend on a
// global lock; mutations on one player's set are serialized by that set's
// own lock. The raw sets are never exposed for iteration without the lock.
type Registry struct {
	shards [shardCount]shard
}

type shard struct {
	mu   sync.Mutex
	sets map[uint32]*taggedSet
}

type taggedSet struct {
	mu    sync.Mutex
	ids   map[uint32]struct{}
	order []uint32
}

func NewRegistry() *Registry {
	r := &Registry{}
	for i := range r.shards {
		r.shards[i].sets = make(map[uint32]*taggedSet)
	}
	return r
}

func (r *Registry) setFor(playerID uint32) *taggedSet {
	s := &r.shards[playerID%shardCount]
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.sets[playerID]
	if !ok {
		set = &taggedSet{ids: make(map[uint32]struct{})}
		s.sets[playerID] = set
	}
	return set
}

// Tag marks an item as a sell candidate after running the validation
// pipeline: duplicate tag, presence on the player, attunement, active
// trade. First failure wins.
func (r *Registry) Tag(p *world.Player, itemID uint32) error {
	// The cross-player scan runs before this player's set lock is taken;
	// holding one set lock while acquiring another would invite an ABBA
	// deadlock between two concurrent Tag calls.
	if r.taggedElsewhere(p.ID, itemID) {
		return fmt.Errorf("tags: %w - item %d is tagged by another player", auctionerrors.ErrAlreadyTagged, itemID)
	}

	set := r.setFor(p.ID)
	set.mu.Lock()
	defer set.mu.Unlock()

	if _, ok := set.ids[itemID]; ok {
		return fmt.Errorf("tags: %w - item %d", auctionerrors.ErrAlreadyTagged, itemID)
	}

	item := p.Find(itemID, world.ScopeEverywhere)
	if item == nil {
		return fmt.Errorf("tags: %w - item %d", auctionerrors.ErrItemNotFound, itemID)
	}
	if item.ContainsAttuned() {
		return fmt.Errorf("tags: %w - %s", auctionerrors.ErrItemAttuned, item.Name)
	}
	if p.IsTradingItem(item) {
		return fmt.Errorf("tags: %w - %s", auctionerrors.ErrItemInTrade, item.Name)
	}

	set.ids[itemID] = struct{}{}
	set.order = append(set.order, itemID)
	return nil
}

// taggedElsewhere checks the cross-player uniqueness invariant: an item id
// may appear in at most one player's tagged set at a time. Checked, not
// structurally enforced; the scan takes each set lock briefly.
func (r *Registry) taggedElsewhere(playerID, itemID uint32) bool {
	for i := range r.shards {
		s := &r.shards[i]
		s.mu.Lock()
		for owner, set := range s.sets {
			if owner == playerID {
				continue
			}
			set.mu.Lock()
			_, found := set.ids[itemID]
			set.mu.Unlock()
			if found {
				s.mu.Unlock()
				return true
			}
		}
		s.mu.Unlock()
	}
	return false
}

// Untag removes one item from the player's tagged set, reporting whether it
// was present.
func (r *Registry) Untag(playerID, itemID uint32) bool {
	set := r.setFor(playerID)
	set.mu.Lock()
	defer set.mu.Unlock()
	if _, ok := set.ids[itemID]; !ok {
		return false
	}
	delete(set.ids, itemID)
	for i, id := range set.order {
		if id == itemID {
			set.order = append(set.order[:i], set.order[i+1:]...)
			break
		}
	}
	return true
}

// Tagged returns the player's tagged item ids in insertion order.
func (r *Registry) Tagged(playerID uint32) []uint32 {
	set := r.setFor(playerID)
	set.mu.Lock()
	defer set.mu.Unlock()
	return append([]uint32(nil), set.order...)
}

// Clear empties the player's tagged set.
func (r *Registry) Clear(playerID uint32) {
	set := r.setFor(playerID)
	set.mu.Lock()
	set.ids = make(map[uint32]struct{})
	set.order = nil
	set.mu.Unlock()
}

// Report renders the player's tagged list as a chat-ready block. An id that
// no longer resolves to a real item is marked rather than failing the
// whole listing.
func (r *Registry) Report(p *world.Player) string {
	ids := r.Tagged(p.ID)
	if len(ids) == 0 {
		return "You don't have any tagged items"
	}

	var b strings.Builder
	b.WriteString("Auction Sell Tagged List\n")
	b.WriteString("-------------------------\n")
	for _, id := range ids {
		item := p.Find(id, world.ScopeEverywhere)
		if item == nil {
			fmt.Fprintf(&b, "--> Id = %d, unable to find item\n", id)
		} else {
			fmt.Fprintf(&b, "--> Id = %d, %s\n", id, item.Info())
		}
	}
	b.WriteString("-------------------------")
	return b.String()
}
