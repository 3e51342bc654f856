package tags

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/world"
)

// Helper to create a player holding one plain item
func newPlayerWithItem(w *world.World, playerID uint32, name string) (*world.Player, *world.Item) {
	p := w.AddPlayer(playerID, name)
	item := w.NewItem(300, "Training Sword", 1, 1)
	if err := p.AddItem(item); err != nil {
		panic(err)
	}
	return p, item
}

// Tests Tag validation pipeline
func TestRegistry_Tag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		setup         func(w *world.World, p *world.Player, item *world.Item) uint32 // returns itemID to tag
		expectedError error
	}{
		{
			name: "valid_tag",
			setup: func(w *world.World, p *world.Player, item *world.Item) uint32 {
				return item.ID
			},
			expectedError: nil,
		},
		{
			name: "item_not_on_person",
			setup: func(w *world.World, p *world.Player, item *world.Item) uint32 {
				return 999999
			},
			expectedError: auctionerrors.ErrItemNotFound,
		},
		{
			name: "attuned_item",
			setup: func(w *world.World, p *world.Player, item *world.Item) uint32 {
				item.Attuned = true
				return item.ID
			},
			expectedError: auctionerrors.ErrItemAttuned,
		},
		{
			name: "container_with_attuned_content",
			setup: func(w *world.World, p *world.Player, item *world.Item) uint32 {
				pack := w.NewItem(136, "Pack", 1, 1)
				attuned := w.NewItem(301, "Bonded Ring", 1, 1)
				attuned.Attuned = true
				pack.Contents = []*world.Item{attuned}
				require.NoError(t, p.AddItem(pack))
				return pack.ID
			},
			expectedError: auctionerrors.ErrItemAttuned,
		},
		{
			name: "item_in_trade_window",
			setup: func(w *world.World, p *world.Player, item *world.Item) uint32 {
				p.OpenTrade(item.ID)
				return item.ID
			},
			expectedError: auctionerrors.ErrItemInTrade,
		},
	}

	for i, tc := range tests {
		tc, i := tc, i
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			w := world.NewWorld()
			registry := NewRegistry()
			p, item := newPlayerWithItem(w, uint32(100+i), fmt.Sprintf("player%d", i))

			itemID := tc.setup(w, p, item)
			err := registry.Tag(p, itemID)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				require.Empty(t, registry.Tagged(p.ID))
			} else {
				require.NoError(t, err)
				require.Equal(t, []uint32{itemID}, registry.Tagged(p.ID))
			}
		})
	}
}

// Tagging the same item twice must fail the second call
func TestRegistry_Tag_Duplicate(t *testing.T) {
	t.Parallel()

	w := world.NewWorld()
	registry := NewRegistry()
	p, item := newPlayerWithItem(w, 1, "dup")

	require.NoError(t, registry.Tag(p, item.ID))
	err := registry.Tag(p, item.ID)
	require.ErrorIs(t, err, auctionerrors.ErrAlreadyTagged)
	require.Len(t, registry.Tagged(p.ID), 1)
}

// An item id may appear in at most one player's tagged set at a time
func TestRegistry_Tag_CrossPlayerUniqueness(t *testing.T) {
	t.Parallel()

	w := world.NewWorld()
	registry := NewRegistry()
	p1, item := newPlayerWithItem(w, 1, "first")
	p2 := w.AddPlayer(2, "second")

	// Same physical item visible to both players, as after an untracked handover.
	twin := &world.Item{ID: item.ID, Wcid: item.Wcid, Name: item.Name, StackSize: 1, MaxStackSize: 1}
	require.NoError(t, p2.AddItem(twin))

	require.NoError(t, registry.Tag(p1, item.ID))
	err := registry.Tag(p2, item.ID)
	require.ErrorIs(t, err, auctionerrors.ErrAlreadyTagged)
}

func TestRegistry_UntagAndClear(t *testing.T) {
	t.Parallel()

	w := world.NewWorld()
	registry := NewRegistry()
	p, item := newPlayerWithItem(w, 1, "owner")
	second := w.NewItem(302, "Shield", 1, 1)
	require.NoError(t, p.AddItem(second))

	require.NoError(t, registry.Tag(p, item.ID))
	require.NoError(t, registry.Tag(p, second.ID))
	require.Equal(t, []uint32{item.ID, second.ID}, registry.Tagged(p.ID))

	require.True(t, registry.Untag(p.ID, item.ID))
	require.False(t, registry.Untag(p.ID, item.ID))
	require.Equal(t, []uint32{second.ID}, registry.Tagged(p.ID))

	registry.Clear(p.ID)
	require.Empty(t, registry.Tagged(p.ID))
}

// A tagged id that no longer resolves is marked in the report instead of
// failing the whole listing
func TestRegistry_Report_MissingItem(t *testing.T) {
	t.Parallel()

	w := world.NewWorld()
	registry := NewRegistry()
	p, item := newPlayerWithItem(w, 1, "reporter")

	require.NoError(t, registry.Tag(p, item.ID))

	// Item disappears from the inventory after tagging.
	_, err := p.Detach(item.ID, 0)
	require.NoError(t, err)

	report := registry.Report(p)
	require.Contains(t, report, "unable to find item")

	registry.Clear(p.ID)
	require.Equal(t, "You don't have any tagged items", registry.Report(p))
}

// Concurrent tags for different players must never lose an update
func TestRegistry_ConcurrentTagging(t *testing.T) {
	t.Parallel()

	const players = 32
	w := world.NewWorld()
	registry := NewRegistry()

	type pair struct {
		p    *world.Player
		item *world.Item
	}
	pairs := make([]pair, players)
	for i := range pairs {
		p, item := newPlayerWithItem(w, uint32(i+1), fmt.Sprintf("p%d", i))
		pairs[i] = pair{p: p, item: item}
	}

	var wg sync.WaitGroup
	errs := make(chan error, players)
	for _, pr := range pairs {
		wg.Add(1)
		go func(pr pair) {
			defer wg.Done()
			errs <- registry.Tag(pr.p, pr.item.ID)
		}(pr)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	for _, pr := range pairs {
		require.Equal(t, []uint32{pr.item.ID}, registry.Tagged(pr.p.ID))
	}
}
