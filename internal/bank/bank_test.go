package bank

import (
	"testing"

	"github.com/stretchr/testify/require"

	"auction-house/internal/world"
)

func TestDepositAndWithdraw(t *testing.T) {
	t.Parallel()

	m := NewManager()
	w := world.NewWorld()

	coins := w.NewItem(273, "Pyreal", 120, 25000)
	coins.BidOwnerID = 1002 // stale bid stamp gets replaced by the bank's
	require.True(t, m.Deposit(1002, coins))
	require.Equal(t, uint32(1002), coins.BankID)
	require.Zero(t, coins.BidOwnerID)
	require.True(t, m.Holds(1002, coins.ID))

	got, ok := m.Withdraw(1002, coins.ID)
	require.True(t, ok)
	require.False(t, got.Stamped())
	require.False(t, m.Holds(1002, coins.ID))
}

func TestWithdraw_WrongOwner(t *testing.T) {
	t.Parallel()

	m := NewManager()
	w := world.NewWorld()

	coins := w.NewItem(273, "Pyreal", 120, 25000)
	require.True(t, m.Deposit(1002, coins))

	_, ok := m.Withdraw(1003, coins.ID)
	require.False(t, ok)
	require.True(t, m.Holds(1002, coins.ID), "a failed withdrawal leaves the item parked")
}

func TestItemsFor_OnlyOwnHoldings(t *testing.T) {
	t.Parallel()

	m := NewManager()
	w := world.NewWorld()

	mine := w.NewItem(273, "Pyreal", 120, 25000)
	require.True(t, m.Deposit(1002, mine))
	theirs := w.NewItem(273, "Pyreal", 80, 25000)
	require.True(t, m.Deposit(1003, theirs))

	held := m.ItemsFor(1002)
	require.Len(t, held, 1)
	require.Equal(t, mine.ID, held[0].ID)

	require.Empty(t, m.ItemsFor(9999))
	require.False(t, m.Deposit(1002, nil), "nil deposit is refused")
}
