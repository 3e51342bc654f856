package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
)

func openTestRepo(t *testing.T) *SQLiteRepo {
	t.Helper()
	repo, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func testListing(sellerID uint32, start, end time.Time) model.Listing {
	return model.Listing{
		SellerID:       sellerID,
		SellerName:     "Alice",
		CurrencyWcid:   273,
		CurrencyName:   "Pyreal",
		StartPrice:     100,
		BuyoutPrice:    500,
		StackSize:      1,
		NumberOfStacks: 1,
		StartTime:      start,
		EndTime:        end,
		Status:         model.StatusActive,
	}
}

func TestSQLiteRepo_PlaceSellOrderRoundTrip(t *testing.T) {
	t.Parallel()

	repo := openTestRepo(t)
	start := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	var placed model.Listing
	err := repo.ExecuteInTransaction(func(tx AuctionTx) error {
		var err error
		placed, err = tx.PlaceSellOrder(testListing(1001, start, end))
		if err != nil {
			return err
		}
		return tx.PlaceListingItem(5001, placed.ListingID, 1)
	})
	require.NoError(t, err)
	require.NotZero(t, placed.ListingID)

	got, err := repo.GetListing(placed.ListingID)
	require.NoError(t, err)
	require.Equal(t, uint32(1001), got.SellerID)
	require.Equal(t, "Alice", got.SellerName)
	require.Equal(t, uint(100), got.StartPrice)
	require.Equal(t, model.StatusActive, got.Status)
	require.True(t, got.StartTime.Equal(start))
	require.True(t, got.EndTime.Equal(end))
	require.Zero(t, got.HighestBidderID)

	items, err := repo.ListingItems(placed.ListingID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, uint32(5001), items[0].ItemID)
	require.Equal(t, placed.ListingID, items[0].ListingID)
	require.Equal(t, 1, items[0].StackSize)
}

// A failing transaction leaves no rows behind, neither the listing nor its
// listing items.
func TestSQLiteRepo_TransactionRollback(t *testing.T) {
	t.Parallel()

	repo := openTestRepo(t)
	start := time.Now().UTC().Truncate(time.Second)
	boom := errors.New("workflow failed mid-flight")

	var listingID uint32
	err := repo.ExecuteInTransaction(func(tx AuctionTx) error {
		placed, err := tx.PlaceSellOrder(testListing(1001, start, start.Add(time.Hour)))
		if err != nil {
			return err
		}
		listingID = placed.ListingID
		if err := tx.PlaceListingItem(5001, listingID, 1); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = repo.GetListing(listingID)
	require.ErrorIs(t, err, auctionerrors.ErrListingNotFound)

	items, err := repo.ListingItems(listingID)
	require.NoError(t, err)
	require.Empty(t, items)

	active, err := repo.ActiveListings()
	require.NoError(t, err)
	require.Empty(t, active)
}

func TestSQLiteRepo_GetListing_NotFound(t *testing.T) {
	t.Parallel()

	repo := openTestRepo(t)
	_, err := repo.GetListing(42)
	require.ErrorIs(t, err, auctionerrors.ErrListingNotFound)
}

func TestSQLiteRepo_UpdateListingBid(t *testing.T) {
	t.Parallel()

	repo := openTestRepo(t)
	start := time.Now().UTC().Truncate(time.Second)

	var listingID uint32
	err := repo.ExecuteInTransaction(func(tx AuctionTx) error {
		placed, err := tx.PlaceSellOrder(testListing(1001, start, start.Add(time.Hour)))
		listingID = placed.ListingID
		return err
	})
	require.NoError(t, err)

	err = repo.ExecuteInTransaction(func(tx AuctionTx) error {
		return tx.UpdateListingBid(listingID, 1002, "Bob", 150)
	})
	require.NoError(t, err)

	got, err := repo.GetListing(listingID)
	require.NoError(t, err)
	require.Equal(t, uint32(1002), got.HighestBidderID)
	require.Equal(t, "Bob", got.HighestBidderName)
	require.Equal(t, uint(150), got.HighestBid)

	err = repo.ExecuteInTransaction(func(tx AuctionTx) error {
		return tx.UpdateListingBid(42, 1002, "Bob", 150)
	})
	require.ErrorIs(t, err, auctionerrors.ErrListingNotFound)
}

func TestSQLiteRepo_UpdateListingStatus(t *testing.T) {
	t.Parallel()

	repo := openTestRepo(t)
	start := time.Now().UTC().Truncate(time.Second)

	var listingID uint32
	err := repo.ExecuteInTransaction(func(tx AuctionTx) error {
		placed, err := tx.PlaceSellOrder(testListing(1001, start, start.Add(time.Hour)))
		listingID = placed.ListingID
		return err
	})
	require.NoError(t, err)

	err = repo.ExecuteInTransaction(func(tx AuctionTx) error {
		return tx.UpdateListingStatus(listingID, model.StatusCancelled)
	})
	require.NoError(t, err)

	got, err := repo.GetListing(listingID)
	require.NoError(t, err)
	require.Equal(t, model.StatusCancelled, got.Status)

	active, err := repo.ActiveListings()
	require.NoError(t, err)
	require.Empty(t, active)
}

func TestSQLiteRepo_ExpiredListings(t *testing.T) {
	t.Parallel()

	repo := openTestRepo(t)
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	place := func(end time.Time, status string) uint32 {
		var id uint32
		err := repo.ExecuteInTransaction(func(tx AuctionTx) error {
			l := testListing(1001, now.Add(-48*time.Hour), end)
			l.Status = status
			placed, err := tx.PlaceSellOrder(l)
			id = placed.ListingID
			return err
		})
		require.NoError(t, err)
		return id
	}

	pastActive := place(now.Add(-time.Hour), model.StatusActive)
	place(now.Add(time.Hour), model.StatusActive)   // still running
	place(now.Add(-time.Hour), model.StatusSold)    // already settled
	place(now.Add(-time.Hour), model.StatusExpired) // already swept

	expired, err := repo.ExpiredListings(now)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	require.Equal(t, pastActive, expired[0].ListingID)
}

func TestSQLiteRepo_ListingsBySeller(t *testing.T) {
	t.Parallel()

	repo := openTestRepo(t)
	now := time.Now().UTC().Truncate(time.Second)

	err := repo.ExecuteInTransaction(func(tx AuctionTx) error {
		for _, sellerID := range []uint32{1001, 1001, 1002} {
			l := testListing(sellerID, now, now.Add(time.Hour))
			if _, err := tx.PlaceSellOrder(l); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	mine, err := repo.ListingsBySeller(1001)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, l := range mine {
		require.Equal(t, uint32(1001), l.SellerID)
	}

	none, err := repo.ListingsBySeller(9999)
	require.NoError(t, err)
	require.Empty(t, none)
}
