package auction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/world"
)

func TestCancelListing(t *testing.T) {
	t.Parallel()

	f := newSQLiteFixture(t)
	listing := listForSale(t, f)

	require.NoError(t, f.svc.CancelListing(f.seller, listing.ListingID))

	got, err := f.svc.Listing(listing.ListingID)
	require.NoError(t, err)
	require.Equal(t, model.StatusCancelled, got.Status)

	// Containers emptied, the listed item back with the seller by mail.
	require.Zero(t, f.registry.Items().Count())
	require.Zero(t, f.registry.Listings().Count())
	require.Equal(t, 1, f.mail.Collect(f.seller))
	require.Equal(t, 1, f.seller.InventoryCount())
}

func TestCancelListing_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(t *testing.T, f *fixture) (caller *world.Player, listingID uint32)
		wantErr error
	}{
		{
			name: "unknown_listing",
			setup: func(t *testing.T, f *fixture) (*world.Player, uint32) {
				return f.seller, 9999
			},
			wantErr: auctionerrors.ErrListingNotFound,
		},
		{
			name: "not_the_seller",
			setup: func(t *testing.T, f *fixture) (*world.Player, uint32) {
				listing := listForSale(t, f)
				return f.bidder, listing.ListingID
			},
			wantErr: auctionerrors.ErrNotSeller,
		},
		{
			name: "already_cancelled",
			setup: func(t *testing.T, f *fixture) (*world.Player, uint32) {
				listing := listForSale(t, f)
				require.NoError(t, f.svc.CancelListing(f.seller, listing.ListingID))
				return f.seller, listing.ListingID
			},
			wantErr: auctionerrors.ErrListingNotActive,
		},
		{
			name: "standing_bid",
			setup: func(t *testing.T, f *fixture) (*world.Player, uint32) {
				listing := listForSale(t, f)
				giveCoins(t, f, f.bidder, 500)
				require.NoError(t, f.svc.PlaceBid(f.bidder, listing.ListingID, 150))
				return f.seller, listing.ListingID
			},
			wantErr: auctionerrors.ErrListingHasBids,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newSQLiteFixture(t)
			caller, listingID := tc.setup(t, f)
			require.ErrorIs(t, f.svc.CancelListing(caller, listingID), tc.wantErr)
		})
	}
}

// An expired listing with a standing bid settles as sold: items to the
// winner, proceeds to the seller, both off-line.
func TestCompleteExpiredListings_Sold(t *testing.T) {
	t.Parallel()

	f := newSQLiteFixture(t)
	listing := listForSale(t, f)
	giveCoins(t, f, f.bidder, 500)
	require.NoError(t, f.svc.PlaceBid(f.bidder, listing.ListingID, 150))

	f.world.Clock = func() time.Time { return listing.EndTime.Add(time.Minute) }

	closed, err := f.svc.CompleteExpiredListings()
	require.NoError(t, err)
	require.Equal(t, 1, closed)

	got, err := f.svc.Listing(listing.ListingID)
	require.NoError(t, err)
	require.Equal(t, model.StatusSold, got.Status)

	require.Zero(t, f.registry.Items().Count())
	require.Zero(t, f.registry.Listings().Count())

	// The winner collects the sword, the seller collects the currency.
	require.Equal(t, 1, f.mail.Collect(f.bidder))
	require.NotNil(t, findByWcid(f.bidder, 300))
	require.Equal(t, 1, f.mail.Collect(f.seller))
	require.Equal(t, 150, f.seller.Holdings(273))

	// The sweep is idempotent, a settled listing is never swept twice.
	closed, err = f.svc.CompleteExpiredListings()
	require.NoError(t, err)
	require.Zero(t, closed)
}

// An expired listing without bids releases its items back to the seller.
func TestCompleteExpiredListings_NoBids(t *testing.T) {
	t.Parallel()

	f := newSQLiteFixture(t)
	listing := listForSale(t, f)

	f.world.Clock = func() time.Time { return listing.EndTime.Add(time.Minute) }

	closed, err := f.svc.CompleteExpiredListings()
	require.NoError(t, err)
	require.Equal(t, 1, closed)

	got, err := f.svc.Listing(listing.ListingID)
	require.NoError(t, err)
	require.Equal(t, model.StatusExpired, got.Status)

	require.Equal(t, 1, f.mail.Collect(f.seller))
	require.NotNil(t, findByWcid(f.seller, 300))
	require.Zero(t, f.registry.Items().Count())
	require.Zero(t, f.registry.Listings().Count())
}

func TestCompleteExpiredListings_LeavesRunningListings(t *testing.T) {
	t.Parallel()

	f := newSQLiteFixture(t)
	listing := listForSale(t, f)

	closed, err := f.svc.CompleteExpiredListings()
	require.NoError(t, err)
	require.Zero(t, closed)

	got, err := f.svc.Listing(listing.ListingID)
	require.NoError(t, err)
	require.Equal(t, model.StatusActive, got.Status)
	require.Equal(t, 1, f.registry.Items().Count())
}

func findByWcid(p *world.Player, wcid uint32) *world.Item {
	for _, item := range p.ItemsOfType(wcid) {
		return item
	}
	return nil
}
