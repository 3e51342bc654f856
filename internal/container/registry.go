package container

import "auction-house/internal/world"

// Container names, kept stable for logs and persistence.
const (
	ListingsContainerName = "AuctionListingsContainer"
	ItemsContainerName    = "AuctionItemsContainer"
)

// SellerLookup resolves the seller of a listing so the items container can
// show sellers their own listed goods.
type SellerLookup func(listingID uint32) (sellerID uint32, ok bool)

// Registry holds the two process-wide shared containers. All access to the
// listings and items containers goes through here; no other code path may
// mutate them directly.
type Registry struct {
	listings *SharedContainer
	items    *SharedContainer
}

// NewRegistry builds both singleton containers. The items container shows a
// viewer only items backing their own bid or their own listing.
func NewRegistry(sellerOf SellerLookup) *Registry {
	itemsVisible := func(item *world.Item, viewerID uint32) bool {
		if item.BidOwnerID != 0 && item.BidOwnerID == viewerID {
			return true
		}
		if item.ListingID != 0 && sellerOf != nil {
			if sellerID, ok := sellerOf(item.ListingID); ok && sellerID == viewerID {
				return true
			}
		}
		return false
	}
	return &Registry{
		listings: NewSharedContainer(ListingsContainerName, nil),
		items:    NewSharedContainer(ItemsContainerName, itemsVisible),
	}
}

func (r *Registry) Listings() *SharedContainer { return r.listings }
func (r *Registry) Items() *SharedContainer    { return r.items }

// AllowsPlayerMove gates gameplay-originated item moves such as stack
// merges: any operation whose source or destination root resolves to one of
// the shared containers is refused. Workflows bypass this by calling the
// containers directly.
func (r *Registry) AllowsPlayerMove(sourceRoot, destRoot any) bool {
	for _, c := range []*SharedContainer{r.listings, r.items} {
		if sourceRoot == any(c) || destRoot == any(c) {
			return false
		}
	}
	return true
}
