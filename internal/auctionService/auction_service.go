package auction

import (
	"fmt"
	"sync"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/bank"
	"auction-house/internal/container"
	"auction-house/internal/mail"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/internal/tags"
	"auction-house/internal/transfer"
	"auction-house/internal/world"
)

// Wcid of the parchment used as a listing receipt.
const listingReceiptWcid = 365

// Deps collects the collaborators one AuctionService instance works
// against. All of them are process-wide singletons.
type Deps struct {
	DB       repository.AuctionDB
	World    *world.World
	Transfer *transfer.Service
	Tags     *tags.Registry
	Registry *container.Registry
	Mail     *mail.Manager
	Bank     *bank.Manager
}

// AuctionService orchestrates the sell and bid workflows against the
// shared containers, the tag registry and the listing store.
type AuctionService struct {
	db       repository.AuctionDB
	world    *world.World
	transfer *transfer.Service
	tags     *tags.Registry
	listings *container.SharedContainer
	items    *container.SharedContainer
	mail     *mail.Manager
	bank     *bank.Manager

	mu           sync.Mutex
	listingLocks map[uint32]*sync.Mutex
}

// NewAuctionService creates a new AuctionService instance.
func NewAuctionService(deps Deps) *AuctionService {
	return &AuctionService{
		db:       deps.DB,
		world:    deps.World,
		transfer: deps.Transfer,
		tags:     deps.Tags,
		listings: deps.Registry.Listings(),
		items:    deps.Registry.Items(),
		mail:     deps.Mail,
		bank:     deps.Bank,

		listingLocks: make(map[uint32]*sync.Mutex),
	}
}

// lockListing serializes every workflow that reads one listing's state and
// then mutates it: bids, cancellation and the expiry sweep. The snapshot a
// workflow validates against stays current until its writes land, so two
// interleaved bids can never both pass validation off the same snapshot.
// Returns the unlock function.
func (s *AuctionService) lockListing(listingID uint32) func() {
	s.mu.Lock()
	l, ok := s.listingLocks[listingID]
	if !ok {
		l = &sync.Mutex{}
		s.listingLocks[listingID] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

// forgetListing drops a closed listing's lock entry. Only call once the
// listing is terminal: any workflow still waiting on the old lock re-reads
// the listing and rejects on status.
func (s *AuctionService) forgetListing(listingID uint32) {
	s.mu.Lock()
	delete(s.listingLocks, listingID)
	s.mu.Unlock()
}

// Listing returns one listing by id.
func (s *AuctionService) Listing(listingID uint32) (model.Listing, error) {
	return s.db.GetListing(listingID)
}

// ActiveListings returns every listing currently accepting bids.
func (s *AuctionService) ActiveListings() ([]model.Listing, error) {
	return s.db.ActiveListings()
}

// ListingsBySeller returns every listing a seller has placed.
func (s *AuctionService) ListingsBySeller(sellerID uint32) ([]model.Listing, error) {
	return s.db.ListingsBySeller(sellerID)
}

// TagItem marks an item as a sell candidate and tells the player about it.
func (s *AuctionService) TagItem(p *world.Player, itemID uint32) error {
	if err := s.tags.Tag(p, itemID); err != nil {
		return err
	}
	s.world.Notify(p.ID, fmt.Sprintf("Added tagged listing item %s", taggedItemLabel(p, itemID)), world.ChannelSystem)
	return nil
}

// taggedItemLabel describes a just-tagged item for the confirmation message.
// A concurrent transfer can detach the item between tagging and this lookup,
// in which case the message falls back to the bare id.
func taggedItemLabel(p *world.Player, itemID uint32) string {
	if item := p.Find(itemID, world.ScopeEverywhere); item != nil {
		return item.Info()
	}
	return fmt.Sprintf("with Id = %d", itemID)
}

// UntagItem removes an item from the player's tagged list.
func (s *AuctionService) UntagItem(p *world.Player, itemID uint32) error {
	if !s.tags.Untag(p.ID, itemID) {
		return fmt.Errorf("auction: %w - item %d is not in your tagged list", auctionerrors.ErrItemNotFound, itemID)
	}
	s.world.Notify(p.ID, fmt.Sprintf("You have removed item with Id = %d from your tagged list", itemID), world.ChannelSystem)
	return nil
}

// ListTags renders the player's tagged list report.
func (s *AuctionService) ListTags(p *world.Player) string {
	return s.tags.Report(p)
}

// ClearTags empties the player's tagged list.
func (s *AuctionService) ClearTags(p *world.Player) {
	s.tags.Clear(p.ID)
	s.world.Notify(p.ID, "You have cleared your tagged list", world.ChannelSystem)
}
