package world

import "fmt"

// Item is a physical world object: a stack of something, possibly a
// container holding nested items. While an item sits in a shared container
// exactly one of ListingID, BidOwnerID or BankID is non-zero; an item with
// all three zero must not reside in a shared container. BidListingID records
// which listing a piece of bid currency backs and is not an ownership stamp.
type Item struct {
	ID            uint32
	Wcid          uint32
	Name          string
	IconID        uint32
	Value         int
	StackSize     int
	MaxStackSize  int
	Attuned       bool
	LootGenerated bool

	ListingID    uint32
	BidOwnerID   uint32
	BankID       uint32
	BidListingID uint32

	Contents []*Item
}

// ContainsAttuned reports whether the item is attuned or transitively
// contains an attuned item.
func (i *Item) ContainsAttuned() bool {
	if i.Attuned {
		return true
	}
	for _, c := range i.Contents {
		if c.ContainsAttuned() {
			return true
		}
	}
	return false
}

// Stamped reports whether the item carries exactly one ownership stamp.
func (i *Item) Stamped() bool {
	stamps := 0
	if i.ListingID != 0 {
		stamps++
	}
	if i.BidOwnerID != 0 {
		stamps++
	}
	if i.BankID != 0 {
		stamps++
	}
	return stamps == 1
}

// ClearAuctionStamps removes all shared-container metadata, making the item
// safe to hand back to a player.
func (i *Item) ClearAuctionStamps() {
	i.ListingID = 0
	i.BidOwnerID = 0
	i.BankID = 0
	i.BidListingID = 0
}

// Info renders the one-line item description used in tag reports and
// auction chat messages.
func (i *Item) Info() string {
	return fmt.Sprintf("%s, Value = %d, Count = %d", i.Name, i.Value, i.StackSize)
}
