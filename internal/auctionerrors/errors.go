package auctionerrors

import "errors"

// Code is the stable numeric identifier a failure carries onto the wire.
// Codes are part of the client contract and must not be renumbered.
type Code int

const (
	CodeUnknown Code = 1000 + iota
	CodeParseFailure
	CodeSellValidation
	CodeDurationExceeded
	CodeAlreadyTagged
	CodeItemNotFound
	CodeItemAttuned
	CodeItemInTrade
	CodePlayerBusy
	CodeTransferFailed
	CodeLootGeneratedStackSplit
	CodeInsufficientStack
	CodeContainerRejected
	CodeListingNotFound
	CodeListingNotActive
	CodeSelfBid
	CodeDuplicateBid
	CodeBidTooLow
	CodeNoCurrency
	CodeListingExpired
	CodeBelowStartPrice
	CodeInsufficientFunds
	CodeInsufficientBidItems
	CodeNotSeller
	CodeListingHasBids
)

// Failure is a domain failure at the auction boundary. It is caught at the
// workflow boundary, logged, and translated into a typed error response;
// anything that is not a Failure surfaces as CodeUnknown.
type Failure struct {
	Code    Code
	Message string
}

func (f *Failure) Error() string { return f.Message }

// Is matches two failures by code, so sentinels below work with errors.Is
// even after wrapping with fmt.Errorf("...: %w - detail", sentinel).
func (f *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	return ok && t.Code == f.Code
}

// Validation and tagging failures
var (
	ErrParseFailure     = &Failure{CodeParseFailure, "failed to parse auction request"}
	ErrSellValidation   = &Failure{CodeSellValidation, "sell request failed validation"}
	ErrDurationExceeded = &Failure{CodeDurationExceeded, "an auction end time can not exceed 168 hours (a week)"}
	ErrAlreadyTagged    = &Failure{CodeAlreadyTagged, "item is already tagged"}
	ErrItemNotFound     = &Failure{CodeItemNotFound, "item was not found on your person"}
	ErrItemAttuned      = &Failure{CodeItemAttuned, "item is attuned or bonded"}
	ErrItemInTrade      = &Failure{CodeItemInTrade, "item is currently being traded"}
)

// Transfer failures
var (
	ErrPlayerBusy     = &Failure{CodePlayerBusy, "the item cannot be transferred, you are too busy"}
	ErrTransferFailed = &Failure{CodeTransferFailed, "failed to remove item from its location"}
)

// Sell workflow failures
var (
	ErrLootGeneratedStackSplit = &Failure{CodeLootGeneratedStackSplit, "loot-generated items may only be sold as a single, whole stack"}
	ErrInsufficientStack       = &Failure{CodeInsufficientStack, "requested stacks exceed the item's actual stack size"}
	ErrContainerRejected       = &Failure{CodeContainerRejected, "shared container refused the item"}
)

// Bid workflow failures
var (
	ErrListingNotFound      = &Failure{CodeListingNotFound, "listing not found"}
	ErrListingNotActive     = &Failure{CodeListingNotActive, "listing is no longer active"}
	ErrSelfBid              = &Failure{CodeSelfBid, "you cannot bid on your own listing"}
	ErrDuplicateBid         = &Failure{CodeDuplicateBid, "you are already the highest bidder"}
	ErrBidTooLow            = &Failure{CodeBidTooLow, "bid amount is below the current highest bid"}
	ErrNoCurrency           = &Failure{CodeNoCurrency, "listing has no currency type configured"}
	ErrListingExpired       = &Failure{CodeListingExpired, "listing has already ended"}
	ErrBelowStartPrice      = &Failure{CodeBelowStartPrice, "bid amount is below the start price"}
	ErrInsufficientFunds    = &Failure{CodeInsufficientFunds, "you do not hold enough currency to cover that bid"}
	ErrInsufficientBidItems = &Failure{CodeInsufficientBidItems, "ran out of currency items before the bid amount was reached"}
)

// Cancellation failures
var (
	ErrNotSeller      = &Failure{CodeNotSeller, "only the seller may cancel a listing"}
	ErrListingHasBids = &Failure{CodeListingHasBids, "a listing with a standing bid cannot be cancelled"}
)

// CodeOf extracts the stable code from an error chain. Errors that do not
// carry a Failure map to CodeUnknown so no internal detail leaks.
func CodeOf(err error) Code {
	var f *Failure
	if errors.As(err, &f) {
		return f.Code
	}
	return CodeUnknown
}
