package network

import (
	"errors"
	"fmt"
	"io"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/world"
	"auction-house/utils"
)

// CreateSellOrder is the wire payload of a sell request.
type CreateSellOrder struct {
	ItemID         uint32 `json:"itemId"`
	StartPrice     uint   `json:"startPrice"`
	BuyoutPrice    uint   `json:"buyoutPrice"`
	NumberOfStacks int    `json:"numberOfStacks"`
	StackSize      int    `json:"stackSize"`
	CurrencyWcid   uint32 `json:"currencyWcid"`
	HoursDuration  int    `json:"hoursDuration"`
}

// PlaceBidOrder is the wire payload of a bid request.
type PlaceBidOrder struct {
	ListingID uint32 `json:"listingId"`
	BidAmount uint   `json:"bidAmount"`
}

// AuctionAPI is the slice of the auction service the message handlers
// drive.
type AuctionAPI interface {
	PlaceSell(p *world.Player, req model.SellRequest) (model.Listing, error)
	PlaceBid(p *world.Player, listingID uint32, amount uint) error
	ActiveListings() ([]model.Listing, error)
}

// Session is one connected client as the message dispatch sees it.
type Session struct {
	AccountID uint32
	Player    *world.Player
	Conn      io.Writer
}

// Dispatcher decodes inbound game-message frames into workflow inputs and
// frames workflow outputs back out.
type Dispatcher struct {
	svc AuctionAPI
}

func NewDispatcher(svc AuctionAPI) *Dispatcher {
	return &Dispatcher{svc: svc}
}

// HandleCreateSellOrder serves one sell-order frame. Domain failures go
// back with their stable codes; anything unexpected is logged in full and
// surfaces as a fixed internal error with no detail attached.
func (d *Dispatcher) HandleCreateSellOrder(sess *Session, frame []byte) error {
	req, err := DecodeRequest[CreateSellOrder](frame)
	if err != nil || req.Data == nil {
		utils.Warn("failed to parse sell order request", map[string]any{"account_id": sess.AccountID})
		return EncodeResponse(sess.Conn, Fail[model.Listing](
			int(auctionerrors.CodeParseFailure), auctionerrors.ErrParseFailure.Error()))
	}

	listing, err := d.svc.PlaceSell(sess.Player, model.SellRequest{
		ItemID:         req.Data.ItemID,
		StartPrice:     req.Data.StartPrice,
		BuyoutPrice:    req.Data.BuyoutPrice,
		NumberOfStacks: req.Data.NumberOfStacks,
		StackSize:      req.Data.StackSize,
		CurrencyWcid:   req.Data.CurrencyWcid,
		HoursDuration:  req.Data.HoursDuration,
	})
	if err != nil {
		return EncodeResponse(sess.Conn, failureResponse[model.Listing](sess, "sell order", err))
	}
	return EncodeResponse(sess.Conn, OK(&listing))
}

// HandlePlaceBid serves one bid frame.
func (d *Dispatcher) HandlePlaceBid(sess *Session, frame []byte) error {
	req, err := DecodeRequest[PlaceBidOrder](frame)
	if err != nil || req.Data == nil {
		utils.Warn("failed to parse bid request", map[string]any{"account_id": sess.AccountID})
		return EncodeResponse(sess.Conn, Fail[model.Listing](
			int(auctionerrors.CodeParseFailure), auctionerrors.ErrParseFailure.Error()))
	}

	if err := d.svc.PlaceBid(sess.Player, req.Data.ListingID, req.Data.BidAmount); err != nil {
		return EncodeResponse(sess.Conn, failureResponse[model.Listing](sess, "bid", err))
	}
	return EncodeResponse(sess.Conn, Response[model.Listing]{Success: true})
}

// HandleGetListings serves a listings query frame.
func (d *Dispatcher) HandleGetListings(sess *Session) error {
	listings, err := d.svc.ActiveListings()
	if err != nil {
		return EncodeResponse(sess.Conn, failureResponse[[]model.Listing](sess, "get listings", err))
	}
	return EncodeResponse(sess.Conn, OK(&listings))
}

func failureResponse[T any](sess *Session, op string, err error) Response[T] {
	var failure *auctionerrors.Failure
	if errors.As(err, &failure) {
		utils.Error(fmt.Sprintf("%s failed", op), map[string]any{
			"account_id": sess.AccountID,
			"error_code": int(failure.Code),
			"error":      err.Error(),
		})
		return Fail[T](int(failure.Code), err.Error())
	}

	utils.Error(fmt.Sprintf("%s failed unexpectedly", op), map[string]any{
		"account_id": sess.AccountID,
		"error":      err.Error(),
	})
	return Fail[T](int(auctionerrors.CodeUnknown), "Internal Server Error!")
}
