package network

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/world"
)

// stubAuction scripts the workflow outcomes the dispatcher translates.
type stubAuction struct {
	sellListing model.Listing
	sellErr     error
	sellReq     model.SellRequest

	bidErr       error
	bidListingID uint32
	bidAmount    uint

	listings    []model.Listing
	listingsErr error
}

func (s *stubAuction) PlaceSell(p *world.Player, req model.SellRequest) (model.Listing, error) {
	s.sellReq = req
	return s.sellListing, s.sellErr
}

func (s *stubAuction) PlaceBid(p *world.Player, listingID uint32, amount uint) error {
	s.bidListingID = listingID
	s.bidAmount = amount
	return s.bidErr
}

func (s *stubAuction) ActiveListings() ([]model.Listing, error) {
	return s.listings, s.listingsErr
}

func testSession(conn *bytes.Buffer) *Session {
	w := world.NewWorld()
	return &Session{AccountID: 7, Player: w.AddPlayer(1001, "Alice"), Conn: conn}
}

func decodeReply[T any](t *testing.T, conn *bytes.Buffer) Response[T] {
	t.Helper()
	body, err := ReadFrame(conn)
	require.NoError(t, err)
	var resp Response[T]
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestHandleCreateSellOrder_Success(t *testing.T) {
	t.Parallel()

	stub := &stubAuction{sellListing: model.Listing{ListingID: 7, Status: model.StatusActive}}
	var conn bytes.Buffer
	sess := testSession(&conn)

	frame := []byte(`{"accountId": 7, "data": {"itemId": 42, "startPrice": 100,
		"numberOfStacks": 1, "stackSize": 1, "currencyWcid": 273, "hoursDuration": 24}}`)
	require.NoError(t, NewDispatcher(stub).HandleCreateSellOrder(sess, frame))

	// The wire payload maps field for field onto the workflow request.
	require.Equal(t, model.SellRequest{
		ItemID:         42,
		StartPrice:     100,
		NumberOfStacks: 1,
		StackSize:      1,
		CurrencyWcid:   273,
		HoursDuration:  24,
	}, stub.sellReq)

	resp := decodeReply[model.Listing](t, &conn)
	require.True(t, resp.Success)
	require.Zero(t, resp.ErrorCode)
	require.Equal(t, uint32(7), resp.Data.ListingID)
}

func TestHandleCreateSellOrder_ParseFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		frame []byte
	}{
		{name: "malformed_json", frame: []byte(`{"accountId": `)},
		{name: "missing_data", frame: []byte(`{"accountId": 7}`)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var conn bytes.Buffer
			sess := testSession(&conn)
			require.NoError(t, NewDispatcher(&stubAuction{}).HandleCreateSellOrder(sess, tc.frame))

			resp := decodeReply[model.Listing](t, &conn)
			require.False(t, resp.Success)
			require.Equal(t, int(auctionerrors.CodeParseFailure), resp.ErrorCode)
		})
	}
}

// Domain failures keep their stable code on the wire; unexpected errors are
// flattened to the fixed internal code with no detail attached.
func TestHandleCreateSellOrder_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		sellErr     error
		wantCode    int
		wantMessage string
	}{
		{
			name:     "domain_failure",
			sellErr:  fmt.Errorf("auction: %w - item 42", auctionerrors.ErrItemNotFound),
			wantCode: int(auctionerrors.CodeItemNotFound),
		},
		{
			name:        "unexpected_failure",
			sellErr:     errors.New("pq: connection refused"),
			wantCode:    int(auctionerrors.CodeUnknown),
			wantMessage: "Internal Server Error!",
		},
	}

	frame := []byte(`{"accountId": 7, "data": {"itemId": 42}}`)
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var conn bytes.Buffer
			sess := testSession(&conn)
			dispatcher := NewDispatcher(&stubAuction{sellErr: tc.sellErr})
			require.NoError(t, dispatcher.HandleCreateSellOrder(sess, frame))

			resp := decodeReply[model.Listing](t, &conn)
			require.False(t, resp.Success)
			require.Equal(t, tc.wantCode, resp.ErrorCode)
			if tc.wantMessage != "" {
				require.Equal(t, tc.wantMessage, resp.ErrorMessage)
			}
			require.NotContains(t, resp.ErrorMessage, "pq:", "internal detail must not leak")
		})
	}
}

func TestHandlePlaceBid(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		stub := &stubAuction{}
		var conn bytes.Buffer
		sess := testSession(&conn)

		frame := []byte(`{"accountId": 7, "data": {"listingId": 9, "bidAmount": 150}}`)
		require.NoError(t, NewDispatcher(stub).HandlePlaceBid(sess, frame))
		require.Equal(t, uint32(9), stub.bidListingID)
		require.Equal(t, uint(150), stub.bidAmount)

		resp := decodeReply[model.Listing](t, &conn)
		require.True(t, resp.Success)
	})

	t.Run("domain_failure", func(t *testing.T) {
		t.Parallel()

		stub := &stubAuction{bidErr: fmt.Errorf("auction: %w", auctionerrors.ErrBidTooLow)}
		var conn bytes.Buffer
		sess := testSession(&conn)

		frame := []byte(`{"accountId": 7, "data": {"listingId": 9, "bidAmount": 10}}`)
		require.NoError(t, NewDispatcher(stub).HandlePlaceBid(sess, frame))

		resp := decodeReply[model.Listing](t, &conn)
		require.False(t, resp.Success)
		require.Equal(t, int(auctionerrors.CodeBidTooLow), resp.ErrorCode)
	})
}

func TestHandleGetListings(t *testing.T) {
	t.Parallel()

	stub := &stubAuction{listings: []model.Listing{
		{ListingID: 1, Status: model.StatusActive},
		{ListingID: 2, Status: model.StatusActive},
	}}
	var conn bytes.Buffer
	sess := testSession(&conn)

	require.NoError(t, NewDispatcher(stub).HandleGetListings(sess))

	resp := decodeReply[[]model.Listing](t, &conn)
	require.True(t, resp.Success)
	require.Len(t, *resp.Data, 2)
}
