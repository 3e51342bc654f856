package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	auction "auction-house/internal/auctionService"
	"auction-house/internal/bank"
	"auction-house/internal/container"
	"auction-house/internal/mail"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	"auction-house/internal/tags"
	"auction-house/internal/transfer"
	"auction-house/internal/world"
)

// TestEnv is one fully wired auction house over an in-memory listing store.
type TestEnv struct {
	Router   *gin.Engine
	World    *world.World
	Service  *auction.AuctionService
	Registry *container.Registry
	Mail     *mail.Manager

	Seller *world.Player
	Bidder *world.Player
}

// SetupTestEnv wires the full stack the way main does, with a fresh
// in-memory database and two seeded characters.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, err := repository.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	w := world.NewWorld()
	w.RegisterCurrency(world.CurrencyDefinition{Wcid: 273, Name: "Pyreal", IconID: 9913})

	registry := container.NewRegistry(func(listingID uint32) (uint32, bool) {
		listing, err := repo.GetListing(listingID)
		if err != nil {
			return 0, false
		}
		return listing.SellerID, true
	})

	mailbox := mail.NewManager(w.Now)
	svc := auction.NewAuctionService(auction.Deps{
		DB:       repo,
		World:    w,
		Transfer: transfer.NewService(),
		Tags:     tags.NewRegistry(),
		Registry: registry,
		Mail:     mailbox,
		Bank:     bank.NewManager(),
	})

	env := &TestEnv{
		Router:   server.SetupRouter(svc, w),
		World:    w,
		Service:  svc,
		Registry: registry,
		Mail:     mailbox,
		Seller:   w.AddPlayer(1001, "Alice"),
		Bidder:   w.AddPlayer(1002, "Bob"),
	}
	return env
}

// GiveItem mints an item into a player's inventory and returns it.
func (e *TestEnv) GiveItem(t *testing.T, p *world.Player, wcid uint32, name string, stackSize, maxStackSize int) *world.Item {
	t.Helper()
	item := e.World.NewItem(wcid, name, stackSize, maxStackSize)
	require.NoError(t, p.AddItem(item))
	return item
}

// ExecuteRequestAndParse executes an HTTP request on the router and parses
// the response envelope.
func (e *TestEnv) ExecuteRequestAndParse(t *testing.T, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp, w
}

// DataObject extracts the data field of a response as an object.
func DataObject(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "expected an object in the data field, got %T", resp["data"])
	return data
}
