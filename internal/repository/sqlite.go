package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS listings (
	id                  INTEGER PRIMARY KEY AUTOINCREMENT,
	seller_id           INTEGER NOT NULL,
	seller_name         TEXT    NOT NULL,
	currency_wcid       INTEGER NOT NULL,
	currency_name       TEXT    NOT NULL,
	start_price         INTEGER NOT NULL,
	buyout_price        INTEGER NOT NULL,
	stack_size          INTEGER NOT NULL,
	number_of_stacks    INTEGER NOT NULL,
	start_time          INTEGER NOT NULL,
	end_time            INTEGER NOT NULL,
	status              TEXT    NOT NULL,
	highest_bidder_id   INTEGER NOT NULL DEFAULT 0,
	highest_bidder_name TEXT    NOT NULL DEFAULT '',
	highest_bid         INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS listing_items (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	listing_id INTEGER NOT NULL REFERENCES listings(id),
	item_id    INTEGER NOT NULL,
	stack_size INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_listings_status_end ON listings(status, end_time);
CREATE INDEX IF NOT EXISTS idx_listing_items_listing ON listing_items(listing_id);
`

// listingRow mirrors the listings table; times are stored as unix seconds.
type listingRow struct {
	ID                uint32 `db:"id"`
	SellerID          uint32 `db:"seller_id"`
	SellerName        string `db:"seller_name"`
	CurrencyWcid      uint32 `db:"currency_wcid"`
	CurrencyName      string `db:"currency_name"`
	StartPrice        uint   `db:"start_price"`
	BuyoutPrice       uint   `db:"buyout_price"`
	StackSize         int    `db:"stack_size"`
	NumberOfStacks    int    `db:"number_of_stacks"`
	StartTime         int64  `db:"start_time"`
	EndTime           int64  `db:"end_time"`
	Status            string `db:"status"`
	HighestBidderID   uint32 `db:"highest_bidder_id"`
	HighestBidderName string `db:"highest_bidder_name"`
	HighestBid        uint   `db:"highest_bid"`
}

func (r listingRow) toModel() model.Listing {
	return model.Listing{
		ListingID:         r.ID,
		SellerID:          r.SellerID,
		SellerName:        r.SellerName,
		CurrencyWcid:      r.CurrencyWcid,
		CurrencyName:      r.CurrencyName,
		StartPrice:        r.StartPrice,
		BuyoutPrice:       r.BuyoutPrice,
		StackSize:         r.StackSize,
		NumberOfStacks:    r.NumberOfStacks,
		StartTime:         time.Unix(r.StartTime, 0).UTC(),
		EndTime:           time.Unix(r.EndTime, 0).UTC(),
		Status:            r.Status,
		HighestBidderID:   r.HighestBidderID,
		HighestBidderName: r.HighestBidderName,
		HighestBid:        r.HighestBid,
	}
}

// SQLiteRepo implements AuctionDB on sqlx over modernc sqlite.
type SQLiteRepo struct {
	db *sqlx.DB
}

// OpenSQLite connects to the given DSN and bootstraps the schema.
func OpenSQLite(dsn string) (*SQLiteRepo, error) {
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("repository: open sqlite %q: %w", dsn, err)
	}
	// modernc sqlite rejects concurrent writers on one connection pool.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("repository: bootstrap schema: %w", err)
	}
	return &SQLiteRepo{db: db}, nil
}

func (r *SQLiteRepo) Close() error { return r.db.Close() }

// ExecuteInTransaction runs fn inside a single transaction, rolling back
// as a unit when fn fails.
func (r *SQLiteRepo) ExecuteInTransaction(fn func(tx AuctionTx) error) error {
	txx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("repository: begin transaction: %w", err)
	}
	if err := fn(&sqliteTx{tx: txx}); err != nil {
		_ = txx.Rollback()
		return err
	}
	if err := txx.Commit(); err != nil {
		return fmt.Errorf("repository: commit transaction: %w", err)
	}
	return nil
}

// GetListing loads one listing by id.
func (r *SQLiteRepo) GetListing(listingID uint32) (model.Listing, error) {
	var row listingRow
	err := r.db.Get(&row, `SELECT * FROM listings WHERE id = ?`, listingID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Listing{}, fmt.Errorf("repository: %w - listing %d", auctionerrors.ErrListingNotFound, listingID)
	}
	if err != nil {
		return model.Listing{}, fmt.Errorf("repository: get listing %d: %w", listingID, err)
	}
	return row.toModel(), nil
}

// ActiveListings returns every listing still accepting bids, oldest first.
func (r *SQLiteRepo) ActiveListings() ([]model.Listing, error) {
	return r.selectListings(`SELECT * FROM listings WHERE status = ? ORDER BY id`, model.StatusActive)
}

// ListingsBySeller returns every listing a seller has ever placed.
func (r *SQLiteRepo) ListingsBySeller(sellerID uint32) ([]model.Listing, error) {
	return r.selectListings(`SELECT * FROM listings WHERE seller_id = ? ORDER BY id`, sellerID)
}

// ExpiredListings returns active listings whose end time has passed.
func (r *SQLiteRepo) ExpiredListings(now time.Time) ([]model.Listing, error) {
	return r.selectListings(`SELECT * FROM listings WHERE status = ? AND end_time <= ? ORDER BY id`,
		model.StatusActive, now.Unix())
}

func (r *SQLiteRepo) selectListings(query string, args ...any) ([]model.Listing, error) {
	var rows []listingRow
	if err := r.db.Select(&rows, query, args...); err != nil {
		return nil, fmt.Errorf("repository: select listings: %w", err)
	}
	listings := make([]model.Listing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, row.toModel())
	}
	return listings, nil
}

// ListingItems returns the listing-item records of one sell order.
func (r *SQLiteRepo) ListingItems(listingID uint32) ([]model.ListingItem, error) {
	var items []model.ListingItem
	err := r.db.Select(&items, `SELECT id, listing_id AS listingid, item_id AS itemid, stack_size AS stacksize
		FROM listing_items WHERE listing_id = ? ORDER BY id`, listingID)
	if err != nil {
		return nil, fmt.Errorf("repository: listing items for %d: %w", listingID, err)
	}
	return items, nil
}

type sqliteTx struct {
	tx *sqlx.Tx
}

// PlaceSellOrder inserts the listing record and returns it with the
// persistence-assigned id.
func (t *sqliteTx) PlaceSellOrder(order model.Listing) (model.Listing, error) {
	res, err := t.tx.Exec(`INSERT INTO listings
		(seller_id, seller_name, currency_wcid, currency_name, start_price, buyout_price,
		 stack_size, number_of_stacks, start_time, end_time, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.SellerID, order.SellerName, order.CurrencyWcid, order.CurrencyName,
		order.StartPrice, order.BuyoutPrice, order.StackSize, order.NumberOfStacks,
		order.StartTime.Unix(), order.EndTime.Unix(), order.Status)
	if err != nil {
		return model.Listing{}, fmt.Errorf("repository: place sell order: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Listing{}, fmt.Errorf("repository: sell order id: %w", err)
	}
	order.ListingID = uint32(id)
	return order, nil
}

// PlaceListingItem records one physical item as part of a sell order.
func (t *sqliteTx) PlaceListingItem(itemID, listingID uint32, stackSize int) error {
	_, err := t.tx.Exec(`INSERT INTO listing_items (listing_id, item_id, stack_size) VALUES (?, ?, ?)`,
		listingID, itemID, stackSize)
	if err != nil {
		return fmt.Errorf("repository: place listing item %d for %d: %w", itemID, listingID, err)
	}
	return nil
}

// UpdateListingBid writes the highest-bidder fields of a listing.
func (t *sqliteTx) UpdateListingBid(listingID, bidderID uint32, bidderName string, amount uint) error {
	res, err := t.tx.Exec(`UPDATE listings SET highest_bidder_id = ?, highest_bidder_name = ?, highest_bid = ?
		WHERE id = ?`, bidderID, bidderName, amount, listingID)
	if err != nil {
		return fmt.Errorf("repository: update bid on listing %d: %w", listingID, err)
	}
	return requireRow(res, listingID)
}

// UpdateListingStatus moves a listing between lifecycle states.
func (t *sqliteTx) UpdateListingStatus(listingID uint32, status string) error {
	res, err := t.tx.Exec(`UPDATE listings SET status = ? WHERE id = ?`, status, listingID)
	if err != nil {
		return fmt.Errorf("repository: update status of listing %d: %w", listingID, err)
	}
	return requireRow(res, listingID)
}

func requireRow(res sql.Result, listingID uint32) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("repository: rows affected for listing %d: %w", listingID, err)
	}
	if n == 0 {
		return fmt.Errorf("repository: %w - listing %d", auctionerrors.ErrListingNotFound, listingID)
	}
	return nil
}
