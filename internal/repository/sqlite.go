package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	model "auction-offers/internal/models"
	"auction-offers/internal/offererrors"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteRepo is a sqlite-backed implementation of NegotiationDB
type SQLiteRepo struct {
	db *sql.DB
}

// NewSQLiteRepo opens the database at dbPath and initializes the schema
func NewSQLiteRepo(dbPath string) (*SQLiteRepo, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	// Initialize database schema
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS auctions (
			auction_id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			slug TEXT NOT NULL,
			seller_id TEXT NOT NULL,
			starting_price REAL NOT NULL,
			reserve_price REAL NOT NULL,
			current_price REAL NOT NULL,
			allow_offers INTEGER NOT NULL,
			status TEXT NOT NULL,
			winner_id TEXT NOT NULL DEFAULT '',
			final_price REAL NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL
		);
		CREATE TABLE IF NOT EXISTS offers (
			offer_id TEXT PRIMARY KEY,
			auction_id TEXT NOT NULL,
			buyer_id TEXT NOT NULL,
			buyer_username TEXT NOT NULL,
			amount REAL NOT NULL,
			message TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			seller_response TEXT NOT NULL DEFAULT '',
			cancel_reason TEXT NOT NULL DEFAULT '',
			counter_amount REAL,
			counter_message TEXT,
			created_at TIMESTAMP NOT NULL,
			expires_at TIMESTAMP NOT NULL,
			FOREIGN KEY(auction_id) REFERENCES auctions(auction_id)
		);
		CREATE TABLE IF NOT EXISTS bids (
			bid_id TEXT PRIMARY KEY,
			auction_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			amount REAL NOT NULL,
			created_at TIMESTAMP NOT NULL,
			FOREIGN KEY(auction_id) REFERENCES auctions(auction_id)
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create schema: %v", err)
	}

	return &SQLiteRepo{db: db}, nil
}

// Close releases the underlying database handle
func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

// CreateAuction stores a new auction
func (r *SQLiteRepo) CreateAuction(a model.Auction) error {
	if a.AuctionID == "" {
		return fmt.Errorf("create auction: %w - missing auction ID", offererrors.ErrInvalidAuction)
	}
	_, err := r.db.Exec(
		`INSERT INTO auctions (auction_id, title, slug, seller_id, starting_price, reserve_price, current_price, allow_offers, status, winner_id, final_price, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.AuctionID, a.Title, a.Slug, a.SellerID, a.StartingPrice, a.ReservePrice, a.CurrentPrice,
		boolToInt(a.AllowOffers), string(a.Status), a.WinnerID, a.FinalPrice, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create auction: %v", err)
	}
	return nil
}

// GetAuction returns the auction with the given ID
func (r *SQLiteRepo) GetAuction(auctionID string) (model.Auction, error) {
	row := r.db.QueryRow(
		`SELECT auction_id, title, slug, seller_id, starting_price, reserve_price, current_price, allow_offers, status, winner_id, final_price, created_at
		 FROM auctions WHERE auction_id = ?`, auctionID)
	a, err := scanAuction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, offererrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("failed to fetch auction: %v", err)
	}
	return a, nil
}

// UpdateAuction replaces the stored auction
func (r *SQLiteRepo) UpdateAuction(a model.Auction) error {
	res, err := r.db.Exec(
		`UPDATE auctions SET title = ?, slug = ?, seller_id = ?, starting_price = ?, reserve_price = ?, current_price = ?, allow_offers = ?, status = ?, winner_id = ?, final_price = ?
		 WHERE auction_id = ?`,
		a.Title, a.Slug, a.SellerID, a.StartingPrice, a.ReservePrice, a.CurrentPrice,
		boolToInt(a.AllowOffers), string(a.Status), a.WinnerID, a.FinalPrice, a.AuctionID,
	)
	if err != nil {
		return fmt.Errorf("failed to update auction: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update auction %s: %w", a.AuctionID, offererrors.ErrAuctionNotFound)
	}
	return nil
}

// ListAuctions returns all auctions ordered by creation time
func (r *SQLiteRepo) ListAuctions() ([]model.Auction, error) {
	rows, err := r.db.Query(
		`SELECT auction_id, title, slug, seller_id, starting_price, reserve_price, current_price, allow_offers, status, winner_id, final_price, created_at
		 FROM auctions ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch auctions: %v", err)
	}
	defer rows.Close()

	var auctions []model.Auction
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan auction: %v", err)
		}
		auctions = append(auctions, a)
	}
	return auctions, rows.Err()
}

// CreateOffer stores a new offer
func (r *SQLiteRepo) CreateOffer(o model.Offer) error {
	if _, err := r.GetAuction(o.AuctionID); err != nil {
		return err
	}
	var counterAmount sql.NullFloat64
	var counterMessage sql.NullString
	if o.CounterOffer != nil {
		counterAmount = sql.NullFloat64{Float64: o.CounterOffer.Amount, Valid: true}
		counterMessage = sql.NullString{String: o.CounterOffer.Message, Valid: true}
	}
	_, err := r.db.Exec(
		`INSERT INTO offers (offer_id, auction_id, buyer_id, buyer_username, amount, message, status, seller_response, cancel_reason, counter_amount, counter_message, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.OfferID, o.AuctionID, o.BuyerID, o.BuyerUsername, o.Amount, o.Message, string(o.Status),
		o.SellerResponse, o.CancelReason, counterAmount, counterMessage, o.CreatedAt, o.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create offer: %v", err)
	}
	return nil
}

// GetOffer returns the offer with the given ID
func (r *SQLiteRepo) GetOffer(offerID string) (model.Offer, error) {
	row := r.db.QueryRow(
		`SELECT offer_id, auction_id, buyer_id, buyer_username, amount, message, status, seller_response, cancel_reason, counter_amount, counter_message, created_at, expires_at
		 FROM offers WHERE offer_id = ?`, offerID)
	o, err := scanOffer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Offer{}, fmt.Errorf("get offer %s: %w", offerID, offererrors.ErrOfferNotFound)
	}
	if err != nil {
		return model.Offer{}, fmt.Errorf("failed to fetch offer: %v", err)
	}
	return o, nil
}

// UpdateOffer replaces the stored offer
func (r *SQLiteRepo) UpdateOffer(o model.Offer) error {
	var counterAmount sql.NullFloat64
	var counterMessage sql.NullString
	if o.CounterOffer != nil {
		counterAmount = sql.NullFloat64{Float64: o.CounterOffer.Amount, Valid: true}
		counterMessage = sql.NullString{String: o.CounterOffer.Message, Valid: true}
	}
	res, err := r.db.Exec(
		`UPDATE offers SET amount = ?, message = ?, status = ?, seller_response = ?, cancel_reason = ?, counter_amount = ?, counter_message = ?, expires_at = ?
		 WHERE offer_id = ?`,
		o.Amount, o.Message, string(o.Status), o.SellerResponse, o.CancelReason,
		counterAmount, counterMessage, o.ExpiresAt, o.OfferID,
	)
	if err != nil {
		return fmt.Errorf("failed to update offer: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update offer %s: %w", o.OfferID, offererrors.ErrOfferNotFound)
	}
	return nil
}

// ListOffersByAuction returns all offers on an auction in creation order
func (r *SQLiteRepo) ListOffersByAuction(auctionID string) ([]model.Offer, error) {
	return r.queryOffers(
		`SELECT offer_id, auction_id, buyer_id, buyer_username, amount, message, status, seller_response, cancel_reason, counter_amount, counter_message, created_at, expires_at
		 FROM offers WHERE auction_id = ? ORDER BY created_at`, auctionID)
}

// ListAllOffers returns every stored offer
func (r *SQLiteRepo) ListAllOffers() ([]model.Offer, error) {
	return r.queryOffers(
		`SELECT offer_id, auction_id, buyer_id, buyer_username, amount, message, status, seller_response, cancel_reason, counter_amount, counter_message, created_at, expires_at
		 FROM offers ORDER BY created_at`)
}

// GetLiveOfferByBuyer returns the buyer's pending or countered offer on an auction
func (r *SQLiteRepo) GetLiveOfferByBuyer(auctionID, buyerID string) (model.Offer, error) {
	row := r.db.QueryRow(
		`SELECT offer_id, auction_id, buyer_id, buyer_username, amount, message, status, seller_response, cancel_reason, counter_amount, counter_message, created_at, expires_at
		 FROM offers WHERE auction_id = ? AND buyer_id = ? AND status IN ('pending', 'countered')`,
		auctionID, buyerID)
	o, err := scanOffer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Offer{}, fmt.Errorf("live offer for buyer %s on auction %s: %w", buyerID, auctionID, offererrors.ErrNoLiveOffer)
	}
	if err != nil {
		return model.Offer{}, fmt.Errorf("failed to fetch live offer: %v", err)
	}
	return o, nil
}

// ListDueOffers returns live offers whose expiry has passed
func (r *SQLiteRepo) ListDueOffers(now time.Time) ([]model.Offer, error) {
	return r.queryOffers(
		`SELECT offer_id, auction_id, buyer_id, buyer_username, amount, message, status, seller_response, cancel_reason, counter_amount, counter_message, created_at, expires_at
		 FROM offers WHERE status IN ('pending', 'countered') AND expires_at < ?`, now)
}

// RecordBid records a user's bid on an auction
func (r *SQLiteRepo) RecordBid(b model.Bid) error {
	if _, err := r.GetAuction(b.AuctionID); err != nil {
		return err
	}
	_, err := r.db.Exec(
		`INSERT INTO bids (bid_id, auction_id, user_id, amount, created_at) VALUES (?, ?, ?, ?, ?)`,
		b.BidID, b.AuctionID, b.UserID, b.Amount, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record bid: %v", err)
	}
	return nil
}

// ListBidsByAuction returns all bids for an auction
func (r *SQLiteRepo) ListBidsByAuction(auctionID string) ([]model.Bid, error) {
	rows, err := r.db.Query(
		`SELECT bid_id, auction_id, user_id, amount, created_at FROM bids WHERE auction_id = ? ORDER BY created_at`,
		auctionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bids: %v", err)
	}
	defer rows.Close()

	var bids []model.Bid
	for rows.Next() {
		var b model.Bid
		if err := rows.Scan(&b.BidID, &b.AuctionID, &b.UserID, &b.Amount, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bid: %v", err)
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bids: %v", err)
	}
	if len(bids) == 0 {
		return nil, fmt.Errorf("list bids for auction %s: %w", auctionID, offererrors.ErrNoBids)
	}
	return bids, nil
}

func (r *SQLiteRepo) queryOffers(query string, args ...any) ([]model.Offer, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch offers: %v", err)
	}
	defer rows.Close()

	var offers []model.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan offer: %v", err)
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

// scanner abstracts *sql.Row and *sql.Rows for the scan helpers
type scanner interface {
	Scan(dest ...any) error
}

func scanAuction(s scanner) (model.Auction, error) {
	var a model.Auction
	var allowOffers int
	var status string
	err := s.Scan(&a.AuctionID, &a.Title, &a.Slug, &a.SellerID, &a.StartingPrice, &a.ReservePrice,
		&a.CurrentPrice, &allowOffers, &status, &a.WinnerID, &a.FinalPrice, &a.CreatedAt)
	if err != nil {
		return model.Auction{}, err
	}
	a.AllowOffers = allowOffers != 0
	a.Status = model.AuctionStatus(status)
	return a, nil
}

func scanOffer(s scanner) (model.Offer, error) {
	var o model.Offer
	var status string
	var counterAmount sql.NullFloat64
	var counterMessage sql.NullString
	err := s.Scan(&o.OfferID, &o.AuctionID, &o.BuyerID, &o.BuyerUsername, &o.Amount, &o.Message,
		&status, &o.SellerResponse, &o.CancelReason, &counterAmount, &counterMessage,
		&o.CreatedAt, &o.ExpiresAt)
	if err != nil {
		return model.Offer{}, err
	}
	parsed, err := model.ParseOfferStatus(status)
	if err != nil {
		return model.Offer{}, err
	}
	o.Status = parsed
	if counterAmount.Valid {
		o.CounterOffer = &model.CounterOffer{Amount: counterAmount.Float64, Message: counterMessage.String}
	}
	return o, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
