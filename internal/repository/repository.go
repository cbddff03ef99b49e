package repository

import (
	model "auction-offers/internal/models"
	"auction-offers/internal/offererrors"
	"fmt"
	"sync"
	"time"
)

// NegotiationDB defines the storage interface for auctions, offers and bids
type NegotiationDB interface {
	CreateAuction(auction model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	UpdateAuction(auction model.Auction) error
	ListAuctions() ([]model.Auction, error)

	CreateOffer(offer model.Offer) error
	GetOffer(offerID string) (model.Offer, error)
	UpdateOffer(offer model.Offer) error
	ListOffersByAuction(auctionID string) ([]model.Offer, error)
	ListAllOffers() ([]model.Offer, error)
	GetLiveOfferByBuyer(auctionID, buyerID string) (model.Offer, error)
	ListDueOffers(now time.Time) ([]model.Offer, error)

	RecordBid(bid model.Bid) error
	ListBidsByAuction(auctionID string) ([]model.Bid, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of NegotiationDB
type MemoryRepo struct {
	mu            sync.RWMutex
	auctions      map[string]model.Auction // key: auctionID -> auction
	offers        map[string]model.Offer   // key: offerID -> offer
	auctionOffers map[string][]string      // key: auctionID -> offerIDs in creation order
	bids          map[string][]model.Bid   // key: auctionID -> list of bids
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions:      make(map[string]model.Auction),
		offers:        make(map[string]model.Offer),
		auctionOffers: make(map[string][]string),
		bids:          make(map[string][]model.Bid),
	}
}

// CreateAuction stores a new auction
func (r *MemoryRepo) CreateAuction(auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if auction.AuctionID == "" {
		return fmt.Errorf("create auction: %w - missing auction ID", offererrors.ErrInvalidAuction)
	}
	r.auctions[auction.AuctionID] = auction
	return nil
}

// GetAuction returns the auction with the given ID
func (r *MemoryRepo) GetAuction(auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, offererrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// UpdateAuction replaces the stored auction
func (r *MemoryRepo) UpdateAuction(auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auction.AuctionID]; !ok {
		return fmt.Errorf("update auction %s: %w", auction.AuctionID, offererrors.ErrAuctionNotFound)
	}
	r.auctions[auction.AuctionID] = auction
	return nil
}

// ListAuctions returns all auctions
func (r *MemoryRepo) ListAuctions() ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		auctions = append(auctions, a)
	}
	return auctions, nil
}

// CreateOffer stores a new offer and indexes it under its auction
func (r *MemoryRepo) CreateOffer(offer model.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[offer.AuctionID]; !ok {
		return fmt.Errorf("create offer for auction %s: %w", offer.AuctionID, offererrors.ErrAuctionNotFound)
	}
	r.offers[offer.OfferID] = offer
	r.auctionOffers[offer.AuctionID] = append(r.auctionOffers[offer.AuctionID], offer.OfferID)
	return nil
}

// GetOffer returns the offer with the given ID
func (r *MemoryRepo) GetOffer(offerID string) (model.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	offer, ok := r.offers[offerID]
	if !ok {
		return model.Offer{}, fmt.Errorf("get offer %s: %w", offerID, offererrors.ErrOfferNotFound)
	}
	return offer, nil
}

// UpdateOffer replaces the stored offer
func (r *MemoryRepo) UpdateOffer(offer model.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.offers[offer.OfferID]; !ok {
		return fmt.Errorf("update offer %s: %w", offer.OfferID, offererrors.ErrOfferNotFound)
	}
	r.offers[offer.OfferID] = offer
	return nil
}

// ListOffersByAuction returns all offers on an auction in creation order
func (r *MemoryRepo) ListOffersByAuction(auctionID string) ([]model.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.auctionOffers[auctionID]
	offers := make([]model.Offer, 0, len(ids))
	for _, id := range ids {
		if o, ok := r.offers[id]; ok {
			offers = append(offers, o)
		}
	}
	return offers, nil
}

// ListAllOffers returns every stored offer
func (r *MemoryRepo) ListAllOffers() ([]model.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	offers := make([]model.Offer, 0, len(r.offers))
	for _, auctionID := range r.sortedAuctionIDs() {
		for _, id := range r.auctionOffers[auctionID] {
			if o, ok := r.offers[id]; ok {
				offers = append(offers, o)
			}
		}
	}
	return offers, nil
}

// sortedAuctionIDs returns auction IDs that have offers. Order within an
// auction is stable; order across auctions is not guaranteed.
func (r *MemoryRepo) sortedAuctionIDs() []string {
	ids := make([]string, 0, len(r.auctionOffers))
	for id := range r.auctionOffers {
		ids = append(ids, id)
	}
	return ids
}

// GetLiveOfferByBuyer returns the buyer's pending or countered offer on an auction
func (r *MemoryRepo) GetLiveOfferByBuyer(auctionID, buyerID string) (model.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.auctionOffers[auctionID] {
		o, ok := r.offers[id]
		if ok && o.BuyerID == buyerID && o.Status.Live() {
			return o, nil
		}
	}
	return model.Offer{}, fmt.Errorf("live offer for buyer %s on auction %s: %w", buyerID, auctionID, offererrors.ErrNoLiveOffer)
}

// ListDueOffers returns live offers whose expiry has passed
func (r *MemoryRepo) ListDueOffers(now time.Time) ([]model.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var due []model.Offer
	for _, o := range r.offers {
		if o.Status.Live() && o.ExpiresAt.Before(now) {
			due = append(due, o)
		}
	}
	return due, nil
}

// RecordBid records a user's bid on an auction
func (r *MemoryRepo) RecordBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[bid.AuctionID]; !ok {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, offererrors.ErrAuctionNotFound)
	}
	r.bids[bid.AuctionID] = append(r.bids[bid.AuctionID], bid)
	return nil
}

// ListBidsByAuction returns all bids for an auction
func (r *MemoryRepo) ListBidsByAuction(auctionID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[auctionID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("list bids for auction %s: %w", auctionID, offererrors.ErrNoBids)
	}
	return append([]model.Bid(nil), bids...), nil
}
