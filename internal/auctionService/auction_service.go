package auction

import (
	"auction-offers/internal/models"
	"auction-offers/internal/offererrors"
	"auction-offers/internal/repository"
	"auction-offers/utils"
	"errors"
	"fmt"
	"time"
)

// AuctionService defines the business logic for auction listings, bidding
// and reserve-price management.
type AuctionService struct {
	repo repository.NegotiationDB

	// enforceBidFloor guards lowered reserves against dropping to or below
	// the current highest bid. The dashboards shipped with this check
	// disabled, so it is policy, not invariant.
	enforceBidFloor bool
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.NegotiationDB, enforceBidFloor bool) *AuctionService {
	return &AuctionService{
		repo:            repo,
		enforceBidFloor: enforceBidFloor,
	}
}

// CreateAuction validates and stores a new active listing
func (s *AuctionService) CreateAuction(title, sellerID string, startingPrice, reservePrice float64, allowOffers bool) (models.Auction, error) {
	if title == "" || sellerID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing title or sellerID", offererrors.ErrInvalidAuction)
	}
	if startingPrice <= 0 {
		return models.Auction{}, fmt.Errorf("service: %w - non-positive starting price", offererrors.ErrInvalidAuction)
	}
	if reservePrice <= 0 {
		return models.Auction{}, fmt.Errorf("service: %w - non-positive reserve price", offererrors.ErrInvalidAuction)
	}

	auction := models.Auction{
		AuctionID:     utils.GenerateID(),
		Title:         title,
		Slug:          utils.Slugify(title),
		SellerID:      sellerID,
		StartingPrice: startingPrice,
		ReservePrice:  reservePrice,
		AllowOffers:   allowOffers,
		Status:        models.AuctionActive,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.CreateAuction(auction); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction %q: %w", title, err)
	}
	return auction, nil
}

// GetAuction returns the auction with the given ID
func (s *AuctionService) GetAuction(auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", offererrors.ErrInvalidAuction)
	}
	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// ListAuctions returns all auctions
func (s *AuctionService) ListAuctions() ([]models.Auction, error) {
	auctions, err := s.repo.ListAuctions()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return auctions, nil
}

// PlaceBid validates and records a user's bid, raising the auction's
// current price.
func (s *AuctionService) PlaceBid(auctionID, userID string, amount float64) (models.Bid, models.Auction, error) {
	if auctionID == "" || userID == "" {
		return models.Bid{}, models.Auction{}, fmt.Errorf("service: %w - missing auctionID or userID", offererrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return models.Bid{}, models.Auction{}, fmt.Errorf("service: %w - non-positive bid amount", offererrors.ErrInvalidBid)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Bid{}, models.Auction{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	if auction.Status != models.AuctionActive {
		return models.Bid{}, models.Auction{}, fmt.Errorf("service: %w - auction %s is %s", offererrors.ErrAuctionClosed, auctionID, auction.Status)
	}
	if amount < auction.StartingPrice {
		return models.Bid{}, models.Auction{}, fmt.Errorf("service: %w - starting price is %.2f", offererrors.ErrBidTooLow, auction.StartingPrice)
	}
	if amount <= auction.CurrentPrice {
		return models.Bid{}, models.Auction{}, fmt.Errorf("service: %w - current highest bid is %.2f", offererrors.ErrBidTooLow, auction.CurrentPrice)
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		AuctionID: auctionID,
		UserID:    userID,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.RecordBid(bid); err != nil {
		return models.Bid{}, models.Auction{}, fmt.Errorf("service: failed to record bid for auction %s by user %s: %w", auctionID, userID, err)
	}

	auction.CurrentPrice = amount
	if err := s.repo.UpdateAuction(auction); err != nil {
		return models.Bid{}, models.Auction{}, fmt.Errorf("service: failed to update current price for auction %s: %w", auctionID, err)
	}

	return bid, auction, nil
}

// ListBids returns all bids for a specific auction
func (s *AuctionService) ListBids(auctionID string) ([]models.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", offererrors.ErrInvalidAuction)
	}
	bids, err := s.repo.ListBidsByAuction(auctionID)
	if err != nil && !errors.Is(err, offererrors.ErrNoBids) {
		return nil, fmt.Errorf("service: failed to list bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// LowerReserve lowers the auction's reserve price. Raising is never
// allowed; the new value must be positive and strictly below the current
// reserve. The floor against the current highest bid only applies when the
// service was built with enforceBidFloor.
func (s *AuctionService) LowerReserve(auctionID string, newReserve float64) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", offererrors.ErrInvalidAuction)
	}
	if newReserve <= 0 {
		return models.Auction{}, fmt.Errorf("service: %w - reserve price must be positive", offererrors.ErrInvalidReserve)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	if newReserve >= auction.ReservePrice {
		return models.Auction{}, fmt.Errorf("service: %w - current reserve is %.2f", offererrors.ErrReserveNotLower, auction.ReservePrice)
	}
	if s.enforceBidFloor && newReserve <= auction.CurrentPrice {
		return models.Auction{}, fmt.Errorf("service: %w - current highest bid is %.2f", offererrors.ErrReserveBelowBid, auction.CurrentPrice)
	}

	auction.ReservePrice = newReserve
	if err := s.repo.UpdateAuction(auction); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to lower reserve for auction %s: %w", auctionID, err)
	}
	return auction, nil
}
