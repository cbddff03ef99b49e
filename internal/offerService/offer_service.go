package offer

import (
	"auction-offers/internal/models"
	"auction-offers/internal/offererrors"
	"auction-offers/internal/repository"
	"auction-offers/utils"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Respond actions accepted by RespondToOffer
const (
	ResponseAccept = "accept"
	ResponseReject = "reject"
)

// OfferService implements the negotiation state machine for private offers.
// All state transitions are serialized through a single mutex; the dashboards
// perform no coordination of their own and rely on the server to resolve
// conflicting actions.
type OfferService struct {
	repo repository.NegotiationDB
	ttl  time.Duration
	mu   sync.Mutex
}

// OfferRecord is an offer decorated with the server-computed reactivation flag
type OfferRecord struct {
	models.Offer
	CanBeReactivated bool `json:"can_be_reactivated"`
}

// NewOfferService creates a new OfferService instance. ttl is the window a
// buyer or seller has to respond before an offer expires.
func NewOfferService(repo repository.NegotiationDB, ttl time.Duration) *OfferService {
	return &OfferService{
		repo: repo,
		ttl:  ttl,
	}
}

// SubmitOffer validates and records a buyer's offer on an auction.
// The offer starts pending and expires ttl after creation.
func (s *OfferService) SubmitOffer(auctionID, buyerID, buyerUsername string, amount float64, message string) (models.Offer, error) {
	if auctionID == "" || buyerID == "" {
		return models.Offer{}, fmt.Errorf("service: %w - missing auctionID or buyerID", offererrors.ErrInvalidOffer)
	}
	if amount <= 0 {
		return models.Offer{}, fmt.Errorf("service: %w - non-positive offer amount", offererrors.ErrInvalidOffer)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Offer{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	if auction.Status != models.AuctionActive {
		return models.Offer{}, fmt.Errorf("service: %w - auction %s is %s", offererrors.ErrAuctionClosed, auctionID, auction.Status)
	}
	if !auction.AllowOffers {
		return models.Offer{}, fmt.Errorf("service: %w - auction %s", offererrors.ErrOffersDisabled, auctionID)
	}

	if _, err := s.repo.GetLiveOfferByBuyer(auctionID, buyerID); err == nil {
		return models.Offer{}, fmt.Errorf("service: %w", offererrors.ErrDuplicateOffer)
	} else if !errors.Is(err, offererrors.ErrNoLiveOffer) {
		return models.Offer{}, fmt.Errorf("service: failed to check live offer: %w", err)
	}

	now := time.Now().UTC()
	offer := models.Offer{
		OfferID:       utils.GenerateID(),
		AuctionID:     auctionID,
		BuyerID:       buyerID,
		BuyerUsername: buyerUsername,
		Amount:        amount,
		Message:       message,
		Status:        models.StatusPending,
		CreatedAt:     now,
		ExpiresAt:     now.Add(s.ttl),
	}

	if err := s.repo.CreateOffer(offer); err != nil {
		return models.Offer{}, fmt.Errorf("service: failed to record offer for auction %s by buyer %s: %w", auctionID, buyerID, err)
	}

	return offer, nil
}

// CounterOffer records the seller's revised price on a pending offer.
// The offer moves to countered and its expiry window restarts.
func (s *OfferService) CounterOffer(offerID, auctionID string, amount float64, message string) (models.Offer, error) {
	if amount <= 0 {
		return models.Offer{}, fmt.Errorf("service: %w - non-positive counter amount", offererrors.ErrInvalidOffer)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	offer, err := s.offerForAuction(offerID, auctionID)
	if err != nil {
		return models.Offer{}, err
	}
	if offer.Status != models.StatusPending {
		return models.Offer{}, fmt.Errorf("service: %w - cannot counter an offer that is %s", offererrors.ErrInvalidTransition, offer.Status)
	}

	offer.Status = models.StatusCountered
	offer.CounterOffer = &models.CounterOffer{Amount: amount, Message: message}
	offer.ExpiresAt = time.Now().UTC().Add(s.ttl)

	if err := s.repo.UpdateOffer(offer); err != nil {
		return models.Offer{}, fmt.Errorf("service: failed to store counter offer %s: %w", offerID, err)
	}
	return offer, nil
}

// AcceptCounter is the buyer accepting the seller's counter-offer. The
// auction ends at the countered amount and sibling live offers are rejected.
func (s *OfferService) AcceptCounter(auctionID, offerID, buyerID string) (models.Offer, models.Auction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	offer, err := s.offerForAuction(offerID, auctionID)
	if err != nil {
		return models.Offer{}, models.Auction{}, err
	}
	if offer.BuyerID != buyerID {
		return models.Offer{}, models.Auction{}, fmt.Errorf("service: %w - offer %s does not belong to buyer %s", offererrors.ErrInvalidOffer, offerID, buyerID)
	}
	if offer.Status != models.StatusCountered {
		return models.Offer{}, models.Auction{}, fmt.Errorf("service: %w - cannot accept counter on an offer that is %s", offererrors.ErrInvalidTransition, offer.Status)
	}
	if offer.CounterOffer == nil {
		return models.Offer{}, models.Auction{}, fmt.Errorf("service: countered offer %s has no counter record", offerID)
	}

	return s.acceptLocked(offer, offer.CounterOffer.Amount, offer.SellerResponse)
}

// RespondToOffer is the seller/admin decision on a pending offer:
// accept ends the auction at the offered amount, reject closes the offer.
func (s *OfferService) RespondToOffer(offerID, auctionID, response, message string) (models.Offer, models.Auction, error) {
	if response != ResponseAccept && response != ResponseReject {
		return models.Offer{}, models.Auction{}, fmt.Errorf("service: %w - response must be %q or %q", offererrors.ErrInvalidOffer, ResponseAccept, ResponseReject)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	offer, err := s.offerForAuction(offerID, auctionID)
	if err != nil {
		return models.Offer{}, models.Auction{}, err
	}
	if offer.Status != models.StatusPending {
		return models.Offer{}, models.Auction{}, fmt.Errorf("service: %w - cannot respond to an offer that is %s", offererrors.ErrInvalidTransition, offer.Status)
	}

	if response == ResponseAccept {
		return s.acceptLocked(offer, offer.Amount, message)
	}

	offer.Status = models.StatusRejected
	offer.SellerResponse = message
	if err := s.repo.UpdateOffer(offer); err != nil {
		return models.Offer{}, models.Auction{}, fmt.Errorf("service: failed to reject offer %s: %w", offerID, err)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Offer{}, models.Auction{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	return offer, auction, nil
}

// WithdrawOffer is the buyer retracting a live offer. Irreversible, and has
// no effect on other offers for the auction.
func (s *OfferService) WithdrawOffer(auctionID, offerID, buyerID string) (models.Offer, models.Auction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	offer, err := s.offerForAuction(offerID, auctionID)
	if err != nil {
		return models.Offer{}, models.Auction{}, err
	}
	if offer.BuyerID != buyerID {
		return models.Offer{}, models.Auction{}, fmt.Errorf("service: %w - offer %s does not belong to buyer %s", offererrors.ErrInvalidOffer, offerID, buyerID)
	}
	if !offer.Status.Live() {
		return models.Offer{}, models.Auction{}, fmt.Errorf("service: %w - cannot withdraw an offer that is %s", offererrors.ErrInvalidTransition, offer.Status)
	}

	offer.Status = models.StatusWithdrawn
	if err := s.repo.UpdateOffer(offer); err != nil {
		return models.Offer{}, models.Auction{}, fmt.Errorf("service: failed to withdraw offer %s: %w", offerID, err)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Offer{}, models.Auction{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	return offer, auction, nil
}

// CancelOffer is the admin killing a live offer. The reason is stored and
// surfaced to the buyer.
func (s *OfferService) CancelOffer(offerID, auctionID, reason string) (models.Offer, error) {
	if reason == "" {
		return models.Offer{}, fmt.Errorf("service: %w - a cancellation reason is required", offererrors.ErrInvalidOffer)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	offer, err := s.offerForAuction(offerID, auctionID)
	if err != nil {
		return models.Offer{}, err
	}
	if !offer.Status.Live() {
		return models.Offer{}, fmt.Errorf("service: %w - cannot cancel an offer that is %s", offererrors.ErrInvalidTransition, offer.Status)
	}

	offer.Status = models.StatusCancelled
	offer.CancelReason = reason
	if err := s.repo.UpdateOffer(offer); err != nil {
		return models.Offer{}, fmt.Errorf("service: failed to cancel offer %s: %w", offerID, err)
	}
	return offer, nil
}

// ReactivateOffer re-opens a rejected offer and immediately accepts it at
// the original amount, bypassing pending. Only valid while the auction is
// still open to it.
func (s *OfferService) ReactivateOffer(offerID, auctionID, reason string) (models.Offer, models.Auction, error) {
	if reason == "" {
		return models.Offer{}, models.Auction{}, fmt.Errorf("service: %w - a reactivation reason is required", offererrors.ErrInvalidOffer)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	offer, err := s.offerForAuction(offerID, auctionID)
	if err != nil {
		return models.Offer{}, models.Auction{}, err
	}
	if offer.Status != models.StatusRejected {
		return models.Offer{}, models.Auction{}, fmt.Errorf("service: %w - offer is %s, only rejected offers can be reactivated", offererrors.ErrNotReactivatable, offer.Status)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Offer{}, models.Auction{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	if !canBeReactivated(offer, auction) {
		return models.Offer{}, models.Auction{}, fmt.Errorf("service: %w - auction %s is no longer open", offererrors.ErrNotReactivatable, auctionID)
	}

	return s.acceptLocked(offer, offer.Amount, reason)
}

// ExpireDueOffers transitions every live offer past its expiry to expired.
// Returns the number of offers expired. Called from the background sweep.
func (s *OfferService) ExpireDueOffers(now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	due, err := s.repo.ListDueOffers(now)
	if err != nil {
		return 0, fmt.Errorf("service: failed to list due offers: %w", err)
	}

	expired := 0
	for _, offer := range due {
		offer.Status = models.StatusExpired
		if err := s.repo.UpdateOffer(offer); err != nil {
			return expired, fmt.Errorf("service: failed to expire offer %s: %w", offer.OfferID, err)
		}
		expired++
	}
	return expired, nil
}

// ListAllOffers returns every offer decorated with the reactivation flag
// for the admin dashboard.
func (s *OfferService) ListAllOffers() ([]OfferRecord, error) {
	offers, err := s.repo.ListAllOffers()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list offers: %w", err)
	}

	// auction status lookups are cached per call; most offers share auctions
	auctions := make(map[string]models.Auction)
	records := make([]OfferRecord, 0, len(offers))
	for _, o := range offers {
		auction, ok := auctions[o.AuctionID]
		if !ok {
			auction, err = s.repo.GetAuction(o.AuctionID)
			if err != nil {
				return nil, fmt.Errorf("service: failed to load auction %s: %w", o.AuctionID, err)
			}
			auctions[o.AuctionID] = auction
		}
		records = append(records, OfferRecord{
			Offer:            o,
			CanBeReactivated: canBeReactivated(o, auction),
		})
	}
	return records, nil
}

// OfferStats aggregates offer counts and accepted value for the admin
// stats endpoint. Every status appears in the map, including zero counts.
func (s *OfferService) OfferStats() (models.OfferStats, error) {
	offers, err := s.repo.ListAllOffers()
	if err != nil {
		return models.OfferStats{}, fmt.Errorf("service: failed to list offers: %w", err)
	}

	stats := models.OfferStats{
		ByStatus: make(map[models.OfferStatus]int, len(models.AllOfferStatuses)),
	}
	for _, status := range models.AllOfferStatuses {
		stats.ByStatus[status] = 0
	}
	for _, o := range offers {
		stats.Total++
		stats.ByStatus[o.Status]++
		if o.Status == models.StatusAccepted {
			stats.AcceptedValue += acceptedValue(o)
		}
	}
	return stats, nil
}

// offerForAuction loads an offer and checks it belongs to the auction the
// caller named; a mismatch is reported as not found.
func (s *OfferService) offerForAuction(offerID, auctionID string) (models.Offer, error) {
	if offerID == "" || auctionID == "" {
		return models.Offer{}, fmt.Errorf("service: %w - missing offerID or auctionID", offererrors.ErrInvalidOffer)
	}
	offer, err := s.repo.GetOffer(offerID)
	if err != nil {
		return models.Offer{}, fmt.Errorf("service: failed to load offer %s: %w", offerID, err)
	}
	if offer.AuctionID != auctionID {
		return models.Offer{}, fmt.Errorf("service: offer %s is not on auction %s: %w", offerID, auctionID, offererrors.ErrOfferNotFound)
	}
	return offer, nil
}

// acceptLocked performs the accept cascade under the service mutex: the
// offer is accepted, the auction ends with the buyer as winner at finalPrice,
// and every other live offer on the auction is rejected.
func (s *OfferService) acceptLocked(offer models.Offer, finalPrice float64, sellerResponse string) (models.Offer, models.Auction, error) {
	auction, err := s.repo.GetAuction(offer.AuctionID)
	if err != nil {
		return models.Offer{}, models.Auction{}, fmt.Errorf("service: failed to load auction %s: %w", offer.AuctionID, err)
	}
	if auction.Status != models.AuctionActive {
		return models.Offer{}, models.Auction{}, fmt.Errorf("service: %w - auction %s is %s", offererrors.ErrAuctionClosed, auction.AuctionID, auction.Status)
	}

	offer.Status = models.StatusAccepted
	offer.SellerResponse = sellerResponse
	if err := s.repo.UpdateOffer(offer); err != nil {
		return models.Offer{}, models.Auction{}, fmt.Errorf("service: failed to accept offer %s: %w", offer.OfferID, err)
	}

	auction.Status = models.AuctionEnded
	auction.WinnerID = offer.BuyerID
	auction.FinalPrice = finalPrice
	if err := s.repo.UpdateAuction(auction); err != nil {
		return models.Offer{}, models.Auction{}, fmt.Errorf("service: failed to end auction %s: %w", auction.AuctionID, err)
	}

	siblings, err := s.repo.ListOffersByAuction(offer.AuctionID)
	if err != nil {
		return models.Offer{}, models.Auction{}, fmt.Errorf("service: failed to list sibling offers: %w", err)
	}
	for _, sibling := range siblings {
		if sibling.OfferID == offer.OfferID || !sibling.Status.Live() {
			continue
		}
		sibling.Status = models.StatusRejected
		if err := s.repo.UpdateOffer(sibling); err != nil {
			return models.Offer{}, models.Auction{}, fmt.Errorf("service: failed to reject sibling offer %s: %w", sibling.OfferID, err)
		}
	}

	return offer, auction, nil
}

// canBeReactivated mirrors the flag the admin dashboard keys its
// reactivate control on: rejected offer, auction still active and unsold.
func canBeReactivated(offer models.Offer, auction models.Auction) bool {
	return offer.Status == models.StatusRejected &&
		auction.Status == models.AuctionActive &&
		auction.WinnerID == ""
}

// acceptedValue is the price the auction actually closed at for an
// accepted offer: the countered amount when one was accepted, otherwise
// the original offer amount.
func acceptedValue(o models.Offer) float64 {
	if o.CounterOffer != nil {
		return o.CounterOffer.Amount
	}
	return o.Amount
}
