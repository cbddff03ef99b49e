package models

import (
	"fmt"
	"time"
)

// OfferStatus enumerates every state a private offer can be in.
type OfferStatus string

const (
	StatusPending   OfferStatus = "pending"
	StatusAccepted  OfferStatus = "accepted"
	StatusRejected  OfferStatus = "rejected"
	StatusCountered OfferStatus = "countered"
	StatusExpired   OfferStatus = "expired"
	StatusWithdrawn OfferStatus = "withdrawn"
	StatusCancelled OfferStatus = "cancelled"
)

// AllOfferStatuses lists every valid status, in lifecycle order.
var AllOfferStatuses = []OfferStatus{
	StatusPending,
	StatusCountered,
	StatusAccepted,
	StatusRejected,
	StatusExpired,
	StatusWithdrawn,
	StatusCancelled,
}

// Live reports whether the offer can still transition by human action.
func (s OfferStatus) Live() bool {
	return s == StatusPending || s == StatusCountered
}

// Label returns the display label for the status. The switch covers the
// full enumeration; "unknown" is only reachable for values that never
// passed ParseOfferStatus.
func (s OfferStatus) Label() string {
	switch s {
	case StatusPending:
		return "Awaiting Response"
	case StatusCountered:
		return "Counter Offer Made"
	case StatusAccepted:
		return "Accepted"
	case StatusRejected:
		return "Rejected"
	case StatusExpired:
		return "Expired"
	case StatusWithdrawn:
		return "Withdrawn"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "unknown"
	}
}

// ParseOfferStatus validates a raw status string from storage or a request.
func ParseOfferStatus(raw string) (OfferStatus, error) {
	for _, s := range AllOfferStatuses {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown offer status %q", raw)
}

// AuctionStatus enumerates the lifecycle states of an auction listing.
type AuctionStatus string

const (
	AuctionActive    AuctionStatus = "active"
	AuctionEnded     AuctionStatus = "ended"
	AuctionCancelled AuctionStatus = "cancelled"
)

// CounterOffer is the seller's revised price attached to a countered offer.
type CounterOffer struct {
	Amount  float64 `json:"amount"`
	Message string  `json:"message,omitempty"`
}

// Offer represents a private buyer-proposed purchase price on an auction.
type Offer struct {
	OfferID        string        `json:"offer_id"`
	AuctionID      string        `json:"auction_id"`
	BuyerID        string        `json:"buyer_id"`
	BuyerUsername  string        `json:"buyer_username"`
	Amount         float64       `json:"amount"`
	Message        string        `json:"message,omitempty"`
	Status         OfferStatus   `json:"status"`
	SellerResponse string        `json:"seller_response,omitempty"`
	CancelReason   string        `json:"cancel_reason,omitempty"`
	CounterOffer   *CounterOffer `json:"counter_offer,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	ExpiresAt      time.Time     `json:"expires_at"`
}

// Auction represents a vehicle listing, reduced to the fields the
// negotiation and reserve-price flows depend on.
type Auction struct {
	AuctionID     string        `json:"auction_id"`
	Title         string        `json:"title"`
	Slug          string        `json:"slug"`
	SellerID      string        `json:"seller_id"`
	StartingPrice float64       `json:"starting_price"`
	ReservePrice  float64       `json:"reserve_price"`
	CurrentPrice  float64       `json:"current_price"`
	AllowOffers   bool          `json:"allow_offers"`
	Status        AuctionStatus `json:"status"`
	WinnerID      string        `json:"winner_id,omitempty"`
	FinalPrice    float64       `json:"final_price,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Bid represents a public bid on an auction.
type Bid struct {
	BidID     string    `json:"bid_id"`
	AuctionID string    `json:"auction_id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// OfferStats aggregates offer counts for the admin dashboard.
type OfferStats struct {
	Total         int                 `json:"total"`
	ByStatus      map[OfferStatus]int `json:"by_status"`
	AcceptedValue float64             `json:"accepted_value"`
}
