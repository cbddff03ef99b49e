package helpers

import (
	"time"

	model "auction-offers/internal/models"
)

// Request DTOs

type SubmitOfferRequest struct {
	BuyerID       string  `json:"buyer_id" binding:"required"`
	BuyerUsername string  `json:"buyer_username"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Message       string  `json:"message"`
}

// BuyerActionRequest covers accept-counter and withdraw, which only need
// to identify the acting buyer.
type BuyerActionRequest struct {
	BuyerID string `json:"buyer_id" binding:"required"`
}

type RespondRequest struct {
	AuctionID string `json:"auction_id" binding:"required"`
	Response  string `json:"response" binding:"required,oneof=accept reject"`
	Message   string `json:"message"`
}

type CounterRequest struct {
	AuctionID string  `json:"auction_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Message   string  `json:"message"`
}

type CancelRequest struct {
	AuctionID string `json:"auction_id" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

type ReactivateRequest struct {
	AuctionID string `json:"auction_id" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

type CreateAuctionRequest struct {
	Title         string  `json:"title" binding:"required"`
	SellerID      string  `json:"seller_id" binding:"required"`
	StartingPrice float64 `json:"starting_price" binding:"required,gt=0"`
	ReservePrice  float64 `json:"reserve_price" binding:"required,gt=0"`
	AllowOffers   bool    `json:"allow_offers"`
}

type PlaceBidRequest struct {
	UserID string  `json:"user_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type LowerReserveRequest struct {
	NewReservePrice float64 `json:"new_reserve_price" binding:"required"`
}

// Response DTOs

type OfferResponse struct {
	OfferID          string              `json:"offer_id"`
	AuctionID        string              `json:"auction_id"`
	BuyerID          string              `json:"buyer_id"`
	BuyerUsername    string              `json:"buyer_username,omitempty"`
	Amount           float64             `json:"amount"`
	Message          string              `json:"message,omitempty"`
	Status           string              `json:"status"`
	StatusLabel      string              `json:"status_label"`
	SellerResponse   string              `json:"seller_response,omitempty"`
	CancelReason     string              `json:"cancel_reason,omitempty"`
	CounterOffer     *model.CounterOffer `json:"counter_offer,omitempty"`
	CanBeReactivated bool                `json:"can_be_reactivated"`
	CreatedAt        string              `json:"created_at"`
	ExpiresAt        string              `json:"expires_at"`
}

// NewOfferResponse builds the wire shape of an offer. The counter sub-record
// is only serialized while the offer is countered, or once it was accepted
// from a counter (the final price provenance).
func NewOfferResponse(o model.Offer, canBeReactivated bool) OfferResponse {
	resp := OfferResponse{
		OfferID:          o.OfferID,
		AuctionID:        o.AuctionID,
		BuyerID:          o.BuyerID,
		BuyerUsername:    o.BuyerUsername,
		Amount:           o.Amount,
		Message:          o.Message,
		Status:           string(o.Status),
		StatusLabel:      o.Status.Label(),
		SellerResponse:   o.SellerResponse,
		CancelReason:     o.CancelReason,
		CanBeReactivated: canBeReactivated,
		CreatedAt:        o.CreatedAt.UTC().Format(time.RFC3339),
		ExpiresAt:        o.ExpiresAt.UTC().Format(time.RFC3339),
	}
	if o.Status == model.StatusCountered || (o.Status == model.StatusAccepted && o.CounterOffer != nil) {
		resp.CounterOffer = o.CounterOffer
	}
	return resp
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	AuctionID string  `json:"auction_id"`
	UserID    string  `json:"user_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

// NewBidResponse builds the wire shape of a bid
func NewBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		BidID:     b.BidID,
		AuctionID: b.AuctionID,
		UserID:    b.UserID,
		Amount:    b.Amount,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}
