package offererrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrOfferNotFound   = errors.New("offer not found")
	ErrNoLiveOffer     = errors.New("no live offer for buyer")
	ErrNoBids          = errors.New("no bids found for auction")
)

// business logic errors
var (
	ErrInvalidOffer      = errors.New("invalid offer")
	ErrInvalidAuction    = errors.New("invalid auction")
	ErrInvalidBid        = errors.New("invalid bid")
	ErrInvalidReserve    = errors.New("invalid reserve price")
	ErrInvalidTransition = errors.New("offer state does not permit this action")
	ErrDuplicateOffer    = errors.New("buyer already has a live offer on this auction")
	ErrOffersDisabled    = errors.New("auction does not accept offers")
	ErrAuctionClosed     = errors.New("auction is no longer active")
	ErrBidTooLow         = errors.New("bid amount too low")
	ErrReserveNotLower   = errors.New("new reserve price must be lower than the current reserve")
	ErrReserveBelowBid   = errors.New("new reserve price must stay above the current highest bid")
	ErrNotReactivatable  = errors.New("offer cannot be reactivated")
)
