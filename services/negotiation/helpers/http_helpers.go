package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-offers/internal/offererrors"
	"auction-offers/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// Precondition violations map to 409 so the dashboards can toast the
// server's message verbatim and leave the retry to the user.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, offererrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, offererrors.ErrOfferNotFound):
		return http.StatusNotFound, "offer not found"
	case errors.Is(err, offererrors.ErrInvalidOffer):
		return http.StatusBadRequest, "invalid offer details"
	case errors.Is(err, offererrors.ErrInvalidAuction):
		return http.StatusBadRequest, "invalid auction details"
	case errors.Is(err, offererrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, offererrors.ErrInvalidReserve):
		return http.StatusBadRequest, "invalid reserve price"
	case errors.Is(err, offererrors.ErrInvalidTransition):
		return http.StatusConflict, "offer state does not permit this action"
	case errors.Is(err, offererrors.ErrDuplicateOffer):
		return http.StatusConflict, "an offer is already live on this auction"
	case errors.Is(err, offererrors.ErrOffersDisabled):
		return http.StatusConflict, "auction does not accept offers"
	case errors.Is(err, offererrors.ErrAuctionClosed):
		return http.StatusConflict, "auction is no longer active"
	case errors.Is(err, offererrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, offererrors.ErrReserveNotLower):
		return http.StatusConflict, "new reserve price must be lower than the current reserve"
	case errors.Is(err, offererrors.ErrReserveBelowBid):
		return http.StatusConflict, "new reserve price must stay above the current highest bid"
	case errors.Is(err, offererrors.ErrNotReactivatable):
		return http.StatusConflict, "offer cannot be reactivated"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// HandleServiceError maps a service error, sends the JSON error response
// and logs it with the handler's context fields.
func HandleServiceError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["error"] = err.Error()
	utils.Error(handlerName+": request failed", ctx)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
