package handler

import (
	"net/http"

	model "auction-offers/internal/models"
	offer "auction-offers/internal/offerService"
	"auction-offers/services/negotiation/helpers"
	"auction-offers/utils"

	"github.com/gin-gonic/gin"
)

type OfferServiceInterface interface {
	SubmitOffer(auctionID, buyerID, buyerUsername string, amount float64, message string) (model.Offer, error)
	CounterOffer(offerID, auctionID string, amount float64, message string) (model.Offer, error)
	AcceptCounter(auctionID, offerID, buyerID string) (model.Offer, model.Auction, error)
	RespondToOffer(offerID, auctionID, response, message string) (model.Offer, model.Auction, error)
	WithdrawOffer(auctionID, offerID, buyerID string) (model.Offer, model.Auction, error)
	CancelOffer(offerID, auctionID, reason string) (model.Offer, error)
	ReactivateOffer(offerID, auctionID, reason string) (model.Offer, model.Auction, error)
	ListAllOffers() ([]offer.OfferRecord, error)
	OfferStats() (model.OfferStats, error)
}

type OfferHandler struct {
	service OfferServiceInterface
}

func NewOfferHandler(service OfferServiceInterface) *OfferHandler {
	return &OfferHandler{service: service}
}

// SubmitOfferHandler handles POST /api/v1/offers/auction/:auction_id
func (h *OfferHandler) SubmitOfferHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.SubmitOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitOfferHandler", err)
		return
	}

	o, err := h.service.SubmitOffer(auctionID, req.BuyerID, req.BuyerUsername, req.Amount, req.Message)
	if err != nil {
		helpers.HandleServiceError(c, "SubmitOfferHandler", err, map[string]any{
			"auction_id": auctionID,
			"buyer_id":   req.BuyerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"offer": helpers.NewOfferResponse(o, false)}, "offer submitted successfully")
	helpers.LogSuccess("SubmitOfferHandler", "offer submitted successfully", map[string]any{
		"offer_id":   o.OfferID,
		"auction_id": o.AuctionID,
		"buyer_id":   o.BuyerID,
		"amount":     o.Amount,
	})
}

// AcceptCounterHandler handles POST /api/v1/offers/auction/:auction_id/offer/:offer_id/accept-counter
func (h *OfferHandler) AcceptCounterHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	offerID := c.Param("offer_id")

	var req helpers.BuyerActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AcceptCounterHandler", err)
		return
	}

	o, auction, err := h.service.AcceptCounter(auctionID, offerID, req.BuyerID)
	if err != nil {
		helpers.HandleServiceError(c, "AcceptCounterHandler", err, map[string]any{
			"auction_id": auctionID,
			"offer_id":   offerID,
			"buyer_id":   req.BuyerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"offer":   helpers.NewOfferResponse(o, false),
		"auction": auction,
	}, "counter offer accepted")
	helpers.LogSuccess("AcceptCounterHandler", "counter offer accepted", map[string]any{
		"offer_id":    o.OfferID,
		"auction_id":  auction.AuctionID,
		"final_price": auction.FinalPrice,
	})
}

// WithdrawOfferHandler handles POST /api/v1/offers/auction/:auction_id/offer/:offer_id/withdraw
func (h *OfferHandler) WithdrawOfferHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	offerID := c.Param("offer_id")

	var req helpers.BuyerActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "WithdrawOfferHandler", err)
		return
	}

	o, auction, err := h.service.WithdrawOffer(auctionID, offerID, req.BuyerID)
	if err != nil {
		helpers.HandleServiceError(c, "WithdrawOfferHandler", err, map[string]any{
			"auction_id": auctionID,
			"offer_id":   offerID,
			"buyer_id":   req.BuyerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"offer":   helpers.NewOfferResponse(o, false),
		"auction": auction,
	}, "offer withdrawn")
	helpers.LogSuccess("WithdrawOfferHandler", "offer withdrawn", map[string]any{
		"offer_id":   o.OfferID,
		"auction_id": auctionID,
	})
}

// ListAllOffersHandler handles GET /api/v1/offers/admin/all
func (h *OfferHandler) ListAllOffersHandler(c *gin.Context) {
	records, err := h.service.ListAllOffers()
	if err != nil {
		helpers.HandleServiceError(c, "ListAllOffersHandler", err, nil)
		return
	}

	offers := make([]helpers.OfferResponse, 0, len(records))
	for _, r := range records {
		offers = append(offers, helpers.NewOfferResponse(r.Offer, r.CanBeReactivated))
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"offers": offers}, "offers retrieved successfully")
	helpers.LogSuccess("ListAllOffersHandler", "offers retrieved successfully", map[string]any{
		"count": len(offers),
	})
}

// OfferStatsHandler handles GET /api/v1/offers/admin/stats
func (h *OfferHandler) OfferStatsHandler(c *gin.Context) {
	stats, err := h.service.OfferStats()
	if err != nil {
		helpers.HandleServiceError(c, "OfferStatsHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"stats": stats}, "offer stats retrieved successfully")
	helpers.LogSuccess("OfferStatsHandler", "offer stats retrieved successfully", map[string]any{
		"total": stats.Total,
	})
}

// RespondToOfferHandler handles POST /api/v1/offers/admin/:offer_id/respond
func (h *OfferHandler) RespondToOfferHandler(c *gin.Context) {
	offerID := c.Param("offer_id")

	var req helpers.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RespondToOfferHandler", err)
		return
	}

	o, auction, err := h.service.RespondToOffer(offerID, req.AuctionID, req.Response, req.Message)
	if err != nil {
		helpers.HandleServiceError(c, "RespondToOfferHandler", err, map[string]any{
			"offer_id":   offerID,
			"auction_id": req.AuctionID,
			"response":   req.Response,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"offer":   helpers.NewOfferResponse(o, false),
		"auction": auction,
	}, "offer response recorded")
	helpers.LogSuccess("RespondToOfferHandler", "offer response recorded", map[string]any{
		"offer_id": o.OfferID,
		"status":   string(o.Status),
	})
}

// CounterOfferHandler handles POST /api/v1/offers/admin/:offer_id/counter
func (h *OfferHandler) CounterOfferHandler(c *gin.Context) {
	offerID := c.Param("offer_id")

	var req helpers.CounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CounterOfferHandler", err)
		return
	}

	o, err := h.service.CounterOffer(offerID, req.AuctionID, req.Amount, req.Message)
	if err != nil {
		helpers.HandleServiceError(c, "CounterOfferHandler", err, map[string]any{
			"offer_id":   offerID,
			"auction_id": req.AuctionID,
			"amount":     req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"offer": helpers.NewOfferResponse(o, false)}, "counter offer recorded")
	helpers.LogSuccess("CounterOfferHandler", "counter offer recorded", map[string]any{
		"offer_id":       o.OfferID,
		"counter_amount": req.Amount,
	})
}

// CancelOfferHandler handles POST /api/v1/offers/admin/:offer_id/cancel
func (h *OfferHandler) CancelOfferHandler(c *gin.Context) {
	offerID := c.Param("offer_id")

	var req helpers.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CancelOfferHandler", err)
		return
	}

	o, err := h.service.CancelOffer(offerID, req.AuctionID, req.Reason)
	if err != nil {
		helpers.HandleServiceError(c, "CancelOfferHandler", err, map[string]any{
			"offer_id":   offerID,
			"auction_id": req.AuctionID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"offer": helpers.NewOfferResponse(o, false)}, "offer cancelled")
	helpers.LogSuccess("CancelOfferHandler", "offer cancelled", map[string]any{
		"offer_id": o.OfferID,
		"reason":   req.Reason,
	})
}

// ReactivateOfferHandler handles POST /api/v1/offers/:offer_id/reactivate
func (h *OfferHandler) ReactivateOfferHandler(c *gin.Context) {
	offerID := c.Param("offer_id")

	var req helpers.ReactivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ReactivateOfferHandler", err)
		return
	}

	o, auction, err := h.service.ReactivateOffer(offerID, req.AuctionID, req.Reason)
	if err != nil {
		helpers.HandleServiceError(c, "ReactivateOfferHandler", err, map[string]any{
			"offer_id":   offerID,
			"auction_id": req.AuctionID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"offer":   helpers.NewOfferResponse(o, false),
		"auction": auction,
	}, "offer reactivated and accepted")
	helpers.LogSuccess("ReactivateOfferHandler", "offer reactivated and accepted", map[string]any{
		"offer_id":    o.OfferID,
		"auction_id":  auction.AuctionID,
		"final_price": auction.FinalPrice,
	})
}
