package handler

import (
	"errors"
	"net/http"

	model "auction-offers/internal/models"
	"auction-offers/internal/offererrors"
	"auction-offers/services/negotiation/helpers"
	"auction-offers/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	CreateAuction(title, sellerID string, startingPrice, reservePrice float64, allowOffers bool) (model.Auction, error)
	GetAuction(auctionID string) (model.Auction, error)
	ListAuctions() ([]model.Auction, error)
	PlaceBid(auctionID, userID string, amount float64) (model.Bid, model.Auction, error)
	ListBids(auctionID string) ([]model.Bid, error)
	LowerReserve(auctionID string, newReserve float64) (model.Auction, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateAuctionHandler handles POST /api/v1/auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	auction, err := h.service.CreateAuction(req.Title, req.SellerID, req.StartingPrice, req.ReservePrice, req.AllowOffers)
	if err != nil {
		helpers.HandleServiceError(c, "CreateAuctionHandler", err, map[string]any{
			"title":     req.Title,
			"seller_id": req.SellerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"auction": auction}, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"slug":       auction.Slug,
	})
}

// GetAuctionHandler handles GET /api/v1/auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	auction, err := h.service.GetAuction(auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auction": auction}, "auction retrieved successfully")
}

// ListAuctionsHandler handles GET /api/v1/auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.ListAuctions()
	if err != nil {
		helpers.HandleServiceError(c, "ListAuctionsHandler", err, nil)
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auctions": auctions}, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"count": len(auctions),
	})
}

// PlaceBidHandler handles POST /api/v1/auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, auction, err := h.service.PlaceBid(auctionID, req.UserID, req.Amount)
	if err != nil {
		helpers.HandleServiceError(c, "PlaceBidHandler", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    req.UserID,
			"amount":     req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{
		"bid":     helpers.NewBidResponse(bid),
		"auction": auction,
	}, "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": auctionID,
		"amount":     bid.Amount,
	})
}

// ListBidsHandler handles GET /api/v1/auctions/:auction_id/bids
func (h *AuctionHandler) ListBidsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	bids, err := h.service.ListBids(auctionID)
	if err != nil && !errors.Is(err, offererrors.ErrNoBids) {
		helpers.HandleServiceError(c, "ListBidsHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	responses := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		responses = append(responses, helpers.NewBidResponse(b))
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"bids": responses}, "bids retrieved successfully")
	helpers.LogSuccess("ListBidsHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(responses),
	})
}

// LowerReserveHandler handles PATCH /api/v1/auctions/:auction_id/lower-reserve
func (h *AuctionHandler) LowerReserveHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.LowerReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LowerReserveHandler", err)
		return
	}

	auction, err := h.service.LowerReserve(auctionID, req.NewReservePrice)
	if err != nil {
		helpers.HandleServiceError(c, "LowerReserveHandler", err, map[string]any{
			"auction_id":  auctionID,
			"new_reserve": req.NewReservePrice,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auction": auction}, "reserve price lowered")
	helpers.LogSuccess("LowerReserveHandler", "reserve price lowered", map[string]any{
		"auction_id":  auction.AuctionID,
		"new_reserve": auction.ReservePrice,
	})
}
