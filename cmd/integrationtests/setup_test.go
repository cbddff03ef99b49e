package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	auction "auction-offers/internal/auctionService"
	"auction-offers/internal/auth"
	model "auction-offers/internal/models"
	offer "auction-offers/internal/offerService"
	"auction-offers/internal/repository"
	"auction-offers/internal/server"

	"github.com/gin-gonic/gin"
)

const testTTL = 48 * time.Hour

// SetupTestRouter initializes the router with an in-memory repository for
// integration testing and seeds it with the given auctions. The returned
// token is valid for the admin-only routes.
func SetupTestRouter(t *testing.T, auctions ...model.Auction) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	for _, a := range auctions {
		if err := repo.CreateAuction(a); err != nil {
			t.Fatalf("failed to seed auction: %v", err)
		}
	}

	offerService := offer.NewOfferService(repo, testTTL)
	auctionService := auction.NewAuctionService(repo, false)
	tokens := auth.NewTokenManager("test-secret")

	adminToken, err := tokens.Generate("admin1", auth.RoleAdmin)
	if err != nil {
		t.Fatalf("failed to mint admin token: %v", err)
	}

	return server.SetupRouter(offerService, auctionService, tokens), adminToken
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the response envelope. An empty token sends no Authorization header.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// activeAuction returns a seedable active auction that accepts offers.
func activeAuction(id string) model.Auction {
	return model.Auction{
		AuctionID:     id,
		Title:         "2016 Land Rover Defender 110",
		Slug:          "2016-land-rover-defender-110",
		SellerID:      "seller1",
		StartingPrice: 5000,
		ReservePrice:  12000,
		CurrentPrice:  5000,
		AllowOffers:   true,
		Status:        model.AuctionActive,
		CreatedAt:     time.Now().UTC(),
	}
}

// offerData extracts the offer payload from a success envelope.
func offerData(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	o, ok := data["offer"].(map[string]any)
	if !ok {
		t.Fatalf("response data has no offer object: %v", data)
	}
	return o
}
