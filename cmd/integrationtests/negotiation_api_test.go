package integrationtests

import (
	"net/http"
	"testing"
	"time"

	"auction-offers/internal/auth"
	"auction-offers/services/negotiation/helpers"

	"github.com/stretchr/testify/require"
)

// Full buyer/seller negotiation round trip: offer, counter, accept-counter.
func TestCounterOfferNegotiationFlow(t *testing.T) {
	router, adminToken := SetupTestRouter(t, activeAuction("auction1"))

	// Buyer submits an offer below the reserve.
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/api/v1/offers/auction/auction1", "", helpers.SubmitOfferRequest{
		BuyerID:       "buyer1",
		BuyerUsername: "buyer-one",
		Amount:        5000,
		Message:       "cash buyer, can collect this week",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	o := offerData(t, resp)
	offerID := o["offer_id"].(string)
	require.NotEmpty(t, offerID)
	require.Equal(t, "pending", o["status"])
	require.Equal(t, "Awaiting Response", o["status_label"])

	createdAt, err := time.Parse(time.RFC3339, o["created_at"].(string))
	require.NoError(t, err)
	expiresAt, err := time.Parse(time.RFC3339, o["expires_at"].(string))
	require.NoError(t, err)
	require.Equal(t, createdAt.Add(testTTL), expiresAt)

	// Seller counters at 5500.
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/api/v1/offers/admin/"+offerID+"/counter", adminToken, helpers.CounterRequest{
		AuctionID: "auction1",
		Amount:    5500,
		Message:   "can do 5500",
	})
	require.Equal(t, http.StatusOK, w.Code)

	o = offerData(t, resp)
	require.Equal(t, "countered", o["status"])
	counter := o["counter_offer"].(map[string]any)
	require.Equal(t, 5500.0, counter["amount"])

	// Countering resets the expiry window.
	counteredExpiry, err := time.Parse(time.RFC3339, o["expires_at"].(string))
	require.NoError(t, err)
	require.False(t, counteredExpiry.Before(expiresAt))

	// Buyer accepts the counter: offer accepted, auction ends at 5500.
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/api/v1/offers/auction/auction1/offer/"+offerID+"/accept-counter", "", helpers.BuyerActionRequest{
		BuyerID: "buyer1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	o = offerData(t, resp)
	require.Equal(t, "accepted", o["status"])
	// the counter survives on the accepted offer as the price provenance
	counter = o["counter_offer"].(map[string]any)
	require.Equal(t, 5500.0, counter["amount"])

	data := resp["data"].(map[string]any)
	auction := data["auction"].(map[string]any)
	require.Equal(t, "ended", auction["status"])
	require.Equal(t, "buyer1", auction["winner_id"])
	require.Equal(t, 5500.0, auction["final_price"])

	// The ended auction no longer accepts offers.
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/api/v1/offers/auction/auction1", "", helpers.SubmitOfferRequest{
		BuyerID: "buyer2",
		Amount:  6000,
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

// Accepting one offer rejects every other live offer on the auction.
func TestAdminAcceptRejectsSiblings(t *testing.T) {
	router, adminToken := SetupTestRouter(t, activeAuction("auction1"))

	submit := func(buyerID string, amount float64) string {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/api/v1/offers/auction/auction1", "", helpers.SubmitOfferRequest{
			BuyerID: buyerID,
			Amount:  amount,
		})
		require.Equal(t, http.StatusCreated, w.Code)
		return offerData(t, resp)["offer_id"].(string)
	}

	winnerOffer := submit("buyer1", 4000)
	submit("buyer2", 3500)
	submit("buyer3", 3800)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/api/v1/offers/admin/"+winnerOffer+"/respond", adminToken, helpers.RespondRequest{
		AuctionID: "auction1",
		Response:  "accept",
		Message:   "sold",
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]any)
	auction := data["auction"].(map[string]any)
	require.Equal(t, "ended", auction["status"])
	require.Equal(t, "buyer1", auction["winner_id"])
	require.Equal(t, 4000.0, auction["final_price"])

	// Sibling offers were force-rejected.
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/api/v1/offers/admin/all", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	offers := resp["data"].(map[string]any)["offers"].([]any)
	require.Len(t, offers, 3)

	statusByBuyer := map[string]string{}
	for _, raw := range offers {
		o := raw.(map[string]any)
		statusByBuyer[o["buyer_id"].(string)] = o["status"].(string)
	}
	require.Equal(t, "accepted", statusByBuyer["buyer1"])
	require.Equal(t, "rejected", statusByBuyer["buyer2"])
	require.Equal(t, "rejected", statusByBuyer["buyer3"])
}

// Withdraw works on live offers only, and the state machine refuses repeats.
func TestWithdrawAndTransitionGuards(t *testing.T) {
	router, _ := SetupTestRouter(t, activeAuction("auction1"))

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/api/v1/offers/auction/auction1", "", helpers.SubmitOfferRequest{
		BuyerID: "buyer1",
		Amount:  5000,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	offerID := offerData(t, resp)["offer_id"].(string)

	// accept-counter before any counter exists is an invalid transition
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/api/v1/offers/auction/auction1/offer/"+offerID+"/accept-counter", "", helpers.BuyerActionRequest{BuyerID: "buyer1"})
	require.Equal(t, http.StatusConflict, w.Code)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/api/v1/offers/auction/auction1/offer/"+offerID+"/withdraw", "", helpers.BuyerActionRequest{BuyerID: "buyer1"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "withdrawn", offerData(t, resp)["status"])

	// withdrawn is terminal
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/api/v1/offers/auction/auction1/offer/"+offerID+"/withdraw", "", helpers.BuyerActionRequest{BuyerID: "buyer1"})
	require.Equal(t, http.StatusConflict, w.Code)

	// withdrawing frees the buyer to make a fresh offer
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/api/v1/offers/auction/auction1", "", helpers.SubmitOfferRequest{
		BuyerID: "buyer1",
		Amount:  5200,
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

// A buyer can hold at most one live offer per auction.
func TestDuplicateLiveOfferBlocked(t *testing.T) {
	router, _ := SetupTestRouter(t, activeAuction("auction1"))

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/api/v1/offers/auction/auction1", "", helpers.SubmitOfferRequest{
		BuyerID: "buyer1",
		Amount:  5000,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/api/v1/offers/auction/auction1", "", helpers.SubmitOfferRequest{
		BuyerID: "buyer1",
		Amount:  5200,
	})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "an offer is already live on this auction", resp["message"])
}

// Rejected offers on a still-open auction can be reactivated straight
// into acceptance by an admin.
func TestReactivateRejectedOffer(t *testing.T) {
	router, adminToken := SetupTestRouter(t, activeAuction("auction1"))

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/api/v1/offers/auction/auction1", "", helpers.SubmitOfferRequest{
		BuyerID: "buyer1",
		Amount:  5000,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	offerID := offerData(t, resp)["offer_id"].(string)

	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/api/v1/offers/admin/"+offerID+"/respond", adminToken, helpers.RespondRequest{
		AuctionID: "auction1",
		Response:  "reject",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// The admin dashboard flags the rejected offer as reactivatable.
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/api/v1/offers/admin/all", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	offers := resp["data"].(map[string]any)["offers"].([]any)
	require.Len(t, offers, 1)
	require.Equal(t, true, offers[0].(map[string]any)["can_be_reactivated"])

	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/api/v1/offers/"+offerID+"/reactivate", adminToken, helpers.ReactivateRequest{
		AuctionID: "auction1",
		Reason:    "rejected in error",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "accepted", offerData(t, resp)["status"])

	auction := resp["data"].(map[string]any)["auction"].(map[string]any)
	require.Equal(t, "ended", auction["status"])
	require.Equal(t, "buyer1", auction["winner_id"])

	// A second reactivation attempt fails: the auction is sold.
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/api/v1/offers/"+offerID+"/reactivate", adminToken, helpers.ReactivateRequest{
		AuctionID: "auction1",
		Reason:    "again",
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

// Admin cancel is terminal and records the reason.
func TestAdminCancelOffer(t *testing.T) {
	router, adminToken := SetupTestRouter(t, activeAuction("auction1"))

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/api/v1/offers/auction/auction1", "", helpers.SubmitOfferRequest{
		BuyerID: "buyer1",
		Amount:  5000,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	offerID := offerData(t, resp)["offer_id"].(string)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/api/v1/offers/admin/"+offerID+"/cancel", adminToken, helpers.CancelRequest{
		AuctionID: "auction1",
		Reason:    "listing withdrawn by seller",
	})
	require.Equal(t, http.StatusOK, w.Code)

	o := offerData(t, resp)
	require.Equal(t, "cancelled", o["status"])
	require.Equal(t, "listing withdrawn by seller", o["cancel_reason"])

	// No further transitions out of cancelled.
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/api/v1/offers/auction/auction1/offer/"+offerID+"/withdraw", "", helpers.BuyerActionRequest{BuyerID: "buyer1"})
	require.Equal(t, http.StatusConflict, w.Code)
}

// Reserve lowering via the admin route enforces the strict bounds.
func TestLowerReserveEndpoint(t *testing.T) {
	router, adminToken := SetupTestRouter(t, activeAuction("auction1"))

	tests := []struct {
		name       string
		newReserve float64
		wantStatus int
	}{
		{name: "equal_to_current", newReserve: 12000, wantStatus: http.StatusConflict},
		{name: "above_current", newReserve: 15000, wantStatus: http.StatusConflict},
		{name: "valid_lower", newReserve: 9000, wantStatus: http.StatusOK},
		{name: "no_longer_lower", newReserve: 9500, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, w := ExecuteRequestAndParse(t, router, http.MethodPatch, "/api/v1/auctions/auction1/lower-reserve", adminToken, helpers.LowerReserveRequest{
				NewReservePrice: tt.newReserve,
			})
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				auction := resp["data"].(map[string]any)["auction"].(map[string]any)
				require.Equal(t, tt.newReserve, auction["reserve_price"])
			}
		})
	}
}

// Admin routes demand a valid token with the admin role.
func TestAdminRouteAuth(t *testing.T) {
	router, adminToken := SetupTestRouter(t, activeAuction("auction1"))

	buyerToken, err := auth.NewTokenManager("test-secret").Generate("buyer1", "buyer")
	require.NoError(t, err)

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{name: "no_token", token: "", wantStatus: http.StatusUnauthorized},
		{name: "garbage_token", token: "not-a-jwt", wantStatus: http.StatusUnauthorized},
		{name: "non_admin_role", token: buyerToken, wantStatus: http.StatusForbidden},
		{name: "admin_token", token: adminToken, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/api/v1/offers/admin/all", tt.token, nil)
			require.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

// Stats aggregate over every offer regardless of state.
func TestOfferStatsEndpoint(t *testing.T) {
	router, adminToken := SetupTestRouter(t, activeAuction("auction1"), activeAuction("auction2"))

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/api/v1/offers/auction/auction1", "", helpers.SubmitOfferRequest{BuyerID: "buyer1", Amount: 5000})
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/api/v1/offers/auction/auction2", "", helpers.SubmitOfferRequest{BuyerID: "buyer2", Amount: 4000})
	require.Equal(t, http.StatusCreated, w.Code)
	acceptedID := offerData(t, resp)["offer_id"].(string)

	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/api/v1/offers/admin/"+acceptedID+"/respond", adminToken, helpers.RespondRequest{
		AuctionID: "auction2",
		Response:  "accept",
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/api/v1/offers/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	stats := resp["data"].(map[string]any)["stats"].(map[string]any)
	require.Equal(t, 2.0, stats["total"])
	require.Equal(t, 4000.0, stats["accepted_value"])

	byStatus := stats["by_status"].(map[string]any)
	require.Equal(t, 1.0, byStatus["pending"])
	require.Equal(t, 1.0, byStatus["accepted"])
}
