package repository

import (
	model "auction-offers/internal/models"
	"auction-offers/internal/offererrors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Helper to create a new Auction
func newAuction(auctionID, title string) model.Auction {
	return model.Auction{
		AuctionID:     auctionID,
		Title:         title,
		SellerID:      "seller1",
		StartingPrice: 1000,
		ReservePrice:  8000,
		AllowOffers:   true,
		Status:        model.AuctionActive,
		CreatedAt:     time.Now().UTC(),
	}
}

// Helper to create a new Offer
func newOffer(offerID, auctionID, buyerID string, amount float64, status model.OfferStatus, expiresAt time.Time) model.Offer {
	return model.Offer{
		OfferID:   offerID,
		AuctionID: auctionID,
		BuyerID:   buyerID,
		Amount:    amount,
		Status:    status,
		CreatedAt: time.Now().UTC(),
		ExpiresAt: expiresAt,
	}
}

// Test auction CRUD
func TestMemoryRepo_Auctions(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()

	t.Run("create_and_get", func(t *testing.T) {
		a := newAuction("auction1", "Auction 1")
		require.NoError(t, repo.CreateAuction(a))

		got, err := repo.GetAuction("auction1")
		require.NoError(t, err)
		require.Equal(t, a, got)
	})

	t.Run("missing_auction_id", func(t *testing.T) {
		err := repo.CreateAuction(model.Auction{})
		require.Error(t, err)
	})

	t.Run("get_unknown", func(t *testing.T) {
		_, err := repo.GetAuction("auctionX")
		require.ErrorIs(t, err, offererrors.ErrAuctionNotFound)
	})

	t.Run("update", func(t *testing.T) {
		a := newAuction("auction2", "Auction 2")
		require.NoError(t, repo.CreateAuction(a))

		a.Status = model.AuctionEnded
		a.WinnerID = "buyer1"
		require.NoError(t, repo.UpdateAuction(a))

		got, err := repo.GetAuction("auction2")
		require.NoError(t, err)
		require.Equal(t, model.AuctionEnded, got.Status)
		require.Equal(t, "buyer1", got.WinnerID)
	})

	t.Run("update_unknown", func(t *testing.T) {
		err := repo.UpdateAuction(newAuction("auctionX", "Auction X"))
		require.ErrorIs(t, err, offererrors.ErrAuctionNotFound)
	})

	t.Run("list", func(t *testing.T) {
		auctions, err := repo.ListAuctions()
		require.NoError(t, err)
		require.Len(t, auctions, 2)
	})
}

// Test offer CRUD and the live-offer index
func TestMemoryRepo_Offers(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateAuction(newAuction("auction1", "Auction 1")))

	expiry := time.Now().UTC().Add(48 * time.Hour)

	t.Run("create_requires_auction", func(t *testing.T) {
		err := repo.CreateOffer(newOffer("offer0", "auctionX", "buyer1", 5000, model.StatusPending, expiry))
		require.ErrorIs(t, err, offererrors.ErrAuctionNotFound)
	})

	t.Run("create_and_get", func(t *testing.T) {
		o := newOffer("offer1", "auction1", "buyer1", 5000, model.StatusPending, expiry)
		require.NoError(t, repo.CreateOffer(o))

		got, err := repo.GetOffer("offer1")
		require.NoError(t, err)
		require.Equal(t, o, got)
	})

	t.Run("get_unknown", func(t *testing.T) {
		_, err := repo.GetOffer("offerX")
		require.ErrorIs(t, err, offererrors.ErrOfferNotFound)
	})

	t.Run("update", func(t *testing.T) {
		got, err := repo.GetOffer("offer1")
		require.NoError(t, err)

		got.Status = model.StatusCountered
		got.CounterOffer = &model.CounterOffer{Amount: 5500}
		require.NoError(t, repo.UpdateOffer(got))

		updated, err := repo.GetOffer("offer1")
		require.NoError(t, err)
		require.Equal(t, model.StatusCountered, updated.Status)
		require.NotNil(t, updated.CounterOffer)
	})

	t.Run("live_offer_by_buyer", func(t *testing.T) {
		o, err := repo.GetLiveOfferByBuyer("auction1", "buyer1")
		require.NoError(t, err)
		require.Equal(t, "offer1", o.OfferID)

		_, err = repo.GetLiveOfferByBuyer("auction1", "buyer-without-offers")
		require.ErrorIs(t, err, offererrors.ErrNoLiveOffer)
	})

	t.Run("terminal_offers_are_not_live", func(t *testing.T) {
		o := newOffer("offer2", "auction1", "buyer2", 4000, model.StatusWithdrawn, expiry)
		require.NoError(t, repo.CreateOffer(o))

		_, err := repo.GetLiveOfferByBuyer("auction1", "buyer2")
		require.ErrorIs(t, err, offererrors.ErrNoLiveOffer)
	})

	t.Run("list_by_auction_in_creation_order", func(t *testing.T) {
		offers, err := repo.ListOffersByAuction("auction1")
		require.NoError(t, err)
		require.Len(t, offers, 2)
		require.Equal(t, "offer1", offers[0].OfferID)
		require.Equal(t, "offer2", offers[1].OfferID)
	})
}

// Test ListDueOffers
func TestMemoryRepo_ListDueOffers(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateAuction(newAuction("auction1", "Auction 1")))

	now := time.Now().UTC()

	require.NoError(t, repo.CreateOffer(newOffer("overdue-pending", "auction1", "buyer1", 5000, model.StatusPending, now.Add(-time.Hour))))
	require.NoError(t, repo.CreateOffer(newOffer("overdue-countered", "auction1", "buyer2", 5000, model.StatusCountered, now.Add(-time.Minute))))
	require.NoError(t, repo.CreateOffer(newOffer("fresh", "auction1", "buyer3", 5000, model.StatusPending, now.Add(time.Hour))))
	// terminal offers never expire, even with a stale timestamp
	require.NoError(t, repo.CreateOffer(newOffer("already-rejected", "auction1", "buyer4", 5000, model.StatusRejected, now.Add(-time.Hour))))

	due, err := repo.ListDueOffers(now)
	require.NoError(t, err)

	ids := make([]string, 0, len(due))
	for _, o := range due {
		ids = append(ids, o.OfferID)
	}
	require.ElementsMatch(t, []string{"overdue-pending", "overdue-countered"}, ids)
}

// Test bid recording
func TestMemoryRepo_Bids(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateAuction(newAuction("auction1", "Auction 1")))

	t.Run("record_requires_auction", func(t *testing.T) {
		err := repo.RecordBid(model.Bid{BidID: "bid0", AuctionID: "auctionX", UserID: "user1", Amount: 1000})
		require.ErrorIs(t, err, offererrors.ErrAuctionNotFound)
	})

	t.Run("record_and_list", func(t *testing.T) {
		b1 := model.Bid{BidID: "bid1", AuctionID: "auction1", UserID: "user1", Amount: 1000, CreatedAt: time.Now().UTC()}
		b2 := model.Bid{BidID: "bid2", AuctionID: "auction1", UserID: "user2", Amount: 1500, CreatedAt: time.Now().UTC()}
		require.NoError(t, repo.RecordBid(b1))
		require.NoError(t, repo.RecordBid(b2))

		bids, err := repo.ListBidsByAuction("auction1")
		require.NoError(t, err)
		require.Equal(t, []model.Bid{b1, b2}, bids)
	})

	t.Run("no_bids", func(t *testing.T) {
		require.NoError(t, repo.CreateAuction(newAuction("auction2", "Auction 2")))
		_, err := repo.ListBidsByAuction("auction2")
		require.ErrorIs(t, err, offererrors.ErrNoBids)
	})
}

// concurrency test
func TestMemoryRepo_ConcurrentOffers(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateAuction(newAuction("auction1", "Auction 1")))

	var wg sync.WaitGroup
	concurrentCount := 50
	expiry := time.Now().UTC().Add(48 * time.Hour)

	for i := 0; i < concurrentCount; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			o := newOffer(fmt.Sprintf("offer-%d", i), "auction1", fmt.Sprintf("buyer-%d", i), float64(1000+i), model.StatusPending, expiry)
			require.NoError(t, repo.CreateOffer(o))
		}()
	}

	wg.Wait()

	offers, err := repo.ListOffersByAuction("auction1")
	require.NoError(t, err)
	require.Len(t, offers, concurrentCount)
}
