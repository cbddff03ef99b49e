package main

import (
	auction "auction-offers/internal/auctionService"
	"auction-offers/internal/auth"
	"auction-offers/internal/config"
	offer "auction-offers/internal/offerService"
	"auction-offers/internal/repository"
	"auction-offers/internal/server"
	"auction-offers/utils"
	"fmt"
	"os"
	"time"
)

func main() {

	cfg := config.NewConfig()

	repo, cleanup, err := newRepo(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize storage: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	offerSvc := offer.NewOfferService(repo, cfg.OfferTTL)
	auctionSvc := auction.NewAuctionService(repo, cfg.EnforceBidFloor)
	tokens := auth.NewTokenManager(cfg.JWTSecret)

	startExpirySweep(offerSvc, cfg.SweepInterval)

	router := server.SetupRouter(offerSvc, auctionSvc, tokens)

	addr := ":" + cfg.Port
	fmt.Printf("Starting offer negotiation server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// newRepo selects the storage backend from config
func newRepo(cfg *config.Config) (repository.NegotiationDB, func(), error) {
	switch cfg.DBBackend {
	case "sqlite":
		repo, err := repository.NewSQLiteRepo(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { repo.Close() }, nil
	case "memory":
		return repository.NewMemoryRepo(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown DB_BACKEND %q", cfg.DBBackend)
	}
}

// startExpirySweep runs the time-driven pending/countered -> expired
// transition on a fixed interval. Expiry never happens inside a request
// handler.
func startExpirySweep(svc *offer.OfferService, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		utils.Info("offer expiry sweep started", map[string]any{"interval": interval.String()})

		for range ticker.C {
			expired, err := svc.ExpireDueOffers(time.Now().UTC())
			if err != nil {
				utils.Error("offer expiry sweep failed", map[string]any{"error": err.Error()})
				continue
			}
			if expired > 0 {
				utils.Info("offers expired", map[string]any{"count": expired})
			}
		}
	}()
}
