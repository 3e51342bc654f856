package main

import (
	"fmt"
	"os"
	"time"

	"auction-house/internal/bank"
	"auction-house/internal/config"
	"auction-house/internal/container"
	"auction-house/internal/mail"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	"auction-house/internal/tags"
	"auction-house/internal/transfer"
	"auction-house/internal/world"
	"auction-house/utils"

	auction "auction-house/internal/auctionService"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.LogLevel)

	repo, err := repository.OpenSQLite(cfg.DBDSN)
	if err != nil {
		utils.Fatal("failed to open listing store", map[string]any{"dsn": cfg.DBDSN, "error": err.Error()})
	}
	defer repo.Close()

	w := world.NewWorld()
	seedWorld(w)

	registry := container.NewRegistry(func(listingID uint32) (uint32, bool) {
		listing, err := repo.GetListing(listingID)
		if err != nil {
			return 0, false
		}
		return listing.SellerID, true
	})

	auctionSvc := auction.NewAuctionService(auction.Deps{
		DB:       repo,
		World:    w,
		Transfer: transfer.NewService(),
		Tags:     tags.NewRegistry(),
		Registry: registry,
		Mail:     mail.NewManager(w.Now),
		Bank:     bank.NewManager(),
	})

	go sweepExpired(auctionSvc, time.Duration(cfg.ExpirySweepSeconds)*time.Second)

	router := server.SetupRouter(auctionSvc, w)

	addr := ":" + cfg.Port
	fmt.Printf("Starting auction house on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// sweepExpired periodically closes listings past their end time.
func sweepExpired(svc *auction.AuctionService, every time.Duration) {
	for range time.Tick(every) {
		closed, err := svc.CompleteExpiredListings()
		if err != nil {
			utils.Error("expiry sweep failed", map[string]any{"error": err.Error()})
			continue
		}
		if closed > 0 {
			utils.Info("closed expired listings", map[string]any{"count": closed})
		}
	}
}

// seedWorld registers the currency catalog and a few sample characters so
// the house is usable out of the box.
func seedWorld(w *world.World) {
	w.RegisterCurrency(world.CurrencyDefinition{Wcid: 273, Name: "Pyreal", IconID: 9913})
	w.RegisterCurrency(world.CurrencyDefinition{Wcid: 20630, Name: "Trade Note (10,000)", IconID: 6868})

	alice := w.AddPlayer(1001, "Alice")
	sword := w.NewItem(300, "Training Sword", 1, 1)
	sword.Value = 150
	if err := alice.AddItem(sword); err != nil {
		utils.Warn("failed to seed item", map[string]any{"player": alice.Name, "error": err.Error()})
	}
	coins := w.NewItem(273, "Pyreal", 5000, 25000)
	if err := alice.AddItem(coins); err != nil {
		utils.Warn("failed to seed item", map[string]any{"player": alice.Name, "error": err.Error()})
	}

	bob := w.AddPlayer(1002, "Bob")
	bobCoins := w.NewItem(273, "Pyreal", 12000, 25000)
	if err := bob.AddItem(bobCoins); err != nil {
		utils.Warn("failed to seed item", map[string]any{"player": bob.Name, "error": err.Error()})
	}
}
