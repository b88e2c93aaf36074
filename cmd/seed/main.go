// Provisions a shop account. There is no public signup surface; operators
// run this against the target database when onboarding a tenant.
//
//	go run ./cmd/seed -domain demo.myshopify.com -name "Demo Shop" -password secret123
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"timebar/internal/domain/shop"
	"timebar/internal/infra/db"
	"timebar/internal/infra/repository"
	"timebar/internal/pkg/config"
	"timebar/internal/pkg/password"

	"github.com/google/uuid"
)

func main() {
	domainFlag := flag.String("domain", "", "shop domain (tenant key)")
	nameFlag := flag.String("name", "", "display name")
	passwordFlag := flag.String("password", "", "admin password (min 8 chars)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	domain, err := shop.NewDomain(*domainFlag)
	if err != nil {
		logger.Error("invalid domain", "error", err)
		os.Exit(1)
	}
	if *nameFlag == "" {
		logger.Error("name is required")
		os.Exit(1)
	}
	if _, err := shop.NewPassword(*passwordFlag); err != nil {
		logger.Error("invalid password", "error", err)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	hash, err := password.HashPassword(*passwordFlag)
	if err != nil {
		logger.Error("failed to hash password", "error", err)
		os.Exit(1)
	}

	s := shop.NewShop(uuid.New(), domain, *nameFlag, time.Now())
	repo := repository.NewShopRepository(pool, logger)
	if err := repo.Create(ctx, s, hash); err != nil {
		logger.Error("failed to create shop", "error", err)
		os.Exit(1)
	}

	logger.Info("shop created", "id", s.ID(), "domain", s.Domain().String())
}
