// cmd/server/main.go
package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/macgtech/storefront/internal/adapters/banktransfer"
	"github.com/macgtech/storefront/internal/adapters/coinbase"
	"github.com/macgtech/storefront/internal/adapters/httpserver"
	"github.com/macgtech/storefront/internal/adapters/ledger"
	"github.com/macgtech/storefront/internal/adapters/redis"
	"github.com/macgtech/storefront/internal/adapters/stripe"
	"github.com/macgtech/storefront/internal/application"
	"github.com/macgtech/storefront/pkg/auth"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("failed to load env variables", err)
	}

	ledgerURL := os.Getenv("LEDGER_API_URL")
	if ledgerURL == "" {
		log.Fatal("LEDGER_API_URL is required")
	}
	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "http://localhost:3000"
	}
	currency := os.Getenv("CHECKOUT_CURRENCY")
	if currency == "" {
		currency = "nzd"
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	ledgerClient := ledger.NewClient(ledgerURL, ledger.DefaultTimeout)

	cache := redis.NewCache(
		os.Getenv("REDIS_ADDR"),
		os.Getenv("REDIS_USERNAME"),
		os.Getenv("REDIS_PASSWORD"),
		0,
		30*time.Minute,
		5*time.Minute,
	)
	if err := cache.Ping(context.Background()); err != nil {
		log.Fatalf("failed to connect to Redis: %v", err)
	}

	cardAdapter := stripe.New(
		os.Getenv("STRIPE_SECRET_KEY"),
		os.Getenv("STRIPE_WEBHOOK_SECRET"),
		siteURL,
		currency,
	)
	cryptoAdapter := coinbase.New(
		os.Getenv("COINBASE_API_KEY"),
		os.Getenv("COINBASE_WEBHOOK_SECRET"),
		siteURL,
		strings.ToUpper(currency),
	)
	notifier := banktransfer.NewNotifier(
		ledgerClient,
		os.Getenv("BANK_NAME"),
		os.Getenv("BANK_ACCOUNT_NUMBER"),
	)

	tokens := authTokens(jwtSecret)
	authService := application.NewAuthService(ledgerClient, tokens)
	orderService := application.NewOrderService(ledgerClient, cache, cardAdapter, cryptoAdapter, notifier)
	catalogService := application.NewCatalogService(ledgerClient, cache)
	cartService := application.NewCartService(ledgerClient)

	srv := httpserver.NewServer(httpserver.Config{
		Auth:         authService,
		Orders:       orderService,
		Catalog:      catalogService,
		Cart:         cartService,
		Tokens:       tokens,
		Card:         cardAdapter,
		Crypto:       cryptoAdapter,
		LedgerURL:    ledgerURL,
		AllowOrigins: splitOrigins(os.Getenv("ALLOW_ORIGINS")),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("storefront listening on :%s", port)
	if err := srv.Router().Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func authTokens(secret string) *auth.TokenIssuer {
	return auth.NewTokenIssuer(secret, application.FreshLoginWindow)
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
