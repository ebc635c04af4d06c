// internal/adapters/httpserver/server.go
package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/macgtech/storefront/internal/application"
	"github.com/macgtech/storefront/internal/ports"
	"github.com/macgtech/storefront/pkg/auth"
)

// Server wires the application services onto the HTTP surface: the proxy
// gateway, the storefront API, the checkout endpoints and the provider
// webhooks.
type Server struct {
	auth    *application.AuthService
	orders  *application.OrderService
	catalog *application.CatalogService
	cart    *application.CartService
	tokens  *auth.TokenIssuer
	card    ports.CardProviderPort
	crypto  ports.CryptoProviderPort

	ledgerURL    string
	allowOrigins []string
	client       *http.Client
}

type Config struct {
	Auth         *application.AuthService
	Orders       *application.OrderService
	Catalog      *application.CatalogService
	Cart         *application.CartService
	Tokens       *auth.TokenIssuer
	Card         ports.CardProviderPort
	Crypto       ports.CryptoProviderPort
	LedgerURL    string
	AllowOrigins []string
}

func NewServer(cfg Config) *Server {
	return &Server{
		auth:         cfg.Auth,
		orders:       cfg.Orders,
		catalog:      cfg.Catalog,
		cart:         cfg.Cart,
		tokens:       cfg.Tokens,
		card:         cfg.Card,
		crypto:       cfg.Crypto,
		ledgerURL:    cfg.LedgerURL,
		allowOrigins: cfg.AllowOrigins,
		client:       &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.Use(requestID())
	if len(s.allowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     s.allowOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	api := r.Group("/api")

	api.Any("/proxy", s.proxy)

	api.GET("/products", s.listProducts)
	api.GET("/products/:productId", s.getProduct)

	api.POST("/register", s.register)
	api.POST("/login", s.login)
	api.POST("/setup-password", s.setupPassword)
	api.POST("/password-link", s.sendPasswordLink)

	// Checkout session creation and webhooks are called by the payment
	// providers and the provider-hosted pages, not by logged-in clients.
	api.POST("/stripe-checkout", s.stripeCheckout)
	api.POST("/coinbase/checkout", s.coinbaseCheckout)
	api.POST("/payments/stripe/webhook", s.stripeWebhook)
	api.POST("/coinbase/webhook", s.coinbaseWebhook)

	authed := api.Group("", s.requireAuth)
	{
		authed.GET("/user/profile", s.getProfile)
		authed.PUT("/user/profile", s.updateProfile)

		authed.GET("/cart", s.getCart)
		authed.PUT("/cart", s.replaceCart)
		authed.POST("/cart/clear", s.clearCart)

		authed.POST("/checkout", s.checkout)

		authed.GET("/orders", s.listOrders)
		authed.GET("/orders/:orderId", s.getOrder)
		authed.GET("/orders/:orderId/invoice", s.getInvoice)
		authed.POST("/orders/:orderId/confirm-payment", s.confirmPayment)
	}

	return r
}
