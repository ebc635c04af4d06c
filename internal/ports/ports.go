// internal/ports/ports.go
package ports

import (
	"context"

	"github.com/macgtech/storefront/internal/domain"
)

// LedgerPort is the spreadsheet-backed API of record for users, carts and
// orders. Every call is one request/response action; the ledger owns all
// durable state. Implementations must bound each call and return
// domain.ErrUpstreamTimeout when the bound is exceeded.
type LedgerPort interface {
	GetProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)

	GetUser(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) error
	UpdateUser(ctx context.Context, user *domain.User) error
	ValidateLogin(ctx context.Context, email, password string) error
	ConfirmRecentLogin(ctx context.Context, email string) (*domain.User, error)
	SetupPassword(ctx context.Context, token, passwordHash string) error
	SendPasswordSetupEmail(ctx context.Context, email string) error

	GetCart(ctx context.Context, email string) ([]domain.CartItem, error)
	UpdateCart(ctx context.Context, email string, items []domain.CartItem) error
	UpdateCartEmail(ctx context.Context, oldEmail, newEmail string) error

	// CreateOrder sends the processPayment action. The ledger assigns and
	// returns the order id; the row starts as Pending Payment.
	CreateOrder(ctx context.Context, order *domain.Order) (string, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
	MarkOrderPaid(ctx context.Context, orderID, paymentIntent string) error
	ConfirmPayment(ctx context.Context, orderID string) error
	OrderDetails(ctx context.Context, orderID string) (*domain.Order, error)
	UserOrders(ctx context.Context, email string) ([]domain.Order, error)

	SendBankTransferEmail(ctx context.Context, email, name, orderID string, amount float64) error
}

type CachePort interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Ping(ctx context.Context) error
}

// CardProviderPort creates hosted card checkout sessions and verifies
// provider webhooks. VerifyWebhook must check the signature before reading
// any payload field and return domain.ErrWebhookVerification on mismatch.
type CardProviderPort interface {
	CreateSession(ctx context.Context, orderID string, amount float64, email, name string) (string, error)
	VerifyWebhook(payload []byte, signatureHeader string) (*domain.PaymentEvent, error)
}

// CryptoProviderPort creates fixed-price charges on the crypto processor.
// Same webhook contract as CardProviderPort.
type CryptoProviderPort interface {
	CreateCharge(ctx context.Context, orderID string, amount float64, email, name string) (string, error)
	VerifyWebhook(payload []byte, signatureHeader string) (*domain.PaymentEvent, error)
}

// NotifierPort delivers the out-of-band bank transfer instructions and
// exposes the static details shown on the payment-pending view.
type NotifierPort interface {
	Notify(ctx context.Context, email, name, orderID string, amount float64) error
	Details(orderID string) *domain.BankDetails
}
