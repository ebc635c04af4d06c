// internal/application/order_service.go
package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/macgtech/storefront/internal/domain"
	"github.com/macgtech/storefront/internal/ports"
)

// OrderService is the order/payment lifecycle coordinator. It turns a cart
// snapshot into a ledger order, hands off to the chosen payment provider,
// and reconciles provider confirmation events back into order status. It is
// stateless between requests; every durable effect lives in the ledger.
type OrderService struct {
	ledger   ports.LedgerPort
	cache    ports.CachePort
	card     ports.CardProviderPort
	crypto   ports.CryptoProviderPort
	notifier ports.NotifierPort
}

func NewOrderService(ledger ports.LedgerPort, cache ports.CachePort, card ports.CardProviderPort, crypto ports.CryptoProviderPort, notifier ports.NotifierPort) *OrderService {
	return &OrderService{
		ledger:   ledger,
		cache:    cache,
		card:     card,
		crypto:   crypto,
		notifier: notifier,
	}
}

// DeliveryFee applies the regional fee policy against the delivery address:
// Auckland is free over a $100 subtotal and $5 under it, Wellington and
// Christchurch are a flat $8, everywhere else is $12.
func DeliveryFee(address string, subtotal float64) float64 {
	switch {
	case strings.Contains(address, "Auckland"):
		if subtotal >= 100 {
			return 0
		}
		return 5
	case strings.Contains(address, "Wellington"), strings.Contains(address, "Christchurch"):
		return 8
	default:
		return 12
	}
}

// CreateOrder validates the cart, prices the order and sends the
// processPayment action. The ledger assigns the order id and stores the row
// as Pending Payment; all three methods start pending. Not retried on
// failure, the caller resubmits.
func (s *OrderService) CreateOrder(ctx context.Context, email string, cart []domain.CartItem, deliveryAddress string, method domain.PaymentMethod) (*domain.Order, error) {
	if email == "" {
		return nil, errors.New("missing user email")
	}
	if len(cart) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if !method.Valid() {
		return nil, fmt.Errorf("unknown payment method %q", method)
	}

	items := make([]domain.CartItem, len(cart))
	copy(items, cart)
	var subtotal float64
	for i := range items {
		if items[i].Quantity < 1 {
			items[i].Quantity = 1
		}
		items[i].TotalPrice = float64(items[i].Quantity) * items[i].Price
		subtotal += items[i].TotalPrice
	}
	fee := DeliveryFee(deliveryAddress, subtotal)

	order := &domain.Order{
		UserEmail:       email,
		Items:           items,
		DeliveryAddress: deliveryAddress,
		DeliveryFee:     fee,
		TotalAmount:     subtotal + fee,
		PaymentMethod:   method,
		Status:          domain.StatusPendingPayment,
		CreatedAt:       time.Now(),
	}

	orderID, err := s.ledger.CreateOrder(ctx, order)
	if err != nil {
		if errors.Is(err, domain.ErrUpstreamTimeout) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrOrderCreation, err)
	}
	if orderID == "" {
		return nil, fmt.Errorf("%w: ledger returned no order id", domain.ErrOrderCreation)
	}
	order.OrderID = orderID

	s.invalidate(ctx, "orders:"+email)
	return order, nil
}

// InitiateCheckout produces the provider handoff for an existing order:
// a hosted session URL for card, a hosted charge URL for crypto, or the
// static bank details plus an emailed notification for bank transfer.
//
// A bank transfer notification failure is soft: the order already exists
// and stays Pending, so the handoff is returned alongside the wrapped
// ErrNotification for the caller to surface.
func (s *OrderService) InitiateCheckout(ctx context.Context, orderID string, amount float64, method domain.PaymentMethod, email, name string) (*domain.CheckoutHandoff, error) {
	if orderID == "" {
		return nil, errors.New("missing order id")
	}
	switch method {
	case domain.MethodCard:
		url, err := s.card.CreateSession(ctx, orderID, amount, email, name)
		if err != nil {
			return nil, err
		}
		return &domain.CheckoutHandoff{OrderID: orderID, RedirectURL: url}, nil
	case domain.MethodCrypto:
		url, err := s.crypto.CreateCharge(ctx, orderID, amount, email, name)
		if err != nil {
			return nil, err
		}
		return &domain.CheckoutHandoff{OrderID: orderID, RedirectURL: url}, nil
	case domain.MethodBankTransfer:
		handoff := &domain.CheckoutHandoff{OrderID: orderID, BankDetails: s.notifier.Details(orderID)}
		if err := s.notifier.Notify(ctx, email, name, orderID, amount); err != nil {
			return handoff, err
		}
		handoff.Notified = true
		return handoff, nil
	default:
		return nil, fmt.Errorf("unknown payment method %q", method)
	}
}

// Reconcile applies a verified provider event to order status. The order id
// must come from event metadata; the coordinator never guesses the order.
// Status updates are overwrites at the ledger, so repeated delivery of the
// same event is a no-op.
func (s *OrderService) Reconcile(ctx context.Context, event *domain.PaymentEvent) error {
	switch event.Type {
	case "checkout.session.completed":
		if event.OrderID == "" || event.PaymentIntent == "" {
			return fmt.Errorf("%w: missing orderId or paymentIntent", domain.ErrMalformedWebhook)
		}
		if err := s.ledger.MarkOrderPaid(ctx, event.OrderID, event.PaymentIntent); err != nil {
			return err
		}
	case "charge:confirmed":
		if event.OrderID == "" {
			return fmt.Errorf("%w: missing order_id", domain.ErrMalformedWebhook)
		}
		if err := s.ledger.UpdateOrderStatus(ctx, event.OrderID, domain.StatusPaid); err != nil {
			return err
		}
	case "charge:failed":
		if event.OrderID == "" {
			return fmt.Errorf("%w: missing order_id", domain.ErrMalformedWebhook)
		}
		if err := s.ledger.UpdateOrderStatus(ctx, event.OrderID, domain.StatusFailed); err != nil {
			return err
		}
	default:
		// Acknowledge without a state change.
		return nil
	}

	s.invalidate(ctx, "order:"+event.OrderID)
	s.invalidate(ctx, "orders:")
	return nil
}

// ConfirmBankTransfer is the single manual Pending Payment -> Paid trigger
// for bank transfer orders. Terminal orders never move back.
func (s *OrderService) ConfirmBankTransfer(ctx context.Context, orderID, email string) error {
	order, err := s.ledger.OrderDetails(ctx, orderID)
	if err != nil {
		return err
	}
	if order.UserEmail != email {
		return domain.ErrOrderNotFound
	}
	if order.PaymentMethod != domain.MethodBankTransfer {
		return fmt.Errorf("order %s is not a bank transfer order", orderID)
	}
	if order.Status == domain.StatusPaid {
		return nil
	}
	if !order.Status.CanTransitionTo(domain.StatusPaid) {
		return fmt.Errorf("order %s cannot move from %s to %s", orderID, order.Status, domain.StatusPaid)
	}
	if err := s.ledger.ConfirmPayment(ctx, orderID); err != nil {
		return err
	}
	s.invalidate(ctx, "order:"+orderID)
	s.invalidate(ctx, "orders:"+email)
	return nil
}

// Orders lists a user's orders, cache-aside against the ledger.
func (s *OrderService) Orders(ctx context.Context, email string) ([]domain.Order, error) {
	key := "orders:" + email
	if data, err := s.cache.Get(ctx, key); err == nil {
		var orders []domain.Order
		if err := json.Unmarshal(data, &orders); err == nil {
			return orders, nil
		}
	}

	orders, err := s.ledger.UserOrders(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, orders); err != nil {
		log.Printf("cache set failed for %s: %v", key, err)
	}
	return orders, nil
}

// OrderDetails fetches one order, cache-aside. Reconciliation and manual
// confirmation both invalidate the entry.
func (s *OrderService) OrderDetails(ctx context.Context, orderID string) (*domain.Order, error) {
	key := "order:" + orderID
	if data, err := s.cache.Get(ctx, key); err == nil {
		var order domain.Order
		if err := json.Unmarshal(data, &order); err == nil {
			return &order, nil
		}
	}

	order, err := s.ledger.OrderDetails(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, order); err != nil {
		log.Printf("cache set failed for %s: %v", key, err)
	}
	return order, nil
}

// Invoice derives the printable document for an order. Line prices are GST
// inclusive; the GST content of the total is total * 3/23 (15% rate).
func (s *OrderService) Invoice(ctx context.Context, orderID string) (*domain.Invoice, error) {
	order, err := s.OrderDetails(ctx, orderID)
	if err != nil {
		return nil, err
	}
	inv := &domain.Invoice{
		OrderID:     order.OrderID,
		IssuedTo:    order.UserEmail,
		Address:     order.DeliveryAddress,
		DeliveryFee: order.DeliveryFee,
		Total:       order.TotalAmount,
		GSTContent:  order.TotalAmount * 3 / 23,
		IssuedAt:    time.Now(),
	}
	for _, it := range order.Items {
		desc := it.ProductName
		if it.Variant != "" && it.Variant != "Default" {
			desc = fmt.Sprintf("%s (%s)", it.ProductName, it.Variant)
		}
		inv.Lines = append(inv.Lines, domain.InvoiceLine{
			Description: desc,
			Quantity:    it.Quantity,
			UnitPrice:   it.Price,
			LineTotal:   it.TotalPrice,
		})
		inv.Subtotal += it.TotalPrice
	}
	return inv, nil
}

func (s *OrderService) invalidate(ctx context.Context, prefix string) {
	if err := s.cache.DeleteByPrefix(ctx, prefix); err != nil {
		log.Printf("cache invalidation failed for %s: %v", prefix, err)
	}
}
