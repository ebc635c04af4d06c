// internal/application/order_service_test.go
package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/macgtech/storefront/internal/domain"
	"github.com/macgtech/storefront/internal/ports"
)

type mockCache struct {
	get    func(ctx context.Context, key string) ([]byte, error)
	set    func(ctx context.Context, key string, value interface{}) error
	delete func(ctx context.Context, prefix string) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.get == nil {
		return nil, errors.New("cache miss")
	}
	return m.get(ctx, key)
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}) error {
	if m.set == nil {
		return nil
	}
	return m.set(ctx, key, value)
}

func (m *mockCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	if m.delete == nil {
		return nil
	}
	return m.delete(ctx, prefix)
}

func (m *mockCache) Ping(ctx context.Context) error { return nil }

func newTestOrderService(t *testing.T) (*OrderService, *ports.MockLedgerPort, *ports.MockCardProviderPort, *ports.MockCryptoProviderPort, *ports.MockNotifierPort, *mockCache) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockLedger := ports.NewMockLedgerPort(ctrl)
	mockCard := ports.NewMockCardProviderPort(ctrl)
	mockCrypto := ports.NewMockCryptoProviderPort(ctrl)
	mockNotifier := ports.NewMockNotifierPort(ctrl)
	cache := &mockCache{}

	svc := NewOrderService(mockLedger, cache, mockCard, mockCrypto, mockNotifier)
	return svc, mockLedger, mockCard, mockCrypto, mockNotifier, cache
}

func TestDeliveryFee(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		subtotal float64
		want     float64
	}{
		{"Auckland over threshold", "12 Queen St, Auckland", 120, 0},
		{"Auckland at threshold", "12 Queen St, Auckland", 100, 0},
		{"Auckland under threshold", "12 Queen St, Auckland", 50, 5},
		{"Wellington flat fee", "5 Cuba St, Wellington", 250, 8},
		{"Christchurch flat fee", "9 High St, Christchurch", 10, 8},
		{"everywhere else", "1 Main Rd, Dunedin", 500, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeliveryFee(tt.address, tt.subtotal); got != tt.want {
				t.Errorf("DeliveryFee(%q, %v) = %v, want %v", tt.address, tt.subtotal, got, tt.want)
			}
		})
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	cart := []domain.CartItem{
		{ProductID: "P-1", ProductName: "Teak Oil 1L", Quantity: 2, Price: 30},
		{ProductID: "P-2", ProductName: "Garden Bench", Quantity: 1, Price: 35},
	}

	tests := []struct {
		name      string
		email     string
		cart      []domain.CartItem
		address   string
		method    domain.PaymentMethod
		mockSetup func(ledger *ports.MockLedgerPort)
		wantErr   error
		wantTotal float64
		wantFee   float64
	}{
		{
			name:    "card order in Auckland under free threshold",
			email:   "amy@example.co.nz",
			cart:    cart,
			address: "12 Queen St, Auckland",
			method:  domain.MethodCard,
			mockSetup: func(ledger *ports.MockLedgerPort) {
				ledger.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, order *domain.Order) (string, error) {
						if order.Status != domain.StatusPendingPayment {
							t.Errorf("order created with status %q, want %q", order.Status, domain.StatusPendingPayment)
						}
						if order.TotalAmount != order.Subtotal()+order.DeliveryFee {
							t.Errorf("total %v != subtotal %v + fee %v", order.TotalAmount, order.Subtotal(), order.DeliveryFee)
						}
						return "ORD-1001", nil
					})
			},
			wantTotal: 100,
			wantFee:   5,
		},
		{
			name:      "empty cart",
			email:     "amy@example.co.nz",
			cart:      nil,
			address:   "12 Queen St, Auckland",
			method:    domain.MethodCard,
			mockSetup: func(ledger *ports.MockLedgerPort) {},
			wantErr:   domain.ErrEmptyCart,
		},
		{
			name:      "unknown payment method",
			email:     "amy@example.co.nz",
			cart:      cart,
			address:   "12 Queen St, Auckland",
			method:    domain.PaymentMethod("Cheque"),
			mockSetup: func(ledger *ports.MockLedgerPort) {},
			wantErr:   nil, // plain error, checked below
		},
		{
			name:    "ledger rejects",
			email:   "amy@example.co.nz",
			cart:    cart,
			address: "12 Queen St, Auckland",
			method:  domain.MethodBankTransfer,
			mockSetup: func(ledger *ports.MockLedgerPort) {
				ledger.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return("", errors.New("sheet unavailable"))
			},
			wantErr: domain.ErrOrderCreation,
		},
		{
			name:    "ledger returns no order id",
			email:   "amy@example.co.nz",
			cart:    cart,
			address: "12 Queen St, Auckland",
			method:  domain.MethodCrypto,
			mockSetup: func(ledger *ports.MockLedgerPort) {
				ledger.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return("", nil)
			},
			wantErr: domain.ErrOrderCreation,
		},
		{
			name:    "ledger timeout passes through",
			email:   "amy@example.co.nz",
			cart:    cart,
			address: "12 Queen St, Auckland",
			method:  domain.MethodCard,
			mockSetup: func(ledger *ports.MockLedgerPort) {
				ledger.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					Return("", fmt.Errorf("%w: processPayment", domain.ErrUpstreamTimeout))
			},
			wantErr: domain.ErrUpstreamTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockLedger, _, _, _, _ := newTestOrderService(t)
			tt.mockSetup(mockLedger)

			order, err := svc.CreateOrder(context.Background(), tt.email, tt.cart, tt.address, tt.method)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CreateOrder() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if tt.name == "unknown payment method" {
				if err == nil {
					t.Fatal("CreateOrder() expected error for unknown method")
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateOrder() unexpected error: %v", err)
			}
			if order.OrderID == "" {
				t.Error("CreateOrder() returned empty order id")
			}
			if order.TotalAmount != tt.wantTotal {
				t.Errorf("TotalAmount = %v, want %v", order.TotalAmount, tt.wantTotal)
			}
			if order.DeliveryFee != tt.wantFee {
				t.Errorf("DeliveryFee = %v, want %v", order.DeliveryFee, tt.wantFee)
			}
		})
	}
}

func TestOrderService_InitiateCheckout(t *testing.T) {
	const (
		orderID = "ORD-1001"
		email   = "amy@example.co.nz"
		name    = "Amy"
	)

	t.Run("card session created", func(t *testing.T) {
		svc, _, mockCard, _, _, _ := newTestOrderService(t)
		mockCard.EXPECT().CreateSession(gomock.Any(), orderID, 100.0, email, name).
			Return("https://checkout.example/cs_123", nil)

		handoff, err := svc.InitiateCheckout(context.Background(), orderID, 100, domain.MethodCard, email, name)
		if err != nil {
			t.Fatalf("InitiateCheckout() unexpected error: %v", err)
		}
		if handoff.RedirectURL != "https://checkout.example/cs_123" {
			t.Errorf("RedirectURL = %q", handoff.RedirectURL)
		}
	})

	t.Run("card provider error", func(t *testing.T) {
		svc, _, mockCard, _, _, _ := newTestOrderService(t)
		mockCard.EXPECT().CreateSession(gomock.Any(), orderID, 100.0, email, name).
			Return("", fmt.Errorf("%w: api down", domain.ErrProviderSession))

		_, err := svc.InitiateCheckout(context.Background(), orderID, 100, domain.MethodCard, email, name)
		if !errors.Is(err, domain.ErrProviderSession) {
			t.Fatalf("InitiateCheckout() error = %v, want ErrProviderSession", err)
		}
	})

	t.Run("crypto charge created", func(t *testing.T) {
		svc, _, _, mockCrypto, _, _ := newTestOrderService(t)
		mockCrypto.EXPECT().CreateCharge(gomock.Any(), orderID, 100.0, email, name).
			Return("https://commerce.example/charges/abc", nil)

		handoff, err := svc.InitiateCheckout(context.Background(), orderID, 100, domain.MethodCrypto, email, name)
		if err != nil {
			t.Fatalf("InitiateCheckout() unexpected error: %v", err)
		}
		if handoff.RedirectURL != "https://commerce.example/charges/abc" {
			t.Errorf("RedirectURL = %q", handoff.RedirectURL)
		}
	})

	t.Run("bank transfer notifies and hands off details", func(t *testing.T) {
		svc, _, _, _, mockNotifier, _ := newTestOrderService(t)
		mockNotifier.EXPECT().Details(orderID).Return(&domain.BankDetails{BankName: "XYZ Bank", AccountNumber: "12345678", Reference: orderID})
		mockNotifier.EXPECT().Notify(gomock.Any(), email, name, orderID, 100.0).Return(nil)

		handoff, err := svc.InitiateCheckout(context.Background(), orderID, 100, domain.MethodBankTransfer, email, name)
		if err != nil {
			t.Fatalf("InitiateCheckout() unexpected error: %v", err)
		}
		if handoff.BankDetails == nil || handoff.BankDetails.Reference != orderID {
			t.Errorf("BankDetails = %+v, want reference %q", handoff.BankDetails, orderID)
		}
		if !handoff.Notified {
			t.Error("Notified = false, want true")
		}
	})

	t.Run("bank transfer notification failure is soft", func(t *testing.T) {
		svc, _, _, _, mockNotifier, _ := newTestOrderService(t)
		mockNotifier.EXPECT().Details(orderID).Return(&domain.BankDetails{Reference: orderID})
		mockNotifier.EXPECT().Notify(gomock.Any(), email, name, orderID, 100.0).
			Return(fmt.Errorf("%w: smtp refused", domain.ErrNotification))

		handoff, err := svc.InitiateCheckout(context.Background(), orderID, 100, domain.MethodBankTransfer, email, name)
		if !errors.Is(err, domain.ErrNotification) {
			t.Fatalf("InitiateCheckout() error = %v, want ErrNotification", err)
		}
		if handoff == nil || handoff.BankDetails == nil {
			t.Fatal("InitiateCheckout() should still return bank details on notification failure")
		}
		if handoff.Notified {
			t.Error("Notified = true, want false")
		}
	})
}

func TestOrderService_Reconcile(t *testing.T) {
	tests := []struct {
		name      string
		event     *domain.PaymentEvent
		mockSetup func(ledger *ports.MockLedgerPort)
		wantErr   error
	}{
		{
			name:  "card checkout completed marks order paid",
			event: &domain.PaymentEvent{Provider: "stripe", Type: "checkout.session.completed", OrderID: "ORD-9", PaymentIntent: "pi_123"},
			mockSetup: func(ledger *ports.MockLedgerPort) {
				ledger.EXPECT().MarkOrderPaid(gomock.Any(), "ORD-9", "pi_123").Return(nil)
			},
		},
		{
			name:      "card event missing order id",
			event:     &domain.PaymentEvent{Provider: "stripe", Type: "checkout.session.completed", PaymentIntent: "pi_123"},
			mockSetup: func(ledger *ports.MockLedgerPort) {},
			wantErr:   domain.ErrMalformedWebhook,
		},
		{
			name:  "crypto charge confirmed",
			event: &domain.PaymentEvent{Provider: "coinbase", Type: "charge:confirmed", OrderID: "ORD-9"},
			mockSetup: func(ledger *ports.MockLedgerPort) {
				ledger.EXPECT().UpdateOrderStatus(gomock.Any(), "ORD-9", domain.StatusPaid).Return(nil)
			},
		},
		{
			name:  "crypto charge failed",
			event: &domain.PaymentEvent{Provider: "coinbase", Type: "charge:failed", OrderID: "ORD-9"},
			mockSetup: func(ledger *ports.MockLedgerPort) {
				ledger.EXPECT().UpdateOrderStatus(gomock.Any(), "ORD-9", domain.StatusFailed).Return(nil)
			},
		},
		{
			name:      "crypto event missing order id",
			event:     &domain.PaymentEvent{Provider: "coinbase", Type: "charge:confirmed"},
			mockSetup: func(ledger *ports.MockLedgerPort) {},
			wantErr:   domain.ErrMalformedWebhook,
		},
		{
			name:      "unrelated event type acknowledged without state change",
			event:     &domain.PaymentEvent{Provider: "stripe", Type: "payment_intent.created", OrderID: "ORD-9"},
			mockSetup: func(ledger *ports.MockLedgerPort) {},
		},
		{
			name:  "ledger failure surfaces",
			event: &domain.PaymentEvent{Provider: "coinbase", Type: "charge:confirmed", OrderID: "ORD-9"},
			mockSetup: func(ledger *ports.MockLedgerPort) {
				ledger.EXPECT().UpdateOrderStatus(gomock.Any(), "ORD-9", domain.StatusPaid).Return(errors.New("sheet unavailable"))
			},
			wantErr: nil, // plain error, checked below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockLedger, _, _, _, _ := newTestOrderService(t)
			tt.mockSetup(mockLedger)

			err := svc.Reconcile(context.Background(), tt.event)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Reconcile() error = %v, want %v", err, tt.wantErr)
				}
			case tt.name == "ledger failure surfaces":
				if err == nil {
					t.Error("Reconcile() expected error when ledger update fails")
				}
			default:
				if err != nil {
					t.Errorf("Reconcile() unexpected error: %v", err)
				}
			}
		})
	}
}

func TestOrderService_Reconcile_Idempotent(t *testing.T) {
	svc, mockLedger, _, _, _, _ := newTestOrderService(t)
	event := &domain.PaymentEvent{Provider: "stripe", Type: "checkout.session.completed", OrderID: "ORD-9", PaymentIntent: "pi_123"}

	// Status updates are overwrites at the ledger, so the same event can
	// arrive twice without error or double effect.
	mockLedger.EXPECT().MarkOrderPaid(gomock.Any(), "ORD-9", "pi_123").Return(nil).Times(2)

	for i := 0; i < 2; i++ {
		if err := svc.Reconcile(context.Background(), event); err != nil {
			t.Fatalf("Reconcile() attempt %d unexpected error: %v", i+1, err)
		}
	}
}

func TestOrderService_ConfirmBankTransfer(t *testing.T) {
	const email = "amy@example.co.nz"

	pendingBank := &domain.Order{
		OrderID: "ORD-7", UserEmail: email,
		PaymentMethod: domain.MethodBankTransfer, Status: domain.StatusPendingPayment,
	}

	tests := []struct {
		name      string
		orderID   string
		email     string
		mockSetup func(ledger *ports.MockLedgerPort)
		wantErr   bool
		errIs     error
	}{
		{
			name:    "pending bank transfer confirmed",
			orderID: "ORD-7",
			email:   email,
			mockSetup: func(ledger *ports.MockLedgerPort) {
				ledger.EXPECT().OrderDetails(gomock.Any(), "ORD-7").Return(pendingBank, nil)
				ledger.EXPECT().ConfirmPayment(gomock.Any(), "ORD-7").Return(nil)
			},
		},
		{
			name:    "already paid is a no-op",
			orderID: "ORD-7",
			email:   email,
			mockSetup: func(ledger *ports.MockLedgerPort) {
				paid := *pendingBank
				paid.Status = domain.StatusPaid
				ledger.EXPECT().OrderDetails(gomock.Any(), "ORD-7").Return(&paid, nil)
			},
		},
		{
			name:    "failed order cannot move to paid",
			orderID: "ORD-7",
			email:   email,
			mockSetup: func(ledger *ports.MockLedgerPort) {
				failed := *pendingBank
				failed.Status = domain.StatusFailed
				ledger.EXPECT().OrderDetails(gomock.Any(), "ORD-7").Return(&failed, nil)
			},
			wantErr: true,
		},
		{
			name:    "card order rejected",
			orderID: "ORD-7",
			email:   email,
			mockSetup: func(ledger *ports.MockLedgerPort) {
				card := *pendingBank
				card.PaymentMethod = domain.MethodCard
				ledger.EXPECT().OrderDetails(gomock.Any(), "ORD-7").Return(&card, nil)
			},
			wantErr: true,
		},
		{
			name:    "someone else's order",
			orderID: "ORD-7",
			email:   "mallory@example.co.nz",
			mockSetup: func(ledger *ports.MockLedgerPort) {
				ledger.EXPECT().OrderDetails(gomock.Any(), "ORD-7").Return(pendingBank, nil)
			},
			wantErr: true,
			errIs:   domain.ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockLedger, _, _, _, _ := newTestOrderService(t)
			tt.mockSetup(mockLedger)

			err := svc.ConfirmBankTransfer(context.Background(), tt.orderID, tt.email)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ConfirmBankTransfer() expected error")
				}
				if tt.errIs != nil && !errors.Is(err, tt.errIs) {
					t.Errorf("ConfirmBankTransfer() error = %v, want %v", err, tt.errIs)
				}
				return
			}
			if err != nil {
				t.Errorf("ConfirmBankTransfer() unexpected error: %v", err)
			}
		})
	}
}

func TestOrderService_Orders(t *testing.T) {
	const email = "amy@example.co.nz"
	orders := []domain.Order{{OrderID: "ORD-1", UserEmail: email, CreatedAt: time.Now()}}
	cached, _ := json.Marshal(orders)

	t.Run("cache hit skips the ledger", func(t *testing.T) {
		svc, _, _, _, _, cache := newTestOrderService(t)
		cache.get = func(ctx context.Context, key string) ([]byte, error) {
			if key != "orders:"+email {
				t.Errorf("cache key = %q", key)
			}
			return cached, nil
		}

		got, err := svc.Orders(context.Background(), email)
		if err != nil {
			t.Fatalf("Orders() unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].OrderID != "ORD-1" {
			t.Errorf("Orders() = %+v", got)
		}
	})

	t.Run("cache miss falls back to ledger and repopulates", func(t *testing.T) {
		svc, mockLedger, _, _, _, cache := newTestOrderService(t)
		mockLedger.EXPECT().UserOrders(gomock.Any(), email).Return(orders, nil)
		var setKey string
		cache.set = func(ctx context.Context, key string, value interface{}) error {
			setKey = key
			return nil
		}

		got, err := svc.Orders(context.Background(), email)
		if err != nil {
			t.Fatalf("Orders() unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("Orders() = %+v", got)
		}
		if setKey != "orders:"+email {
			t.Errorf("cache repopulated under key %q", setKey)
		}
	})

	t.Run("cache set failure does not fail the read", func(t *testing.T) {
		svc, mockLedger, _, _, _, cache := newTestOrderService(t)
		mockLedger.EXPECT().UserOrders(gomock.Any(), email).Return(orders, nil)
		cache.set = func(ctx context.Context, key string, value interface{}) error {
			return errors.New("cache error")
		}

		if _, err := svc.Orders(context.Background(), email); err != nil {
			t.Errorf("Orders() unexpected error: %v", err)
		}
	})
}

func TestOrderService_Invoice(t *testing.T) {
	svc, mockLedger, _, _, _, _ := newTestOrderService(t)
	mockLedger.EXPECT().OrderDetails(gomock.Any(), "ORD-5").Return(&domain.Order{
		OrderID:   "ORD-5",
		UserEmail: "amy@example.co.nz",
		Items: []domain.CartItem{
			{ProductName: "Teak Oil 1L", Variant: "Default", Quantity: 2, Price: 30, TotalPrice: 60},
			{ProductName: "Garden Bench", Variant: "Oiled", Quantity: 1, Price: 35, TotalPrice: 35},
		},
		DeliveryFee: 5,
		TotalAmount: 100,
	}, nil)

	inv, err := svc.Invoice(context.Background(), "ORD-5")
	if err != nil {
		t.Fatalf("Invoice() unexpected error: %v", err)
	}
	if len(inv.Lines) != 2 {
		t.Fatalf("Invoice() lines = %d, want 2", len(inv.Lines))
	}
	if inv.Lines[1].Description != "Garden Bench (Oiled)" {
		t.Errorf("line description = %q", inv.Lines[1].Description)
	}
	if inv.Subtotal != 95 {
		t.Errorf("Subtotal = %v, want 95", inv.Subtotal)
	}
	wantGST := 100.0 * 3 / 23
	if inv.GSTContent != wantGST {
		t.Errorf("GSTContent = %v, want %v", inv.GSTContent, wantGST)
	}
}
