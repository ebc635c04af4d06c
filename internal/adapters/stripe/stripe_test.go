// internal/adapters/stripe/stripe_test.go
package stripe

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/macgtech/storefront/internal/domain"
)

const testSecret = "whsec_test"

// stubBackend routes SDK calls to a local test server for the duration of
// the test.
func stubBackend(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	stripe.SetBackend(stripe.APIBackend, stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:           stripe.String(srv.URL),
		LeveledLogger: &stripe.LeveledLogger{Level: stripe.LevelError},
	}))
	t.Cleanup(func() {
		stripe.SetBackend(stripe.APIBackend, nil)
		srv.Close()
	})
}

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{100, 10000},
		{19.99, 1999},
		{95.555, 9556},
		{0, 0},
	}
	for _, tt := range tests {
		if got := minorUnits(tt.amount); got != tt.want {
			t.Errorf("minorUnits(%v) = %d, want %d", tt.amount, got, tt.want)
		}
	}
}

func TestAdapter_CreateSession(t *testing.T) {
	a := New("sk_test", testSecret, "https://shop.example", "nzd")

	t.Run("session priced in minor units with order metadata", func(t *testing.T) {
		stubBackend(t, func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				t.Fatalf("parse form: %v", err)
			}
			if got := r.FormValue("line_items[0][price_data][unit_amount]"); got != "10000" {
				t.Errorf("unit_amount = %q, want 10000", got)
			}
			if got := r.FormValue("line_items[0][price_data][currency]"); got != "nzd" {
				t.Errorf("currency = %q, want nzd", got)
			}
			if got := r.FormValue("metadata[orderId]"); got != "ORD-9" {
				t.Errorf("metadata orderId = %q, want ORD-9", got)
			}
			if got := r.FormValue("customer_email"); got != "amy@example.co.nz" {
				t.Errorf("customer_email = %q", got)
			}
			fmt.Fprint(w, `{"id":"cs_1","object":"checkout.session","url":"https://checkout.example/c/pay/cs_1"}`)
		})

		url, err := a.CreateSession(context.Background(), "ORD-9", 100, "amy@example.co.nz", "Amy")
		if err != nil {
			t.Fatalf("CreateSession() unexpected error: %v", err)
		}
		if url != "https://checkout.example/c/pay/cs_1" {
			t.Errorf("CreateSession() = %q", url)
		}
	})

	t.Run("session without a hosted url", func(t *testing.T) {
		stubBackend(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"id":"cs_1","object":"checkout.session"}`)
		})

		_, err := a.CreateSession(context.Background(), "ORD-9", 100, "amy@example.co.nz", "Amy")
		if !errors.Is(err, domain.ErrProviderSession) {
			t.Fatalf("CreateSession() error = %v, want ErrProviderSession", err)
		}
	})

	t.Run("api rejection", func(t *testing.T) {
		stubBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":{"type":"invalid_request_error","message":"Invalid API Key provided"}}`)
		})

		_, err := a.CreateSession(context.Background(), "ORD-9", 100, "amy@example.co.nz", "Amy")
		if !errors.Is(err, domain.ErrProviderSession) {
			t.Fatalf("CreateSession() error = %v, want ErrProviderSession", err)
		}
	})
}

func signedHeader(t *testing.T, payload []byte, secret string) string {
	t.Helper()
	now := time.Now()
	sig := webhook.ComputeSignature(now, payload, secret)
	return fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(sig))
}

func completedPayload() []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_1",
		"api_version": %q,
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "cs_1",
				"object": "checkout.session",
				"customer_email": "amy@example.co.nz",
				"payment_intent": "pi_123",
				"metadata": {"orderId": "ORD-9", "customerName": "Amy"}
			}
		}
	}`, stripe.APIVersion))
}

func TestAdapter_VerifyWebhook(t *testing.T) {
	a := New("sk_test", testSecret, "https://shop.example", "nzd")

	t.Run("completed session yields a paid event", func(t *testing.T) {
		payload := completedPayload()
		event, err := a.VerifyWebhook(payload, signedHeader(t, payload, testSecret))
		if err != nil {
			t.Fatalf("VerifyWebhook() unexpected error: %v", err)
		}
		if event.Provider != Provider || event.Type != EventCheckoutCompleted {
			t.Errorf("event = %+v", event)
		}
		if event.OrderID != "ORD-9" {
			t.Errorf("OrderID = %q, want ORD-9", event.OrderID)
		}
		if event.PaymentIntent != "pi_123" {
			t.Errorf("PaymentIntent = %q, want pi_123", event.PaymentIntent)
		}
		if event.CustomerEmail != "amy@example.co.nz" {
			t.Errorf("CustomerEmail = %q", event.CustomerEmail)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		payload := completedPayload()
		_, err := a.VerifyWebhook(payload, signedHeader(t, payload, "whsec_other"))
		if !errors.Is(err, domain.ErrWebhookVerification) {
			t.Fatalf("VerifyWebhook() error = %v, want ErrWebhookVerification", err)
		}
	})

	t.Run("tampered body", func(t *testing.T) {
		payload := completedPayload()
		header := signedHeader(t, payload, testSecret)
		tampered := append([]byte{}, payload...)
		tampered[len(tampered)-2] = ' '
		_, err := a.VerifyWebhook(tampered, header)
		if !errors.Is(err, domain.ErrWebhookVerification) {
			t.Fatalf("VerifyWebhook() error = %v, want ErrWebhookVerification", err)
		}
	})

	t.Run("missing signature header", func(t *testing.T) {
		_, err := a.VerifyWebhook(completedPayload(), "")
		if !errors.Is(err, domain.ErrWebhookVerification) {
			t.Fatalf("VerifyWebhook() error = %v, want ErrWebhookVerification", err)
		}
	})

	t.Run("other event types pass through without order fields", func(t *testing.T) {
		payload := []byte(fmt.Sprintf(`{
			"id": "evt_2",
			"api_version": %q,
			"type": "payment_intent.created",
			"data": {"object": {"id": "pi_999", "object": "payment_intent"}}
		}`, stripe.APIVersion))
		event, err := a.VerifyWebhook(payload, signedHeader(t, payload, testSecret))
		if err != nil {
			t.Fatalf("VerifyWebhook() unexpected error: %v", err)
		}
		if event.Type != "payment_intent.created" {
			t.Errorf("Type = %q", event.Type)
		}
		if event.OrderID != "" || event.PaymentIntent != "" {
			t.Errorf("unexpected order fields on pass-through event: %+v", event)
		}
	})
}
