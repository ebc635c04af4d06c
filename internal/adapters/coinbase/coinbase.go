// internal/adapters/coinbase/coinbase.go
package coinbase

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/macgtech/storefront/internal/domain"
)

const Provider = "coinbase"

const (
	EventChargeConfirmed = "charge:confirmed"
	EventChargeFailed    = "charge:failed"

	// SignatureHeader carries the hex HMAC-SHA256 of the raw body.
	SignatureHeader = "X-CC-Webhook-Signature"

	apiVersion = "2018-03-22"
)

// Adapter creates fixed-price charges on Coinbase Commerce and verifies
// webhook signatures with the shared secret.
type Adapter struct {
	apiKey        string
	webhookSecret string
	siteURL       string
	currency      string
	baseURL       string
	http          *http.Client
}

func New(apiKey, webhookSecret, siteURL, currency string) *Adapter {
	return &Adapter{
		apiKey:        apiKey,
		webhookSecret: webhookSecret,
		siteURL:       siteURL,
		currency:      currency,
		baseURL:       "https://api.commerce.coinbase.com",
		http:          &http.Client{Timeout: 10 * time.Second},
	}
}

// NewWithBaseURL points the adapter at a non-default API host. Used by tests.
func NewWithBaseURL(apiKey, webhookSecret, siteURL, currency, baseURL string) *Adapter {
	a := New(apiKey, webhookSecret, siteURL, currency)
	a.baseURL = baseURL
	return a
}

type chargeRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	PricingType string            `json:"pricing_type"`
	LocalPrice  localPrice        `json:"local_price"`
	Metadata    map[string]string `json:"metadata"`
	RedirectURL string            `json:"redirect_url"`
	CancelURL   string            `json:"cancel_url"`
}

type localPrice struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

func (a *Adapter) CreateCharge(ctx context.Context, orderID string, amount float64, email, name string) (string, error) {
	charge := chargeRequest{
		Name:        fmt.Sprintf("Order %s", orderID),
		Description: "Payment for your order",
		PricingType: "fixed_price",
		LocalPrice:  localPrice{Amount: fmt.Sprintf("%.2f", amount), Currency: a.currency},
		Metadata: map[string]string{
			"order_id":       orderID,
			"customer_email": email,
			"customer_name":  name,
		},
		RedirectURL: fmt.Sprintf("%s/payment-success?orderId=%s", a.siteURL, orderID),
		CancelURL:   a.siteURL + "/cart",
	}
	body, err := json.Marshal(charge)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/charges", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-CC-Api-Key", a.apiKey)
	req.Header.Set("X-CC-Version", apiVersion)

	res, err := a.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("%w: charges", domain.ErrUpstreamTimeout)
		}
		return "", fmt.Errorf("%w: %v", domain.ErrProviderSession, err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		json.NewDecoder(res.Body).Decode(&apiErr)
		if apiErr.Error.Message != "" {
			return "", fmt.Errorf("%w: status %d: %s", domain.ErrProviderSession, res.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("%w: status %d", domain.ErrProviderSession, res.StatusCode)
	}

	var result struct {
		Data struct {
			HostedURL string `json:"hosted_url"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrProviderSession, err)
	}
	if result.Data.HostedURL == "" {
		return "", fmt.Errorf("%w: charge has no hosted url", domain.ErrProviderSession)
	}
	return result.Data.HostedURL, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// VerifyWebhook compares the hex HMAC-SHA256 of the raw body with the
// signature header before the payload is parsed.
func (a *Adapter) VerifyWebhook(payload []byte, signatureHeader string) (*domain.PaymentEvent, error) {
	if signatureHeader == "" {
		return nil, fmt.Errorf("%w: missing signature header", domain.ErrWebhookVerification)
	}
	mac := hmac.New(sha256.New, []byte(a.webhookSecret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signatureHeader)) {
		return nil, fmt.Errorf("%w: signature mismatch", domain.ErrWebhookVerification)
	}

	var body struct {
		Event struct {
			Type string `json:"type"`
			Data struct {
				Metadata map[string]string `json:"metadata"`
			} `json:"data"`
		} `json:"event"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedWebhook, err)
	}
	return &domain.PaymentEvent{
		Provider:      Provider,
		Type:          body.Event.Type,
		OrderID:       body.Event.Data.Metadata["order_id"],
		CustomerEmail: body.Event.Data.Metadata["customer_email"],
	}, nil
}
