package domain

import "errors"

// Failure taxonomy shared by the coordinator and the provider adapters.
// None of these are retried automatically; callers surface them.
var (
	ErrOrderCreation       = errors.New("ledger rejected order creation")
	ErrProviderSession     = errors.New("payment provider session could not be created")
	ErrWebhookVerification = errors.New("webhook signature verification failed")
	ErrMalformedWebhook    = errors.New("webhook payload missing required metadata")
	ErrUpstreamTimeout     = errors.New("upstream call exceeded deadline")
	ErrNotification        = errors.New("bank transfer notification failed")
	ErrEmptyCart           = errors.New("cart is empty, nothing to check out")
	ErrStaleLogin          = errors.New("last login is outside the checkout window")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrOrderNotFound       = errors.New("order not found")
)
