// internal/adapters/ledger/ledger.go
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/macgtech/storefront/internal/domain"
	"github.com/macgtech/storefront/internal/ports"
)

// Client talks to the spreadsheet-backed ledger API. Every call is a single
// request against one endpoint, dispatched by an "action" field (POST body)
// or query parameter (GET). The ledger is the source of truth for users,
// carts and orders; this client holds no state.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

const DefaultTimeout = 10 * time.Second

func NewClient(baseURL string, timeout time.Duration) ports.LedgerPort {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (e envelope) err(action string) error {
	if e.Message != "" {
		return fmt.Errorf("ledger %s: %s", action, e.Message)
	}
	return fmt.Errorf("ledger %s: request failed", action)
}

func (c *Client) get(ctx context.Context, action string, params url.Values, out interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("action", action)
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, action, out)
}

func (c *Client) post(ctx context.Context, action string, fields map[string]interface{}, out interface{}) error {
	body := map[string]interface{}{"action": action}
	for k, v := range fields {
		body[k] = v
	}
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, action, out)
}

func (c *Client) do(req *http.Request, action string, out interface{}) error {
	res, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w: %s", domain.ErrUpstreamTimeout, action)
		}
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("ledger %s: upstream status %d", action, res.StatusCode)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("ledger %s: malformed response: %w", action, err)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// ----- Catalog -----

func (c *Client) GetProducts(ctx context.Context) ([]domain.Product, error) {
	var resp struct {
		envelope
		Products []map[string]interface{} `json:"products"`
	}
	if err := c.get(ctx, "getProducts", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, resp.err("getProducts")
	}
	products := make([]domain.Product, 0, len(resp.Products))
	for _, row := range resp.Products {
		products = append(products, productFromRow(row))
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	var resp struct {
		envelope
		Data map[string]interface{} `json:"data"`
	}
	params := url.Values{"productId": {productID}}
	if err := c.get(ctx, "getProductById", params, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Data == nil {
		return nil, nil
	}
	p := productFromRow(resp.Data)
	return &p, nil
}

// ----- Users -----

func (c *Client) GetUser(ctx context.Context, email string) (*domain.User, error) {
	var resp struct {
		envelope
		Exists      bool                   `json:"exists"`
		HasPassword bool                   `json:"hasPassword"`
		User        map[string]interface{} `json:"user"`
	}
	params := url.Values{"email": {email}}
	if err := c.get(ctx, "getUser", params, &resp); err != nil {
		return nil, err
	}
	if !resp.Exists || resp.User == nil {
		return nil, nil
	}
	u := userFromRow(resp.User)
	u.HasPassword = resp.HasPassword
	return &u, nil
}

func (c *Client) CreateUser(ctx context.Context, user *domain.User) error {
	var resp envelope
	err := c.post(ctx, "createUser", map[string]interface{}{
		"email":           user.Email,
		"name":            user.Name,
		"phone":           user.Phone,
		"companyName":     user.CompanyName,
		"deliveryAddress": user.Address,
		"companyAddress":  user.CompanyAddress,
		"subscribe":       yesNo(user.Subscribe),
		"companyTickBox":  yesNo(user.Company),
	}, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		return resp.err("createUser")
	}
	return nil
}

func (c *Client) UpdateUser(ctx context.Context, user *domain.User) error {
	var resp envelope
	err := c.post(ctx, "updateUserDetails", map[string]interface{}{
		"email":          user.Email,
		"name":           user.Name,
		"phone":          user.Phone,
		"company":        user.CompanyName,
		"address":        user.Address,
		"companyAddress": user.CompanyAddress,
	}, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		return resp.err("updateUserDetails")
	}
	return nil
}

func (c *Client) ValidateLogin(ctx context.Context, email, password string) error {
	var resp envelope
	err := c.post(ctx, "validateLogin", map[string]interface{}{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		return domain.ErrInvalidCredentials
	}
	return nil
}

func (c *Client) ConfirmRecentLogin(ctx context.Context, email string) (*domain.User, error) {
	var resp struct {
		envelope
		Data struct {
			Name        string `json:"name"`
			Address     string `json:"address"`
			CompanyName string `json:"companyName"`
		} `json:"data"`
	}
	err := c.post(ctx, "confirmRecentLogin", map[string]interface{}{"email": email}, &resp)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, domain.ErrInvalidCredentials
	}
	return &domain.User{
		Email:       email,
		Name:        resp.Data.Name,
		Address:     resp.Data.Address,
		CompanyName: resp.Data.CompanyName,
	}, nil
}

func (c *Client) SetupPassword(ctx context.Context, token, passwordHash string) error {
	var resp envelope
	err := c.post(ctx, "setupPassword", map[string]interface{}{
		"token":    token,
		"password": passwordHash,
	}, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		return resp.err("setupPassword")
	}
	return nil
}

func (c *Client) SendPasswordSetupEmail(ctx context.Context, email string) error {
	var resp envelope
	err := c.post(ctx, "sendPasswordSetupEmail", map[string]interface{}{"email": email}, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		return resp.err("sendPasswordSetupEmail")
	}
	return nil
}

// ----- Cart -----

func (c *Client) GetCart(ctx context.Context, email string) ([]domain.CartItem, error) {
	var resp struct {
		envelope
		Cart []map[string]interface{} `json:"cart"`
	}
	params := url.Values{"userId": {email}}
	if err := c.get(ctx, "getCart", params, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, resp.err("getCart")
	}
	items := make([]domain.CartItem, 0, len(resp.Cart))
	for _, row := range resp.Cart {
		items = append(items, cartItemFromRow(row))
	}
	return items, nil
}

func (c *Client) UpdateCart(ctx context.Context, email string, items []domain.CartItem) error {
	var resp envelope
	err := c.post(ctx, "updateCart", map[string]interface{}{
		"userId": email,
		"cart":   items,
	}, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		return resp.err("updateCart")
	}
	return nil
}

func (c *Client) UpdateCartEmail(ctx context.Context, oldEmail, newEmail string) error {
	var resp envelope
	err := c.post(ctx, "updateCartEmail", map[string]interface{}{
		"oldEmail": oldEmail,
		"newEmail": newEmail,
	}, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		return resp.err("updateCartEmail")
	}
	return nil
}

// ----- Orders -----

func (c *Client) CreateOrder(ctx context.Context, order *domain.Order) (string, error) {
	var resp struct {
		envelope
		OrderID string `json:"orderId"`
	}
	err := c.post(ctx, "processPayment", map[string]interface{}{
		"userId":          order.UserEmail,
		"cart":            order.Items,
		"deliveryAddress": order.DeliveryAddress,
		"deliveryFee":     order.DeliveryFee,
		"totalAmount":     order.TotalAmount,
		"paymentMethod":   string(order.PaymentMethod),
	}, &resp)
	if err != nil {
		return "", err
	}
	if !resp.Success {
		return "", resp.err("processPayment")
	}
	return resp.OrderID, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	var resp envelope
	err := c.post(ctx, "updateOrderStatus", map[string]interface{}{
		"orderId": orderID,
		"status":  string(status),
	}, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		return resp.err("updateOrderStatus")
	}
	return nil
}

func (c *Client) MarkOrderPaid(ctx context.Context, orderID, paymentIntent string) error {
	var resp envelope
	err := c.post(ctx, "markOrderPaid", map[string]interface{}{
		"orderId":       orderID,
		"paymentIntent": paymentIntent,
	}, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		return resp.err("markOrderPaid")
	}
	return nil
}

func (c *Client) ConfirmPayment(ctx context.Context, orderID string) error {
	var resp envelope
	err := c.post(ctx, "confirmPayment", map[string]interface{}{"orderId": orderID}, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		return resp.err("confirmPayment")
	}
	return nil
}

func (c *Client) OrderDetails(ctx context.Context, orderID string) (*domain.Order, error) {
	var resp struct {
		envelope
		Order map[string]interface{} `json:"order"`
	}
	params := url.Values{"orderId": {orderID}}
	if err := c.get(ctx, "getOrderDetails", params, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Order == nil {
		return nil, domain.ErrOrderNotFound
	}
	o := orderFromRow(resp.Order)
	return &o, nil
}

func (c *Client) UserOrders(ctx context.Context, email string) ([]domain.Order, error) {
	var resp struct {
		envelope
		Orders []map[string]interface{} `json:"orders"`
	}
	params := url.Values{"email": {email}}
	if err := c.get(ctx, "getUserOrders", params, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, resp.err("getUserOrders")
	}
	orders := make([]domain.Order, 0, len(resp.Orders))
	for _, row := range resp.Orders {
		orders = append(orders, orderFromRow(row))
	}
	return orders, nil
}

// ----- Notifications -----

func (c *Client) SendBankTransferEmail(ctx context.Context, email, name, orderID string, amount float64) error {
	var resp envelope
	err := c.post(ctx, "sendBankTransferEmail", map[string]interface{}{
		"userEmail":   email,
		"name":        name,
		"orderId":     orderID,
		"totalAmount": amount,
	}, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		return resp.err("sendBankTransferEmail")
	}
	return nil
}
