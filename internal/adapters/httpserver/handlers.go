// internal/adapters/httpserver/handlers.go
package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/macgtech/storefront/internal/domain"
)

// ----- Catalog -----

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.catalog.Products(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

func (s *Server) getProduct(c *gin.Context) {
	product, err := s.catalog.ProductByID(c.Request.Context(), c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

// ----- Auth -----

type registerRequest struct {
	Email          string `json:"email" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone"`
	CompanyName    string `json:"companyName"`
	Address        string `json:"deliveryAddress"`
	CompanyAddress string `json:"companyAddress"`
	Subscribe      bool   `json:"subscribe"`
	Company        bool   `json:"companyTickBox"`
	OldEmail       string `json:"oldEmail"`
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}
	user := &domain.User{
		Email:          req.Email,
		Name:           req.Name,
		Phone:          req.Phone,
		Company:        req.Company,
		CompanyName:    req.CompanyName,
		Address:        req.Address,
		CompanyAddress: req.CompanyAddress,
		Subscribe:      req.Subscribe,
	}
	if err := s.auth.Register(c.Request.Context(), user, req.OldEmail); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User registered, password setup email sent"})
}

func (s *Server) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}
	token, user, err := s.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user": user})
}

func (s *Server) setupPassword(c *gin.Context) {
	var req struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}
	if err := s.auth.SetupPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password set"})
}

func (s *Server) sendPasswordLink(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}
	if err := s.auth.SendPasswordLink(c.Request.Context(), req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) getProfile(c *gin.Context) {
	user, err := s.auth.Profile(c.Request.Context(), c.GetString("email"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (s *Server) updateProfile(c *gin.Context) {
	var user domain.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}
	user.Email = c.GetString("email")
	if err := s.auth.UpdateProfile(c.Request.Context(), &user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ----- Cart -----

func (s *Server) getCart(c *gin.Context) {
	items, err := s.cart.Get(c.Request.Context(), c.GetString("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cart": items})
}

func (s *Server) replaceCart(c *gin.Context) {
	var req struct {
		Cart []domain.CartItem `json:"cart"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}
	items, err := s.cart.Replace(c.Request.Context(), c.GetString("email"), req.Cart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cart": items})
}

func (s *Server) clearCart(c *gin.Context) {
	if err := s.cart.Clear(c.Request.Context(), c.GetString("email")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "cart cleared"})
}

// ----- Checkout -----

type checkoutRequest struct {
	PaymentMethod   string `json:"paymentMethod" binding:"required"`
	DeliveryAddress string `json:"deliveryAddress"`
}

// checkout creates the order from the ledger cart and hands off to the
// chosen provider. The order survives a failed handoff; the response
// always carries the order id once it exists.
func (s *Server) checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}
	email := c.GetString("email")
	ctx := c.Request.Context()

	user, err := s.auth.RequireFreshLogin(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrStaleLogin) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Session expired, please log in again"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid session"})
		return
	}

	address := req.DeliveryAddress
	if address == "" {
		address = user.Address
	}

	items, err := s.cart.Get(ctx, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	order, err := s.orders.CreateOrder(ctx, email, items, address, domain.PaymentMethod(req.PaymentMethod))
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	handoff, err := s.orders.InitiateCheckout(ctx, order.OrderID, order.TotalAmount, order.PaymentMethod, email, user.Name)
	if err != nil {
		if errors.Is(err, domain.ErrNotification) {
			// Order exists and stays pending; surface the failure without
			// rolling anything back.
			c.JSON(http.StatusOK, gin.H{
				"success":     true,
				"orderId":     order.OrderID,
				"bankDetails": handoff.BankDetails,
				"notified":    false,
				"message":     "order created, but the bank transfer email could not be sent",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "orderId": order.OrderID, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"orderId":     order.OrderID,
		"url":         handoff.RedirectURL,
		"bankDetails": handoff.BankDetails,
		"notified":    handoff.Notified,
	})
}

type stripeCheckoutRequest struct {
	OrderID string  `json:"orderId"`
	Amount  float64 `json:"amount"`
	Email   string  `json:"email"`
	Name    string  `json:"name"`
}

func (s *Server) stripeCheckout(c *gin.Context) {
	var req stripeCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderID == "" || req.Amount == 0 || req.Email == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing orderId, amount, email, or name"})
		return
	}
	handoff, err := s.orders.InitiateCheckout(c.Request.Context(), req.OrderID, req.Amount, domain.MethodCard, req.Email, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": handoff.RedirectURL})
}

type coinbaseCheckoutRequest struct {
	UserEmail         string  `json:"userEmail"`
	Name              string  `json:"name"`
	OrderID           string  `json:"orderId"`
	TotalWithDelivery float64 `json:"totalWithDelivery"`
}

func (s *Server) coinbaseCheckout(c *gin.Context) {
	var req coinbaseCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderID == "" || req.TotalWithDelivery == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing orderId or totalWithDelivery"})
		return
	}
	handoff, err := s.orders.InitiateCheckout(c.Request.Context(), req.OrderID, req.TotalWithDelivery, domain.MethodCrypto, req.UserEmail, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create Coinbase checkout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "url": handoff.RedirectURL})
}

// ----- Webhooks -----

// Webhook handlers verify the signature first, then reconcile. Once an
// event is structurally valid the response is 200 regardless of the
// downstream ledger outcome, so the provider stops retrying; ledger
// failures are logged because they leave the order stuck pending.
func (s *Server) stripeWebhook(c *gin.Context) {
	s.handleWebhook(c, s.card, "stripe-signature")
}

func (s *Server) coinbaseWebhook(c *gin.Context) {
	s.handleWebhook(c, s.crypto, "X-CC-Webhook-Signature")
}

type webhookVerifier interface {
	VerifyWebhook(payload []byte, signatureHeader string) (*domain.PaymentEvent, error)
}

func (s *Server) handleWebhook(c *gin.Context, verifier webhookVerifier, sigHeader string) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "unreadable body"})
		return
	}
	sig := c.GetHeader(sigHeader)
	if sig == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "missing signature"})
		return
	}

	event, err := verifier.VerifyWebhook(payload, sig)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "webhook verification failed"})
		return
	}

	if err := s.orders.Reconcile(c.Request.Context(), event); err != nil {
		if errors.Is(err, domain.ErrMalformedWebhook) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		log.Printf("webhook %s %s: reconcile failed, order %q may be stuck pending: %v",
			event.Provider, event.Type, event.OrderID, err)
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "received": true})
}

// ----- Orders -----

func (s *Server) listOrders(c *gin.Context) {
	orders, err := s.orders.Orders(c.Request.Context(), c.GetString("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

func (s *Server) getOrder(c *gin.Context) {
	order, err := s.lookupOwnOrder(c)
	if err != nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (s *Server) getInvoice(c *gin.Context) {
	if _, err := s.lookupOwnOrder(c); err != nil {
		return
	}
	invoice, err := s.orders.Invoice(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "invoice": invoice})
}

func (s *Server) confirmPayment(c *gin.Context) {
	err := s.orders.ConfirmBankTransfer(c.Request.Context(), c.Param("orderId"), c.GetString("email"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "order not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) lookupOwnOrder(c *gin.Context) (*domain.Order, error) {
	order, err := s.orders.OrderDetails(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		}
		return nil, err
	}
	if order.UserEmail != c.GetString("email") {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "order not found"})
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}
