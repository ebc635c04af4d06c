// internal/domain/models.go
package domain

import "time"

// User is the account record held by the ledger, keyed by email.
type User struct {
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Company        bool      `json:"company"`
	CompanyName    string    `json:"companyName"`
	Address        string    `json:"address"`
	CompanyAddress string    `json:"companyAddress"`
	Subscribe      bool      `json:"subscribe"`
	HasPassword    bool      `json:"hasPassword"`
	LastLoggedIn   time.Time `json:"lastLoggedIn"`
}

type Product struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	Subcategory  string           `json:"subcategory"`
	Description  string           `json:"description"`
	Price        float64          `json:"price"`
	SpecialPrice float64          `json:"specialPrice,omitempty"`
	Stock        string           `json:"stock"`
	Features     string           `json:"features,omitempty"`
	Tags         string           `json:"tags,omitempty"`
	Dimensions   string           `json:"dimensions,omitempty"`
	ImageURLs    []string         `json:"imageUrls"`
	Variants     []ProductVariant `json:"variants,omitempty"`
}

type ProductVariant struct {
	Name    string `json:"name"`
	Barcode string `json:"barcode"`
	Stock   string `json:"stock"`
	Image   string `json:"image"`
}

// CartItem is one line of a user's cart. TotalPrice is always recomputed
// server-side as Quantity * Price before the cart is written back.
type CartItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Variant     string  `json:"variant"`
	Barcode     string  `json:"barcode,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	TotalPrice  float64 `json:"totalPrice"`
	Image       string  `json:"image,omitempty"`
}

// Order mirrors the ledger's order sheet. The ledger assigns OrderID
// (ORD-...) when the order row is created.
type Order struct {
	OrderID         string        `json:"orderId"`
	UserEmail       string        `json:"userEmail"`
	Items           []CartItem    `json:"items"`
	DeliveryAddress string        `json:"deliveryAddress"`
	DeliveryFee     float64       `json:"deliveryFee"`
	TotalAmount     float64       `json:"totalAmount"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	PaymentIntent   string        `json:"paymentIntent,omitempty"`
	Status          OrderStatus   `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}

func (o *Order) Subtotal() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += it.TotalPrice
	}
	return sum
}

// PaymentEvent is the provider-neutral form of a verified webhook payload.
type PaymentEvent struct {
	Provider      string `json:"provider"`
	Type          string `json:"type"`
	OrderID       string `json:"orderId"`
	PaymentIntent string `json:"paymentIntent,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
}

// BankDetails are the static transfer instructions shown (and emailed) for
// bank-transfer orders. Reference is the order id.
type BankDetails struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	Reference     string `json:"reference"`
}

// CheckoutHandoff is what the coordinator returns once an order exists:
// either a provider-hosted URL to redirect to, or bank details for the
// payment-pending view.
type CheckoutHandoff struct {
	OrderID     string       `json:"orderId"`
	RedirectURL string       `json:"url,omitempty"`
	BankDetails *BankDetails `json:"bankDetails,omitempty"`
	Notified    bool         `json:"notified"`
}

// Invoice is the printable document derived from an order. Prices are GST
// inclusive; GSTContent is the tax portion of the total.
type Invoice struct {
	OrderID     string        `json:"orderId"`
	IssuedTo    string        `json:"issuedTo"`
	Address     string        `json:"address"`
	Lines       []InvoiceLine `json:"lines"`
	Subtotal    float64       `json:"subtotal"`
	DeliveryFee float64       `json:"deliveryFee"`
	GSTContent  float64       `json:"gstContent"`
	Total       float64       `json:"total"`
	IssuedAt    time.Time     `json:"issuedAt"`
}

type InvoiceLine struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	LineTotal   float64 `json:"lineTotal"`
}
