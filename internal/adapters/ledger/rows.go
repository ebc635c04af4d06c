// internal/adapters/ledger/rows.go
package ledger

import (
	"fmt"
	"strconv"
	"time"

	"github.com/macgtech/storefront/internal/domain"
)

// The ledger returns sheet rows as JSON objects keyed by column header, with
// loosely typed values (numbers as strings, "Yes"/"No" flags). These helpers
// fold rows into domain types.

func str(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

func num(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, _ := strconv.ParseFloat(t, 64)
		return f
	default:
		return 0
	}
}

func yes(v interface{}) bool {
	return str(v) == "Yes"
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func rowTime(v interface{}) time.Time {
	s := str(v)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func productFromRow(row map[string]interface{}) domain.Product {
	p := domain.Product{
		ID:           str(row["Product ID"]),
		Name:         str(row["Product Name"]),
		Category:     str(row["Category"]),
		Subcategory:  str(row["Subcategory"]),
		Description:  str(row["Description"]),
		Price:        num(row["Price (GST Incl.)"]),
		SpecialPrice: num(row["Special Price"]),
		Stock:        str(row["Stock"]),
		Features:     str(row["Features"]),
		Tags:         str(row["Tags"]),
		Dimensions:   str(row["Dimensions"]),
	}
	for i := 1; i <= 10; i++ {
		if u := str(row[fmt.Sprintf("Image URL %d", i)]); u != "" {
			p.ImageURLs = append(p.ImageURLs, u)
		}
	}
	if v := str(row["Variant"]); v != "" {
		p.Variants = append(p.Variants, domain.ProductVariant{
			Name:    v,
			Barcode: str(row["Variant Barcode"]),
			Stock:   str(row["Stock"]),
		})
	}
	return p
}

func userFromRow(row map[string]interface{}) domain.User {
	return domain.User{
		Email:          str(row["Email"]),
		Name:           str(row["Name"]),
		Phone:          str(row["Phone"]),
		Company:        yes(row["Company"]),
		CompanyName:    str(row["Company Name"]),
		Address:        str(row["Address"]),
		CompanyAddress: str(row["Company Address"]),
		Subscribe:      yes(row["Subscribe"]),
		LastLoggedIn:   rowTime(row["Last Logged In"]),
	}
}

func cartItemFromRow(row map[string]interface{}) domain.CartItem {
	item := domain.CartItem{
		ProductID:   str(row["ProductID"]),
		ProductName: str(row["ProductName"]),
		Variant:     str(row["Variant"]),
		Barcode:     str(row["Barcode"]),
		Quantity:    int(num(row["Quantity"])),
		Price:       num(row["Price"]),
		TotalPrice:  num(row["TotalPrice"]),
		Image:       str(row["Image"]),
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	if item.TotalPrice == 0 {
		item.TotalPrice = float64(item.Quantity) * item.Price
	}
	return item
}

func orderFromRow(row map[string]interface{}) domain.Order {
	o := domain.Order{
		OrderID:         str(row["Order ID"]),
		UserEmail:       str(row["Email"]),
		DeliveryAddress: str(row["Delivery Address"]),
		DeliveryFee:     num(row["Delivery Fee"]),
		TotalAmount:     num(row["Total Amount"]),
		PaymentMethod:   domain.PaymentMethod(str(row["Payment Method"])),
		PaymentIntent:   str(row["Payment Intent"]),
		Status:          domain.OrderStatus(str(row["Status"])),
		CreatedAt:       rowTime(row["Created At"]),
	}
	if items, ok := row["Items"].([]interface{}); ok {
		for _, raw := range items {
			if m, ok := raw.(map[string]interface{}); ok {
				o.Items = append(o.Items, cartItemFromRow(m))
			}
		}
	}
	return o
}
