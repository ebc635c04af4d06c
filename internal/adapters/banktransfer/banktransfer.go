// internal/adapters/banktransfer/banktransfer.go
package banktransfer

import (
	"context"
	"fmt"

	"github.com/macgtech/storefront/internal/domain"
	"github.com/macgtech/storefront/internal/ports"
)

// Notifier emails bank transfer instructions through the ledger's
// sendBankTransferEmail action. There is no provider session and no
// webhook for this method; orders stay Pending Payment until an operator
// confirms the transfer manually.
type Notifier struct {
	ledger  ports.LedgerPort
	bank    string
	account string
}

func NewNotifier(ledger ports.LedgerPort, bank, account string) *Notifier {
	return &Notifier{ledger: ledger, bank: bank, account: account}
}

func (n *Notifier) Notify(ctx context.Context, email, name, orderID string, amount float64) error {
	if err := n.ledger.SendBankTransferEmail(ctx, email, name, orderID, amount); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNotification, err)
	}
	return nil
}

// Details returns the static instructions shown on the payment-pending
// view. The order id doubles as the payment reference.
func (n *Notifier) Details(orderID string) *domain.BankDetails {
	return &domain.BankDetails{
		BankName:      n.bank,
		AccountNumber: n.account,
		Reference:     orderID,
	}
}
