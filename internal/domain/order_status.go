package domain

// OrderStatus values match the ledger's status column verbatim.
type OrderStatus string

const (
	StatusPendingPayment OrderStatus = "Pending Payment"
	StatusPaid           OrderStatus = "Paid"
	StatusFailed         OrderStatus = "Failed"
)

func (s OrderStatus) IsTerminal() bool {
	return s == StatusPaid || s == StatusFailed
}

// CanTransitionTo allows Pending Payment -> {Paid, Failed} and the
// status-overwrite no-op (repeating an identical terminal status), which
// keeps webhook reconciliation idempotent. Terminal states never move.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	return s == StatusPendingPayment && next.IsTerminal()
}

func (s OrderStatus) String() string {
	return string(s)
}

type PaymentMethod string

const (
	MethodCard         PaymentMethod = "Card"
	MethodBankTransfer PaymentMethod = "Bank Transfer"
	MethodCrypto       PaymentMethod = "Crypto"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCard, MethodBankTransfer, MethodCrypto:
		return true
	}
	return false
}
