// pix-broker/internal/store/store.go
package store

import "context"

// Account holds a merchant's gateway selection and the credentials that
// gateway needs. GatewaySettings is free-form; each provider checks its own
// required fields at charge time.
type Account struct {
	ID              string
	ActiveGateway   string
	GatewaySettings map[string]string
}

// PaymentLink is a checkout link created ahead of time. PlanValue is the
// decimal amount the customer pays.
type PaymentLink struct {
	AccountID string
	LinkID    string
	PlanValue float64
}

type Store interface {
	GetAccount(ctx context.Context, accountID string) (*Account, error)
	GetPaymentLink(ctx context.Context, accountID, linkID string) (*PaymentLink, error)
}
