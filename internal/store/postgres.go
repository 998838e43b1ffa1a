// pix-broker/internal/store/postgres.go
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	apperr "github.com/example/pix-broker/pkg/errors"
)

// Postgres reads account and payment-link documents. gateway_settings is a
// jsonb column decoded straight into the settings map.
type Postgres struct {
	pool *pgxpool.Pool
}

var (
	connectOnce sync.Once
	shared      *Postgres
	connectErr  error
)

// Connect returns the process-wide store, opening the pool on first call.
// Later calls reuse the same pool; the pool carries no request state.
func Connect(ctx context.Context, dsn string) (*Postgres, error) {
	connectOnce.Do(func() {
		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			connectErr = err
			return
		}
		shared = &Postgres{pool: pool}
	})
	return shared, connectErr
}

func (p *Postgres) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	var a Account
	err := p.pool.QueryRow(ctx,
		`SELECT id, active_gateway, gateway_settings FROM accounts WHERE id = $1`,
		accountID,
	).Scan(&a.ID, &a.ActiveGateway, &a.GatewaySettings)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.New(apperr.CodeAccountNotFound, "account configuration not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "query account", err)
	}
	return &a, nil
}

func (p *Postgres) GetPaymentLink(ctx context.Context, accountID, linkID string) (*PaymentLink, error) {
	var l PaymentLink
	err := p.pool.QueryRow(ctx,
		`SELECT account_id, link_id, plan_value FROM payment_links WHERE account_id = $1 AND link_id = $2`,
		accountID, linkID,
	).Scan(&l.AccountID, &l.LinkID, &l.PlanValue)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.New(apperr.CodeLinkNotFound, "payment link not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "query payment link", err)
	}
	return &l, nil
}
