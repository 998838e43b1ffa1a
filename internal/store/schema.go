// pix-broker/internal/store/schema.go
package store

import (
	"context"

	apperr "github.com/example/pix-broker/pkg/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS accounts (
	id               TEXT PRIMARY KEY,
	active_gateway   TEXT NOT NULL,
	gateway_settings JSONB NOT NULL DEFAULT '{}'::jsonb
);

CREATE TABLE IF NOT EXISTS payment_links (
	account_id TEXT NOT NULL REFERENCES accounts(id),
	link_id    TEXT NOT NULL,
	plan_value NUMERIC(12,2) NOT NULL,
	PRIMARY KEY (account_id, link_id)
);
`

// EnsureSchema creates the tables when they do not exist yet.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, schema); err != nil {
		return apperr.Wrap(apperr.CodeInternal, "ensure schema", err)
	}
	return nil
}
