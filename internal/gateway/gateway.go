// pix-broker/internal/gateway/gateway.go
package gateway

import (
	"context"
	"math"

	apperr "github.com/example/pix-broker/pkg/errors"
)

// ChargeRequest carries everything a provider needs to create a PIX charge.
type ChargeRequest struct {
	LinkID       string
	CustomerName string
	AmountCents  int64
	Settings     map[string]string
}

// ChargeResult is the normalized provider response: a copy-paste PIX code and
// an image reference the frontend can render as-is.
type ChargeResult struct {
	PixCode     string
	QRCodeImage string
}

type Gateway interface {
	Name() string
	CreateCharge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// Cents converts a decimal amount to integer cents, rounding half away from
// zero. Providers are sensitive to off-by-one-cent mismatches, so this stays
// exactly round(value*100).
func Cents(value float64) int64 {
	return int64(math.Round(value * 100))
}

// Registry maps an account's activeGateway value to a provider strategy.
// Adding a provider is Register only; existing variants are never touched.
type Registry struct {
	gateways map[string]Gateway
}

func NewRegistry(gws ...Gateway) *Registry {
	r := &Registry{gateways: make(map[string]Gateway, len(gws))}
	for _, g := range gws {
		r.Register(g)
	}
	return r
}

func (r *Registry) Register(g Gateway) {
	r.gateways[g.Name()] = g
}

func (r *Registry) Resolve(name string) (Gateway, error) {
	g, ok := r.gateways[name]
	if !ok {
		return nil, apperr.New(apperr.CodeUnsupportedGateway, "unsupported gateway: "+name)
	}
	return g, nil
}

// requireSettings rejects a charge before any outbound call when a credential
// field is absent or empty.
func requireSettings(settings map[string]string, fields ...string) error {
	for _, f := range fields {
		if settings[f] == "" {
			return apperr.New(apperr.CodeMissingCredentials, "missing gateway credential: "+f)
		}
	}
	return nil
}
