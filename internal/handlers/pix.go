// pix-broker/internal/handlers/pix.go
package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/example/pix-broker/internal/gateway"
	"github.com/example/pix-broker/internal/queue"
	"github.com/example/pix-broker/internal/store"
	apperr "github.com/example/pix-broker/pkg/errors"
	m "github.com/example/pix-broker/pkg/metrics"
)

// Publisher lets tests swap the Kafka bus for a recorder.
type Publisher interface {
	PublishChargeCreated(ctx context.Context, ev queue.ChargeCreated) error
}

type Deps struct {
	Store    store.Store
	Gateways *gateway.Registry
	Bus      Publisher
}

// CreatePixHandler brokers one PIX charge: validate, load the link and
// account configuration, dispatch to the account's active gateway and return
// the normalized result.
func CreatePixHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Preflight: CORS headers are added by the outer middleware.
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		var in CreatePixIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, apperr.New(apperr.CodeValidation, "invalid JSON body"))
			return
		}
		if in.LinkID == "" || in.AccountID == "" || in.CustomerName == "" {
			writeError(w, apperr.New(apperr.CodeValidation, "linkId, accountId and customerName are required"))
			return
		}

		ctx := r.Context()

		// Both lookups run in parallel; the first failure short-circuits.
		var (
			link *store.PaymentLink
			acct *store.Account
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			link, err = d.Store.GetPaymentLink(gctx, in.AccountID, in.LinkID)
			return err
		})
		g.Go(func() error {
			var err error
			acct, err = d.Store.GetAccount(gctx, in.AccountID)
			return err
		})
		if err := g.Wait(); err != nil {
			writeError(w, err)
			return
		}

		gw, err := d.Gateways.Resolve(acct.ActiveGateway)
		if err != nil {
			log.Printf("[pix-broker] account %s: %v", acct.ID, err)
			writeError(w, err)
			return
		}

		amount := gateway.Cents(link.PlanValue)
		res, err := gw.CreateCharge(ctx, gateway.ChargeRequest{
			LinkID:       in.LinkID,
			CustomerName: in.CustomerName,
			AmountCents:  amount,
			Settings:     acct.GatewaySettings,
		})
		if err != nil {
			m.IncGatewayCharge(acct.ActiveGateway, "FAILED")
			log.Printf("[pix-broker] %s charge for link %s: %v", acct.ActiveGateway, in.LinkID, err)
			writeError(w, err)
			return
		}
		m.IncGatewayCharge(acct.ActiveGateway, "SUCCESS")

		// Fire-and-forget: a lost event never fails the checkout.
		if d.Bus != nil {
			ev := queue.ChargeCreated{
				AccountID:   in.AccountID,
				LinkID:      in.LinkID,
				Gateway:     acct.ActiveGateway,
				AmountCents: amount,
				CreatedAt:   time.Now().UTC(),
			}
			if err := d.Bus.PublishChargeCreated(ctx, ev); err != nil {
				log.Printf("[pix-broker] publish charge event: %v", err)
			}
		}

		writeJSON(w, http.StatusOK, CreatePixOut{
			Success:     true,
			PixCode:     res.PixCode,
			QRCodeImage: res.QRCodeImage,
		})
	}
}
