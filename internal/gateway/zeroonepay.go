// pix-broker/internal/gateway/zeroonepay.go
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	apperr "github.com/example/pix-broker/pkg/errors"
)

// ZeroOnePay has no per-customer email on the checkout link, so charges are
// created with this placeholder.
const zeroOnePayPlaceholderEmail = "cliente@pagamento.com"

// ZeroOnePay creates PIX charges through ZeroOnePay's API. Everything goes in
// the query string; there is no auth header, the api_token parameter is the
// credential.
type ZeroOnePay struct {
	BaseURL string
	Client  *http.Client
}

func (z *ZeroOnePay) Name() string { return "zeroonepay" }

type zeroOnePayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		PixCode     string `json:"pix_code"`
		QRCodeImage string `json:"qrcode_image"`
	} `json:"data"`
}

func (z *ZeroOnePay) CreateCharge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	if err := requireSettings(req.Settings, "apiToken", "offerHash", "productHash"); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("api_token", req.Settings["apiToken"])
	q.Set("offer_hash", req.Settings["offerHash"])
	q.Set("product_hash", req.Settings["productHash"])
	q.Set("amount", strconv.FormatInt(req.AmountCents, 10))
	q.Set("customer_name", req.CustomerName)
	q.Set("customer_email", zeroOnePayPlaceholderEmail)
	q.Set("payment_method", "pix")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, z.BaseURL+"/api/v1/transactions?"+q.Encode(), nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "build zeroonepay request", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := z.Client.Do(httpReq)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeGatewayRequest, "zeroonepay unreachable", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeGatewayRequest, "read zeroonepay response", err)
	}

	var out zeroOnePayResponse
	_ = json.Unmarshal(raw, &out)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !out.Success {
		msg := out.Message
		if msg == "" && (resp.StatusCode < 200 || resp.StatusCode >= 300) {
			msg = fmt.Sprintf("zeroonepay returned status %d", resp.StatusCode)
		}
		if msg == "" {
			msg = "zeroonepay rejected the charge"
		}
		return nil, apperr.New(apperr.CodeGatewayRequest, msg)
	}
	if out.Data.PixCode == "" {
		return nil, apperr.New(apperr.CodeGatewayRequest, "zeroonepay response missing pix code")
	}

	return &ChargeResult{
		PixCode:     out.Data.PixCode,
		QRCodeImage: out.Data.QRCodeImage,
	}, nil
}
