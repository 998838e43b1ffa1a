// pix-broker/internal/gateway/buckpay.go
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperr "github.com/example/pix-broker/pkg/errors"
)

// Buckpay requires this exact User-Agent on every call.
const buckpayUserAgent = "PixBroker/1.0"

// Buckpay creates PIX charges through Buckpay's transaction API: JSON body,
// bearer-token auth, QR image returned as raw base64.
type Buckpay struct {
	BaseURL string
	Client  *http.Client
}

func (b *Buckpay) Name() string { return "buckpay" }

type buckpayRequest struct {
	ExternalID    string `json:"external_id"`
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"payment_method"`
}

type buckpayResponse struct {
	Data struct {
		Pix struct {
			Code         string `json:"code"`
			QRCodeBase64 string `json:"qrcode_base64"`
		} `json:"pix"`
	} `json:"data"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (b *Buckpay) CreateCharge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	if err := requireSettings(req.Settings, "apiToken"); err != nil {
		return nil, err
	}

	body, err := json.Marshal(buckpayRequest{
		ExternalID:    req.LinkID,
		Amount:        req.AmountCents,
		PaymentMethod: "pix",
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "encode buckpay request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.BaseURL+"/v1/transactions", bytes.NewReader(body))
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "build buckpay request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", buckpayUserAgent)
	httpReq.Header.Set("Authorization", "Bearer "+req.Settings["apiToken"])

	resp, err := b.Client.Do(httpReq)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeGatewayRequest, "buckpay unreachable", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeGatewayRequest, "read buckpay response", err)
	}

	var out buckpayResponse
	_ = json.Unmarshal(raw, &out)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := out.Message
		if msg == "" {
			msg = out.Error
		}
		if msg == "" {
			msg = fmt.Sprintf("buckpay returned status %d", resp.StatusCode)
		}
		return nil, apperr.New(apperr.CodeGatewayRequest, msg)
	}
	if out.Data.Pix.Code == "" {
		return nil, apperr.New(apperr.CodeGatewayRequest, "buckpay response missing pix code")
	}

	return &ChargeResult{
		PixCode:     out.Data.Pix.Code,
		QRCodeImage: "data:image/png;base64," + out.Data.Pix.QRCodeBase64,
	}, nil
}
