// pix-broker/internal/gateway/zeroonepay_test.go
package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestZeroOnePayCreateCharge(t *testing.T) {
	var (
		gotMethod string
		gotQuery  url.Values
		gotAuth   string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"pix_code":"XYZ","qrcode_image":"https://img/x.png"}}`))
	}))
	defer srv.Close()

	z := &ZeroOnePay{BaseURL: srv.URL, Client: srv.Client()}
	res, err := z.CreateCharge(context.Background(), ChargeRequest{
		LinkID:       "link-2",
		CustomerName: "João Souza",
		AmountCents:  1000,
		Settings: map[string]string{
			"apiToken":    "tok-z",
			"offerHash":   "off-1",
			"productHash": "prd-1",
		},
	})
	if err != nil {
		t.Fatalf("CreateCharge returned error: %v", err)
	}

	if res.PixCode != "XYZ" {
		t.Errorf("PixCode = %q, want XYZ", res.PixCode)
	}
	if res.QRCodeImage != "https://img/x.png" {
		t.Errorf("QRCodeImage = %q, want https://img/x.png", res.QRCodeImage)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %q, want POST", gotMethod)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want no auth header", gotAuth)
	}
	want := map[string]string{
		"api_token":      "tok-z",
		"offer_hash":     "off-1",
		"product_hash":   "prd-1",
		"amount":         "1000",
		"customer_name":  "João Souza",
		"customer_email": zeroOnePayPlaceholderEmail,
		"payment_method": "pix",
	}
	for k, v := range want {
		if got := gotQuery.Get(k); got != v {
			t.Errorf("query %s = %q, want %q", k, got, v)
		}
	}
}

func TestZeroOnePayCreateChargeSuccessFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"message":"oferta expirada"}`))
	}))
	defer srv.Close()

	z := &ZeroOnePay{BaseURL: srv.URL, Client: srv.Client()}
	_, err := z.CreateCharge(context.Background(), ChargeRequest{
		LinkID:      "link-2",
		AmountCents: 1000,
		Settings: map[string]string{
			"apiToken":    "tok-z",
			"offerHash":   "off-1",
			"productHash": "prd-1",
		},
	})
	if err == nil {
		t.Fatal("CreateCharge should fail when the body flags success=false")
	}
	if !strings.Contains(err.Error(), "oferta expirada") {
		t.Errorf("error %q should carry the provider message", err)
	}
}

func TestZeroOnePayCreateChargeHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	z := &ZeroOnePay{BaseURL: srv.URL, Client: srv.Client()}
	_, err := z.CreateCharge(context.Background(), ChargeRequest{
		LinkID:      "link-2",
		AmountCents: 1000,
		Settings: map[string]string{
			"apiToken":    "tok-z",
			"offerHash":   "off-1",
			"productHash": "prd-1",
		},
	})
	if err == nil {
		t.Fatal("CreateCharge should fail on non-2xx status")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("error %q should fall back to the status code", err)
	}
}

func TestZeroOnePayCreateChargeMissingCredentials(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	defer srv.Close()

	z := &ZeroOnePay{BaseURL: srv.URL, Client: srv.Client()}
	_, err := z.CreateCharge(context.Background(), ChargeRequest{
		LinkID:      "link-2",
		AmountCents: 1000,
		Settings:    map[string]string{"apiToken": "tok-z"},
	})
	if err == nil {
		t.Fatal("CreateCharge should fail without offerHash and productHash")
	}
	if !strings.Contains(err.Error(), "offerHash") {
		t.Errorf("error %q should name the first missing field", err)
	}
	if called {
		t.Error("no outbound call may happen when credentials are missing")
	}
}
