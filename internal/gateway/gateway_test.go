// pix-broker/internal/gateway/gateway_test.go
package gateway

import (
	"context"
	"strings"
	"testing"
)

func TestCents(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  int64
	}{
		{"whole amount", 10.00, 1000},
		{"typical price", 19.99, 1999},
		{"zero", 0, 0},
		{"single cent", 0.01, 1},
		// 1.005 has no exact float64 representation; it sits just below the
		// half-cent, so round(value*100) yields 100. Pinned so a rewrite does
		// not drift by one cent.
		{"half cent boundary", 1.005, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cents(tt.value); got != tt.want {
				t.Errorf("Cents(%v) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

type stubGateway struct {
	name string
}

func (s *stubGateway) Name() string { return s.name }

func (s *stubGateway) CreateCharge(context.Context, ChargeRequest) (*ChargeResult, error) {
	return &ChargeResult{PixCode: "stub"}, nil
}

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry(&stubGateway{name: "buckpay"})

	g, err := r.Resolve("buckpay")
	if err != nil {
		t.Fatalf("Resolve(buckpay) returned error: %v", err)
	}
	if g.Name() != "buckpay" {
		t.Errorf("resolved gateway name = %q, want buckpay", g.Name())
	}
}

func TestRegistryResolveUnknown(t *testing.T) {
	r := NewRegistry(&stubGateway{name: "buckpay"})

	_, err := r.Resolve("unknown-provider")
	if err == nil {
		t.Fatal("Resolve(unknown-provider) should fail")
	}
	if !strings.Contains(err.Error(), "unknown-provider") {
		t.Errorf("error %q should name the unrecognized gateway", err)
	}
}

func TestRegistryRegisterAddsProvider(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubGateway{name: "newpay"})

	if _, err := r.Resolve("newpay"); err != nil {
		t.Fatalf("Resolve(newpay) after Register returned error: %v", err)
	}
}

func TestRequireSettings(t *testing.T) {
	settings := map[string]string{"apiToken": "tok", "offerHash": ""}

	if err := requireSettings(settings, "apiToken"); err != nil {
		t.Errorf("present field should pass: %v", err)
	}
	if err := requireSettings(settings, "offerHash"); err == nil {
		t.Error("empty field should fail")
	}
	if err := requireSettings(settings, "productHash"); err == nil {
		t.Error("absent field should fail")
	}
	if err := requireSettings(nil, "apiToken"); err == nil {
		t.Error("nil settings should fail")
	}
}
