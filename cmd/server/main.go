// pix-broker/cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/example/pix-broker/internal/config"
	"github.com/example/pix-broker/internal/gateway"
	"github.com/example/pix-broker/internal/handlers"
	"github.com/example/pix-broker/internal/queue"
	"github.com/example/pix-broker/internal/store"
	m "github.com/example/pix-broker/pkg/metrics"
)

const serviceName = "pix-broker"

func main() {
	cfg := config.Load()

	ctx := context.Background()
	st, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[%s] connect store: %v", serviceName, err)
	}
	if err := st.EnsureSchema(ctx); err != nil {
		log.Fatalf("[%s] ensure schema: %v", serviceName, err)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	registry := gateway.NewRegistry(
		&gateway.Buckpay{BaseURL: cfg.BuckpayBaseURL, Client: client},
		&gateway.ZeroOnePay{BaseURL: cfg.ZeroOnePayBaseURL, Client: client},
	)

	bus := queue.New(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer bus.Close()

	r := handlers.NewRouter(handlers.Deps{Store: st, Gateways: registry, Bus: bus})
	r.Use(metricsMiddleware)

	// Only the checkout frontend may call this endpoint.
	c := cors.New(cors.Options{
		AllowedOrigins:       []string{cfg.AllowedOrigin},
		AllowedMethods:       []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders:       []string{"Content-Type"},
		OptionsSuccessStatus: http.StatusOK,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      c.Handler(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Printf("[%s] shutting down", serviceName)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("[%s] shutdown: %v", serviceName, err)
		}
	}()

	log.Printf("%s listening at %s", serviceName, cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("[%s] server error: %v", serviceName, err)
	}
}

/*************** Metrics middleware ***************/
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		statusLabel := "FAILED"
		if rec.status >= 200 && rec.status < 400 {
			statusLabel = "SUCCESS"
		}
		m.IncRequest(serviceName, statusLabel, r.Method)
		m.ObserveDuration(serviceName, statusLabel, time.Since(start).Seconds())
	})
}
