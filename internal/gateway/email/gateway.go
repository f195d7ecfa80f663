package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"pickuppoint/internal/gateway"
	retrierconfig "pickuppoint/pkg/retrier"
	"pickuppoint/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "email-gateway"

	requestTimeout = 5 * time.Second

	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 4 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

var errRetryableStatus = errors.New("retryable http status")

type Config struct {
	BaseURL string
	APIKey  string
	From    string
}

// Gateway delivers transactional email through a Resend-style HTTP API
// (POST /emails with a JSON body). An empty BaseURL means the channel is
// not configured for this deployment.
type Gateway struct {
	cfg        Config
	httpClient httpDoer
	retrier    retrier
}

func New(cfg Config) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: requestTimeout},
		retrier:    backoff_adapter.New(retryConfig),
	}
}

func (g *Gateway) Configured() bool {
	return g.cfg.BaseURL != ""
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (g *Gateway) Send(ctx context.Context, recipient, subject, htmlBody string) error {
	if !g.Configured() {
		return fmt.Errorf("email gateway is not configured")
	}

	body, err := json.Marshal(sendRequest{
		From:    g.cfg.From,
		To:      []string{recipient},
		Subject: subject,
		HTML:    htmlBody,
	})
	if err != nil {
		return fmt.Errorf("marshal email request: %w", err)
	}

	err = g.executeWithMetrics(ctx, "SendEmail", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/emails", bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

		resp, err := g.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer func() {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}()

		return checkStatus(resp.StatusCode)
	})
	if err != nil {
		return fmt.Errorf("gateway email, send to %s: %w", recipient, err)
	}

	return nil
}

func checkStatus(code int) error {
	switch {
	case code < 300:
		return nil
	case code == http.StatusTooManyRequests || code >= 500:
		return fmt.Errorf("%w: %d", errRetryableStatus, code)
	default:
		return fmt.Errorf("http status %d", code)
	}
}

func isRetryable(err error) bool {
	return errors.Is(err, errRetryableStatus)
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := resultCode(err)
	gateway.RequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		gateway.RetriesTotal.WithLabelValues(serviceName, method, code).Add(float64(attempt - 1))
	}

	return err
}

func resultCode(err error) string {
	if err == nil {
		return strconv.Itoa(http.StatusOK)
	}
	return "error"
}
