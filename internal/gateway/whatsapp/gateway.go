package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pickuppoint/internal/gateway"
	retrierconfig "pickuppoint/pkg/retrier"
	"pickuppoint/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "whatsapp-gateway"

	requestTimeout = 5 * time.Second

	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 4 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

var errRetryableStatus = errors.New("retryable http status")

type Config struct {
	BaseURL    string
	AccountSID string
	AuthToken  string
	From       string
}

// Gateway pushes WhatsApp messages through a Twilio-style messaging API
// (form-encoded POST to Messages.json). An empty BaseURL means no push
// provider is configured; the dispatcher then falls back to wa.me links.
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

func (g *Gateway) Send(ctx context.Context, phone, message string) error {
	if !g.Configured() {
		return fmt.Errorf("whatsapp gateway is not configured")
	}

	form := url.Values{}
	form.Set("To", "whatsapp:"+phone)
	form.Set("From", "whatsapp:"+g.cfg.From)
	form.Set("Body", message)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json",
		strings.TrimRight(g.cfg.BaseURL, "/"), g.cfg.AccountSID)

	err := g.executeWithMetrics(ctx, "CreateMessage", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.SetBasicAuth(g.cfg.AccountSID, g.cfg.AuthToken)

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
		return fmt.Errorf("gateway whatsapp, send to %s: %w", phone, err)
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

	code := "200"
	if err != nil {
		code = "error"
	}
	gateway.RequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		gateway.RetriesTotal.WithLabelValues(serviceName, method, code).Add(float64(attempt - 1))
	}

	return err
}
