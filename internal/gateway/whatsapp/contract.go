package whatsapp

import (
	"context"
	"net/http"
)

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}
