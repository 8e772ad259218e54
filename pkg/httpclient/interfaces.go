package httpclient

import "context"

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client abstracts HTTP calls so callers can inject fakes or different transports.
// Paths are resolved against the client's base URL.
type Client interface {
	Get(ctx context.Context, path string, query map[string]string) (Response, error)
	Post(ctx context.Context, path string, body []byte) (Response, error)
}
