package lnd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/samvad-hq/lnd-rest/pkg/httpclient"
)

const (
	pathInvoices     = "/v1/invoices"
	pathInvoice      = "/v1/invoice/"
	pathTransactions = "/v1/channels/transactions"
	pathPayments     = "/v1/payments"
)

// Client talks to the REST gateway of one LND node. It is immutable once built
// and safe for concurrent use.
type Client struct {
	host     string
	macaroon Macaroon
	http     httpclient.Client
	log      Logger
}

// NewClient builds a client for host that trusts only the certificate(s) in
// certPath and authenticates every request with the macaroon in macaroonPath.
func NewClient(host, macaroonPath, certPath string, opts ...Option) (*Client, error) {
	base, err := normalizeHost(host)
	if err != nil {
		return nil, err
	}

	pool, err := LoadCertPool(certPath)
	if err != nil {
		return nil, err
	}
	mac, err := LoadMacaroon(macaroonPath)
	if err != nil {
		return nil, err
	}

	o := applyOptions(opts)
	transport, err := httpclient.NewRestyClient(httpclient.Options{
		BaseURL:   base,
		Timeout:   o.timeout,
		RootCAs:   pool,
		Headers:   mac.headers(),
		UserAgent: o.userAgent,
		Socks:     o.socks,
		Logger:    o.restyLogger(),
	})
	if err != nil {
		return nil, &TransportError{Op: "build transport", Err: err}
	}

	o.log.InfoObj("lnd client initialized", "lnd_client", map[string]any{
		"host":        base,
		"timeout":     o.timeout.String(),
		"socks_proxy": o.socks != nil,
	})
	return &Client{host: base, macaroon: mac, http: transport, log: o.log}, nil
}

// NewClientWithTransport builds a client on a caller-supplied transport, which
// is then responsible for TLS trust and authentication.
func NewClientWithTransport(host string, transport httpclient.Client, opts ...Option) (*Client, error) {
	base, err := normalizeHost(host)
	if err != nil {
		return nil, err
	}
	if transport == nil {
		return nil, errors.New("lnd: transport must not be nil")
	}
	o := applyOptions(opts)
	return &Client{host: base, http: transport, log: o.log}, nil
}

// normalizeHost trims the host and defaults the scheme to https.
func normalizeHost(host string) (string, error) {
	host = strings.TrimRight(strings.TrimSpace(host), "/")
	if host == "" {
		return "", errors.New("lnd: host must not be empty")
	}
	if !strings.Contains(host, "://") {
		host = "https://" + host
	}
	u, err := url.Parse(host)
	if err != nil {
		return "", fmt.Errorf("lnd: parse host: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("lnd: host %q has no address", host)
	}
	return host, nil
}

// Host returns the normalized base address.
func (c *Client) Host() string { return c.host }

// Macaroon returns the credential sent with every request. It is zero for
// clients built with NewClientWithTransport.
func (c *Client) Macaroon() Macaroon { return c.macaroon }

func (c *Client) String() string   { return "lnd.Client{host: " + c.host + "}" }
func (c *Client) GoString() string { return c.String() }

// AddInvoice creates an invoice.
func (c *Client) AddInvoice(ctx context.Context, req *AddInvoiceRequest) (*AddInvoiceResponse, error) {
	if req == nil {
		req = &AddInvoiceRequest{}
	}
	var out AddInvoiceResponse
	if err := c.post(ctx, pathInvoices, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LookupInvoice fetches the invoice for paymentHash. An unknown hash is a
// *RemoteError, never an empty Invoice.
func (c *Client) LookupInvoice(ctx context.Context, paymentHash string) (*Invoice, error) {
	var out Invoice
	if err := c.get(ctx, pathInvoice+url.PathEscape(paymentHash), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendPaymentSync pays req and waits for the outcome. Inspect
// SendResponse.PaymentError: the node reports routing failures there with a
// 200 status.
func (c *Client) SendPaymentSync(ctx context.Context, req *SendRequest) (*SendResponse, error) {
	if req == nil {
		req = &SendRequest{}
	}
	var out SendResponse
	if err := c.post(ctx, pathTransactions, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPayments pages through outgoing payments. A nil req lists with the
// node's defaults.
func (c *Client) ListPayments(ctx context.Context, req *ListPaymentsRequest) (*ListPaymentsResponse, error) {
	var out ListPaymentsResponse
	if err := c.get(ctx, pathPayments, req.queryParams(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, out interface{}) error {
	op := http.MethodGet + " " + path
	start := time.Now()
	resp, err := c.http.Get(ctx, path, query)
	return c.finish(op, start, resp, err, out)
}

func (c *Client) post(ctx context.Context, path string, in, out interface{}) error {
	op := http.MethodPost + " " + path
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("lnd: %s: encode request: %w", op, err)
	}
	start := time.Now()
	resp, err := c.http.Post(ctx, path, body)
	return c.finish(op, start, resp, err, out)
}

// finish classifies the outcome of one exchange and decodes the body into out.
func (c *Client) finish(op string, start time.Time, resp httpclient.Response, err error, out interface{}) error {
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		c.log.WarnObj("lnd request failed", "lnd_transport_error", map[string]any{
			"op":         op,
			"elapsed_ms": elapsed,
			"error":      err.Error(),
		})
		return &TransportError{Op: op, Err: err}
	}

	body, err := checkResponse(op, resp)
	if err != nil {
		c.log.WarnObj("lnd request rejected", "lnd_remote_error", map[string]any{
			"op":         op,
			"status":     resp.StatusCode(),
			"elapsed_ms": elapsed,
			"error":      err.Error(),
		})
		return err
	}
	c.log.DebugObj("lnd request completed", "lnd_request", map[string]any{
		"op":         op,
		"status":     resp.StatusCode(),
		"elapsed_ms": elapsed,
		"bytes":      len(body),
	})
	return decode(op, body, out)
}

// checkResponse passes the body of a 200 reply through and turns anything else
// into a *RemoteError without reading it as a payload.
func checkResponse(op string, resp httpclient.Response) ([]byte, error) {
	if resp.StatusCode() != http.StatusOK {
		return nil, newRemoteError(op, resp.StatusCode(), resp.Body())
	}
	return resp.Body(), nil
}
