package httpclient

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/proxy"
)

// Options configures a RestyClient.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// RootCAs replaces the system trust store when set.
	RootCAs   *x509.CertPool
	Headers   map[string]string
	UserAgent string
	Socks     *SocksOptions
	Logger    resty.Logger
}

// SocksOptions routes every connection through a SOCKS5 proxy (e.g. Tor).
type SocksOptions struct {
	Address  string
	Username string
	Password string
}

// RestyClient adapts resty.Client to the httpclient.Client interface.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient creates a RestyClient from opts.
func NewRestyClient(opts Options) (*RestyClient, error) {
	transport, err := newTransport(opts)
	if err != nil {
		return nil, err
	}

	c := resty.NewWithClient(&http.Client{Transport: transport})
	c.SetTimeout(opts.Timeout)
	if opts.BaseURL != "" {
		c.SetBaseURL(opts.BaseURL)
	}
	if len(opts.Headers) > 0 {
		c.SetHeaders(opts.Headers)
	}
	if opts.UserAgent != "" {
		c.SetHeader("User-Agent", opts.UserAgent)
	}
	if opts.Logger != nil {
		c.SetLogger(opts.Logger)
	}
	return &RestyClient{client: c}, nil
}

// newTransport clones the default transport and applies TLS and proxy settings.
func newTransport(opts Options) (*http.Transport, error) {
	base, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return nil, errors.New("default transport is not *http.Transport")
	}
	tr := base.Clone()
	tr.TLSClientConfig = &tls.Config{
		RootCAs:    opts.RootCAs,
		MinVersion: tls.VersionTLS12,
	}

	if opts.Socks == nil || strings.TrimSpace(opts.Socks.Address) == "" {
		return tr, nil
	}

	var auth *proxy.Auth
	if opts.Socks.Username != "" && opts.Socks.Password != "" {
		auth = &proxy.Auth{User: opts.Socks.Username, Password: opts.Socks.Password}
	}
	dialer, err := proxy.SOCKS5("tcp", strings.TrimSpace(opts.Socks.Address), auth, &net.Dialer{
		Timeout:   20 * time.Second,
		KeepAlive: 30 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("socks5 dialer: %w", err)
	}
	ctxDialer, ok := dialer.(proxy.ContextDialer)
	if !ok {
		return nil, errors.New("socks5 dialer does not support contexts")
	}
	// The proxy resolves names; environment proxies must not stack on top.
	tr.Proxy = nil
	tr.DialContext = ctxDialer.DialContext
	return tr, nil
}

// Get performs an HTTP GET request with the specified context, path, and query parameters.
func (r *RestyClient) Get(ctx context.Context, path string, query map[string]string) (Response, error) {
	req := r.client.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	resp, err := req.Get(path)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// Post performs an HTTP POST request carrying a JSON body.
func (r *RestyClient) Post(ctx context.Context, path string, body []byte) (Response, error) {
	req := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	resp, err := req.Post(path)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte    { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int { return r.resp.StatusCode() }
