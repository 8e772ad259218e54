package lnd

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/samvad-hq/lnd-rest/pkg/httpclient"
)

// Option customizes a Client at construction.
type Option func(*options)

type options struct {
	timeout   time.Duration
	log       Logger
	socks     *httpclient.SocksOptions
	userAgent string
}

// WithTimeout bounds every request. Zero, the default, means no client-side limit.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithLogger sets the request logger. A logger that also implements
// resty.Logger receives the transport's own diagnostics.
func WithLogger(log Logger) Option {
	return func(o *options) { o.log = log }
}

// WithSocksProxy dials the node through a SOCKS5 proxy, e.g. Tor for .onion hosts.
func WithSocksProxy(addr, user, password string) Option {
	return func(o *options) {
		if addr == "" {
			o.socks = nil
			return
		}
		o.socks = &httpclient.SocksOptions{Address: addr, Username: user, Password: password}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

func applyOptions(opts []Option) options {
	o := options{userAgent: "lnd-rest"}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.log = ensureLogger(o.log)
	return o
}

func (o options) restyLogger() resty.Logger {
	if rl, ok := o.log.(resty.Logger); ok {
		return rl
	}
	return nil
}
