package app

import (
	"context"
	"fmt"

	"github.com/samvad-hq/lnd-rest/internal/config"
	"github.com/samvad-hq/lnd-rest/internal/logger"
	"github.com/samvad-hq/lnd-rest/pkg/lnd"
)

// Lightning is the part of lnd.Client the commands use.
type Lightning interface {
	AddInvoice(ctx context.Context, req *lnd.AddInvoiceRequest) (*lnd.AddInvoiceResponse, error)
	LookupInvoice(ctx context.Context, paymentHash string) (*lnd.Invoice, error)
	SendPaymentSync(ctx context.Context, req *lnd.SendRequest) (*lnd.SendResponse, error)
	ListPayments(ctx context.Context, req *lnd.ListPaymentsRequest) (*lnd.ListPaymentsResponse, error)
}

// ClientFactory builds the node client once flags and config are resolved.
type ClientFactory func(cfg *config.Config, log logger.Logger) (Lightning, error)

// NewLNDClient builds an lnd.Client from cfg.
func NewLNDClient(cfg *config.Config, log logger.Logger) (Lightning, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = &logger.NopLogger{}
	}

	opts := []lnd.Option{
		lnd.WithTimeout(cfg.Timeout),
		lnd.WithLogger(log),
		lnd.WithUserAgent(cfg.AppName),
	}
	if cfg.SocksProxy != "" {
		opts = append(opts, lnd.WithSocksProxy(cfg.SocksProxy, cfg.SocksUser, cfg.SocksPassword))
	}

	client, err := lnd.NewClient(cfg.Host, cfg.MacaroonPath, cfg.TLSCertPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("init lnd client: %w", err)
	}
	return client, nil
}
