package app

import (
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/samvad-hq/lnd-rest/internal/config"
	"github.com/samvad-hq/lnd-rest/internal/logger"
	"github.com/samvad-hq/lnd-rest/pkg/lnd"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CLI holds the state shared by every subcommand.
type CLI struct {
	cfg       *config.Config
	log       logger.Logger
	newClient ClientFactory
	output    string
}

// NewRootCommand returns the lndrest command tree. Flags override values
// loaded from the environment.
func NewRootCommand(cfg *config.Config, log logger.Logger) *cobra.Command {
	return newRootCommand(cfg, log, NewLNDClient)
}

func newRootCommand(cfg *config.Config, log logger.Logger, factory ClientFactory) *cobra.Command {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	c := &CLI{cfg: cfg, log: log, newClient: factory, output: outputJSON}

	root := &cobra.Command{
		Use:           "lndrest",
		Short:         "Talk to an LND node over its REST gateway",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	fs := root.PersistentFlags()
	fs.StringVar(&cfg.Host, "host", cfg.Host, "node REST address (host:port)")
	fs.StringVar(&cfg.MacaroonPath, "macaroonpath", cfg.MacaroonPath, "path to the macaroon file")
	fs.StringVar(&cfg.TLSCertPath, "tlscertpath", cfg.TLSCertPath, "path to the node TLS certificate")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-request timeout (0 disables)")
	fs.StringVar(&cfg.SocksProxy, "socks", cfg.SocksProxy, "SOCKS5 proxy address, e.g. 127.0.0.1:9050 for Tor")
	fs.StringVarP(&c.output, "output", "o", outputJSON, "output format: json or yaml")

	root.AddCommand(
		c.addInvoiceCommand(),
		c.lookupInvoiceCommand(),
		c.payInvoiceCommand(),
		c.listPaymentsCommand(),
	)
	return root
}

// connect checks the output format and builds the node client. Only
// commands that talk to the node call it, so help works without config.
func (c *CLI) connect() (Lightning, error) {
	if c.output != outputJSON && c.output != outputYAML {
		return nil, fmt.Errorf("unknown output format %q (want %s or %s)", c.output, outputJSON, outputYAML)
	}
	return c.newClient(c.cfg, c.log)
}

func (c *CLI) print(w io.Writer, v interface{}) error {
	return render(w, c.output, v)
}

func (c *CLI) addInvoiceCommand() *cobra.Command {
	var (
		req             lnd.AddInvoiceRequest
		preimageHex     string
		descriptionHash string
	)
	cmd := &cobra.Command{
		Use:   "addinvoice",
		Short: "Create an invoice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if req.RPreimage, err = hexFlag("preimage", preimageHex); err != nil {
				return err
			}
			if req.DescriptionHash, err = hexFlag("description_hash", descriptionHash); err != nil {
				return err
			}
			client, err := c.connect()
			if err != nil {
				return err
			}
			resp, err := client.AddInvoice(cmd.Context(), &req)
			if err != nil {
				return err
			}
			c.log.InfoObj("invoice added", "invoice", map[string]any{"add_index": resp.AddIndex})
			return c.print(cmd.OutOrStdout(), resp)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&req.Memo, "memo", "", "description embedded in the payment request")
	fs.Int64Var(&req.ValueMsat, "amt_msat", 0, "amount in millisatoshis (0 for any amount)")
	fs.Int64Var(&req.Expiry, "expiry", 3600, "seconds until the invoice expires")
	fs.StringVar(&req.FallbackAddr, "fallback_addr", "", "on-chain fallback address")
	fs.Uint64Var(&req.CltvExpiry, "cltv_expiry", 0, "final hop CLTV delta")
	fs.BoolVar(&req.Private, "private", false, "include hints for private channels")
	fs.BoolVar(&req.IsAmp, "amp", false, "create an AMP invoice")
	fs.StringVar(&preimageHex, "preimage", "", "hex preimage (generated by the node when empty)")
	fs.StringVar(&descriptionHash, "description_hash", "", "hex SHA-256 of a long description")
	return cmd
}

func (c *CLI) lookupInvoiceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookupinvoice <rhash>",
		Short: "Look up an invoice by its hex payment hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := hex.DecodeString(args[0]); err != nil {
				return fmt.Errorf("rhash must be hex: %w", err)
			}
			client, err := c.connect()
			if err != nil {
				return err
			}
			inv, err := client.LookupInvoice(cmd.Context(), args[0])
			if err != nil {
				if lnd.IsNotFound(err) {
					return fmt.Errorf("invoice %s not found: %w", args[0], err)
				}
				return err
			}
			return c.print(cmd.OutOrStdout(), inv)
		},
	}
}

func (c *CLI) payInvoiceCommand() *cobra.Command {
	var (
		req      lnd.SendRequest
		feeLimit int64
	)
	cmd := &cobra.Command{
		Use:   "payinvoice <pay_req>",
		Short: "Pay a BOLT 11 payment request and wait for the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.PaymentRequest = args[0]
			if feeLimit > 0 {
				req.FeeLimit = &lnd.FeeLimit{FixedMsat: feeLimit}
			}
			client, err := c.connect()
			if err != nil {
				return err
			}
			start := time.Now()
			resp, err := client.SendPaymentSync(cmd.Context(), &req)
			if err != nil {
				return err
			}
			if err := c.print(cmd.OutOrStdout(), resp); err != nil {
				return err
			}
			if resp.Failed() {
				c.log.WarnObj("payment failed", "payment", map[string]any{
					"payment_error": resp.PaymentError,
					"elapsed_ms":    time.Since(start).Milliseconds(),
				})
				return fmt.Errorf("payment failed: %s", resp.PaymentError)
			}
			c.log.InfoObj("payment succeeded", "payment", map[string]any{
				"elapsed_ms": time.Since(start).Milliseconds(),
			})
			return nil
		},
	}
	fs := cmd.Flags()
	fs.Int64Var(&req.AmtMsat, "amt_msat", 0, "amount for zero-amount payment requests")
	fs.Int64Var(&feeLimit, "fee_limit_msat", 0, "maximum routing fee in millisatoshis")
	fs.Uint64Var(&req.OutgoingChanID, "outgoing_chan_id", 0, "first-hop channel to use")
	fs.Uint32Var(&req.CltvLimit, "cltv_limit", 0, "maximum total time lock")
	fs.BoolVar(&req.AllowSelfPayment, "allow_self_payment", false, "allow paying our own invoices")
	return cmd
}

func (c *CLI) listPaymentsCommand() *cobra.Command {
	var req lnd.ListPaymentsRequest
	cmd := &cobra.Command{
		Use:   "listpayments",
		Short: "List outgoing payments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := c.connect()
			if err != nil {
				return err
			}
			resp, err := client.ListPayments(cmd.Context(), &req)
			if err != nil {
				return err
			}
			return c.print(cmd.OutOrStdout(), resp)
		},
	}
	addListPaymentsFlags(cmd.Flags(), &req)
	return cmd
}

func addListPaymentsFlags(fs *pflag.FlagSet, req *lnd.ListPaymentsRequest) {
	fs.BoolVar(&req.IncludeIncomplete, "include_incomplete", false, "include in-flight and failed payments")
	fs.Uint64Var(&req.IndexOffset, "index_offset", 0, "payment index to start after")
	fs.Uint64Var(&req.MaxPayments, "max_payments", 100, "maximum number of payments to return")
	fs.BoolVar(&req.Reversed, "reversed", false, "page backwards from index_offset")
	fs.BoolVar(&req.CountTotalPayments, "count_total_payments", false, "also report the total count")
	fs.Uint64Var(&req.CreationDateStart, "creation_date_start", 0, "unix seconds lower bound")
	fs.Uint64Var(&req.CreationDateEnd, "creation_date_end", 0, "unix seconds upper bound")
}

func hexFlag(name, value string) (lnd.Base64String, error) {
	if value == "" {
		return "", nil
	}
	b, err := hex.DecodeString(value)
	if err != nil {
		return "", fmt.Errorf("--%s must be hex: %w", name, err)
	}
	return lnd.NewBase64String(b), nil
}
