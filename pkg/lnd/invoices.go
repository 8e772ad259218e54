package lnd

// 64-bit integers travel as decimal strings (`,string`) so they never pass
// through a float. 32-bit integers are plain JSON numbers.

// AddInvoiceRequest is the body of POST /v1/invoices.
type AddInvoiceRequest struct {
	Memo            string       `json:"memo,omitempty"`
	RPreimage       Base64String `json:"r_preimage,omitempty"`
	ValueMsat       int64        `json:"value_msat,string"`
	DescriptionHash Base64String `json:"description_hash,omitempty"`
	// Expiry in seconds.
	Expiry       int64       `json:"expiry,string"`
	FallbackAddr string      `json:"fallback_addr,omitempty"`
	CltvExpiry   uint64      `json:"cltv_expiry,omitempty,string"`
	RouteHints   []RouteHint `json:"route_hints,omitempty"`
	Private      bool        `json:"private,omitempty"`
	IsAmp        bool        `json:"is_amp,omitempty"`
}

// AddInvoiceResponse is the reply of POST /v1/invoices.
type AddInvoiceResponse struct {
	RHash          Base64String `json:"r_hash"`
	PaymentRequest string       `json:"payment_request"`
	AddIndex       uint64       `json:"add_index,string"`
	PaymentAddr    Base64String `json:"payment_addr"`
}

// Invoice is the reply of GET /v1/invoice/{payment_hash}.
type Invoice struct {
	Memo            string       `json:"memo"`
	RPreimage       Base64String `json:"r_preimage"`
	RHash           Base64String `json:"r_hash"`
	Value           int64        `json:"value,string"`
	ValueMsat       int64        `json:"value_msat,string"`
	Settled         bool         `json:"settled"`
	CreationDate    int64        `json:"creation_date,string"`
	SettleDate      int64        `json:"settle_date,string"`
	PaymentRequest  string       `json:"payment_request"`
	DescriptionHash Base64String `json:"description_hash"`
	Expiry          int64        `json:"expiry,string"`
	FallbackAddr    string       `json:"fallback_addr"`
	CltvExpiry      uint64       `json:"cltv_expiry,string"`
	RouteHints      []RouteHint  `json:"route_hints"`
	Private         bool         `json:"private"`
	AddIndex        uint64       `json:"add_index,string"`
	SettleIndex     uint64       `json:"settle_index,string"`
	AmtPaidSat      int64        `json:"amt_paid_sat,string"`
	AmtPaidMsat     int64        `json:"amt_paid_msat,string"`
	State           InvoiceState `json:"state"`
	IsKeysend       bool         `json:"is_keysend"`
	PaymentAddr     Base64String `json:"payment_addr"`
	IsAmp           bool         `json:"is_amp"`
}

// RouteHint is a private path to the payee, one HopHint per channel.
type RouteHint struct {
	HopHints []HopHint `json:"hop_hints"`
}

type HopHint struct {
	// NodeID is the hex public key of the hop's node.
	NodeID                    string `json:"node_id"`
	ChanID                    uint64 `json:"chan_id,string"`
	FeeBaseMsat               uint32 `json:"fee_base_msat"`
	FeeProportionalMillionths uint32 `json:"fee_proportional_millionths"`
	CltvExpiryDelta           uint32 `json:"cltv_expiry_delta"`
}
