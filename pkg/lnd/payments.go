package lnd

import "strconv"

// FeeLimit caps the routing fee of a payment. The gateway treats the fields as
// a oneof; the client sends whatever is set.
type FeeLimit struct {
	Fixed     int64 `json:"fixed,omitempty,string"`
	FixedMsat int64 `json:"fixed_msat,omitempty,string"`
	Percent   int64 `json:"percent,omitempty,string"`
}

// SendRequest is the body of POST /v1/channels/transactions.
type SendRequest struct {
	Dest              Base64String            `json:"dest,omitempty"`
	Amt               int64                   `json:"amt,omitempty,string"`
	AmtMsat           int64                   `json:"amt_msat,omitempty,string"`
	PaymentHash       Base64String            `json:"payment_hash,omitempty"`
	PaymentRequest    string                  `json:"payment_request"`
	FinalCltvDelta    int32                   `json:"final_cltv_delta,omitempty"`
	FeeLimit          *FeeLimit               `json:"fee_limit,omitempty"`
	OutgoingChanID    uint64                  `json:"outgoing_chan_id,omitempty,string"`
	LastHopPubkey     Base64String            `json:"last_hop_pubkey,omitempty"`
	CltvLimit         uint32                  `json:"cltv_limit,omitempty"`
	DestCustomRecords map[uint64]Base64String `json:"dest_custom_records,omitempty"`
	AllowSelfPayment  bool                    `json:"allow_self_payment,omitempty"`
	DestFeatures      []FeatureBit            `json:"dest_features,omitempty"`
	PaymentAddr       Base64String            `json:"payment_addr,omitempty"`
	RouteHints        []RouteHint             `json:"route_hints,omitempty"`
}

// SendResponse is the reply of POST /v1/channels/transactions.
//
// A 200 reply can still describe a failed payment: PaymentError is then set
// and PaymentPreimage is empty. The client does not turn that into an error.
type SendResponse struct {
	PaymentError    string       `json:"payment_error"`
	PaymentPreimage Base64String `json:"payment_preimage"`
	PaymentRoute    *Route       `json:"payment_route"`
	PaymentHash     Base64String `json:"payment_hash"`
}

// Failed reports whether the node rejected the payment at the application level.
func (r *SendResponse) Failed() bool {
	return r != nil && r.PaymentError != ""
}

// ListPaymentsRequest selects payments for GET /v1/payments. Every field is
// sent as a query parameter, zero values included.
type ListPaymentsRequest struct {
	IncludeIncomplete  bool   `json:"include_incomplete"`
	IndexOffset        uint64 `json:"index_offset,string"`
	MaxPayments        uint64 `json:"max_payments,string"`
	Reversed           bool   `json:"reversed"`
	CountTotalPayments bool   `json:"count_total_payments"`
	CreationDateStart  uint64 `json:"creation_date_start,string"`
	CreationDateEnd    uint64 `json:"creation_date_end,string"`
}

func (r *ListPaymentsRequest) queryParams() map[string]string {
	if r == nil {
		r = &ListPaymentsRequest{}
	}
	return map[string]string{
		"include_incomplete":   strconv.FormatBool(r.IncludeIncomplete),
		"index_offset":         strconv.FormatUint(r.IndexOffset, 10),
		"max_payments":         strconv.FormatUint(r.MaxPayments, 10),
		"reversed":             strconv.FormatBool(r.Reversed),
		"count_total_payments": strconv.FormatBool(r.CountTotalPayments),
		"creation_date_start":  strconv.FormatUint(r.CreationDateStart, 10),
		"creation_date_end":    strconv.FormatUint(r.CreationDateEnd, 10),
	}
}

// ListPaymentsResponse is the reply of GET /v1/payments.
type ListPaymentsResponse struct {
	Payments         []Payment `json:"payments"`
	FirstIndexOffset uint64    `json:"first_index_offset,string"`
	LastIndexOffset  uint64    `json:"last_index_offset,string"`
	// Only populated when CountTotalPayments was requested.
	TotalNumPayments uint64 `json:"total_num_payments,string"`
}

// Payment is one outgoing payment as stored by the node.
type Payment struct {
	// PaymentHash and PaymentPreimage are hex here, unlike the invoice API.
	PaymentHash     string               `json:"payment_hash"`
	Value           int64                `json:"value,string"`
	CreationDate    int64                `json:"creation_date,string"`
	Fee             int64                `json:"fee,string"`
	PaymentPreimage string               `json:"payment_preimage"`
	ValueSat        int64                `json:"value_sat,string"`
	ValueMsat       int64                `json:"value_msat,string"`
	PaymentRequest  string               `json:"payment_request"`
	Status          PaymentStatus        `json:"status"`
	FeeSat          int64                `json:"fee_sat,string"`
	FeeMsat         int64                `json:"fee_msat,string"`
	CreationTimeNs  int64                `json:"creation_time_ns,string"`
	Htlcs           []HTLCAttempt        `json:"htlcs"`
	PaymentIndex    uint64               `json:"payment_index,string"`
	FailureReason   PaymentFailureReason `json:"failure_reason"`
}

// HTLCAttempt is a single attempt made while sending a payment.
type HTLCAttempt struct {
	AttemptID     uint64       `json:"attempt_id,string"`
	Status        HTLCStatus   `json:"status"`
	Route         *Route       `json:"route"`
	AttemptTimeNs int64        `json:"attempt_time_ns,string"`
	ResolveTimeNs int64        `json:"resolve_time_ns,string"`
	Failure       *Failure     `json:"failure"`
	Preimage      Base64String `json:"preimage"`
}

// Failure describes why a hop failed an HTLC attempt.
type Failure struct {
	Code          FailureCode    `json:"code"`
	ChannelUpdate *ChannelUpdate `json:"channel_update"`
	HtlcMsat      uint64         `json:"htlc_msat,string"`
	OnionSha256   Base64String   `json:"onion_sha_256"`
	CltvExpiry    uint32         `json:"cltv_expiry"`
	Flags         uint32         `json:"flags"`
	// FailureSourceIndex is the position in the route of the failing hop;
	// 0 is the sender.
	FailureSourceIndex uint32 `json:"failure_source_index"`
	Height             uint32 `json:"height"`
}

type ChannelUpdate struct {
	Signature       Base64String `json:"signature"`
	ChainHash       Base64String `json:"chain_hash"`
	ChanID          uint64       `json:"chan_id,string"`
	Timestamp       uint32       `json:"timestamp"`
	MessageFlags    uint32       `json:"message_flags"`
	ChannelFlags    uint32       `json:"channel_flags"`
	TimeLockDelta   uint32       `json:"time_lock_delta"`
	HtlcMinimumMsat uint64       `json:"htlc_minimum_msat,string"`
	BaseFee         uint32       `json:"base_fee"`
	FeeRate         uint32       `json:"fee_rate"`
	HtlcMaximumMsat uint64       `json:"htlc_maximum_msat,string"`
	ExtraOpaqueData Base64String `json:"extra_opaque_data"`
}
