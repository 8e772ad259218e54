package lnd

// Route is the path a payment took, sender to payee.
type Route struct {
	TotalTimeLock uint32 `json:"total_time_lock"`
	TotalFees     int64  `json:"total_fees,string"`
	TotalAmt      int64  `json:"total_amt,string"`
	Hops          []Hop  `json:"hops"`
	TotalFeesMsat int64  `json:"total_fees_msat,string"`
	TotalAmtMsat  int64  `json:"total_amt_msat,string"`
}

// Hop is one forwarding step of a Route.
type Hop struct {
	ChanID           uint64     `json:"chan_id,string"`
	ChanCapacity     int64      `json:"chan_capacity,string"`
	AmtToForward     int64      `json:"amt_to_forward,string"`
	Fee              int64      `json:"fee,string"`
	Expiry           uint32     `json:"expiry"`
	AmtToForwardMsat int64      `json:"amt_to_forward_msat,string"`
	FeeMsat          int64      `json:"fee_msat,string"`
	PubKey           string     `json:"pub_key"`
	TlvPayload       bool       `json:"tlv_payload"`
	MppRecord        *MPPRecord `json:"mpp_record"`
	AmpRecord        *AMPRecord `json:"amp_record"`
	// CustomRecords maps TLV type to value; the gateway encodes the keys as
	// decimal strings.
	CustomRecords map[uint64]Base64String `json:"custom_records"`
	Metadata      Base64String            `json:"metadata"`
}

// MPPRecord is the multi-path payment record of the final hop.
type MPPRecord struct {
	PaymentAddr  Base64String `json:"payment_addr"`
	TotalAmtMsat int64        `json:"total_amt_msat,string"`
}

// AMPRecord is the atomic multi-path record of the final hop.
type AMPRecord struct {
	RootShare  Base64String `json:"root_share"`
	SetID      Base64String `json:"set_id"`
	ChildIndex uint32       `json:"child_index"`
}
