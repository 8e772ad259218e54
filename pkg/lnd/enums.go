package lnd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Enumerations are closed: values arrive as proto names (or their numbers)
// and anything outside the table fails decoding.

type enumValue interface{ ~int32 }

type enumTable[E enumValue] struct {
	kind   string
	names  map[E]string
	values map[string]E
}

func newEnumTable[E enumValue](kind string, names map[E]string) enumTable[E] {
	values := make(map[string]E, len(names))
	for v, n := range names {
		values[n] = v
	}
	return enumTable[E]{kind: kind, names: names, values: values}
}

func (t enumTable[E]) name(v E) string {
	if n, ok := t.names[v]; ok {
		return n
	}
	return strconv.Itoa(int(v))
}

func (t enumTable[E]) marshal(v E) ([]byte, error) {
	n, ok := t.names[v]
	if !ok {
		return nil, fmt.Errorf("unknown %s %d", t.kind, int32(v))
	}
	return json.Marshal(n)
}

func (t enumTable[E]) unmarshal(data []byte, dst *E) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if len(raw) > 0 && raw[0] == '"' {
		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			return err
		}
		v, ok := t.values[name]
		if !ok {
			return fmt.Errorf("unknown %s %q", t.kind, name)
		}
		*dst = v
		return nil
	}
	n, err := strconv.ParseInt(string(raw), 10, 32)
	if err != nil {
		return fmt.Errorf("invalid %s %s", t.kind, raw)
	}
	if _, ok := t.names[E(n)]; !ok {
		return fmt.Errorf("unknown %s %d", t.kind, n)
	}
	*dst = E(n)
	return nil
}

// InvoiceState is the lifecycle state of an invoice.
type InvoiceState int32

const (
	InvoiceStateOpen InvoiceState = iota
	InvoiceStateSettled
	InvoiceStateCanceled
	InvoiceStateAccepted
)

var invoiceStates = newEnumTable("invoice state", map[InvoiceState]string{
	InvoiceStateOpen:     "OPEN",
	InvoiceStateSettled:  "SETTLED",
	InvoiceStateCanceled: "CANCELED",
	InvoiceStateAccepted: "ACCEPTED",
})

func (s InvoiceState) String() string                { return invoiceStates.name(s) }
func (s InvoiceState) MarshalJSON() ([]byte, error)  { return invoiceStates.marshal(s) }
func (s *InvoiceState) UnmarshalJSON(b []byte) error { return invoiceStates.unmarshal(b, s) }

// PaymentStatus is the overall status of an outgoing payment.
type PaymentStatus int32

const (
	PaymentStatusUnknown PaymentStatus = iota
	PaymentStatusInFlight
	PaymentStatusSucceeded
	PaymentStatusFailed
)

var paymentStatuses = newEnumTable("payment status", map[PaymentStatus]string{
	PaymentStatusUnknown:   "UNKNOWN",
	PaymentStatusInFlight:  "IN_FLIGHT",
	PaymentStatusSucceeded: "SUCCEEDED",
	PaymentStatusFailed:    "FAILED",
})

func (s PaymentStatus) String() string                { return paymentStatuses.name(s) }
func (s PaymentStatus) MarshalJSON() ([]byte, error)  { return paymentStatuses.marshal(s) }
func (s *PaymentStatus) UnmarshalJSON(b []byte) error { return paymentStatuses.unmarshal(b, s) }

// PaymentFailureReason explains why a payment ended in PaymentStatusFailed.
type PaymentFailureReason int32

const (
	// FailureReasonNone: the payment has not failed (yet).
	FailureReasonNone PaymentFailureReason = iota
	// FailureReasonTimeout: routes remained but the payment timeout expired.
	FailureReasonTimeout
	// FailureReasonNoRoute: every route failed permanently, or none existed.
	FailureReasonNoRoute
	// FailureReasonError: a non-recoverable error occurred.
	FailureReasonError
	// FailureReasonIncorrectPaymentDetails: unknown hash, invalid amount or
	// invalid final cltv delta.
	FailureReasonIncorrectPaymentDetails
	// FailureReasonInsufficientBalance: not enough local balance.
	FailureReasonInsufficientBalance
)

var failureReasons = newEnumTable("payment failure reason", map[PaymentFailureReason]string{
	FailureReasonNone:                    "FAILURE_REASON_NONE",
	FailureReasonTimeout:                 "FAILURE_REASON_TIMEOUT",
	FailureReasonNoRoute:                 "FAILURE_REASON_NO_ROUTE",
	FailureReasonError:                   "FAILURE_REASON_ERROR",
	FailureReasonIncorrectPaymentDetails: "FAILURE_REASON_INCORRECT_PAYMENT_DETAILS",
	FailureReasonInsufficientBalance:     "FAILURE_REASON_INSUFFICIENT_BALANCE",
})

func (r PaymentFailureReason) String() string                { return failureReasons.name(r) }
func (r PaymentFailureReason) MarshalJSON() ([]byte, error)  { return failureReasons.marshal(r) }
func (r *PaymentFailureReason) UnmarshalJSON(b []byte) error { return failureReasons.unmarshal(b, r) }

// HTLCStatus is the status of a single HTLC attempt.
type HTLCStatus int32

const (
	HTLCStatusInFlight HTLCStatus = iota
	HTLCStatusSucceeded
	HTLCStatusFailed
)

var htlcStatuses = newEnumTable("htlc status", map[HTLCStatus]string{
	HTLCStatusInFlight:  "IN_FLIGHT",
	HTLCStatusSucceeded: "SUCCEEDED",
	HTLCStatusFailed:    "FAILED",
})

func (s HTLCStatus) String() string                { return htlcStatuses.name(s) }
func (s HTLCStatus) MarshalJSON() ([]byte, error)  { return htlcStatuses.marshal(s) }
func (s *HTLCStatus) UnmarshalJSON(b []byte) error { return htlcStatuses.unmarshal(b, s) }

// FailureCode is the wire-level reason a hop failed an HTLC.
type FailureCode int32

const (
	FailureCodeReserved                         FailureCode = 0
	FailureCodeIncorrectOrUnknownPaymentDetails FailureCode = 1
	FailureCodeIncorrectPaymentAmount           FailureCode = 2
	FailureCodeFinalIncorrectCltvExpiry         FailureCode = 3
	FailureCodeFinalIncorrectHtlcAmount         FailureCode = 4
	FailureCodeFinalExpiryTooSoon               FailureCode = 5
	FailureCodeInvalidRealm                     FailureCode = 6
	FailureCodeExpiryTooSoon                    FailureCode = 7
	FailureCodeInvalidOnionVersion              FailureCode = 8
	FailureCodeInvalidOnionHmac                 FailureCode = 9
	FailureCodeInvalidOnionKey                  FailureCode = 10
	FailureCodeAmountBelowMinimum               FailureCode = 11
	FailureCodeFeeInsufficient                  FailureCode = 12
	FailureCodeIncorrectCltvExpiry              FailureCode = 13
	FailureCodeChannelDisabled                  FailureCode = 14
	FailureCodeTemporaryChannelFailure          FailureCode = 15
	FailureCodeRequiredNodeFeatureMissing       FailureCode = 16
	FailureCodeRequiredChannelFeatureMissing    FailureCode = 17
	FailureCodeUnknownNextPeer                  FailureCode = 18
	FailureCodeTemporaryNodeFailure             FailureCode = 19
	FailureCodePermanentNodeFailure             FailureCode = 20
	FailureCodePermanentChannelFailure          FailureCode = 21
	FailureCodeExpiryTooFar                     FailureCode = 22
	FailureCodeMppTimeout                       FailureCode = 23
	FailureCodeInvalidOnionPayload              FailureCode = 24
	FailureCodeInvalidOnionBlinding             FailureCode = 25

	// Codes above 996 are produced locally by the node, not by a hop.
	FailureCodeInternalFailure   FailureCode = 997
	FailureCodeUnknownFailure    FailureCode = 998
	FailureCodeUnreadableFailure FailureCode = 999
)

var failureCodes = newEnumTable("failure code", map[FailureCode]string{
	FailureCodeReserved:                         "RESERVED",
	FailureCodeIncorrectOrUnknownPaymentDetails: "INCORRECT_OR_UNKNOWN_PAYMENT_DETAILS",
	FailureCodeIncorrectPaymentAmount:           "INCORRECT_PAYMENT_AMOUNT",
	FailureCodeFinalIncorrectCltvExpiry:         "FINAL_INCORRECT_CLTV_EXPIRY",
	FailureCodeFinalIncorrectHtlcAmount:         "FINAL_INCORRECT_HTLC_AMOUNT",
	FailureCodeFinalExpiryTooSoon:               "FINAL_EXPIRY_TOO_SOON",
	FailureCodeInvalidRealm:                     "INVALID_REALM",
	FailureCodeExpiryTooSoon:                    "EXPIRY_TOO_SOON",
	FailureCodeInvalidOnionVersion:              "INVALID_ONION_VERSION",
	FailureCodeInvalidOnionHmac:                 "INVALID_ONION_HMAC",
	FailureCodeInvalidOnionKey:                  "INVALID_ONION_KEY",
	FailureCodeAmountBelowMinimum:               "AMOUNT_BELOW_MINIMUM",
	FailureCodeFeeInsufficient:                  "FEE_INSUFFICIENT",
	FailureCodeIncorrectCltvExpiry:              "INCORRECT_CLTV_EXPIRY",
	FailureCodeChannelDisabled:                  "CHANNEL_DISABLED",
	FailureCodeTemporaryChannelFailure:          "TEMPORARY_CHANNEL_FAILURE",
	FailureCodeRequiredNodeFeatureMissing:       "REQUIRED_NODE_FEATURE_MISSING",
	FailureCodeRequiredChannelFeatureMissing:    "REQUIRED_CHANNEL_FEATURE_MISSING",
	FailureCodeUnknownNextPeer:                  "UNKNOWN_NEXT_PEER",
	FailureCodeTemporaryNodeFailure:             "TEMPORARY_NODE_FAILURE",
	FailureCodePermanentNodeFailure:             "PERMANENT_NODE_FAILURE",
	FailureCodePermanentChannelFailure:          "PERMANENT_CHANNEL_FAILURE",
	FailureCodeExpiryTooFar:                     "EXPIRY_TOO_FAR",
	FailureCodeMppTimeout:                       "MPP_TIMEOUT",
	FailureCodeInvalidOnionPayload:              "INVALID_ONION_PAYLOAD",
	FailureCodeInvalidOnionBlinding:             "INVALID_ONION_BLINDING",
	FailureCodeInternalFailure:                  "INTERNAL_FAILURE",
	FailureCodeUnknownFailure:                   "UNKNOWN_FAILURE",
	FailureCodeUnreadableFailure:                "UNREADABLE_FAILURE",
})

func (c FailureCode) String() string                { return failureCodes.name(c) }
func (c FailureCode) MarshalJSON() ([]byte, error)  { return failureCodes.marshal(c) }
func (c *FailureCode) UnmarshalJSON(b []byte) error { return failureCodes.unmarshal(b, c) }

// FeatureBit is a BOLT 9 feature bit number. The space is sparse and grows
// with the protocol, so it stays an open integer.
type FeatureBit int32
