package lnd

import (
	"encoding/json"
	"testing"
)

func TestInvoiceStateDecodesNameAndNumber(t *testing.T) {
	cases := map[string]InvoiceState{
		`"OPEN"`:     InvoiceStateOpen,
		`"SETTLED"`:  InvoiceStateSettled,
		`"CANCELED"`: InvoiceStateCanceled,
		`"ACCEPTED"`: InvoiceStateAccepted,
		`1`:          InvoiceStateSettled,
		`3`:          InvoiceStateAccepted,
	}
	for in, want := range cases {
		var got InvoiceState
		if err := json.Unmarshal([]byte(in), &got); err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if got != want {
			t.Fatalf("%s: expected %v, got %v", in, want, got)
		}
	}
}

func TestEnumsRejectUnknownValues(t *testing.T) {
	inputs := []string{`"settled"`, `"PAID"`, `9`, `-1`, `1.5`, `true`}
	for _, in := range inputs {
		var state InvoiceState
		if err := json.Unmarshal([]byte(in), &state); err == nil {
			t.Fatalf("expected %s to be rejected, got %v", in, state)
		}
	}

	var code FailureCode
	if err := json.Unmarshal([]byte(`26`), &code); err == nil {
		t.Fatalf("expected failure code 26 to be rejected")
	}
	var status HTLCStatus
	if err := json.Unmarshal([]byte(`"UNKNOWN"`), &status); err == nil {
		t.Fatalf("expected htlc status UNKNOWN to be rejected")
	}
}

func TestEnumNullLeavesZeroValue(t *testing.T) {
	var reason PaymentFailureReason
	if err := json.Unmarshal([]byte(`null`), &reason); err != nil {
		t.Fatalf("null: %v", err)
	}
	if reason != FailureReasonNone {
		t.Fatalf("expected FAILURE_REASON_NONE, got %v", reason)
	}
}

func TestFailureCodeSentinels(t *testing.T) {
	for in, want := range map[string]FailureCode{
		`"INTERNAL_FAILURE"`:   FailureCodeInternalFailure,
		`998`:                  FailureCodeUnknownFailure,
		`"UNREADABLE_FAILURE"`: FailureCodeUnreadableFailure,
		`"MPP_TIMEOUT"`:        FailureCodeMppTimeout,
	} {
		var got FailureCode
		if err := json.Unmarshal([]byte(in), &got); err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if got != want {
			t.Fatalf("%s: expected %d, got %d", in, want, got)
		}
	}
}

func TestEnumsEncodeAsNames(t *testing.T) {
	out, err := json.Marshal(struct {
		State  InvoiceState  `json:"state"`
		Status PaymentStatus `json:"status"`
		Code   FailureCode   `json:"code"`
	}{InvoiceStateCanceled, PaymentStatusInFlight, FailureCodeUnknownNextPeer})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"state":"CANCELED","status":"IN_FLIGHT","code":"UNKNOWN_NEXT_PEER"}`
	if string(out) != want {
		t.Fatalf("expected %s, got %s", want, out)
	}

	if _, err := json.Marshal(InvoiceState(42)); err == nil {
		t.Fatalf("expected out-of-range state to fail encoding")
	}
}

func TestEnumString(t *testing.T) {
	if s := PaymentStatusSucceeded.String(); s != "SUCCEEDED" {
		t.Fatalf("unexpected %q", s)
	}
	if s := HTLCStatus(7).String(); s != "7" {
		t.Fatalf("unexpected %q", s)
	}
}
