package lnd

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewRemoteErrorReadsGatewayBody(t *testing.T) {
	e := newRemoteError("GET /v1/invoice/ab", 404, []byte(`{"code":5,"message":"unable to locate invoice","details":[]}`))
	if e.Code != 5 || e.Message != "unable to locate invoice" {
		t.Fatalf("unexpected fields: %+v", e)
	}
	if !strings.Contains(e.Error(), "remote status 404: unable to locate invoice") {
		t.Fatalf("unexpected message %q", e.Error())
	}
}

func TestNewRemoteErrorLegacyErrorField(t *testing.T) {
	e := newRemoteError("POST /v1/invoices", 500, []byte(`{"error":"invoice with payment hash already exists","code":2}`))
	if e.Message != "invoice with payment hash already exists" || e.Code != 2 {
		t.Fatalf("unexpected fields: %+v", e)
	}
}

func TestNewRemoteErrorNonJSONBody(t *testing.T) {
	body := []byte("<html>502 Bad Gateway</html>")
	e := newRemoteError("GET /v1/payments", 502, body)
	if e.Code != 0 || e.Message != "" {
		t.Fatalf("expected no parsed fields, got %+v", e)
	}
	if !strings.Contains(e.Error(), "502 Bad Gateway") {
		t.Fatalf("expected body in message, got %q", e.Error())
	}

	empty := newRemoteError("GET /v1/payments", 503, nil)
	if !strings.Contains(empty.Error(), "<empty>") {
		t.Fatalf("unexpected message %q", empty.Error())
	}
}

func TestBodySnippetTruncates(t *testing.T) {
	s := bodySnippet([]byte(strings.Repeat("x", 2000)))
	if len(s) != 512+len("...") || !strings.HasSuffix(s, "...") {
		t.Fatalf("unexpected snippet length %d", len(s))
	}
}

func TestIsNotFound(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"status 404", &RemoteError{StatusCode: 404}, true},
		{"grpc not found", &RemoteError{StatusCode: 500, Code: 5}, true},
		{"wrapped", fmt.Errorf("lookup: %w", &RemoteError{StatusCode: 404}), true},
		{"other remote", &RemoteError{StatusCode: 500, Code: 2}, false},
		{"transport", &TransportError{Op: "GET", Err: errors.New("dial")}, false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		if got := IsNotFound(tc.err); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestErrorsUnwrap(t *testing.T) {
	cause := errors.New("boom")
	for _, err := range []error{
		&IOError{Op: "read macaroon", Path: "/x", Err: cause},
		&CredentialError{Op: "parse tls certificate", Err: cause},
		&TransportError{Op: "GET /v1/payments", Err: cause},
		&DecodeError{Op: "GET /v1/payments", Err: cause},
	} {
		if !errors.Is(err, cause) {
			t.Fatalf("%T does not unwrap to its cause", err)
		}
	}
}
