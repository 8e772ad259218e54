package lnd

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// grpc status code the gateway reports for unknown invoices and payments.
const grpcCodeNotFound = 5

// IOError reports a credential or certificate file that could not be read.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("lnd: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// CredentialError reports certificate or macaroon bytes that cannot be used.
type CredentialError struct {
	Op  string
	Err error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("lnd: %s: %v", e.Op, e.Err)
}

func (e *CredentialError) Unwrap() error { return e.Err }

// TransportError reports a request that never produced an HTTP response:
// DNS, TCP or TLS failure, timeout or cancellation.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("lnd: %s: transport: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteError reports a non-200 reply. Code and Message are taken from the
// gateway error body when it has one.
type RemoteError struct {
	Op         string
	StatusCode int
	Code       int
	Message    string
	Body       []byte
}

func (e *RemoteError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = bodySnippet(e.Body)
	}
	return fmt.Sprintf("lnd: %s: remote status %d: %s", e.Op, e.StatusCode, msg)
}

// DecodeError reports a 200 reply whose body does not match the expected schema.
type DecodeError struct {
	Op   string
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("lnd: %s: decode: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a RemoteError for an unknown resource.
func IsNotFound(err error) bool {
	var remote *RemoteError
	if !errors.As(err, &remote) {
		return false
	}
	return remote.StatusCode == http.StatusNotFound || remote.Code == grpcCodeNotFound
}

func newRemoteError(op string, status int, body []byte) *RemoteError {
	e := &RemoteError{Op: op, StatusCode: status, Body: body}
	if !gjson.ValidBytes(body) {
		return e
	}
	fields := gjson.GetManyBytes(body, "code", "message", "error")
	e.Code = int(fields[0].Int())
	e.Message = fields[1].String()
	if e.Message == "" {
		e.Message = fields[2].String()
	}
	return e
}

func bodySnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
