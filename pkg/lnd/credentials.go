package lnd

import (
	"crypto/x509"
	"encoding/hex"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// MacaroonHeader is the metadata key LND reads the hex macaroon from.
const MacaroonHeader = "Grpc-Metadata-macaroon"

const redacted = "[REDACTED]"

// Macaroon is the uppercase hex rendering of a macaroon file, ready to be sent
// as the MacaroonHeader value. It is a bearer credential: every formatting,
// JSON, text and logging path renders it as [REDACTED]. Only HeaderValue
// exposes the secret.
type Macaroon struct {
	// held behind a pointer so reflection-based printing of enclosing
	// structs shows an address, not the value
	hex *string
}

// NewMacaroon encodes raw macaroon bytes.
func NewMacaroon(raw []byte) (Macaroon, error) {
	if len(raw) == 0 {
		return Macaroon{}, &CredentialError{Op: "encode macaroon", Err: errors.New("macaroon is empty")}
	}
	v := strings.ToUpper(hex.EncodeToString(raw))
	return Macaroon{hex: &v}, nil
}

// LoadMacaroon reads and encodes the macaroon file at path.
func LoadMacaroon(path string) (Macaroon, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Macaroon{}, &IOError{Op: "read macaroon", Path: path, Err: err}
	}
	return NewMacaroon(raw)
}

// HeaderValue returns the raw header value. Never log it.
func (m Macaroon) HeaderValue() string {
	if m.hex == nil {
		return ""
	}
	return *m.hex
}

// IsZero reports whether m holds no credential.
func (m Macaroon) IsZero() bool { return m.hex == nil }

func (m Macaroon) String() string   { return redacted }
func (m Macaroon) GoString() string { return "lnd.Macaroon{" + redacted + "}" }

// Format covers every fmt verb, including %x and %#v.
func (m Macaroon) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, redacted)
}

func (m Macaroon) MarshalJSON() ([]byte, error) { return json.Marshal(redacted) }
func (m Macaroon) MarshalText() ([]byte, error) { return []byte(redacted), nil }

func (m Macaroon) headers() map[string]string {
	if m.hex == nil {
		return nil
	}
	return map[string]string{MacaroonHeader: *m.hex}
}

// LoadCertPool reads the PEM certificate at path into a pool that trusts
// nothing else.
func LoadCertPool(path string) (*x509.CertPool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read tls certificate", Path: path, Err: err}
	}
	return NewCertPool(raw)
}

// NewCertPool parses every CERTIFICATE block in pemBytes.
func NewCertPool(pemBytes []byte) (*x509.CertPool, error) {
	pool := x509.NewCertPool()
	found := 0
	rest := pemBytes
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, &CredentialError{Op: "parse tls certificate", Err: err}
		}
		pool.AddCert(cert)
		found++
	}
	if found == 0 {
		return nil, &CredentialError{Op: "parse tls certificate", Err: errors.New("no PEM certificate found")}
	}
	return pool, nil
}
