package lnd

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// writeFile writes data under dir and returns the path.
func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func certPEM(der []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
}

// selfSignedPEM returns a fresh certificate unrelated to any httptest server.
func selfSignedPEM(t *testing.T) []byte {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(42),
		Subject:               pkix.Name{Organization: []string{"lnd autogenerated cert"}},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		IsCA:                  true,
		DNSNames:              []string{"localhost"},
		IPAddresses:           []net.IP{net.ParseIP("127.0.0.1")},
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("create certificate: %v", err)
	}
	return certPEM(der)
}

type testNode struct {
	srv          *httptest.Server
	client       *Client
	certPath     string
	macaroonPath string
}

// newTestNode starts a TLS server and a client pinned to its certificate,
// authenticating with the given macaroon bytes.
func newTestNode(t *testing.T, macaroon []byte, handler http.HandlerFunc, opts ...Option) *testNode {
	t.Helper()
	srv := httptest.NewTLSServer(handler)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	certPath := writeFile(t, dir, "tls.cert", certPEM(srv.Certificate().Raw))
	macPath := writeFile(t, dir, "admin.macaroon", macaroon)

	client, err := NewClient(srv.URL, macPath, certPath, opts...)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return &testNode{srv: srv, client: client, certPath: certPath, macaroonPath: macPath}
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprint(w, body)
}

// recordingLogger captures everything logged through the Logger interface.
type recordingLogger struct {
	mu      sync.Mutex
	entries []string
}

func (r *recordingLogger) record(level, msg, key string, obj interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, fmt.Sprintf("%s %s %s=%+v", level, msg, key, obj))
}

func (r *recordingLogger) InfoObj(msg, key string, obj interface{})  { r.record("info", msg, key, obj) }
func (r *recordingLogger) DebugObj(msg, key string, obj interface{}) { r.record("debug", msg, key, obj) }
func (r *recordingLogger) WarnObj(msg, key string, obj interface{})  { r.record("warn", msg, key, obj) }
func (r *recordingLogger) ErrorObj(msg, key string, obj interface{}) { r.record("error", msg, key, obj) }

func (r *recordingLogger) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.entries...)
}
