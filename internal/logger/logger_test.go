package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/samvad-hq/lnd-rest/internal/config"
	"github.com/samvad-hq/lnd-rest/pkg/lnd"
)

var (
	_ Logger       = (*ZapLogger)(nil)
	_ Logger       = (*NopLogger)(nil)
	_ lnd.Logger   = (*ZapLogger)(nil)
	_ resty.Logger = (*ZapLogger)(nil)
)

func TestObjHelpersWriteStructuredField(t *testing.T) {
	var buf bytes.Buffer
	l := &ZapLogger{SugaredLogger: New("debug", &buf)}

	l.InfoObj("lnd client initialized", "lnd_client", map[string]any{"host": "https://localhost:8080"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if entry["msg"] != "lnd client initialized" || entry["level"] != "info" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	field, ok := entry["lnd_client"].(map[string]any)
	if !ok || field["host"] != "https://localhost:8080" {
		t.Fatalf("object field missing: %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key: %v", entry)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := &ZapLogger{SugaredLogger: New("warn", &buf)}

	l.DebugObj("hidden", "k", 1)
	l.InfoObj("hidden", "k", 1)
	l.WarnObj("shown", "k", 1)

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") || strings.Count(out, "\n") != 0 || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	if parseLevel("loud").String() != "info" {
		t.Fatalf("unknown levels should fall back to info")
	}
	if parseLevel("warning").String() != "warn" {
		t.Fatalf("warning should map to warn")
	}
}

func TestInitInstallsPackageLogger(t *testing.T) {
	t.Cleanup(func() { S = nil })

	l, err := Init(&config.Config{AppName: "lnd-rest", Env: "test", LogLevel: "error"})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if l == nil || S == nil {
		t.Fatalf("expected logger to be installed")
	}
}

func TestNopDiscards(t *testing.T) {
	var l Logger = &NopLogger{}
	l.ErrorObj("nothing", "k", "v")
}

func TestPackageHelpersUseInstalledLogger(t *testing.T) {
	t.Cleanup(func() { S = nil })

	S = nil
	InfoObj("dropped before init", "k", 1)

	var buf bytes.Buffer
	S = New("info", &buf)
	InfoObj("lndrest starting", "config", map[string]any{"host": "localhost:8080"})
	ErrorObj("lndrest command failed", "error", "boom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], `"msg":"lndrest starting"`) || !strings.Contains(lines[0], `"host":"localhost:8080"`) {
		t.Fatalf("unexpected info line %s", lines[0])
	}
	if !strings.Contains(lines[1], `"level":"error"`) || !strings.Contains(lines[1], `"error":"boom"`) {
		t.Fatalf("unexpected error line %s", lines[1])
	}
}
