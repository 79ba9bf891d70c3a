package logfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewTextLogger(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Writer: &buf})

	log.Info("checked", "path", "config.toml")
	out := buf.String()
	if !strings.Contains(out, "checked") || !strings.Contains(out, "path=config.toml") {
		t.Errorf("Expected text record, got %q", out)
	}
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{JSON: true, Writer: &buf})

	log.Info("checked", "path", "config.toml")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("Expected JSON record, got %q: %v", buf.String(), err)
	}
	if record["msg"] != "checked" || record["path"] != "config.toml" {
		t.Errorf("Expected msg and path fields, got %v", record)
	}
}

func TestVerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer

	New(Options{Writer: &buf}).Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected debug suppressed by default, got %q", buf.String())
	}

	New(Options{Verbose: true, Writer: &buf}).Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("Expected debug record in verbose mode, got %q", buf.String())
	}
}

func TestQuiet(t *testing.T) {
	// не должно паниковать и не должно ничего печатать в stderr теста
	Quiet().Info("dropped")
	Quiet().Error("also dropped")
}
