package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"humane/internal/checkrun"
	"humane/internal/observ"
	"humane/locate"
)

func disableColor(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}

func TestPrintResultPretty(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	printResultPretty(&buf, checkrun.Result{Path: "ok.json", OK: true}, false)
	if got, want := buf.String(), "ok.json: ok\n"; got != want {
		t.Fatalf("valid file output = %q, want %q", got, want)
	}

	buf.Reset()
	printResultPretty(&buf, checkrun.Result{Path: "ok.json", OK: true}, true)
	if buf.Len() != 0 {
		t.Fatalf("quiet valid file should print nothing, got %q", buf.String())
	}

	buf.Reset()
	printResultPretty(&buf, checkrun.Result{
		Path:    "bad.json",
		Located: true,
		Rows:    []string{"   --> bad.json:1:7", "╭╴1 │ {\"a\": }"},
	}, false)
	if got, want := buf.String(), "   --> bad.json:1:7\n╭╴1 │ {\"a\": }\n"; got != want {
		t.Fatalf("located output = %q, want %q", got, want)
	}

	buf.Reset()
	printResultPretty(&buf, checkrun.Result{Path: "bad.bin", RawErr: errors.New("boom")}, false)
	if got, want := buf.String(), "bad.bin: boom\n"; got != want {
		t.Fatalf("fallback output = %q, want %q", got, want)
	}
}

func TestPrintResultShort(t *testing.T) {
	cases := []struct {
		name string
		res  checkrun.Result
		want string
	}{
		{
			name: "valid file prints nothing",
			res:  checkrun.Result{Path: "ok.json", OK: true},
			want: "",
		},
		{
			name: "located with column",
			res: checkrun.Result{
				Path:    "bad.json",
				Located: true,
				Pos:     locate.Position{Line: 3, Column: 7, Cause: "invalid character '}'"},
			},
			want: "bad.json:3:7: invalid character '}'\n",
		},
		{
			name: "located without column",
			res: checkrun.Result{
				Path:    "bad.yaml",
				Located: true,
				Pos:     locate.Position{Line: 4, Cause: "mapping values are not allowed in this context"},
			},
			want: "bad.yaml:4: mapping values are not allowed in this context\n",
		},
		{
			name: "not located falls back to raw error",
			res: checkrun.Result{
				Path:   "bad.toml",
				RawErr: errors.New("failed to load file: permission denied"),
			},
			want: "bad.toml: failed to load file: permission denied\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			printResultShort(&buf, tc.res)
			if buf.String() != tc.want {
				t.Fatalf("printResultShort output = %q, want %q", buf.String(), tc.want)
			}
		})
	}
}

func TestPrintDirPretty(t *testing.T) {
	disableColor(t)

	results := []checkrun.Result{
		{Path: "a.json", Format: "json", OK: true},
		{
			Path:    "b.json",
			Format:  "json",
			Located: true,
			Pos:     locate.Position{Line: 1, Column: 7, Cause: "invalid character '}'"},
			Rows:    []string{"   --> b.json:1:7", "╭╴1 │ {\"a\": }"},
			RawErr:  errors.New("invalid character '}' looking for beginning of value"),
		},
	}

	var buf bytes.Buffer
	printDirPretty(&buf, results, 1, false)
	out := buf.String()

	if !strings.Contains(out, "== b.json ==\n") {
		t.Fatalf("missing file separator:\n%s", out)
	}
	if !strings.Contains(out, "   --> b.json:1:7\n") {
		t.Fatalf("missing block rows:\n%s", out)
	}
	if strings.Contains(out, "a.json") {
		t.Fatalf("valid files must not be listed:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n2 files checked, 1 failed\n") {
		t.Fatalf("missing summary:\n%s", out)
	}
}

func TestPrintDirPrettyAllOK(t *testing.T) {
	disableColor(t)

	results := []checkrun.Result{
		{Path: "a.json", OK: true},
		{Path: "b.toml", OK: true},
	}

	var buf bytes.Buffer
	printDirPretty(&buf, results, 0, false)
	if got, want := buf.String(), "2 files checked, all ok\n"; got != want {
		t.Fatalf("summary = %q, want %q", got, want)
	}

	buf.Reset()
	printDirPretty(&buf, results, 0, true)
	if buf.Len() != 0 {
		t.Fatalf("quiet run should print nothing, got %q", buf.String())
	}
}

func TestBuildCheckPayload(t *testing.T) {
	timing := &observ.Report{TotalMS: 1.25}
	res := checkrun.Result{
		Path:    "bad.json",
		Format:  "json",
		Located: true,
		Pos:     locate.Position{Line: 2, Column: 5, Cause: "unexpected comma"},
		Rows:    []string{"first", "second"},
		RawErr:  errors.New("decode failed"),
		Timing:  timing,
	}

	payload := buildCheckPayload(res, false)
	if payload.Path != "bad.json" || payload.Format != "json" {
		t.Fatalf("identity fields wrong: %+v", payload)
	}
	if payload.OK {
		t.Fatalf("payload.OK = true for failed result")
	}
	if payload.Line != 2 || payload.Column != 5 {
		t.Fatalf("position = %d:%d, want 2:5", payload.Line, payload.Column)
	}
	if payload.Cause != "unexpected comma" {
		t.Fatalf("Cause = %q", payload.Cause)
	}
	if payload.Block != "first\nsecond" {
		t.Fatalf("Block = %q", payload.Block)
	}
	if payload.Error != "decode failed" {
		t.Fatalf("Error = %q", payload.Error)
	}
	if payload.Timing != nil {
		t.Fatalf("timing must be omitted unless requested")
	}

	payload = buildCheckPayload(res, true)
	if payload.Timing != timing {
		t.Fatalf("timing not attached")
	}
}

func TestWriteResultsJSON(t *testing.T) {
	results := []checkrun.Result{
		{Path: "a.json", Format: "json", OK: true},
		{
			Path:    "b.json",
			Format:  "json",
			Located: true,
			Pos:     locate.Position{Line: 1, Column: 7, Cause: "invalid character '}'"},
			Rows:    []string{"row"},
			RawErr:  errors.New("invalid character '}'"),
		},
	}

	var buf bytes.Buffer
	if err := writeResultsJSON(&buf, results[:1], false, false); err != nil {
		t.Fatalf("writeResultsJSON: %v", err)
	}
	var single checkPayload
	if err := json.Unmarshal(buf.Bytes(), &single); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if single.Path != "a.json" || !single.OK {
		t.Fatalf("single payload = %+v", single)
	}

	buf.Reset()
	if err := writeResultsJSON(&buf, results, true, false); err != nil {
		t.Fatalf("writeResultsJSON map: %v", err)
	}
	var byPath map[string]checkPayload
	if err := json.Unmarshal(buf.Bytes(), &byPath); err != nil {
		t.Fatalf("invalid JSON map: %v", err)
	}
	if len(byPath) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(byPath))
	}
	if byPath["b.json"].Line != 1 || byPath["b.json"].Column != 7 {
		t.Fatalf("b.json payload = %+v", byPath["b.json"])
	}
	if byPath["a.json"].Error != "" {
		t.Fatalf("a.json should carry no error, got %q", byPath["a.json"].Error)
	}
}

func TestPrintCheckTimings(t *testing.T) {
	results := []checkrun.Result{
		{Timing: &observ.Report{
			TotalMS: 1.5,
			Phases: []observ.PhaseReport{
				{Name: "read", DurationMS: 0.5},
				{Name: "decode", DurationMS: 1.0},
			},
		}},
		{Timing: &observ.Report{
			TotalMS: 2.0,
			Phases: []observ.PhaseReport{
				{Name: "read", DurationMS: 1.0},
				{Name: "render", DurationMS: 1.0},
			},
		}},
	}

	var buf bytes.Buffer
	printCheckTimings(&buf, results)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != "timings:" {
		t.Fatalf("header = %q", lines[0])
	}

	wantRows := []struct {
		name string
		ms   string
	}{
		{"read", "1.50"},
		{"decode", "1.00"},
		{"render", "1.00"},
		{"total", "3.50"},
	}
	for i, want := range wantRows {
		fields := strings.Fields(lines[i+1])
		if len(fields) != 3 || fields[0] != want.name || fields[1] != want.ms || fields[2] != "ms" {
			t.Fatalf("line %d = %q, want %s %s ms", i+1, lines[i+1], want.name, want.ms)
		}
	}
}

func TestPrintCheckTimingsNoData(t *testing.T) {
	var buf bytes.Buffer
	printCheckTimings(&buf, []checkrun.Result{{Path: "a.json", OK: true}})
	if buf.Len() != 0 {
		t.Fatalf("expected no output without timing data, got %q", buf.String())
	}
}
