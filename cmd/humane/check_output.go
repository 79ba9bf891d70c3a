package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"humane/internal/checkrun"
	"humane/internal/observ"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
)

// checkPayload — сериализуемый вид результата проверки одного файла.
type checkPayload struct {
	Path   string         `json:"path"`
	Format string         `json:"format"`
	OK     bool           `json:"ok"`
	Line   int            `json:"line,omitempty"`
	Column int            `json:"column,omitempty"`
	Cause  string         `json:"cause,omitempty"`
	Block  string         `json:"block,omitempty"`
	Error  string         `json:"error,omitempty"`
	Timing *observ.Report `json:"timing,omitempty"`
}

// printResultPretty печатает блок для одного файла.
func printResultPretty(out io.Writer, res checkrun.Result, quiet bool) {
	if res.OK {
		if !quiet {
			fmt.Fprintf(out, "%s: %s\n", res.Path, okColor.Sprint("ok"))
		}
		return
	}
	if res.Located {
		fmt.Fprintln(out, strings.Join(res.Rows, "\n"))
		return
	}
	// позиция не восстановлена, показываем сырую ошибку декодера
	fmt.Fprintf(out, "%s: %v\n", res.Path, res.RawErr)
}

// printDirPretty печатает блоки упавших файлов и итоговую строку.
func printDirPretty(out io.Writer, results []checkrun.Result, failed int, quiet bool) {
	shown := 0
	for _, res := range results {
		if res.OK {
			continue
		}
		if shown > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "== %s ==\n", res.Path)
		if res.Located {
			fmt.Fprintln(out, strings.Join(res.Rows, "\n"))
		} else {
			fmt.Fprintf(out, "%v\n", res.RawErr)
		}
		shown++
	}
	if quiet {
		return
	}
	if failed == 0 {
		fmt.Fprintf(out, "%d files checked, %s\n", len(results), okColor.Sprint("all ok"))
		return
	}
	if shown > 0 {
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "%d files checked, %s\n", len(results), failColor.Sprintf("%d failed", failed))
}

// printResultShort печатает однострочный вердикт в духе компиляторов.
func printResultShort(out io.Writer, res checkrun.Result) {
	switch {
	case res.OK:
		return
	case res.Located && res.Pos.Column > 0:
		fmt.Fprintf(out, "%s:%d:%d: %s\n", res.Path, res.Pos.Line, res.Pos.Column, res.Pos.Cause)
	case res.Located:
		fmt.Fprintf(out, "%s:%d: %s\n", res.Path, res.Pos.Line, res.Pos.Cause)
	default:
		fmt.Fprintf(out, "%s: %v\n", res.Path, res.RawErr)
	}
}

func buildCheckPayload(res checkrun.Result, withTiming bool) checkPayload {
	payload := checkPayload{
		Path:   res.Path,
		Format: res.Format,
		OK:     res.OK,
	}
	if res.Located {
		payload.Line = res.Pos.Line
		payload.Column = res.Pos.Column
		payload.Cause = res.Pos.Cause
		payload.Block = strings.Join(res.Rows, "\n")
	}
	if res.RawErr != nil {
		payload.Error = res.RawErr.Error()
	}
	if withTiming {
		payload.Timing = res.Timing
	}
	return payload
}

// writeResultsJSON кодирует результаты: один объект для файла, карта
// путь -> объект для директории.
func writeResultsJSON(out io.Writer, results []checkrun.Result, asMap, withTiming bool) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	if !asMap {
		return encoder.Encode(buildCheckPayload(results[0], withTiming))
	}

	output := make(map[string]checkPayload, len(results))
	for _, res := range results {
		output[res.Path] = buildCheckPayload(res, withTiming)
	}
	return encoder.Encode(output)
}
