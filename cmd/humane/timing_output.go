package main

import (
	"fmt"
	"io"

	"humane/internal/checkrun"
)

// printCheckTimings агрегирует фазовые замеры по всем результатам прогона.
func printCheckTimings(out io.Writer, results []checkrun.Result) {
	totals := make(map[string]float64)
	var order []string
	var total float64

	for _, res := range results {
		if res.Timing == nil {
			continue
		}
		for _, phase := range res.Timing.Phases {
			if _, seen := totals[phase.Name]; !seen {
				order = append(order, phase.Name)
			}
			totals[phase.Name] += phase.DurationMS
		}
		total += res.Timing.TotalMS
	}
	if len(order) == 0 {
		return
	}

	fmt.Fprintln(out, "timings:")
	for _, name := range order {
		fmt.Fprintf(out, "  %-10s %7.2f ms\n", name, totals[name])
	}
	fmt.Fprintf(out, "  %-10s %7.2f ms\n", "total", total)
}
