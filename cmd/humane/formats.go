package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"humane/locate"
)

type formatPayload struct {
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
	Context    int      `json:"context"`
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported document formats",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return fmt.Errorf("failed to get format flag: %w", err)
		}

		adapters := locate.Supported()
		switch format {
		case "pretty":
			for _, a := range adapters {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", a.Name, strings.Join(a.Extensions, " "))
			}
			return nil
		case "json":
			payload := make([]formatPayload, 0, len(adapters))
			for _, a := range adapters {
				payload = append(payload, formatPayload{
					Name:       a.Name,
					Extensions: a.Extensions,
					Context:    a.Context,
				})
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
		}
	},
}

func init() {
	formatsCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}
