package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"humane/internal/logfmt"
)

// rootLogger строит логгер процесса по персистентным флагам.
func rootLogger(cmd *cobra.Command) (*slog.Logger, error) {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if quiet {
		return logfmt.Quiet(), nil
	}

	verbose, err := cmd.Root().PersistentFlags().GetBool("verbose")
	if err != nil {
		return nil, fmt.Errorf("failed to get verbose flag: %w", err)
	}

	// На терминале журнал текстовый, в пайпе структурный JSON
	return logfmt.New(logfmt.Options{
		Verbose: verbose,
		JSON:    !isTerminal(os.Stderr),
	}), nil
}

// useColorOutput решает, красить ли акценты в выводе.
func useColorOutput(cmd *cobra.Command) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch colorFlag {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return isTerminal(os.Stdout), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
	}
}
