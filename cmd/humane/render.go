package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"humane/snippet"
	"humane/source"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags]",
	Short: "Render a diagnostic block for an arbitrary document position",
	Long:  `Render points at a line and column of any text file without decoding it, for tools that locate errors themselves`,
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().String("file", "", "path to the document")
	renderCmd.Flags().Int("line", 0, "1-based line to point at")
	renderCmd.Flags().Int("column", 0, "1-based column for the caret (0=unknown)")
	renderCmd.Flags().String("cause", "", "short reason printed at the block tail")
	renderCmd.Flags().StringArray("note", nil, "extra note under the block (repeatable)")
	renderCmd.Flags().Int("context", snippet.DefaultContext, "context lines around the target")
	renderCmd.Flags().String("renderer", "default", "snippet style (default|nu-like)")
	renderCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

func runRender(cmd *cobra.Command, args []string) error {
	filePath, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("failed to get file flag: %w", err)
	}

	line, err := cmd.Flags().GetInt("line")
	if err != nil {
		return fmt.Errorf("failed to get line flag: %w", err)
	}

	column, err := cmd.Flags().GetInt("column")
	if err != nil {
		return fmt.Errorf("failed to get column flag: %w", err)
	}

	cause, err := cmd.Flags().GetString("cause")
	if err != nil {
		return fmt.Errorf("failed to get cause flag: %w", err)
	}

	notes, err := cmd.Flags().GetStringArray("note")
	if err != nil {
		return fmt.Errorf("failed to get note flag: %w", err)
	}

	contextRadius, err := cmd.Flags().GetInt("context")
	if err != nil {
		return fmt.Errorf("failed to get context flag: %w", err)
	}

	rendererValue, err := cmd.Flags().GetString("renderer")
	if err != nil {
		return fmt.Errorf("failed to get renderer flag: %w", err)
	}

	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}

	if filePath == "" {
		return fmt.Errorf("--file is required")
	}
	if line < 1 {
		return fmt.Errorf("--line must be >= 1")
	}
	if cause == "" {
		return fmt.Errorf("--cause is required")
	}

	style, err := readRendererMode(rendererValue)
	if err != nil {
		return err
	}

	doc, err := source.Load(filePath)
	if err != nil {
		return fmt.Errorf("failed to load file: %w", err)
	}

	pathMode := source.PathModeAuto
	if fullPath {
		pathMode = source.PathModeAbsolute
	}

	return snippet.Write(cmd.OutOrStdout(), doc, snippet.Request{
		Cause:   cause,
		Line:    line,
		Column:  column,
		Context: contextRadius,
		Notes:   notes,
		Style:   style,
		Path:    doc.DisplayPath(pathMode, ""),
	})
}
