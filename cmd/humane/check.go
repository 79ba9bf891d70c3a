package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"humane/internal/checkrun"
	"humane/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file|directory>",
	Short: "Check config files and show where they break",
	Long:  `Check decodes JSON, TOML and YAML files and renders a diagnostic block pointing at the line and column where decoding failed, for a single file or for every supported file within a directory`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

// init registers CLI flags for the check command used by runCheck.
func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	checkCmd.Flags().Int("context", 0, "context lines around the error (0=format default)")
	checkCmd.Flags().String("renderer", "default", "snippet style (default|nu-like)")
	checkCmd.Flags().StringArray("note", nil, "extra note under the block (repeatable)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().String("ui", "auto", "interactive progress for directories (auto|on|off)")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

// runCheck executes the "check" command: it reads flags and the optional
// humane.toml, checks the provided path (single file or directory), prints
// the results in the chosen output format, and exits with a non-zero status
// when any file failed to decode.
func runCheck(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "short":
		// supported
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	contextRadius, err := cmd.Flags().GetInt("context")
	if err != nil {
		return fmt.Errorf("failed to get context flag: %w", err)
	}

	rendererValue, err := cmd.Flags().GetString("renderer")
	if err != nil {
		return fmt.Errorf("failed to get renderer flag: %w", err)
	}

	notes, err := cmd.Flags().GetStringArray("note")
	if err != nil {
		return fmt.Errorf("failed to get note flag: %w", err)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}

	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}

	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	log, err := rootLogger(cmd)
	if err != nil {
		return err
	}

	useColor, err := useColorOutput(cmd)
	if err != nil {
		return err
	}
	color.NoColor = !useColor

	// humane.toml дополняет флаги, не перекрывая явно заданные
	ws, found, err := loadWorkspaceFile("")
	if err != nil {
		return err
	}
	if found {
		log.Debug("using workspace config", "path", ws.Path)
		if !cmd.Flags().Changed("context") && ws.Config.Render.Context > 0 {
			contextRadius = ws.Config.Render.Context
		}
		if !cmd.Flags().Changed("renderer") && ws.Config.Render.Renderer != "" {
			rendererValue = ws.Config.Render.Renderer
		}
		if !cmd.Flags().Changed("jobs") && ws.Config.Check.Jobs > 0 {
			jobs = ws.Config.Check.Jobs
		}
	}

	style, err := readRendererMode(rendererValue)
	if err != nil {
		return err
	}

	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	pathMode := source.PathModeAuto
	if fullPath {
		pathMode = source.PathModeAbsolute
	}

	opts := checkrun.Options{
		Context:  contextRadius,
		Notes:    notes,
		Style:    style,
		PathMode: pathMode,
	}

	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	runFile := func() (int, error) {
		res, err := checkrun.Check(cmd.Context(), filePath, opts)
		if err != nil {
			return 0, err
		}
		log.Debug("checked file", "path", res.Path, "format", res.Format, "ok", res.OK)

		exit := 0
		if !res.OK {
			exit = 1
		}

		switch format {
		case "pretty":
			printResultPretty(os.Stdout, res, quiet)
		case "short":
			printResultShort(os.Stdout, res)
		case "json":
			if err := writeResultsJSON(os.Stdout, []checkrun.Result{res}, false, showTimings); err != nil {
				return 0, fmt.Errorf("failed to encode check output: %w", err)
			}
		}

		if showTimings && format != "json" && res.Timing != nil {
			fmt.Fprint(os.Stdout, res.Timing.Summary())
		}
		return exit, nil
	}

	runDir := func() (int, error) {
		files, err := checkrun.ListFiles(filePath)
		if err != nil {
			return 0, fmt.Errorf("failed to list files: %w", err)
		}
		if len(files) == 0 {
			if !quiet {
				fmt.Fprintf(os.Stdout, "no supported files under %s\n", filePath)
			}
			return 0, nil
		}
		log.Debug("checking directory", "path", filePath, "files", len(files))

		// Интерактивный прогресс только для pretty-вывода на терминале
		useTUI := format == "pretty" && len(files) > 1 && shouldUseTUI(mode)

		var results []checkrun.Result
		if useTUI {
			results, err = runCheckDirWithUI(cmd.Context(), "checking "+filePath, filePath, files, opts, jobs)
		} else {
			results, err = checkrun.CheckDir(cmd.Context(), filePath, opts, jobs)
		}
		if err != nil {
			return 0, fmt.Errorf("check failed: %w", err)
		}

		exit := 0
		failed := 0
		for _, r := range results {
			if !r.OK {
				exit = 1
				failed++
			}
		}

		switch format {
		case "pretty":
			printDirPretty(os.Stdout, results, failed, quiet)
		case "short":
			for _, r := range results {
				printResultShort(os.Stdout, r)
			}
		case "json":
			if err := writeResultsJSON(os.Stdout, results, true, showTimings); err != nil {
				return 0, fmt.Errorf("failed to encode check output: %w", err)
			}
		}

		if showTimings && format != "json" {
			printCheckTimings(os.Stdout, results)
		}
		return exit, nil
	}

	var (
		exitCode  int
		resultErr error
	)
	if st.IsDir() {
		exitCode, resultErr = runDir()
	} else {
		exitCode, resultErr = runFile()
	}

	if resultErr != nil {
		return resultErr
	}
	if exitCode != 0 {
		// Suppress cobra usage output on check failures
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("") // Silent error - blocks already printed
	}
	return nil
}
