// metaloc — batch localizer for application catalog metadata.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/catalog-tools/metaloc/batch"
	"github.com/catalog-tools/metaloc/config"
	"github.com/catalog-tools/metaloc/i18n"
	"github.com/catalog-tools/metaloc/translate"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flag
// ---------------------------------------------------------------------------

var rootDir string

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "metaloc",
		Short: "Batch localizer for application catalog metadata",
		Long: `metaloc — batch localizer for application catalog metadata.

Reads per-item metadata records (name + description) from meta/, detects
the source language of each, machine-translates both fields into every
target language through an OpenAI-compatible chat-completion endpoint,
and writes enriched JSON records to dist/. Reference glossary files are
copied verbatim to dist/glossaries/.

Target languages: zh-CN, zh-TW, en

Environment:
  METALOC_API_KEY   API key for the translation backend (falls back to
                    OPENAI_API_KEY; only required when a translation
                    call is actually made)
  METALOC_BASE_URL  Endpoint override (default: https://api.openai.com/v1)
  METALOC_MODEL     Model override`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flag — inherited by all subcommands
	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root directory")

	root.AddCommand(
		newRunCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: i18n.T("Show version information"),
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("metaloc version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}

	return cmd
}

// ---------------------------------------------------------------------------
// run (the batch job)
// ---------------------------------------------------------------------------

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: i18n.T("Localize all metadata files under the project root"),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			client := translate.New(cfg)

			logInfo(i18n.T("Localizing metadata under %s"), rootDir)
			res, err := batch.Run(cmd.Context(), batch.Options{
				Root:       rootDir,
				Translator: client,
				OnLog:      logInfo,
				OnWarn:     logWarning,
			})
			if err != nil {
				return err
			}

			logSuccess(i18n.T("Batch complete: %d file(s) processed"), res.Processed)
			return nil
		},
	}

	return cmd
}
