package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/w95/linksift/internal/config"
	"github.com/w95/linksift/internal/extract"
)

var (
	scanContext  bool
	scanNoDedupe bool
	scanFilter   string
)

var scanCmd = &cobra.Command{
	Use:   "scan [file...]",
	Short: "Extract endpoint candidates from files or stdin",
	Long: `Scan JavaScript-like source for endpoint candidates.

With no file arguments the source is read from stdin. Each candidate is
printed on its own line; --context additionally prints the surrounding
statement the candidate was found in.`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVarP(&scanContext, "context", "c", false, "print surrounding context for each candidate")
	scanCmd.Flags().BoolVar(&scanNoDedupe, "no-dedupe", false, "keep repeated candidates")
	scanCmd.Flags().StringVarP(&scanFilter, "filter", "f", "", "only keep candidates matching this regex")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewLoader(cfgFile).Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	pipeline := extract.NewPipeline(cfg.Extract.ReformatThreshold)
	opts := extract.Options{
		IncludeContext:   scanContext,
		FilterPattern:    scanFilter,
		RemoveDuplicates: !scanNoDedupe,
		ContextDelimiter: cfg.Extract.ContextDelimiter,
	}

	if len(args) == 0 {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		return scanOne("stdin", string(content), pipeline, opts, false)
	}

	showNames := len(args) > 1
	for _, path := range args {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := scanOne(path, string(content), pipeline, opts, showNames); err != nil {
			return err
		}
	}
	return nil
}

func scanOne(name, content string, pipeline *extract.Pipeline, opts extract.Options, showName bool) error {
	findings, err := pipeline.Run(content, opts)
	if err != nil {
		return fmt.Errorf("scan of %s failed: %w", name, err)
	}

	if showName {
		color.New(color.Bold).Printf("%s (%d candidates)\n", name, len(findings))
	}
	link := color.New(color.FgCyan)
	ctx := color.New(color.Faint)
	for _, f := range findings {
		link.Println(f.Link)
		if opts.IncludeContext && f.Context != "" {
			ctx.Printf("  %s\n", f.Context)
		}
	}
	return nil
}
