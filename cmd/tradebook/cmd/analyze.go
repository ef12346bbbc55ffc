package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/analysis"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze win rates by criteria combination",
	Long: `Evaluate every combination of the basic criteria plus four of the other
criteria against the journal and report the best group, the groups at or
above the high threshold, the groups at or below the low threshold, and
trade counts by day of week.

The report is Org-mode text unless --json is given.

Examples:
  tradebook analyze
  tradebook analyze --json
  tradebook analyze --out review.org`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

var (
	analyzeJSON bool
	analyzeOut  string
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the report as JSON")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "write the report to a file instead of stdout")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	svc, _, _, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	r, err := svc.Analyze()
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if analyzeOut != "" {
		f, err := os.Create(analyzeOut)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		defer f.Close()
		w = f
	}

	if analyzeJSON {
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	return analysis.WriteOrg(w, r)
}
