package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/pable/go-football-stats/internal/dashboard"
	"github.com/pable/go-football-stats/internal/model"
)

var (
	exportOut     string
	exportMatches bool
	exportPretty  bool
)

// exportDocument is the JSON written by export: the dashboard plus provenance
// and, optionally, every filtered match.
type exportDocument struct {
	GeneratedAt string `json:"generated_at"`
	Source      string `json:"source"`
	*dashboard.Dashboard
	FilteredMatches []model.Match `json:"matches,omitempty"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a team's dashboard as JSON",
	Long: `Build the dashboard for the selection flags and write it as JSON, the same
document served by GET /api/dashboard. With --matches every filtered match is
included as well.`,
	Example: `  footstats export --team Netherlands --from 1974 --out netherlands.json
  footstats export --team Japan --tournament "AFC Asian Cup" --matches --pretty`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	addSelectionFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().BoolVar(&exportMatches, "matches", false, "include every filtered match")
	exportCmd.Flags().BoolVar(&exportPretty, "pretty", false, "indent the JSON output")
}

func runExport(cmd *cobra.Command, args []string) error {
	d, err := buildDashboard(cmd, nil)
	if err != nil {
		return err
	}
	doc := exportDocument{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Source:      cfg.DBPath,
		Dashboard:   d,
	}
	if exportMatches {
		doc.FilteredMatches = d.Matches
	}

	var w io.Writer = os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := sonic.ConfigDefault.NewEncoder(w)
	if exportPretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode dashboard: %w", err)
	}
	if exportOut != "" {
		logger.Info("dashboard exported", "team", d.Team, "file", exportOut, "matches", len(d.Matches))
	}
	return nil
}
