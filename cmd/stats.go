package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sarokiasamy2023/AIStoryGenerator-sub001/internal/config"
	"github.com/Sarokiasamy2023/AIStoryGenerator-sub001/internal/db"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show totals across recorded conversions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunStats(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func RunStats(w io.Writer) error {
	if _, err := os.Stat(config.DirName); os.IsNotExist(err) {
		return fmt.Errorf("run `smc init` first")
	}

	sqlDB, err := db.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer sqlDB.Close()

	var conversions, lines, diags int
	err = sqlDB.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(line_count), 0), COALESCE(SUM(diagnostic_count), 0)
		FROM conversions
	`).Scan(&conversions, &lines, &diags)
	if err != nil {
		return fmt.Errorf("counting conversions: %w", err)
	}

	fmt.Fprintf(w, "Conversions: %d\n", conversions)
	fmt.Fprintf(w, "Macro lines: %d\n", lines)
	fmt.Fprintf(w, "Diagnostics: %d\n", diags)

	if diags == 0 {
		return nil
	}

	rows, err := sqlDB.Query(`
		SELECT code, severity, COUNT(*) AS cnt
		FROM diagnostics
		GROUP BY code, severity
		ORDER BY cnt DESC, code
	`)
	if err != nil {
		return fmt.Errorf("querying diagnostic counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var code, severity string
		var cnt int
		if err := rows.Scan(&code, &severity, &cnt); err != nil {
			return fmt.Errorf("scanning diagnostic row: %w", err)
		}
		fmt.Fprintf(w, "  %s (%s): %d\n", code, severity, cnt)
	}

	return rows.Err()
}
