package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sarokiasamy2023/AIStoryGenerator-sub001/internal/config"
	"github.com/Sarokiasamy2023/AIStoryGenerator-sub001/internal/db"
	"github.com/Sarokiasamy2023/AIStoryGenerator-sub001/internal/ui"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded conversions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunHistory(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

type historyRow struct {
	id         int64
	createdAt  string
	sourcePath string
	lineCount  int
	diagCount  int
}

func RunHistory(w io.Writer) error {
	if _, err := os.Stat(config.DirName); os.IsNotExist(err) {
		return fmt.Errorf("run `smc init` first")
	}

	sqlDB, err := db.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer sqlDB.Close()

	rows, err := sqlDB.Query(`
		SELECT id, created_at, source_path, line_count, diagnostic_count
		FROM conversions
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return fmt.Errorf("querying conversions: %w", err)
	}
	defer rows.Close()

	var results []historyRow
	for rows.Next() {
		var r historyRow
		if err := rows.Scan(&r.id, &r.createdAt, &r.sourcePath, &r.lineCount, &r.diagCount); err != nil {
			return fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}

	if len(results) == 0 {
		return nil
	}

	idWidth, pathWidth := 0, 0
	for _, r := range results {
		tag := fmt.Sprintf("#%d", r.id)
		if len(tag) > idWidth {
			idWidth = len(tag)
		}
		if len(r.sourcePath) > pathWidth {
			pathWidth = len(r.sourcePath)
		}
	}

	for _, r := range results {
		ui.HistoryRow(w, r.id, r.createdAt, r.sourcePath, r.lineCount, r.diagCount, idWidth, pathWidth)
	}

	return nil
}
