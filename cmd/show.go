package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sarokiasamy2023/AIStoryGenerator-sub001/internal/config"
	"github.com/Sarokiasamy2023/AIStoryGenerator-sub001/internal/db"
	"github.com/Sarokiasamy2023/AIStoryGenerator-sub001/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a recorded conversion by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunShow(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func RunShow(w io.Writer, rawID string) error {
	rawID = strings.TrimPrefix(rawID, "#")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid conversion ID: %s", rawID)
	}

	if _, err := os.Stat(config.DirName); os.IsNotExist(err) {
		return fmt.Errorf("run `smc init` first")
	}

	sqlDB, err := db.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer sqlDB.Close()

	var sourcePath, createdAt string
	err = sqlDB.QueryRow(`SELECT source_path, created_at FROM conversions WHERE id = ?`, id).Scan(&sourcePath, &createdAt)
	if err != nil {
		return fmt.Errorf("conversion %d not found", id)
	}

	ui.ShowHeader(w, id, sourcePath, createdAt)
	fmt.Fprintln(w)

	lines, err := sqlDB.Query(`SELECT line FROM macro_lines WHERE conversion_id = ? ORDER BY position`, id)
	if err != nil {
		return fmt.Errorf("querying lines: %w", err)
	}
	defer lines.Close()

	for lines.Next() {
		var line string
		if err := lines.Scan(&line); err != nil {
			return fmt.Errorf("scanning line: %w", err)
		}
		ui.MacroLine(w, line)
	}
	if err := lines.Err(); err != nil {
		return fmt.Errorf("iterating lines: %w", err)
	}

	diags, err := sqlDB.Query(`SELECT severity, code, line, message, step FROM diagnostics WHERE conversion_id = ? ORDER BY line, id`, id)
	if err != nil {
		return fmt.Errorf("querying diagnostics: %w", err)
	}
	defer diags.Close()

	first := true
	for diags.Next() {
		var severity, code, message, step string
		var line int
		if err := diags.Scan(&severity, &code, &line, &message, &step); err != nil {
			return fmt.Errorf("scanning diagnostic: %w", err)
		}
		if first {
			fmt.Fprintln(w)
			first = false
		}
		ui.DiagLine(w, severity, code, line, message, step)
	}
	return diags.Err()
}
