package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Sarokiasamy2023/AIStoryGenerator-sub001/internal/macro"
	"github.com/Sarokiasamy2023/AIStoryGenerator-sub001/internal/scenario"
	"github.com/Sarokiasamy2023/AIStoryGenerator-sub001/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check that every step is recognized without emitting macros",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunCheck(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func RunCheck(w io.Writer, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	doc := scenario.Parse(content)
	res, err := macro.NewConverter(macro.Options{}, zerolog.Nop()).Convert(doc)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	for _, d := range res.Diagnostics {
		ui.DiagLine(w, d.Severity, d.Code, d.Line, d.Message, d.Step)
	}

	if len(res.Diagnostics) == 0 {
		ui.CheckOK(w, len(res.Lines)/2)
		return nil
	}

	malformed := 0
	for _, d := range res.Diagnostics {
		if d.Severity == macro.SeverityError {
			malformed++
		}
	}
	if malformed > 0 {
		return fmt.Errorf("%d malformed steps", malformed)
	}
	return nil
}
