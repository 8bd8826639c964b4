package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sarokiasamy2023/AIStoryGenerator-sub001/internal/config"
	"github.com/Sarokiasamy2023/AIStoryGenerator-sub001/internal/db"
	"github.com/Sarokiasamy2023/AIStoryGenerator-sub001/internal/logging"
	"github.com/Sarokiasamy2023/AIStoryGenerator-sub001/internal/macro"
	"github.com/Sarokiasamy2023/AIStoryGenerator-sub001/internal/scenario"
	"github.com/Sarokiasamy2023/AIStoryGenerator-sub001/internal/ui"
)

var (
	convertOutFlag              string
	convertJSONFlag             bool
	convertRecordFlag           bool
	convertPreserveCommentsFlag bool
	convertAssertionClicksFlag  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert scenario steps into automation macro lines",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		opts := ConvertOptions{
			Out:              convertOutFlag,
			JSON:             convertJSONFlag,
			Record:           convertRecordFlag,
			PreserveComments: cfg.PreserveComments,
			AssertionClicks:  cfg.AssertionClicks,
			LogLevel:         cfg.LogLevel,
		}
		if cmd.Flags().Changed("preserve-comments") {
			opts.PreserveComments = convertPreserveCommentsFlag
		}
		if cmd.Flags().Changed("assertion-clicks") {
			opts.AssertionClicks = convertAssertionClicksFlag
		}
		return RunConvert(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertOutFlag, "out", "", "Write output to a file instead of stdout")
	convertCmd.Flags().BoolVar(&convertJSONFlag, "json", false, "Emit a JSON envelope instead of plain lines")
	convertCmd.Flags().BoolVar(&convertRecordFlag, "record", false, "Record the conversion in the ledger")
	convertCmd.Flags().BoolVar(&convertPreserveCommentsFlag, "preserve-comments", false, "Pass comment lines through to the output")
	convertCmd.Flags().BoolVar(&convertAssertionClicksFlag, "assertion-clicks", false, "Let \"should see\" assertions emit clicks")
	rootCmd.AddCommand(convertCmd)
}

// ConvertOptions carries the resolved settings for one convert run, config
// file and flags already merged.
type ConvertOptions struct {
	Out              string
	JSON             bool
	Record           bool
	PreserveComments bool
	AssertionClicks  bool
	LogLevel         string
}

func RunConvert(w, errW io.Writer, path string, opts ConvertOptions) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	doc := scenario.Parse(content)

	log := logging.New(errW, opts.LogLevel).With().Str("source", path).Logger()
	conv := macro.NewConverter(macro.Options{
		PreserveComments: opts.PreserveComments,
		AssertionClicks:  opts.AssertionClicks,
	}, log)

	res, err := conv.Convert(doc)
	if err != nil {
		return fmt.Errorf("converting %s: %w", path, err)
	}

	if err := writeOutput(w, res, opts); err != nil {
		return err
	}

	if !opts.JSON {
		for _, d := range res.Diagnostics {
			ui.DiagLine(errW, d.Severity, d.Code, d.Line, d.Message, d.Step)
		}
		ui.SummaryLine(errW, len(res.Lines), len(res.Diagnostics))
	}

	if opts.Record {
		id, err := recordConversion(path, doc, res)
		if err != nil {
			return err
		}
		fmt.Fprintf(errW, "recorded conversion #%d\n", id)
	}

	return nil
}

func writeOutput(w io.Writer, res *macro.Result, opts ConvertOptions) error {
	var payload string
	if opts.JSON {
		if res.Lines == nil {
			res.Lines = []string{}
		}
		if res.Diagnostics == nil {
			res.Diagnostics = []macro.Diagnostic{}
		}
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		payload = string(data) + "\n"
	} else if len(res.Lines) > 0 {
		payload = strings.Join(res.Lines, "\n") + "\n"
	}

	if opts.Out == "" {
		_, err := io.WriteString(w, payload)
		return err
	}
	if err := os.WriteFile(opts.Out, []byte(payload), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", opts.Out, err)
	}
	fmt.Fprintf(w, "%s written\n", opts.Out)
	return nil
}

func recordConversion(path string, doc *scenario.Document, res *macro.Result) (int64, error) {
	if _, err := os.Stat(config.DirName); os.IsNotExist(err) {
		return 0, fmt.Errorf("run `smc init` first")
	}

	sqlDB, err := db.Open(config.DBPath())
	if err != nil {
		return 0, fmt.Errorf("opening ledger: %w", err)
	}
	defer sqlDB.Close()

	tx, err := sqlDB.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}

	ins, err := tx.Exec(`INSERT INTO conversions (source_path, title, scenario_count, line_count, diagnostic_count) VALUES (?, ?, ?, ?, ?)`,
		path, doc.Title, len(doc.Scenarios), len(res.Lines), len(res.Diagnostics))
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("inserting conversion: %w", err)
	}
	id, err := ins.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("reading conversion id: %w", err)
	}

	for i, line := range res.Lines {
		if _, err := tx.Exec(`INSERT INTO macro_lines (conversion_id, position, line) VALUES (?, ?, ?)`, id, i, line); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("inserting line %d: %w", i, err)
		}
	}
	for _, d := range res.Diagnostics {
		if _, err := tx.Exec(`INSERT INTO diagnostics (conversion_id, severity, code, line, message, step) VALUES (?, ?, ?, ?, ?, ?)`,
			id, d.Severity, d.Code, d.Line, d.Message, d.Step); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("inserting diagnostic: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing conversion: %w", err)
	}
	return id, nil
}
