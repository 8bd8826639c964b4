package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Sarokiasamy2023/AIStoryGenerator-sub001/internal/macro"
	"github.com/Sarokiasamy2023/AIStoryGenerator-sub001/internal/ui"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the step pattern table in match order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunRules(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func RunRules(w io.Writer) error {
	c := macro.NewConverter(macro.Options{}, zerolog.Nop())

	rules := c.Rules()
	nameWidth, kindWidth := 0, 0
	for _, r := range rules {
		if len(r.Name) > nameWidth {
			nameWidth = len(r.Name)
		}
		if len(string(r.Kind)) > kindWidth {
			kindWidth = len(string(r.Kind))
		}
	}

	for _, r := range rules {
		ui.RuleRow(w, r.Name, string(r.Kind), rulePattern(r), nameWidth, kindWidth)
	}

	fmt.Fprintln(w)
	for _, o := range c.Overrides() {
		fmt.Fprintf(w, "field %q always renders as %s\n", o.Field, o.Kind)
	}

	return nil
}

func rulePattern(r macro.Rule) string {
	kws := make([]string, len(r.Keywords))
	for i, kw := range r.Keywords {
		kws[i] = string(kw)
	}
	scope := strings.Join(kws, "/")

	if r.Literals == 2 {
		return fmt.Sprintf(`%s ... %s "<value>" %s "<field>"`, scope, r.Verb, r.Connective)
	}
	return fmt.Sprintf(`%s ... %s "<target>"`, scope, r.Verb)
}
