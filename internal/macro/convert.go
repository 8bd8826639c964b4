// Package macro turns parsed scenario documents into flat automation-macro
// lines. The whole pipeline (tokenize, classify, resolve roles, emit) is a
// pure function over the document: same input, byte-identical output, with
// per-step problems reported as diagnostics rather than failures.
package macro

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/Sarokiasamy2023/AIStoryGenerator-sub001/internal/scenario"
)

// ErrEmptyDocument is returned when a document contains no scenario blocks.
// It is the only condition that aborts a conversion outright.
var ErrEmptyDocument = errors.New("no scenario blocks found")

// Options control walker policy. They do not touch the render templates.
type Options struct {
	// PreserveComments passes comment lines through as documentation between
	// emitted lines instead of dropping them.
	PreserveComments bool

	// AssertionClicks lets "Then ... should see" steps emit a Click. Off by
	// default: assertion steps are non-actionable under the standard policy.
	AssertionClicks bool
}

// Result carries the ordered macro lines and whatever diagnostics accumulated.
// Both are always returned together; partial output is normal output.
type Result struct {
	Lines       []string     `json:"automationSteps"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// Converter holds the rule and override tables plus walker options. It is
// immutable after construction and safe to share across goroutines.
type Converter struct {
	rules     []Rule
	overrides []Override
	opts      Options
	log       zerolog.Logger
}

// NewConverter builds a converter over the default tables. Pass zerolog.Nop()
// when classification logging is unwanted.
func NewConverter(opts Options, logger zerolog.Logger) *Converter {
	return &Converter{
		rules:     DefaultRules(),
		overrides: DefaultOverrides(),
		opts:      opts,
		log:       logger,
	}
}

// Rules returns a copy of the pattern table in match order.
func (c *Converter) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// Overrides returns a copy of the field-name override table.
func (c *Converter) Overrides() []Override {
	return append([]Override(nil), c.overrides...)
}

// Convert walks the document's steps in order, feeding each through the
// pipeline and concatenating the per-step lines with no reordering, no
// deduplication, and no lookahead across steps.
func (c *Converter) Convert(doc *scenario.Document) (*Result, error) {
	if doc == nil || len(doc.Scenarios) == 0 {
		return nil, ErrEmptyDocument
	}

	res := &Result{}
	for _, sc := range doc.Scenarios {
		for _, step := range sc.Steps {
			c.convertStep(res, step)
		}
	}
	return res, nil
}

func (c *Converter) convertStep(res *Result, step scenario.Step) {
	switch step.Keyword {
	case scenario.KeywordComment:
		if c.opts.PreserveComments {
			res.Lines = append(res.Lines, step.Raw)
		}
		return
	case scenario.KeywordGiven:
		// Context setup never emits
		return
	case scenario.KeywordThen:
		if !c.opts.AssertionClicks {
			return
		}
	}

	literals, err := scenario.Tokenize(step)
	if err != nil {
		var perr *scenario.ParseError
		message := err.Error()
		if errors.As(err, &perr) {
			message = perr.Message
		}
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Severity: SeverityError,
			Code:     CodeMalformedQuoting,
			Line:     step.Line,
			Message:  message,
			Step:     step.Raw,
		})
		c.log.Warn().Int("line", step.Line).Str("code", CodeMalformedQuoting).Msg("step dropped")
		return
	}

	intent := c.Classify(step, literals)
	if intent.Kind == IntentUnrecognized {
		if step.Keyword == scenario.KeywordThen {
			// Assertions stay silent unless the named pattern matched
			return
		}
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeUnrecognizedStep,
			Line:     step.Line,
			Message:  "no step pattern matched",
			Step:     step.Raw,
		})
		c.log.Warn().Int("line", step.Line).Str("code", CodeUnrecognizedStep).Msg("step skipped")
		return
	}

	c.log.Debug().
		Int("line", step.Line).
		Str("rule", intent.Rule).
		Str("kind", string(intent.Kind)).
		Str("field", intent.Field).
		Msg("step classified")

	res.Lines = append(res.Lines, Emit(intent)...)
}
