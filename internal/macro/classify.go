package macro

import (
	"strings"

	"github.com/Sarokiasamy2023/AIStoryGenerator-sub001/internal/scenario"
)

// Classify matches a tokenized step against the rule table in order and
// returns the intent of the first matching row, after the override table has
// had its say. A step no row matches is unrecognized; the caller decides
// whether that is worth a diagnostic.
func (c *Converter) Classify(step scenario.Step, literals []scenario.QuotedLiteral) Intent {
	segments := scenario.Segments(step.Text, literals)
	for _, rule := range c.rules {
		if !rule.matches(step.Keyword, literals, segments) {
			continue
		}
		field, value := resolveRoles(rule, literals)
		intent := Intent{
			Kind:  rule.Kind,
			Field: field,
			Value: value,
			Rule:  rule.Name,
			Line:  step.Line,
		}
		return c.applyOverrides(intent)
	}
	return Intent{Kind: IntentUnrecognized, Line: step.Line}
}

// resolveRoles applies the fixed positional convention: with two literals the
// first is the value and the second the field name; with one literal the
// single text serves as both label and field reference. The field literal is
// echoed byte-for-byte, never trimmed or case-folded.
func resolveRoles(rule Rule, literals []scenario.QuotedLiteral) (field, value string) {
	switch rule.Literals {
	case 2:
		return literals[1].Text, literals[0].Text
	case 1:
		return literals[0].Text, ""
	}
	return "", ""
}

// applyOverrides reclassifies two-literal intents whose field name hits the
// override table. One-literal intents have no field/value split to override.
func (c *Converter) applyOverrides(intent Intent) Intent {
	switch intent.Kind {
	case IntentTextEntry, IntentTextareaEntry, IntentSelection:
	default:
		return intent
	}
	for _, o := range c.overrides {
		if strings.EqualFold(intent.Field, o.Field) {
			intent.Kind = o.Kind
			return intent
		}
	}
	return intent
}
