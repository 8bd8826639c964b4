package macro

import (
	"strings"

	"github.com/Sarokiasamy2023/AIStoryGenerator-sub001/internal/scenario"
)

// SentinelOtherSpecify names the free-text fallback field that lives inside
// what is otherwise a selection control. Steps targeting it render as text
// entry no matter how they are phrased.
const SentinelOtherSpecify = "Other-Specify"

// Rule is one row of the ordered pattern table. A rule matches a step when the
// step's keyword is in scope, the literal count is exact, the Verb words appear
// before the first literal, and (for two-literal rules) the Connective words
// appear between the literals. Word matching is case-insensitive and
// whole-word; phrase words must be consecutive.
type Rule struct {
	Name       string
	Kind       IntentKind
	Keywords   []scenario.Keyword
	Literals   int
	Verb       string
	Connective string
}

// Override reclassifies an already-matched two-literal intent by field-name
// content, regardless of the connective that matched. Field comparison is
// case-insensitive.
type Override struct {
	Field string
	Kind  IntentKind
}

var actionKeywords = []scenario.Keyword{scenario.KeywordWhen, scenario.KeywordAnd}

// DefaultRules returns the pattern table in its fixed specificity order. The
// order is part of the contract: generic and specific rows can match the same
// tokens ("into textarea" also contains "into"), and the first match wins.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "textarea-entry", Kind: IntentTextareaEntry, Keywords: actionKeywords, Literals: 2, Verb: "enters", Connective: "into textarea"},
		{Name: "text-entry", Kind: IntentTextEntry, Keywords: actionKeywords, Literals: 2, Verb: "enters", Connective: "into"},
		{Name: "selection", Kind: IntentSelection, Keywords: actionKeywords, Literals: 2, Verb: "selects", Connective: "for"},
		{Name: "click", Kind: IntentClick, Keywords: actionKeywords, Literals: 1, Verb: "clicks"},
		{Name: "navigate", Kind: IntentNavigate, Keywords: actionKeywords, Literals: 1, Verb: "navigates to"},
		{Name: "open", Kind: IntentNavigate, Keywords: actionKeywords, Literals: 1, Verb: "opens"},
		{Name: "assertion-click", Kind: IntentNavigate, Keywords: []scenario.Keyword{scenario.KeywordThen}, Literals: 1, Verb: "should see"},
	}
}

// DefaultOverrides returns the field-name override table.
func DefaultOverrides() []Override {
	return []Override{
		{Field: SentinelOtherSpecify, Kind: IntentTextEntry},
	}
}

func (r Rule) matches(keyword scenario.Keyword, literals []scenario.QuotedLiteral, segments []string) bool {
	if !keywordIn(r.Keywords, keyword) {
		return false
	}
	if len(literals) != r.Literals {
		return false
	}
	if !hasPhrase(segments[0], r.Verb) {
		return false
	}
	if r.Connective != "" && !hasPhrase(segments[1], r.Connective) {
		return false
	}
	return true
}

func keywordIn(keywords []scenario.Keyword, kw scenario.Keyword) bool {
	for _, k := range keywords {
		if k == kw {
			return true
		}
	}
	return false
}

// hasPhrase reports whether the words of phrase appear consecutively among the
// words of text, comparing whole words case-insensitively.
func hasPhrase(text, phrase string) bool {
	words := strings.Fields(strings.ToLower(text))
	want := strings.Fields(strings.ToLower(phrase))
	if len(want) == 0 {
		return true
	}
outer:
	for i := 0; i+len(want) <= len(words); i++ {
		for j := range want {
			if words[i+j] != want[j] {
				continue outer
			}
		}
		return true
	}
	return false
}
