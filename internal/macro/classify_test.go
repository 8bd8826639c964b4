package macro

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sarokiasamy2023/AIStoryGenerator-sub001/internal/scenario"
)

func classifyStep(t *testing.T, kw scenario.Keyword, text string) Intent {
	t.Helper()
	step := scenario.Step{Keyword: kw, Text: text, Raw: string(kw) + " " + text, Line: 7}
	literals, err := scenario.Tokenize(step)
	require.NoError(t, err)
	c := NewConverter(Options{}, zerolog.Nop())
	return c.Classify(step, literals)
}

func TestClassify_TextEntry(t *testing.T) {
	intent := classifyStep(t, scenario.KeywordAnd, `the user enters "admin" into "Email"`)

	assert.Equal(t, IntentTextEntry, intent.Kind)
	assert.Equal(t, "Email", intent.Field)
	assert.Equal(t, "admin", intent.Value)
	assert.Equal(t, "text-entry", intent.Rule)
	assert.Equal(t, 7, intent.Line)
}

func TestClassify_TextareaWinsOverTextEntry(t *testing.T) {
	intent := classifyStep(t, scenario.KeywordAnd, `the user enters "Worked with hospitals" into textarea "Collaboration"`)

	assert.Equal(t, IntentTextareaEntry, intent.Kind)
	assert.Equal(t, "Collaboration", intent.Field)
	assert.Equal(t, "textarea-entry", intent.Rule)
}

func TestClassify_Selection(t *testing.T) {
	intent := classifyStep(t, scenario.KeywordAnd, `the user selects "Yes" for "Articles"`)

	assert.Equal(t, IntentSelection, intent.Kind)
	assert.Equal(t, "Articles", intent.Field)
	assert.Equal(t, "Yes", intent.Value)
}

func TestClassify_Click(t *testing.T) {
	intent := classifyStep(t, scenario.KeywordAnd, `the user clicks "Submit"`)

	assert.Equal(t, IntentClick, intent.Kind)
	assert.Equal(t, "Submit", intent.Field)
	assert.Equal(t, "", intent.Value)
}

func TestClassify_NavigatesTo(t *testing.T) {
	intent := classifyStep(t, scenario.KeywordWhen, `the user navigates to "Signup page"`)

	assert.Equal(t, IntentNavigate, intent.Kind)
	assert.Equal(t, "Signup page", intent.Field)
}

func TestClassify_Opens(t *testing.T) {
	intent := classifyStep(t, scenario.KeywordWhen, `the user opens "Settings"`)

	assert.Equal(t, IntentNavigate, intent.Kind)
	assert.Equal(t, "Settings", intent.Field)
	assert.Equal(t, "open", intent.Rule)
}

func TestClassify_AssertionClickOnThen(t *testing.T) {
	intent := classifyStep(t, scenario.KeywordThen, `the user should see "Dashboard"`)

	assert.Equal(t, IntentNavigate, intent.Kind)
	assert.Equal(t, "Dashboard", intent.Field)
	assert.Equal(t, "assertion-click", intent.Rule)
}

func TestClassify_ShouldSeeOutsideThen(t *testing.T) {
	intent := classifyStep(t, scenario.KeywordWhen, `the user should see "Dashboard"`)

	assert.Equal(t, IntentUnrecognized, intent.Kind)
}

func TestClassify_OtherSpecifyForcesTextEntry(t *testing.T) {
	intent := classifyStep(t, scenario.KeywordAnd, `the user selects "Custom value" for "Other-Specify"`)

	assert.Equal(t, IntentTextEntry, intent.Kind)
	assert.Equal(t, "Other-Specify", intent.Field)
	assert.Equal(t, "selection", intent.Rule)
}

func TestClassify_OtherSpecifyCaseInsensitive(t *testing.T) {
	intent := classifyStep(t, scenario.KeywordAnd, `the user selects "Custom value" for "OTHER-SPECIFY"`)

	assert.Equal(t, IntentTextEntry, intent.Kind)
	assert.Equal(t, "OTHER-SPECIFY", intent.Field, "field literal stays verbatim")
}

func TestClassify_OtherSpecifyDoesNotTouchClick(t *testing.T) {
	intent := classifyStep(t, scenario.KeywordAnd, `the user clicks "Other-Specify"`)

	assert.Equal(t, IntentClick, intent.Kind)
}

func TestClassify_FieldLiteralVerbatim(t *testing.T) {
	intent := classifyStep(t, scenario.KeywordAnd, `the user enters "y" into " Have you worked with us (before)? - y/n "`)

	assert.Equal(t, IntentTextEntry, intent.Kind)
	assert.Equal(t, " Have you worked with us (before)? - y/n ", intent.Field)
}

func TestClassify_ZeroLiterals(t *testing.T) {
	intent := classifyStep(t, scenario.KeywordWhen, `the user waits patiently`)

	assert.Equal(t, IntentUnrecognized, intent.Kind)
	assert.Equal(t, 7, intent.Line)
}

func TestClassify_UnknownVerb(t *testing.T) {
	intent := classifyStep(t, scenario.KeywordAnd, `the user scribbles "note" onto "Pad"`)

	assert.Equal(t, IntentUnrecognized, intent.Kind)
}

func TestClassify_PrefixedVerbDoesNotMatch(t *testing.T) {
	intent := classifyStep(t, scenario.KeywordAnd, `the user reenters "admin" into "Email"`)

	assert.Equal(t, IntentUnrecognized, intent.Kind)
}

func TestClassify_GivenStepsOutOfScope(t *testing.T) {
	intent := classifyStep(t, scenario.KeywordGiven, `the user enters "admin" into "Email"`)

	assert.Equal(t, IntentUnrecognized, intent.Kind)
}

func TestResolveRoles_TwoLiterals(t *testing.T) {
	literals := []scenario.QuotedLiteral{{Text: "admin"}, {Text: "Email"}}

	field, value := resolveRoles(Rule{Literals: 2}, literals)

	assert.Equal(t, "Email", field)
	assert.Equal(t, "admin", value)
}

func TestResolveRoles_OneLiteral(t *testing.T) {
	literals := []scenario.QuotedLiteral{{Text: "Submit"}}

	field, value := resolveRoles(Rule{Literals: 1}, literals)

	assert.Equal(t, "Submit", field)
	assert.Equal(t, "", value)
}
