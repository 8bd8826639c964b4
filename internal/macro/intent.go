package macro

// IntentKind identifies the classified meaning of an actionable step.
type IntentKind string

const (
	IntentTextEntry     IntentKind = "text-entry"
	IntentTextareaEntry IntentKind = "textarea-entry"
	IntentSelection     IntentKind = "selection"
	IntentClick         IntentKind = "click"
	IntentNavigate      IntentKind = "navigate"
	IntentUnrecognized  IntentKind = "unrecognized"
)

// Intent is the typed meaning of one actionable step. Intents are derived per
// step and never stored. Field holds the field-name literal byte-for-byte;
// Value holds the field-value literal of two-literal intents. The emitter
// renders only Field, since emitted macros re-resolve values at execution time.
type Intent struct {
	Kind  IntentKind
	Field string
	Value string
	Rule  string // name of the rule table row that matched
	Line  int    // 1-based source line, for diagnostics
}
