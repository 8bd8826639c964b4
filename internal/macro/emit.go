package macro

import "fmt"

// WaitLine trails every emitted action line. The wording is part of the output
// contract, including the unit's plural.
const WaitLine = "Wait for 1 seconds"

// Render templates, one per intent variant. Any future format change is a new
// template here, never ad hoc concatenation at a call site. The capital D in
// "Dropdown" is load-bearing: downstream consumers match on it.
const (
	tmplTextEntry     = `Type "%%%s%%" into "%s"`
	tmplTextareaEntry = `Fill textarea "%%%s%%" with "%s"`
	tmplSelection     = `Select "%%%s%%" from Dropdown "%s"`
	tmplClick         = `Click "%s"`
)

// Emit renders one intent into its ordered macro lines: the action line
// followed by exactly one wait line. Unrecognized intents render nothing, so
// they contribute no wait line either. The %field% placeholder can never
// contain a quote character because literals are delimited by quotes.
func Emit(intent Intent) []string {
	var action string
	switch intent.Kind {
	case IntentTextEntry:
		action = fmt.Sprintf(tmplTextEntry, intent.Field, intent.Field)
	case IntentTextareaEntry:
		action = fmt.Sprintf(tmplTextareaEntry, intent.Field, intent.Field)
	case IntentSelection:
		action = fmt.Sprintf(tmplSelection, intent.Field, intent.Field)
	case IntentClick, IntentNavigate:
		action = fmt.Sprintf(tmplClick, intent.Field)
	default:
		return nil
	}
	return []string{action, WaitLine}
}
