package macro

// Diagnostic severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Diagnostic codes. Errors abort the step's contribution; warnings record a
// skipped step. Neither aborts the conversion.
const (
	CodeMalformedQuoting = "CNVE001"
	CodeUnrecognizedStep = "CNVW001"
)

// Diagnostic is a recoverable per-step record returned alongside the output
// lines. Conversion never fails wholesale for a per-step condition.
type Diagnostic struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Line     int    `json:"line"`
	Message  string `json:"message"`
	Step     string `json:"step,omitempty"` // raw step text
}
