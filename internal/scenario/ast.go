package scenario

import "fmt"

// Keyword is the leading connective token of a step line.
type Keyword string

const (
	KeywordGiven   Keyword = "Given"
	KeywordWhen    Keyword = "When"
	KeywordThen    Keyword = "Then"
	KeywordAnd     Keyword = "And"
	KeywordComment Keyword = "#"
)

// StepKeywords lists the connective vocabulary in recognition order.
var StepKeywords = []Keyword{KeywordGiven, KeywordWhen, KeywordThen, KeywordAnd}

type Document struct {
	Title     string
	Scenarios []Scenario
}

type Scenario struct {
	Name  string
	Steps []Step
}

type Step struct {
	Keyword Keyword
	Text    string // body after the keyword; for comments, same as Raw
	Raw     string // original trimmed line
	Line    int    // 1-based line number
}

// QuotedLiteral is a substring of a step's text that appeared between double
// quote marks, kept verbatim. Start and End index the literal's content within
// Step.Text (End exclusive); the quote marks themselves sit just outside the span.
type QuotedLiteral struct {
	Text  string
	Start int
	End   int
}

type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}
