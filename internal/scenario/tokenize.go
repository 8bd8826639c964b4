package scenario

// Tokenize extracts the quoted literals of a step in left-to-right order.
// Literal text is preserved verbatim: internal whitespace, casing, and
// punctuation are untouched. An odd number of quote marks is the only failure
// shape and yields a *ParseError carrying the step's line number. Comment
// steps are documentation, never tokenized.
func Tokenize(step Step) ([]QuotedLiteral, error) {
	if step.Keyword == KeywordComment {
		return nil, nil
	}

	var literals []QuotedLiteral
	text := step.Text
	open := -1
	count := 0
	for idx := 0; idx < len(text); idx++ {
		if text[idx] != '"' {
			continue
		}
		count++
		if open < 0 {
			open = idx + 1
		} else {
			literals = append(literals, QuotedLiteral{Text: text[open:idx], Start: open, End: idx})
			open = -1
		}
	}

	if count%2 != 0 {
		return nil, &ParseError{Line: step.Line, Message: "unbalanced quote marks"}
	}
	return literals, nil
}

// Segments returns the unquoted stretches of a step's text: element 0 precedes
// the first literal, element i sits between literals i-1 and i, and the last
// element follows the final literal. The quote marks belong to no segment.
// With no literals the whole text is the single segment.
func Segments(text string, literals []QuotedLiteral) []string {
	segments := make([]string, 0, len(literals)+1)
	prev := 0
	for _, lit := range literals {
		segments = append(segments, text[prev:lit.Start-1])
		prev = lit.End + 1
	}
	segments = append(segments, text[prev:])
	return segments
}
