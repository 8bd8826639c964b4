package scenario

import (
	"strings"
)

// Parse parses scenario text into a Document. Parsing is total: lines that fit
// no production are treated as description text and skipped, so Parse never
// returns an error. Malformed quoting surfaces later, from Tokenize, because
// it is a per-step condition rather than a document one.
func Parse(content []byte) *Document {
	lines := strings.Split(string(content), "\n")

	doc := &Document{}

	i := 0

	// Skip leading blanks and comments
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			i++
			continue
		}
		break
	}

	// Title line: first content line, with an optional label prefix
	if i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(trimmed, "Scenario:") {
			doc.Title = titleText(trimmed)
			i++
		}
	}

	var current *Scenario
	for ; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])

		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "Scenario:") {
			doc.Scenarios = append(doc.Scenarios, Scenario{
				Name: strings.TrimSpace(strings.TrimPrefix(trimmed, "Scenario:")),
			})
			current = &doc.Scenarios[len(doc.Scenarios)-1]
			continue
		}

		if current == nil {
			// Content before the first scenario block is description text
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			current.Steps = append(current.Steps, Step{
				Keyword: KeywordComment,
				Text:    trimmed,
				Raw:     trimmed,
				Line:    i + 1,
			})
			continue
		}

		if kw, rest, ok := splitKeyword(trimmed); ok {
			current.Steps = append(current.Steps, Step{
				Keyword: kw,
				Text:    rest,
				Raw:     trimmed,
				Line:    i + 1,
			})
			continue
		}

		// Anything else is free-form description; steps never span lines
	}

	return doc
}

// titleText strips a recognized label from the title line. Both Feature: and
// Story: occur in the wild, depending on which template authored the document.
func titleText(trimmed string) string {
	for _, label := range []string{"Feature:", "Story:"} {
		if strings.HasPrefix(trimmed, label) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, label))
		}
	}
	return trimmed
}

// splitKeyword splits a step line into its leading keyword and the remaining
// text. A keyword only counts when it is the whole first word.
func splitKeyword(trimmed string) (Keyword, string, bool) {
	for _, kw := range StepKeywords {
		word := string(kw)
		if trimmed == word {
			return kw, "", true
		}
		if strings.HasPrefix(trimmed, word+" ") || strings.HasPrefix(trimmed, word+"\t") {
			return kw, strings.TrimSpace(trimmed[len(word):]), true
		}
	}
	return "", "", false
}
