package turtle

// Terminator detection is deliberately strict: terminal punctuation counts
// only when the preceding character is a single space, which is how the
// ontology serializers this package targets emit their output. The rule
// lives here, behind these two predicates, so it can be relaxed without
// touching the classifier's decision tree.

// hasStatementEnding reports whether the line ends a full statement: a
// trailing "." preceded by a space. "foo.bar ." qualifies, "foo.bar."
// does not. Lines shorter than two characters never qualify.
func hasStatementEnding(line string) bool {
	runes := []rune(line)
	if len(runes) < 2 {
		return false
	}
	return runes[len(runes)-1] == '.' && runes[len(runes)-2] == ' '
}

// hasPartEnding reports whether the line ends a predicate or object list
// fragment: a trailing ";" or "," preceded by a space.
func hasPartEnding(line string) bool {
	runes := []rune(line)
	if len(runes) < 2 {
		return false
	}
	last := runes[len(runes)-1]
	if last != ';' && last != ',' {
		return false
	}
	return runes[len(runes)-2] == ' '
}
