package turtle

import "strings"

// Classification is the result of classifying one physical line: the kind
// plus any data extracted from declaration lines. Carrying the extracted
// fields with the tag keeps the tag and the extraction from disagreeing.
type Classification struct {
	Kind StatementKind

	// Namespace is the prefix name for KindNormPrefix.
	Namespace string

	// EmptyNamespace is true for the anonymous default prefix "@prefix : ...".
	EmptyNamespace bool

	// IRI is the base IRI (angle brackets stripped) for KindBasePrefix.
	IRI string

	// Malformed is set when the line matched a declaration tag but its
	// namespace or IRI could not be extracted.
	Malformed bool
}

// Classify maps one raw line to exactly one StatementKind. It is total:
// malformed input falls through to KindNotATurtle, never an error. The
// line is comment-trimmed and right-trimmed before any other test so a
// trailing annotation can never be mistaken for syntax.
func Classify(line string) Classification {
	line = strings.TrimRight(line, " \t")
	line = TrimTailComment(line)
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == "":
		return Classification{Kind: KindWhitespace}
	case strings.HasPrefix(trimmed, "#"):
		return Classification{Kind: KindComment}
	case trimmed == ".":
		return Classification{Kind: KindTerminator}
	}

	if strings.HasPrefix(trimmed, "@prefix") {
		ns, empty, ok := prefixNamespace(trimmed)
		return Classification{
			Kind:           KindNormPrefix,
			Namespace:      ns,
			EmptyNamespace: empty,
			Malformed:      !ok,
		}
	}

	if strings.HasPrefix(trimmed, "@base") {
		iri, ok := baseIRI(trimmed)
		return Classification{Kind: KindBasePrefix, IRI: iri, Malformed: !ok}
	}

	if hasStatementEnding(line) {
		return Classification{Kind: KindStatementWithTerminator}
	}

	if hasPartEnding(line) {
		// Collection fragments also end in "] ;", so they are tested
		// before the plain predicate/object continuations.
		if isCollectionFragment(trimmed) {
			return Classification{Kind: KindPartOfCollectionList}
		}

		switch {
		case strings.HasSuffix(trimmed, ";"):
			if isLiteralLine(trimmed) {
				return Classification{Kind: KindPartOfObjectListAsLiteral}
			}
			if hasSubjectToken(trimmed) {
				return Classification{Kind: KindPartOfPredicateListWithSubject}
			}
			return Classification{Kind: KindPartOfPredicateList}

		case strings.HasSuffix(trimmed, ","):
			if isLiteralLine(trimmed) {
				return Classification{Kind: KindPartOfObjectListAsLiteral}
			}
			if hasPredicateToken(trimmed) {
				return Classification{Kind: KindPartOfObjectListWithPredicate}
			}
			return Classification{Kind: KindPartOfObjectList}
		}
	}

	if isCollectionFragment(trimmed) {
		return Classification{Kind: KindPartOfCollectionList}
	}

	return Classification{Kind: KindNotATurtle}
}

// TrimTailComment strips a trailing "# ..." annotation from a line. A "#"
// at index 0 is a whole-line comment and is left alone, and the "#" must
// be followed by a space or another "#" so fragment IRIs such as
// <http://example.org/x#> survive. Trimming an already comment-free line
// is a no-op.
func TrimTailComment(line string) string {
	if strings.HasPrefix(line, "#") {
		return line
	}
	runes := []rune(line)
	for i := 1; i+1 < len(runes); i++ {
		if runes[i] != '#' {
			continue
		}
		if runes[i+1] == ' ' || runes[i+1] == '#' {
			return strings.TrimRight(string(runes[:i]), " \t")
		}
	}
	return line
}

// prefixNamespace extracts the prefix name from an @prefix declaration and
// reports whether it is the anonymous default prefix. ok is false when the
// declaration lacks its closing ".".
func prefixNamespace(line string) (ns string, empty, ok bool) {
	rest, found := strings.CutPrefix(line, "@prefix")
	if !found {
		return "", false, false
	}
	rest, found = strings.CutSuffix(rest, ".")
	if !found {
		return "", false, false
	}
	rest = strings.TrimSpace(rest)
	ns = strings.SplitN(rest, ":", 2)[0]
	return ns, ns == "", true
}

// baseIRI extracts the angle-bracketed IRI from an @base declaration,
// brackets stripped. ok is false when the brackets or the closing "."
// are missing.
func baseIRI(line string) (string, bool) {
	rest, found := strings.CutPrefix(line, "@base")
	if !found {
		return "", false
	}
	rest, found = strings.CutSuffix(rest, ".")
	if !found {
		return "", false
	}
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, "<") || !strings.HasSuffix(rest, ">") {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(rest, "<"), ">"), true
}

// hasSubjectToken reports whether a ";"-terminated line opens a new
// subject: token 1 must be a prefixed predicate (exactly one ":") and the
// line must carry more than three tokens, so that a bare
// "predicate object ;" continuation is not mistaken for a subject line.
func hasSubjectToken(line string) bool {
	tokens := strings.Split(line, " ")
	if len(tokens) <= 3 {
		return false
	}
	return strings.Count(tokens[1], ":") == 1
}

// hasPredicateToken reports whether a ","-terminated line carries its own
// predicate: token 0 is a prefixed name and token 1 is not the separator
// itself.
func hasPredicateToken(line string) bool {
	tokens := strings.Split(line, " ")
	if len(tokens) < 2 {
		return false
	}
	return strings.Count(tokens[0], ":") == 1 && tokens[1] != ","
}

// isLiteralLine reports whether a continuation line is itself a quoted
// literal: its first token carries no ":" and the line ends in "," or ";".
func isLiteralLine(line string) bool {
	tokens := strings.Split(line, " ")
	if !strings.HasSuffix(line, ",") && !strings.HasSuffix(line, ";") {
		return false
	}
	return !strings.Contains(tokens[0], ":")
}

// isCollectionFragment reports whether the line belongs to a "[ ... ]"
// blank-node collection: either bracket-delimited, opened with "[", or
// closed with a trailing "] ;".
func isCollectionFragment(line string) bool {
	if strings.HasPrefix(line, "[") && (strings.HasSuffix(line, ";") || strings.HasSuffix(line, "]")) {
		return true
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return false
	}
	return fields[len(fields)-1] == ";" && fields[len(fields)-2] == "]"
}
