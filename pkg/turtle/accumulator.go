package turtle

import "strings"

// Stats reports what the accumulator skipped or discarded while building a
// document. Nothing in the accumulator is fatal; callers decide whether
// these counts void the load.
type Stats struct {
	// Lines is the number of physical lines consumed.
	Lines int `json:"lines"`

	// Skipped counts lines the classifier could not recognize.
	Skipped int `json:"skipped"`

	// Malformed counts prefix/base declarations recorded with missing
	// fields because their namespace or IRI could not be extracted.
	Malformed int `json:"malformed"`

	// ExtraBases counts @base declarations beyond the first.
	ExtraBases int `json:"extra_bases"`

	// Dropped counts statements discarded because the input ended while
	// they were still open.
	Dropped int `json:"dropped"`

	// Truncated is set when the input ended mid-statement.
	Truncated bool `json:"truncated"`
}

// Accumulator folds a stream of classified lines into a Document. The only
// state carried between lines is the statement currently being assembled,
// so independent documents can be parsed concurrently by independent
// accumulators.
type Accumulator struct {
	doc      Document
	open     *Statement
	baseSeen bool
	stats    Stats
}

// NewAccumulator returns an accumulator with an empty document.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Feed folds one classified line into the document. It never fails: lines
// the classifier rejected are counted and ignored.
func (a *Accumulator) Feed(c Classification, line string) {
	a.stats.Lines++
	line = TrimTailComment(strings.TrimRight(line, " \t"))
	trimmed := strings.TrimSpace(line)

	switch c.Kind {
	case KindComment, KindWhitespace, KindTerminator:
		// carried state is untouched across these lines

	case KindNotATurtle:
		a.stats.Skipped++

	case KindBasePrefix:
		if c.Malformed {
			a.stats.Malformed++
		}
		if a.baseSeen {
			a.stats.ExtraBases++
			return
		}
		a.baseSeen = true
		a.doc.Headers = append(a.doc.Headers, HeaderItem{
			IsBase:  true,
			IRI:     c.IRI,
			RawLine: trimmed,
		})

	case KindNormPrefix:
		if c.Malformed {
			a.stats.Malformed++
		}
		a.doc.Headers = append(a.doc.Headers, HeaderItem{
			Namespace:        c.Namespace,
			IsEmptyNamespace: c.EmptyNamespace,
			RawLine:          trimmed,
		})

	case KindPartOfPredicateListWithSubject:
		// A fresh subject implicitly closes whatever came before it.
		a.push()
		tokens := strings.Fields(trimmed)
		a.open = &Statement{Subject: tokens[0]}
		if rest := trimPart(tokens[1:]); len(rest) > 0 {
			a.appendPredicate(trimmed, rest)
		}

	case KindPartOfPredicateList, KindPartOfObjectListWithPredicate:
		if a.open == nil {
			a.open = &Statement{}
		}
		if rest := trimPart(strings.Fields(trimmed)); len(rest) > 0 {
			a.appendPredicate(trimmed, rest)
		}

	case KindPartOfObjectList, KindPartOfObjectListAsLiteral:
		rest := trimPart(strings.Fields(trimmed))
		a.appendObject(newObject(strings.Join(rest, " ")))

	case KindPartOfCollectionList:
		// Full blank-node collection parsing is out of scope; the fragment
		// is retained verbatim for later reprocessing.
		a.appendObject(Object{RawText: trimmed})

	case KindStatementWithTerminator:
		rest := trimPart(strings.Fields(trimmed))
		switch {
		case a.open != nil:
			if len(rest) > 0 {
				if looksLikePredicate(rest[0]) {
					a.appendPredicate(trimmed, rest)
				} else {
					a.appendObject(newObject(strings.Join(rest, " ")))
				}
			}
		case len(rest) > 2 && strings.Count(rest[1], ":") == 1:
			// A complete single-line triple: subject, predicate, objects.
			a.open = &Statement{Subject: rest[0]}
			a.appendPredicate(trimmed, rest[1:])
		case len(rest) > 0:
			// No subject in sight; keep the predicate/object pair on an
			// anonymous statement rather than lose it.
			a.open = &Statement{}
			a.appendPredicate(trimmed, rest)
		}
		a.push()
	}
}

// Finish hands over the document. An unfinished statement is discarded and
// surfaced through the stats so truncated input is never silent.
func (a *Accumulator) Finish() (*Document, Stats) {
	if a.open != nil {
		a.open = nil
		a.stats.Dropped++
		a.stats.Truncated = true
	}
	doc := a.doc
	return &doc, a.stats
}

// push moves the open statement, if any, into the document body.
func (a *Accumulator) push() {
	if a.open == nil {
		return
	}
	a.doc.Body = append(a.doc.Body, *a.open)
	a.open = nil
}

// appendPredicate appends a predicate parsed from tokens[0] with the
// remaining tokens as its first object, if present.
func (a *Accumulator) appendPredicate(raw string, tokens []string) {
	p := newPredicate(raw, tokens[0])
	if len(tokens) > 1 {
		p.Objects = append(p.Objects, newObject(strings.Join(tokens[1:], " ")))
	}
	a.open.Predicates = append(a.open.Predicates, p)
}

// appendObject appends an object to the most recently opened predicate,
// manufacturing a carrier when a continuation arrives with no predicate in
// progress.
func (a *Accumulator) appendObject(o Object) {
	if a.open == nil {
		a.open = &Statement{}
	}
	if len(a.open.Predicates) == 0 {
		a.open.Predicates = append(a.open.Predicates, Predicate{})
	}
	last := &a.open.Predicates[len(a.open.Predicates)-1]
	last.Objects = append(last.Objects, o)
}

// looksLikePredicate reports whether a token can open a predicate: an
// angle-bracketed IRI or a prefixed name, never a quoted literal.
func looksLikePredicate(token string) bool {
	if strings.HasPrefix(token, "\"") {
		return false
	}
	return strings.HasPrefix(token, "<") || strings.Count(token, ":") == 1
}

// trimPart drops the trailing ".", ";" or "," separator token.
func trimPart(tokens []string) []string {
	if n := len(tokens); n > 0 {
		switch tokens[n-1] {
		case ".", ";", ",":
			return tokens[:n-1]
		}
	}
	return tokens
}

func newPredicate(raw, token string) Predicate {
	p := Predicate{RawText: raw}
	switch {
	case strings.HasPrefix(token, "<") && strings.HasSuffix(token, ">"):
		p.IsIRI = true
		p.Value = strings.TrimSuffix(strings.TrimPrefix(token, "<"), ">")
	case strings.Count(token, ":") == 1:
		parts := strings.SplitN(token, ":", 2)
		p.Namespace = parts[0]
		p.LocalName = parts[1]
	default:
		p.Value = token
	}
	return p
}

func newObject(raw string) Object {
	o := Object{RawText: raw}
	switch {
	case strings.HasPrefix(raw, "<") && strings.HasSuffix(raw, ">"):
		o.IsIRI = true
		o.IRIText = strings.TrimSuffix(strings.TrimPrefix(raw, "<"), ">")
	case !strings.HasPrefix(raw, "\"") && !strings.Contains(raw, " ") && strings.Count(raw, ":") == 1:
		parts := strings.SplitN(raw, ":", 2)
		o.Namespace = parts[0]
		o.LocalName = parts[1]
	default:
		o.IsLiteral = true
		o.LiteralText = raw
	}
	return o
}
