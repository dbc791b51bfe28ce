package turtle

// Document is the in-memory form of a parsed Turtle document: the prefix
// and base declarations in declaration order, followed by the subject
// statements in document order. It has no cycles or back-references, so it
// serializes field by field.
type Document struct {
	Headers []HeaderItem `json:"headers"`
	Body    []Statement  `json:"body"`
}

// HeaderItem is one @prefix or @base declaration.
// An example of such a header block in a Turtle document:
//
//	@prefix skos: <http://www.w3.org/2004/02/skos/core#> .
//	@prefix owl:  <http://www.w3.org/2002/07/owl#> .
//	@base <http://example.org/> .
type HeaderItem struct {
	// IsBase marks the @base declaration. At most one header carries it.
	IsBase bool `json:"is_base"`

	// IsEmptyNamespace is true for the default ":" prefix.
	IsEmptyNamespace bool `json:"is_empty_namespace"`

	// Namespace is the prefix name (skos, owl, rdfs). Empty for @base.
	Namespace string `json:"namespace,omitempty"`

	// IRI is the declared IRI with the angle brackets stripped. Filled for
	// @base; for @prefix declarations it stays empty until resolved.
	IRI string `json:"iri,omitempty"`

	// RawLine keeps the declaration line for diagnostics.
	RawLine string `json:"raw_line,omitempty"`
}

// Statement is one subject and its predicate list. A typical statement
// spans several physical lines:
//
//	<http://purl.bioontology.org/ontology/UATC/>
//	    a owl:Ontology ;
//	    rdfs:label "ATC" ;
//	    owl:versionInfo "2020ab" .
type Statement struct {
	Subject    string      `json:"subject,omitempty"`
	Predicates []Predicate `json:"predicates"`
}

// Predicate is one predicate and its object list within a statement.
type Predicate struct {
	RawText string `json:"raw_text"`

	// IsIRI is true when the predicate is an angle-bracketed IRI; Value
	// then holds the IRI without brackets.
	IsIRI bool   `json:"is_iri"`
	Value string `json:"value,omitempty"`

	// Namespace and LocalName are set instead when the predicate is a
	// prefixed name such as rdfs:label.
	Namespace string `json:"namespace,omitempty"`
	LocalName string `json:"local_name,omitempty"`

	Objects []Object `json:"objects"`
}

// Object is one object value. Exactly one of IsIRI, IsLiteral or a
// non-empty Namespace holds.
type Object struct {
	RawText     string `json:"raw_text"`
	IsIRI       bool   `json:"is_iri"`
	IRIText     string `json:"iri_text,omitempty"`
	IsLiteral   bool   `json:"is_literal"`
	LiteralText string `json:"literal_text,omitempty"`
	Namespace   string `json:"namespace,omitempty"`
	LocalName   string `json:"local_name,omitempty"`
}

// BaseIRI returns the IRI of the @base declaration, if the document has one.
func (d *Document) BaseIRI() (string, bool) {
	for _, h := range d.Headers {
		if h.IsBase {
			return h.IRI, true
		}
	}
	return "", false
}

// PrefixNames returns the declared prefix names in declaration order. The
// default ":" prefix appears as an empty string.
func (d *Document) PrefixNames() []string {
	var names []string
	for _, h := range d.Headers {
		if !h.IsBase {
			names = append(names, h.Namespace)
		}
	}
	return names
}

// TripleCount returns the number of subject-predicate-object combinations
// the body expands to.
func (d *Document) TripleCount() int {
	n := 0
	for _, s := range d.Body {
		for _, p := range s.Predicates {
			if len(p.Objects) == 0 {
				n++
				continue
			}
			n += len(p.Objects)
		}
	}
	return n
}
