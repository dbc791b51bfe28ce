package turtle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyKinds(t *testing.T) {
	tests := []struct {
		name string
		line string
		want StatementKind
	}{
		{"empty", "", KindWhitespace},
		{"blank", "        ", KindWhitespace},
		{"hash only", "#", KindComment},
		{"hash banner", "#################################################################", KindComment},
		{"section comment", "#    Object Properties", KindComment},
		{"iri comment", "###  http://www.ontologyrepository.com/CommonCoreOntologies/agent_in", KindComment},
		{"lone terminator", ".", KindTerminator},
		{"indented terminator", "    .", KindTerminator},
		{"prefix", "@prefix cco: <http://example.org/cco#> .", KindNormPrefix},
		{"default prefix", "@prefix : <http://www.ontologyrepository.com/CommonCoreOntologies/Mid/AgentOntology#> .", KindNormPrefix},
		{"base", "@base <http://www.ontologyrepository.com/CommonCoreOntologies/Mid/AgentOntology> .", KindBasePrefix},
		{"base with tail comment", "@base <http://www.ontologyrepository.com/CommonCoreOntologies/Mid/AgentOntology> . # a comment at the tail of statement", KindBasePrefix},
		{"full statement", `rdfs:label "Armored Vehicle"@en .`, KindStatementWithTerminator},
		{"iri object statement", "umls:hasSTY <http://purl.bioontology.org/ontology/STY/T047> .", KindStatementWithTerminator},
		{"subject opens predicate list", "cco:process_precedes rdf:type owl:ObjectProperty ;", KindPartOfPredicateListWithSubject},
		{"predicate continuation", "rdfs:subClassOf obo:BFO_0000015 ;", KindPartOfPredicateList},
		{"predicate with iri object", "rdfs:subClassOf <http://purl.bioontology.org/ontology/AIR/U000097> ;", KindPartOfPredicateList},
		{"literal predicate line", `cco:definition "A Process Profile that is the rate of change of the Velocity of an object."@en ;`, KindPartOfPredicateList},
		{"predicate opens object list", "obo:RO_0040042 obo:BFO_0000002 ,", KindPartOfObjectListWithPredicate},
		{"object continuation", "obo:BFO_0000004 ,", KindPartOfObjectList},
		{"literal object comma", `"a literal"@en ,`, KindPartOfObjectListAsLiteral},
		{"literal object semicolon", `"my stomach has part my stomach cavity"@en ;`, KindPartOfObjectListAsLiteral},
		{"collection tail", "owl:someValuesFrom cco:Velocity ] ;", KindPartOfCollectionList},
		{"collection open", "[ rdf:type owl:Restriction ;", KindPartOfCollectionList},
		{"glued period", "this is a.", KindNotATurtle},
		{"bare iri", "<http://purl.bioontology.org/ontology/UATC/>", KindNotATurtle},
		{"separated period", "foo.bar .", KindStatementWithTerminator},
		{"glued period token", "foo.bar.", KindNotATurtle},
		{"single char", "x", KindNotATurtle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.line).Kind, "line: %q", tt.line)
		})
	}
}

func TestClassifyPrefixExtraction(t *testing.T) {
	c := Classify("@prefix cco: <http://example.org/cco#> .")
	assert.Equal(t, KindNormPrefix, c.Kind)
	assert.Equal(t, "cco", c.Namespace)
	assert.False(t, c.EmptyNamespace)
	assert.False(t, c.Malformed)

	c = Classify("@prefix : <http://example.org/#> .")
	assert.Equal(t, KindNormPrefix, c.Kind)
	assert.Equal(t, "", c.Namespace)
	assert.True(t, c.EmptyNamespace)

	// Missing closing "." still matches the tag but carries no namespace.
	c = Classify("@prefix cco: <http://example.org/cco#>")
	assert.Equal(t, KindNormPrefix, c.Kind)
	assert.True(t, c.Malformed)
	assert.Empty(t, c.Namespace)
}

func TestClassifyBaseExtraction(t *testing.T) {
	c := Classify("@base <http://example.org/> .")
	assert.Equal(t, KindBasePrefix, c.Kind)
	assert.Equal(t, "http://example.org/", c.IRI)
	assert.False(t, c.Malformed)

	// Missing angle brackets is recorded, not rejected.
	c = Classify("@base http://example.org/ .")
	assert.Equal(t, KindBasePrefix, c.Kind)
	assert.True(t, c.Malformed)
	assert.Empty(t, c.IRI)
}

func TestTrimTailComment(t *testing.T) {
	base := "@base <http://www.ontologyrepository.com/CommonCoreOntologies/Mid/AgentOntology> ."

	assert.Equal(t, base, TrimTailComment(base+" # a comment at the tail of statement"))
	assert.Equal(t, base, TrimTailComment(base+" ## a comment at the tail of statement"))

	// No qualifying comment: unchanged.
	assert.Equal(t, base, TrimTailComment(base))

	// "#" inside a fragment IRI is not a comment.
	frag := "@base <http://www.ontologyrepository.com/CommonCoreOntologies/Mid/AgentOntology#> ."
	assert.Equal(t, frag, TrimTailComment(frag))

	// A whole-line comment is not this function's business.
	whole := "# this is a comment"
	assert.Equal(t, whole, TrimTailComment(whole))
}

func TestTrimTailCommentIdempotent(t *testing.T) {
	lines := []string{
		"@prefix cco: <http://example.org/cco#> . # trailing",
		`rdfs:label "Armored Vehicle"@en .`,
		"",
	}
	for _, line := range lines {
		once := TrimTailComment(line)
		assert.Equal(t, once, TrimTailComment(once), "line: %q", line)
	}
}
