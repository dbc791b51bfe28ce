package encoding

import (
	"testing"

	"github.com/semanticowl/semowl/pkg/turtle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *turtle.Document {
	return &turtle.Document{
		Headers: []turtle.HeaderItem{
			{IsBase: true, IRI: "http://example.org/agent", RawLine: "@base <http://example.org/agent> ."},
			{Namespace: "cco", RawLine: "@prefix cco: <http://example.org/cco#> ."},
			{IsEmptyNamespace: true, RawLine: "@prefix : <http://example.org/#> ."},
		},
		Body: []turtle.Statement{
			{
				Subject: "cco:Foo",
				Predicates: []turtle.Predicate{
					{
						RawText:   "rdf:type owl:Class ;",
						Namespace: "rdf",
						LocalName: "type",
						Objects: []turtle.Object{
							{RawText: "owl:Class", Namespace: "owl", LocalName: "Class"},
						},
					},
					{
						RawText:   `rdfs:label "Foo"@en .`,
						Namespace: "rdfs",
						LocalName: "label",
						Objects: []turtle.Object{
							{RawText: `"Foo"@en`, IsLiteral: true, LiteralText: `"Foo"@en`},
							{RawText: "<http://example.org/foo>", IsIRI: true, IRIText: "http://example.org/foo"},
						},
					},
				},
			},
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc := sampleDocument()

	encoded := EncodeDocument(doc)
	decoded, err := DecodeDocument(encoded)
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)
}

func TestEncodeIsCanonical(t *testing.T) {
	a := EncodeDocument(sampleDocument())
	b := EncodeDocument(sampleDocument())
	assert.Equal(t, a, b)
	assert.Equal(t, FingerprintHex(a), FingerprintHex(b))
}

func TestFingerprintDistinguishesContent(t *testing.T) {
	doc := sampleDocument()
	a := FingerprintHex(EncodeDocument(doc))

	doc.Body[0].Subject = "cco:Bar"
	b := FingerprintHex(EncodeDocument(doc))

	assert.NotEqual(t, a, b)
	assert.Len(t, a, 32)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := DecodeDocument([]byte{})
	assert.Error(t, err)

	_, err = DecodeDocument([]byte("not a document"))
	assert.Error(t, err)

	_, err = DecodeDocument([]byte{magic, 99})
	assert.Error(t, err)
}

func TestDecodeTruncatedInput(t *testing.T) {
	encoded := EncodeDocument(sampleDocument())
	_, err := DecodeDocument(encoded[:len(encoded)/2])
	assert.Error(t, err)
}
