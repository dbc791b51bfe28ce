package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOntology = `# Common Core sample
@base <http://www.ontologyrepository.com/CommonCoreOntologies/Mid/AgentOntology> .
@prefix cco: <http://www.ontologyrepository.com/CommonCoreOntologies/> .
@prefix owl: <http://www.w3.org/2002/07/owl#> .

###  http://www.ontologyrepository.com/CommonCoreOntologies/agent_in
cco:agent_in rdf:type owl:ObjectProperty ;
rdfs:subClassOf obo:BFO_0000015 ;
rdfs:label "agent in"@en .

cco:AcademicDegree rdf:type owl:Class ;
cco:definition "A Diploma that is granted upon completion."@en ;
rdfs:label "Academic Degree"@en .
`

func TestLoadSampleOntology(t *testing.T) {
	doc, stats, err := New(Options{}).Load(strings.NewReader(sampleOntology))
	require.NoError(t, err)

	require.Len(t, doc.Headers, 3)
	assert.True(t, doc.Headers[0].IsBase)
	assert.Equal(t, []string{"cco", "owl"}, doc.PrefixNames())

	require.Len(t, doc.Body, 2)
	assert.Equal(t, "cco:agent_in", doc.Body[0].Subject)
	assert.Equal(t, "cco:AcademicDegree", doc.Body[1].Subject)

	assert.False(t, stats.Truncated)
	assert.Zero(t, stats.Skipped)
}

func TestLoadTruncatedDocument(t *testing.T) {
	input := strings.Join([]string{
		"@prefix cco: <http://example.org/cco#> .",
		"cco:Foo rdf:type owl:Class ;",
	}, "\n")

	doc, stats, err := New(Options{}).Load(strings.NewReader(input))
	require.NoError(t, err)

	assert.Empty(t, doc.Body)
	assert.True(t, stats.Truncated)
	assert.Equal(t, 1, stats.Dropped)
}

func TestLoadPolicySkip(t *testing.T) {
	input := strings.Join([]string{
		"@prefix cco: <http://example.org/cco#> .",
		"definitely not turtle",
		`cco:Foo rdfs:label "Foo" .`,
	}, "\n")

	doc, stats, err := New(Options{Policy: PolicySkip}).Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Skipped)
	assert.Len(t, doc.Body, 1)
}

func TestLoadPolicyFail(t *testing.T) {
	input := strings.Join([]string{
		"@prefix cco: <http://example.org/cco#> .",
		"definitely not turtle",
		`cco:Foo rdfs:label "Foo" .`,
	}, "\n")

	_, _, err := New(Options{Policy: PolicyFail}).Load(strings.NewReader(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotTurtle)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadProgressCallback(t *testing.T) {
	var calls []int
	opts := Options{
		Progress:      func(lines int) { calls = append(calls, lines) },
		ProgressEvery: 2,
	}

	input := strings.Repeat("# comment\n", 5)
	_, _, err := New(opts).Load(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []int{2, 4, 5}, calls)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.ttl")
	require.NoError(t, os.WriteFile(path, []byte(sampleOntology), 0o644))

	doc, _, err := New(Options{}).LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, doc.Body, 2)
}

func TestLoadFileMissing(t *testing.T) {
	_, _, err := New(Options{}).LoadFile(filepath.Join(t.TempDir(), "absent.ttl"))
	assert.Error(t, err)
}
