package turtle

// StandardPrefix is one of the prefix declarations every OWL serializer
// emits at the top of a document.
type StandardPrefix struct {
	Name string
	IRI  string
}

// StandardPrefixes lists the well-known RDF/OWL prefixes in the order
// serializers conventionally declare them.
var StandardPrefixes = []StandardPrefix{
	{Name: "rdf", IRI: "http://www.w3.org/1999/02/22-rdf-syntax-ns#"},
	{Name: "rdfs", IRI: "http://www.w3.org/2000/01/rdf-schema#"},
	{Name: "xsd", IRI: "http://www.w3.org/2001/XMLSchema#"},
	{Name: "owl", IRI: "http://www.w3.org/2002/07/owl#"},
}

// LookupStandardPrefix returns the well-known IRI for a prefix name.
func LookupStandardPrefix(name string) (StandardPrefix, bool) {
	for _, p := range StandardPrefixes {
		if p.Name == name {
			return p, true
		}
	}
	return StandardPrefix{}, false
}
