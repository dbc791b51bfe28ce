package encoding

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/semanticowl/semowl/pkg/turtle"
)

// DecodeDocument parses the binary form produced by EncodeDocument back
// into a document.
func DecodeDocument(data []byte) (*turtle.Document, error) {
	r := bytes.NewReader(data)

	var head [2]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, fmt.Errorf("truncated document header: %w", err)
	}
	if head[0] != magic {
		return nil, fmt.Errorf("not an encoded document (leading byte 0x%02x)", head[0])
	}
	if head[1] != formatVersion {
		return nil, fmt.Errorf("unsupported document format version %d", head[1])
	}

	doc := &turtle.Document{}

	nHeaders, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("reading header count: %w", err)
	}
	for i := uint64(0); i < nHeaders; i++ {
		flags, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("reading header flags: %w", err)
		}
		h := turtle.HeaderItem{
			IsBase:           flags&flagIsBase != 0,
			IsEmptyNamespace: flags&flagEmptyNS != 0,
		}
		if h.Namespace, err = readString(r); err != nil {
			return nil, fmt.Errorf("reading header namespace: %w", err)
		}
		if h.IRI, err = readString(r); err != nil {
			return nil, fmt.Errorf("reading header iri: %w", err)
		}
		if h.RawLine, err = readString(r); err != nil {
			return nil, fmt.Errorf("reading header raw line: %w", err)
		}
		doc.Headers = append(doc.Headers, h)
	}

	nBody, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("reading statement count: %w", err)
	}
	for i := uint64(0); i < nBody; i++ {
		s, err := readStatement(r)
		if err != nil {
			return nil, err
		}
		doc.Body = append(doc.Body, s)
	}

	return doc, nil
}

func readStatement(r *bytes.Reader) (turtle.Statement, error) {
	var s turtle.Statement
	var err error

	if s.Subject, err = readString(r); err != nil {
		return s, fmt.Errorf("reading subject: %w", err)
	}
	nPreds, err := binary.ReadUvarint(r)
	if err != nil {
		return s, fmt.Errorf("reading predicate count: %w", err)
	}
	for i := uint64(0); i < nPreds; i++ {
		p, err := readPredicate(r)
		if err != nil {
			return s, err
		}
		s.Predicates = append(s.Predicates, p)
	}
	return s, nil
}

func readPredicate(r *bytes.Reader) (turtle.Predicate, error) {
	var p turtle.Predicate

	flags, err := r.ReadByte()
	if err != nil {
		return p, fmt.Errorf("reading predicate flags: %w", err)
	}
	p.IsIRI = flags&flagIsIRI != 0

	if p.RawText, err = readString(r); err != nil {
		return p, fmt.Errorf("reading predicate raw text: %w", err)
	}
	if p.Value, err = readString(r); err != nil {
		return p, fmt.Errorf("reading predicate value: %w", err)
	}
	if p.Namespace, err = readString(r); err != nil {
		return p, fmt.Errorf("reading predicate namespace: %w", err)
	}
	if p.LocalName, err = readString(r); err != nil {
		return p, fmt.Errorf("reading predicate local name: %w", err)
	}

	nObjs, err := binary.ReadUvarint(r)
	if err != nil {
		return p, fmt.Errorf("reading object count: %w", err)
	}
	for i := uint64(0); i < nObjs; i++ {
		o, err := readObject(r)
		if err != nil {
			return p, err
		}
		p.Objects = append(p.Objects, o)
	}
	return p, nil
}

func readObject(r *bytes.Reader) (turtle.Object, error) {
	var o turtle.Object

	flags, err := r.ReadByte()
	if err != nil {
		return o, fmt.Errorf("reading object flags: %w", err)
	}
	o.IsIRI = flags&flagIsIRI != 0
	o.IsLiteral = flags&flagLiteral != 0

	if o.RawText, err = readString(r); err != nil {
		return o, fmt.Errorf("reading object raw text: %w", err)
	}
	if o.IRIText, err = readString(r); err != nil {
		return o, fmt.Errorf("reading object iri text: %w", err)
	}
	if o.LiteralText, err = readString(r); err != nil {
		return o, fmt.Errorf("reading object literal text: %w", err)
	}
	if o.Namespace, err = readString(r); err != nil {
		return o, fmt.Errorf("reading object namespace: %w", err)
	}
	if o.LocalName, err = readString(r); err != nil {
		return o, fmt.Errorf("reading object local name: %w", err)
	}
	return o, nil
}

func readString(r *bytes.Reader) (string, error) {
	n, err := binary.ReadUvarint(r)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	if n > uint64(r.Len()) {
		return "", fmt.Errorf("string length %d exceeds remaining %d bytes", n, r.Len())
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
