package encoding

import (
	"encoding/binary"
	"fmt"

	"github.com/semanticowl/semowl/pkg/turtle"
	"github.com/zeebo/xxh3"
)

const (
	// formatVersion is bumped whenever the binary layout changes.
	formatVersion = 1

	// magic marks the first byte of every encoded document.
	magic = 'S'
)

// Flag bits packed per header, predicate and object record.
const (
	flagIsBase  = 1 << 0
	flagEmptyNS = 1 << 1
	flagIsIRI   = 1 << 0
	flagLiteral = 1 << 1
)

// EncodeDocument serializes a document into the length-prefixed binary form
// stored in the document store. The encoding is canonical: the same
// document always produces the same bytes, so the fingerprint of the
// encoding identifies the content.
func EncodeDocument(doc *turtle.Document) []byte {
	buf := []byte{magic, formatVersion}

	buf = binary.AppendUvarint(buf, uint64(len(doc.Headers)))
	for _, h := range doc.Headers {
		var flags byte
		if h.IsBase {
			flags |= flagIsBase
		}
		if h.IsEmptyNamespace {
			flags |= flagEmptyNS
		}
		buf = append(buf, flags)
		buf = appendString(buf, h.Namespace)
		buf = appendString(buf, h.IRI)
		buf = appendString(buf, h.RawLine)
	}

	buf = binary.AppendUvarint(buf, uint64(len(doc.Body)))
	for _, s := range doc.Body {
		buf = appendString(buf, s.Subject)
		buf = binary.AppendUvarint(buf, uint64(len(s.Predicates)))
		for _, p := range s.Predicates {
			var flags byte
			if p.IsIRI {
				flags |= flagIsIRI
			}
			buf = append(buf, flags)
			buf = appendString(buf, p.RawText)
			buf = appendString(buf, p.Value)
			buf = appendString(buf, p.Namespace)
			buf = appendString(buf, p.LocalName)
			buf = binary.AppendUvarint(buf, uint64(len(p.Objects)))
			for _, o := range p.Objects {
				flags = 0
				if o.IsIRI {
					flags |= flagIsIRI
				}
				if o.IsLiteral {
					flags |= flagLiteral
				}
				buf = append(buf, flags)
				buf = appendString(buf, o.RawText)
				buf = appendString(buf, o.IRIText)
				buf = appendString(buf, o.LiteralText)
				buf = appendString(buf, o.Namespace)
				buf = appendString(buf, o.LocalName)
			}
		}
	}

	return buf
}

// Fingerprint computes the 128-bit xxhash3 content hash of an encoded
// document, big endian, high half first.
func Fingerprint(encoded []byte) [16]byte {
	hash := xxh3.Hash128(encoded)
	var result [16]byte
	binary.BigEndian.PutUint64(result[0:8], hash.Hi)
	binary.BigEndian.PutUint64(result[8:16], hash.Lo)
	return result
}

// FingerprintHex returns the fingerprint of an encoded document as a
// lowercase hex string.
func FingerprintHex(encoded []byte) string {
	fp := Fingerprint(encoded)
	return fmt.Sprintf("%x", fp[:])
}

func appendString(buf []byte, s string) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(s)))
	return append(buf, s...)
}
