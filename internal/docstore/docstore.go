// Package docstore persists parsed Turtle documents in BadgerDB. Each
// document lives under its caller-chosen name; an xxhash3 fingerprint of
// the canonical encoding is kept alongside so unchanged re-loads can be
// detected without decoding.
package docstore

import (
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/semanticowl/semowl/internal/encoding"
	"github.com/semanticowl/semowl/pkg/turtle"
)

// ErrNotFound is returned when no document is stored under a name.
var ErrNotFound = errors.New("document not found")

// table prefixes separate the key spaces within one Badger instance.
type table byte

const (
	tableDocument table = iota
	tableChecksum
)

func key(t table, name string) []byte {
	k := make([]byte, 0, len(name)+1)
	k = append(k, byte(t))
	return append(k, name...)
}

// Store is a Badger-backed document store.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a store at the given path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Badger's default logger is too chatty for a CLI

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening badger db: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens an ephemeral store backed by memory only.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening in-memory badger db: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// PutResult describes the outcome of storing a document.
type PutResult struct {
	Fingerprint string
	Bytes       int

	// Unchanged is true when the stored document already had the same
	// fingerprint and no write was performed.
	Unchanged bool
}

// Put stores a document under a name, replacing any previous version. A
// re-load of identical content is detected by fingerprint and skipped.
func (s *Store) Put(name string, doc *turtle.Document) (PutResult, error) {
	encoded := encoding.EncodeDocument(doc)
	fp := encoding.FingerprintHex(encoded)
	res := PutResult{Fingerprint: fp, Bytes: len(encoded)}

	prev, err := s.checksum(name)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return res, err
	}
	if err == nil && prev == fp {
		res.Unchanged = true
		return res, nil
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key(tableDocument, name), encoded); err != nil {
			return err
		}
		return txn.Set(key(tableChecksum, name), []byte(fp))
	})
	if err != nil {
		return res, fmt.Errorf("storing document %q: %w", name, err)
	}
	return res, nil
}

// Get loads the document stored under a name.
func (s *Store) Get(name string) (*turtle.Document, error) {
	var encoded []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(tableDocument, name))
		if err != nil {
			return err
		}
		encoded, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("loading document %q: %w", name, err)
	}

	doc, err := encoding.DecodeDocument(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding document %q: %w", name, err)
	}
	return doc, nil
}

// Fingerprint returns the stored content fingerprint for a name.
func (s *Store) Fingerprint(name string) (string, error) {
	return s.checksum(name)
}

// Delete removes a document and its checksum. Deleting an absent name is
// not an error.
func (s *Store) Delete(name string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(key(tableDocument, name)); err != nil {
			return err
		}
		return txn.Delete(key(tableChecksum, name))
	})
	if err != nil {
		return fmt.Errorf("deleting document %q: %w", name, err)
	}
	return nil
}

// Entry is one stored document in a listing.
type Entry struct {
	Name        string `json:"name"`
	Fingerprint string `json:"fingerprint"`
}

// List returns the stored documents in key order.
func (s *Store) List() ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte{byte(tableChecksum)}
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			item := it.Item()
			name := string(item.Key()[1:])
			fp, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			entries = append(entries, Entry{Name: name, Fingerprint: string(fp)})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	return entries, nil
}

func (s *Store) checksum(name string) (string, error) {
	var fp string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(tableChecksum, name))
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		fp = string(val)
		return nil
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("reading checksum for %q: %w", name, err)
	}
	return fp, nil
}
