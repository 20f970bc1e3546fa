// Package api define types and interfaces common to the ordered
// indexes implemented by this repository.
package api

import "io"

// KeyCallb callback while walking an index in sort order. Return false
// to stop the walk.
type KeyCallb func(key interface{}) bool

// IndexMeta interface to access index properties.
type IndexMeta interface {
	// ID return index id. Typically, it is human readable and unique.
	ID() string

	// Count return the number of keys indexed.
	Count() int64

	// Isactive return false if index is destroyed.
	Isactive() bool

	// Stats return a map of index statistics.
	Stats() (map[string]interface{}, error)

	// Fullstats return a map of index statistics including the ones
	// that require a full walk of the index.
	Fullstats() (map[string]interface{}, error)

	// Validate the index, walk the entire tree and check its
	// structural invariants.
	Validate() error

	// Log current statistics, if humanize is true, byte figures are
	// converted to human readable form.
	Log(humanize bool)
}

// IndexReader interface for read-only access into an index.
type IndexReader interface {
	// Has return true if key is indexed.
	Has(key interface{}) bool

	// Min return the smallest key in the index.
	Min() (key interface{}, ok bool)

	// Max return the largest key in the index.
	Max() (key interface{}, ok bool)

	// Walk keys in sort order.
	Walk(callb KeyCallb)

	// Dump human readable form of the index into w.
	Dump(w io.Writer) error
}

// IndexWriter interface for mutating an index.
type IndexWriter interface {
	// Insert key into the index.
	Insert(key interface{}) error

	// Delete key from the index.
	Delete(key interface{}) error

	// DeleteMin remove and return the smallest key.
	DeleteMin() (key interface{}, err error)

	// DeleteMax remove and return the largest key.
	DeleteMax() (key interface{}, err error)
}

// Index interface for ordered sets over application owned keys.
type Index interface {
	IndexMeta
	IndexReader
	IndexWriter

	// Destroy the index, release all nodes. Keys are owned by the
	// application and left untouched.
	Destroy() error
}
