package workload

import (
	"errors"
	"io"
)

// Store defines the interface the key-value workloads measure against.
// This allows the same set/get workloads to run over different storage
// engines with consistent semantics.
type Store interface {
	// Set stores a key-value pair in the store
	Set(key, value []byte) error

	// Get retrieves a value for the given key
	// Returns the value, a closer (if needed), and error
	// Returns ErrKeyNotFound if key doesn't exist
	Get(key []byte) ([]byte, io.Closer, error)

	// Flush ensures all pending writes are persisted to storage
	Flush() error

	// Close properly shuts down the store and releases resources
	Close() error
}

// MDBXOptions holds MDBX-specific configuration
type MDBXOptions struct {
	MapSize    int64 // maximum map size in bytes (-1 for default)
	MaxDBs     int   // maximum number of databases (default: 2)
	MaxReaders int   // maximum number of readers (default: 128)

	// Performance settings
	NoSync      bool // don't fsync after commit
	NoMetaSync  bool // don't fsync metapage after commit
	WriteMap    bool // use writeable memory map
	NoReadahead bool // disable readahead
}

// Common store errors
var (
	ErrKeyNotFound = errors.New("key not found")
	ErrStoreClosed = errors.New("store is closed")
)

// openStore creates the store backing a key-value workload, chosen by
// the workload type's engine.
func openStore(cfg Config) (Store, error) {
	switch cfg.Type {
	case TypePebbleSet, TypePebbleGet:
		return openPebbleStore(cfg)
	case TypeMDBXSet, TypeMDBXGet:
		return openMDBXStore(cfg)
	default:
		return nil, ErrUnknownWorkload
	}
}

// IsKeyNotFound abstracts away backend-specific error types.
func IsKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}
