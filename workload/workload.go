// Package workload provides the built-in operations the microbench CLI
// can measure: timer-bound and CPU-bound baselines plus single-key reads
// and writes against embedded key-value stores.
package workload

import (
	"errors"
	"fmt"
	"time"
)

// Type identifies a built-in workload.
type Type string

const (
	TypeSleep     Type = "sleep"
	TypeHash      Type = "hash"
	TypePebbleSet Type = "pebble-set"
	TypePebbleGet Type = "pebble-get"
	TypeMDBXSet   Type = "mdbx-set"
	TypeMDBXGet   Type = "mdbx-get"
)

var ErrUnknownWorkload = errors.New("unknown workload type")

// Workload is one operation under measurement. Setup prepares whatever
// the operation needs (opening a store, preloading keys); Action returns
// the zero-argument callable handed to the benchmark driver; Before
// returns a per-iteration preparation hook, or nil when the workload
// needs none. Failures inside the measured callable panic, since the
// driver propagates panics and a store error mid-measurement leaves
// nothing worth summarizing.
type Workload interface {
	Name() string
	Description() string
	Setup() error
	Action() func()
	Before() func()
	Close() error
}

// Config holds the workload parameters passed from the CLI.
type Config struct {
	Type           Type
	SleepFor       time.Duration // sleep: duration of each iteration
	PayloadSize    int           // hash: bytes hashed per iteration
	Path           string        // store-backed: database directory
	KeyCount       int           // get workloads: entries preloaded during Setup
	ValueSize      int           // store-backed: payload bytes per value
	Seed           int64         // RNG seed for deterministic key/value generation
	BlockCacheSize int64         // pebble: bytes, negative means disabled
	MDBX           MDBXOptions
}

// New creates a workload instance based on the configured type.
func New(cfg Config) (Workload, error) {
	switch cfg.Type {
	case TypeSleep:
		return newSleepWorkload(cfg), nil
	case TypeHash:
		return newHashWorkload(cfg), nil
	case TypePebbleSet, TypeMDBXSet:
		return newSetWorkload(cfg), nil
	case TypePebbleGet, TypeMDBXGet:
		return newGetWorkload(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkload, cfg.Type)
	}
}

// Info describes a built-in workload for listings.
type Info struct {
	Type        Type
	Description string
}

// BuiltIn returns every workload the CLI knows about, in display order.
func BuiltIn() []Info {
	return []Info{
		{TypeSleep, "Sleep a fixed duration per iteration (timer-bound baseline)"},
		{TypeHash, "Keccak-256 over a payload buffer (CPU-bound baseline)"},
		{TypePebbleSet, "Write one key-value pair per iteration to a Pebble store"},
		{TypePebbleGet, "Read one preloaded key per iteration from a Pebble store"},
		{TypeMDBXSet, "Write one key-value pair per iteration to an MDBX store"},
		{TypeMDBXGet, "Read one preloaded key per iteration from an MDBX store"},
	}
}
