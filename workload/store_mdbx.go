package workload

import (
	"fmt"
	"io"
	"os"

	"github.com/erigontech/mdbx-go/mdbx"
)

// mdbxStore implements the Store interface using MDBX (libmdbx). The
// workloads run single-goroutine, so no locking around the environment.
type mdbxStore struct {
	env    *mdbx.Env
	db     mdbx.DBI
	closed bool
}

func openMDBXStore(cfg Config) (Store, error) {
	if err := os.MkdirAll(cfg.Path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	env, err := mdbx.NewEnv(mdbx.Default)
	if err != nil {
		return nil, fmt.Errorf("failed to create MDBX environment: %w", err)
	}

	sizeUpper := -1
	if cfg.MDBX.MapSize > 0 {
		sizeUpper = int(cfg.MDBX.MapSize)
	}
	if err := env.SetGeometry(
		-1,        // size lower bound: use default
		-1,        // size now: use default
		sizeUpper, // size upper bound
		-1,        // growth step: use default
		-1,        // shrink threshold: use default
		-1,        // page size: use default
	); err != nil {
		env.Close()
		return nil, fmt.Errorf("failed to set geometry: %w", err)
	}

	maxDBs := cfg.MDBX.MaxDBs
	if maxDBs == 0 {
		maxDBs = 2
	}
	if err := env.SetOption(mdbx.OptMaxDB, uint64(maxDBs)); err != nil {
		env.Close()
		return nil, fmt.Errorf("failed to set max databases: %w", err)
	}

	maxReaders := cfg.MDBX.MaxReaders
	if maxReaders == 0 {
		maxReaders = 128
	}
	if err := env.SetOption(mdbx.OptMaxReaders, uint64(maxReaders)); err != nil {
		env.Close()
		return nil, fmt.Errorf("failed to set max readers: %w", err)
	}

	flags := uint(mdbx.EnvDefaults)
	if cfg.MDBX.NoSync {
		flags |= mdbx.UtterlyNoSync
	}
	if cfg.MDBX.NoMetaSync {
		flags |= mdbx.NoMetaSync
	}
	if cfg.MDBX.WriteMap {
		flags |= mdbx.WriteMap
	}
	if cfg.MDBX.NoReadahead {
		flags |= mdbx.NoReadahead
	}

	if err := env.Open(cfg.Path, flags, 0644); err != nil {
		env.Close()
		return nil, fmt.Errorf("failed to open MDBX environment: %w", err)
	}

	var db mdbx.DBI
	err = env.Update(func(txn *mdbx.Txn) error {
		var err error
		db, err = txn.OpenRoot(mdbx.Create)
		return err
	})
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &mdbxStore{
		env: env,
		db:  db,
	}, nil
}

func (d *mdbxStore) Set(key, value []byte) error {
	if d.closed {
		return ErrStoreClosed
	}

	err := d.env.Update(func(txn *mdbx.Txn) error {
		return txn.Put(d.db, key, value, 0)
	})
	if err != nil {
		return fmt.Errorf("failed to set key: %w", err)
	}
	return nil
}

func (d *mdbxStore) Get(key []byte) ([]byte, io.Closer, error) {
	if d.closed {
		return nil, nil, ErrStoreClosed
	}

	var value []byte
	err := d.env.View(func(txn *mdbx.Txn) error {
		val, err := txn.Get(d.db, key)
		if err != nil {
			return err
		}
		// Copy the value since it's only valid during the transaction
		value = make([]byte, len(val))
		copy(value, val)
		return nil
	})
	if err != nil {
		if mdbx.IsNotFound(err) {
			return nil, nil, ErrKeyNotFound
		}
		return nil, nil, fmt.Errorf("failed to get key: %w", err)
	}

	// The data was copied, nothing to release after use
	return value, nil, nil
}

func (d *mdbxStore) Flush() error {
	if d.closed {
		return ErrStoreClosed
	}

	if err := d.env.Sync(true, false); err != nil {
		return fmt.Errorf("failed to flush: %w", err)
	}
	return nil
}

func (d *mdbxStore) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true

	// Closing the environment also closes the database
	d.env.Close()
	return nil
}
