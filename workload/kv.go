package workload

import (
	"fmt"
	"math/rand"
)

// setWorkload writes one key-value pair per iteration. The key and the
// encoded value for the next iteration are prepared in Before, so the
// timed section contains only the store write. The key cursor advances
// every iteration; every write lands on a distinct key.
type setWorkload struct {
	cfg   Config
	store Store
	keys  *keyGenerator
	rng   *rand.Rand

	index uint64
	key   []byte
	value []byte
}

func newSetWorkload(cfg Config) *setWorkload {
	if cfg.ValueSize <= 0 {
		cfg.ValueSize = 256
	}
	return &setWorkload{cfg: cfg}
}

func (w *setWorkload) Name() string { return string(w.cfg.Type) }

func (w *setWorkload) Description() string {
	return fmt.Sprintf("write one %d-byte value per iteration", w.cfg.ValueSize)
}

func (w *setWorkload) Setup() error {
	store, err := openStore(w.cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	w.store = store
	w.keys = newKeyGenerator(w.cfg.Seed)
	w.rng = rand.New(rand.NewSource(w.cfg.Seed))
	return nil
}

func (w *setWorkload) Before() func() {
	return func() {
		w.key = w.keys.next()
		w.value = encodeValue(w.rng, w.index, w.cfg.ValueSize)
		w.index++
	}
}

func (w *setWorkload) Action() func() {
	return func() {
		if err := w.store.Set(w.key, w.value); err != nil {
			panic(fmt.Errorf("failed to set key: %w", err))
		}
	}
}

func (w *setWorkload) Close() error {
	if w.store == nil {
		return nil
	}
	if err := w.store.Flush(); err != nil {
		w.store.Close()
		return err
	}
	return w.store.Close()
}

// getWorkload reads one key per iteration from a store preloaded with
// KeyCount entries during Setup. Before picks the key to read, so the
// timed section contains only the store read.
type getWorkload struct {
	cfg   Config
	store Store
	keys  [][]byte
	rng   *rand.Rand

	key []byte
}

func newGetWorkload(cfg Config) *getWorkload {
	if cfg.KeyCount <= 0 {
		cfg.KeyCount = 1000
	}
	if cfg.ValueSize <= 0 {
		cfg.ValueSize = 256
	}
	return &getWorkload{cfg: cfg}
}

func (w *getWorkload) Name() string { return string(w.cfg.Type) }

func (w *getWorkload) Description() string {
	return fmt.Sprintf("read one of %d preloaded keys per iteration", w.cfg.KeyCount)
}

func (w *getWorkload) Setup() error {
	store, err := openStore(w.cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	w.store = store
	w.rng = rand.New(rand.NewSource(w.cfg.Seed))

	gen := newKeyGenerator(w.cfg.Seed)
	w.keys = make([][]byte, w.cfg.KeyCount)
	for i := range w.keys {
		key := gen.next()
		value := encodeValue(w.rng, uint64(i), w.cfg.ValueSize)
		if err := store.Set(key, value); err != nil {
			store.Close()
			return fmt.Errorf("failed to preload key: %w", err)
		}
		w.keys[i] = key
	}
	if err := store.Flush(); err != nil {
		store.Close()
		return fmt.Errorf("failed to flush preloaded keys: %w", err)
	}
	return nil
}

func (w *getWorkload) Before() func() {
	return func() {
		w.key = w.keys[w.rng.Intn(len(w.keys))]
	}
}

func (w *getWorkload) Action() func() {
	return func() {
		_, closer, err := w.store.Get(w.key)
		if err != nil {
			panic(fmt.Errorf("failed to get key: %w", err))
		}
		if closer != nil {
			closer.Close()
		}
	}
}

func (w *getWorkload) Close() error {
	if w.store == nil {
		return nil
	}
	return w.store.Close()
}
