package workload

import (
	"io"

	"github.com/cockroachdb/pebble"
	"github.com/rs/zerolog/log"
)

// pebbleStore implements the Store interface for Pebble
type pebbleStore struct {
	db    *pebble.DB
	cache *pebble.Cache
}

func openPebbleStore(cfg Config) (Store, error) {
	opts := &pebble.Options{}

	var cache *pebble.Cache
	if cfg.BlockCacheSize >= 0 {
		cache = pebble.NewCache(cfg.BlockCacheSize)
		opts.Cache = cache

		log.Info().
			Int64("block_cache_size", cfg.BlockCacheSize).
			Msg("Opened Pebble with block cache")
	} else {
		log.Info().Msg("Opened Pebble with block cache disabled")
	}

	db, err := pebble.Open(cfg.Path, opts)
	if err != nil {
		if cache != nil {
			cache.Unref()
		}
		return nil, err
	}

	return &pebbleStore{
		db:    db,
		cache: cache,
	}, nil
}

func (p *pebbleStore) Set(key, value []byte) error {
	return p.db.Set(key, value, pebble.NoSync)
}

func (p *pebbleStore) Get(key []byte) ([]byte, io.Closer, error) {
	value, closer, err := p.db.Get(key)
	if err != nil {
		if err == pebble.ErrNotFound {
			return nil, nil, ErrKeyNotFound
		}
		return nil, nil, err
	}
	return value, closer, nil
}

func (p *pebbleStore) Flush() error {
	return p.db.Flush()
}

func (p *pebbleStore) Close() error {
	var err error
	if p.db != nil {
		err = p.db.Close()
		p.db = nil
	}

	if p.cache != nil {
		p.cache.Unref()
		p.cache = nil
	}

	return err
}
