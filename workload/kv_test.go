package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetWorkloadLifecycle(t *testing.T) {
	cfg := Config{
		Type:           TypePebbleSet,
		Path:           t.TempDir(),
		ValueSize:      64,
		Seed:           42,
		BlockCacheSize: 8 << 20,
	}
	w := newSetWorkload(cfg)
	require.NoError(t, w.Setup())

	before := w.Before()
	action := w.Action()
	require.NotNil(t, before)

	const iterations = 5
	for i := 0; i < iterations; i++ {
		before()
		action()
	}
	require.NoError(t, w.Close())

	// Every iteration must have written a distinct key; the generator is
	// deterministic, so the same seed reproduces the keys written above.
	store, err := openStore(cfg)
	require.NoError(t, err)
	defer store.Close()

	gen := newKeyGenerator(cfg.Seed)
	for i := 0; i < iterations; i++ {
		value, closer, err := store.Get(gen.next())
		require.NoError(t, err)
		assert.NotEmpty(t, value)
		if closer != nil {
			closer.Close()
		}
	}
}

func TestGetWorkloadLifecycle(t *testing.T) {
	w := newGetWorkload(Config{
		Type:           TypePebbleGet,
		Path:           t.TempDir(),
		KeyCount:       10,
		ValueSize:      64,
		Seed:           42,
		BlockCacheSize: 8 << 20,
	})
	require.NoError(t, w.Setup())
	defer w.Close()

	require.Len(t, w.keys, 10)

	before := w.Before()
	action := w.Action()
	require.NotNil(t, before)

	for i := 0; i < 20; i++ {
		before()
		assert.NotPanics(t, action, "every preloaded key must be readable")
	}
}

func TestGetWorkloadDefaults(t *testing.T) {
	w := newGetWorkload(Config{Type: TypePebbleGet})
	assert.Equal(t, 1000, w.cfg.KeyCount)
	assert.Equal(t, 256, w.cfg.ValueSize)
}

func TestSetWorkloadCloseWithoutSetup(t *testing.T) {
	w := newSetWorkload(Config{Type: TypePebbleSet})
	assert.NoError(t, w.Close())
}
