package workload

import (
	"math/rand"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyGeneratorDeterministic(t *testing.T) {
	a := newKeyGenerator(42)
	b := newKeyGenerator(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.next(), b.next())
	}
}

func TestKeyGeneratorKeys(t *testing.T) {
	gen := newKeyGenerator(42)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		key := gen.next()
		assert.Len(t, key, 32)
		seen[string(key)] = true
	}
	assert.Len(t, seen, 1000, "hashed keys must not collide")
}

func TestKeyGeneratorSeedChangesSequence(t *testing.T) {
	a := newKeyGenerator(1)
	b := newKeyGenerator(2)

	assert.NotEqual(t, a.next(), b.next())
}

func TestEncodeValue(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	encoded := encodeValue(rng, 7, 64)

	var record valueRecord
	require.NoError(t, rlp.DecodeBytes(encoded, &record))
	assert.Equal(t, uint64(7), record.Index)
	assert.Len(t, record.Payload, 64)
}
