package workload

import (
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

// keyGenerator produces deterministic 32-byte hashed keys with some
// shared prefixes, so the stores see a key distribution closer to real
// state trees than uniformly random bytes would give.
type keyGenerator struct {
	rng      *rand.Rand
	prefixes [][]byte
}

func newKeyGenerator(seed int64) *keyGenerator {
	rng := rand.New(rand.NewSource(seed))

	// Simulate shared prefixes: randomly assign a "prefix group" to each key
	numPrefixes := 32
	prefixes := make([][]byte, numPrefixes)
	for i := 0; i < numPrefixes; i++ {
		raw := make([]byte, 8)
		binary.LittleEndian.PutUint64(raw, rng.Uint64())
		prefixes[i] = raw // 8-byte prefix
	}

	return &keyGenerator{rng: rng, prefixes: prefixes}
}

func (g *keyGenerator) next() []byte {
	prefix := g.prefixes[g.rng.Intn(len(g.prefixes))]
	suffix := make([]byte, 16) // random suffix
	g.rng.Read(suffix)
	rawKey := append(prefix, suffix...) // total 24 bytes pre-hash
	return crypto.Keccak256(rawKey)     // returns 32 bytes
}

// valueRecord is the RLP shape stored under every key.
type valueRecord struct {
	Index   uint64
	Payload []byte
}

// encodeValue builds the RLP-encoded record written for the key at the
// given cursor position, padded with size random payload bytes.
func encodeValue(rng *rand.Rand, index uint64, size int) []byte {
	payload := make([]byte, size)
	rng.Read(payload)
	encoded, err := rlp.EncodeToBytes(&valueRecord{Index: index, Payload: payload})
	if err != nil {
		panic(fmt.Errorf("failed to encode value: %w", err))
	}
	return encoded
}
