package workload

import (
	"fmt"
	"math/rand"

	"github.com/ethereum/go-ethereum/crypto"
)

// hashWorkload computes Keccak-256 over a fixed payload buffer on every
// iteration. The digest is kept in a field so the call cannot be
// optimized away.
type hashWorkload struct {
	payloadSize int
	seed        int64
	payload     []byte
	sum         []byte
}

func newHashWorkload(cfg Config) *hashWorkload {
	size := cfg.PayloadSize
	if size <= 0 {
		size = 1024
	}
	return &hashWorkload{payloadSize: size, seed: cfg.Seed}
}

func (w *hashWorkload) Name() string { return string(TypeHash) }

func (w *hashWorkload) Description() string {
	return fmt.Sprintf("Keccak-256 over %d bytes per iteration", w.payloadSize)
}

func (w *hashWorkload) Setup() error {
	rng := rand.New(rand.NewSource(w.seed))
	w.payload = make([]byte, w.payloadSize)
	rng.Read(w.payload)
	return nil
}

func (w *hashWorkload) Action() func() {
	return func() { w.sum = crypto.Keccak256(w.payload) }
}

func (w *hashWorkload) Before() func() { return nil }

func (w *hashWorkload) Close() error { return nil }
