// internal/secret/secret.go
//
// Secret code generation.
// Two sources are provided behind one Generator interface:
//   - Seeded: deterministic SplitMix64 stream, reproducible for a given seed.
//   - System: crypto/rand entropy, used when no seed is configured.
//
// Each digit is drawn independently and uniformly from the rules' range;
// repeated digits are allowed.
package secret

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"

	"github.com/robalobadob/mastermind/internal/game"
)

// Generator produces secret codes.
type Generator interface {
	Generate(rules game.Rules) game.Code
}

// New picks a generator: seeded when seed is non-nil, system entropy otherwise.
func New(seed *int64) Generator {
	if seed != nil {
		return Seeded(*seed)
	}
	return System()
}

// Seeded returns a deterministic generator for seed.
// Two generators built from the same seed yield the same codes in the same order.
func Seeded(seed int64) Generator {
	return &sourceGenerator{rng: rand.New(&splitMix64{state: uint64(seed)})}
}

// System returns a generator backed by the operating system's entropy source.
func System() Generator {
	return &sourceGenerator{rng: rand.New(cryptoSource{})}
}

// sourceGenerator is safe for concurrent use; the server shares one across requests.
type sourceGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (g *sourceGenerator) Generate(rules game.Rules) game.Code {
	g.mu.Lock()
	defer g.mu.Unlock()
	span := rules.Max - rules.Min + 1
	code := make(game.Code, rules.Length)
	for i := range code {
		code[i] = rules.Min + g.rng.IntN(span)
	}
	return code
}

// splitMix64 is a small bit-mixing PRNG (Steele, Lea & Flood).
type splitMix64 struct {
	state uint64
}

func (s *splitMix64) Uint64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// cryptoSource adapts crypto/rand to rand.Source.
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	// crypto/rand.Read only fails when the OS entropy source is broken.
	if _, err := crand.Read(b[:]); err != nil {
		panic("secret: entropy source unavailable: " + err.Error())
	}
	return binary.LittleEndian.Uint64(b[:])
}
