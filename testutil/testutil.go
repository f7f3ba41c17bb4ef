package testutil

import (
	"math/rand"
	"strings"
	"sync"
)

// Alphabet is the character set used by Word. It holds the characters a
// relaxed EditorID may contain, upper and lower case, so that generated names
// exercise case folding.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// Word returns a random string from Alphabet with a length in [minLen, maxLen].
func (r *RNG) Word(minLen, maxLen int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.word(minLen, maxLen, Alphabet)
}

// WordFrom is Word over a caller supplied alphabet. A small alphabet makes
// substring collisions likely.
func (r *RNG) WordFrom(alphabet string, minLen, maxLen int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.word(minLen, maxLen, alphabet)
}

func (r *RNG) word(minLen, maxLen int, alphabet string) string {
	n := minLen
	if maxLen > minLen {
		n += r.rand.Intn(maxLen - minLen + 1)
	}
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(alphabet[r.rand.Intn(len(alphabet))])
	}
	return b.String()
}

// PluginName returns a random plugin file name with one of the three
// recognised extensions.
func (r *RNG) PluginName() string {
	exts := [...]string{".esm", ".esp", ".esl"}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.word(3, 10, Alphabet[:52]) + exts[r.rand.Intn(len(exts))]
}

// Shuffle pseudo-randomizes the order of n elements using swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(n, swap)
}
