// Package random provides entropy helpers for seeding math/rand sources.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand"
	"sync"
)

// Seed returns a high-entropy seed drawn from crypto/rand.
func Seed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.BigEndian.Uint64(b[:])), nil
}

// NewRand returns a *rand.Rand seeded from crypto/rand. The underlying
// source is mutex-guarded, so the Rand can serve concurrent callers.
func NewRand() (*mrand.Rand, error) {
	seed, err := Seed()
	if err != nil {
		return nil, err
	}
	return mrand.New(NewLockedSource(seed)), nil
}

// NewLockedSource returns a deterministic source whose reads are serialised
// by a mutex. A Rand built on it is safe for concurrent use.
func NewLockedSource(seed int64) mrand.Source64 {
	return &lockedSource{src: mrand.NewSource(seed).(mrand.Source64)}
}

type lockedSource struct {
	mu  sync.Mutex
	src mrand.Source64
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}
