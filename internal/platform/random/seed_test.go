package random

import (
	mrand "math/rand"
	"sync"
	"testing"
)

func TestSeedVaries(t *testing.T) {
	t.Parallel()

	first, err := Seed()
	if err != nil {
		t.Fatalf("first seed: %v", err)
	}
	second, err := Seed()
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if first == second {
		t.Errorf("consecutive seeds identical: %d", first)
	}
}

func TestNewRand(t *testing.T) {
	t.Parallel()

	rng, err := NewRand()
	if err != nil {
		t.Fatalf("new rand: %v", err)
	}
	if rng == nil {
		t.Fatal("NewRand returned nil source")
	}
	rng.Intn(10)
}

func TestLockedSourceConcurrentUse(t *testing.T) {
	t.Parallel()

	rng := mrand.New(NewLockedSource(1))

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				if v := rng.Intn(100); v < 0 || v >= 100 {
					t.Errorf("Intn(100) = %d, out of range", v)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestLockedSourceIsDeterministic(t *testing.T) {
	t.Parallel()

	first := mrand.New(NewLockedSource(42))
	second := mrand.New(NewLockedSource(42))
	for i := 0; i < 10; i++ {
		if a, b := first.Int63(), second.Int63(); a != b {
			t.Fatalf("draw %d: %d != %d", i, a, b)
		}
	}
}
