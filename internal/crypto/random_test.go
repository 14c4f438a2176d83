package crypto

import "testing"

func TestSourcesStayInRange(t *testing.T) {
	sources := map[string]Source{
		"crypto": CryptoSource(),
		"seeded": NewSeededSource(7),
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{1, 2, 10, 88} {
				for i := 0; i < 200; i++ {
					if v := src.Intn(n); v < 0 || v >= n {
						t.Fatalf("Intn(%d) = %d, out of range", n, v)
					}
				}
			}
			if v := src.Intn(0); v != 0 {
				t.Errorf("Intn(0) = %d, want 0", v)
			}
		})
	}
}

func TestSeededSourceCoversRange(t *testing.T) {
	src := NewSeededSource(1)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		seen[src.Intn(10)] = true
	}
	if len(seen) != 10 {
		t.Errorf("seeded source produced %d distinct values out of 10", len(seen))
	}
}
