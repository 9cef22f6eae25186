package split

import (
	"errors"
	"fmt"
	"testing"

	"github.com/eBay/tsv-utils-sub002/tsv"
)

func TestRandomAssignerRange(t *testing.T) {
	a := newAssigner(&Config{NumFiles: 7, Seed: 42})
	for i := 0; i < 1000; i++ {
		shard, err := a.assign([]byte("line"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if shard < 0 || shard >= 7 {
			t.Fatalf("shard %d out of range [0,7)", shard)
		}
	}
}

func TestRandomAssignerReproducible(t *testing.T) {
	a := newAssigner(&Config{NumFiles: 5, Seed: 99})
	b := newAssigner(&Config{NumFiles: 5, Seed: 99})
	for i := 0; i < 200; i++ {
		sa, _ := a.assign(nil)
		sb, _ := b.assign(nil)
		if sa != sb {
			t.Fatalf("draw %d: same seed gave shards %d and %d", i, sa, sb)
		}
	}
}

func TestKeyHashAssignerConsistency(t *testing.T) {
	cfg := &Config{NumFiles: 16, Seed: 7, KeyFields: []int{1}}
	a := newAssigner(cfg)

	lines := []string{
		"r1\talpha\tx",
		"r2\talpha\ty",
		"r3\talpha\tz",
	}
	first, err := a.assign([]byte(lines[0]))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, line := range lines[1:] {
		shard, err := a.assign([]byte(line))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if shard != first {
			t.Errorf("line %q got shard %d, expected %d", line, shard, first)
		}
	}
}

func TestKeyHashAssignerStableAcrossRuns(t *testing.T) {
	line := []byte("a\tb\tc")
	for n := 2; n <= 32; n *= 2 {
		a := newAssigner(&Config{NumFiles: n, Seed: 1234, KeyFields: []int{0, 2}})
		b := newAssigner(&Config{NumFiles: n, Seed: 1234, KeyFields: []int{0, 2}})
		sa, _ := a.assign(line)
		sb, _ := b.assign(line)
		if sa != sb {
			t.Errorf("n=%d: same seed and key gave shards %d and %d", n, sa, sb)
		}
		if sa < 0 || sa >= n {
			t.Errorf("n=%d: shard %d out of range", n, sa)
		}
	}
}

func TestKeyHashAssignerWholeLine(t *testing.T) {
	a := newAssigner(&Config{NumFiles: 8, Seed: 3, WholeLineKey: true})
	s1, err := a.assign([]byte("identical line"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s2, err := a.assign([]byte("identical line"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s1 != s2 {
		t.Errorf("identical lines got shards %d and %d", s1, s2)
	}
}

func TestKeyHashAssignerFieldSeparation(t *testing.T) {
	// The delimiter joins key fields, so the key bytes of ("a","bc") and
	// ("ab","c") differ even though their concatenation is equal.
	a := &keyHashAssigner{n: 4, seed: 11, indices: []int{0, 1}, delim: '\t'}
	if _, err := a.assign([]byte("a\tbc")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	key1 := string(a.keyBuf)
	if _, err := a.assign([]byte("ab\tc")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	key2 := string(a.keyBuf)
	if key1 == key2 {
		t.Errorf("key bytes %q and %q should differ", key1, key2)
	}
}

func TestKeyHashAssignerMissingField(t *testing.T) {
	a := newAssigner(&Config{NumFiles: 4, Seed: 1, KeyFields: []int{3}})
	_, err := a.assign([]byte("only\ttwo"))
	if !errors.Is(err, tsv.ErrFieldOutOfRange) {
		t.Fatalf("expected ErrFieldOutOfRange, got %v", err)
	}
}

func TestAssignerStrategySelection(t *testing.T) {
	testCases := []struct {
		Name    string
		Config  *Config
		WantKey bool
	}{
		{Name: "no key fields", Config: &Config{NumFiles: 2}, WantKey: false},
		{Name: "key fields", Config: &Config{NumFiles: 2, KeyFields: []int{0}}, WantKey: true},
		{Name: "whole line", Config: &Config{NumFiles: 2, WholeLineKey: true}, WantKey: true},
	}
	for _, c := range testCases {
		t.Run(c.Name, func(t *testing.T) {
			_, isKey := newAssigner(c.Config).(*keyHashAssigner)
			if isKey != c.WantKey {
				t.Errorf("expected key-hash assigner %v, got %v", c.WantKey, isKey)
			}
		})
	}
}

func BenchmarkKeyHashAssign(b *testing.B) {
	a := newAssigner(&Config{NumFiles: 64, Seed: 42, KeyFields: []int{1, 3}})
	line := []byte(fmt.Sprintf("f0\t%s\tf2\t%s\tf4", "customer-1234", "2024-06-01"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.assign(line); err != nil {
			b.Fatal(err)
		}
	}
}
