package split

import (
	"math/rand"

	"github.com/spaolacci/murmur3"

	"github.com/eBay/tsv-utils-sub002/tsv"
)

// shardAssigner maps one input line to a shard id in [0, n).
type shardAssigner interface {
	assign(line []byte) (int, error)
}

// newAssigner picks the strategy for cfg: key-hash when key fields or the
// whole-line key are configured, uniform random otherwise.
func newAssigner(cfg *Config) shardAssigner {
	if len(cfg.KeyFields) > 0 || cfg.WholeLineKey {
		return &keyHashAssigner{
			n:       cfg.NumFiles,
			seed:    cfg.Seed,
			indices: cfg.KeyFields,
			whole:   cfg.WholeLineKey,
			delim:   cfg.delim(),
		}
	}
	return &randomAssigner{
		rng: rand.New(rand.NewSource(int64(cfg.Seed))),
		n:   cfg.NumFiles,
	}
}

// randomAssigner draws one uniform shard per line from a seeded PRNG,
// consumed strictly in line-arrival order. Reproducible only for identical
// input order and seed.
type randomAssigner struct {
	rng *rand.Rand
	n   int
}

func (a *randomAssigner) assign([]byte) (int, error) {
	return a.rng.Intn(a.n), nil
}

// keyHashAssigner hashes the configured key fields, or the whole line, to a
// shard. The result is a pure function of the key bytes and the seed, so
// identical keys always land on the same shard within a run and, given the
// same seed, across runs.
type keyHashAssigner struct {
	n       int
	seed    uint32
	indices []int
	whole   bool
	delim   byte

	// keyBuf is reused across lines to join multi-field keys.
	keyBuf []byte
}

func (a *keyHashAssigner) assign(line []byte) (int, error) {
	if a.whole {
		return int(murmur3.Sum32WithSeed(line, a.seed) % uint32(a.n)), nil
	}

	spans, err := tsv.ExtractFields(line, a.indices, a.delim)
	if err != nil {
		return 0, err
	}

	// Join the key fields with the delimiter so ("a","bc") and ("ab","c")
	// hash differently.
	a.keyBuf = a.keyBuf[:0]
	for i, span := range spans {
		if i > 0 {
			a.keyBuf = append(a.keyBuf, a.delim)
		}
		a.keyBuf = append(a.keyBuf, span...)
	}
	return int(murmur3.Sum32WithSeed(a.keyBuf, a.seed) % uint32(a.n)), nil
}
