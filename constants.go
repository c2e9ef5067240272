package sortbench

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

// Source supplies uniformly distributed integers in [0, n).
type Source interface {
	Intn(n int) int
}

// pooledRand uses sync.Pool to give each goroutine its own *rand.Rand,
// so a single source can be shared without a mutex.
type pooledRand struct {
	pool sync.Pool
}

func newPooledRand(seed int64) *pooledRand {
	var counter int64
	return &pooledRand{
		pool: sync.Pool{
			New: func() any {
				s := atomic.AddInt64(&counter, 1) - 1
				return rand.New(rand.NewSource(seed + s))
			},
		},
	}
}

func (pr *pooledRand) Intn(n int) int {
	r := pr.pool.Get().(*rand.Rand)
	v := r.Intn(n)
	pr.pool.Put(r)
	return v
}

// rng is the package-level random source used when no seed is configured.
var rng *pooledRand = newPooledRand(time.Now().UnixNano())

// InitRNG seeds the package-level rng. If seed is 0, the current
// time is used (non-deterministic). A non-zero seed gives
// reproducible sequences.
func InitRNG(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng = newPooledRand(seed)
}

// NewSource returns a Source seeded with seed, or the package rng when seed
// is 0. A seeded Source always yields the same stream.
func NewSource(seed int64) Source {
	if seed == 0 {
		return rng
	}
	return rand.New(rand.NewSource(seed))
}

const (
	DEBUG = false

	// N is the length of every benchmark sequence.
	N = 200

	MethodCount       = 8
	DistributionCount = 3
	MetricCount       = 2

	// BannerWidth is the width of the '=' lines bounding the results table.
	BannerWidth = 89
)
