package batch

import (
	"hash/fnv"
	"math/rand"
)

// RNG subsystems used by Generate. Each draws from its own stream so that,
// for example, widening the φ range leaves the kinematics unchanged.
const (
	SubsystemKinematics = "kinematics"
	SubsystemCFFs       = "cffs"
	SubsystemPhi        = "phi"
)

// PartitionedRNG hands out one independent stream per named subsystem,
// each seeded with seed XOR fnv1a64(name). Streams are created lazily and
// cached. Not safe for concurrent use: Generate draws on one goroutine.
type PartitionedRNG struct {
	seed    int64
	streams map[string]*rand.Rand
}

// NewPartitionedRNG returns a PartitionedRNG for the given master seed.
func NewPartitionedRNG(seed int64) *PartitionedRNG {
	return &PartitionedRNG{seed: seed, streams: map[string]*rand.Rand{}}
}

// ForSubsystem returns the stream for name, creating it on first use.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	rng, ok := p.streams[name]
	if !ok {
		rng = rand.New(rand.NewSource(p.seed ^ subsystemHash(name)))
		p.streams[name] = rng
	}
	return rng
}

// Seed returns the master seed.
func (p *PartitionedRNG) Seed() int64 { return p.seed }

func subsystemHash(name string) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return int64(h.Sum64())
}
