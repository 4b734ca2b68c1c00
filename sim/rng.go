package sim

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two simulations with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

// Pipeline stages draw from named sub-streams in a fixed order:
// cohort → adherence → admission. No two stages share a stream, so
// adding draws to one stage never perturbs another.
const (
	// SubsystemCohort is the RNG sub-stream for cohort synthesis
	// (member identifiers and ages).
	SubsystemCohort = "cohort"

	// SubsystemAdherence is the RNG sub-stream for PDC draws.
	SubsystemAdherence = "adherence"

	// SubsystemAdmission is the RNG sub-stream for hospitalization draws.
	SubsystemAdmission = "admission"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula: masterSeed XOR fnv1a64(subsystemName), fed to a PCG
// source together with the master seed itself.
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	derived := uint64(p.key) ^ fnv1a64(name)
	rng := rand.New(rand.NewPCG(derived, uint64(p.key)))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// === randReader ===

// randReader adapts a rand/v2 stream to io.Reader so it can feed
// uuid.NewRandomFromReader. Read never fails.
type randReader struct {
	rng *rand.Rand
}

func (r randReader) Read(p []byte) (int, error) {
	var buf [8]byte
	for n := 0; n < len(p); {
		binary.LittleEndian.PutUint64(buf[:], r.rng.Uint64())
		n += copy(p[n:], buf[:])
	}
	return len(p), nil
}
