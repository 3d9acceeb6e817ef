package workload

import "math/rand"

const (
	MinBurst = 1
	MaxBurst = 3
	MaxGap   = 2
)

// Source draws the burst time of each new process and the gap before the
// next one, both in time units.
type Source interface {
	Burst() int
	Gap() int
}

// RandomSource draws uniformly from [MinBurst, MaxBurst] and [0, MaxGap].
// Two sources built from the same seed yield the same workload.
type RandomSource struct {
	rng *rand.Rand
}

func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

func (r *RandomSource) Burst() int {
	return r.rng.Intn(MaxBurst-MinBurst+1) + MinBurst
}

func (r *RandomSource) Gap() int {
	return r.rng.Intn(MaxGap + 1)
}

// ScriptedSource replays fixed bursts and gaps. Once a script runs out it
// yields MinBurst and a zero gap.
type ScriptedSource struct {
	Bursts []int
	Gaps   []int

	nextBurst int
	nextGap   int
}

func (s *ScriptedSource) Burst() int {
	if s.nextBurst >= len(s.Bursts) {
		return MinBurst
	}
	b := s.Bursts[s.nextBurst]
	s.nextBurst++
	return b
}

func (s *ScriptedSource) Gap() int {
	if s.nextGap >= len(s.Gaps) {
		return 0
	}
	g := s.Gaps[s.nextGap]
	s.nextGap++
	return g
}
