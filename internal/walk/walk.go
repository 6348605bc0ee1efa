package walk

import (
	"fmt"
	"math/rand"
)

// BucketPadding reserves empty buckets past the reachable range on each
// tail so the chart keeps a symmetric visual margin.
const BucketPadding = 3

type Config struct {
	Samples int
	Steps   int
}

func (c Config) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", c.Samples)
	}
	if c.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", c.Steps)
	}
	return nil
}

// Bucket is one endpoint value and its observed frequency.
type Bucket struct {
	Label int
	Count int
}

// Frame is the complete ordered bucket sequence from one regeneration.
// Zero-count buckets are kept so the chart width is stable frame to frame.
type Frame []Bucket

func (f Frame) Total() int {
	n := 0
	for _, b := range f {
		n += b.Count
	}
	return n
}

func (f Frame) Max() int {
	max := 0
	for _, b := range f {
		if b.Count > max {
			max = b.Count
		}
	}
	return max
}

func (f Frame) Clone() Frame {
	c := make(Frame, len(f))
	copy(c, f)
	return c
}

// Labels returns the ascending odd integers in
// [-(steps+BucketPadding), steps+BucketPadding]. The sequence depends on
// steps alone; with an odd steps every endpoint lands on exactly one label.
func Labels(steps int) []int {
	lo, hi := -(steps + BucketPadding), steps+BucketPadding
	labels := make([]int, 0, steps+BucketPadding+1)
	for v := lo; v <= hi; v++ {
		if v%2 != 0 {
			labels = append(labels, v)
		}
	}
	return labels
}

// Endpoint runs one walk: steps fair-coin draws mapped to ±1, summed.
func Endpoint(steps int, rng *rand.Rand) int {
	sum := 0
	for i := 0; i < steps; i++ {
		if rng.Intn(10) < 5 {
			sum--
		} else {
			sum++
		}
	}
	return sum
}

// Generate produces a fresh frame: cfg.Samples independent walk endpoints
// binned over the full padded label sequence. Total for any config; an even
// Steps yields endpoints on even values only, so every odd-labeled bucket
// stays at zero. Callers inject rng so fixed seeds give identical frames.
func Generate(cfg Config, rng *rand.Rand) Frame {
	counts := make(map[int]int, cfg.Steps+BucketPadding+1)
	for i := 0; i < cfg.Samples; i++ {
		counts[Endpoint(cfg.Steps, rng)]++
	}
	return assemble(cfg.Steps, counts)
}

func assemble(steps int, counts map[int]int) Frame {
	labels := Labels(steps)
	frame := make(Frame, len(labels))
	for i, l := range labels {
		frame[i] = Bucket{Label: l, Count: counts[l]}
	}
	return frame
}
