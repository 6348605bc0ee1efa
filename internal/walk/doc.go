// Package walk implements the random-walk simulation engine behind the
// central limit demo.
//
// Each frame is built from Samples independent walks of Steps fair ±1
// steps; endpoints are binned over a fixed, padded sequence of odd labels
// so the chart keeps the same width from frame to frame:
//
//	rng := rand.New(rand.NewSource(seed))
//	frame := walk.Generate(walk.Config{Samples: 5000, Steps: 19}, rng)
//
// Steps must be odd for every bucket to be reachable: walk parity pins
// endpoints to odd values when Steps is odd. An even Steps is accepted but
// produces an all-zero frame, since its endpoints fall between the odd
// labels. [GenerateParallel] spreads the sample budget across goroutines
// without changing the observable result.
package walk
