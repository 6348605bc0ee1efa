package walk

import "testing"

func TestGenerateParallelInvariants(t *testing.T) {
	cfg := Config{Samples: 5000, Steps: 19}

	for _, workers := range []int{1, 2, 4, 7} {
		frame := GenerateParallel(cfg, 42, workers)

		if got := frame.Total(); got != cfg.Samples {
			t.Errorf("workers=%d: expected total %d, got %d", workers, cfg.Samples, got)
		}
		labels := Labels(cfg.Steps)
		for i, b := range frame {
			if b.Label != labels[i] {
				t.Errorf("workers=%d: bucket %d labeled %d, want %d", workers, i, b.Label, labels[i])
			}
			if (b.Label < -cfg.Steps || b.Label > cfg.Steps) && b.Count != 0 {
				t.Errorf("workers=%d: padding bucket %d has count %d", workers, b.Label, b.Count)
			}
		}
	}
}

func TestGenerateParallelDeterministic(t *testing.T) {
	cfg := Config{Samples: 3000, Steps: 19}

	a := GenerateParallel(cfg, 9, 4)
	b := GenerateParallel(cfg, 9, 4)

	for i := range a {
		if a[i] != b[i] {
			t.Errorf("bucket %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateParallelMoreWorkersThanSamples(t *testing.T) {
	cfg := Config{Samples: 3, Steps: 5}
	frame := GenerateParallel(cfg, 1, 16)

	if got := frame.Total(); got != cfg.Samples {
		t.Errorf("expected total %d, got %d", cfg.Samples, got)
	}
}
