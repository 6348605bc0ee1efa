package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/walklab/internal/config"
	"github.com/san-kum/walklab/internal/stats"
	"github.com/san-kum/walklab/internal/viz"
	"github.com/san-kum/walklab/internal/walk"
)

var (
	samples    int
	steps      int
	tickMs     int
	chart      string
	seed       int64
	workers    int
	configFile string
	preset     string
)

// main registers the CLI. The root command runs the live demo; exit code
// 0 on clean quit, 1 when a command propagates an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "walklab",
		Short: "central limit theorem terminal demo",
		Long: "walklab repeatedly simulates thousands of random walks and shows the\n" +
			"distribution of their endpoints as a live-updating chart. As the walk\n" +
			"length grows the shape converges toward the normal curve.",
		RunE: runDemo,
	}

	rootCmd.PersistentFlags().IntVar(&samples, "samples", config.DefaultSamples, "walks per frame")
	rootCmd.PersistentFlags().IntVar(&steps, "steps", config.DefaultSteps, "steps per walk (odd)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", config.DefaultWorkers, "parallel generation workers")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.Flags().IntVar(&tickMs, "tick", config.DefaultTickMs, "regeneration interval (ms)")
	rootCmd.Flags().StringVar(&chart, "chart", config.DefaultChart, "chart variant: bar or line")

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "generate one frame and print it",
		RunE:  runSample,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-10s samples=%d steps=%d chart=%s\n", name, p.Samples, p.Steps, p.Chart)
			}
		},
	}

	rootCmd.AddCommand(sampleCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig applies the precedence flag > config file > preset >
// default, same order the flags are checked below.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("tick") {
		cfg.TickMs = tickMs
	}
	if cmd.Flags().Changed("chart") {
		cfg.Chart = chart
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return viz.Run(cfg)
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	var frame walk.Frame
	if cfg.Workers > 1 {
		frame = walk.GenerateParallel(cfg.WalkConfig(), s, cfg.Workers)
	} else {
		frame = walk.Generate(cfg.WalkConfig(), rand.New(rand.NewSource(s)))
	}

	counts := make([]float64, len(frame))
	for i, b := range frame {
		counts[i] = float64(b.Count)
	}
	graph := asciigraph.Plot(counts,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("%d walks of %d steps", cfg.Samples, cfg.Steps)),
	)
	fmt.Println(graph)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LABEL\tCOUNT")
	for _, b := range frame {
		fmt.Fprintf(w, "%d\t%d\n", b.Label, b.Count)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	mean, stddev := stats.Moments(frame)
	fmt.Printf("\nmean: %.3f\nstddev: %.3f (sqrt(steps) = %.3f)\n",
		mean, stddev, math.Sqrt(float64(cfg.Steps)))
	return nil
}
