// Command argminmaxbench drives the argminmax core from the outside: it
// times each available instruction-set kernel against the scalar
// fallback, and emits reproducible random test vectors for offline
// property testing. One cobra root command, one subcommand per
// operation, flags bound directly into each run.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/oisee/argminmax/pkg/dispatch"
	"github.com/oisee/argminmax/pkg/isa"
	"github.com/oisee/argminmax/pkg/kernel"
	"github.com/oisee/argminmax/pkg/randgen"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "argminmaxbench",
		Short: "Benchmark and fuzz-data tooling for the argminmax core",
	}

	var length int
	var seed int64
	var verbose bool

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every available instruction-set kernel against scalar for int32 input",
		RunE: func(cmd *cobra.Command, args []string) error {
			if length <= 0 {
				return fmt.Errorf("--length must be positive")
			}
			data := randgen.Int32(uint64(seed), length)

			fmt.Printf("argminmax bench\n")
			fmt.Printf("  length: %d\n", length)
			fmt.Printf("  seed:   %d\n", seed)
			fmt.Printf("  host best: %s\n\n", dispatch.Best(32).Family)

			families := []isa.Descriptor{isa.ScalarDescriptor, isa.SSEDescriptor, isa.AVX2Descriptor, isa.AVX512Descriptor}
			for _, fam := range families {
				ops := isa.NewOps[int32](fam, 32)
				start := time.Now()
				minIdx, maxIdx := kernel.ArgMinMax(data, ops)
				elapsed := time.Since(start)
				if verbose {
					fmt.Printf("  %-10s argmin=%d argmax=%d\n", fam.Family, minIdx, maxIdx)
				}
				fmt.Printf("  %-10s %s (lanes=%d, feature=%s)\n", fam.Family, elapsed.Round(time.Microsecond), ops.Lanes(), ops.Feature())
			}
			return nil
		},
	}
	benchCmd.Flags().IntVar(&length, "length", 1_000_000, "Number of elements to generate")
	benchCmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")
	benchCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the argmin/argmax each kernel produced")

	// gen subcommand: emit reproducible random input vectors for offline
	// property testing.
	var genLength int
	var genCount int
	var genWorkers int
	var genOutput string

	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a reproducible corpus of random int32 test vectors",
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds := make([]uint64, genCount)
			for i := range seeds {
				seeds[i] = uint64(i) + 1
			}

			fixtures := randgen.GenerateCorpus(seeds, genLength, genWorkers)
			fmt.Printf("generated %d fixtures of length %d\n", len(fixtures), genLength)

			if genOutput != "" {
				f, err := os.Create(genOutput)
				if err != nil {
					return err
				}
				defer f.Close()
				return json.NewEncoder(f).Encode(fixtures)
			}
			return nil
		},
	}
	genCmd.Flags().IntVar(&genLength, "length", 1000, "Length of each generated vector")
	genCmd.Flags().IntVar(&genCount, "count", 100, "Number of vectors to generate")
	genCmd.Flags().IntVar(&genWorkers, "workers", 0, "Number of generator workers (0 = NumCPU)")
	genCmd.Flags().StringVar(&genOutput, "output", "", "Output JSON file path")

	rootCmd.AddCommand(benchCmd, genCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
