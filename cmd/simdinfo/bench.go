package main

import (
	"fmt"
	"io"
	"testing"
	"text/tabwriter"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/spf13/cobra"
	"github.com/viterin/vek"

	"github.com/cwbudde/algo-simd/aligned"
	"github.com/cwbudde/algo-simd/internal/testutil"
	"github.com/cwbudde/algo-simd/kernel"
)

// benchCase is one named measurement over operands of a given size.
type benchCase struct {
	op    string
	impl  string
	bytes int // bytes touched per call
	fn    func()
}

func newBenchCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark every kernel tier and the reference libraries",
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes, _ := cmd.Flags().GetIntSlice("sizes")
			return runBench(cmd.OutOrStdout(), e, sizes, testing.Benchmark)
		},
	}
	cmd.Flags().IntSlice("sizes", []int{64, 1024, 65536}, "Operand lengths to measure")
	return cmd
}

// runBench measures each case with measure, which is testing.Benchmark
// outside of tests.
func runBench(w io.Writer, e *env, sizes []int, measure func(func(*testing.B)) testing.BenchmarkResult) error {
	d := e.dispatcher()
	alignment := max(d.Alignment(), e.features.OptimalAlignment())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Implementation: %s\t\t\t\t\t\n", d.Name())
	fmt.Fprintln(tw, "OP\tIMPLEMENTATION\tN\tNS/OP\tGB/S\t")

	for _, n := range sizes {
		if n < 1 {
			return fmt.Errorf("--sizes entries must be positive, got %d", n)
		}
		cases, release, err := benchCases(d, n, alignment)
		if err != nil {
			return err
		}
		for _, c := range cases {
			res := measure(func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					c.fn()
				}
			})
			nsPerOp := float64(res.T.Nanoseconds()) / float64(max(res.N, 1))
			gbps := 0.0
			if nsPerOp > 0 {
				gbps = float64(c.bytes) / nsPerOp
			}
			e.logger.Debug("bench case", "op", c.op, "impl", c.impl, "n", n, "iterations", res.N)
			fmt.Fprintf(tw, "%s\t%s\t%d\t%.1f\t%.2f\t\n", c.op, c.impl, n, nsPerOp, gbps)
		}
		release()
	}
	return tw.Flush()
}

// benchCases prepares aligned operands of length n and the closures to time.
// release frees the operands.
func benchCases(d *kernel.Dispatcher, n, alignment int) (cases []benchCase, release func(), err error) {
	va, err := aligned.FromSlice(alignment, testutil.DeterministicNoise(1, 1, n))
	if err != nil {
		return nil, nil, fmt.Errorf("allocating operand: %w", err)
	}
	vb, err := aligned.FromSlice(alignment, testutil.DeterministicNoise(2, 1, n))
	if err != nil {
		_ = va.Release()
		return nil, nil, fmt.Errorf("allocating operand: %w", err)
	}
	vdst, err := aligned.NewVec[float64](alignment, n)
	if err != nil {
		_ = va.Release()
		_ = vb.Release()
		return nil, nil, fmt.Errorf("allocating result: %w", err)
	}
	release = func() {
		_ = va.Release()
		_ = vb.Release()
		_ = vdst.Release()
	}

	a, b, dst := va.Slice(), vb.Slice(), vdst.Slice()
	for _, tier := range kernel.Tiers {
		name := tier.String()
		cases = append(cases,
			benchCase{"sum", name, 8 * n, func() { d.SumTier(tier, a, 0) }},
			benchCase{"dot", name, 16 * n, func() { d.DotProductTier(tier, a, b) }},
			benchCase{"posdiff", name, 24 * n, func() { d.PositiveDiffTier(tier, dst, a, b) }},
		)
	}
	cases = append(cases,
		benchCase{"sum", "vek", 8 * n, func() { vek.Sum(a) }},
		benchCase{"dot", "vek", 16 * n, func() { vek.Dot(a, b) }},
		benchCase{"mul", "algo-vecmath", 24 * n, func() { vecmath.MulBlock(dst, a, b) }},
	)
	return cases, release, nil
}
