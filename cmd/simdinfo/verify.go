package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/spf13/cobra"
	"github.com/viterin/vek"

	"github.com/cwbudde/algo-simd/aligned"
	"github.com/cwbudde/algo-simd/internal/testutil"
	"github.com/cwbudde/algo-simd/kernel"
)

// verifyTolerance is the largest accepted relative error against the scalar tier.
const verifyTolerance = 1e-12

var errVerifyFailed = errors.New("verification failed")

// check is one comparison of an implementation against the scalar tier.
type check struct {
	op     string
	impl   string
	got    float64
	relErr float64
}

func (c check) ok() bool {
	return c.relErr <= verifyTolerance
}

func newVerifyCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every kernel tier against the scalar tier and reference libraries",
		RunE: func(cmd *cobra.Command, args []string) error {
			size, _ := cmd.Flags().GetInt("size")
			seed, _ := cmd.Flags().GetInt64("seed")
			return runVerify(cmd.OutOrStdout(), e, size, seed)
		},
	}
	cmd.Flags().Int("size", 10007, "Number of elements per operand")
	cmd.Flags().Int64("seed", 1, "Seed for the generated operands")
	return cmd
}

func runVerify(w io.Writer, e *env, size int, seed int64) error {
	if size < 1 {
		return fmt.Errorf("--size must be positive, got %d", size)
	}
	d := e.dispatcher()
	alignment := max(d.Alignment(), e.features.OptimalAlignment())

	va, err := aligned.FromSlice(alignment, testutil.DeterministicNoise(seed, 1, size))
	if err != nil {
		return fmt.Errorf("allocating operand: %w", err)
	}
	defer va.Release()
	vb, err := aligned.FromSlice(alignment, testutil.DeterministicNoise(seed+1, 1, size))
	if err != nil {
		return fmt.Errorf("allocating operand: %w", err)
	}
	defer vb.Release()
	dst, err := aligned.NewVec[float64](alignment, size)
	if err != nil {
		return fmt.Errorf("allocating result: %w", err)
	}
	defer dst.Release()

	a, b := va.Slice(), vb.Slice()
	checks := verifyChecks(d, a, b, dst.Slice())

	e.logger.Info("verify finished",
		"impl", d.Name(), "size", size, "seed", seed, "checks", len(checks))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Implementation: %s, %d elements, %d-byte operands\n\n", d.Name(), size, alignment)
	fmt.Fprintln(tw, "OP\tIMPLEMENTATION\tRESULT\tREL ERR\tSTATUS")
	failed := 0
	for _, c := range checks {
		status := "ok"
		if !c.ok() {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(tw, "%s\t%s\t%.15g\t%.3g\t%s\n", c.op, c.impl, c.got, c.relErr, status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d checks above %g", errVerifyFailed, failed, len(checks), verifyTolerance)
	}
	return nil
}

// verifyChecks runs every tier and reference on a and b. dst is scratch space
// for the positive difference and must have the same length and alignment.
func verifyChecks(d *kernel.Dispatcher, a, b, dst []float64) []check {
	var checks []check

	wantSum := d.SumTier(kernel.TierScalar, a, 0)
	wantDot := d.DotProductTier(kernel.TierScalar, a, b)
	wantDiff := make([]float64, len(a))
	d.PositiveDiffTier(kernel.TierScalar, wantDiff, a, b)
	diffErr := func(got []float64) float64 {
		m, err := testutil.MaxAbsDiff(got, wantDiff)
		if err != nil {
			return 1
		}
		return m
	}

	for _, tier := range kernel.Tiers[1:] {
		s := d.SumTier(tier, a, 0)
		checks = append(checks, check{"sum", tier.String(), s, testutil.RelErr(s, wantSum)})
		p := d.DotProductTier(tier, a, b)
		checks = append(checks, check{"dot", tier.String(), p, testutil.RelErr(p, wantDot)})
		d.PositiveDiffTier(tier, dst, a, b)
		checks = append(checks, check{"posdiff", tier.String(), d.SumTier(kernel.TierScalar, dst, 0), diffErr(dst)})
	}

	// vek: independent SIMD implementation.
	vs := vek.Sum(a)
	checks = append(checks, check{"sum", "vek", vs, testutil.RelErr(vs, wantSum)})
	vd := vek.Dot(a, b)
	checks = append(checks, check{"dot", "vek", vd, testutil.RelErr(vd, wantDot)})
	vdiff := vek.Sub(a, b)
	vek.MaximumNumber_Inplace(vdiff, 0)
	checks = append(checks, check{"posdiff", "vek", d.SumTier(kernel.TierScalar, vdiff, 0), diffErr(vdiff)})

	// algo-vecmath: elementwise blocks reduced by the scalar tier.
	prod := make([]float64, len(a))
	vecmath.MulBlock(prod, a, b)
	md := d.SumTier(kernel.TierScalar, prod, 0)
	checks = append(checks, check{"dot", "algo-vecmath", md, testutil.RelErr(md, wantDot)})
	mdiff := make([]float64, len(a))
	vecmath.ScaleBlock(mdiff, b, -1)
	vecmath.AddBlockInPlace(mdiff, a)
	for i := range mdiff {
		mdiff[i] = max(mdiff[i], 0)
	}
	checks = append(checks, check{"posdiff", "algo-vecmath", d.SumTier(kernel.TierScalar, mdiff, 0), diffErr(mdiff)})

	return checks
}
