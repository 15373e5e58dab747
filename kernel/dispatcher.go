package kernel

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-simd/aligned"
	"github.com/cwbudde/algo-simd/cpu"
	"github.com/cwbudde/algo-simd/internal/registry"
)

// scalarName is the registry name of the scalar implementation.
const scalarName = "generic"

// Dispatcher routes primitives to the implementation selected for one
// feature snapshot. It holds no mutable state after New.
type Dispatcher struct {
	features cpu.Features
	vector   registry.OpEntry // best entry for features; may be the scalar one
	scalar   registry.OpEntry
	logger   *slog.Logger
}

// New selects the best registered implementation for the detected CPU, or
// for the snapshot given with WithFeatures.
//
// New panics if no scalar implementation is registered, which indicates a
// broken build rather than a runtime condition.
func New(opts ...Option) *Dispatcher {
	cfg := applyOptions(opts...)

	features := cpu.DetectFeatures()
	if cfg.features != nil {
		features = *cfg.features
	}

	scalar := registry.Global.LookupName(scalarName)
	if scalar == nil || !scalar.Complete() {
		panic("kernel: no scalar implementation registered")
	}
	best := registry.Global.Lookup(features)
	if best == nil || !best.Complete() {
		cfg.logger.Warn("no complete implementation for CPU, using scalar",
			"simd_level", features.Level().String())
		best = scalar
	}

	cfg.logger.Debug("kernel implementation selected",
		"impl", best.Name,
		"simd_level", best.SIMDLevel.String(),
		"width", best.Width,
		"aligned_bytes", best.VectorBytes(),
		"vendor", features.Vendor.String(),
	)

	return &Dispatcher{
		features: features,
		vector:   *best,
		scalar:   *scalar,
		logger:   cfg.logger,
	}
}

// Name returns the name of the selected implementation ("generic", "avx2", ...).
func (d *Dispatcher) Name() string {
	return d.vector.Name
}

// Width returns the vector width in float64 lanes; 1 when only scalar code runs.
func (d *Dispatcher) Width() int {
	return d.vector.Width
}

// Alignment returns the byte alignment the aligned tier requires.
func (d *Dispatcher) Alignment() int {
	return d.vector.VectorBytes()
}

// Features returns the snapshot the dispatcher was built for.
func (d *Dispatcher) Features() cpu.Features {
	return d.features
}

// SelectTier returns the tier the auto-selecting entry points use for the
// given operands: scalar without vector support, aligned when every operand
// starts on a vector-width boundary, unaligned otherwise.
func (d *Dispatcher) SelectTier(bufs ...[]float64) Tier {
	if !d.vector.IsVector() {
		return TierScalar
	}
	if d.allAligned(bufs) {
		return TierVectorAligned
	}
	return TierVectorUnaligned
}

func (d *Dispatcher) allAligned(bufs [][]float64) bool {
	n := d.vector.VectorBytes()
	for _, b := range bufs {
		if !aligned.IsSliceAligned(b, n) {
			return false
		}
	}
	return true
}

// resolve maps a requested tier to the entry and form that serve it. Vector
// tiers fall back to scalar when no vector implementation was selected.
func (d *Dispatcher) resolve(t Tier, bufs ...[]float64) (e *registry.OpEntry, alignedForm bool) {
	switch t {
	case TierScalar:
		return &d.scalar, false
	case TierVectorUnaligned:
		if !d.vector.IsVector() {
			return &d.scalar, false
		}
		return &d.vector, false
	case TierVectorAligned:
		if !d.vector.IsVector() {
			return &d.scalar, false
		}
		if !d.allAligned(bufs) {
			panic(fmt.Errorf("%w: %s needs %d-byte alignment", ErrMisaligned, d.vector.Name, d.vector.VectorBytes()))
		}
		return &d.vector, true
	default:
		panic(fmt.Sprintf("kernel: invalid tier %d", int(t)))
	}
}

func checkLengths(op string, n int, others ...int) {
	for _, m := range others {
		if m != n {
			panic(fmt.Errorf("%w: %s operands have lengths %d and %d", ErrLengthMismatch, op, n, m))
		}
	}
}

// Sum returns the sum of all elements in x; 0 for an empty slice.
func (d *Dispatcher) Sum(x []float64) float64 {
	return d.SumInit(x, 0)
}

// SumInit returns init plus the sum of all elements in x; init for an empty slice.
func (d *Dispatcher) SumInit(x []float64, init float64) float64 {
	return d.SumTier(d.SelectTier(x), x, init)
}

// SumTier is SumInit executed on tier t.
func (d *Dispatcher) SumTier(t Tier, x []float64, init float64) float64 {
	e, al := d.resolve(t, x)
	if al {
		return e.SumAligned(x, init)
	}
	return e.Sum(x, init)
}

// DotProduct returns sum(a[i] * b[i]). It panics if len(a) != len(b).
func (d *Dispatcher) DotProduct(a, b []float64) float64 {
	checkLengths("DotProduct", len(a), len(b))
	return d.dotProduct(d.SelectTier(a, b), a, b)
}

// DotProductTier is DotProduct executed on tier t.
func (d *Dispatcher) DotProductTier(t Tier, a, b []float64) float64 {
	checkLengths("DotProduct", len(a), len(b))
	return d.dotProduct(t, a, b)
}

func (d *Dispatcher) dotProduct(t Tier, a, b []float64) float64 {
	e, al := d.resolve(t, a, b)
	if al {
		return e.DotProductAligned(a, b)
	}
	return e.DotProduct(a, b)
}

// PositiveDiff returns a new slice with out[i] = max(a[i]-b[i], 0).
// It panics if len(a) != len(b).
func (d *Dispatcher) PositiveDiff(a, b []float64) []float64 {
	checkLengths("PositiveDiff", len(a), len(b))
	dst := make([]float64, len(a))
	d.positiveDiff(d.SelectTier(dst, a, b), dst, a, b)
	return dst
}

// PositiveDiffInto writes dst[i] = max(a[i]-b[i], 0). dst may alias a or b.
// It panics unless dst, a and b have equal lengths.
func (d *Dispatcher) PositiveDiffInto(dst, a, b []float64) {
	checkLengths("PositiveDiff", len(dst), len(a), len(b))
	d.positiveDiff(d.SelectTier(dst, a, b), dst, a, b)
}

// PositiveDiffTier is PositiveDiffInto executed on tier t.
func (d *Dispatcher) PositiveDiffTier(t Tier, dst, a, b []float64) {
	checkLengths("PositiveDiff", len(dst), len(a), len(b))
	d.positiveDiff(t, dst, a, b)
}

func (d *Dispatcher) positiveDiff(t Tier, dst, a, b []float64) {
	e, al := d.resolve(t, dst, a, b)
	if al {
		e.PositiveDiffAligned(dst, a, b)
		return
	}
	e.PositiveDiff(dst, a, b)
}
