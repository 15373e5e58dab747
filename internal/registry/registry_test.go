package registry

import (
	"testing"

	"github.com/cwbudde/algo-simd/cpu"
)

func TestOpRegistry_Register(t *testing.T) {
	// Create a fresh registry for testing
	reg := &OpRegistry{}

	reg.Register(OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Width:     1,
		Sum: func(x []float64, init float64) float64 {
			return init
		},
	})
	reg.Register(OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		Width:     4,
	})

	entries := reg.ListEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestOpRegistry_Lookup_Priority(t *testing.T) {
	reg := &OpRegistry{}

	// Register implementations in random order to test sorting
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0, Width: 1})
	reg.Register(OpEntry{Name: "avx512", SIMDLevel: cpu.SIMDAVX512, Priority: 30, Width: 8})
	reg.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20, Width: 4})
	reg.Register(OpEntry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10, Width: 2})

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{
			name:     "AVX-512 available - select AVX-512",
			features: cpu.Features{HasSSE2: true, HasAVX2: true, HasAVX512F: true},
			want:     "avx512",
		},
		{
			name:     "AVX2 available - select AVX2",
			features: cpu.Features{HasSSE2: true, HasAVX2: true},
			want:     "avx2",
		},
		{
			name:     "SSE2 only - select SSE2",
			features: cpu.Features{HasSSE2: true},
			want:     "sse2",
		},
		{
			name:     "No SIMD - select generic",
			features: cpu.Features{},
			want:     "generic",
		},
		{
			name: "ForceGeneric - select generic",
			features: cpu.Features{
				HasSSE2:      true,
				HasAVX2:      true,
				HasAVX512F:   true,
				ForceGeneric: true,
			},
			want: "generic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := reg.Lookup(tt.features)
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.want {
				t.Errorf("expected %q, got %q", tt.want, entry.Name)
			}
		})
	}
}

func TestOpRegistry_Lookup_ARM(t *testing.T) {
	reg := &OpRegistry{}

	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0, Width: 1})
	reg.Register(OpEntry{Name: "neon", SIMDLevel: cpu.SIMDNEON, Priority: 15, Width: 2})

	if got := reg.Lookup(cpu.Features{HasNEON: true}); got == nil || got.Name != "neon" {
		t.Errorf("expected neon, got %+v", got)
	}
	if got := reg.Lookup(cpu.Features{}); got == nil || got.Name != "generic" {
		t.Errorf("expected generic, got %+v", got)
	}
}

func TestOpRegistry_LookupEmpty(t *testing.T) {
	reg := &OpRegistry{}
	if got := reg.Lookup(cpu.Features{}); got != nil {
		t.Errorf("expected nil from empty registry, got %q", got.Name)
	}
}

func TestOpRegistry_LookupName(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Width: 1})
	reg.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20, Width: 4})

	if got := reg.LookupName("avx2"); got == nil || got.Width != 4 {
		t.Fatalf("LookupName(avx2) = %+v", got)
	}
	if got := reg.LookupName("missing"); got != nil {
		t.Errorf("LookupName(missing) = %+v, want nil", got)
	}
}

func TestOpRegistry_Reset(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic"})
	reg.Reset()

	if n := len(reg.ListEntries()); n != 0 {
		t.Errorf("expected empty registry after Reset, got %d entries", n)
	}
}

func TestOpEntry_Helpers(t *testing.T) {
	e := OpEntry{Width: 4}
	if e.VectorBytes() != 32 {
		t.Errorf("VectorBytes() = %d, want 32", e.VectorBytes())
	}
	if !e.IsVector() {
		t.Error("IsVector() = false for width 4")
	}
	if e.Complete() {
		t.Error("Complete() = true for empty entry")
	}

	scalar := OpEntry{Width: 1}
	if scalar.IsVector() {
		t.Error("IsVector() = true for width 1")
	}
}

func TestSIMDLevel_String(t *testing.T) {
	tests := []struct {
		level cpu.SIMDLevel
		want  string
	}{
		{cpu.SIMDNone, "None"},
		{cpu.SIMDSSE2, "SSE2"},
		{cpu.SIMDAVX, "AVX"},
		{cpu.SIMDAVX2, "AVX2"},
		{cpu.SIMDAVX512, "AVX-512"},
		{cpu.SIMDNEON, "NEON"},
		{cpu.SIMDSVE, "SVE"},
		{cpu.SIMDLevel(999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := tt.level.String()
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
