//go:build 386 || amd64

package cpu

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on x86 systems.
//
// Vendor, brand and raw CPUID bits come from klauspost/cpuid. The wide vector
// extensions additionally require golang.org/x/sys/cpu to agree, since it
// checks that the OS saves the extended register state (XGETBV).
func detectFeaturesImpl() Features {
	c := &cpuid.CPU
	return Features{
		Vendor:       vendorFromCPUID(c.VendorID),
		VendorString: c.VendorString,
		BrandName:    c.BrandName,

		HasSSE:      c.Supports(cpuid.SSE),
		HasSSE2:     c.Supports(cpuid.SSE2) || runtime.GOARCH == "amd64",
		HasSSE3:     c.Supports(cpuid.SSE3),
		HasSSSE3:    c.Supports(cpuid.SSSE3),
		HasSSE41:    c.Supports(cpuid.SSE4),
		HasSSE42:    c.Supports(cpuid.SSE42),
		HasSSE4A:    c.Supports(cpuid.SSE4A),
		HasAVX:      c.Supports(cpuid.AVX) && cpu.X86.HasAVX,
		HasAVX2:     c.Supports(cpuid.AVX2) && cpu.X86.HasAVX2,
		HasFMA3:     c.Supports(cpuid.FMA3) && cpu.X86.HasFMA,
		HasFMA4:     c.Supports(cpuid.FMA4),
		HasXOP:      c.Supports(cpuid.XOP),
		HasAVX512F:  c.Supports(cpuid.AVX512F) && cpu.X86.HasAVX512F,
		HasAVX512CD: c.Supports(cpuid.AVX512CD) && cpu.X86.HasAVX512CD,
		HasAVX512BW: c.Supports(cpuid.AVX512BW) && cpu.X86.HasAVX512BW,
		HasAVX512DQ: c.Supports(cpuid.AVX512DQ) && cpu.X86.HasAVX512DQ,
		HasAVX512VL: c.Supports(cpuid.AVX512VL) && cpu.X86.HasAVX512VL,
		HasAVX512ER: c.Supports(cpuid.AVX512ER) && cpu.X86.HasAVX512ER,
		HasAVX512PF: c.Supports(cpuid.AVX512PF) && cpu.X86.HasAVX512PF,

		Architecture: runtime.GOARCH,
	}
}

func vendorFromCPUID(v cpuid.Vendor) Vendor {
	switch v {
	case cpuid.Intel:
		return VendorIntel
	case cpuid.AMD:
		return VendorAMD
	case cpuid.VendorUnknown:
		return VendorUnknown
	default:
		return VendorOther
	}
}
