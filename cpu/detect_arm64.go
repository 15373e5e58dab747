//go:build arm64

package cpu

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on arm64 systems.
//
// On ARMv8 (arm64), NEON is mandatory, so HasNEON should always be true.
func detectFeaturesImpl() Features {
	vendor := VendorARM
	if cpuid.CPU.VendorID != cpuid.ARM && cpuid.CPU.VendorID != cpuid.VendorUnknown {
		vendor = VendorOther
	}
	return Features{
		Vendor:       vendor,
		VendorString: cpuid.CPU.VendorString,
		BrandName:    cpuid.CPU.BrandName,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
