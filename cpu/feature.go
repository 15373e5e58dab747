package cpu

// Vendor identifies the processor manufacturer.
type Vendor int

const (
	VendorUnknown Vendor = iota
	VendorIntel
	VendorAMD
	VendorARM
	VendorOther
)

// String returns a human-readable name for the vendor.
func (v Vendor) String() string {
	switch v {
	case VendorIntel:
		return "Intel"
	case VendorAMD:
		return "AMD"
	case VendorARM:
		return "ARM"
	case VendorOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// Feature names a single instruction set extension.
type Feature int

const (
	FeatureSSE Feature = iota
	FeatureSSE2
	FeatureSSE3
	FeatureSSSE3
	FeatureSSE41
	FeatureSSE42
	FeatureSSE4A
	FeatureAVX
	FeatureAVX2
	FeatureFMA3
	FeatureFMA4
	FeatureXOP
	FeatureAVX512F
	FeatureAVX512CD
	FeatureAVX512BW
	FeatureAVX512DQ
	FeatureAVX512VL
	FeatureAVX512ER
	FeatureAVX512PF
	FeatureNEON

	featureCount
)

type featureInfo struct {
	name string
	// vendor restricts the feature to one manufacturer; VendorUnknown means any.
	vendor Vendor
	raw    func(*Features) bool
}

var featureTable = [featureCount]featureInfo{
	FeatureSSE:      {"SSE", VendorUnknown, func(f *Features) bool { return f.HasSSE }},
	FeatureSSE2:     {"SSE2", VendorUnknown, func(f *Features) bool { return f.HasSSE2 }},
	FeatureSSE3:     {"SSE3", VendorUnknown, func(f *Features) bool { return f.HasSSE3 }},
	FeatureSSSE3:    {"SSSE3", VendorUnknown, func(f *Features) bool { return f.HasSSSE3 }},
	FeatureSSE41:    {"SSE4.1", VendorUnknown, func(f *Features) bool { return f.HasSSE41 }},
	FeatureSSE42:    {"SSE4.2", VendorUnknown, func(f *Features) bool { return f.HasSSE42 }},
	FeatureSSE4A:    {"SSE4a", VendorAMD, func(f *Features) bool { return f.HasSSE4A }},
	FeatureAVX:      {"AVX", VendorUnknown, func(f *Features) bool { return f.HasAVX }},
	FeatureAVX2:     {"AVX2", VendorUnknown, func(f *Features) bool { return f.HasAVX2 }},
	FeatureFMA3:     {"FMA3", VendorUnknown, func(f *Features) bool { return f.HasFMA3 }},
	FeatureFMA4:     {"FMA4", VendorAMD, func(f *Features) bool { return f.HasFMA4 }},
	FeatureXOP:      {"XOP", VendorAMD, func(f *Features) bool { return f.HasXOP }},
	FeatureAVX512F:  {"AVX-512F", VendorUnknown, func(f *Features) bool { return f.HasAVX512F }},
	FeatureAVX512CD: {"AVX-512CD", VendorUnknown, func(f *Features) bool { return f.HasAVX512CD }},
	FeatureAVX512BW: {"AVX-512BW", VendorUnknown, func(f *Features) bool { return f.HasAVX512BW }},
	FeatureAVX512DQ: {"AVX-512DQ", VendorUnknown, func(f *Features) bool { return f.HasAVX512DQ }},
	FeatureAVX512VL: {"AVX-512VL", VendorUnknown, func(f *Features) bool { return f.HasAVX512VL }},
	FeatureAVX512ER: {"AVX-512ER", VendorIntel, func(f *Features) bool { return f.HasAVX512ER }},
	FeatureAVX512PF: {"AVX-512PF", VendorIntel, func(f *Features) bool { return f.HasAVX512PF }},
	FeatureNEON:     {"NEON", VendorUnknown, func(f *Features) bool { return f.HasNEON }},
}

// AllFeatures returns every feature known to the detector, in table order.
func AllFeatures() []Feature {
	out := make([]Feature, featureCount)
	for i := range out {
		out[i] = Feature(i)
	}
	return out
}

// String returns the conventional extension name (e.g., "SSE4.1", "AVX-512F").
func (ft Feature) String() string {
	if ft < 0 || ft >= featureCount {
		return "Unknown"
	}
	return featureTable[ft].name
}

// ExclusiveVendor reports the only vendor allowed to enable ft, or
// VendorUnknown if the feature is not vendor specific.
func (ft Feature) ExclusiveVendor() Vendor {
	if ft < 0 || ft >= featureCount {
		return VendorUnknown
	}
	return featureTable[ft].vendor
}

// Has reports whether the feature is usable. Vendor-exclusive features are
// false when the detected vendor differs, whatever the raw bit says.
func (f Features) Has(ft Feature) bool {
	if f.ForceGeneric || ft < 0 || ft >= featureCount {
		return false
	}
	info := featureTable[ft]
	if info.vendor != VendorUnknown && info.vendor != f.Vendor {
		return false
	}
	return info.raw(&f)
}

// Has reports whether the running CPU supports ft.
func Has(ft Feature) bool {
	return DetectFeatures().Has(ft)
}

// HasSSE2 returns true if the CPU supports SSE2 instructions.
func HasSSE2() bool {
	return Has(FeatureSSE2)
}

// HasSSE41 returns true if the CPU supports SSE4.1 instructions.
func HasSSE41() bool {
	return Has(FeatureSSE41)
}

// HasSSE42 returns true if the CPU supports SSE4.2 instructions.
func HasSSE42() bool {
	return Has(FeatureSSE42)
}

// HasSSE4A returns true on AMD processors with SSE4a.
func HasSSE4A() bool {
	return Has(FeatureSSE4A)
}

// HasAVX returns true if the CPU and OS support AVX instructions.
func HasAVX() bool {
	return Has(FeatureAVX)
}

// HasAVX2 returns true if the CPU and OS support AVX2 instructions.
func HasAVX2() bool {
	return Has(FeatureAVX2)
}

// HasFMA3 returns true if the CPU supports three-operand FMA.
func HasFMA3() bool {
	return Has(FeatureFMA3)
}

// HasFMA4 returns true on AMD processors with four-operand FMA.
func HasFMA4() bool {
	return Has(FeatureFMA4)
}

// HasXOP returns true on AMD processors with XOP.
func HasXOP() bool {
	return Has(FeatureXOP)
}

// HasAVX512F returns true if the CPU and OS support AVX-512 Foundation.
func HasAVX512F() bool {
	return Has(FeatureAVX512F)
}

// HasAVX512BW returns true if the CPU and OS support AVX-512 Byte and Word.
func HasAVX512BW() bool {
	return Has(FeatureAVX512BW)
}

// HasNEON returns true if the CPU supports ARM NEON (Advanced SIMD) instructions.
func HasNEON() bool {
	return Has(FeatureNEON)
}

// OptimalAlignment returns the preferred buffer alignment for the running CPU.
func OptimalAlignment() int {
	return DetectFeatures().OptimalAlignment()
}
