package cpu

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// FeatureStatus is one line of a Report.
type FeatureStatus struct {
	Name      string `yaml:"name" json:"name"`
	Supported bool   `yaml:"supported" json:"supported"`
	// Vendor is set for vendor-exclusive extensions.
	Vendor string `yaml:"vendor,omitempty" json:"vendor,omitempty"`
}

// Report is a serialisable view of a feature snapshot.
type Report struct {
	Vendor           string          `yaml:"vendor" json:"vendor"`
	VendorString     string          `yaml:"vendor_string" json:"vendor_string"`
	Brand            string          `yaml:"brand" json:"brand"`
	Architecture     string          `yaml:"architecture" json:"architecture"`
	Level            string          `yaml:"level" json:"level"`
	OptimalAlignment int             `yaml:"optimal_alignment" json:"optimal_alignment"`
	ForceGeneric     bool            `yaml:"force_generic,omitempty" json:"force_generic,omitempty"`
	Features         []FeatureStatus `yaml:"features" json:"features"`
}

// Report builds the serialisable view of f.
func (f Features) Report() Report {
	r := Report{
		Vendor:           f.Vendor.String(),
		VendorString:     f.VendorString,
		Brand:            f.BrandName,
		Architecture:     f.Architecture,
		Level:            f.Level().String(),
		OptimalAlignment: f.OptimalAlignment(),
		ForceGeneric:     f.ForceGeneric,
		Features:         make([]FeatureStatus, 0, featureCount),
	}
	for _, ft := range AllFeatures() {
		st := FeatureStatus{Name: ft.String(), Supported: f.Has(ft)}
		if v := ft.ExclusiveVendor(); v != VendorUnknown {
			st.Vendor = v.String()
		}
		r.Features = append(r.Features, st)
	}
	return r
}

// Dump writes a human-readable description of f to w: vendor, brand and one
// "name: supported" line per known extension. The layout is meant for people
// and may change between releases.
func Dump(w io.Writer, f Features) error {
	r := f.Report()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Vendor:\t%s (%s)\n", r.VendorString, r.Vendor)
	fmt.Fprintf(tw, "Brand:\t%s\n", r.Brand)
	fmt.Fprintf(tw, "Architecture:\t%s\n", r.Architecture)
	fmt.Fprintf(tw, "SIMD level:\t%s\n", r.Level)
	fmt.Fprintf(tw, "Optimal alignment:\t%d bytes\n", r.OptimalAlignment)
	fmt.Fprintln(tw)

	for _, st := range r.Features {
		status := "not supported"
		if st.Supported {
			status = "supported"
		}
		if st.Vendor != "" {
			fmt.Fprintf(tw, "%s\t%s\t(%s only)\n", st.Name, status, st.Vendor)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", st.Name, status)
	}

	return tw.Flush()
}
