package cpu

import "runtime"

// unknownFeatures is the snapshot reported when the hardware cannot be queried.
func unknownFeatures() Features {
	return Features{
		Vendor:       VendorUnknown,
		Architecture: runtime.GOARCH,
	}
}
