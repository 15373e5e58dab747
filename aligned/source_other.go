//go:build !unix && !windows

package aligned

import "errors"

const offHeapSupported = false

var errNoMapping = errors.New("aligned: anonymous mappings not supported on this platform")

func mapRegion(int) ([]byte, error) {
	return nil, errNoMapping
}

func unmapRegion([]byte) error {
	return errNoMapping
}
