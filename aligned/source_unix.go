//go:build unix

package aligned

import "golang.org/x/sys/unix"

const offHeapSupported = true

// mapRegion maps size bytes of zeroed, private, anonymous memory.
func mapRegion(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// unmapRegion releases a region returned by mapRegion.
func unmapRegion(b []byte) error {
	return unix.Munmap(b)
}
