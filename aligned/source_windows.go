//go:build windows

package aligned

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const offHeapSupported = true

// mapRegion commits size bytes of zeroed read/write pages.
func mapRegion(size int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

// unmapRegion releases a region returned by mapRegion.
func unmapRegion(b []byte) error {
	return windows.VirtualFree(uintptr(unsafe.Pointer(unsafe.SliceData(b))), 0, windows.MEM_RELEASE)
}
