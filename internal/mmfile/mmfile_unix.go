//go:build unix

package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Map maps the file at path read-only and returns its bytes together with a
// release function. The release function is safe to call more than once.
func Map(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close() // the mapping outlives the descriptor

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	if info.IsDir() {
		return nil, nil, fmt.Errorf("mmfile: %s is a directory", path)
	}
	size := info.Size()
	if size == 0 {
		return []byte{}, noop, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, fmt.Errorf("mmfile: map %s: %w", path, err)
	}
	// The document reader scans front to back once; a failed hint is harmless.
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	released := false
	release := func() error {
		if released {
			return nil
		}
		released = true
		if err := unix.Munmap(data); err != nil && !errors.Is(err, unix.EINVAL) {
			return err
		}
		return nil
	}
	return data, release, nil
}
