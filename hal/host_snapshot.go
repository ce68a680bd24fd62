//go:build !tinygo

package hal

import (
	"fmt"
	"os"

	"golang.org/x/image/bmp"
)

func writeSnapshot(path string, p *memPanel) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := bmp.Encode(f, p.snapshot(nil)); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: %w", err)
	}
	return f.Close()
}
