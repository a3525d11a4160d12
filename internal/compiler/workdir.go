package compiler

import (
	"fmt"
	"os"
)

// NewWorkDir prepares the directory compiler output files are written to.
// An empty dir creates a fresh temporary directory that cleanup removes; an
// explicit dir is created if missing and left in place.
func NewWorkDir(dir string) (path string, cleanup func() error, err error) {
	if dir == "" {
		tmp, err := os.MkdirTemp("", "shaderembed-")
		if err != nil {
			return "", nil, fmt.Errorf("create work dir: %w", err)
		}
		return tmp, func() error { return os.RemoveAll(tmp) }, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", nil, fmt.Errorf("create work dir %s: %w", dir, err)
	}
	return dir, func() error { return nil }, nil
}
