// Package compiler turns shader tasks into compiled binaries, either by
// running an external compiler executable or in-process.
package compiler

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/Alia5/shaderembed/internal/shader"
)

// Producer compiles one task into one binary format.
type Producer interface {
	Compile(task shader.Task, format shader.Format) ([]byte, error)
}

// Toolchain dispatches each format to the producer registered for it.
type Toolchain map[shader.Format]Producer

// Compile implements Producer.
func (tc Toolchain) Compile(task shader.Task, format shader.Format) ([]byte, error) {
	p, ok := tc[format]
	if !ok {
		return nil, fmt.Errorf("no compiler configured for format %s", format)
	}
	return p.Compile(task, format)
}

// Locate resolves a compiler executable. Names containing a path separator
// are checked as given; bare names are looked up in PATH.
func Locate(bin string) (string, error) {
	if bin == "" {
		return "", fmt.Errorf("%w: empty executable path", shader.ErrCompilerNotFound)
	}
	if strings.ContainsAny(bin, `/\`) {
		info, err := os.Stat(bin)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", shader.ErrCompilerNotFound, bin, err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("%w: %s is a directory", shader.ErrCompilerNotFound, bin)
		}
		return bin, nil
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", shader.ErrCompilerNotFound, bin, err)
	}
	return path, nil
}
