package generator

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/Alia5/shaderembed/internal/bin2cpp"
	"github.com/Alia5/shaderembed/internal/shader"
)

// Default output locations, relative to the repository root.
var (
	DefaultHeaderPath = filepath.FromSlash("Rush/GfxEmbeddedShaders.h")
	DefaultSourcePath = filepath.FromSlash("Rush/GfxEmbeddedShaders.cpp")
)

// DefaultInclude is what the generated source includes by default.
const DefaultInclude = "GfxEmbeddedShaders.h"

// ErrStale is returned by Check when a generated file is missing or differs
// from what the current inputs produce.
var ErrStale = errors.New("generated shader sources are out of date")

// Digest returns the hex BLAKE2b-256 digest of text.
func Digest(text []byte) string {
	sum := blake2b.Sum256(text)
	return hex.EncodeToString(sum[:])
}

// Write replaces the header and source files with the rendered output in
// one truncating write each.
func Write(logger *slog.Logger, out *bin2cpp.Output, headerPath, sourcePath string) error {
	for _, f := range []struct {
		path string
		text string
	}{
		{headerPath, out.Header()},
		{sourcePath, out.Source()},
	} {
		if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
			return &shader.FilesystemError{Op: "create output dir", Path: filepath.Dir(f.path), Err: err}
		}
		if err := os.WriteFile(f.path, []byte(f.text), 0o644); err != nil {
			return &shader.FilesystemError{Op: "write output", Path: f.path, Err: err}
		}
		logger.Info("Wrote generated file", "file", f.path, "bytes", len(f.text), "blake2b", Digest([]byte(f.text)))
	}
	return nil
}

// Check compares the rendered output with the files on disk without writing
// anything.
func Check(logger *slog.Logger, out *bin2cpp.Output, headerPath, sourcePath string) error {
	var stale []string
	for _, f := range []struct {
		path string
		text string
	}{
		{headerPath, out.Header()},
		{sourcePath, out.Source()},
	} {
		want := Digest([]byte(f.text))
		current, err := os.ReadFile(f.path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			logger.Warn("Generated file missing", "file", f.path)
			stale = append(stale, f.path)
			continue
		case err != nil:
			return &shader.FilesystemError{Op: "read output", Path: f.path, Err: err}
		}
		if got := Digest(current); got != want {
			logger.Warn("Generated file out of date", "file", f.path, "have", got, "want", want)
			stale = append(stale, f.path)
			continue
		}
		logger.Debug("Generated file up to date", "file", f.path, "blake2b", want)
	}
	if len(stale) > 0 {
		return fmt.Errorf("%w: %s", ErrStale, strings.Join(stale, ", "))
	}
	return nil
}
