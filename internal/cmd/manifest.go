package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Alia5/shaderembed/internal/configpaths"
	"github.com/Alia5/shaderembed/internal/shader"
)

// ManifestCommand groups manifest-related subcommands.
type ManifestCommand struct {
	Init ManifestInit `cmd:"" help:"Write the built-in shader task list as a manifest template"`
}

// ManifestInit scaffolds a task manifest.
type ManifestInit struct {
	Format string `help:"Output format" enum:"json,yaml,toml" default:"yaml"`
	Output string `help:"Destination file path (defaults to shaders.<format> in the current directory)"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

// Run is called by Kong when the manifest init command is executed.
func (m *ManifestInit) Run(logger *slog.Logger) error {
	format := shader.NormalizeFormat(m.Format)
	if format == "" {
		return fmt.Errorf("unsupported format: %s", m.Format)
	}

	dest := m.Output
	if dest == "" {
		dest = "shaders." + format
	}
	if !m.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}

	data, err := shader.MarshalManifest(shader.DefaultTasks(), format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return &shader.FilesystemError{Op: "write manifest", Path: dest, Err: err}
	}
	logger.Info("Wrote shader manifest", "file", dest, "format", format)
	return nil
}
