package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/Alia5/shaderembed/internal/compiler"
	"github.com/Alia5/shaderembed/internal/generator"
	"github.com/Alia5/shaderembed/internal/log"
	"github.com/Alia5/shaderembed/internal/shader"
)

// Generate compiles the shader tasks and writes the embedded sources.
type Generate struct {
	Manifest  string `help:"Shader task manifest (.json, .yaml, .toml); empty uses the built-in task list" type:"path" env:"SHADEREMBED_MANIFEST"`
	Header    string `help:"Generated declarations file" default:"Rush/GfxEmbeddedShaders.h" type:"path" env:"SHADEREMBED_HEADER"`
	Source    string `help:"Generated definitions file" default:"Rush/GfxEmbeddedShaders.cpp" type:"path" env:"SHADEREMBED_SOURCE"`
	Namespace string `help:"C++ namespace wrapping the symbols" default:"Rush" env:"SHADEREMBED_NAMESPACE"`
	Include   string `help:"Header the definitions file includes; defaults to the header's file name" env:"SHADEREMBED_INCLUDE"`
	Glslc     string `help:"SPIR-V compiler executable" default:"glslc" env:"SHADEREMBED_GLSLC"`
	Fxc       string `help:"DXBC compiler executable; defaults to the Windows 10 SDK x64 fxc.exe" env:"SHADEREMBED_FXC"`
	Portable  string `help:"SPIR-V backend: external glslc, or in-process naga for WGSL sources" default:"glslc" enum:"glslc,naga" env:"SHADEREMBED_PORTABLE"`
	WorkDir   string `help:"Directory for intermediate compiler output; empty uses a fresh temp dir" env:"SHADEREMBED_WORK_DIR"`
	Check     bool   `help:"Verify the generated files are up to date instead of writing them" env:"SHADEREMBED_CHECK"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger, dumper log.BlobDumper) error {
	tasks := shader.DefaultTasks()
	if g.Manifest != "" {
		var err error
		if tasks, err = shader.LoadManifest(g.Manifest); err != nil {
			return err
		}
		logger.Info("Loaded shader manifest", "file", g.Manifest, "tasks", len(tasks))
	}

	workDir, cleanup, err := compiler.NewWorkDir(g.WorkDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.Warn("Failed to remove work dir", "dir", workDir, "error", err)
		}
	}()

	toolchain, err := g.toolchain(logger, workDir)
	if err != nil {
		return err
	}

	include := g.Include
	if include == "" {
		include = filepath.Base(g.Header)
	}
	gen := generator.New(toolchain, logger,
		generator.WithNamespace(g.Namespace),
		generator.WithInclude(include),
		generator.WithBlobDumper(dumper),
	)
	out, err := gen.Run(tasks)
	if err != nil {
		return err
	}

	if g.Check {
		return generator.Check(logger, out, g.Header, g.Source)
	}
	return generator.Write(logger, out, g.Header, g.Source)
}

// toolchain locates both compilers before anything runs, so a missing
// executable stops the run up front.
func (g *Generate) toolchain(logger *slog.Logger, workDir string) (compiler.Toolchain, error) {
	opts := []compiler.Option{compiler.WithWorkDir(workDir), compiler.WithLogger(logger)}

	var portable compiler.Producer
	switch g.Portable {
	case "naga":
		portable = compiler.NewNaga(logger)
	default:
		bin, err := compiler.Locate(g.Glslc)
		if err != nil {
			return nil, fmt.Errorf("locate SPIR-V compiler: %w", err)
		}
		portable = compiler.NewGlslc(bin, opts...)
	}

	fxcBin := g.Fxc
	if fxcBin == "" {
		fxcBin = compiler.DefaultFxc
	}
	fxc, err := compiler.Locate(fxcBin)
	if err != nil {
		return nil, fmt.Errorf("locate DXBC compiler: %w", err)
	}

	return compiler.Toolchain{
		shader.FormatSPV:  portable,
		shader.FormatDXBC: compiler.NewFxc(fxc, opts...),
	}, nil
}
