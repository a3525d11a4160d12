package compiler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/naga/spirv"

	"github.com/Alia5/shaderembed/internal/shader"
)

var nagaStages = map[shader.Profile]ir.ShaderStage{
	shader.ProfileVertex5: ir.StageVertex,
	shader.ProfilePixel5:  ir.StageFragment,
}

// Naga compiles WGSL sources to SPIR-V in-process. A WGSL module carries
// every entry point it declares, so each task embeds the whole module; the
// host picks the entry point by name.
type Naga struct {
	// Validate runs IR validation before SPIR-V generation.
	Validate bool

	logger  *slog.Logger
	version spirv.Version
}

// NewNaga returns an in-process SPIR-V producer. logger may be nil.
func NewNaga(logger *slog.Logger) *Naga {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Naga{Validate: true, logger: logger, version: spirv.Version1_3}
}

// Compile implements Producer.
func (n *Naga) Compile(task shader.Task, format shader.Format) ([]byte, error) {
	fail := func(err error) error {
		return &shader.CompilationError{Tool: "naga", Task: task, Format: format, ExitCode: -1, Err: err}
	}
	if format != shader.FormatSPV {
		return nil, fail(fmt.Errorf("naga only produces %s", shader.FormatSPV))
	}
	if !strings.EqualFold(filepath.Ext(task.Source), ".wgsl") {
		return nil, fail(errors.New("naga only compiles .wgsl sources"))
	}

	src, err := os.ReadFile(task.Source)
	if err != nil {
		return nil, &shader.FilesystemError{Op: "read shader source", Path: task.Source, Err: err}
	}
	source := string(src)

	n.logger.Info("Compiling shader", "tool", "naga", "entry", task.Entry, "source", task.Source)
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, fail(err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, fail(err)
	}
	if err := checkEntryPoint(module, task); err != nil {
		return nil, fail(err)
	}
	if n.Validate {
		validationErrors, err := naga.Validate(module)
		if err != nil {
			return nil, fail(err)
		}
		if len(validationErrors) > 0 {
			return nil, fail(fmt.Errorf("validation failed: %w", &validationErrors[0]))
		}
	}

	data, err := naga.GenerateSPIRV(module, spirv.Options{Version: n.version})
	if err != nil {
		return nil, fail(err)
	}
	n.logger.Debug("Compiled shader", "tool", "naga", "entry", task.Entry, "bytes", len(data))
	return data, nil
}

func checkEntryPoint(module *ir.Module, task shader.Task) error {
	want := nagaStages[task.Profile]
	for _, ep := range module.EntryPoints {
		if ep.Name != task.Entry {
			continue
		}
		if ep.Stage != want {
			return fmt.Errorf("entry point %s is not a %s shader", task.Entry, task.Profile)
		}
		return nil
	}
	return fmt.Errorf("entry point %s not found", task.Entry)
}
