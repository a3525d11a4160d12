package compiler

import (
	"path/filepath"

	"github.com/Alia5/shaderembed/internal/shader"
)

// DefaultGlslc is the portable compiler looked up in PATH.
const DefaultGlslc = "glslc"

// glslcStages maps HLSL target profiles to glslc stage names.
var glslcStages = map[shader.Profile]string{
	shader.ProfileVertex5: "vertex",
	shader.ProfilePixel5:  "fragment",
}

// Glslc compiles HLSL to SPIR-V with the shaderc command line compiler.
type Glslc struct {
	external
}

// NewGlslc returns a SPIR-V producer running the glslc executable at bin.
func NewGlslc(bin string, opts ...Option) *Glslc {
	return &Glslc{external: newExternal("glslc", bin, shader.FormatSPV, glslcArgs, opts)}
}

// Compile implements Producer.
func (g *Glslc) Compile(task shader.Task, format shader.Format) ([]byte, error) {
	return g.compile(task, format)
}

func glslcArgs(task shader.Task, output string) []string {
	return []string{
		"-x", "hlsl",
		"-o", output,
		"-fentry-point=" + task.Entry,
		"-fshader-stage=" + glslcStages[task.Profile],
		filepath.Clean(task.Source),
	}
}
