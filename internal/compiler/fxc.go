package compiler

import (
	"path/filepath"

	"github.com/Alia5/shaderembed/internal/shader"
)

// DefaultFxc is where the Windows 10 SDK installs the x64 effect compiler.
const DefaultFxc = `C:\Program Files (x86)\Windows Kits\10\bin\x64\fxc.exe`

// Fxc compiles HLSL to DXBC with the Direct3D effect compiler.
type Fxc struct {
	external
}

// NewFxc returns a DXBC producer running the fxc executable at bin.
func NewFxc(bin string, opts ...Option) *Fxc {
	return &Fxc{external: newExternal("fxc", bin, shader.FormatDXBC, fxcArgs, opts)}
}

// Compile implements Producer.
func (f *Fxc) Compile(task shader.Task, format shader.Format) ([]byte, error) {
	return f.compile(task, format)
}

// fxcArgs passes the profile token through unchanged; fxc expects the
// vs_5_0/ps_5_0 spelling itself.
func fxcArgs(task shader.Task, output string) []string {
	return []string{
		"/nologo",
		"/Fo", output,
		"/E", task.Entry,
		"/T", string(task.Profile),
		filepath.Clean(task.Source),
	}
}
