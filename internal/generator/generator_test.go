package generator_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/shaderembed/internal/generator"
	"github.com/Alia5/shaderembed/internal/shader"
	stub "github.com/Alia5/shaderembed/internal/testing"
)

var psMainTask = shader.Task{Source: "x.shader", Entry: "psMain", Profile: shader.ProfilePixel5}

func TestRunSingleTask(t *testing.T) {
	p := stub.NewStubProducer(t, []byte{0x01, 0x02, 0x03})
	out, err := generator.New(p, nil).Run([]shader.Task{psMainTask})
	require.NoError(t, err)

	header := out.Header()
	source := out.Source()

	assert.Equal(t, "#pragma once\n"+
		"// clang-format off\n"+
		"namespace Rush\n"+
		"{\n"+
		"extern const unsigned char SPV_psMain_data[];\n"+
		"extern const size_t SPV_psMain_size;\n"+
		"extern const unsigned char DXBC_psMain_data[];\n"+
		"extern const size_t DXBC_psMain_size;\n"+
		"}", header)

	for _, tag := range []string{"SPV", "DXBC"} {
		assert.Contains(t, source, "const unsigned char "+tag+"_psMain_data[] = {\n\t0x01, 0x02, 0x03\n};")
		assert.Contains(t, source, "const size_t "+tag+"_psMain_size = sizeof("+tag+"_psMain_data);")
	}
	assert.Len(t, out.Symbols, 2)
	assert.Contains(t, source, "#include \"GfxEmbeddedShaders.h\"\n// clang-format off\nnamespace Rush\n{\n")
}

func TestRunPassOrder(t *testing.T) {
	p := stub.NewStubProducer(t, []byte{0xAA})
	tasks := shader.DefaultTasks()
	_, err := generator.New(p, nil).Run(tasks)
	require.NoError(t, err)

	require.Len(t, p.Calls, 2*len(tasks))
	for i, call := range p.Calls {
		wantFormat := shader.FormatSPV
		if i >= len(tasks) {
			wantFormat = shader.FormatDXBC
		}
		assert.Equal(t, wantFormat, call.Format, "call %d", i)
		assert.Equal(t, tasks[i%len(tasks)], call.Task, "call %d", i)
	}
}

func TestRunDeterministic(t *testing.T) {
	run := func() (string, string) {
		p := stub.NewStubProducer(t, nil)
		p.Output = func(task shader.Task, format shader.Format) []byte {
			return []byte(format.Tag() + task.Entry)
		}
		out, err := generator.New(p, nil).Run(shader.DefaultTasks())
		require.NoError(t, err)
		return out.Header(), out.Source()
	}
	h1, s1 := run()
	h2, s2 := run()
	assert.Equal(t, h1, h2)
	assert.Equal(t, s1, s2)
}

func TestRunFailsFast(t *testing.T) {
	tasks := shader.DefaultTasks()
	p := stub.NewStubProducer(t, []byte{0x01}).FailOn(shader.FormatSPV, tasks[1].Entry)

	out, err := generator.New(p, nil).Run(tasks)
	assert.Nil(t, out)
	var ce *shader.CompilationError
	require.True(t, errors.As(err, &ce), "expected CompilationError, got %v", err)
	assert.Equal(t, tasks[1].Entry, ce.Task.Entry)
	assert.Len(t, p.Calls, 2, "no task after the failing one may run")
}

func TestRunFailureLeavesFilesUntouched(t *testing.T) {
	dir := t.TempDir()
	header := filepath.Join(dir, "GfxEmbeddedShaders.h")
	source := filepath.Join(dir, "GfxEmbeddedShaders.cpp")
	require.NoError(t, os.WriteFile(header, []byte("old header"), 0o644))
	require.NoError(t, os.WriteFile(source, []byte("old source"), 0o644))

	p := stub.NewStubProducer(t, []byte{0x01}).FailOn(shader.FormatDXBC, "vsMain2D")
	out, err := generator.New(p, nil).Run(shader.DefaultTasks())
	require.Error(t, err)
	require.Nil(t, out)

	h, _ := os.ReadFile(header)
	s, _ := os.ReadFile(source)
	assert.Equal(t, "old header", string(h))
	assert.Equal(t, "old source", string(s))
}

func TestRunRejectsInvalidTasks(t *testing.T) {
	p := stub.NewStubProducer(t, []byte{0x01})
	_, err := generator.New(p, nil).Run([]shader.Task{psMainTask, psMainTask})
	assert.ErrorContains(t, err, "duplicate entry point")
	assert.Empty(t, p.Calls)
}

func TestRunOptions(t *testing.T) {
	p := stub.NewStubProducer(t, []byte{0x01})
	out, err := generator.New(p, nil,
		generator.WithNamespace("Gfx"),
		generator.WithInclude("gfx/shaders.h"),
		generator.WithFormats(shader.FormatDXBC),
	).Run([]shader.Task{psMainTask})
	require.NoError(t, err)

	assert.Contains(t, out.Header(), "namespace Gfx\n")
	assert.Contains(t, out.Source(), "#include \"gfx/shaders.h\"\n")
	assert.NotContains(t, out.Header(), "SPV_")
	assert.Len(t, out.Symbols, 1)
}
