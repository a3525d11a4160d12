package compiler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Alia5/shaderembed/internal/shader"
)

// CommandFunc builds the process for one compiler invocation. exec.Command
// is the default; tests substitute a fake process.
type CommandFunc func(name string, args ...string) *exec.Cmd

// Option configures an external compiler.
type Option func(*external)

// WithWorkDir sets the directory compiler output files are written to.
func WithWorkDir(dir string) Option {
	return func(e *external) { e.workDir = dir }
}

// WithStderr sets where compiler diagnostics go. Defaults to os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(e *external) { e.stderr = w }
}

// WithCommand replaces the process constructor.
func WithCommand(fn CommandFunc) Option {
	return func(e *external) { e.command = fn }
}

// WithLogger sets the logger used to echo command lines.
func WithLogger(logger *slog.Logger) Option {
	return func(e *external) { e.logger = logger }
}

// external runs a compiler that insists on writing its result to a file.
type external struct {
	tool    string
	bin     string
	format  shader.Format
	argv    func(task shader.Task, output string) []string
	workDir string
	stderr  io.Writer
	command CommandFunc
	logger  *slog.Logger
}

func newExternal(tool, bin string, format shader.Format, argv func(shader.Task, string) []string, opts []Option) external {
	e := external{
		tool:    tool,
		bin:     bin,
		format:  format,
		argv:    argv,
		workDir: os.TempDir(),
		stderr:  os.Stderr,
		command: exec.Command,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(&e)
	}
	return e
}

func (e *external) compile(task shader.Task, format shader.Format) ([]byte, error) {
	if format != e.format {
		return nil, &shader.CompilationError{
			Tool: e.tool, Task: task, Format: format, ExitCode: -1,
			Err: fmt.Errorf("%s only produces %s", e.tool, e.format),
		}
	}
	if _, err := os.Stat(task.Source); err != nil {
		return nil, &shader.FilesystemError{Op: "read shader source", Path: task.Source, Err: err}
	}

	output := filepath.Join(e.workDir, task.Entry+format.Ext())
	cmd := e.command(e.bin, e.argv(task, output)...)
	cmd.Stdout = nil
	cmd.Stderr = e.stderr

	e.logger.Info("Compiling shader", "tool", e.tool, "entry", task.Entry, "cmd", strings.Join(cmd.Args, " "))
	if err := cmd.Run(); err != nil {
		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		_ = os.Remove(output)
		return nil, &shader.CompilationError{Tool: e.tool, Task: task, Format: format, ExitCode: code, Err: err}
	}

	data, err := os.ReadFile(output)
	if err != nil {
		return nil, &shader.FilesystemError{Op: "read compiler output", Path: output, Err: err}
	}
	if err := os.Remove(output); err != nil {
		return nil, &shader.FilesystemError{Op: "remove compiler output", Path: output, Err: err}
	}
	e.logger.Debug("Compiled shader", "tool", e.tool, "entry", task.Entry, "bytes", len(data))
	return data, nil
}
