// Package testing provides test doubles shared by package tests.
package testing

import (
	"fmt"
	"testing"

	"github.com/Alia5/shaderembed/internal/shader"
)

// Call is one recorded Compile invocation.
type Call struct {
	Task   shader.Task
	Format shader.Format
}

// StubProducer stands in for the shader compilers. It returns Output for
// every call unless the (format, entry) pair is listed in Fail.
type StubProducer struct {
	t      *testing.T
	Output func(task shader.Task, format shader.Format) []byte
	Fail   map[string]error
	Calls  []Call
}

// NewStubProducer returns a producer that yields data for every task.
func NewStubProducer(t *testing.T, data []byte) *StubProducer {
	return &StubProducer{
		t:      t,
		Output: func(shader.Task, shader.Format) []byte { return append([]byte(nil), data...) },
		Fail:   map[string]error{},
	}
}

// FailOn makes Compile return a CompilationError with exit code 1 for the
// given format and entry point.
func (s *StubProducer) FailOn(format shader.Format, entry string) *StubProducer {
	s.Fail[failKey(format, entry)] = fmt.Errorf("stub compiler: exit status 1")
	return s
}

func (s *StubProducer) Compile(task shader.Task, format shader.Format) ([]byte, error) {
	s.t.Helper()
	s.Calls = append(s.Calls, Call{Task: task, Format: format})
	if err, ok := s.Fail[failKey(format, task.Entry)]; ok {
		return nil, &shader.CompilationError{Tool: "stub", Task: task, Format: format, ExitCode: 1, Err: err}
	}
	return s.Output(task, format), nil
}

func failKey(format shader.Format, entry string) string {
	return format.Tag() + "/" + entry
}
