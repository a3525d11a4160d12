// Package generator drives shader compilation and collects the embedded
// symbols into one header/source pair.
package generator

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Alia5/shaderembed/internal/bin2cpp"
	"github.com/Alia5/shaderembed/internal/compiler"
	"github.com/Alia5/shaderembed/internal/log"
	"github.com/Alia5/shaderembed/internal/shader"
)

type Generator struct {
	producer  compiler.Producer
	formats   []shader.Format
	namespace string
	include   string
	logger    *slog.Logger
	dumper    log.BlobDumper
}

// Option configures a Generator.
type Option func(*Generator)

// WithNamespace sets the C++ namespace wrapping the symbols.
func WithNamespace(ns string) Option {
	return func(g *Generator) { g.namespace = ns }
}

// WithInclude sets the header path the generated source includes.
func WithInclude(include string) Option {
	return func(g *Generator) { g.include = include }
}

// WithFormats overrides the formats compiled, in pass order.
func WithFormats(formats ...shader.Format) Option {
	return func(g *Generator) { g.formats = formats }
}

// WithBlobDumper records every compiled binary.
func WithBlobDumper(d log.BlobDumper) Option {
	return func(g *Generator) { g.dumper = d }
}

func New(producer compiler.Producer, logger *slog.Logger, opts ...Option) *Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	g := &Generator{
		producer:  producer,
		formats:   shader.Formats,
		namespace: bin2cpp.DefaultNamespace,
		include:   DefaultInclude,
		logger:    logger,
		dumper:    log.NewBlobDumper(nil),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Run compiles every task once per format, one full pass per format, and
// returns the accumulated output. The first failure aborts the run and
// nothing accumulated so far is returned.
func (g *Generator) Run(tasks []shader.Task) (*bin2cpp.Output, error) {
	if err := shader.Validate(tasks); err != nil {
		return nil, err
	}

	out := bin2cpp.NewOutput(g.namespace, g.include)
	for _, format := range g.formats {
		g.logger.Info("Compiling shaders", "format", format, "tasks", len(tasks))
		for _, task := range tasks {
			data, err := g.producer.Compile(task, format)
			if err != nil {
				return nil, fmt.Errorf("%s pass: %w", format, err)
			}
			prefix := shader.SymbolPrefix(format, task.Entry)
			g.dumper.Dump(prefix, data)
			out.Add(bin2cpp.Embed(data, prefix))
			g.logger.Debug("Embedded shader", "symbol", bin2cpp.DataName(prefix), "bytes", len(data))
		}
	}

	g.logger.Info("Shader embedding complete", "symbols", len(out.Symbols))
	return out, nil
}
