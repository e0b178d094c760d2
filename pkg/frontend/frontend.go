package frontend

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/rhino1998/sl/pkg/ast"
	"github.com/rhino1998/sl/pkg/lexer"
	"github.com/rhino1998/sl/pkg/parser"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	// Concurrency bounds how many files are parsed at once. Zero means
	// one per CPU.
	Concurrency int
}

func (c *Config) Validate(logger *slog.Logger) error {
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}

	if c.Concurrency == 0 {
		c.Concurrency = runtime.GOMAXPROCS(0)
		logger.Debug("defaulting concurrency", slog.Int("concurrency", c.Concurrency))
	}

	return nil
}

type file struct {
	name string
	src  io.Reader
}

// Unit is one successfully parsed file.
type Unit struct {
	File    string
	Program *ast.Program
}

// Frontend parses a set of source files into ASTs. Every file is parsed
// independently; a failure in one file does not stop the others.
type Frontend struct {
	logger *slog.Logger
	Config Config

	files []file
}

func New(logger *slog.Logger, config Config) (*Frontend, error) {
	err := config.Validate(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to validate frontend config: %w", err)
	}

	return &Frontend{
		logger: logger,
		Config: config,
	}, nil
}

func (f *Frontend) AddFile(name string, r io.Reader) {
	f.files = append(f.files, file{name: name, src: r})
}

// Parse parses every added file and returns the units in the order the files
// were added. Errors from individual files are wrapped in FileError and
// collected into an ErrorSet; the units of files that parsed are still
// returned alongside it. Files that have not started when ctx is cancelled
// are skipped.
func (f *Frontend) Parse(ctx context.Context) ([]Unit, error) {
	programs := make([]*ast.Program, len(f.files))
	errs := make([]error, len(f.files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.Config.Concurrency)

	for i, src := range f.files {
		g.Go(func() error {
			err := ctx.Err()
			if err != nil {
				errs[i] = FileError{File: src.name, Err: err}
				return nil
			}

			logger := f.logger.With(slog.String("file", src.name))
			logger.Debug("parsing file")

			prog, err := parser.New(logger, lexer.New(src.src)).Parse()
			if err != nil {
				logger.Warn("failed to parse file", slog.String("kind", parser.KindOf(err).String()), slog.Any("error", err))
				errs[i] = FileError{File: src.name, Err: err}
				return nil
			}

			programs[i] = prog
			return nil
		})
	}

	// workers never return errors; failures are recorded per file
	_ = g.Wait()

	errSet := newErrorSet()
	var units []Unit
	for i, src := range f.files {
		if errs[i] != nil {
			errSet.Add(errs[i])
			continue
		}

		units = append(units, Unit{File: src.name, Program: programs[i]})
	}

	return units, errSet.Defer(nil)
}
