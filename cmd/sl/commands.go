package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rhino1998/sl/pkg/ast"
	"github.com/rhino1998/sl/pkg/callgraph"
	"github.com/rhino1998/sl/pkg/frontend"
	"github.com/rhino1998/sl/pkg/lexer"
	"github.com/rhino1998/sl/pkg/parser"
)

func printTokens(w io.Writer, r io.Reader) error {
	for tok, err := range lexer.New(r).Tokens() {
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(w, "%s\t%s\t%q\n", tok.Pos, tok.Kind, tok.Text)
		if err != nil {
			return err
		}
	}

	return nil
}

func printTree(w io.Writer, logger *slog.Logger, r io.Reader, format string) error {
	prog, err := parser.ParseReader(logger, r)
	if err != nil {
		return err
	}

	switch format {
	case "tree":
		return ast.Fprint(w, prog)
	case "yaml":
		return ast.FprintYAML(w, prog)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func formatSource(w io.Writer, logger *slog.Logger, r io.Reader) error {
	prog, err := parser.ParseReader(logger, r)
	if err != nil {
		return err
	}

	return ast.Format(w, prog)
}

func printCalls(w io.Writer, logger *slog.Logger, r io.Reader) error {
	prog, err := parser.ParseReader(logger, r)
	if err != nil {
		return err
	}

	g := callgraph.Build(prog)
	ordered, recursive, err := g.Order()
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, name := range ordered {
		fmt.Fprintln(&b, name)
	}

	if len(recursive) > 0 {
		fmt.Fprintf(&b, "recursive: %s\n", strings.Join(recursive, ", "))
	}

	undefined := g.Undefined()
	for _, name := range slices.Sorted(maps.Keys(undefined)) {
		fmt.Fprintf(&b, "undefined: %s (called from %s)\n", name, strings.Join(undefined[name], ", "))
	}

	_, err = io.WriteString(w, b.String())
	return err
}

// sourceFiles expands each path into the files it names. Directories
// contribute their *.sl files.
func sourceFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		stat, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}

		if !stat.IsDir() {
			files = append(files, path)
			continue
		}

		matches, err := filepath.Glob(filepath.Join(path, "*.sl"))
		if err != nil {
			return nil, fmt.Errorf("failed to find sl files in directory: %w", err)
		}

		files = append(files, matches...)
	}

	return files, nil
}

// check parses every file and returns the number that parsed. Parse failures
// are returned together as a frontend.ErrorSet.
func check(ctx context.Context, logger *slog.Logger, config Config, paths []string) (int, error) {
	files, err := sourceFiles(paths)
	if err != nil {
		return 0, err
	}

	fe, err := frontend.New(logger, frontend.Config{Concurrency: config.Jobs})
	if err != nil {
		return 0, fmt.Errorf("failed to initialize frontend: %w", err)
	}

	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return 0, fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close()

		fe.AddFile(file, f)
	}

	units, err := fe.Parse(ctx)
	for _, unit := range units {
		undefined := callgraph.Build(unit.Program).Undefined()
		for _, name := range slices.Sorted(maps.Keys(undefined)) {
			logger.Info("call to undefined function",
				slog.String("file", unit.File),
				slog.String("function", name),
				slog.String("callers", strings.Join(undefined[name], ",")),
			)
		}
	}

	return len(units), err
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return f, nil
}
