package frontend_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/rhino1998/sl/pkg/frontend"
	"github.com/rhino1998/sl/pkg/lexer"
	"github.com/rhino1998/sl/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidConfig(t *testing.T) {
	r := require.New(t)

	_, err := frontend.New(slogt.New(t), frontend.Config{Concurrency: -1})
	r.ErrorContains(err, "concurrency must not be negative")
}

func TestNew_DefaultConcurrency(t *testing.T) {
	r := require.New(t)

	f, err := frontend.New(slogt.New(t), frontend.Config{})
	r.NoError(err)
	r.Positive(f.Config.Concurrency)
}

func TestParse(t *testing.T) {
	r := require.New(t)

	f, err := frontend.New(slogt.New(t), frontend.Config{Concurrency: 2})
	r.NoError(err)

	for i := range 8 {
		f.AddFile(fmt.Sprintf("f%d.sl", i), strings.NewReader(fmt.Sprintf("int x%d;", i)))
	}

	units, err := f.Parse(context.Background())
	r.NoError(err)
	r.Len(units, 8)

	for i, unit := range units {
		r.Equal(fmt.Sprintf("f%d.sl", i), unit.File)
		r.Len(unit.Program.Stmts, 1)
	}
}

func TestParse_Errors(t *testing.T) {
	r := require.New(t)

	f, err := frontend.New(slogt.New(t), frontend.Config{Concurrency: 4})
	r.NoError(err)

	f.AddFile("good.sl", strings.NewReader("x = 1;"))
	f.AddFile("syntax.sl", strings.NewReader("x = 1"))
	f.AddFile("lexical.sl", strings.NewReader("x = \"oops;"))
	f.AddFile("empty.sl", strings.NewReader(""))

	units, err := f.Parse(context.Background())
	r.Error(err)
	r.Len(units, 1)
	r.Equal("good.sl", units[0].File)

	var errSet *frontend.ErrorSet
	r.ErrorAs(err, &errSet)
	r.Len(errSet.Errs, 3)

	var files []string
	for _, e := range errSet.Errs {
		var fileErr frontend.FileError
		r.ErrorAs(e, &fileErr)
		files = append(files, fileErr.File)
	}
	r.Equal([]string{"syntax.sl", "lexical.sl", "empty.sl"}, files)

	r.Equal(parser.SyntaxErrorKind, parser.KindOf(errSet.Errs[0]))
	r.Equal(parser.LexicalError, parser.KindOf(errSet.Errs[1]))

	pos, ok := errSet.Errs[0].(frontend.FileError).Pos()
	r.True(ok)
	r.Equal(lexer.Position{Line: 1, Column: 6}, pos)
	r.Equal("syntax.sl: syntax error at 1:6: expected ';' after statement, found end of input", errSet.Errs[0].Error())
	r.True(strings.HasPrefix(errSet.Errs[1].Error(), "lexical.sl: lexical error at 1:11: "))
}

func TestParse_Cancelled(t *testing.T) {
	r := require.New(t)

	f, err := frontend.New(slogt.New(t), frontend.Config{Concurrency: 1})
	r.NoError(err)

	f.AddFile("a.sl", strings.NewReader("x = 1;"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	units, err := f.Parse(ctx)
	r.Empty(units)
	r.True(errors.Is(err, context.Canceled))
}

func TestErrorSet_Defer(t *testing.T) {
	r := require.New(t)

	var set frontend.ErrorSet
	r.NoError(set.Defer(nil))

	errA := errors.New("a")
	err := set.Defer(errA)
	r.ErrorIs(err, errA)

	var outer frontend.ErrorSet
	outer.Add(err)
	outer.Add(errors.New("b"))
	r.Len(outer.Errs, 2)
	r.Equal("a\nb", outer.Error())
}
