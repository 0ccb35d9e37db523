package tuplegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/amp-labs/amp-tuple/logger"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var outputFiles = []string{ //nolint:gochecknoglobals
	"accessors_gen.go",
	"array_gen.go",
	"builders_gen.go",
	"degrees_gen.go",
	"mappers_gen.go",
	"tuples_gen.go",
}

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Package = "small"
	cfg.MaxDegree = 3

	return cfg
}

// declared returns the names of every top-level function and type in src.
func declared(t *testing.T, name string, src []byte) []string {
	t.Helper()

	file, err := parser.ParseFile(token.NewFileSet(), name, src, parser.ParseComments)
	require.NoError(t, err)

	var names []string

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				names = append(names, d.Name.Name)
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					names = append(names, ts.Name.Name)
				}
			}
		}
	}

	return names
}

func TestOutputName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "tuples_gen.go", OutputName("tuples.go.tmpl"))
	assert.Equal(t, "degrees_gen.go", OutputName("degrees.go.tmpl"))
}

func TestRender(t *testing.T) {
	t.Parallel()

	files, err := Render(smallConfig())
	require.NoError(t, err)

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}

	slices.Sort(names)
	assert.Equal(t, outputFiles, names)

	for name, src := range files {
		assert.True(t, strings.HasPrefix(string(src), "// Code generated by tuplegen. DO NOT EDIT.\n"), name)
		assert.Contains(t, string(src), "\npackage small\n", name)
	}

	tests := []struct {
		file    string
		present []string
		absent  []string
	}{
		{
			file:    "degrees_gen.go",
			present: []string{"Single", "Pair", "Triple", "NullableTriple", "View3", "NullableView1"},
			absent:  []string{"Quad", "View4"},
		},
		{
			file:    "tuples_gen.go",
			present: []string{"Tuple1", "Of1", "Tuple3", "Of3", "NullableTuple3", "NullableOf3"},
			absent:  []string{"Tuple4", "Of4"},
		},
		{
			file:    "accessors_gen.go",
			present: []string{"FirstAccessor", "ThirdAccessor", "TripleThirdGetter", "NullablePairSecondGetter"},
			absent:  []string{"FourthAccessor", "PairThirdGetter"},
		},
		{
			file:    "mappers_gen.go",
			present: []string{"Mapper1", "MapperOf3", "ToTuple3", "NullableMapper3", "NullableMapperOf2"},
			absent:  []string{"Mapper4", "ToTuple4"},
		},
		{
			file:    "builders_gen.go",
			present: []string{"SingleBuilder", "TripleBuilder", "AddFirst", "AddThird"},
			absent:  []string{"QuadBuilder", "AddFourth"},
		},
		{
			file:    "array_gen.go",
			present: []string{"OfArray", "NullableOfArray"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			t.Parallel()

			names := declared(t, tt.file, files[tt.file])

			for _, name := range tt.present {
				assert.Contains(t, names, name)
			}

			for _, name := range tt.absent {
				assert.NotContains(t, names, name)
			}
		})
	}
}

func TestRenderDefaultConfig(t *testing.T) {
	t.Parallel()

	files, err := Render(DefaultConfig())
	require.NoError(t, err)

	src := string(files["degrees_gen.go"])
	assert.Contains(t, src, "const MaxDegree = 20")
	assert.Contains(t, src, "type Vigintuple[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15, T16, T17, T18, T19 any] interface {") //nolint:lll

	builders := declared(t, "builders_gen.go", files["builders_gen.go"])
	assert.Contains(t, builders, "AddTwentieth")
	assert.NotContains(t, builders, "AddTwentyFirst")
}

func TestRenderInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := smallConfig()
	cfg.MaxDegree = 0

	_, err := Render(cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	ctx := logger.WithLogger(t.Context(), slogt.New(t))
	dir := t.TempDir()

	written, err := Generate(ctx, smallConfig(), dir)
	require.NoError(t, err)
	assert.Equal(t, outputFiles, written)

	for _, name := range outputFiles {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
	}

	// A second run finds nothing to do.
	written, err = Generate(ctx, smallConfig(), dir)
	require.NoError(t, err)
	assert.Empty(t, written)

	// A stale file is rewritten, and only that one.
	stale := filepath.Join(dir, "array_gen.go")
	require.NoError(t, os.WriteFile(stale, []byte("package small\n"), 0o600))

	written, err = Generate(ctx, smallConfig(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"array_gen.go"}, written)
}

func TestGenerateMissingDirectory(t *testing.T) {
	t.Parallel()

	ctx := logger.WithLogger(t.Context(), slogt.New(t))

	_, err := Generate(ctx, smallConfig(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	attrs := logger.Attrs(err)
	require.Len(t, attrs, 1)
	assert.Equal(t, "file", attrs[0].Key)
}
