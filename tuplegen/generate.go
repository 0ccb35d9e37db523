// Package tuplegen generates the per-degree families of the tuple package:
// degree interfaces, views, concrete tuples, accessors, mappers, builders and
// the runtime length dispatch.
package tuplegen

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"text/template"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-tuple/logger"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl")) //nolint:gochecknoglobals

// OutputName maps a template name to the file it produces, e.g.
// "tuples.go.tmpl" to "tuples_gen.go".
func OutputName(templateName string) string {
	return strings.TrimSuffix(templateName, ".go.tmpl") + "_gen.go"
}

// rendered is the output of one template.
type rendered struct {
	name string
	src  []byte
}

// Render executes every template for cfg and returns the gofmt'ed sources keyed
// by output file name. Templates are rendered concurrently.
func Render(cfg Config) (map[string][]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	data := newTemplateData(cfg)
	all := templates.Templates()

	pool := pond.NewResultPool[rendered](min(len(all), runtime.GOMAXPROCS(0)))
	defer pool.StopAndWait()

	group := pool.NewGroup()

	for _, tmpl := range all {
		group.SubmitErr(func() (rendered, error) {
			return renderOne(tmpl, data)
		})
	}

	results, err := group.Wait()
	if err != nil {
		return nil, err
	}

	out := make(map[string][]byte, len(results))
	for _, result := range results {
		out[OutputName(result.name)] = result.src
	}

	return out, nil
}

func renderOne(tmpl *template.Template, data templateData) (rendered, error) {
	name := tmpl.Name()

	var buf bytes.Buffer

	if err := tmpl.Execute(&buf, data); err != nil {
		return rendered{}, logger.AnnotateError(fmt.Errorf("executing template: %w", err), "template", name)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return rendered{}, logger.AnnotateError(fmt.Errorf("formatting generated code: %w", err), "template", name)
	}

	return rendered{name: name, src: src}, nil
}

// Generate renders cfg into outDir and returns the names of the files it wrote.
// Files whose content is already up to date are left alone.
func Generate(ctx context.Context, cfg Config, outDir string) ([]string, error) {
	ctx = logger.With(ctx, "package", cfg.Package, "maxDegree", cfg.MaxDegree)
	log := logger.Get(ctx)

	files, err := Render(cfg)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}

	slices.Sort(names)

	var written []string

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		path := filepath.Join(outDir, name)

		current, err := os.ReadFile(path)
		if err == nil && bytes.Equal(current, files[name]) {
			log.Debug("generated file is up to date", "file", path)

			continue
		}

		if err := os.WriteFile(path, files[name], 0o644); err != nil { //nolint:gosec
			return written, logger.AnnotateError(fmt.Errorf("writing generated file: %w", err), "file", path)
		}

		log.Info("wrote generated file", "file", path, "bytes", len(files[name]))

		written = append(written, name)
	}

	return written, nil
}
