// Command tuplegen writes the generated files of the tuple package.
//
// Usage:
//
//	tuplegen [-config families.yaml] [-out dir]
//
// Without -config the embedded default (degrees 1 to 20) is used.
package main

import (
	"context"
	"flag"

	"github.com/amp-labs/amp-tuple/logger"
	"github.com/amp-labs/amp-tuple/script"
	"github.com/amp-labs/amp-tuple/tuplegen"
)

func main() {
	flags := flag.NewFlagSet("tuplegen", flag.ContinueOnError)
	configPath := flags.String("config", "", "path to a YAML generator config (default: embedded config)")
	outDir := flags.String("out", ".", "directory the generated files are written to")

	script.New("tuplegen", script.WithFlags(flags)).Run(func(ctx context.Context) error {
		cfg := tuplegen.DefaultConfig()

		if *configPath != "" {
			loaded, err := tuplegen.LoadConfig(*configPath)
			if err != nil {
				return script.ExitWithError(err)
			}

			cfg = loaded
		}

		written, err := tuplegen.Generate(ctx, cfg, *outDir)
		if err != nil {
			return script.ExitWithError(err)
		}

		logger.Get(ctx).Info("generation complete", "written", len(written), "out", *outDir)

		return nil
	})
}
