// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/jbeskow/signflash"
	"github.com/jbeskow/signflash/catalog"
	"github.com/jbeskow/signflash/pipeline"
	"github.com/jbeskow/signflash/selection"
	"github.com/jbeskow/signflash/wordlist"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "signflash",
		Usage: "Build study-list artifacts for the sign language flashcards",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to TOML configuration file",
				Value:   "signflash.toml",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "generate",
				Usage:  "Generate a wordlist artifact from the catalog",
				Action: generateCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Wordlist identifier, also the artifact filename",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Wordlist display name",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "category",
						Usage: "Comma-separated category slugs ('bokstavering' selects fingerspelled-only entries)",
					},
					&cli.StringFlag{
						Name:  "wordfile",
						Usage: "File with one word per line",
					},
					&cli.IntFlag{
						Name:  "max",
						Usage: "Maximum number of words",
						Value: selection.DefaultMaxWords,
					},
					&cli.IntFlag{
						Name:  "chunk-size",
						Usage: "Split the output into balanced chunks of at most this many words",
					},
					&cli.BoolFlag{
						Name:  "no-verify",
						Usage: "Skip remote video verification",
					},
					&cli.BoolFlag{
						Name:  "phrases",
						Usage: "Include example phrases in the artifact",
					},
					&cli.BoolFlag{
						Name:  "annotate",
						Usage: "Mark phrases through the annotation service (implies --phrases)",
					},
					&cli.StringFlag{
						Name:  "catalog",
						Usage: "Catalog CSV path (default from config)",
					},
					&cli.StringFlag{
						Name:  "freq",
						Usage: "Frequency corpus path (default from config)",
					},
					&cli.StringFlag{
						Name:  "output-dir",
						Usage: "Output directory (default from config)",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent verification probes (default from config)",
					},
				},
			},
			{
				Name:   "categories",
				Usage:  "List catalog categories with usable sign counts",
				Action: categoriesCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "catalog",
						Usage: "Catalog CSV path (default from config)",
					},
				},
			},
			{
				Name:   "rebuild",
				Usage:  "Rebuild the all.js index from the wordlist directory",
				Action: rebuildCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "output-dir",
						Usage: "Wordlist directory (default from config)",
					},
				},
			},
		},
	}
}

func generateCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := signflash.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("workers") {
		cfg.Probe.Workers = c.Int("workers")
	}

	generator, err := signflash.NewGenerator(cfg,
		signflash.WithMonitor(newConsoleMonitor(os.Stdout)))
	if err != nil {
		return err
	}

	var slugs []string
	if categories := c.String("category"); categories != "" {
		slugs = strings.Split(categories, ",")
	}

	result, err := generator.Generate(ctx, &pipeline.Request{
		ID:          c.String("id"),
		Name:        c.String("name"),
		Slugs:       slugs,
		WordFile:    c.String("wordfile"),
		MaxWords:    c.Int("max"),
		ChunkSize:   c.Int("chunk-size"),
		SkipVerify:  c.Bool("no-verify"),
		WithPhrases: c.Bool("phrases") || c.Bool("annotate"),
		Annotate:    c.Bool("annotate"),
		Catalog:     c.String("catalog"),
		Frequency:   c.String("freq"),
		OutputDir:   c.String("output-dir"),
	})
	if result != nil {
		printWarnings(os.Stdout, result.Warnings)
	}
	return err
}

func categoriesCommand(c *cli.Context) error {
	cfg, err := signflash.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	path := c.String("catalog")
	if path == "" {
		path = cfg.Paths.Catalog
	}

	signs, err := catalog.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Slug", "Category", "Signs"})
	for _, count := range catalog.Categories(signs) {
		t.AppendRow(table.Row{count.Slug, count.Label, count.Signs})
	}
	t.Render()
	return nil
}

func rebuildCommand(c *cli.Context) error {
	cfg, err := signflash.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	dir := c.String("output-dir")
	if dir == "" {
		dir = cfg.Paths.Wordlists
	}

	files, err := wordlist.RebuildIndex(dir)
	if err != nil {
		return err
	}
	fmt.Printf("Rebuilt %s (%d wordlists: %s)\n",
		filepath.Join(dir, wordlist.IndexFilename), len(files), strings.Join(files, ", "))
	return nil
}

// printWarnings prints the batched warning block after the run, the
// way the interactive output ends.
func printWarnings(out io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintf(out, "\nWarnings (%d):\n", len(warnings))
	for _, w := range warnings {
		fmt.Fprintf(out, "  %s\n", w)
	}
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
