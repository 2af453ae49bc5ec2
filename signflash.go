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


package signflash

import (
	"context"
	"log/slog"
	"time"

	"github.com/jbeskow/signflash/ai"
	"github.com/jbeskow/signflash/ai/openai"
	"github.com/jbeskow/signflash/pipeline"
	"github.com/jbeskow/signflash/verify"
)

// Generator wires a configuration into ready-to-run pipelines.
type Generator struct {
	config    *Config
	prober    verify.Prober
	annotator ai.Annotator
	monitor   pipeline.Monitor
	logger    *slog.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*generatorOptions)

type generatorOptions struct {
	monitor pipeline.Monitor
	logger  *slog.Logger
}

// WithMonitor streams pipeline progress to monitor.
func WithMonitor(monitor pipeline.Monitor) GeneratorOption {
	return func(o *generatorOptions) {
		o.monitor = monitor
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) GeneratorOption {
	return func(o *generatorOptions) {
		o.logger = logger
	}
}

// NewGenerator creates a Generator from cfg. A nil cfg uses the
// defaults.
func NewGenerator(cfg *Config, opts ...GeneratorOption) (*Generator, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	options := &generatorOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	prober := verify.NewHTTPProber(
		verify.WithBaseURL(cfg.Probe.BaseURL),
		verify.WithTimeout(time.Duration(cfg.Probe.TimeoutSeconds)*time.Second),
		verify.WithRequestLimit(cfg.Probe.RequestsPerSecond),
		verify.WithLogger(options.logger),
	)

	annotator, err := openai.NewAnnotator(cfg.annotationConfig())
	if err != nil {
		return nil, err
	}

	return &Generator{
		config:    cfg,
		prober:    prober,
		annotator: annotator,
		monitor:   options.monitor,
		logger:    options.logger,
	}, nil
}

// Config returns the effective configuration.
func (g *Generator) Config() *Config {
	return g.config
}

// NewPipeline builds a pipeline wired with the generator's
// collaborators. Extra options apply on top and win.
func (g *Generator) NewPipeline(opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	base := []pipeline.Option{
		pipeline.WithProber(g.prober),
		pipeline.WithAnnotator(g.annotator),
		pipeline.WithLogger(g.logger),
	}
	if g.config.Probe.Workers > 0 {
		base = append(base, pipeline.WithWorkers(g.config.Probe.Workers))
	}
	if g.monitor != nil {
		base = append(base, pipeline.WithMonitor(g.monitor))
	}
	return pipeline.NewPipeline(append(base, opts...)...)
}

// Generate runs one pipeline request, filling empty request paths from
// the configuration.
func (g *Generator) Generate(ctx context.Context, req *pipeline.Request) (*pipeline.Result, error) {
	r := *req
	if r.Catalog == "" {
		r.Catalog = g.config.Paths.Catalog
	}
	if r.Frequency == "" {
		r.Frequency = g.config.Paths.Frequency
	}
	if r.OutputDir == "" {
		r.OutputDir = g.config.Paths.Wordlists
	}
	if r.WordlistDir == "" {
		r.WordlistDir = g.config.Paths.Wordlists
	}

	p, err := g.NewPipeline()
	if err != nil {
		return nil, err
	}
	return p.Run(ctx, &r)
}
