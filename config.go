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
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jbeskow/signflash/ai"
	"github.com/jbeskow/signflash/verify"
)

// Config is the on-disk configuration, read from a TOML file. Every
// field has a default; the file only needs the values it changes.
type Config struct {
	Paths      PathsConfig      `toml:"paths"`
	Probe      ProbeConfig      `toml:"probe"`
	Annotation AnnotationConfig `toml:"annotation"`
}

// PathsConfig names the default input and output locations.
type PathsConfig struct {
	Catalog   string `toml:"catalog"`
	Frequency string `toml:"frequency"`
	Wordlists string `toml:"wordlists"`
}

// ProbeConfig tunes the video existence probe.
type ProbeConfig struct {
	BaseURL           string  `toml:"base_url"`
	TimeoutSeconds    int     `toml:"timeout_seconds"`
	Workers           int     `toml:"workers"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// AnnotationConfig tunes the external annotation service.
type AnnotationConfig struct {
	Host           string  `toml:"host"`
	Model          string  `toml:"model"`
	Temperature    float64 `toml:"temperature"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
}

// DefaultConfig returns the configuration used when no file overrides
// it.
func DefaultConfig() *Config {
	annotation := ai.DefaultConfig()
	return &Config{
		Paths: PathsConfig{
			Catalog:   "sign_data.csv",
			Frequency: "stats_PAROLE.txt",
			Wordlists: "wordlists",
		},
		Probe: ProbeConfig{
			BaseURL:           verify.DefaultBaseURL,
			TimeoutSeconds:    int(verify.DefaultTimeout / time.Second),
			Workers:           verify.DefaultWorkers,
			RequestsPerSecond: verify.DefaultRequestsPerSecond,
		},
		Annotation: AnnotationConfig{
			Host:           annotation.Host,
			Model:          annotation.Model,
			Temperature:    annotation.Temperature,
			TimeoutSeconds: int(annotation.Timeout / time.Second),
		},
	}
}

// LoadConfig decodes the TOML file at path over the defaults. An empty
// path or a missing file leaves the defaults standing.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// annotationConfig builds the annotation service settings from the
// file values.
func (c *Config) annotationConfig() *ai.Config {
	return ai.NewConfig(
		ai.WithHost(c.Annotation.Host),
		ai.WithModel(c.Annotation.Model),
		ai.WithTemperature(c.Annotation.Temperature),
		ai.WithTimeout(time.Duration(c.Annotation.TimeoutSeconds)*time.Second),
	)
}
