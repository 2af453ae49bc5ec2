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


package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"

	"github.com/jbeskow/signflash/ai"
)

// Annotator implements ai.Annotator using OpenAI-compatible chat APIs.
type Annotator struct {
	client llms.Model
	config *ai.Config
	logger *slog.Logger
}

// newAnnotator is an internal constructor that returns the concrete type.
func newAnnotator(config *ai.Config) (*Annotator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that
	// don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken("none"),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Annotator{
		client: client,
		config: config,
		logger: slog.Default().With("component", "openai-annotator"),
	}, nil
}

// NewAnnotator creates an annotator using the provided configuration.
//
// Returns ai.Annotator interface to enforce abstraction.
func NewAnnotator(config *ai.Config) (ai.Annotator, error) {
	return newAnnotator(config)
}

// Annotate marks the target word in phrase with a single model call.
// There is no retry; the caller treats any failure as fatal.
func (a *Annotator) Annotate(ctx context.Context, word, phrase string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	content := []llms.MessageContent{
		{
			Role: schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(annotationSystemPrompt),
			},
		},
		{
			Role: schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildAnnotationRequest(word, phrase)),
			},
		},
	}

	response, err := a.client.GenerateContent(ctx, content, llms.WithTemperature(a.config.Temperature))
	if err != nil {
		a.logger.Error("annotation request failed", "word", word, "err", err)
		return "", fmt.Errorf("annotate %q: %w", word, err)
	}
	if len(response.Choices) < 1 {
		return "", fmt.Errorf("annotate %q: %w", word, ai.ErrEmptyResponse)
	}

	marked := stripQuotes(strings.TrimSpace(response.Choices[0].Content))
	if marked == "" {
		return "", fmt.Errorf("annotate %q: %w", word, ai.ErrEmptyResponse)
	}

	a.logger.Debug("annotated phrase", "word", word, "phrase", phrase, "marked", marked)
	return marked, nil
}
