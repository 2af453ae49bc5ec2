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


package wordlist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jbeskow/signflash/core"
)

// Encode writes the registration statement for list to w. Loading the
// artifact appends the list to the client's window.WORDLISTS
// collection. A nil Phrases slice omits the phrases field entirely.
func Encode(w io.Writer, list *core.Wordlist) error {
	var b strings.Builder
	b.WriteString("(window.WORDLISTS = window.WORDLISTS || []).push({\n")
	fmt.Fprintf(&b, "  id: %s,\n", quoteJS(list.ID))
	fmt.Fprintf(&b, "  name: %s,\n", quoteJS(list.Name))

	b.WriteString("  words: [\n")
	for i, entry := range list.Words {
		fmt.Fprintf(&b, "    { word: %s, video: %s }%s\n",
			quoteJS(entry.Word), quoteJS(entry.Video), trailingComma(i, len(list.Words)))
	}

	if list.Phrases == nil {
		b.WriteString("  ]\n")
	} else {
		b.WriteString("  ],\n")
		b.WriteString("  phrases: [\n")
		for i, entry := range list.Phrases {
			fmt.Fprintf(&b, "    { word: %s, phrase: %s, video: %s }%s\n",
				quoteJS(entry.Word), quoteJS(entry.Phrase), quoteJS(entry.Video), trailingComma(i, len(list.Phrases)))
		}
		b.WriteString("  ]\n")
	}

	b.WriteString("});\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFile validates list and writes its artifact to <dir>/<id>.js,
// creating the directory when needed. The artifact is rendered in full
// before the file is written; a failed encode leaves no partial file.
// Returns the written path.
func WriteFile(dir string, list *core.Wordlist) (string, error) {
	if err := core.ValidateWordlist(list); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, list); err != nil {
		return "", err
	}

	path := filepath.Join(dir, list.ID+".js")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}
	return path, nil
}

// quoteJS renders s as a JSON string literal without HTML escaping,
// keeping Swedish text readable in the artifact.
func quoteJS(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s) // encoding a string cannot fail
	return strings.TrimSuffix(buf.String(), "\n")
}

func trailingComma(i, n int) string {
	if i < n-1 {
		return ","
	}
	return ""
}
