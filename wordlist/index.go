package wordlist

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IndexFilename is the aggregate artifact the client loads to get
// every wordlist at once. The rebuild never includes it in itself.
const IndexFilename = "all.js"

const indexHeader = "// Auto-generated — do not edit. Run: signflash rebuild\n"

// RebuildIndex regenerates the all.js index from every artifact in
// dir. Artifacts are concatenated in filename order, each preceded by
// a comment naming its source file, and the index is overwritten in
// full, so the result depends only on the directory contents. Returns
// the filenames that went in.
func RebuildIndex(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read wordlist directory: %w", err)
	}

	// os.ReadDir returns entries already sorted by filename.
	var names []string
	for _, entry := range dirEntries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".js") || name == IndexFilename {
			continue
		}
		names = append(names, name)
	}

	var out bytes.Buffer
	out.WriteString(indexHeader)
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read artifact %s: %w", name, err)
		}
		fmt.Fprintf(&out, "\n// --- %s ---\n", name)
		out.Write(data)
	}

	if err := os.WriteFile(filepath.Join(dir, IndexFilename), out.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write index: %w", err)
	}
	return names, nil
}
