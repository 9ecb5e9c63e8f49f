// Package wordlist loads the word inputs for the $word dimension.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Builtin returns the built-in word fallback used when no wordlist file
// is supplied. Short on purpose: these are the names backup archives
// actually get in the wild.
func Builtin() []string {
	return []string{
		"web", "fullbackup", "backup", "data", "site",
		"assets", "logs", "debug", "install",
	}
}

// Load reads words from a file, one per line, skipping blank lines and
// '#' comments, and deduplicates while preserving first-seen order.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: opening %s: %w", path, err)
	}
	defer file.Close()

	words, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("wordlist: reading %s: %w", path, err)
	}
	return words, nil
}

// Read collects words from r with the same line rules as Load.
func Read(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	// Room for long lines; generated lists can carry full paths.
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var words []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return Dedupe(words), nil
}

// Dedupe removes duplicates preserving first-seen order.
func Dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
