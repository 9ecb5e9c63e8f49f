// Package input collects the target URLs to generate against, from
// flags, a list file, or a stdin pipe.
package input

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"strings"
)

// TargetSource consolidates all target input methods.
type TargetSource struct {
	URLs     StringSliceFlag // from -u flags
	ListFile string          // from -list flag
	Stdin    bool            // read piped stdin when present
}

// Targets returns the normalized, deduplicated target list. Each URL
// is reduced to scheme+host+path: query strings and fragments never
// influence generation and would leak into joined output otherwise.
func (ts *TargetSource) Targets() ([]string, error) {
	var targets []string
	seen := make(map[string]bool)

	add := func(raw string) {
		t := Normalize(raw)
		if t == "" {
			return
		}
		if !seen[t] {
			seen[t] = true
			targets = append(targets, t)
		}
	}

	for _, u := range ts.URLs {
		add(u)
	}

	if ts.ListFile != "" {
		lines, err := readLines(ts.ListFile)
		if err != nil {
			return nil, fmt.Errorf("input: reading %s: %w", ts.ListFile, err)
		}
		for _, line := range lines {
			add(line)
		}
	}

	if ts.Stdin {
		lines, err := readStdin()
		if err != nil {
			return nil, fmt.Errorf("input: reading stdin: %w", err)
		}
		for _, line := range lines {
			add(line)
		}
	}

	return targets, nil
}

// Normalize trims the line, skips blanks and '#' comments, defaults the
// scheme to https, and strips everything after the path. Lines that do
// not parse as URLs are kept as-is after trimming.
func Normalize(raw string) string {
	t := strings.TrimSpace(raw)
	if t == "" || strings.HasPrefix(t, "#") {
		return ""
	}
	if !strings.HasPrefix(t, "http://") && !strings.HasPrefix(t, "https://") {
		t = "https://" + t
	}
	u, err := url.Parse(t)
	if err != nil {
		return strings.TrimSpace(raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	u.RawFragment = ""
	return u.String()
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func readStdin() ([]string, error) {
	stat, err := os.Stdin.Stat()
	if err != nil || (stat.Mode()&os.ModeCharDevice) != 0 {
		// Not a pipe.
		return nil, nil
	}

	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
