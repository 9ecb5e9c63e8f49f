// Package templates holds the pattern template library: the built-in
// defaults and loading of user-supplied sets from JSON or YAML files.
//
// Templates are configuration, not code: unknown placeholder tokens are
// not an error here, they simply never survive the combinator's
// validity filter.
package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fback/fback/pkg/jsonutil"
)

// Set is a template library keyed by category.
type Set struct {
	Patterns    []string `json:"patterns" yaml:"patterns"`
	DateFormats []string `json:"date-formats" yaml:"date-formats"`
}

// Default returns the built-in template library.
func Default() Set {
	return Set{
		Patterns: []string{
			"$domain_name.$ext",
			"$full_domain.$ext",
			"$subdomain.$domain_name.$ext",
			"$full_domain$num.$ext",
			"$domain_name$num.$ext",
			"$subdomain.$ext",
			"$file_name.$ext",
			"$file_name~",
			"$file_name.$num",
			"$file_name.$ext.$num",
			"$full_path.$ext",
			".$file_name",
			".$file_name.$num",
			".$file_name.$ext.$num",
			".$domain_name.$ext",
			".$file_name.$ext",
			"$full_path~",
			"$path/.$file_name.$ext",
			"$word.$ext",
			"$path/$word.$ext",
			"$path/$word",
		},
		DateFormats: []string{
			"$domain_name.%y.$ext",
			"$domain_name.%y-%m-%d.$ext",
			"$full_domain.%y-%m-%d.$ext",
			"$full_domain.%y%m%d.$ext",
			"$path/%y-%m-%d.$ext",
		},
	}
}

// Load reads a template set from path. The format follows the file
// extension: .yaml/.yml parses as YAML, anything else as JSON.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("templates: reading %s: %w", path, err)
	}

	var set Set
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &set); err != nil {
			return Set{}, fmt.Errorf("templates: parsing %s: %w", path, err)
		}
	default:
		if err := jsonutil.Unmarshal(data, &set); err != nil {
			return Set{}, fmt.Errorf("templates: parsing %s: %w", path, err)
		}
	}
	return set, nil
}
