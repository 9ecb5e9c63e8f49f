// Package runner drives the generation pipeline: decompose each target
// URL, format the templates against it, expand the combinations, and
// accumulate the per-category result sets across all targets.
package runner

import (
	"github.com/fback/fback/pkg/expand"
	"github.com/fback/fback/pkg/urlparts"
)

// Result categories.
const (
	CategoryPatterns    = "patterns"
	CategoryDateFormats = "date-formats"
)

// Options carries the parsed input lists for one run.
type Options struct {
	Patterns      []string // pattern templates
	DateTemplates []string // date-format templates, used in date mode
	DateMode      bool

	Words      []string
	Extensions []string
	Numbers    []string

	Years  []string
	Months []string
	Days   []string
}

// Result maps category name to the set of generated strings.
type Result map[string]expand.Results

// Run generates the result sets for all targets. The patterns category
// is always present; date-formats only in date mode.
func Run(targets []string, opts Options) Result {
	res := Result{CategoryPatterns: make(expand.Results)}
	if opts.DateMode {
		res[CategoryDateFormats] = make(expand.Results)
	}

	for _, target := range targets {
		parts := urlparts.Parse(target)

		formatted := expand.Format(parts, opts.Patterns)
		expand.PatternsFunc(formatted, opts.Words, opts.Extensions, opts.Numbers,
			res[CategoryPatterns].Add)

		if opts.DateMode {
			dated := expand.Format(parts, opts.DateTemplates)
			expand.DateFormatsFunc(dated, opts.Words, opts.Extensions, opts.Numbers,
				opts.Years, opts.Months, opts.Days,
				res[CategoryDateFormats].Add)
		}
	}

	return res
}
