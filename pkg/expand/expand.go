// Package expand is the template expansion engine. Format substitutes
// URL-derived placeholders into templates; Patterns and DateFormats
// expand the remaining word/extension/number/date placeholders as a
// Cartesian product and keep only fully resolved strings.
//
// Substitution is first-match literal text replacement, not a template
// grammar: a token with no matching value simply stays in the string and
// the validity filter drops the combination later. That tolerance is the
// point of the design; redundancy from unused dimensions collapses in
// the result set.
package expand

import (
	"strings"

	"github.com/fback/fback/pkg/urlparts"
)

// Placeholder vocabulary. Case-sensitive, no escaping mechanism.
const (
	TokenDomainName = "$domain_name"
	TokenFullDomain = "$full_domain"
	TokenSubdomain  = "$subdomain"
	TokenTLD        = "$tld"
	TokenFileName   = "$file_name"
	TokenFullPath   = "$full_path"
	TokenPath       = "$path"
	TokenWord       = "$word"
	TokenExt        = "$ext"
	TokenNum        = "$num"
	TokenYear       = "%y"
	TokenMonth      = "%m"
	TokenDay        = "%d"
)

// Results is a set of generated strings. Uniqueness is exact string
// equality; no ordering is defined.
type Results map[string]struct{}

// Add inserts s into the set.
func (r Results) Add(s string) { r[s] = struct{}{} }

// Contains reports whether s is in the set.
func (r Results) Contains(s string) bool {
	_, ok := r[s]
	return ok
}

// Merge adds every entry of other into r.
func (r Results) Merge(other Results) {
	for s := range other {
		r[s] = struct{}{}
	}
}

// List returns the entries in unspecified order.
func (r Results) List() []string {
	out := make([]string, 0, len(r))
	for s := range r {
		out = append(out, s)
	}
	return out
}

// Format substitutes the URL placeholders of p into each template and
// returns the same-length slice. Word/extension/number/date tokens are
// left for the combinator stage.
//
// After substitution, one ".." -> "." pass and one "//" -> "/" pass
// clean up separators orphaned by empty fields. The collapse is a
// single non-recursive pass per token: triple separators collapse only
// partially, and callers depend on that exact behavior.
func Format(p urlparts.Parts, templates []string) []string {
	out := make([]string, 0, len(templates))
	for _, t := range templates {
		s := strings.ReplaceAll(t, TokenDomainName, p.DomainName)
		s = strings.ReplaceAll(s, TokenFullDomain, p.FullDomain)
		s = strings.ReplaceAll(s, TokenSubdomain, p.Subdomain)
		s = strings.ReplaceAll(s, TokenTLD, p.TLD)
		s = strings.ReplaceAll(s, TokenFileName, p.FileName)
		s = strings.ReplaceAll(s, TokenFullPath, p.FullPath)
		s = strings.ReplaceAll(s, TokenPath, p.Path)
		s = strings.ReplaceAll(s, "..", ".")
		s = strings.ReplaceAll(s, "//", "/")
		out = append(out, s)
	}
	return out
}

// Resolved reports whether s contains no unsubstituted placeholder
// markers. Anything still carrying '$' or '%' is an incomplete
// combination and must not reach the output.
func Resolved(s string) bool {
	return !strings.ContainsAny(s, "$%")
}

// EmitFunc receives each fully resolved combination. Emission order is
// unspecified and duplicates are possible; callers dedupe.
type EmitFunc func(string)

// PatternsFunc expands every (template, word, extension, number)
// combination and calls emit for each resolved result. The full product
// is generated with no pruning and no size cap; callers are responsible
// for keeping the input lists small.
func PatternsFunc(templates, words, extensions, numbers []string, emit EmitFunc) {
	for _, t := range templates {
		for _, w := range words {
			for _, e := range extensions {
				for _, n := range numbers {
					s := strings.ReplaceAll(t, TokenWord, w)
					s = strings.ReplaceAll(s, TokenExt, e)
					s = strings.ReplaceAll(s, TokenNum, n)
					if Resolved(s) {
						emit(s)
					}
				}
			}
		}
	}
}

// Patterns collects PatternsFunc output into a deduplicated set.
func Patterns(templates, words, extensions, numbers []string) Results {
	res := make(Results)
	PatternsFunc(templates, words, extensions, numbers, res.Add)
	return res
}

// DateFormatsFunc is PatternsFunc extended with year/month/day
// dimensions, six nested dimensions in total.
func DateFormatsFunc(templates, words, extensions, numbers, years, months, days []string, emit EmitFunc) {
	for _, t := range templates {
		for _, w := range words {
			for _, e := range extensions {
				for _, n := range numbers {
					for _, y := range years {
						for _, m := range months {
							for _, d := range days {
								s := strings.ReplaceAll(t, TokenWord, w)
								s = strings.ReplaceAll(s, TokenExt, e)
								s = strings.ReplaceAll(s, TokenNum, n)
								s = strings.ReplaceAll(s, TokenYear, y)
								s = strings.ReplaceAll(s, TokenMonth, m)
								s = strings.ReplaceAll(s, TokenDay, d)
								if Resolved(s) {
									emit(s)
								}
							}
						}
					}
				}
			}
		}
	}
}

// DateFormats collects DateFormatsFunc output into a deduplicated set.
func DateFormats(templates, words, extensions, numbers, years, months, days []string) Results {
	res := make(Results)
	DateFormatsFunc(templates, words, extensions, numbers, years, months, days, res.Add)
	return res
}
