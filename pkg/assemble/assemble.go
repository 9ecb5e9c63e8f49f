// Package assemble turns the generated result sets into final output:
// joined onto their source URLs or stripped to bare wordlist entries,
// deduplicated, and serialized as sorted text or JSON.
package assemble

import (
	"net/url"
	"sort"
	"strings"

	"github.com/fback/fback/pkg/jsonutil"
	"github.com/fback/fback/pkg/runner"
)

// JoinURL resolves the generated path against a source URL with
// standard relative-reference semantics: a leading-slash path replaces
// the URL's path entirely, a bare relative path resolves against the
// URL's directory.
func JoinURL(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		// Generated strings are already '$'/'%'-free, but odd words
		// can still break URL syntax; fall back to a plain text join.
		if strings.HasPrefix(ref, "/") {
			return b.Scheme + "://" + b.Host + ref
		}
		dir := b.String()
		if i := strings.LastIndex(dir, "/"); i > len(b.Scheme)+2 {
			dir = dir[:i+1]
		} else {
			dir += "/"
		}
		return dir + ref
	}
	return b.ResolveReference(r).String()
}

// StripLeadingSlash converts a generated path to a wordlist entry.
func StripLeadingSlash(p string) string {
	return strings.TrimPrefix(p, "/")
}

// Flatten produces the final plain-output list: every generated string
// of every category, joined onto every target (or slash-stripped in
// wordlist-only mode), deduplicated and sorted.
func Flatten(res runner.Result, targets []string, wordlistOnly bool) []string {
	unique := make(map[string]struct{})

	for _, target := range targets {
		for _, set := range res {
			for s := range set {
				if wordlistOnly {
					unique[StripLeadingSlash(s)] = struct{}{}
				} else {
					unique[JoinURL(target, s)] = struct{}{}
				}
			}
		}
	}

	out := make([]string, 0, len(unique))
	for s := range unique {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Text renders Flatten output as a newline-joined document.
func Text(res runner.Result, targets []string, wordlistOnly bool) string {
	return strings.Join(Flatten(res, targets, wordlistOnly), "\n")
}

// JSON renders the raw per-category lists. The patterns key is always
// present; date-formats only when date mode was requested. List order
// inside a category is unspecified.
func JSON(res runner.Result, dateMode bool) ([]byte, error) {
	doc := map[string][]string{
		runner.CategoryPatterns: res[runner.CategoryPatterns].List(),
	}
	if dateMode {
		doc[runner.CategoryDateFormats] = res[runner.CategoryDateFormats].List()
	}
	return jsonutil.MarshalIndent(doc, "", "    ")
}
