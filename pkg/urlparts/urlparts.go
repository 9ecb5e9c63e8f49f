// Package urlparts decomposes a URL into the semantic components the
// pattern templates can reference: host, registered domain, subdomain,
// public suffix, path, and a best-effort file name.
package urlparts

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Parts holds the decomposed components of one input URL. Fields are
// empty when the URL does not carry them; decomposition never fails.
type Parts struct {
	URL        string
	FullDomain string // network location as parsed, host[:port]
	Subdomain  string
	DomainName string
	TLD        string // public suffix, possibly multi-label (co.uk)
	Path       string
	FullPath   string // path with scheme/host/query/fragment stripped
	FileName   string // last path segment, only when it contains a dot
}

// Parse decomposes rawURL. Malformed URLs degrade to empty or partial
// fields rather than returning an error.
func Parse(rawURL string) Parts {
	p := Parts{URL: rawURL}

	u, err := url.Parse(rawURL)
	if err != nil {
		return p
	}

	p.FullDomain = u.Host
	p.Subdomain, p.DomainName, p.TLD = splitHost(u.Hostname())

	// Keep the path text as written, not the decoded form, so
	// percent-encoded segments round-trip into templates unchanged.
	p.Path = u.EscapedPath()
	p.FullPath = p.Path

	if last := p.Path[strings.LastIndex(p.Path, "/")+1:]; strings.Contains(last, ".") {
		p.FileName = last
	}

	return p
}

// splitHost performs public-suffix-aware domain splitting. Naive dot
// splitting misclassifies multi-part suffixes such as co.uk, so the
// suffix comes from the embedded public suffix list.
func splitHost(host string) (subdomain, domain, suffix string) {
	if host == "" {
		return "", "", ""
	}

	ps, icann := publicsuffix.PublicSuffix(host)
	if ps == host {
		if icann || strings.Contains(ps, ".") {
			// The host itself is a public suffix.
			return "", "", ps
		}
		// Unlisted bare label (localhost, intranet hostnames).
		return "", host, ""
	}

	rest := strings.TrimSuffix(host, "."+ps)
	if i := strings.LastIndex(rest, "."); i >= 0 {
		return rest[:i], rest[i+1:], ps
	}
	return "", rest, ps
}
