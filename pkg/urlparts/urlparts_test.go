package urlparts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Run("simple host and file path", func(t *testing.T) {
		p := Parse("http://example.com/app/config.php")
		assert.Equal(t, "example.com", p.FullDomain)
		assert.Equal(t, "", p.Subdomain)
		assert.Equal(t, "example", p.DomainName)
		assert.Equal(t, "com", p.TLD)
		assert.Equal(t, "/app/config.php", p.Path)
		assert.Equal(t, "/app/config.php", p.FullPath)
		assert.Equal(t, "config.php", p.FileName)
	})

	t.Run("multi-part public suffix", func(t *testing.T) {
		p := Parse("https://blog.example.co.uk/index.html")
		assert.Equal(t, "blog", p.Subdomain)
		assert.Equal(t, "example", p.DomainName)
		assert.Equal(t, "co.uk", p.TLD)
	})

	t.Run("nested subdomain", func(t *testing.T) {
		p := Parse("https://a.b.example.com/")
		assert.Equal(t, "a.b", p.Subdomain)
		assert.Equal(t, "example", p.DomainName)
		assert.Equal(t, "com", p.TLD)
	})

	t.Run("port stays in FullDomain, not in the split", func(t *testing.T) {
		p := Parse("http://example.com:8080/x")
		assert.Equal(t, "example.com:8080", p.FullDomain)
		assert.Equal(t, "example", p.DomainName)
		assert.Equal(t, "com", p.TLD)
	})

	t.Run("file name requires a dot in the last segment", func(t *testing.T) {
		assert.Equal(t, "", Parse("http://example.com/app/page").FileName)
		assert.Equal(t, "", Parse("http://example.com/app/").FileName)
		assert.Equal(t, ".htaccess", Parse("http://example.com/.htaccess").FileName)
	})

	t.Run("no path", func(t *testing.T) {
		p := Parse("http://example.com")
		assert.Equal(t, "", p.Path)
		assert.Equal(t, "", p.FileName)
	})

	t.Run("malformed URL degrades to empty fields", func(t *testing.T) {
		p := Parse("http://exa mple.com/%zz")
		assert.Equal(t, "", p.FullDomain)
		assert.Equal(t, "", p.DomainName)
		assert.Equal(t, "", p.Path)
	})

	t.Run("bare unlisted host becomes the domain", func(t *testing.T) {
		p := Parse("http://localhost/admin")
		assert.Equal(t, "localhost", p.DomainName)
		assert.Equal(t, "", p.TLD)
	})

	t.Run("relative URL has no domain fields", func(t *testing.T) {
		p := Parse("/app/config.php")
		assert.Equal(t, "", p.FullDomain)
		assert.Equal(t, "config.php", p.FileName)
		assert.Equal(t, "/app/config.php", p.Path)
	})
}
