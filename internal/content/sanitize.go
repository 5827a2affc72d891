package content

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// Hosts allowed as iframe sources, for culture videos.
var embedHosts = map[string]bool{
	"www.youtube.com":          true,
	"youtube.com":              true,
	"www.youtube-nocookie.com": true,
	"player.vimeo.com":         true,
	"www.loom.com":             true,
}

var embedSrc = regexp.MustCompile(`^https://(www\.youtube\.com|youtube\.com|www\.youtube-nocookie\.com|player\.vimeo\.com|www\.loom\.com)/`)

// policy is the UGC allowlist plus iframes restricted to embedHosts.
// A bluemonday policy is safe for concurrent use once built.
var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("iframe")
	p.AllowAttrs("src").Matching(embedSrc).OnElements("iframe")
	p.AllowAttrs("width", "height").Matching(bluemonday.Number).OnElements("iframe")
	p.AllowAttrs("title").OnElements("iframe")
	p.AllowAttrs("allowfullscreen").Matching(regexp.MustCompile(`^(|allowfullscreen|true)$`)).OnElements("iframe")
	return p
}

// Sanitize strips executable content from owner-authored section HTML before
// it reaches candidates. Anything outside the allowlist is dropped.
func Sanitize(htmlContent string) (string, error) {
	if strings.TrimSpace(htmlContent) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("parsing section html: %w", err)
	}

	// The policy would only strip a bad src and keep an empty frame.
	doc.Find("iframe").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		if !IsEmbeddable(src) {
			s.Remove()
		}
	})

	body, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("rendering section html: %w", err)
	}
	return policy.Sanitize(body), nil
}

// IsEmbeddable reports whether src is an https URL on an allowed video host.
func IsEmbeddable(src string) bool {
	u, err := url.Parse(strings.TrimSpace(src))
	if err != nil {
		return false
	}
	return u.Scheme == "https" && embedHosts[strings.ToLower(u.Host)]
}
