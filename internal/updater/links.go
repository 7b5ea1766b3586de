package updater

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ExtractLinks parses an HTML document and returns the href attribute of
// every <a> element, in document order. Anchors without an href are skipped.
// Scripting is disabled so links inside <noscript> are parsed as elements.
func ExtractLinks(r io.Reader) ([]string, error) {
	doc, err := html.ParseWithOptions(r, html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var hrefs []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.A {
			if href, ok := hrefAttr(n); ok {
				hrefs = append(hrefs, href)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return hrefs, nil
}

// hrefAttr returns the href of n. With duplicated attributes the last one wins.
func hrefAttr(n *html.Node) (string, bool) {
	var href string
	found := false
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == "href" {
			href = attr.Val
			found = true
		}
	}
	return href, found
}

// FilterArchiveLinks keeps the hrefs that end with suffix and contain prefix.
func FilterArchiveLinks(hrefs []string, suffix, prefix string) []string {
	var out []string
	for _, href := range hrefs {
		if !strings.HasSuffix(href, suffix) {
			continue
		}
		if !strings.Contains(href, prefix) {
			continue
		}
		out = append(out, href)
	}
	return out
}

// SelectLatest returns the lexically greatest candidate, or "" if there are none.
//
// This is byte-wise string ordering, not version ordering: "snaphu-v9.0.0"
// sorts above "snaphu-v10.0.0". See highestByVersion for the check that
// warns about it.
func SelectLatest(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return strings.Compare(b, a)
	})
	return sorted[0]
}
