package mf2

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// parseDoc parses an HTML fragment into its node tree, failing the test on
// a parse error (the html tree collaborator is treated as a total function
// over well-formed input).
func parseDoc(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("html.Parse: %v", err)
	}
	return doc
}

func parseMF2(t *testing.T, src, base string) *Document {
	t.Helper()
	return ParseNode(parseDoc(t, src), base)
}

// firstElement returns the first descendant of n with the given tag name,
// failing the test if none is found.
func firstElement(t *testing.T, n *html.Node, tag string) *html.Node {
	t.Helper()
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == tag {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	if found == nil {
		t.Fatalf("no <%s> element found", tag)
	}
	return found
}

func strVals(item *Item, key string) []string {
	var out []string
	for _, pv := range item.GetProperties(key) {
		out = append(out, pv.StringValue())
	}
	return out
}
