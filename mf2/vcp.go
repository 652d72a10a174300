package mf2

import "golang.org/x/net/html"

// vcpWalk implements the value-class pattern: a depth-first scan of
// element's descendants collecting fragments from any carrying the
// "value-title" or "value" class. A descendant matching either stops
// recursion into it; one matching neither is recursed into. An element with
// no such descendant yields a nil slice, signalling "no VCP present" to
// callers, which must fall back to their own default extraction.
func vcpWalk(element *html.Node, base *Base) []string {
	var fragments []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch {
			case hasClass(c, "value-title"):
				title, _ := attr(c, "title")
				fragments = append(fragments, title)
			case hasClass(c, "value"):
				fragments = append(fragments, innerHTML(c, base))
			default:
				walk(c)
			}
		}
	}
	walk(element)
	return fragments
}
