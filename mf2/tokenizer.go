package mf2

import (
	"regexp"

	"golang.org/x/net/html"
)

// classPrefixes lists the five MF2 prefixes a class token can carry, in
// match-attempt order.
var classPrefixes = []string{"h", "e", "u", "dt", "p"}

// classToken matches a single whitespace-delimited class attribute token
// against the MF2 class grammar: one of the five prefixes, a hyphen, then
// one or more lowercase-letter segments joined by hyphens.
var classToken = regexp.MustCompile(`^(h|e|u|dt|p)-([a-z]+(?:-[a-z]+)*)$`)

// classAttrs buckets an element's MF2 class tokens by prefix, preserving
// left-to-right order and duplicate suffixes within a prefix.
type classAttrs struct {
	h, e, u, dt, p []string
}

func (c classAttrs) empty() bool {
	return len(c.h) == 0 && len(c.e) == 0 && len(c.u) == 0 && len(c.dt) == 0 && len(c.p) == 0
}

// tokenizeClasses scans n's class attribute and returns its MF2 tokens
// bucketed by prefix. A missing class attribute yields an all-empty result.
func tokenizeClasses(n *html.Node) classAttrs {
	var out classAttrs
	for _, tok := range classTokens(n) {
		m := classToken.FindStringSubmatch(tok)
		if m == nil {
			continue
		}
		prefix, suffix := m[1], m[2]
		switch prefix {
		case "h":
			out.h = append(out.h, suffix)
		case "e":
			out.e = append(out.e, suffix)
		case "u":
			out.u = append(out.u, suffix)
		case "dt":
			out.dt = append(out.dt, suffix)
		case "p":
			out.p = append(out.p, suffix)
		}
	}
	return out
}
