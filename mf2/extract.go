package mf2

import (
	"strings"

	"github.com/araddon/dateparse"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// trimmedText returns n's recursive text content, trimmed of leading and
// trailing whitespace. Entities are already decoded by the HTML tree
// collaborator, so no further decoding happens here.
func trimmedText(n *html.Node) string {
	return strings.TrimSpace(textContent(n))
}

// extractP derives a plain-text property value from n: the value-class
// pattern if present, else the first of title/value/alt attributes, else
// n's trimmed text content.
func extractP(n *html.Node, base *Base) string {
	if frags := vcpWalk(n, base); len(frags) > 0 {
		return strings.Join(frags, "")
	}
	for _, name := range []string{"title", "value", "alt"} {
		if v, ok := attr(n, name); ok {
			return v
		}
	}
	return trimmedText(n)
}

// extractU derives an absolute-URL property value from n: a tag-specific
// URL attribute if present, else the value-class pattern, else a handful of
// other per-tag fallbacks, else n's trimmed text content.
func extractU(n *html.Node, base *Base) string {
	if href, ok := urlAttrByTag(n); ok && href != "" {
		return base.Resolve(href)
	}
	if frags := vcpWalk(n, base); len(frags) > 0 {
		return strings.Join(frags, "")
	}
	switch {
	case isAtom(n, atom.Abbr):
		if v, ok := attr(n, "title"); ok && v != "" {
			return base.Resolve(v)
		}
	case isAtom(n, atom.Data), isAtom(n, atom.Input):
		if v, ok := attr(n, "value"); ok && v != "" {
			return base.Resolve(v)
		}
	}
	return trimmedText(n)
}

// urlAttrByTag returns the tag-specific URL-bearing attribute for n: href
// for anchors/areas/links, src for images/audio (falling back to poster for
// video), data for object elements.
func urlAttrByTag(n *html.Node) (string, bool) {
	switch {
	case isAtom(n, atom.A), isAtom(n, atom.Area), isAtom(n, atom.Link):
		return attr(n, "href")
	case isAtom(n, atom.Img), isAtom(n, atom.Audio):
		return attr(n, "src")
	case isAtom(n, atom.Video):
		if v, ok := attr(n, "src"); ok {
			return v, true
		}
		return attr(n, "poster")
	case isAtom(n, atom.Object):
		return attr(n, "data")
	}
	return "", false
}

// extractE derives an embedded-HTML property value from n: its inner HTML
// with descendant URLs absolutized, plus its trimmed plain-text rendering.
func extractE(n *html.Node, base *Base) EmbeddedHTML {
	htmlOut := innerHTML(n, base)
	htmlOut = strings.TrimRight(htmlOut, " ")
	return EmbeddedHTML{
		HTML:  htmlOut,
		Value: trimmedText(n),
	}
}

// canonicalDatetimeLayout is the stored form for a successfully parsed
// dt-* candidate: "YYYY-MM-DD HH:MM:SS", zero-padded, space-separated.
const canonicalDatetimeLayout = "2006-01-02 15:04:05"

// extractDT derives a datetime property value from n. It returns the parsed
// candidate formatted with canonicalDatetimeLayout and whether it parsed as
// a recognizable datetime; on parse failure the caller must silently skip
// adding the property.
func extractDT(n *html.Node, base *Base) (string, bool) {
	candidate := dtCandidate(n, base)
	if candidate == "" {
		return "", false
	}
	t, err := dateparse.ParseAny(candidate)
	if err != nil {
		return "", false
	}
	return t.Format(canonicalDatetimeLayout), true
}

func dtCandidate(n *html.Node, base *Base) string {
	if frags := vcpWalk(n, base); len(frags) > 0 {
		return strings.Join(frags, "")
	}
	for _, name := range []string{"datetime", "title", "value"} {
		if v, ok := attr(n, name); ok {
			return v
		}
	}
	return trimmedText(n)
}
