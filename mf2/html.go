package mf2

import (
	stdhtml "html"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// attr returns the value of the named attribute on n, and whether it was
// present at all (so callers can distinguish a missing attribute from one
// set to the empty string).
func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// classTokens splits an element's class attribute on whitespace.
func classTokens(n *html.Node) []string {
	class, ok := attr(n, "class")
	if !ok {
		return nil
	}
	return strings.Fields(class)
}

// hasClass reports whether n's class attribute contains the exact token
// tok.
func hasClass(n *html.Node, tok string) bool {
	for _, c := range classTokens(n) {
		if c == tok {
			return true
		}
	}
	return false
}

// hasAnyHClass reports whether n carries any h-* class token.
func hasAnyHClass(n *html.Node) bool {
	for _, c := range classTokens(n) {
		if strings.HasPrefix(c, "h-") && len(c) > 2 {
			return true
		}
	}
	return false
}

// textContent returns the recursive, concatenated text of every text node
// under n (n itself included if it is a text node).
func textContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

// elementChildren returns n's immediate children that are elements, text
// children skipped.
func elementChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// singleElementChild returns n's one and only element child and true, or
// (nil, false) if n has zero or more than one.
func singleElementChild(n *html.Node) (*html.Node, bool) {
	kids := elementChildren(n)
	if len(kids) != 1 {
		return nil, false
	}
	return kids[0], true
}

// isAtom reports whether n is an element with the given tag atom.
func isAtom(n *html.Node, a atom.Atom) bool {
	return n.Type == html.ElementNode && n.DataAtom == a
}

// innerHTML serializes n's children (not n itself): element children are
// re-rendered as HTML, text children are emitted raw. href/src attributes
// on any descendant element are resolved to absolute URLs against base as
// they are written; the source tree itself is never mutated.
func innerHTML(n *html.Node, base *Base) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderNode(&sb, c, base)
	}
	return sb.String()
}

func renderNode(sb *strings.Builder, n *html.Node, base *Base) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.CommentNode:
		sb.WriteString("<!--")
		sb.WriteString(n.Data)
		sb.WriteString("-->")
		return
	case html.ElementNode:
		// fall through
	default:
		return
	}

	sb.WriteString("<")
	sb.WriteString(n.Data)
	for _, a := range n.Attr {
		sb.WriteString(" ")
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		val := a.Val
		if (a.Key == "href" || a.Key == "src") && base != nil {
			val = base.Resolve(val)
		}
		sb.WriteString(stdhtml.EscapeString(val))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")

	if isVoidElement(n.Data) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderNode(sb, c, base)
	}
	sb.WriteString("</")
	sb.WriteString(n.Data)
	sb.WriteString(">")
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

func isVoidElement(tag string) bool { return voidElements[tag] }
