package mf2

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// analyzeElement is the recursive analyzer driving every other component. It
// is called once on the tree's root node and then once per element node;
// text and comment nodes terminate recursion for their branch and are never
// passed in.
func analyzeElement(doc *Document, base *Base, element *html.Node, current *Item) {
	attrs := tokenizeClasses(element)

	var created *Item
	if len(attrs.h) > 0 {
		created = newItem(attrs.h, current)
		doc.Items = append(doc.Items, created)
		if current == nil {
			doc.TopLevelItems = append(doc.TopLevelItems, created)
		}
	}

	if current != nil {
		applyExtractors(current, element, base, attrs, created != nil)
	}

	childContext := current
	if created != nil {
		childContext = created
	}
	for c := element.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			analyzeElement(doc, base, c, childContext)
		}
	}

	if created != nil {
		applyImpliedProperties(created, element, base)
		created.Value = computeValue(created, attrs)

		if current != nil {
			attachToParent(current, created, attrs)
		}
	}
}

// applyExtractors runs the p/u/e/dt value extractors against element,
// appending results to current's properties. p and u are skipped when this
// element also created a new h-item: the item itself becomes the property
// value instead, handled later by attachToParent. e and dt run
// unconditionally, even alongside a new h-item on the same element.
func applyExtractors(current *Item, element *html.Node, base *Base, attrs classAttrs, createdItem bool) {
	if !createdItem {
		for _, suffix := range attrs.p {
			current.addProperty("p-"+suffix, PropertyValue{String: extractP(element, base)})
		}
		for _, suffix := range attrs.u {
			current.addProperty("u-"+suffix, PropertyValue{String: extractU(element, base)})
		}
	}

	if len(attrs.e) > 0 {
		embedded := extractE(element, base)
		for _, suffix := range attrs.e {
			current.addProperty("e-"+suffix, PropertyValue{Struct: &embedded})
		}
	}

	if len(attrs.dt) > 0 {
		if value, ok := extractDT(element, base); ok {
			for _, suffix := range attrs.dt {
				current.addProperty("dt-"+suffix, PropertyValue{String: value})
			}
		}
	}
}

// computeValue sets an item's Value from its own first name property when
// the defining element also carried a p-* class, or from its own first url
// property when it carried a u-* class, and leaves it unset otherwise.
func computeValue(item *Item, attrs classAttrs) *string {
	switch {
	case len(attrs.p) > 0:
		if pv, ok := item.GetProperty("name"); ok {
			s := pv.StringValue()
			return &s
		}
	case len(attrs.u) > 0:
		if pv, ok := item.GetProperty("url"); ok {
			s := pv.StringValue()
			return &s
		}
	}
	return nil
}

// attachToParent attaches a newly created item to its enclosing item, either
// as the value of the p-* or u-* property that named it, or, absent either,
// as a plain child.
func attachToParent(parent, item *Item, attrs classAttrs) {
	switch {
	case len(attrs.p) > 0:
		parent.addProperty("p-"+attrs.p[0], PropertyValue{Item: item})
	case len(attrs.u) > 0:
		parent.addProperty("u-"+attrs.u[0], PropertyValue{Item: item})
	default:
		parent.Children = append(parent.Children, item)
	}
}

// Parse reads and parses an HTML document from r, builds its node tree via
// the HTML tree collaborator, and returns the resulting MF2 Document.
// urlContext is the caller-supplied base URL; see ParseNode for its
// defaulting behavior.
func Parse(r io.Reader, urlContext string) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return ParseNode(root, urlContext), nil
}

// ParseNode builds a Document by walking an already-parsed HTML tree.
// urlContext is the caller-supplied base URL, defaulting to DefaultBaseURL
// when empty; a <base href> element found anywhere in the document
// overwrites it once before the walk proceeds further.
func ParseNode(root *html.Node, urlContext string) *Document {
	doc := newDocument()
	base := newBase(urlContext)
	if baseEl := findBaseElement(root); baseEl != nil {
		if href, ok := attr(baseEl, "href"); ok {
			base.setFromDocument(href)
		}
	}
	analyzeElement(doc, base, root, nil)
	return doc
}

// findBaseElement returns the first <base> element in the tree, or nil.
func findBaseElement(n *html.Node) *html.Node {
	if isAtom(n, atom.Base) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if found := findBaseElement(c); found != nil {
			return found
		}
	}
	return nil
}
