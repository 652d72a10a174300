package mf2

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// applyImpliedProperties adds the implied name/photo/url properties to item,
// each skipped if the item already has that property, in the fixed order:
// name, then photo, then url.
func applyImpliedProperties(item *Item, element *html.Node, base *Base) {
	impliedName(item, element)
	impliedPhoto(item, element, base)
	impliedURL(item, element, base)
}

// nonHChild returns element's single element child, if it has exactly one
// and that child carries no h-* class.
func nonHChild(element *html.Node) (*html.Node, bool) {
	c, ok := singleElementChild(element)
	if !ok || hasAnyHClass(c) {
		return nil, false
	}
	return c, true
}

// nonHGrandchild returns the single non-h grandchild of element: element
// must have exactly one non-h child, which itself must have exactly one
// non-h child.
func nonHGrandchild(element *html.Node) (*html.Node, bool) {
	child, ok := nonHChild(element)
	if !ok {
		return nil, false
	}
	return nonHChild(child)
}

func impliedName(item *Item, element *html.Node) {
	if item.hasAnyPrefixed("p", "e") {
		return
	}

	var name string
	var found bool

	switch {
	case isAtom(element, atom.Img), isAtom(element, atom.Area):
		name, found = mustAttr(element, "alt")
	case isAtom(element, atom.Abbr):
		name, found = mustAttr(element, "title")
	}

	if !found {
		if child, ok := nonHChild(element); ok {
			if isAtom(child, atom.Img) {
				name, found = nonEmptyAttr(child, "alt")
			}
			if !found && isAtom(child, atom.Area) {
				name, found = nonEmptyAttr(child, "alt")
			}
			if !found && isAtom(child, atom.Abbr) {
				name, found = nonEmptyAttr(child, "title")
			}
		}
	}

	if !found {
		if grandchild, ok := nonHGrandchild(element); ok {
			if isAtom(grandchild, atom.Img) || isAtom(grandchild, atom.Area) {
				name, found = nonEmptyAttr(grandchild, "alt")
			}
			if !found && isAtom(grandchild, atom.Abbr) {
				name, found = nonEmptyAttr(grandchild, "title")
			}
		}
	}

	if !found {
		name = trimmedText(element)
	}

	if len(name) > 0 {
		item.addProperty("p-name", PropertyValue{String: name})
	}
}

func impliedPhoto(item *Item, element *html.Node, base *Base) {
	if len(item.GetProperties("photo")) > 0 {
		return
	}

	var src string
	var found bool

	switch {
	case isAtom(element, atom.Img):
		src, found = nonEmptyAttr(element, "src")
	case isAtom(element, atom.Object):
		src, found = nonEmptyAttr(element, "data")
	}

	if !found {
		if child, ok := nonHChild(element); ok {
			if isAtom(child, atom.Img) {
				src, found = nonEmptyAttr(child, "src")
			} else if isAtom(child, atom.Object) {
				src, found = nonEmptyAttr(child, "data")
			}
		}
	}

	if !found {
		if grandchild, ok := nonHGrandchild(element); ok {
			if isAtom(grandchild, atom.Img) {
				src, found = nonEmptyAttr(grandchild, "src")
			} else if isAtom(grandchild, atom.Object) {
				src, found = nonEmptyAttr(grandchild, "data")
			}
		}
	}

	if found {
		item.addProperty("u-photo", PropertyValue{String: base.Resolve(src)})
	}
}

func impliedURL(item *Item, element *html.Node, base *Base) {
	if len(item.GetProperties("url")) > 0 {
		return
	}

	var href string
	var found bool

	if isAtom(element, atom.A) || isAtom(element, atom.Area) {
		href, found = nonEmptyAttr(element, "href")
	}

	if !found {
		if child, ok := nonHChild(element); ok && (isAtom(child, atom.A) || isAtom(child, atom.Area)) {
			href, found = nonEmptyAttr(child, "href")
		}
	}

	if !found {
		if grandchild, ok := nonHGrandchild(element); ok && (isAtom(grandchild, atom.A) || isAtom(grandchild, atom.Area)) {
			href, found = nonEmptyAttr(grandchild, "href")
		}
	}

	if found {
		item.addProperty("u-url", PropertyValue{String: base.Resolve(href)})
	}
}

// mustAttr returns the named attribute and true whenever it is present on
// n, even when its value is empty (used by the img/area/abbr implied-name
// rules, which explicitly accept an empty value).
func mustAttr(n *html.Node, name string) (string, bool) {
	return attr(n, name)
}

// nonEmptyAttr returns the named attribute only when present and non-empty.
func nonEmptyAttr(n *html.Node, name string) (string, bool) {
	v, ok := attr(n, name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
