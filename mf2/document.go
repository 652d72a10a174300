// Package mf2 parses Microformats2 (MF2) markup out of an HTML document and
// builds the hierarchical item tree the MF2 convention describes.
//
// See also: http://microformats.org/wiki/microformats2
package mf2

import (
	"log/slog"
	"strings"
)

// PropertyValue is the tagged variant stored under every property key: a
// plain string, an embedded-HTML struct (e-* properties only), or a nested
// Item consumed as the value of a property.
type PropertyValue struct {
	// String holds plain text or a resolved URL. Valid when Struct and Item
	// are both nil.
	String string
	// Struct holds the html/value pair produced by an e-* extractor.
	Struct *EmbeddedHTML
	// Item holds a nested h-item consumed as this property's value.
	Item *Item
}

// EmbeddedHTML is the value of an e-* property: the element's inner HTML
// with descendant URLs absolutized, and its plain-text rendering.
type EmbeddedHTML struct {
	HTML  string `json:"html"`
	Value string `json:"value"`
}

// StringValue returns pv as a plain string, regardless of which variant it
// actually holds: Item values render empty, struct values render their
// Value field. Callers that need the variant itself should switch on
// pv.Struct / pv.Item directly.
func (pv PropertyValue) StringValue() string {
	switch {
	case pv.Struct != nil:
		return pv.Struct.Value
	case pv.Item != nil:
		return ""
	default:
		return pv.String
	}
}

// Item represents one h-* microformat instance.
type Item struct {
	// Types holds the item's h-* classes, stripped of the "h-" prefix, in
	// the order they appeared on the element's class attribute.
	Types []string
	// Properties maps a prefixed key ("p-name", "u-url", "e-content", ...)
	// to its ordered sequence of values.
	Properties map[string][]PropertyValue
	// Children holds nested h-items that were not consumed as a property
	// value of this item.
	Children []*Item
	// Parent is a non-owning back-reference to the enclosing item, or nil
	// for a top-level item.
	Parent *Item
	// Value is the item's own first name property (when the element that
	// created it also carried a p-* class) or first url property (when it
	// carried a u-* class), and nil otherwise (see computeValue).
	Value *string
}

// newItem allocates an Item with the given types and parent, ready for the
// analyzer to populate.
func newItem(types []string, parent *Item) *Item {
	return &Item{
		Types:      types,
		Properties: make(map[string][]PropertyValue),
		Parent:     parent,
	}
}

// addProperty appends a value under key, creating the slice if needed.
func (it *Item) addProperty(key string, pv PropertyValue) {
	it.Properties[key] = append(it.Properties[key], pv)
}

// hasAnyPrefixed reports whether the item has any property whose key
// carries one of the given prefixes ("p", "e", ...), used by the implied
// name rule which is skipped when any p-* or e-* property already exists.
func (it *Item) hasAnyPrefixed(prefixes ...string) bool {
	for key, vs := range it.Properties {
		if len(vs) == 0 {
			continue
		}
		for _, p := range prefixes {
			if strings.HasPrefix(key, p+"-") {
				return true
			}
		}
	}
	return false
}

// HasType reports whether the item's types include type, which may
// optionally carry the "h-" prefix.
func (it *Item) HasType(typ string) bool {
	typ = strings.TrimPrefix(typ, "h-")
	for _, t := range it.Types {
		if t == typ {
			return true
		}
	}
	return false
}

// propertyPrefixOrder is the search order GetProperties/GetProperty use when
// a query key carries no prefix. Nothing pins this order externally; p, u,
// e, dt is the order this implementation documents and follows.
var propertyPrefixOrder = []string{"p", "u", "e", "dt"}

// GetProperties returns the sequence of values stored under the property
// matching key. key may be given with or without its prefix; unprefixed
// keys are searched across p-, u-, e-, dt- in that order, returning the
// first prefix under which any value is stored. Returns nil when absent.
func (it *Item) GetProperties(key string) []PropertyValue {
	if strings.Contains(key, "-") {
		if parts := strings.SplitN(key, "-", 2); isPropertyPrefix(parts[0]) {
			return it.Properties[key]
		}
	}
	for _, prefix := range propertyPrefixOrder {
		full := prefix + "-" + key
		if vs, ok := it.Properties[full]; ok && len(vs) > 0 {
			return vs
		}
	}
	return nil
}

// GetProperty returns the first value stored under key (see GetProperties).
// When more than one value is present it logs a diagnostic warning and
// still returns the first, rather than failing outright.
func (it *Item) GetProperty(key string) (PropertyValue, bool) {
	vs := it.GetProperties(key)
	if len(vs) == 0 {
		return PropertyValue{}, false
	}
	if len(vs) > 1 {
		Diagnostics().Warn("property has more than one value, returning first",
			slog.String("key", key), slog.Int("count", len(vs)))
	}
	return vs[0], true
}

func isPropertyPrefix(s string) bool {
	switch s {
	case "p", "u", "e", "dt", "h":
		return true
	}
	return false
}

// Document holds every item discovered while walking an HTML tree, plus the
// (currently unpopulated) rel/rel-urls extension points.
type Document struct {
	// TopLevelItems holds the items with no enclosing h-item, in document
	// order.
	TopLevelItems []*Item
	// Items holds every item discovered at any depth, in analyzer discovery
	// order (pre-order). Every item in TopLevelItems also appears here.
	Items []*Item
	// Rels maps a relation name to the ordered URLs found with that
	// relation. The analyzer never populates it: rel extraction is a stubbed
	// extension point. NewFromJSON carries over whatever the JSON holds.
	Rels map[string][]string
	// RelURLs maps a URL string to its rel metadata. Like Rels, it is left
	// empty by the analyzer and filled only by NewFromJSON.
	RelURLs map[string]*RelURL
}

// RelURL holds the metadata the MF2 JSON shape associates with a
// rel-carrying URL. No analyzer code currently populates this; it exists
// so the JSON shape and query surface have a home ready for that work.
type RelURL struct {
	Rels     []string `json:"rels,omitempty"`
	Text     string   `json:"text,omitempty"`
	Media    string   `json:"media,omitempty"`
	HrefLang string   `json:"hreflang,omitempty"`
	Title    string   `json:"title,omitempty"`
	Type     string   `json:"type,omitempty"`
}

func newDocument() *Document {
	return &Document{
		Rels:    make(map[string][]string),
		RelURLs: make(map[string]*RelURL),
	}
}

// GetFirst returns the first item in discovery order whose types include
// typ (with or without its "h-" prefix), and whether one was found.
func (d *Document) GetFirst(typ string) (*Item, bool) {
	typ = strings.TrimPrefix(typ, "h-")
	for _, it := range d.Items {
		if it.HasType(typ) {
			return it, true
		}
	}
	return nil, false
}

var diagnostics = slog.Default()

// Diagnostics returns the logger the package uses for non-fatal diagnostic
// messages. Library callers that want diagnostics routed somewhere other
// than slog.Default should call SetDiagnostics before parsing.
func Diagnostics() *slog.Logger { return diagnostics }

// SetDiagnostics overrides the logger used for non-fatal diagnostics.
func SetDiagnostics(l *slog.Logger) { diagnostics = l }
