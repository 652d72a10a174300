package mf2

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedJSON wraps any error encountered decoding a Document from
// JSON in NewFromJSON.
var ErrMalformedJSON = errors.New("mf2: malformed json")

// jsonDocument, jsonItem mirror the canonical MF2 JSON shape. They exist
// purely as the wire representation: Document/Item carry the richer
// in-memory model and convert to/from these at the package boundary.
type jsonDocument struct {
	Items   []*jsonItem         `json:"items"`
	Rels    map[string][]string `json:"rels"`
	RelURLs map[string]*RelURL  `json:"rel-urls"`
}

type jsonItem struct {
	Type       []string          `json:"type"`
	Properties map[string][]any  `json:"properties"`
	Value      *string           `json:"value,omitempty"`
	Children   []*jsonItem       `json:"children,omitempty"`
}

// AsJSON serializes d to the canonical, pretty-printed MF2 JSON shape. The
// returned bytes are UTF-8.
func (d *Document) AsJSON() ([]byte, error) {
	return json.MarshalIndent(toJSONDocument(d), "", "  ")
}

// AsRawData decodes AsJSON's output back into a generic JSON value, as a
// convenience for callers that want to inspect the shape without their own
// struct tags.
func (d *Document) AsRawData() (any, error) {
	b, err := d.AsJSON()
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	return v, nil
}

// NewFromJSON reconstructs a Document from its canonical JSON form. Parent
// back-references are rebuilt from the nesting: children and items held as
// property values point at the item that contains them, top-level items
// have none. Document.Items is rebuilt by collectItems.
func NewFromJSON(data []byte) (*Document, error) {
	var jd jsonDocument
	if err := json.Unmarshal(data, &jd); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	doc := newDocument()
	if jd.Rels != nil {
		doc.Rels = jd.Rels
	}
	if jd.RelURLs != nil {
		doc.RelURLs = jd.RelURLs
	}
	for _, ji := range jd.Items {
		it, err := fromJSONItem(ji, nil)
		if err != nil {
			return nil, err
		}
		doc.TopLevelItems = append(doc.TopLevelItems, it)
		collectItems(&doc.Items, it)
	}
	return doc, nil
}

// collectItems appends it and every item reachable from it (children and
// property values) to *items, in pre-order: property items first, by sorted
// property key, then children. This approximates, but need not equal, the
// discovery order Document.Items holds after a fresh parse.
func collectItems(items *[]*Item, it *Item) {
	*items = append(*items, it)
	for _, key := range sortedKeys(it.Properties) {
		for _, pv := range it.Properties[key] {
			if pv.Item != nil {
				collectItems(items, pv.Item)
			}
		}
	}
	for _, child := range it.Children {
		collectItems(items, child)
	}
}

// sortedKeys returns m's keys in a stable order so JSON round-trips
// reproduce the same Items discovery order across repeated calls, even
// though Go map iteration order is randomized. The canonical JSON's
// "properties" object does not itself preserve the original attribute
// order beyond what encoding/json's alphabetical map-key marshaling
// already imposes, so sorting here is simply consistent with that.
func sortedKeys(m map[string][]PropertyValue) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

func toJSONDocument(d *Document) *jsonDocument {
	jd := &jsonDocument{
		Items:   make([]*jsonItem, 0, len(d.TopLevelItems)),
		Rels:    d.Rels,
		RelURLs: d.RelURLs,
	}
	if jd.Rels == nil {
		jd.Rels = map[string][]string{}
	}
	if jd.RelURLs == nil {
		jd.RelURLs = map[string]*RelURL{}
	}
	for _, it := range d.TopLevelItems {
		jd.Items = append(jd.Items, toJSONItem(it))
	}
	return jd
}

func toJSONItem(it *Item) *jsonItem {
	ji := &jsonItem{
		Type:       make([]string, len(it.Types)),
		Properties: make(map[string][]any, len(it.Properties)),
		Value:      it.Value,
	}
	for i, t := range it.Types {
		ji.Type[i] = "h-" + t
	}
	for key, vs := range it.Properties {
		list := make([]any, 0, len(vs))
		for _, pv := range vs {
			list = append(list, toJSONPropertyValue(pv))
		}
		ji.Properties[key] = list
	}
	for _, child := range it.Children {
		ji.Children = append(ji.Children, toJSONItem(child))
	}
	return ji
}

func toJSONPropertyValue(pv PropertyValue) any {
	switch {
	case pv.Struct != nil:
		return pv.Struct
	case pv.Item != nil:
		return toJSONItem(pv.Item)
	default:
		return pv.String
	}
}

func fromJSONItem(ji *jsonItem, parent *Item) (*Item, error) {
	it := newItem(stripHPrefixes(ji.Type), parent)
	it.Value = ji.Value
	for key, list := range ji.Properties {
		for _, raw := range list {
			pv, err := fromJSONPropertyValue(raw, it)
			if err != nil {
				return nil, err
			}
			it.addProperty(key, pv)
		}
	}
	for _, jc := range ji.Children {
		child, err := fromJSONItem(jc, it)
		if err != nil {
			return nil, err
		}
		it.Children = append(it.Children, child)
	}
	return it, nil
}

func fromJSONPropertyValue(raw any, parent *Item) (PropertyValue, error) {
	switch v := raw.(type) {
	case string:
		return PropertyValue{String: v}, nil
	case map[string]any:
		if _, ok := v["type"]; ok {
			ji, err := reencodeAsItem(v)
			if err != nil {
				return PropertyValue{}, err
			}
			item, err := fromJSONItem(ji, parent)
			if err != nil {
				return PropertyValue{}, err
			}
			return PropertyValue{Item: item}, nil
		}
		html, _ := v["html"].(string)
		value, _ := v["value"].(string)
		return PropertyValue{Struct: &EmbeddedHTML{HTML: html, Value: value}}, nil
	default:
		return PropertyValue{}, fmt.Errorf("%w: unexpected property value %T", ErrMalformedJSON, raw)
	}
}

// reencodeAsItem re-marshals a generic decoded map back into the typed
// jsonItem shape, used when a property value turns out to itself be a
// nested h-item (the only place this ambiguity arises, since Go's generic
// JSON decoding gives every nested object as map[string]any).
func reencodeAsItem(v map[string]any) (*jsonItem, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	var ji jsonItem
	if err := json.Unmarshal(b, &ji); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	return &ji, nil
}

func stripHPrefixes(types []string) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = trimHPrefix(t)
	}
	return out
}

func trimHPrefix(t string) string {
	if len(t) > 2 && t[0] == 'h' && t[1] == '-' {
		return t[2:]
	}
	return t
}
