package mf2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVCP_ValueTitleStopsRecursionAndUsesTitleAttr(t *testing.T) {
	doc := parseDoc(t, `<div class="h-entry"><time class="dt-published">`+
		`<span class="value-title" title="2020-06-01T00:00:00"><b>ignored</b></span>`+
		`</time></div>`)
	item := ParseNode(doc, "http://ex.com/").TopLevelItems[0]

	assert.Equal(t, []string{"2020-06-01 00:00:00"}, strVals(item, "published"))
}

func TestVCP_NoMarkerYieldsEmptyFragments(t *testing.T) {
	doc := parseDoc(t, `<div class="h-entry"><span class="p-name">plain <b>text</b></span></div>`)
	item := ParseNode(doc, "http://ex.com/").TopLevelItems[0]

	// No value/value-title descendant: p-extractor falls through VCP to its
	// text-content fallback.
	assert.Equal(t, []string{"plain text"}, strVals(item, "name"))
}

func TestVCP_ValueClassSerializesElementChildren(t *testing.T) {
	doc := parseDoc(t, `<div class="h-entry"><span class="p-name">`+
		`<span class="value">Hi <a href="/x">x</a></span></span></div>`)
	item := ParseNode(doc, "http://ex.com/").TopLevelItems[0]

	assert.Equal(t, []string{`Hi <a href="http://ex.com/x">x</a>`}, strVals(item, "name"))
}
