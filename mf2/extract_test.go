package mf2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractP_AttributeFallbackOrder(t *testing.T) {
	doc := parseDoc(t, `<div class="h-entry"><abbr class="p-name" title="World Wide Web">WWW</abbr></div>`)
	item := ParseNode(doc, "http://ex.com/").TopLevelItems[0]

	assert.Equal(t, []string{"World Wide Web"}, strVals(item, "name"))
}

func TestExtractU_TagSpecificAttribute(t *testing.T) {
	doc := parseDoc(t, `<div class="h-entry"><img class="u-photo" src="/a.jpg" alt="a"></div>`)
	item := ParseNode(doc, "http://ex.com/").TopLevelItems[0]

	assert.Equal(t, []string{"http://ex.com/a.jpg"}, strVals(item, "photo"))
}

func TestExtractU_VideoPrefersSrcOverPoster(t *testing.T) {
	doc := parseDoc(t, `<div class="h-entry"><video class="u-video" src="/a.mp4" poster="/a.jpg"></video></div>`)
	item := ParseNode(doc, "http://ex.com/").TopLevelItems[0]

	assert.Equal(t, []string{"http://ex.com/a.mp4"}, strVals(item, "video"))
}

func TestExtractU_VideoFallsBackToPoster(t *testing.T) {
	doc := parseDoc(t, `<div class="h-entry"><video class="u-video" poster="/a.jpg"></video></div>`)
	item := ParseNode(doc, "http://ex.com/").TopLevelItems[0]

	assert.Equal(t, []string{"http://ex.com/a.jpg"}, strVals(item, "video"))
}

func TestExtractU_AbbrTitleIsUnlikelySource(t *testing.T) {
	doc := parseDoc(t, `<div class="h-entry"><abbr class="u-url" title="http://ex.com/abbr"></abbr></div>`)
	item := ParseNode(doc, "http://ex.com/").TopLevelItems[0]

	assert.Equal(t, []string{"http://ex.com/abbr"}, strVals(item, "url"))
}

func TestExtractE_TrimsOnlyTrailingSpaces(t *testing.T) {
	doc := parseDoc(t, `<div class="h-entry"><div class="e-content">hi   </div></div>`)
	item := ParseNode(doc, "http://ex.com/").TopLevelItems[0]

	vals := item.GetProperties("content")
	assert.Equal(t, "hi", vals[0].Struct.HTML)
}

func TestExtractDT_FallsBackToTitleAttribute(t *testing.T) {
	doc := parseDoc(t, `<div class="h-entry"><abbr class="dt-published" title="2020-06-01"></abbr></div>`)
	item := ParseNode(doc, "http://ex.com/").TopLevelItems[0]

	assert.Equal(t, []string{"2020-06-01 00:00:00"}, strVals(item, "published"))
}
