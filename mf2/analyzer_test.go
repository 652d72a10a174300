package mf2

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ReadsFromReader(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<span class="h-card">Alice</span>`), "http://ex.com/")
	require.NoError(t, err)
	require.Len(t, doc.TopLevelItems, 1)
	assert.Equal(t, []string{"card"}, doc.TopLevelItems[0].Types)
}

// TestAnalyze_MinimalHCard: a bare h-card with no explicit properties gets
// its name implied from text content.
func TestAnalyze_MinimalHCard(t *testing.T) {
	doc := parseMF2(t, `<span class="h-card">Alice</span>`, "http://ex.com/")

	require.Len(t, doc.TopLevelItems, 1)
	item := doc.TopLevelItems[0]

	assert.Equal(t, []string{"card"}, item.Types)
	assert.Equal(t, []string{"Alice"}, strVals(item, "name"))
	assert.Empty(t, item.Children)
	assert.Nil(t, item.Value)
}

// TestAnalyze_ImpliedURLFromChildAnchor: name and url are both implied from
// a single child anchor.
func TestAnalyze_ImpliedURLFromChildAnchor(t *testing.T) {
	doc := parseMF2(t, `<div class="h-card"><a href="/me">Me</a></div>`, "http://ex.com/")

	require.Len(t, doc.TopLevelItems, 1)
	item := doc.TopLevelItems[0]

	assert.Equal(t, []string{"Me"}, strVals(item, "name"))
	assert.Equal(t, []string{"http://ex.com/me"}, strVals(item, "url"))
}

// TestAnalyze_NestedAuthorCard: an h-card nested under a p-author class is
// consumed as the property value, not left as a child.
func TestAnalyze_NestedAuthorCard(t *testing.T) {
	doc := parseMF2(t, `<div class="h-entry"><h1 class="p-name">T</h1>`+
		`<span class="p-author h-card">Bob</span></div>`, "http://ex.com/")

	require.Len(t, doc.TopLevelItems, 1)
	entry := doc.TopLevelItems[0]
	assert.Equal(t, []string{"entry"}, entry.Types)
	assert.Equal(t, []string{"T"}, strVals(entry, "name"))
	assert.Empty(t, entry.Children)

	authorVals := entry.GetProperties("author")
	require.Len(t, authorVals, 1)
	require.NotNil(t, authorVals[0].Item)

	author := authorVals[0].Item
	assert.Equal(t, []string{"card"}, author.Types)
	assert.Equal(t, []string{"Bob"}, strVals(author, "name"))
	require.NotNil(t, author.Value)
	assert.Equal(t, "Bob", *author.Value)
}

// TestAnalyze_EContentAbsolutizesURLs: an e-content extractor resolves
// descendant anchor hrefs against the base URL.
func TestAnalyze_EContentAbsolutizesURLs(t *testing.T) {
	doc := parseMF2(t, `<div class="h-entry"><div class="e-content">Hi <a href="/x">x</a></div></div>`,
		"http://ex.com/")

	entry := doc.TopLevelItems[0]
	vals := entry.GetProperties("content")
	require.Len(t, vals, 1)
	require.NotNil(t, vals[0].Struct)
	assert.Equal(t, `Hi <a href="http://ex.com/x">x</a>`, vals[0].Struct.HTML)
	assert.Equal(t, "Hi x", vals[0].Struct.Value)
}

// TestAnalyze_ValueClassPattern: multiple "value" descendants concatenate
// into a single property value.
func TestAnalyze_ValueClassPattern(t *testing.T) {
	doc := parseMF2(t, `<span class="h-card"><span class="p-name">`+
		`<span class="value">Alice</span> (aka <span class="value">Ally</span>)`+
		`</span></span>`, "http://ex.com/")

	item := doc.TopLevelItems[0]
	assert.Equal(t, []string{"AliceAlly"}, strVals(item, "name"))
}

// TestAnalyze_DatetimeFromAttribute: a dt-* property parses its value from a
// datetime attribute into the canonical stored form.
func TestAnalyze_DatetimeFromAttribute(t *testing.T) {
	doc := parseMF2(t, `<div class="h-entry"><time class="dt-published" datetime="2020-01-02T03:04:05">Jan 2</time></div>`,
		"http://ex.com/")

	item := doc.TopLevelItems[0]
	assert.Equal(t, []string{"2020-01-02 03:04:05"}, strVals(item, "published"))
}

func TestAnalyze_ImpliedPhotoFromImgChild(t *testing.T) {
	doc := parseMF2(t, `<div class="h-card"><img src="/a.jpg" alt="Ann"></div>`, "http://ex.com/")

	item := doc.TopLevelItems[0]
	assert.Equal(t, []string{"Ann"}, strVals(item, "name"))
	assert.Equal(t, []string{"http://ex.com/a.jpg"}, strVals(item, "photo"))
}

func TestAnalyze_DtInvalidCandidateSkipped(t *testing.T) {
	doc := parseMF2(t, `<div class="h-entry"><time class="dt-published">not a date</time></div>`, "http://ex.com/")

	item := doc.TopLevelItems[0]
	assert.Empty(t, item.GetProperties("published"))
}

func TestAnalyze_EAndDTRunAlongsideNewItem(t *testing.T) {
	// An element carrying both h-* and e-*/dt-* classes still runs the e/dt
	// extractor against the enclosing item, asymmetric with p/u which are
	// suppressed in that case.
	doc := parseMF2(t, `<div class="h-entry">`+
		`<blockquote class="e-content h-cite">quoted</blockquote>`+
		`</div>`, "http://ex.com/")

	entry := doc.TopLevelItems[0]
	vals := entry.GetProperties("content")
	require.Len(t, vals, 1)
	require.NotNil(t, vals[0].Struct)
	assert.Equal(t, "quoted", vals[0].Struct.Value)

	// The h-cite is still created and, absent a p-*/u-* class, filed as a
	// plain child rather than consumed as a property value.
	require.Len(t, entry.Children, 1)
	assert.Equal(t, []string{"cite"}, entry.Children[0].Types)
}

func TestAnalyze_DiscoveryOrderIsPreOrder(t *testing.T) {
	doc := parseMF2(t, `<div class="h-entry">`+
		`<span class="p-author h-card">A</span>`+
		`<span class="h-cite">C</span>`+
		`</div>`, "http://ex.com/")

	require.Len(t, doc.Items, 3)
	assert.Equal(t, []string{"entry"}, doc.Items[0].Types)
	assert.Equal(t, []string{"card"}, doc.Items[1].Types)
	assert.Equal(t, []string{"cite"}, doc.Items[2].Types)
}

func TestAnalyze_BaseElementOverridesContextOnce(t *testing.T) {
	doc := parseMF2(t, `<html><head><base href="http://other.example/x/"></head>`+
		`<body><div class="h-card"><a class="u-url" href="y">Y</a></div></body></html>`,
		"http://ex.com/")

	item, ok := doc.GetFirst("card")
	require.True(t, ok)
	assert.Equal(t, []string{"http://other.example/x/y"}, strVals(item, "url"))
}
