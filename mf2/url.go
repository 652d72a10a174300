package mf2

import "net/url"

// DefaultBaseURL is the base used when a caller supplies none.
const DefaultBaseURL = "http://example.com/"

// Base holds the parser's current base URL, which starts as the caller's
// url_context and is overwritten at most once by a <base href> element
// found in the document. It is not safe for concurrent use; each parse call
// constructs its own.
type Base struct {
	u     *url.URL
	found bool
}

// newBase builds a Base from a caller-supplied context URL, falling back to
// DefaultBaseURL when ctx is empty or unparsable.
func newBase(ctx string) *Base {
	if ctx == "" {
		ctx = DefaultBaseURL
	}
	u, err := url.Parse(ctx)
	if err != nil {
		u, _ = url.Parse(DefaultBaseURL)
	}
	return &Base{u: u}
}

// setFromDocument overwrites the base URL from a <base href> value, but
// only the first time it is called per Base instance: the base is
// overwritten with that value once.
func (b *Base) setFromDocument(href string) {
	if b.found || href == "" {
		return
	}
	u, err := url.Parse(href)
	if err != nil {
		return
	}
	b.u = b.u.ResolveReference(u)
	b.found = true
}

// Resolve joins ref against the current base, returning ref unchanged if it
// fails to parse or is empty. Idempotent on an already-absolute ref.
func (b *Base) Resolve(ref string) string {
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.u.ResolveReference(u).String()
}
