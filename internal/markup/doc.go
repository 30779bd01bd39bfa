// Package markup loads SVG (or any XML) documents into a mutable tree and
// exposes the small set of edits the map renderer needs: lookup by id or by
// label attribute, surgical rewrites of inline style declarations, text
// replacement, and serialization back to text.
//
// Lookups are served from an index built once at load time. The index maps
// each identifier to the first element carrying it in document order, which
// matches what a depth-first search would return.
//
// Serialization keeps the document as close to the source bytes as the
// underlying tree allows. When pretty printing is requested, line breaks that
// the printer inserts inside text-bearing elements are collapsed again, so a
// label such as <text>12.5</text> stays on one line and renders unchanged.
package markup
