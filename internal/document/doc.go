// Package document implements the Document facade: the single owner of
// one buffer's text, per-line attribute stores, decorations, encoding
// model, and search/brace/styling collaborators. It enforces the
// read-only and reentrance guards, funnels every mutation through a
// pre-notify/apply/post-notify pipeline, and fans the result out to
// registered watchers.
package document

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'editdoc'
func tracer() tracing.Trace {
	return tracing.Select("editdoc")
}
