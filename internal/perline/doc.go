// Package perline implements the per-line attribute stores a Document
// keeps alongside its text: markers, fold levels, line state, margin
// text, line annotations, and end-of-line annotations.
//
// Rather than one heterogeneous table, each kind is a separate,
// homogeneous store so it can grow/shrink atomically when lines are
// inserted or removed. All six share one capability (Store) so the
// owning Document can resize them uniformly without knowing which
// concrete kind it holds.
package perline
