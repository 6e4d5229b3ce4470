// Package decoration implements Document's indicator layers: sparse,
// run-length-encoded mappings from byte ranges to small integer values,
// kept anchored to content as the buffer is edited.
package decoration
