// Package brace implements BraceMatch: pairing one of ()[]{}<> with its
// partner by walking the buffer and tracking nesting depth, honoring
// style boundaries so a brace inside a string literal never matches one
// outside it.
package brace
