package casefold

// Folder maps a byte sequence to a canonical case-insensitive form. Fold
// may change the length of the output (the Unicode variant can, in rare
// cases, expand or contract a multi-byte sequence), so callers size their
// destination buffer independently and use the returned length.
type Folder interface {
	Fold(dst []byte, mixed []byte) int
}
