package encode

type EncodeOption func(*EncState)

// EncodeIndent sets the number of columns per indentation level. The
// default is 2.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeColors enables ANSI coloring of keywords, tags, and values.
// Coloring never changes layout, ordering, or whitespace.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
