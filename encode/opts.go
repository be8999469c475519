package encode

type EncodeOption func(*EncState)

// EncodeIndent re-indents the output with n spaces per level. A negative n
// keeps the document's own formatting.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeColors colours the output; nil turns colouring off.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// EncodeDeclaration controls whether the XML declaration is written.
func EncodeDeclaration(v bool) EncodeOption {
	return func(es *EncState) { es.decl = v }
}
