package parse

import "github.com/beevik/etree"

type parseOpts struct {
	filename   string
	permissive bool
	cdata      bool
}

func (o *parseOpts) readSettings() etree.ReadSettings {
	return etree.ReadSettings{
		Permissive:    o.permissive,
		PreserveCData: o.cdata,
	}
}

type ParseOption func(*parseOpts)

// ParseFilename names the input in error messages.
func ParseFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// ParsePermissive accepts common mistakes such as unquoted attribute values
// instead of failing.
func ParsePermissive(v bool) ParseOption {
	return func(o *parseOpts) { o.permissive = v }
}

// ParseCData keeps CDATA sections as such rather than turning them into
// plain text.
func ParseCData(v bool) ParseOption {
	return func(o *parseOpts) { o.cdata = v }
}
