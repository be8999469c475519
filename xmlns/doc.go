// Package xmlns addresses XML element and attribute names by namespace URI
// rather than by prefix.
//
// A document may bind the Android namespace to any prefix, and two documents
// being merged need not agree on their prefixes. Everything that compares or
// looks up names therefore goes through a [Key], which pairs a namespace URI
// with a local name:
//
//	a, ok := xmlns.Lookup(elt, xmlns.AndroidName)
//	xmlns.Set(elt, xmlns.Key{Space: xmlns.AndroidURI, Local: "exported"}, "true")
//
// Prefixes only matter again when elements move between documents ([Rebind])
// and when a document is written out ([BindAndroid]).
//
// # Related Packages
//
//   - github.com/signadot/manifest-merge - the merge algorithm
//   - github.com/signadot/manifest-merge/encode - output with canonical bindings
package xmlns
