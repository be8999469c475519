// Package encode writes manifest documents back out.
//
// # Usage
//
//	// Encode to a writer
//	err := encode.Encode(doc, os.Stdout)
//
//	// Encode re-indented, coloured for a terminal
//	err := encode.Encode(doc, os.Stdout, encode.EncodeIndent(4), encode.EncodeColors(encode.NewColors()))
//
//	// Replace a file atomically
//	err := encode.WriteFile("AndroidManifest.xml", doc)
//
// Output always binds the Android namespace to the "android" prefix and
// starts with an XML declaration. The document passed in is never modified.
//
// # Related Packages
//
//   - github.com/signadot/manifest-merge/parse - read documents
//   - github.com/signadot/manifest-merge/xmlns - namespace bindings
package encode
