// Package parse reads Android manifest XML into etree documents.
//
// # Usage
//
//	doc, err := parse.ParseFile("AndroidManifest.xml")
//	if err != nil {
//	    return err // a *ParseError for malformed input
//	}
//
//	// Parse bytes, naming the input for error messages
//	doc, err := parse.Parse(data, parse.ParseFilename("patch.xml"))
//
// Input must be well formed and every namespace prefix must be bound; the
// document must have a root element.
//
// # Related Packages
//
//   - github.com/beevik/etree - the document model
//   - github.com/signadot/manifest-merge/encode - write documents back out
package parse
