// Package manifest merges Android manifest documents.
//
// A patch manifest is folded into a base manifest one top-level element at
// a time. Each patch element is matched against the base root's children by
// qualified tag and by its key attribute (android:name unless configured
// otherwise). A matching element receives the patch element's attributes.
// An unmatched element is appended unless the base already holds an equal
// element, in which case it is skipped.
//
// Merge works on a copy of the base document and never modifies its
// inputs. Use package encode to serialise the result.
package manifest
