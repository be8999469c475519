// Package libdiff renders differences between two encodings of a manifest.
//
// [Lines] computes a line diff, [Write] prints it as unified hunks and
// [Value] marks up the change between two attribute values.
package libdiff
