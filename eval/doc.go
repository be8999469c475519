// Package eval expands manifest placeholders.
//
// A placeholder is ${expr} inside an attribute value, where expr is an
// expr-lang expression evaluated against an [Env]. A plain name such as
// ${applicationId} is the common case. Within an expression a backslash
// escapes the next character, so \} does not close it. An unclosed
// placeholder is kept literally.
package eval
