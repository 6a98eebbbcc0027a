// Package token defines the lexical tokens of a scanf-style format string.
// Invariants:
//   - A token is exactly one of Literal, Whitespace or Conversion.
//   - Literal spans are non-empty and hold no whitespace and no unescaped '%'.
//     "%%" becomes a one-byte Literal over the first '%' with Escaped set.
//   - Whitespace tokens are maximal; two never appear next to each other.
//   - Conversion.Scanset is non-nil iff Conversion.Spec == '['.
//   - Extent() of consecutive tokens abut, and together they cover the
//     whole input exactly once.
package token
