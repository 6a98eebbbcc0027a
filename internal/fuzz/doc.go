// Package fuzztests houses Go fuzz harnesses for the format lexer. Its goal
// is to guard against panics and broken partitions on arbitrary inputs.
//
// The harnesses load bytes into a FileSet, lex them and check the
// structural invariants of every successful parse.
//
// Dependencies: internal/source, internal/lexer, internal/driver (catalog
// seeds), internal/testkit.
package fuzztests
