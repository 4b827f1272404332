// Package token defines lexical token kinds for the jpath query language.
// Invariants:
//   - Token.Text is the exact source slice covered by Token.Span.
//   - The stream produced by the lexer always ends with exactly one EOF token
//     whose span is empty and sits at the end of the lexed range.
//   - Keywords are case-sensitive and only recognised in lowercase.
package token
