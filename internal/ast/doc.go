// Package ast holds the syntax tree of a JSONPath query. Every node renders
// back to canonical query text with String(); parsing that text again yields
// an equal tree.
package ast
