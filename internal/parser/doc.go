// Package parser parses JSONPath queries with small backtracking combinators
// and reports one diagnostic per failed query.
//
// Every leaf failure is recorded twice. The *Error value travels back along
// the normal return path and is merged by alt and discarded by opt and many0.
// The session Backtrace keeps the failure that got farthest into the input,
// including failures of discarded branches. ErrorLabels reads the Backtrace
// for the primary label and the surviving *Error for the "while parsing"
// notes.
package parser
