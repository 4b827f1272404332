package driver

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"
)

// QueryExt is the extension of query files picked up by CheckDir.
const QueryExt = ".jsonpath"

// QueryLine locates one query inside a query file.
type QueryLine struct {
	Line  int    // 1-based
	Start uint32 // byte offset of the first non-blank character
	End   uint32 // byte offset after the last non-blank character
}

// SplitQueries returns one entry per non-blank line; lines whose first
// non-blank character is '#' are comments.
func SplitQueries(content []byte) []QueryLine {
	var out []QueryLine
	off := 0
	for n := 1; off <= len(content); n++ {
		end := bytes.IndexByte(content[off:], '\n')
		if end < 0 {
			end = len(content) - off
		}
		line := content[off : off+end]
		trimmed := bytes.TrimLeft(line, " \t\r")
		if len(trimmed) > 0 && trimmed[0] != '#' {
			lead := len(line) - len(trimmed)
			body := bytes.TrimRight(trimmed, " \t\r")
			out = append(out, QueryLine{
				Line:  n,
				Start: offset(off + lead),
				End:   offset(off + lead + len(body)),
			})
		}
		off += end + 1
	}
	return out
}

func offset(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("query offset overflow: %w", err))
	}
	return v
}
