package driver

import (
	"crypto/sha256"
	"encoding/binary"
)

// Digest is a SHA-256 value used as a cache key.
type Digest [32]byte

// combineDigest: H(content || part1 || part2 ...). Порядок частей важен.
func combineDigest(content Digest, parts ...uint64) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	var buf [8]byte
	for _, p := range parts {
		binary.LittleEndian.PutUint64(buf[:], p)
		_, _ = h.Write(buf[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// checkKey keys a cached check result. The diagnostics limit is part of the
// key since a truncated bag must not be served for a larger limit.
func checkKey(content Digest, maxDiagnostics int) Digest {
	limit := uint64(0)
	if maxDiagnostics > 0 {
		limit = uint64(maxDiagnostics)
	}
	return combineDigest(content, uint64(diskCacheSchemaVersion), limit)
}
