// Package hashutil provides the string folding hash that anchors every
// deterministic derivation in repoglyph. Two conforming implementations
// must agree on these values bit for bit, so the fold is pinned to 32-bit
// signed arithmetic with wraparound.
package hashutil

// StringHash folds the characters of s into a 32-bit hash:
// h = h*31 + code, wrapping at int32 boundaries, then the absolute value.
// The result is stable across platforms and releases; several fixtures in
// the test suite depend on the exact constants it produces.
func StringHash(s string) uint32 {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}

	return uint32(v)
}
