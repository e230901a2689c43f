package fingerprint

import "strconv"

// Hash reduces a string to a short base-36 token using a 32-bit
// shift-and-subtract accumulator. It is deterministic but not
// collision-resistant and must never be used for anything
// security-sensitive; it only buckets fingerprint signals.
func Hash(s string) string {
	var h int32
	for _, r := range s {
		h = h<<5 - h + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 36)
}
