package helper

import (
	"math/rand"
	"unicode/utf16"
)

// FaceHash computes the classic polynomial rolling hash the browser client
// uses for its capture payloads: h = h*31 + code over UTF-16 code units,
// folded to 32 bits on every step.
func FaceHash(faceData string) int32 {
	var h int32
	for _, code := range utf16.Encode([]rune(faceData)) {
		h = h*31 + int32(code)
	}
	return h
}

// MatchIndex reduces a face hash onto the candidate window [0, n).
// The hash is widened before negation so MinInt32 cannot overflow.
func MatchIndex(hash int32, n int) int {
	if n <= 0 {
		return 0
	}
	v := int64(hash)
	if v < 0 {
		v = -v
	}
	return int(v % int64(n))
}

// Confidence returns a pseudo-random match confidence in [0.70, 1.00).
func Confidence() float64 {
	return 0.70 + rand.Float64()*0.30
}
