package helper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFaceHash(t *testing.T) {
	t.Run("empty string hashes to zero", func(t *testing.T) {
		require.Equal(t, int32(0), FaceHash(""))
	})

	t.Run("matches the polynomial definition", func(t *testing.T) {
		require.Equal(t, int32(97), FaceHash("a"))
		// 97*31 + 98
		require.Equal(t, int32(3105), FaceHash("ab"))
	})

	t.Run("is deterministic", func(t *testing.T) {
		payload := "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAAB"
		require.Equal(t, FaceHash(payload), FaceHash(payload))
	})

	t.Run("folds long input to 32 bits", func(t *testing.T) {
		long := make([]byte, 0, 4096)
		for i := 0; i < 4096; i++ {
			long = append(long, byte('A'+i%26))
		}
		first := FaceHash(string(long))
		require.Equal(t, first, FaceHash(string(long)))
	})
}

func TestMatchIndex(t *testing.T) {
	require.Equal(t, 2, MatchIndex(97, 5))
	require.Equal(t, 2, MatchIndex(-7, 5))
	require.Equal(t, 0, MatchIndex(42, 0))

	idx := MatchIndex(math.MinInt32, 5)
	require.GreaterOrEqual(t, idx, 0)
	require.Less(t, idx, 5)
}

func TestConfidence(t *testing.T) {
	for i := 0; i < 100; i++ {
		c := Confidence()
		require.GreaterOrEqual(t, c, 0.70)
		require.Less(t, c, 1.00)
	}
}
