package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/tms-express-go/lpc10/internal/codingtable"
)

func TestClosestIndexBounds(t *testing.T) {
	table := codingtable.RMS[:]

	assert.Equal(t, 0, ClosestIndex(-100, table))
	assert.Equal(t, len(table)-1, ClosestIndex(100000, table))
}

func TestClosestIndexTieBreaksLow(t *testing.T) {
	table := []float32{0, 10, 20}
	// 5 is equidistant between index 0 (0) and index 1 (10); lower wins.
	assert.Equal(t, 0, ClosestIndex(5, table))
}

func TestClosestIndexEmptyTable(t *testing.T) {
	assert.Equal(t, 0, ClosestIndex(42, nil))
}

// TestQuantizerIdempotence establishes property 4: every table entry
// quantizes back to its own index.
func TestQuantizerIdempotence(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tableIdx := rapid.IntRange(0, codingtable.NCoeffs-1).Draw(rt, "tableIdx")
		table, err := codingtable.KTable(tableIdx)
		if err != nil {
			rt.Fatal(err)
		}

		entryIdx := rapid.IntRange(0, len(table)-1).Draw(rt, "entryIdx")
		v := table[entryIdx]

		got := ClosestIndex(v, table)
		assert.Equal(t, float32(v), table[got])
	})
}
