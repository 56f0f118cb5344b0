package codingtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKTableCoversAllCoefficients(t *testing.T) {
	want := [][]float32{K1[:], K2[:], K3[:], K4[:], K5[:], K6[:], K7[:], K8[:], K9[:], K10[:]}
	for i, table := range want {
		got, err := KTable(i)
		require.NoError(t, err)
		assert.Equal(t, table, got, "table k%d", i+1)
	}
}

func TestKTableOutOfRange(t *testing.T) {
	_, err := KTable(-1)
	assert.Error(t, err)

	_, err = KTable(NCoeffs)
	assert.Error(t, err)
}

func TestTableLengthsMatchCoeffWidths(t *testing.T) {
	wantLens := []int{32, 32, 16, 16, 16, 16, 16, 8, 8, 8}
	for i, wantLen := range wantLens {
		table, err := KTable(i)
		require.NoError(t, err)
		assert.Len(t, table, wantLen, "table k%d", i+1)
	}
}

func TestFrameWidths(t *testing.T) {
	assert.Equal(t, 4, SilentFrameBits)
	assert.Equal(t, 11, RepeatFrameBits)
	assert.Equal(t, 29, UnvoicedFrameBits)
	assert.Equal(t, 50, VoicedFrameBits)
	assert.Equal(t, 4, StopFrameBits)
}
