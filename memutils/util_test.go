package memutils_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/rhicore/memutils"
)

func TestAlignUp(t *testing.T) {
	testCases := map[string]struct {
		value     int
		alignment uint
		expected  int
	}{
		"Aligned":     {value: 256, alignment: 256, expected: 256},
		"Unaligned":   {value: 257, alignment: 256, expected: 512},
		"Zero":        {value: 0, alignment: 256, expected: 0},
		"NoAlignment": {value: 13, alignment: 1, expected: 13},
		"ZeroAlign":   {value: 13, alignment: 0, expected: 13},
	}

	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, testCase.expected, memutils.AlignUp(testCase.value, testCase.alignment))
		})
	}
}

func TestCheckPow2(t *testing.T) {
	require.NoError(t, memutils.CheckPow2(256, "alignment"))
	require.NoError(t, memutils.CheckPow2(uint(1), "alignment"))

	err := memutils.CheckPow2(24, "alignment")
	require.ErrorIs(t, err, memutils.PowerOfTwoError)
	require.Equal(t, "alignment is 24: number must be a power of two", err.Error())

	require.ErrorIs(t, memutils.CheckPow2(0, "alignment"), memutils.PowerOfTwoError)
}
