package conformance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const ldBNVector = `[
  {
    "name": "06 AB",
    "initial": {"a":0,"b":0,"c":0,"d":0,"e":0,"f":0,"h":0,"l":0,"pc":0,"sp":0,"ime":0,"ie":0,
      "ram": [[0,6],[1,171]]},
    "final": {"a":0,"b":171,"c":0,"d":0,"e":0,"f":0,"h":0,"l":0,"pc":2,"sp":0,"ime":0,"ie":0,
      "ram": [[0,6],[1,171]]},
    "cycles": [[0,6,"read"],[1,171,"read"]]
  }
]`

func TestLoadCases(t *testing.T) {
	cases, err := LoadCases([]byte(ldBNVector))
	require.NoError(t, err)
	require.Len(t, cases, 1)
	require.Equal(t, "06 AB", cases[0].Name)
}

func TestRunLDBNPasses(t *testing.T) {
	cases, err := LoadCases([]byte(ldBNVector))
	require.NoError(t, err)

	result := Run(cases[0])
	require.True(t, result.Pass, "expected vector to pass, diff:\n%s", result.Diff)
}

func TestRunDetectsMismatch(t *testing.T) {
	cases, err := LoadCases([]byte(ldBNVector))
	require.NoError(t, err)

	cases[0].Final.B = 0x00 // deliberately wrong expectation
	result := Run(cases[0])
	require.False(t, result.Pass)
	require.Contains(t, result.Diff, "b mismatch")
}

func TestSummarize(t *testing.T) {
	results := []Result{{Pass: true}, {Pass: false}, {Pass: true}}
	passed, failed := Summarize(results)
	require.Equal(t, 2, passed)
	require.Equal(t, 1, failed)
}
