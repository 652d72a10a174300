package mf2

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// TestGolden_MatchesFixtures parses every testdata/*.html fixture and checks
// its MF2 JSON against the corresponding *_golden.json, regenerated by
// cmd/update-golden. Comparison goes through the generic JSON shape so
// MarshalIndent formatting doesn't matter, only the decoded structure.
func TestGolden_MatchesFixtures(t *testing.T) {
	inputs, err := filepath.Glob("testdata/*.html")
	require.NoError(t, err)
	require.NotEmpty(t, inputs)

	for _, inputFile := range inputs {
		inputFile := inputFile
		t.Run(filepath.Base(inputFile), func(t *testing.T) {
			goldenFile := inputFile[:len(inputFile)-len(".html")] + "_golden.json"

			f, err := os.Open(inputFile)
			require.NoError(t, err)
			defer f.Close()

			doc, err := Parse(f, DefaultBaseURL)
			require.NoError(t, err)

			got, err := doc.AsRawData()
			require.NoError(t, err)

			wantBytes, err := os.ReadFile(goldenFile)
			require.NoError(t, err)
			var want any
			require.NoError(t, json.Unmarshal(wantBytes, &want))

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s mismatch against %s (-want +got):\n%s", inputFile, goldenFile, diff)
			}
		})
	}
}
