package rowmatch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rowalign/internal/fixture"
	"github.com/katalvlaran/rowalign/rowmatch"
)

// TestGoldenCases replays testdata/cases.yaml through both entry points.
func TestGoldenCases(t *testing.T) {
	cases, err := fixture.LoadCases("testdata/cases.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			opts, err := tc.Options()
			require.NoError(t, err)
			orig, mod, err := tc.Datasets()
			require.NoError(t, err)

			got, err := rowmatch.AlignSync(orig, mod, opts)
			require.NoError(t, err)
			assert.Equal(t, tc.Want, render(got))
			assert.NoError(t, rowmatch.Validate(got, len(orig), len(mod)))

			async, err := rowmatch.AlignAsync(context.Background(), orig, mod, opts)
			require.NoError(t, err)
			assert.Equal(t, got, async)
		})
	}
}
