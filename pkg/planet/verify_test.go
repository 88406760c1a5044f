package planet

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyFile(t *testing.T) {
	dir := t.TempDir()
	exported := filepath.Join(dir, "Moon.txt")
	_, err := Export(sampleDocument(), exported)
	require.NoError(t, err)

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	testCases := []struct {
		name        string
		path        string
		ok          bool
		missing     []string
		wantProblem error
	}{
		{name: "exported file", path: exported, ok: true},
		{
			name: "old file missing sections",
			path: write("old.txt", `{"BASE_DATA":{},"ORBIT_DATA":{},"LANDMARKS":[]}`),
			ok:   true,
			missing: []string{
				SectionAtmospherePhysics,
				SectionAtmosphereVisuals,
				SectionTerrainData,
				SectionAchievementData,
			},
		},
		{
			name:        "empty post processing",
			path:        write("pp.txt", `{"POST_PROCESSING":{"keys":[]}}`),
			wantProblem: ErrValidation,
		},
		{
			name:        "bad direction",
			path:        write("dir.txt", `{"ORBIT_DATA":{"direction":0}}`),
			wantProblem: ErrParse,
		},
		{
			name:        "not json",
			path:        write("bad.txt", `{`),
			wantProblem: ErrParse,
		},
		{
			name:        "missing file",
			path:        filepath.Join(dir, "nope.txt"),
			wantProblem: ErrIO,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			report := VerifyFile(tc.path, nil)
			assert.Equal(t, tc.path, report.Path)
			assert.Equal(t, tc.ok, report.OK())
			if tc.missing != nil {
				assert.Equal(t, tc.missing, report.Missing)
			}
			if tc.wantProblem != nil {
				require.Error(t, report.Err())
				assert.True(t, errors.Is(report.Err(), tc.wantProblem), "got %v", report.Err())
			} else {
				assert.NoError(t, report.Err())
			}
		})
	}
}
