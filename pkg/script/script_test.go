package script

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/planetmaker/pkg/editor"
	"github.com/provide-io/planetmaker/pkg/heightmap"
	"github.com/provide-io/planetmaker/pkg/planet"
	"github.com/provide-io/planetmaker/pkg/session"
)

func TestRunner_EditAndExport(t *testing.T) {
	dir := t.TempDir()
	hm := &heightmap.Map{Points: []float64{0.5, 1}}
	require.NoError(t, hm.Save(filepath.Join(dir, "ridge.txt"), planet.ExportOptions{}))

	s := session.New(nil, planet.ExportOptions{})
	r := NewRunner(s, nil)
	r.Resolve = func(arg string) string { return filepath.Join(dir, arg) }

	script := `
# build a small moon
set planet radius 1500
set ORBIT_DATA parent Earth
set orbit direction -1
set orbit smaDifficultyScale 1,2,5
color 255 0 51
add landmarks landmarks
add landmarks landmarks
set landmarks landmarks.1.name "Sea of Rains"
remove landmarks landmarks 0
add post-processing keys
heightmap ridge.txt
export Moon.txt
`
	require.NoError(t, r.Run(strings.NewReader(script)))
	assert.Equal(t, session.StateExported, s.State())

	doc, err := planet.Load(filepath.Join(dir, "Moon.txt"))
	require.NoError(t, err)
	assert.Equal(t, 1500.0, doc.BaseData.Radius)
	assert.Equal(t, "Earth", doc.OrbitData.Parent)
	assert.Equal(t, planet.Retrograde, doc.OrbitData.Direction)
	assert.Equal(t, planet.DifficultyScale(1, 2, 5), doc.OrbitData.SmaDifficultyScale)
	assert.Equal(t, planet.Color{R: 1, G: 0, B: 0.2, A: 1}, doc.BaseData.MapColor)
	assert.Equal(t, []planet.Landmark{{Name: "Sea of Rains"}}, doc.Landmarks)
	require.NotNil(t, doc.PostProcessing)
	assert.Len(t, doc.PostProcessing.Keys, 1)
	require.NotNil(t, doc.Heightmap)
	assert.Equal(t, []float64{0.5, 1}, doc.Heightmap.Points)

	require.NoError(t, r.Exec("set planet gravity 1.6"))
	require.NoError(t, r.Exec("export"))
	doc, err = planet.Load(filepath.Join(dir, "Moon.txt"))
	require.NoError(t, err)
	assert.Equal(t, 1.6, doc.BaseData.Gravity)
}

func TestRunner_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{name: "unknown command", line: "fly away", want: ErrUnknownCommand},
		{name: "unknown section", line: "set rings count 3", want: ErrUnknownSection},
		{name: "unknown field", line: "set orbit colour red", want: editor.ErrUnknownField},
		{name: "set usage", line: "set orbit parent", want: ErrUsage},
		{name: "unknown group", line: "add orbit moons", want: editor.ErrNoGroup},
		{name: "bad row index", line: "remove landmarks landmarks 0", want: editor.ErrRowIndex},
		{name: "color range", line: "color 256 0 0", want: planet.ErrValidation},
		{name: "export without path", line: "export", want: ErrUsage},
		{name: "load missing", line: "load /does/not/exist.txt", want: planet.ErrIO},
		{name: "quote", line: `set orbit parent "Earth`, want: ErrUnclosedQuote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRunner(session.New(nil, planet.ExportOptions{}), nil)
			err := r.Exec(tt.line)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestRunner_StopsAtFailingLine(t *testing.T) {
	s := session.New(nil, planet.ExportOptions{})
	r := NewRunner(s, nil)
	path := filepath.Join(t.TempDir(), "Mars.txt")

	err := r.Run(strings.NewReader("set visuals GRADIENT.positionZ 4000.7\nexport " + path + "\nset orbit parent Never\n"))
	var le *LineError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 2, le.Line)
	assert.True(t, errors.Is(err, planet.ErrValidation))

	v, err := s.Editor(planet.SectionOrbitData).Form().Get("parent")
	require.NoError(t, err)
	assert.Equal(t, planet.DefaultParent, v)
}

func TestDump_Replays(t *testing.T) {
	src := session.New(nil, planet.ExportOptions{})
	doc := planet.Default()
	doc.Landmarks = []planet.Landmark{{Name: "Bob's \"Peak\"", Angle: 12}}
	doc.TerrainData.TextureFormula = []string{"A = 1", "B = 2"}
	doc.AtmosphereVisuals.Fog.Keys = []planet.FogKey{planet.DefaultFogKey()}
	doc.Heightmap = &planet.Heightmap{Points: []float64{0.1, 0.2}}
	src.Use(doc)
	require.NoError(t, src.Collect())

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, src.Editors()))

	dst := session.New(nil, planet.ExportOptions{})
	require.NoError(t, NewRunner(dst, nil).Run(&buf))
	require.NoError(t, dst.Collect())
	if diff := cmp.Diff(src.Document(), dst.Document()); diff != "" {
		t.Errorf("replayed document mismatch (-src +dst):\n%s", diff)
	}
}

func TestRunner_DirectionNames(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{input: "Retrograde", want: "-1"},
		{input: "prograde", want: "1"},
		{input: "-1", want: "-1"},
		{input: "+1", want: "1"},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			s := session.New(nil, planet.ExportOptions{})
			r := NewRunner(s, nil)
			require.NoError(t, r.Exec("set orbit direction "+tc.input))
			v, err := s.Editor(planet.SectionOrbitData).Form().Get("direction")
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
		})
	}

	s := session.New(nil, planet.ExportOptions{})
	err := NewRunner(s, nil).Exec("set orbit direction sideways")
	assert.True(t, errors.Is(err, planet.ErrValidation))
	v, err := s.Editor(planet.SectionOrbitData).Form().Get("direction")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}
