package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/planetmaker/pkg/planet"
)

func newTestSession() *Session {
	logger := hclog.New(&hclog.LoggerOptions{Name: "session_test", Level: hclog.Debug})
	return New(logger, planet.ExportOptions{})
}

func TestSession_Lifecycle(t *testing.T) {
	s := newTestSession()
	assert.Equal(t, StateDefault, s.State())
	assert.Empty(t, s.Path())

	form := s.Editor(planet.SectionBaseData).Form()
	require.NoError(t, form.Set("radius", "315000"))
	require.NoError(t, s.Collect())
	assert.Equal(t, StateEdited, s.State())
	assert.Equal(t, 315000.0, s.Document().BaseData.Radius)

	path := filepath.Join(t.TempDir(), "planets", "Moon.txt")
	written, err := s.Export(path)
	require.NoError(t, err)
	assert.Equal(t, path, written)
	assert.Equal(t, StateExported, s.State())

	other := newTestSession()
	require.NoError(t, other.Load(path))
	assert.Equal(t, StateLoaded, other.State())
	if diff := cmp.Diff(s.Document(), other.Document()); diff != "" {
		t.Errorf("loaded document mismatch (-exported +loaded):\n%s", diff)
	}
	v, err := other.Editor(planet.SectionBaseData).Form().Get("radius")
	require.NoError(t, err)
	assert.Equal(t, "315000", v)
}

func TestSession_LoadFailureLeavesDocument(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.Editor(planet.SectionOrbitData).Form().Set("parent", "Earth"))
	require.NoError(t, s.Collect())
	before := s.Document()

	bad := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte(`{"ORBIT_DATA": {"direction": 0}}`), 0o644))

	err := s.Load(bad)
	assert.True(t, errors.Is(err, planet.ErrParse))
	assert.Equal(t, StateEdited, s.State())
	if diff := cmp.Diff(before, s.Document()); diff != "" {
		t.Errorf("document changed after failed load (-before +after):\n%s", diff)
	}
	v, err := s.Editor(planet.SectionOrbitData).Form().Get("parent")
	require.NoError(t, err)
	assert.Equal(t, "Earth", v)
}

func TestSession_InvalidFieldAbortsExport(t *testing.T) {
	s := newTestSession()
	path := filepath.Join(t.TempDir(), "Mars.txt")
	_, err := s.Export(path)
	require.NoError(t, err)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, s.Editor(planet.SectionBaseData).Form().Set("radius", "100"))
	require.NoError(t, s.Editor(planet.SectionAtmosphereVisuals).Form().Set("GRADIENT.positionZ", "4000.7"))

	_, err = s.Export(path)
	assert.True(t, errors.Is(err, planet.ErrValidation))
	assert.Equal(t, 0.0, s.Document().BaseData.Radius, "a failed collect must not be applied")

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSession_DocumentIsACopy(t *testing.T) {
	s := newTestSession()
	doc := s.Document()
	doc.Landmarks = append(doc.Landmarks, planet.Landmark{Name: "X"})
	assert.Empty(t, s.Document().Landmarks)
}

func TestSession_Reset(t *testing.T) {
	s := newTestSession()
	loaded := planet.Default()
	loaded.OrbitData.Parent = "Jupiter"
	s.Use(loaded)
	s.Reset()

	assert.Equal(t, StateDefault, s.State())
	v, err := s.Editor(planet.SectionOrbitData).Form().Get("parent")
	require.NoError(t, err)
	assert.Equal(t, planet.DefaultParent, v)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "exported", StateExported.String())
	assert.Equal(t, "State(9)", State(9).String())
}

func TestSession_ExportKeepsVersion(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Moon.txt")
	doc := planet.Default()
	doc.Version = "1.7"
	_, err := planet.Export(doc, src)
	require.NoError(t, err)

	s := newTestSession()
	require.NoError(t, s.Load(src))
	require.NoError(t, s.Editor(planet.SectionBaseData).Form().Set("radius", "42"))
	dst := filepath.Join(dir, "Moon2.txt")
	_, err = s.Export(dst)
	require.NoError(t, err)

	out, err := planet.Load(dst)
	require.NoError(t, err)
	assert.Equal(t, "1.7", out.Version)
	assert.Equal(t, 42.0, out.BaseData.Radius)

	fresh := newTestSession()
	custom := planet.Default()
	custom.Version = "2.0"
	fresh.Use(custom)
	require.NoError(t, fresh.Collect())
	assert.Equal(t, "2.0", fresh.Document().Version)
}
