package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/planetmaker/internal/config"
	"github.com/provide-io/planetmaker/internal/workspace"
	"github.com/provide-io/planetmaker/pkg/planet"
)

func testApp(t *testing.T) *app {
	t.Helper()
	return &app{
		cfg:    config.DefaultConfig(),
		logger: hclog.NewNullLogger(),
		ws:     workspace.New(t.TempDir()),
	}
}

func TestPlanetName(t *testing.T) {
	assert.Equal(t, "Moon", planetName("/tmp/planets/Moon.txt"))
	assert.Equal(t, "Mars", planetName("Mars"))
}

func TestDraftHandler(t *testing.T) {
	a := testApp(t)
	dir := t.TempDir()
	draft := filepath.Join(dir, "draft.txt")

	_, err := a.draftHandler(draft, "")
	assert.ErrorContains(t, err, "--out")

	_, err = a.draftHandler(draft, draft)
	assert.ErrorContains(t, err, "must differ")

	h, err := a.draftHandler(draft, filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.NotNil(t, h)

	h, err = a.draftHandler(filepath.Join(dir, "moon.planet"), "")
	require.NoError(t, err)
	assert.NotNil(t, h)
}

func TestRebuildPlanet(t *testing.T) {
	a := testApp(t)
	dir := t.TempDir()
	draft := filepath.Join(dir, "draft.txt")
	out := filepath.Join(dir, "game", "Moon.txt")
	require.NoError(t, os.WriteFile(draft, []byte(`{"BASE_DATA":{"radius":1234}}`), 0o644))

	require.NoError(t, a.rebuildPlanet(out)(context.Background(), draft))

	doc, err := planet.Load(out)
	require.NoError(t, err)
	assert.Equal(t, 1234.0, doc.BaseData.Radius)
	assert.Equal(t, planet.DefaultSemiMajorAxis, doc.OrbitData.SemiMajorAxis)
}

func TestRebuildPlanetKeepsOutputOnBadDraft(t *testing.T) {
	a := testApp(t)
	dir := t.TempDir()
	draft := filepath.Join(dir, "draft.txt")
	out := filepath.Join(dir, "Moon.txt")
	require.NoError(t, os.WriteFile(out, []byte("previous"), 0o644))
	require.NoError(t, os.WriteFile(draft, []byte(`{"ORBIT_DATA":{"direction":0}}`), 0o644))

	err := a.rebuildPlanet(out)(context.Background(), draft)
	require.Error(t, err)
	assert.True(t, errors.Is(err, planet.ErrParse))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}

func TestRebuildScript(t *testing.T) {
	a := testApp(t)
	dir := t.TempDir()
	draft := filepath.Join(dir, "moon.planet")
	out := filepath.Join(dir, "Moon.txt")
	require.NoError(t, os.WriteFile(draft, []byte("set planet radius 1234\nadd landmarks landmarks\nset landmarks landmarks.0.name \"Big Crater\"\n"), 0o644))

	require.NoError(t, a.rebuildScript(out)(context.Background(), draft))

	doc, err := planet.Load(out)
	require.NoError(t, err)
	assert.Equal(t, 1234.0, doc.BaseData.Radius)
	require.Len(t, doc.Landmarks, 1)
	assert.Equal(t, "Big Crater", doc.Landmarks[0].Name)
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, &planet.Report{
		Path:     "Moon.txt",
		Missing:  []string{planet.SectionLandmarks},
		Problems: []error{errors.New("bad direction")},
	})
	out := buf.String()
	assert.Contains(t, out, "✗ Moon.txt")
	assert.Contains(t, out, "missing LANDMARKS")
	assert.Contains(t, out, "bad direction")

	buf.Reset()
	printReport(&buf, &planet.Report{Path: "Mars.txt"})
	assert.Equal(t, "✓ Mars.txt\n", buf.String())
}

func TestSessionUsesConfiguredVersion(t *testing.T) {
	a := testApp(t)
	a.cfg.Version = "2.1"
	out := filepath.Join(t.TempDir(), "Moon.txt")

	s := a.session()
	_, err := s.Export(out)
	require.NoError(t, err)

	doc, err := planet.Load(out)
	require.NoError(t, err)
	assert.Equal(t, "2.1", doc.Version)
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planetmaker", "config.yaml")

	require.NoError(t, initConfig(path, false))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Version, cfg.Version)

	assert.ErrorContains(t, initConfig(path, false), "already exists")
	assert.NoError(t, initConfig(path, true))
}

func TestBuildStamp(t *testing.T) {
	stamp := readBuildStamp()
	assert.NotEmpty(t, stamp.Revision)
	assert.NotEmpty(t, stamp.Time)

	s := buildStamp{Revision: "abc123", Time: "2025-01-02T03:04:05Z", Modified: true}
	assert.Equal(t, "commit abc123+dirty, built 2025-01-02T03:04:05Z", s.String())
	s.Modified = false
	assert.Equal(t, "commit abc123, built 2025-01-02T03:04:05Z", s.String())
}
