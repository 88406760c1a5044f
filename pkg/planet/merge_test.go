package planet

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAndMerge_Empty(t *testing.T) {
	doc := DefaultAndMerge(map[string]any{})

	assert.Equal(t, DefaultVersion, doc.Version)
	assert.Equal(t, 0.0, doc.BaseData.Radius)
	assert.Equal(t, 7480000000.0, doc.OrbitData.SemiMajorAxis)
	assert.Equal(t, 0.333, doc.AtmospherePhysics.UpperAtmosphere)
	assert.Equal(t, Integer(4000), doc.AtmosphereVisuals.Gradient.PositionZ)
	assert.Equal(t, Prograde, doc.OrbitData.Direction)
	assert.Equal(t, "Sun", doc.OrbitData.Parent)
	assert.Equal(t, DefaultAchievementData(), doc.AchievementData)
	assert.Equal(t, Color{A: 1}, doc.BaseData.MapColor)
	assert.NotNil(t, doc.Landmarks)
	assert.NotNil(t, doc.TerrainData.FlatZones)
	assert.NotNil(t, doc.TerrainData.TerrainFormulaDifficulties)
	assert.Nil(t, doc.PostProcessing)
	assert.Nil(t, doc.Heightmap)

	if diff := cmp.Diff(Default(), doc); diff != "" {
		t.Errorf("DefaultAndMerge({}) mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultAndMerge_Nil(t *testing.T) {
	if diff := cmp.Diff(Default(), DefaultAndMerge(nil)); diff != "" {
		t.Errorf("DefaultAndMerge(nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultAndMerge_PartialSections(t *testing.T) {
	doc := DefaultAndMerge(map[string]any{
		"BASE_DATA": map[string]any{"radius": 315.0},
		"ATMOSPHERE_VISUALS_DATA": map[string]any{
			"FOG": map[string]any{
				"keys": []any{map[string]any{"distance": 100.0}},
			},
		},
		"POST_PROCESSING": map[string]any{
			"keys": []any{map[string]any{"height": 10.0}},
		},
		"LANDMARKS": []any{map[string]any{"name": "Crater"}},
		"UNKNOWN":   "ignored",
	})

	assert.Equal(t, 315.0, doc.BaseData.Radius)
	assert.Equal(t, DefaultTimewarpHeight, doc.BaseData.TimewarpHeight)
	assert.Equal(t, DefaultGradientTexture, doc.AtmosphereVisuals.Gradient.Texture)

	require.Len(t, doc.AtmosphereVisuals.Fog.Keys, 1)
	assert.Equal(t, 100.0, doc.AtmosphereVisuals.Fog.Keys[0].Distance)
	assert.Equal(t, DefaultFogColor, doc.AtmosphereVisuals.Fog.Keys[0].Color)

	require.NotNil(t, doc.PostProcessing)
	require.Len(t, doc.PostProcessing.Keys, 1)
	want := DefaultPostProcessingKey()
	want.Height = 10
	assert.Equal(t, want, doc.PostProcessing.Keys[0])

	assert.Equal(t, []Landmark{{Name: "Crater"}}, doc.Landmarks)
}

func TestDefaultAndMerge_WrongTypesFallBack(t *testing.T) {
	doc := DefaultAndMerge(map[string]any{
		"version":   42,
		"BASE_DATA": map[string]any{"radius": "big", "gravity": 9.8},
		"ORBIT_DATA": map[string]any{
			"direction": 3,
		},
		"LANDMARKS": "none",
	})

	assert.Equal(t, DefaultVersion, doc.Version)
	assert.Equal(t, DefaultRadius, doc.BaseData.Radius)
	assert.Equal(t, 9.8, doc.BaseData.Gravity)
	assert.Equal(t, Prograde, doc.OrbitData.Direction)
	assert.NotNil(t, doc.Landmarks)
}

func TestDefaultAndMerge_BadValueKeepsNeighbours(t *testing.T) {
	doc := DefaultAndMerge(map[string]any{
		"ORBIT_DATA": map[string]any{
			"direction":     3,
			"semiMajorAxis": 5.0,
			"parent":        "Earth",
		},
		"ATMOSPHERE_VISUALS_DATA": map[string]any{
			"GRADIENT": map[string]any{"positionZ": 4000.5, "height": 100.0},
			"FOG": map[string]any{
				"keys": []any{
					map[string]any{"color": map[string]any{"r": "red", "g": 0.5}, "distance": 10.0},
				},
			},
		},
		"LANDMARKS": []any{
			map[string]any{"name": "A", "angle": "x"},
			"not a landmark",
			map[string]any{"name": "B", "angle": 10.0},
		},
		"BASE_DATA": map[string]any{
			"radiusDifficultyScale": map[string]any{"Normal": 2.0, "Hard": "x"},
		},
	})

	assert.Equal(t, "Earth", doc.OrbitData.Parent)
	assert.Equal(t, 5.0, doc.OrbitData.SemiMajorAxis)
	assert.Equal(t, Prograde, doc.OrbitData.Direction)

	assert.Equal(t, DefaultAtmosphereVisuals().Gradient.PositionZ, doc.AtmosphereVisuals.Gradient.PositionZ)
	assert.Equal(t, 100.0, doc.AtmosphereVisuals.Gradient.Height)

	require.Len(t, doc.AtmosphereVisuals.Fog.Keys, 1)
	key := doc.AtmosphereVisuals.Fog.Keys[0]
	assert.Equal(t, DefaultFogColor.R, key.Color.R)
	assert.Equal(t, 0.5, key.Color.G)
	assert.Equal(t, 10.0, key.Distance)

	assert.Equal(t, []Landmark{
		{Name: "A"},
		{Name: "B", Angle: 10},
	}, doc.Landmarks)

	assert.Equal(t, Scale{"Normal": 2}, doc.BaseData.RadiusDifficultyScale)
}

func TestDefaultAndMerge_Idempotent(t *testing.T) {
	testCases := []struct {
		name    string
		partial map[string]any
	}{
		{name: "empty", partial: map[string]any{}},
		{name: "blank version", partial: map[string]any{"version": ""}},
		{
			name: "empty post processing",
			partial: map[string]any{
				"POST_PROCESSING": map[string]any{},
			},
		},
		{
			name: "null collections",
			partial: map[string]any{
				"LANDMARKS": nil,
				"TERRAIN_DATA": map[string]any{
					"flatZones":                  nil,
					"terrainFormulaDifficulties": map[string]any{"Normal": nil},
				},
			},
		},
		{
			name: "mixed",
			partial: map[string]any{
				"BASE_DATA":  map[string]any{"radius": 1000.0, "radiusDifficultyScale": map[string]any{"Hard": 2.0}},
				"ORBIT_DATA": map[string]any{"direction": -1.0, "semiMajorAxis": "x"},
				"HEIGHTMAP":  map[string]any{"points": []any{0.1, 0.9}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			once := DefaultAndMerge(tc.partial)
			m, err := once.Map()
			require.NoError(t, err)
			twice := DefaultAndMerge(m)
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Errorf("DefaultAndMerge is not idempotent (-once +twice):\n%s", diff)
			}
		})
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		wantField string
		wantErr   bool
	}{
		{name: "empty object", input: `{}`},
		{name: "integral float positionZ", input: `{"ATMOSPHERE_VISUALS_DATA":{"GRADIENT":{"positionZ":4000.0}}}`},
		{name: "retrograde", input: `{"ORBIT_DATA":{"direction":-1}}`},
		{name: "malformed", input: `{"BASE_DATA":`, wantErr: true},
		{name: "not an object", input: `[1,2,3]`, wantErr: true},
		{name: "fractional positionZ", input: `{"ATMOSPHERE_VISUALS_DATA":{"GRADIENT":{"positionZ":4000.7}}}`, wantErr: true, wantField: "ATMOSPHERE_VISUALS_DATA.GRADIENT.positionZ"},
		{name: "bad direction", input: `{"ORBIT_DATA":{"direction":2}}`, wantErr: true, wantField: "ORBIT_DATA.direction"},
		{name: "wrong type", input: `{"BASE_DATA":{"radius":"big"}}`, wantErr: true, wantField: "BASE_DATA.radius"},
		{name: "bad landmark", input: `{"LANDMARKS":[{"name":"A"},{"name":"B","angle":"x"}]}`, wantErr: true, wantField: "LANDMARKS.1.angle"},
		{name: "bad fog color", input: `{"ATMOSPHERE_VISUALS_DATA":{"FOG":{"keys":[{"color":{"r":"x"}}]}}}`, wantErr: true, wantField: "ATMOSPHERE_VISUALS_DATA.FOG.keys.0.color.r"},
		{name: "bad formula line", input: `{"TERRAIN_DATA":{"terrainFormulaDifficulties":{"Normal":["a",1]}}}`, wantErr: true, wantField: "TERRAIN_DATA.terrainFormulaDifficulties.Normal.1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Parse([]byte(tc.input))
			if !tc.wantErr {
				require.NoError(t, err)
				require.NotNil(t, doc)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrParse))
			assert.Nil(t, doc)
			if tc.wantField != "" {
				var pe *ParseError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, tc.wantField, pe.Field)
			}
		})
	}
}

func TestComplete_DoesNotAlias(t *testing.T) {
	doc := Default()
	doc.Landmarks = append(doc.Landmarks, Landmark{Name: "Peak"})
	doc.BaseData.RadiusDifficultyScale = nil

	out := Complete(doc)
	out.Landmarks[0].Name = "Changed"

	assert.Equal(t, "Peak", doc.Landmarks[0].Name)
	assert.Nil(t, doc.BaseData.RadiusDifficultyScale)
	assert.NotNil(t, out.BaseData.RadiusDifficultyScale)
}
