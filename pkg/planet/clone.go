package planet

import "maps"

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := *d
	out.BaseData.RadiusDifficultyScale = maps.Clone(d.BaseData.RadiusDifficultyScale)
	out.BaseData.GravityDifficultyScale = maps.Clone(d.BaseData.GravityDifficultyScale)
	out.AtmospherePhysics.CurveScale = maps.Clone(d.AtmospherePhysics.CurveScale)
	out.AtmospherePhysics.HeightDifficultyScale = maps.Clone(d.AtmospherePhysics.HeightDifficultyScale)
	out.AtmosphereVisuals.Fog.Keys = cloneSlice(d.AtmosphereVisuals.Fog.Keys)
	out.TerrainData.FlatZones = cloneSlice(d.TerrainData.FlatZones)
	out.TerrainData.TextureFormula = cloneSlice(d.TerrainData.TextureFormula)
	if d.TerrainData.TerrainFormulaDifficulties != nil {
		out.TerrainData.TerrainFormulaDifficulties = make(map[string][]string, len(d.TerrainData.TerrainFormulaDifficulties))
		for name, lines := range d.TerrainData.TerrainFormulaDifficulties {
			out.TerrainData.TerrainFormulaDifficulties[name] = cloneSlice(lines)
		}
	}
	out.OrbitData.SmaDifficultyScale = maps.Clone(d.OrbitData.SmaDifficultyScale)
	out.OrbitData.SoiDifficultyScale = maps.Clone(d.OrbitData.SoiDifficultyScale)
	out.Landmarks = cloneSlice(d.Landmarks)
	if d.PostProcessing != nil {
		out.PostProcessing = &PostProcessing{Keys: cloneSlice(d.PostProcessing.Keys)}
	}
	if d.Heightmap != nil {
		out.Heightmap = &Heightmap{Points: cloneSlice(d.Heightmap.Points)}
	}
	return &out
}

// cloneSlice keeps the nil/empty distinction, unlike slices.Clone on an empty slice.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
