package planet

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// DefaultAndMerge builds a complete document from a partially filled one, such as a file
// written by an older editor. Sections and fields missing from partial take their default
// values. A value of the wrong type falls back to its default without disturbing the fields
// and list items around it, so the call never fails.
// DefaultAndMerge(DefaultAndMerge(x).Map()) equals DefaultAndMerge(x).
func DefaultAndMerge(partial map[string]any) *Document {
	doc := Default()
	if raw, err := json.Marshal(partial); err == nil {
		d := &decoder{}
		d.value(reflect.ValueOf(doc).Elem(), raw, "")
	}
	if doc.Version == "" {
		doc.Version = DefaultVersion
	}
	doc.fill()
	return doc
}

// Complete returns a copy of doc with every empty collection back-filled so the exported
// file never carries null where the game expects a list or an object.
func Complete(doc *Document) *Document {
	if doc == nil {
		return Default()
	}
	out := doc.Clone()
	out.fill()
	return out
}

// Parse decodes planet file content strictly: malformed JSON and values that cannot fit
// the schema are reported as a ParseError naming the offending field, e.g.
// LANDMARKS.0.angle. Missing sections take their defaults.
func Parse(data []byte) (*Document, error) {
	if !json.Valid(data) {
		var v any
		return nil, &ParseError{Err: json.Unmarshal(data, &v)}
	}
	doc := Default()
	d := &decoder{strict: true}
	if !d.value(reflect.ValueOf(doc).Elem(), data, "") || d.err != nil {
		return nil, &ParseError{Field: d.path, Err: d.err}
	}
	if doc.Version == "" {
		doc.Version = DefaultVersion
	}
	doc.fill()
	return doc, nil
}

// Map returns the document as a generic JSON mapping.
func (d *Document) Map() (map[string]any, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return m, nil
}

// fill replaces nil collections with empty ones.
func (d *Document) fill() {
	fillScale(&d.BaseData.RadiusDifficultyScale)
	fillScale(&d.BaseData.GravityDifficultyScale)
	fillScale(&d.AtmospherePhysics.CurveScale)
	fillScale(&d.AtmospherePhysics.HeightDifficultyScale)
	fillScale(&d.OrbitData.SmaDifficultyScale)
	fillScale(&d.OrbitData.SoiDifficultyScale)

	if d.AtmosphereVisuals.Fog.Keys == nil {
		d.AtmosphereVisuals.Fog.Keys = []FogKey{}
	}

	t := &d.TerrainData
	if t.FlatZones == nil {
		t.FlatZones = []FlatZone{}
	}
	if t.TerrainFormulaDifficulties == nil {
		t.TerrainFormulaDifficulties = map[string][]string{}
	}
	for name, lines := range t.TerrainFormulaDifficulties {
		if lines == nil {
			t.TerrainFormulaDifficulties[name] = []string{}
		}
	}
	if t.TextureFormula == nil {
		t.TextureFormula = []string{}
	}

	if d.Landmarks == nil {
		d.Landmarks = []Landmark{}
	}
	if d.PostProcessing != nil && d.PostProcessing.Keys == nil {
		d.PostProcessing.Keys = []PostProcessingKey{}
	}
	if d.Heightmap != nil && d.Heightmap.Points == nil {
		d.Heightmap.Points = []float64{}
	}
}

func fillScale(s *Scale) {
	if *s == nil {
		*s = Scale{}
	}
}
