package editor

import (
	"maps"

	"github.com/provide-io/planetmaker/pkg/planet"
)

const (
	flatZoneGroup     = "flatZones"
	normalDifficulty  = "Normal"
	normalFormulaKey  = "terrainFormulaDifficulties.Normal"
	textureFormulaKey = "textureFormula"
)

// TerrainEditor edits TERRAIN_DATA. Only the Normal formula is editable; formulas for other
// difficulties are carried over from the populated document untouched.
type TerrainEditor struct {
	form   *Form
	fields map[string]*Field
	zones  *Group

	otherFormulas map[string][]string
	hadNormal     bool
}

func NewTerrainEditor() *TerrainEditor {
	zones := &Group{Key: flatZoneGroup, Label: "Flat zone", newRow: func() *Row { return flatZoneRow(planet.DefaultFlatZone()) }}
	form := &Form{
		Fields: []*Field{
			field("planetTexture", "Planet Texture", KindText),
			field("planetTextureCutout", "Planet Texture Cutout", KindFloat),
			field("surfaceTexture_A", "Surface Texture A", KindText),
			field("surfaceTextureSize_A.x", "Surface Texture A Size X", KindFloat),
			field("surfaceTextureSize_A.y", "Surface Texture A Size Y", KindFloat),
			field("surfaceTexture_B", "Surface Texture B", KindText),
			field("surfaceTextureSize_B.x", "Surface Texture B Size X", KindFloat),
			field("surfaceTextureSize_B.y", "Surface Texture B Size Y", KindFloat),
			field("terrainTexture_C", "Terrain Texture C", KindText),
			field("terrainTextureSize_C.x", "Terrain Texture C Size X", KindFloat),
			field("terrainTextureSize_C.y", "Terrain Texture C Size Y", KindFloat),
			field("surfaceLayerSize", "Surface Layer Size", KindFloat),
			field("minFade", "Min Fade", KindFloat),
			field("maxFade", "Max Fade", KindFloat),
			field("shadowIntensity", "Shadow Intensity", KindFloat),
			field("shadowHeight", "Shadow Height", KindFloat),
			field("verticeSize", "Vertice Size", KindFloat),
			field("collider", "Collider", KindBool),
			field(normalFormulaKey, "Terrain Formula (Normal)", KindLines),
			field(textureFormulaKey, "Texture Formula", KindLines),
		},
		Groups: []*Group{zones},
	}
	e := &TerrainEditor{form: form, fields: byKey(form.Fields), zones: zones}
	e.Populate(planet.Default())
	return e
}

func flatZoneRow(z planet.FlatZone) *Row {
	return &Row{Fields: []*Field{
		{Key: "height", Label: "Height", Kind: KindFloat, Value: formatFloat(z.Height)},
		{Key: "angle", Label: "Angle", Kind: KindFloat, Value: formatFloat(z.Angle)},
		{Key: "width", Label: "Width", Kind: KindFloat, Value: formatFloat(z.Width)},
		{Key: "transition", Label: "Transition", Kind: KindFloat, Value: formatFloat(z.Transition)},
	}}
}

func (e *TerrainEditor) Section() string { return planet.SectionTerrainData }
func (e *TerrainEditor) Title() string   { return "Terrain" }
func (e *TerrainEditor) Form() *Form     { return e.form }

func (e *TerrainEditor) Populate(doc *planet.Document) {
	t := doc.TerrainData
	tex := t.TextureData
	set(e.form.Fields, map[string]string{
		"planetTexture":          tex.PlanetTexture,
		"planetTextureCutout":    formatFloat(tex.PlanetTextureCutout),
		"surfaceTexture_A":       tex.SurfaceTextureA,
		"surfaceTextureSize_A.x": formatFloat(tex.SurfaceTextureSizeA.X),
		"surfaceTextureSize_A.y": formatFloat(tex.SurfaceTextureSizeA.Y),
		"surfaceTexture_B":       tex.SurfaceTextureB,
		"surfaceTextureSize_B.x": formatFloat(tex.SurfaceTextureSizeB.X),
		"surfaceTextureSize_B.y": formatFloat(tex.SurfaceTextureSizeB.Y),
		"terrainTexture_C":       tex.TerrainTextureC,
		"terrainTextureSize_C.x": formatFloat(tex.TerrainTextureSizeC.X),
		"terrainTextureSize_C.y": formatFloat(tex.TerrainTextureSizeC.Y),
		"surfaceLayerSize":       formatFloat(tex.SurfaceLayerSize),
		"minFade":                formatFloat(tex.MinFade),
		"maxFade":                formatFloat(tex.MaxFade),
		"shadowIntensity":        formatFloat(tex.ShadowIntensity),
		"shadowHeight":           formatFloat(tex.ShadowHeight),
		"verticeSize":            formatFloat(t.VerticeSize),
		"collider":               formatBool(t.Collider),
		normalFormulaKey:         formatLines(t.TerrainFormulaDifficulties[normalDifficulty]),
		textureFormulaKey:        formatLines(t.TextureFormula),
	})

	e.otherFormulas = make(map[string][]string, len(t.TerrainFormulaDifficulties))
	for name, lines := range t.TerrainFormulaDifficulties {
		if name != normalDifficulty {
			e.otherFormulas[name] = append([]string{}, lines...)
		}
	}
	_, e.hadNormal = t.TerrainFormulaDifficulties[normalDifficulty]

	rows := make([]*Row, 0, len(t.FlatZones))
	for _, z := range t.FlatZones {
		rows = append(rows, flatZoneRow(z))
	}
	e.zones.reset(rows)
}

func (e *TerrainEditor) Collect(dst *planet.Document) error {
	r := newReader(e.Section())
	f := e.fields
	vec := func(prefix string) planet.Vector2 {
		return planet.Vector2{X: r.float(f[prefix+".x"]), Y: r.float(f[prefix+".y"])}
	}
	t := planet.TerrainData{
		TextureData: planet.TerrainTextureData{
			PlanetTexture:       r.text(f["planetTexture"]),
			PlanetTextureCutout: r.float(f["planetTextureCutout"]),
			SurfaceTextureA:     r.text(f["surfaceTexture_A"]),
			SurfaceTextureSizeA: vec("surfaceTextureSize_A"),
			SurfaceTextureB:     r.text(f["surfaceTexture_B"]),
			SurfaceTextureSizeB: vec("surfaceTextureSize_B"),
			TerrainTextureC:     r.text(f["terrainTexture_C"]),
			TerrainTextureSizeC: vec("terrainTextureSize_C"),
			SurfaceLayerSize:    r.float(f["surfaceLayerSize"]),
			MinFade:             r.float(f["minFade"]),
			MaxFade:             r.float(f["maxFade"]),
			ShadowIntensity:     r.float(f["shadowIntensity"]),
			ShadowHeight:        r.float(f["shadowHeight"]),
		},
		VerticeSize:                r.float(f["verticeSize"]),
		Collider:                   r.boolean(f["collider"]),
		FlatZones:                  make([]planet.FlatZone, 0, len(e.zones.Rows)),
		TerrainFormulaDifficulties: maps.Clone(e.otherFormulas),
		TextureFormula:             r.lines(f[textureFormulaKey]),
	}
	if t.TerrainFormulaDifficulties == nil {
		t.TerrainFormulaDifficulties = map[string][]string{}
	}
	if normal := r.lines(f[normalFormulaKey]); len(normal) > 0 || e.hadNormal {
		t.TerrainFormulaDifficulties[normalDifficulty] = normal
	}
	for i, row := range e.zones.Rows {
		rr := r.at(flatZoneGroup, i)
		t.FlatZones = append(t.FlatZones, planet.FlatZone{
			Height:     rr.float(row.Field("height")),
			Angle:      rr.float(row.Field("angle")),
			Width:      rr.float(row.Field("width")),
			Transition: rr.float(row.Field("transition")),
		})
	}
	if err := r.err(); err != nil {
		return err
	}
	dst.TerrainData = t
	return nil
}
