package editor

import (
	"github.com/provide-io/planetmaker/pkg/planet"
)

// AtmospherePhysicsEditor edits ATMOSPHERE_PHYSICS_DATA.
type AtmospherePhysicsEditor struct {
	form   *Form
	fields map[string]*Field
}

func NewAtmospherePhysicsEditor() *AtmospherePhysicsEditor {
	form := &Form{Fields: []*Field{
		field("height", "Height", KindFloat),
		field("density", "Density", KindFloat),
		field("curve", "Curve", KindFloat),
		field("curveScale", "Curve Scale", KindScale),
		field("parachuteMultiplier", "Parachute Multiplier", KindFloat),
		field("upperAtmosphere", "Upper Atmosphere", KindFloat),
		field("heightDifficultyScale", "Height Difficulty Scale", KindScale),
		field("shockwaveIntensity", "Shockwave Intensity", KindFloat),
		field("minHeatingVelocityMultiplier", "Min Heating Velocity Multiplier", KindFloat),
	}}
	e := &AtmospherePhysicsEditor{form: form, fields: byKey(form.Fields)}
	e.Populate(planet.Default())
	return e
}

func (e *AtmospherePhysicsEditor) Section() string { return planet.SectionAtmospherePhysics }
func (e *AtmospherePhysicsEditor) Title() string   { return "Atmosphere" }
func (e *AtmospherePhysicsEditor) Form() *Form     { return e.form }

func (e *AtmospherePhysicsEditor) Populate(doc *planet.Document) {
	a := doc.AtmospherePhysics
	set(e.form.Fields, map[string]string{
		"height":                       formatFloat(a.Height),
		"density":                      formatFloat(a.Density),
		"curve":                        formatFloat(a.Curve),
		"curveScale":                   formatScale(a.CurveScale),
		"parachuteMultiplier":          formatFloat(a.ParachuteMultiplier),
		"upperAtmosphere":              formatFloat(a.UpperAtmosphere),
		"heightDifficultyScale":        formatScale(a.HeightDifficultyScale),
		"shockwaveIntensity":           formatFloat(a.ShockwaveIntensity),
		"minHeatingVelocityMultiplier": formatFloat(a.MinHeatingVelocityMultiplier),
	})
}

func (e *AtmospherePhysicsEditor) Collect(dst *planet.Document) error {
	r := newReader(e.Section())
	f := e.fields
	a := planet.AtmospherePhysics{
		Height:                       r.float(f["height"]),
		Density:                      r.float(f["density"]),
		Curve:                        r.float(f["curve"]),
		CurveScale:                   r.scale(f["curveScale"]),
		ParachuteMultiplier:          r.float(f["parachuteMultiplier"]),
		UpperAtmosphere:              r.float(f["upperAtmosphere"]),
		HeightDifficultyScale:        r.scale(f["heightDifficultyScale"]),
		ShockwaveIntensity:           r.float(f["shockwaveIntensity"]),
		MinHeatingVelocityMultiplier: r.float(f["minHeatingVelocityMultiplier"]),
	}
	if err := r.err(); err != nil {
		return err
	}
	dst.AtmospherePhysics = a
	return nil
}

// AtmosphereVisualsEditor edits ATMOSPHERE_VISUALS_DATA, including the fog key rows.
type AtmosphereVisualsEditor struct {
	form   *Form
	fields map[string]*Field
	fog    *Group
}

const fogGroup = "fogKeys"

func NewAtmosphereVisualsEditor() *AtmosphereVisualsEditor {
	fog := &Group{Key: fogGroup, Label: "Fog key", newRow: func() *Row { return fogRow(planet.DefaultFogKey()) }}
	form := &Form{
		Fields: []*Field{
			field("GRADIENT.texture", "Gradient Texture", KindText),
			field("GRADIENT.height", "Gradient Height", KindFloat),
			field("GRADIENT.positionZ", "Gradient Position Z", KindInt),
			field("CLOUDS.texture", "Clouds Texture", KindText),
			field("CLOUDS.startHeight", "Clouds Start Height", KindFloat),
			field("CLOUDS.width", "Clouds Width", KindFloat),
			field("CLOUDS.height", "Clouds Height", KindFloat),
			field("CLOUDS.alpha", "Clouds Alpha", KindFloat),
			field("CLOUDS.velocity", "Clouds Velocity", KindFloat),
		},
		Groups: []*Group{fog},
	}
	e := &AtmosphereVisualsEditor{form: form, fields: byKey(form.Fields), fog: fog}
	e.Populate(planet.Default())
	return e
}

func fogRow(k planet.FogKey) *Row {
	return &Row{Fields: []*Field{
		{Key: "color.r", Label: "Color R", Kind: KindFloat, Value: formatFloat(k.Color.R)},
		{Key: "color.g", Label: "Color G", Kind: KindFloat, Value: formatFloat(k.Color.G)},
		{Key: "color.b", Label: "Color B", Kind: KindFloat, Value: formatFloat(k.Color.B)},
		{Key: "color.a", Label: "Color A", Kind: KindFloat, Value: formatFloat(k.Color.A)},
		{Key: "distance", Label: "Distance", Kind: KindFloat, Value: formatFloat(k.Distance)},
	}}
}

func (e *AtmosphereVisualsEditor) Section() string { return planet.SectionAtmosphereVisuals }
func (e *AtmosphereVisualsEditor) Title() string   { return "Visuals" }
func (e *AtmosphereVisualsEditor) Form() *Form     { return e.form }

func (e *AtmosphereVisualsEditor) Populate(doc *planet.Document) {
	v := doc.AtmosphereVisuals
	set(e.form.Fields, map[string]string{
		"GRADIENT.texture":   v.Gradient.Texture,
		"GRADIENT.height":    formatFloat(v.Gradient.Height),
		"GRADIENT.positionZ": formatFloat(float64(v.Gradient.PositionZ)),
		"CLOUDS.texture":     v.Clouds.Texture,
		"CLOUDS.startHeight": formatFloat(v.Clouds.StartHeight),
		"CLOUDS.width":       formatFloat(v.Clouds.Width),
		"CLOUDS.height":      formatFloat(v.Clouds.Height),
		"CLOUDS.alpha":       formatFloat(v.Clouds.Alpha),
		"CLOUDS.velocity":    formatFloat(v.Clouds.Velocity),
	})
	rows := make([]*Row, 0, len(v.Fog.Keys))
	for _, k := range v.Fog.Keys {
		rows = append(rows, fogRow(k))
	}
	e.fog.reset(rows)
}

func (e *AtmosphereVisualsEditor) Collect(dst *planet.Document) error {
	r := newReader(e.Section())
	f := e.fields
	v := planet.AtmosphereVisuals{
		Gradient: planet.Gradient{
			Texture:   r.text(f["GRADIENT.texture"]),
			Height:    r.float(f["GRADIENT.height"]),
			PositionZ: r.integer(f["GRADIENT.positionZ"]),
		},
		Clouds: planet.Clouds{
			Texture:     r.text(f["CLOUDS.texture"]),
			StartHeight: r.float(f["CLOUDS.startHeight"]),
			Width:       r.float(f["CLOUDS.width"]),
			Height:      r.float(f["CLOUDS.height"]),
			Alpha:       r.float(f["CLOUDS.alpha"]),
			Velocity:    r.float(f["CLOUDS.velocity"]),
		},
		Fog: planet.Fog{Keys: make([]planet.FogKey, 0, len(e.fog.Rows))},
	}
	for i, row := range e.fog.Rows {
		rr := r.at(fogGroup, i)
		k := planet.FogKey{
			Color: planet.Color{
				R: rr.float(row.Field("color.r")),
				G: rr.float(row.Field("color.g")),
				B: rr.float(row.Field("color.b")),
				A: rr.float(row.Field("color.a")),
			},
			Distance: rr.float(row.Field("distance")),
		}
		if rr.err() == nil && !k.Color.Valid() {
			rr.invalid("color", "color components must lie in [0,1]")
		}
		v.Fog.Keys = append(v.Fog.Keys, k)
	}
	if err := r.err(); err != nil {
		return err
	}
	dst.AtmosphereVisuals = v
	return nil
}
