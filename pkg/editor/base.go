package editor

import (
	"github.com/provide-io/planetmaker/pkg/planet"
)

// BaseEditor edits BASE_DATA.
type BaseEditor struct {
	form   *Form
	fields map[string]*Field
}

func NewBaseEditor() *BaseEditor {
	form := &Form{Fields: []*Field{
		field("radius", "Radius", KindFloat),
		field("gravity", "Gravity", KindFloat),
		field("timewarpHeight", "Timewarp Height", KindFloat),
		field("velocityArrowsHeight", "Velocity Arrows Height", KindFloat),
		field("mapColor.r", "Map Color R", KindFloat),
		field("mapColor.g", "Map Color G", KindFloat),
		field("mapColor.b", "Map Color B", KindFloat),
		field("mapColor.a", "Map Color A", KindFloat),
		field("significant", "Significant", KindBool),
		field("rotateCamera", "Rotate Camera", KindBool),
		field("radiusDifficultyScale", "Radius Difficulty Scale", KindScale),
		field("gravityDifficultyScale", "Gravity Difficulty Scale", KindScale),
	}}
	e := &BaseEditor{form: form, fields: byKey(form.Fields)}
	e.Populate(planet.Default())
	return e
}

func (e *BaseEditor) Section() string { return planet.SectionBaseData }
func (e *BaseEditor) Title() string   { return "Planet" }
func (e *BaseEditor) Form() *Form     { return e.form }

func (e *BaseEditor) Populate(doc *planet.Document) {
	b := doc.BaseData
	set(e.form.Fields, map[string]string{
		"radius":                 formatFloat(b.Radius),
		"gravity":                formatFloat(b.Gravity),
		"timewarpHeight":         formatFloat(b.TimewarpHeight),
		"velocityArrowsHeight":   formatFloat(b.VelocityArrowsHeight),
		"significant":            formatBool(b.Significant),
		"rotateCamera":           formatBool(b.RotateCamera),
		"radiusDifficultyScale":  formatScale(b.RadiusDifficultyScale),
		"gravityDifficultyScale": formatScale(b.GravityDifficultyScale),
	})
	e.setColor(b.MapColor)
}

// SetMapColor255 stores a color picked on a 0-255 scale, normalized and fully opaque.
func (e *BaseEditor) SetMapColor255(r, g, b uint8) {
	e.setColor(planet.ColorFrom255(r, g, b))
}

func (e *BaseEditor) setColor(c planet.Color) {
	e.fields["mapColor.r"].Value = formatFloat(c.R)
	e.fields["mapColor.g"].Value = formatFloat(c.G)
	e.fields["mapColor.b"].Value = formatFloat(c.B)
	e.fields["mapColor.a"].Value = formatFloat(c.A)
}

func (e *BaseEditor) Collect(dst *planet.Document) error {
	r := newReader(e.Section())
	f := e.fields
	b := planet.BaseData{
		Radius:               r.float(f["radius"]),
		Gravity:              r.float(f["gravity"]),
		TimewarpHeight:       r.float(f["timewarpHeight"]),
		VelocityArrowsHeight: r.float(f["velocityArrowsHeight"]),
		MapColor: planet.Color{
			R: r.float(f["mapColor.r"]),
			G: r.float(f["mapColor.g"]),
			B: r.float(f["mapColor.b"]),
			A: r.float(f["mapColor.a"]),
		},
		Significant:            r.boolean(f["significant"]),
		RotateCamera:           r.boolean(f["rotateCamera"]),
		RadiusDifficultyScale:  r.scale(f["radiusDifficultyScale"]),
		GravityDifficultyScale: r.scale(f["gravityDifficultyScale"]),
	}
	if r.err() == nil && !b.MapColor.Valid() {
		r.invalid("mapColor", "color components must lie in [0,1]")
	}
	if err := r.err(); err != nil {
		return err
	}
	dst.BaseData = b
	return nil
}
