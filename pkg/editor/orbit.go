package editor

import (
	"github.com/provide-io/planetmaker/pkg/planet"
)

// OrbitEditor edits ORBIT_DATA. Its difficulty scales also accept "normal,hard,realistic".
type OrbitEditor struct {
	form   *Form
	fields map[string]*Field
}

func NewOrbitEditor() *OrbitEditor {
	form := &Form{Fields: []*Field{
		field("parent", "Parent", KindText),
		field("semiMajorAxis", "Semi-major axis (m)", KindFloat),
		{Key: "smaDifficultyScale", Label: "SMA Difficulty Scale", Kind: KindScale, Shorthand: true},
		field("eccentricity", "Eccentricity", KindFloat),
		field("argumentOfPeriapsis", "Argument of Periapsis (deg)", KindFloat),
		field("direction", "Direction", KindDirection),
		field("multiplierSOI", "SOI Multiplier", KindFloat),
		{Key: "soiDifficultyScale", Label: "SOI Difficulty Scale", Kind: KindScale, Shorthand: true},
	}}
	e := &OrbitEditor{form: form, fields: byKey(form.Fields)}
	e.Reset()
	return e
}

func (e *OrbitEditor) Section() string { return planet.SectionOrbitData }
func (e *OrbitEditor) Title() string   { return "Orbit" }
func (e *OrbitEditor) Form() *Form     { return e.form }

// Reset restores every orbit field to its default.
func (e *OrbitEditor) Reset() {
	e.Populate(planet.Default())
}

func (e *OrbitEditor) Populate(doc *planet.Document) {
	o := doc.OrbitData
	set(e.form.Fields, map[string]string{
		"parent":              o.Parent,
		"semiMajorAxis":       formatFloat(o.SemiMajorAxis),
		"smaDifficultyScale":  formatScale(o.SmaDifficultyScale),
		"eccentricity":        formatFloat(o.Eccentricity),
		"argumentOfPeriapsis": formatFloat(o.ArgumentOfPeriapsis),
		"direction":           formatFloat(float64(o.Direction)),
		"multiplierSOI":       formatFloat(o.MultiplierSOI),
		"soiDifficultyScale":  formatScale(o.SoiDifficultyScale),
	})
}

func (e *OrbitEditor) Collect(dst *planet.Document) error {
	o, err := e.orbit()
	if err != nil {
		return err
	}
	dst.OrbitData = o
	return nil
}

// Summary coerces the current fields without storing them, for the orbit preview.
func (e *OrbitEditor) Summary() (planet.OrbitData, error) {
	return e.orbit()
}

func (e *OrbitEditor) orbit() (planet.OrbitData, error) {
	r := newReader(e.Section())
	f := e.fields
	o := planet.OrbitData{
		Parent:              r.text(f["parent"]),
		SemiMajorAxis:       r.float(f["semiMajorAxis"]),
		SmaDifficultyScale:  r.scale(f["smaDifficultyScale"]),
		Eccentricity:        r.float(f["eccentricity"]),
		ArgumentOfPeriapsis: r.float(f["argumentOfPeriapsis"]),
		Direction:           r.direction(f["direction"]),
		MultiplierSOI:       r.float(f["multiplierSOI"]),
		SoiDifficultyScale:  r.scale(f["soiDifficultyScale"]),
	}
	return o, r.err()
}
