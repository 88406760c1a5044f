package editor

import (
	"github.com/provide-io/planetmaker/pkg/planet"
)

const (
	landmarkGroup = "landmarks"
	postKeyGroup  = "keys"
)

// LandmarksEditor edits the LANDMARKS list.
type LandmarksEditor struct {
	form  *Form
	marks *Group
}

func NewLandmarksEditor() *LandmarksEditor {
	marks := &Group{Key: landmarkGroup, Label: "Landmark", newRow: func() *Row { return landmarkRow(planet.DefaultLandmark()) }}
	return &LandmarksEditor{form: &Form{Groups: []*Group{marks}}, marks: marks}
}

func landmarkRow(l planet.Landmark) *Row {
	return &Row{Fields: []*Field{
		{Key: "name", Label: "Name", Kind: KindText, Value: l.Name},
		{Key: "angle", Label: "Angle", Kind: KindFloat, Value: formatFloat(l.Angle)},
		{Key: "startAngle", Label: "Start Angle", Kind: KindFloat, Value: formatFloat(l.StartAngle)},
		{Key: "endAngle", Label: "End Angle", Kind: KindFloat, Value: formatFloat(l.EndAngle)},
	}}
}

func (e *LandmarksEditor) Section() string { return planet.SectionLandmarks }
func (e *LandmarksEditor) Title() string   { return "Landmarks" }
func (e *LandmarksEditor) Form() *Form     { return e.form }

func (e *LandmarksEditor) Populate(doc *planet.Document) {
	rows := make([]*Row, 0, len(doc.Landmarks))
	for _, l := range doc.Landmarks {
		rows = append(rows, landmarkRow(l))
	}
	e.marks.reset(rows)
}

func (e *LandmarksEditor) Collect(dst *planet.Document) error {
	r := newReader(e.Section())
	out := make([]planet.Landmark, 0, len(e.marks.Rows))
	for i, row := range e.marks.Rows {
		rr := r.at(landmarkGroup, i)
		out = append(out, planet.Landmark{
			Name:       rr.text(row.Field("name")),
			Angle:      rr.float(row.Field("angle")),
			StartAngle: rr.float(row.Field("startAngle")),
			EndAngle:   rr.float(row.Field("endAngle")),
		})
	}
	if err := r.err(); err != nil {
		return err
	}
	dst.Landmarks = out
	return nil
}

// PostProcessingEditor edits POST_PROCESSING. With no key rows the section collects as
// absent.
type PostProcessingEditor struct {
	form *Form
	keys *Group
}

func NewPostProcessingEditor() *PostProcessingEditor {
	keys := &Group{Key: postKeyGroup, Label: "Key", newRow: func() *Row { return postKeyRow(planet.DefaultPostProcessingKey()) }}
	return &PostProcessingEditor{form: &Form{Groups: []*Group{keys}}, keys: keys}
}

func postKeyRow(k planet.PostProcessingKey) *Row {
	return &Row{Fields: []*Field{
		{Key: "height", Label: "Height", Kind: KindFloat, Value: formatFloat(k.Height)},
		{Key: "shadowIntensity", Label: "Shadow Intensity", Kind: KindFloat, Value: formatFloat(k.ShadowIntensity)},
		{Key: "starIntensity", Label: "Star Intensity", Kind: KindFloat, Value: formatFloat(k.StarIntensity)},
		{Key: "hueShift", Label: "Hue Shift", Kind: KindFloat, Value: formatFloat(k.HueShift)},
		{Key: "saturation", Label: "Saturation", Kind: KindFloat, Value: formatFloat(k.Saturation)},
		{Key: "contrast", Label: "Contrast", Kind: KindFloat, Value: formatFloat(k.Contrast)},
		{Key: "red", Label: "Red", Kind: KindFloat, Value: formatFloat(k.Red)},
		{Key: "green", Label: "Green", Kind: KindFloat, Value: formatFloat(k.Green)},
		{Key: "blue", Label: "Blue", Kind: KindFloat, Value: formatFloat(k.Blue)},
	}}
}

func (e *PostProcessingEditor) Section() string { return planet.SectionPostProcessing }
func (e *PostProcessingEditor) Title() string   { return "Post-Processing" }
func (e *PostProcessingEditor) Form() *Form     { return e.form }

func (e *PostProcessingEditor) Populate(doc *planet.Document) {
	var rows []*Row
	if doc.PostProcessing != nil {
		for _, k := range doc.PostProcessing.Keys {
			rows = append(rows, postKeyRow(k))
		}
	}
	e.keys.reset(rows)
}

func (e *PostProcessingEditor) Collect(dst *planet.Document) error {
	if len(e.keys.Rows) == 0 {
		dst.PostProcessing = nil
		return nil
	}
	r := newReader(e.Section())
	pp := &planet.PostProcessing{Keys: make([]planet.PostProcessingKey, 0, len(e.keys.Rows))}
	for i, row := range e.keys.Rows {
		rr := r.at(postKeyGroup, i)
		pp.Keys = append(pp.Keys, planet.PostProcessingKey{
			Height:          rr.float(row.Field("height")),
			ShadowIntensity: rr.float(row.Field("shadowIntensity")),
			StarIntensity:   rr.float(row.Field("starIntensity")),
			HueShift:        rr.float(row.Field("hueShift")),
			Saturation:      rr.float(row.Field("saturation")),
			Contrast:        rr.float(row.Field("contrast")),
			Red:             rr.float(row.Field("red")),
			Green:           rr.float(row.Field("green")),
			Blue:            rr.float(row.Field("blue")),
		})
	}
	if err := r.err(); err != nil {
		return err
	}
	dst.PostProcessing = pp
	return nil
}
