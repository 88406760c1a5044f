package editor

import (
	"github.com/provide-io/planetmaker/pkg/heightmap"
	"github.com/provide-io/planetmaker/pkg/planet"
)

// HeightmapEditor edits the optional HEIGHTMAP section as a list of points. An empty list
// detaches the heightmap.
type HeightmapEditor struct {
	form   *Form
	points *Field
}

func NewHeightmapEditor() *HeightmapEditor {
	points := field("points", "Points", KindPoints)
	return &HeightmapEditor{form: &Form{Fields: []*Field{points}}, points: points}
}

func (e *HeightmapEditor) Section() string { return planet.SectionHeightmap }
func (e *HeightmapEditor) Title() string   { return "Heightmap" }
func (e *HeightmapEditor) Form() *Form     { return e.form }

func (e *HeightmapEditor) Populate(doc *planet.Document) {
	e.points.Value = ""
	if m := heightmap.FromPlanet(doc); m != nil {
		e.points.Value = formatPoints(m.Points)
	}
}

// Load replaces the points with those of a heightmap map.
func (e *HeightmapEditor) Load(m *heightmap.Map) {
	e.points.Value = formatPoints(m.Points)
}

func (e *HeightmapEditor) Collect(dst *planet.Document) error {
	r := newReader(e.Section())
	points := r.points(e.points)
	if err := r.err(); err != nil {
		return err
	}
	if len(points) == 0 {
		dst.Heightmap = nil
		return nil
	}
	(&heightmap.Map{Points: points}).Attach(dst)
	return nil
}

// AchievementEditor has no inputs: ACHIEVEMENT_DATA is constant. A populated document's
// values are carried through unchanged.
type AchievementEditor struct {
	form *Form
	data planet.AchievementData
}

func NewAchievementEditor() *AchievementEditor {
	return &AchievementEditor{form: &Form{}, data: planet.DefaultAchievementData()}
}

func (e *AchievementEditor) Section() string { return planet.SectionAchievementData }
func (e *AchievementEditor) Title() string   { return "Achievements" }
func (e *AchievementEditor) Form() *Form     { return e.form }

func (e *AchievementEditor) Populate(doc *planet.Document) {
	e.data = doc.AchievementData
}

func (e *AchievementEditor) Collect(dst *planet.Document) error {
	dst.AchievementData = e.data
	return nil
}
