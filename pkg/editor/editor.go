// Package editor holds one editor per planet document section. Each editor exposes its
// inputs as a Form of raw text fields, fills them from a document with Populate and writes
// the coerced section back with Collect. Assemble unions the sections into a new document.
package editor

import (
	"github.com/provide-io/planetmaker/pkg/planet"
)

// Editor owns exactly one top-level section of a planet document.
type Editor interface {
	// Section is the document key the editor owns, e.g. "ORBIT_DATA".
	Section() string
	// Title is the tab label.
	Title() string
	Form() *Form
	// Populate replaces every field with the values held by doc.
	Populate(doc *planet.Document)
	// Collect coerces the fields and stores the section into dst. On a *planet.ValidationError
	// dst is left unchanged.
	Collect(dst *planet.Document) error
}

// All returns a fresh editor for every section, in tab order, populated with defaults.
func All() []Editor {
	editors := []Editor{
		NewBaseEditor(),
		NewAtmospherePhysicsEditor(),
		NewAtmosphereVisualsEditor(),
		NewTerrainEditor(),
		NewOrbitEditor(),
		NewLandmarksEditor(),
		NewPostProcessingEditor(),
		NewHeightmapEditor(),
		NewAchievementEditor(),
	}
	return editors
}

// PopulateAll fills every editor from doc.
func PopulateAll(editors []Editor, doc *planet.Document) {
	for _, e := range editors {
		e.Populate(doc)
	}
}

// Assemble collects every editor into a fresh document. Sections without an editor keep
// their defaults. The first validation failure aborts and no document is returned.
func Assemble(editors []Editor) (*planet.Document, error) {
	doc := planet.Default()
	for _, e := range editors {
		if err := e.Collect(doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// Find returns the editor owning section, or nil.
func Find(editors []Editor, section string) Editor {
	for _, e := range editors {
		if e.Section() == section {
			return e
		}
	}
	return nil
}

func field(key, label string, kind Kind) *Field {
	return &Field{Key: key, Label: label, Kind: kind}
}

// set fills fields by key. Keys the form does not declare are ignored.
func set(fields []*Field, values map[string]string) {
	for _, f := range fields {
		if v, ok := values[f.Key]; ok {
			f.Value = v
		}
	}
}

func byKey(fields []*Field) map[string]*Field {
	m := make(map[string]*Field, len(fields))
	for _, f := range fields {
		m[f.Key] = f
	}
	return m
}
