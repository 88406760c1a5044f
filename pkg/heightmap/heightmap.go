// Package heightmap edits the standalone heightmap artifact: a row of surface heights
// normalized to 0..1, saved as {"points":[...]} and optionally attached to a planet document.
package heightmap

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/provide-io/planetmaker/pkg/planet"
)

var ErrIndex = errors.New("❌ heightmap index out of range")

// Map holds the heightmap points.
type Map struct {
	Points []float64 `json:"points"`
}

// New returns a flat map of n points at height 0. n <= 0 uses planet.DefaultHeightmapPoints.
func New(n int) *Map {
	if n <= 0 {
		n = planet.DefaultHeightmapPoints
	}
	return &Map{Points: make([]float64, n)}
}

// FromPlanet copies the heightmap attached to doc, or returns nil when none is attached.
func FromPlanet(doc *planet.Document) *Map {
	if doc == nil || doc.Heightmap == nil {
		return nil
	}
	return &Map{Points: append([]float64{}, doc.Heightmap.Points...)}
}

func (m *Map) Len() int {
	return len(m.Points)
}

// Set stores value at index, clamped to 0..1.
func (m *Map) Set(index int, value float64) error {
	if index < 0 || index >= len(m.Points) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndex, index, len(m.Points))
	}
	if math.IsNaN(value) {
		return fmt.Errorf("height at %d is not a number", index)
	}
	m.Points[index] = clamp(value)
	return nil
}

// Draw applies a stroke at canvas position (x, y) on a canvas of width w and height h.
// The column selects the point, the row its height (top of the canvas is 1). Positions
// outside the canvas are pulled onto its edge. It returns the index that changed.
func (m *Map) Draw(x, y, w, h float64) (int, error) {
	if len(m.Points) == 0 {
		return 0, fmt.Errorf("%w: heightmap has no points", ErrIndex)
	}
	w = math.Max(1, w)
	h = math.Max(1, h)
	x = math.Max(0, math.Min(w-1, x))
	y = math.Max(0, math.Min(h-1, y))

	index := int(x / w * float64(len(m.Points)))
	if index >= len(m.Points) {
		index = len(m.Points) - 1
	}
	m.Points[index] = clamp(1 - y/h)
	return index, nil
}

// Clear flattens every point to 0.
func (m *Map) Clear() {
	for i := range m.Points {
		m.Points[i] = 0
	}
}

// Attach stores a copy of the points in doc's HEIGHTMAP section.
func (m *Map) Attach(doc *planet.Document) {
	doc.Heightmap = &planet.Heightmap{Points: append([]float64{}, m.Points...)}
}

// Load reads a heightmap file. A file without a points key yields a default map.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &planet.IOError{Op: "read", Path: path, Err: err}
	}
	var raw struct {
		Points *[]float64 `json:"points"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &planet.ParseError{Path: path, Field: "points", Err: err}
	}
	if raw.Points == nil {
		return New(0), nil
	}
	m := &Map{Points: *raw.Points}
	for i, p := range m.Points {
		if p < 0 || p > 1 {
			return nil, &planet.ParseError{
				Path:  path,
				Field: fmt.Sprintf("points.%d", i),
				Err:   fmt.Errorf("%v is outside [0,1]", p),
			}
		}
	}
	return m, nil
}

// Save writes the map as a planet-style indented JSON file.
func (m *Map) Save(path string, opts planet.ExportOptions) error {
	indent := opts.Indent
	if indent == "" {
		indent = planet.DefaultIndent
	}
	data, err := json.MarshalIndent(m, "", indent)
	if err != nil {
		return fmt.Errorf("failed to encode heightmap: %w", err)
	}
	mode := opts.FileMode
	if mode == 0 {
		mode = planet.DefaultFileMode
	}
	if err := planet.WriteFile(path, append(data, '\n'), mode, opts.Logger); err != nil {
		return err
	}
	if opts.Logger != nil {
		opts.Logger.Info("✅ Heightmap saved", "path", path, "points", len(m.Points))
	}
	return nil
}

var bars = []rune(" ▁▂▃▄▅▆▇█")

// Sparkline renders the map in at most width columns, averaging points per column.
func (m *Map) Sparkline(width int) string {
	if len(m.Points) == 0 {
		return ""
	}
	if width <= 0 || width > len(m.Points) {
		width = len(m.Points)
	}
	var b strings.Builder
	for col := 0; col < width; col++ {
		lo := col * len(m.Points) / width
		hi := (col + 1) * len(m.Points) / width
		sum := 0.0
		for _, p := range m.Points[lo:hi] {
			sum += p
		}
		avg := sum / float64(hi-lo)
		b.WriteRune(bars[int(math.Round(avg*float64(len(bars)-1)))])
	}
	return b.String()
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
