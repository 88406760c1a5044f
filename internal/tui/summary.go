package tui

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/provide-io/planetmaker/pkg/heightmap"
	"github.com/provide-io/planetmaker/pkg/planet"
)

const sparklineWidth = 50

// Summary renders a read-only overview of doc for `planetmaker show`.
func Summary(name string, doc *planet.Document, styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("🪐 " + name))
	if doc.Version != "" {
		b.WriteString(styles.Help.Render("  v" + doc.Version))
	}
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(styles.Label.Render(label))
		b.WriteString(styles.Value.Render(value))
		b.WriteString("\n")
	}
	section := func(title string) {
		b.WriteString(styles.Section.Render(title))
		b.WriteString("\n")
	}

	base := doc.BaseData
	section("Planet")
	row("Radius", meters(base.Radius))
	row("Gravity", num(base.Gravity))
	row("Map Color", swatch(base.MapColor))
	row("Significant", strconv.FormatBool(base.Significant))
	row("Radius Scale", scale(base.RadiusDifficultyScale))

	atmo := doc.AtmospherePhysics
	section("Atmosphere")
	row("Height", meters(atmo.Height))
	row("Density", num(atmo.Density))
	row("Fog Keys", strconv.Itoa(len(doc.AtmosphereVisuals.Fog.Keys)))

	terrain := doc.TerrainData
	section("Terrain")
	row("Planet Texture", terrain.TextureData.PlanetTexture)
	row("Flat Zones", strconv.Itoa(len(terrain.FlatZones)))
	row("Formula Lines", strconv.Itoa(len(terrain.TerrainFormulaDifficulties["Normal"])))

	orbit := doc.OrbitData
	section("Orbit")
	row("Parent", orbit.Parent)
	row("Semi-major Axis", meters(orbit.SemiMajorAxis))
	row("Eccentricity", num(orbit.Eccentricity))
	row("Periapsis", meters(orbit.Periapsis()))
	if orbit.Bound() {
		row("Apoapsis", meters(orbit.Apoapsis()))
	} else {
		row("Apoapsis", "unbound")
	}
	row("Direction", orbit.Direction.String())

	section("Surface")
	names := make([]string, 0, len(doc.Landmarks))
	for _, l := range doc.Landmarks {
		names = append(names, l.Name)
	}
	row("Landmarks", list(names))
	if doc.PostProcessing != nil {
		row("Post-Processing", fmt.Sprintf("%d keys", len(doc.PostProcessing.Keys)))
	} else {
		row("Post-Processing", "none")
	}
	if m := heightmap.FromPlanet(doc); m != nil {
		row("Heightmap", m.Sparkline(sparklineWidth))
	} else {
		row("Heightmap", "none")
	}

	return styles.Box.Render(strings.TrimRight(b.String(), "\n"))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func meters(v float64) string {
	switch a := math.Abs(v); {
	case a >= 1e9:
		return fmt.Sprintf("%s (%.2f Gm)", num(v), v/1e9)
	case a >= 1e6:
		return fmt.Sprintf("%s (%.2f Mm)", num(v), v/1e6)
	case a >= 1e3:
		return fmt.Sprintf("%s (%.2f km)", num(v), v/1e3)
	}
	return num(v) + " m"
}

func scale(s planet.Scale) string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+num(s[k]))
	}
	return list(parts)
}

func list(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

// swatch renders the color as a small block followed by its hex code.
func swatch(c planet.Color) string {
	hex := Hex(c)
	block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
	return block + " " + hex
}

// Hex formats the color as #RRGGBB, ignoring alpha.
func Hex(c planet.Color) string {
	to255 := func(v float64) int {
		return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return fmt.Sprintf("#%02X%02X%02X", to255(c.R), to255(c.G), to255(c.B))
}
