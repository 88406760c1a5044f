package planet

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Integer is a whole number field. Integral JSON floats such as 4000.0 decode cleanly;
// fractional values are rejected rather than truncated.
type Integer int

func (n *Integer) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	v, err := integral(f)
	if err != nil {
		return err
	}
	*n = Integer(v)
	return nil
}

// ParseInteger parses text such as "4000" or "4000.0". "4000.7" is an error.
func ParseInteger(s string) (Integer, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	v, err := integral(f)
	if err != nil {
		return 0, err
	}
	return Integer(v), nil
}

func integral(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%v must be an integer", f)
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("%v is out of range", f)
	}
	return int(f), nil
}

// Direction is the orbit's sense of travel.
type Direction int

const (
	Prograde   Direction = 1
	Retrograde Direction = -1
)

// Valid reports whether d is exactly 1 or -1.
func (d Direction) Valid() bool {
	return d == Prograde || d == Retrograde
}

func (d Direction) String() string {
	switch d {
	case Prograde:
		return "Prograde"
	case Retrograde:
		return "Retrograde"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func (d *Direction) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var n Integer
	if err := n.UnmarshalJSON(b); err != nil {
		return err
	}
	if !Direction(n).Valid() {
		return fmt.Errorf("direction must be 1 or -1, got %d", n)
	}
	*d = Direction(n)
	return nil
}

// ParseDirection accepts "1", "-1" and the labels Prograde/Retrograde.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "+1", "prograde":
		return Prograde, nil
	case "-1", "retrograde":
		return Retrograde, nil
	}
	return 0, fmt.Errorf("direction must be 1 or -1, got %q", s)
}

// Color is an RGBA color with components normalized to [0,1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// ColorFrom255 converts a 0-255 picker value to a normalized opaque color.
func ColorFrom255(r, g, b uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: 1,
	}
}

// Valid reports whether every component lies in [0,1].
func (c Color) Valid() bool {
	for _, v := range []float64{c.R, c.G, c.B, c.A} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// Row types decode on top of their defaults so a key missing from the file keeps the
// value a freshly added row would have.

func (k *FogKey) UnmarshalJSON(b []byte) error {
	type plain FogKey
	p := plain(DefaultFogKey())
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*k = FogKey(p)
	return nil
}

func (k *PostProcessingKey) UnmarshalJSON(b []byte) error {
	type plain PostProcessingKey
	p := plain(DefaultPostProcessingKey())
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*k = PostProcessingKey(p)
	return nil
}

func (z *FlatZone) UnmarshalJSON(b []byte) error {
	type plain FlatZone
	p := plain(DefaultFlatZone())
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*z = FlatZone(p)
	return nil
}

func (l *Landmark) UnmarshalJSON(b []byte) error {
	type plain Landmark
	p := plain(DefaultLandmark())
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*l = Landmark(p)
	return nil
}
