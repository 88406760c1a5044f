package editor

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/provide-io/planetmaker/pkg/planet"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBool(v bool) string {
	return strconv.FormatBool(v)
}

func formatScale(s planet.Scale) string {
	if len(s) == 0 {
		return "{}"
	}
	data, err := json.Marshal(s)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// formatLines joins lines with newlines. A trailing empty line gets its own newline so the
// text reads back to the same list.
func formatLines(lines []string) string {
	text := strings.Join(lines, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		text += "\n"
	}
	return text
}

func formatPoints(points []float64) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = formatFloat(p)
	}
	return strings.Join(parts, ", ")
}

// reader coerces field text and keeps the first failure. Readers derived with at share
// that failure with their parent.
type reader struct {
	section string
	prefix  string
	first   *error
}

func newReader(section string) *reader {
	var err error
	return &reader{section: section, first: &err}
}

func (r *reader) at(group string, index int) *reader {
	return &reader{section: r.section, prefix: fmt.Sprintf("%s.%d.", group, index), first: r.first}
}

func (r *reader) err() error {
	return *r.first
}

func (r *reader) fail(f *Field, reason string) {
	if *r.first != nil {
		return
	}
	*r.first = &planet.ValidationError{
		Section: r.section,
		Field:   r.prefix + f.Key,
		Value:   f.Value,
		Reason:  reason,
	}
}

func (r *reader) invalid(key, reason string) {
	if *r.first != nil {
		return
	}
	*r.first = &planet.ValidationError{Section: r.section, Field: r.prefix + key, Reason: reason}
}

func (r *reader) text(f *Field) string {
	return f.Value
}

func (r *reader) float(f *Field) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(f.Value), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		r.fail(f, "must be a number")
		return 0
	}
	return v
}

func (r *reader) integer(f *Field) planet.Integer {
	s := strings.TrimSpace(f.Value)
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		r.fail(f, "must be an integer")
		return 0
	}
	n, err := planet.ParseInteger(s)
	if err != nil {
		r.fail(f, "must be an integer")
		return 0
	}
	return n
}

func (r *reader) boolean(f *Field) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(f.Value))
	if err != nil {
		r.fail(f, "must be true or false")
		return false
	}
	return v
}

// direction accepts exactly "1" or "-1".
func (r *reader) direction(f *Field) planet.Direction {
	switch strings.TrimSpace(f.Value) {
	case "1":
		return planet.Prograde
	case "-1":
		return planet.Retrograde
	}
	r.fail(f, "must be 1 or -1")
	return 0
}

// scale parses a strict JSON object of numbers. Empty text is an empty scale. With
// Shorthand set, "2,4" reads as Normal 2, Hard 4, Realistic 1.
func (r *reader) scale(f *Field) planet.Scale {
	s := strings.TrimSpace(f.Value)
	if s == "" {
		return planet.Scale{}
	}
	if f.Shorthand && !strings.HasPrefix(s, "{") {
		return r.shorthand(f, s)
	}
	var out planet.Scale
	if err := json.Unmarshal([]byte(s), &out); err != nil || out == nil {
		r.fail(f, `must be a JSON object of numbers such as {"Normal": 1}`)
		return planet.Scale{}
	}
	return out
}

var difficulties = []string{"Normal", "Hard", "Realistic"}

func (r *reader) shorthand(f *Field, s string) planet.Scale {
	parts := strings.Split(s, ",")
	if len(parts) > len(difficulties) {
		r.fail(f, "takes at most three values: normal,hard,realistic")
		return planet.Scale{}
	}
	out := planet.DifficultyScale(1, 1, 1)
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			r.fail(f, "must be numbers separated by commas")
			return planet.Scale{}
		}
		out[difficulties[i]] = v
	}
	return out
}

// lines splits multi-line text into lines kept exactly as written, blank ones included. Only
// the newline terminating the last line is dropped.
func (r *reader) lines(f *Field) []string {
	if f.Value == "" {
		return []string{}
	}
	text := strings.TrimSuffix(f.Value, "\n")
	out := strings.Split(text, "\n")
	for i, line := range out {
		out[i] = strings.TrimSuffix(line, "\r")
	}
	return out
}

// points parses comma or whitespace separated heights, each in [0,1].
func (r *reader) points(f *Field) []float64 {
	fields := strings.FieldsFunc(f.Value, func(c rune) bool {
		return c == ',' || c == ' ' || c == '\n' || c == '\t' || c == '\r'
	})
	out := make([]float64, 0, len(fields))
	for i, s := range fields {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) {
			r.fail(f, fmt.Sprintf("point %d must be a number", i))
			return nil
		}
		if v < 0 || v > 1 {
			r.fail(f, fmt.Sprintf("point %d must lie in [0,1]", i))
			return nil
		}
		out = append(out, v)
	}
	return out
}
