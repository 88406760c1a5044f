// Package script runs line-oriented edit scripts against a session. Each line is one
// command; words follow shell quoting rules (see Split).
//
//	load planets/Moon.txt
//	set orbit parent Earth
//	add landmarks landmarks
//	set landmarks landmarks.0.name "Sea of Rains"
//	color 200 180 160
//	export planets/Moon.txt
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/planetmaker/pkg/editor"
	"github.com/provide-io/planetmaker/pkg/heightmap"
	"github.com/provide-io/planetmaker/pkg/planet"
	"github.com/provide-io/planetmaker/pkg/session"
)

var (
	ErrUnknownCommand = errors.New("❌ unknown command")
	ErrUsage          = errors.New("❌ wrong number of arguments")
	ErrUnknownSection = errors.New("❌ unknown section")
)

// LineError locates a failing script line.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Runner executes scripts against one session.
type Runner struct {
	session *session.Session
	logger  hclog.Logger
	// Resolve maps a path argument of load/export/heightmap to a file path, e.g. to place
	// bare planet names in the planets folder. Paths are used as given when nil.
	Resolve func(arg string) string
}

func NewRunner(s *session.Session, logger hclog.Logger) *Runner {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Runner{session: s, logger: logger}
}

// Run executes every line of r and stops at the first failure, returned as *LineError.
func (r *Runner) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	n := 0
	for scanner.Scan() {
		n++
		text := scanner.Text()
		if err := r.Exec(text); err != nil {
			return &LineError{Line: n, Text: text, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	r.logger.Debug("Script finished", "lines", n)
	return nil
}

// Exec executes a single line. Blank and comment lines do nothing.
func (r *Runner) Exec(line string) error {
	words, err := Split(line)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(words[0]), words[1:]
	r.logger.Trace("Executing", "command", cmd, "args", args)

	switch cmd {
	case "set":
		if len(args) != 3 {
			return usage("set <section> <field> <value>")
		}
		e, err := r.editor(args[0])
		if err != nil {
			return err
		}
		f, err := e.Form().Lookup(args[1])
		if err != nil {
			return err
		}
		value := args[2]
		if f.Kind == editor.KindDirection {
			// Scripts may name the direction; the form only holds 1 or -1.
			d, err := planet.ParseDirection(value)
			if err != nil {
				return &planet.ValidationError{Section: e.Section(), Field: args[1], Value: value, Reason: "must be 1, -1, prograde or retrograde"}
			}
			value = strconv.Itoa(int(d))
		}
		f.Value = value
		return nil

	case "add":
		if len(args) != 2 {
			return usage("add <section> <group>")
		}
		g, err := r.group(args[0], args[1])
		if err != nil {
			return err
		}
		g.Add()
		return nil

	case "remove":
		if len(args) != 3 {
			return usage("remove <section> <group> <index>")
		}
		g, err := r.group(args[0], args[1])
		if err != nil {
			return err
		}
		i, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("%w: %q", editor.ErrRowIndex, args[2])
		}
		return g.Remove(i)

	case "color":
		if len(args) != 3 {
			return usage("color <r> <g> <b>")
		}
		var rgb [3]uint8
		for i, a := range args {
			v, err := strconv.ParseUint(a, 10, 8)
			if err != nil {
				return &planet.ValidationError{Section: planet.SectionBaseData, Field: "mapColor", Value: a, Reason: "must be 0-255"}
			}
			rgb[i] = uint8(v)
		}
		base, ok := r.session.Editor(planet.SectionBaseData).(*editor.BaseEditor)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownSection, planet.SectionBaseData)
		}
		base.SetMapColor255(rgb[0], rgb[1], rgb[2])
		return nil

	case "heightmap":
		if len(args) != 1 {
			return usage("heightmap <file>")
		}
		m, err := heightmap.Load(r.resolve(args[0]))
		if err != nil {
			return err
		}
		he, ok := r.session.Editor(planet.SectionHeightmap).(*editor.HeightmapEditor)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownSection, planet.SectionHeightmap)
		}
		he.Load(m)
		return nil

	case "reset":
		if len(args) != 0 {
			return usage("reset")
		}
		r.session.Reset()
		return nil

	case "load":
		if len(args) != 1 {
			return usage("load <file>")
		}
		return r.session.Load(r.resolve(args[0]))

	case "export":
		if len(args) > 1 {
			return usage("export [file]")
		}
		path := r.session.Path()
		if len(args) == 1 {
			path = r.resolve(args[0])
		}
		if path == "" {
			return usage("export <file>")
		}
		_, err := r.session.Export(path)
		return err
	}
	return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
}

func (r *Runner) resolve(arg string) string {
	if r.Resolve == nil {
		return arg
	}
	return r.Resolve(arg)
}

// editor finds a section by document key or tab title, ignoring case.
func (r *Runner) editor(name string) (editor.Editor, error) {
	for _, e := range r.session.Editors() {
		if strings.EqualFold(e.Section(), name) || strings.EqualFold(e.Title(), name) {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownSection, name)
}

func (r *Runner) group(section, key string) (*editor.Group, error) {
	e, err := r.editor(section)
	if err != nil {
		return nil, err
	}
	g := e.Form().Group(key)
	if g == nil {
		return nil, fmt.Errorf("%w: %s in %s", editor.ErrNoGroup, key, e.Section())
	}
	return g, nil
}

func usage(form string) error {
	return fmt.Errorf("%w: usage: %s", ErrUsage, form)
}

// Dump writes a script that rebuilds the current field values of every editor.
func Dump(w io.Writer, editors []editor.Editor) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "reset")
	for _, e := range editors {
		form := e.Form()
		fmt.Fprintf(bw, "# %s\n", e.Title())
		for _, g := range form.Groups {
			for range g.Rows {
				fmt.Fprintln(bw, Join([]string{"add", e.Section(), g.Key}))
			}
		}
		for _, entry := range form.Entries() {
			fmt.Fprintln(bw, Join([]string{"set", e.Section(), entry.Path, entry.Field.Value}))
		}
	}
	return bw.Flush()
}
