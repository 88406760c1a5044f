// Package session holds the one in-memory planet document of an editing session and the
// editors bound to it.
package session

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/planetmaker/pkg/editor"
	"github.com/provide-io/planetmaker/pkg/planet"
)

// State is the session lifecycle position.
type State int

const (
	StateDefault State = iota
	StateLoaded
	StateEdited
	StateExported
)

func (s State) String() string {
	switch s {
	case StateDefault:
		return "default"
	case StateLoaded:
		return "loaded"
	case StateEdited:
		return "edited"
	case StateExported:
		return "exported"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session owns the current document. Editors never touch it directly: Collect assembles a
// new document from them and swaps it in only when every section is valid.
type Session struct {
	doc     *planet.Document
	editors []editor.Editor
	state   State
	path    string
	opts    planet.ExportOptions
	logger  hclog.Logger
}

// New starts a session on the default document.
func New(logger hclog.Logger, opts planet.ExportOptions) *Session {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if opts.Logger == nil {
		opts.Logger = logger
	}
	s := &Session{
		doc:     planet.Default(),
		editors: editor.All(),
		opts:    opts,
		logger:  logger,
	}
	editor.PopulateAll(s.editors, s.doc)
	return s
}

// Document returns a copy of the current document.
func (s *Session) Document() *planet.Document {
	return s.doc.Clone()
}

func (s *Session) Editors() []editor.Editor {
	return s.editors
}

// Editor returns the editor owning section, or nil.
func (s *Session) Editor(section string) editor.Editor {
	return editor.Find(s.editors, section)
}

func (s *Session) State() State {
	return s.state
}

// Path is the file last loaded or exported, empty for a new planet.
func (s *Session) Path() string {
	return s.path
}

// Reset discards the document and starts over from defaults.
func (s *Session) Reset() {
	s.doc = planet.Default()
	s.state = StateDefault
	s.path = ""
	editor.PopulateAll(s.editors, s.doc)
	s.logger.Debug("Session reset to defaults")
}

// Load replaces the document with the file at path. On failure the session is unchanged.
func (s *Session) Load(path string) error {
	doc, err := planet.Load(path)
	if err != nil {
		s.logger.Error("❌ Failed to load planet", "path", path, "error", err)
		return err
	}
	s.Use(doc)
	s.state = StateLoaded
	s.path = path
	s.logger.Info("📂 Planet loaded", "path", path)
	return nil
}

// Use replaces the document with doc and repopulates every editor.
func (s *Session) Use(doc *planet.Document) {
	s.doc = planet.Complete(doc)
	editor.PopulateAll(s.editors, s.doc)
}

// Collect assembles the editors into the session document. The version has no editor and
// is carried over from the current document.
func (s *Session) Collect() error {
	doc, err := editor.Assemble(s.editors)
	if err != nil {
		s.logger.Warn("⚠️ Invalid field", "error", err)
		return err
	}
	doc.Version = s.doc.Version
	s.doc = doc
	s.state = StateEdited
	return nil
}

// Export collects the editors and writes the document to path.
func (s *Session) Export(path string) (string, error) {
	if err := s.Collect(); err != nil {
		return "", err
	}
	written, err := planet.ExportWithOptions(s.doc, path, s.opts)
	if err != nil {
		return "", err
	}
	s.state = StateExported
	s.path = written
	return written, nil
}
