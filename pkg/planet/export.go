package planet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// =================================
// Export defaults
// =================================
const (
	DefaultIndent   = "  "
	DefaultFileMode = 0o644
	DefaultDirMode  = 0o755
	FileExtension   = ".txt"
)

// ExportOptions controls how a document is written.
type ExportOptions struct {
	Indent   string      // JSON indent, DefaultIndent when empty
	FileMode os.FileMode // permissions of the written file, DefaultFileMode when zero
	Logger   hclog.Logger
}

// Export writes doc to path using default options and returns the path written.
func Export(doc *Document, path string) (string, error) {
	return ExportWithOptions(doc, path, ExportOptions{})
}

// ExportWithOptions normalizes and validates doc, encodes it into memory and replaces the
// file at path in a single rename. Parent directories are created as needed. A failure at
// any step leaves the previous file untouched.
func ExportWithOptions(doc *Document, path string, opts ExportOptions) (string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	indent := opts.Indent
	if indent == "" {
		indent = DefaultIndent
	}
	mode := opts.FileMode
	if mode == 0 {
		mode = DefaultFileMode
	}

	normalized := Normalize(doc)
	if err := Validate(normalized); err != nil {
		logger.Error("❌ Planet document failed validation", "error", err)
		return "", err
	}

	data, err := Encode(normalized, indent)
	if err != nil {
		return "", err
	}
	logger.Debug("📦 Encoded planet document", "size", len(data))

	if err := WriteFile(path, data, mode, logger); err != nil {
		return "", err
	}
	logger.Info("✅ Planet exported", "path", path)
	return path, nil
}

// Normalize returns the document exactly as it will be written: empty collections are
// back-filled and a POST_PROCESSING section without keys is dropped.
func Normalize(doc *Document) *Document {
	out := Complete(doc)
	if out.PostProcessing != nil && len(out.PostProcessing.Keys) == 0 {
		out.PostProcessing = nil
	}
	return out
}

// Validate checks the invariants the type system cannot hold on its own.
func Validate(doc *Document) error {
	if !doc.OrbitData.Direction.Valid() {
		return &ValidationError{
			Section: SectionOrbitData,
			Field:   "direction",
			Value:   fmt.Sprint(int(doc.OrbitData.Direction)),
			Reason:  "must be 1 or -1",
		}
	}
	if !doc.BaseData.MapColor.Valid() {
		return &ValidationError{
			Section: SectionBaseData,
			Field:   "mapColor",
			Reason:  "color components must lie in [0,1]",
		}
	}
	for i, key := range doc.AtmosphereVisuals.Fog.Keys {
		if !key.Color.Valid() {
			return &ValidationError{
				Section: SectionAtmosphereVisuals,
				Field:   fmt.Sprintf("FOG.keys.%d.color", i),
				Reason:  "color components must lie in [0,1]",
			}
		}
	}
	if doc.Heightmap != nil {
		for i, p := range doc.Heightmap.Points {
			if math.IsNaN(p) || p < 0 || p > 1 {
				return &ValidationError{
					Section: SectionHeightmap,
					Field:   fmt.Sprintf("points.%d", i),
					Value:   fmt.Sprint(p),
					Reason:  "must lie in [0,1]",
				}
			}
		}
	}
	return nil
}

// Encode renders doc as indented JSON text.
func Encode(doc *Document, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(doc); err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("document cannot be encoded: %v", err)}
	}
	return buf.Bytes(), nil
}

// Load reads and parses the planet file at path. Missing sections take their defaults.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	doc, err := Parse(data)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// WriteFile replaces the file at path with data through a temporary file in the same
// directory, creating parent directories first. Failures are reported as *IOError.
func WriteFile(path string, data []byte, mode os.FileMode, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	dir := filepath.Dir(path)
	logger.Debug("📁 Ensuring output directory exists", "dir", dir)
	if err := os.MkdirAll(dir, DefaultDirMode); err != nil {
		return &IOError{Op: "create directory for", Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
			logger.Debug("Failed to remove temporary file", "path", tmpPath, "error", rmErr)
		}
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return &IOError{Op: "sync", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return &IOError{Op: "close", Path: path, Err: err}
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		cleanup()
		return &IOError{Op: "chmod", Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
