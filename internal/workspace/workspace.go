// Package workspace manages the planets folder that named exports are written to
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/provide-io/planetmaker/pkg/planet"
)

var ErrBadName = errors.New("❌ invalid planet name")

const heightmapDir = "heightmaps"

// GetDataRoot returns the platform data folder for planetmaker
func GetDataRoot() string {
	switch runtime.GOOS {
	case "darwin":
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, "Library", "Application Support", "planetmaker")
		}
	case "linux":
		if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
			return filepath.Join(xdgData, "planetmaker")
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".local", "share", "planetmaker")
		}
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, "planetmaker")
		}
	}

	// Fallback to temp directory
	return filepath.Join(os.TempDir(), "planetmaker")
}

// DefaultPlanetsDir is the planets folder inside the data root
func DefaultPlanetsDir() string {
	return filepath.Join(GetDataRoot(), "planets")
}

// Workspace is a planets folder.
type Workspace struct {
	Dir string
}

// New opens the planets folder dir, or the default folder when dir is empty.
func New(dir string) *Workspace {
	if dir == "" {
		dir = DefaultPlanetsDir()
	}
	return &Workspace{Dir: dir}
}

// DirectorySpec specifies a directory to create
type DirectorySpec struct {
	Path string
	Mode os.FileMode
}

// Layout lists the folders Ensure creates.
var Layout = []DirectorySpec{
	{Path: ".", Mode: planet.DefaultDirMode},
	{Path: heightmapDir, Mode: planet.DefaultDirMode},
}

// Ensure creates the workspace folders
func (w *Workspace) Ensure() error {
	for _, dir := range Layout {
		mode := dir.Mode
		if mode == 0 {
			mode = planet.DefaultDirMode
		}
		if err := os.MkdirAll(filepath.Join(w.Dir, dir.Path), mode); err != nil {
			return &planet.IOError{Op: "create directory", Path: filepath.Join(w.Dir, dir.Path), Err: err}
		}
	}
	return nil
}

// PlanetPath maps a planet name to <dir>/<name>.txt. Names may not contain path separators.
func (w *Workspace) PlanetPath(name string) (string, error) {
	file, err := fileName(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(w.Dir, file), nil
}

// HeightmapPath maps a heightmap name to <dir>/heightmaps/<name>.txt.
func (w *Workspace) HeightmapPath(name string) (string, error) {
	file, err := fileName(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(w.Dir, heightmapDir, file), nil
}

// Resolve returns arg unchanged when it looks like a path, and the planet path otherwise.
func (w *Workspace) Resolve(arg string) string {
	if strings.ContainsAny(arg, `/\`) || filepath.IsAbs(arg) {
		return arg
	}
	if path, err := w.PlanetPath(arg); err == nil {
		return path
	}
	return arg
}

func fileName(name string) (string, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "", name == ".", name == "..":
		return "", fmt.Errorf("%w: %q", ErrBadName, name)
	case strings.ContainsAny(name, `/\`):
		return "", fmt.Errorf("%w: %q contains a path separator", ErrBadName, name)
	case strings.HasPrefix(name, "."):
		return "", fmt.Errorf("%w: %q must not start with a dot", ErrBadName, name)
	}
	if !strings.EqualFold(filepath.Ext(name), planet.FileExtension) {
		name += planet.FileExtension
	}
	return name, nil
}

// Entry describes one planet file in the workspace.
type Entry struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

// List returns the planet files in the workspace sorted by name. A missing folder is empty.
func (w *Workspace) List() ([]Entry, error) {
	items, err := os.ReadDir(w.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &planet.IOError{Op: "list", Path: w.Dir, Err: err}
	}

	var entries []Entry
	for _, item := range items {
		name := item.Name()
		if item.IsDir() || strings.HasPrefix(name, ".") || !strings.EqualFold(filepath.Ext(name), planet.FileExtension) {
			continue
		}
		info, err := item.Info()
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Name:    strings.TrimSuffix(name, filepath.Ext(name)),
			Path:    filepath.Join(w.Dir, name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}
