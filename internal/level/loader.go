package level

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/vovakirdan/tui-palace/internal/level/formats"
)

//go:embed world/*.yaml
var defaultWorld embed.FS

// Default returns the built-in world.
func Default() (*World, error) {
	return LoadFS(defaultWorld, "world")
}

// LoadDir loads every room file under dir.
func LoadDir(dir string) (*World, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("level: %s is not a directory", dir)
	}
	return LoadFS(os.DirFS(dir), ".")
}

// LoadFS walks root inside fsys and loads every room file into one atlas.
// Files are read in lexical order so duplicate reports are stable.
func LoadFS(fsys fs.FS, root string) (*World, error) {
	w := NewWorld()
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsRoomFile(p) {
			return nil
		}
		rooms, err := LoadFile(fsys, p)
		if err != nil {
			return err
		}
		for _, r := range rooms {
			if err := w.Add(r); err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("level: loading %s: %w", root, err)
	}
	return w, nil
}

// LoadFile parses a single room file.
func LoadFile(fsys fs.FS, p string) ([]RoomData, error) {
	var parsed []formats.Room
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".yaml", ".yml":
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading file %s: %w", p, err)
		}
		parsed, err = formats.ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parsing file %s: %w", p, err)
		}
	case ".tmx":
		room, err := formats.ParseTMX(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("parsing file %s: %w", p, err)
		}
		parsed = []formats.Room{room}
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}

	rooms := make([]RoomData, len(parsed))
	for i, fr := range parsed {
		rooms[i] = fromFormat(fr)
	}
	return rooms, nil
}

// IsRoomFile reports whether p has a room file extension.
func IsRoomFile(p string) bool {
	return slices.Contains(formats.FormatExtensions(), strings.ToLower(path.Ext(p)))
}
