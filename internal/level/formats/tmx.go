package formats

import (
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// TMX layer names.
const (
	TilesLayer = "tiles"
	CodesLayer = "codes"
)

// ParseTMX loads a Tiled map. The "tiles" layer is required and "codes" is
// optional; a cell's value is its tile index in the tileset, 0 when empty.
// The room coordinates come from the file name: "8_8.tmx" or
// "8_8_great-hall.tmx", where the rest of the name becomes the room name.
func ParseTMX(fsys fs.FS, tmxPath string) (Room, error) {
	x, y, name, err := parseRoomFileName(path.Base(tmxPath))
	if err != nil {
		return Room{}, err
	}

	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return Room{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.Width <= 0 || levelMap.Height <= 0 {
		return Room{}, fmt.Errorf("TMX %s: empty map", tmxPath)
	}

	room := Room{X: x, Y: y, Name: name}
	for _, layer := range levelMap.Layers {
		switch layer.Name {
		case TilesLayer:
			room.Tiles = layerGrid(layer, levelMap.Width, levelMap.Height)
		case CodesLayer:
			room.Codes = layerGrid(layer, levelMap.Width, levelMap.Height)
		}
	}
	if room.Tiles == nil {
		return Room{}, fmt.Errorf("TMX %s: no %q layer", tmxPath, TilesLayer)
	}
	return room, nil
}

func layerGrid(layer *tiled.Layer, w, h int) [][]int {
	out := make([][]int, h)
	for y := 0; y < h; y++ {
		out[y] = make([]int, w)
		for x := 0; x < w; x++ {
			i := y*w + x
			if i >= len(layer.Tiles) {
				continue
			}
			t := layer.Tiles[i]
			if t == nil || t.IsNil() {
				continue
			}
			out[y][x] = int(t.ID)
		}
	}
	return out
}

func parseRoomFileName(base string) (int, int, string, error) {
	stem := strings.TrimSuffix(base, path.Ext(base))
	parts := strings.SplitN(stem, "_", 3)
	if len(parts) < 2 {
		return 0, 0, "", fmt.Errorf("TMX name %q: expected <x>_<y>[_name]", base)
	}
	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, "", fmt.Errorf("TMX name %q: bad x: %w", base, err)
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, "", fmt.Errorf("TMX name %q: bad y: %w", base, err)
	}
	var name string
	if len(parts) == 3 {
		name = strings.NewReplacer("-", " ", "_", " ").Replace(parts[2])
	}
	return x, y, name, nil
}
