// Package formats provides the room file parsers.
package formats

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Room is a parsed room ready for validation.
type Room struct {
	X, Y  int
	Name  string
	Tiles [][]int
	Codes [][]int
}

// YAMLRoom is one YAML document. A room is given either as explicit
// tiles/codes rows or as a map picture read through a legend.
type YAMLRoom struct {
	Name   string               `yaml:"name,omitempty"`
	X      int                  `yaml:"x"`
	Y      int                  `yaml:"y"`
	Tiles  [][]int              `yaml:"tiles,omitempty"`
	Codes  [][]int              `yaml:"codes,omitempty"`
	Map    string               `yaml:"map,omitempty"`
	Legend map[string]YAMLGlyph `yaml:"legend,omitempty"`
}

// YAMLGlyph is what one map character places in its cell.
type YAMLGlyph struct {
	Tile int `yaml:"tile,omitempty"`
	Code int `yaml:"code,omitempty"`
}

// DefaultLegend is used for map characters without a legend entry.
func DefaultLegend() map[rune]YAMLGlyph {
	return map[rune]YAMLGlyph{
		'.': {},
		' ': {},
		'#': {Tile: 2},
		'=': {Tile: 3},
		'H': {Tile: 8},
		'^': {Tile: 1},
		't': {Code: 1},
		'r': {Code: 2},
		'e': {Code: 4},
		's': {Code: 5},
		'c': {Code: 8},
		'b': {Code: 9},
		'T': {Code: 10},
		'p': {Code: 12},
		'|': {Code: 16},
	}
}

// ParseYAML parses every room document in data. Documents are separated
// by "---".
func ParseYAML(data []byte) ([]Room, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var rooms []Room
	for {
		var yr YAMLRoom
		err := dec.Decode(&yr)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
		room, err := yr.Room()
		if err != nil {
			return nil, fmt.Errorf("room %d:%d: %w", yr.X, yr.Y, err)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// Room converts the document, expanding the map picture if there is one.
func (yr YAMLRoom) Room() (Room, error) {
	room := Room{X: yr.X, Y: yr.Y, Name: yr.Name, Tiles: yr.Tiles, Codes: yr.Codes}
	if yr.Map == "" {
		return room, nil
	}
	if len(yr.Tiles) > 0 || len(yr.Codes) > 0 {
		return Room{}, errors.New("both map and tiles/codes given")
	}

	legend := DefaultLegend()
	for key, g := range yr.Legend {
		r := []rune(key)
		if len(r) != 1 {
			return Room{}, fmt.Errorf("legend key %q is not one character", key)
		}
		legend[r[0]] = g
	}

	lines := strings.Split(strings.TrimRight(yr.Map, "\n"), "\n")
	room.Tiles = make([][]int, len(lines))
	room.Codes = make([][]int, len(lines))
	for y, line := range lines {
		for x, ch := range []rune(line) {
			g, ok := legend[ch]
			if !ok {
				return Room{}, fmt.Errorf("unknown map character %q at row %d column %d", ch, y, x)
			}
			room.Tiles[y] = append(room.Tiles[y], g.Tile)
			room.Codes[y] = append(room.Codes[y], g.Code)
		}
	}
	return room, nil
}

// MarshalYAML writes rooms as explicit tile and code rows.
func MarshalYAML(rooms []Room) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	for _, r := range rooms {
		doc := YAMLRoom{Name: r.Name, X: r.X, Y: r.Y, Tiles: r.Tiles, Codes: r.Codes}
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("yaml marshal: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return buf.Bytes(), nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".tmx"}
}
