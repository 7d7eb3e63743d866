package formats

import (
	"reflect"
	"testing"
	"testing/fstest"
)

const tmxRoom = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="32" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="1">
 <tileset firstgid="1" name="palace" tilewidth="32" tileheight="32" tilecount="64" columns="8">
  <image source="tiles.png" width="256" height="256"/>
 </tileset>
 <layer id="1" name="tiles" width="3" height="2">
  <data encoding="csv">
3,0,9,
3,3,3
</data>
 </layer>
 <layer id="2" name="codes" width="3" height="2">
  <data encoding="csv">
0,6,0,
0,0,0
</data>
 </layer>
</map>
`

func TestParseTMX(t *testing.T) {
	fsys := fstest.MapFS{
		"rooms/4_7_north-tower.tmx": {Data: []byte(tmxRoom)},
	}
	room, err := ParseTMX(fsys, "rooms/4_7_north-tower.tmx")
	if err != nil {
		t.Fatalf("ParseTMX() error = %v", err)
	}
	if room.X != 4 || room.Y != 7 {
		t.Errorf("coords = %d:%d, expected 4:7", room.X, room.Y)
	}
	if room.Name != "north tower" {
		t.Errorf("Name = %q, expected %q", room.Name, "north tower")
	}
	wantTiles := [][]int{{2, 0, 8}, {2, 2, 2}}
	if !reflect.DeepEqual(room.Tiles, wantTiles) {
		t.Errorf("Tiles = %v, expected %v", room.Tiles, wantTiles)
	}
	wantCodes := [][]int{{0, 5, 0}, {0, 0, 0}}
	if !reflect.DeepEqual(room.Codes, wantCodes) {
		t.Errorf("Codes = %v, expected %v", room.Codes, wantCodes)
	}
}

func TestParseRoomFileName(t *testing.T) {
	tests := []struct {
		base    string
		x, y    int
		name    string
		wantErr bool
	}{
		{base: "8_8.tmx", x: 8, y: 8},
		{base: "0_12_the_crypt.tmx", x: 0, y: 12, name: "the crypt"},
		{base: "hall.tmx", wantErr: true},
		{base: "a_1.tmx", wantErr: true},
		{base: "1_b.tmx", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			x, y, name, err := parseRoomFileName(tt.base)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseRoomFileName() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if x != tt.x || y != tt.y || name != tt.name {
				t.Errorf("parseRoomFileName() = (%d, %d, %q), expected (%d, %d, %q)", x, y, name, tt.x, tt.y, tt.name)
			}
		})
	}
}
