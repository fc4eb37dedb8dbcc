package paipu_test

import (
	"testing"

	"github.com/kevin-chtw/tw_paipu/paipu"
)

func allValidTiles() []paipu.Tile {
	tiles := make([]paipu.Tile, 0, 37)
	for _, base := range []int{10, 20, 30} {
		for p := 1; p <= 9; p++ {
			tiles = append(tiles, paipu.Tile(base+p))
		}
	}
	for p := 1; p <= 7; p++ {
		tiles = append(tiles, paipu.Tile(40+p))
	}
	return append(tiles, 51, 52, 53)
}

func Test_TileRoundTrip(t *testing.T) {
	for _, tile := range allValidTiles() {
		got, err := paipu.ParseTile(tile.String())
		if err != nil {
			t.Fatalf("ParseTile(%q): %v", tile.String(), err)
		}
		if got != tile {
			t.Errorf("ParseTile(%q) = %d, want %d", tile.String(), got, tile)
		}
	}
}

func Test_ParseTileInvalid(t *testing.T) {
	for _, s := range []string{"", "5", "5x", "10m", "8z", "m5"} {
		if _, err := paipu.ParseTile(s); err == nil {
			t.Errorf("ParseTile(%q) expected error", s)
		}
	}
}

func Test_MakeTile(t *testing.T) {
	testCases := []struct {
		suit  paipu.ESuit
		point int
		red   bool
		want  paipu.Tile
		ok    bool
	}{
		{paipu.SuitCharacter, 2, false, 12, true},
		{paipu.SuitDot, 5, true, 52, true},
		{paipu.SuitHonor, 7, false, 47, true},
		{paipu.SuitHonor, 8, false, paipu.TileNull, false},
		{paipu.SuitBamboo, 3, true, paipu.TileNull, false}, // 赤牌只有5
		{paipu.SuitUndefined, 1, false, paipu.TileNull, false},
	}
	for _, tc := range testCases {
		got, err := paipu.MakeTile(tc.suit, tc.point, tc.red)
		if tc.ok != (err == nil) {
			t.Errorf("MakeTile(%v,%d,%v) err = %v", tc.suit, tc.point, tc.red, err)
			continue
		}
		if got != tc.want {
			t.Errorf("MakeTile(%v,%d,%v) = %d, want %d", tc.suit, tc.point, tc.red, got, tc.want)
		}
	}
}

func Test_AkaMapping(t *testing.T) {
	testCases := []struct {
		tile  paipu.Tile
		deaka paipu.Tile
		aka   paipu.Tile
	}{
		{51, 15, 51},
		{52, 25, 52},
		{53, 35, 53},
		{15, 15, 51},
		{25, 25, 52},
		{12, 12, 12},
		{44, 44, 44},
	}
	for _, tc := range testCases {
		if got := tc.tile.Deaka(); got != tc.deaka {
			t.Errorf("Deaka(%d) = %d, want %d", tc.tile, got, tc.deaka)
		}
		if got := tc.tile.Makeaka(); got != tc.aka {
			t.Errorf("Makeaka(%d) = %d, want %d", tc.tile, got, tc.aka)
		}
	}
}

func Test_TileClasses(t *testing.T) {
	for _, tile := range []paipu.Tile{41, 42, 43, 44} {
		if !tile.IsWind() {
			t.Errorf("IsWind(%d) = false", tile)
		}
	}
	for _, tile := range []paipu.Tile{45, 46, 47} {
		if !tile.IsDragon() {
			t.Errorf("IsDragon(%d) = false", tile)
		}
		if tile.IsWind() {
			t.Errorf("IsWind(%d) = true", tile)
		}
	}
	if paipu.Tile(51).IsDragon() || paipu.Tile(51).IsWind() {
		t.Error("red five misclassified as honor")
	}
}
