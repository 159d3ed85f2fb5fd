package leveldata

import (
	"testing"
	"testing/fstest"
)

const testArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="20" tileheight="20" infinite="0" nextlayerid="3" nextobjectid="5">
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="40" y="30"/>
 </objectgroup>
 <objectgroup id="2" name="PowerUpRegions">
  <object id="2" name="low" x="10" y="40" width="20" height="10"/>
  <object id="3" name="high" x="5" y="0" width="30" height="10"/>
  <object id="4" name="point" x="1" y="1"/>
 </objectgroup>
</map>
`

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{"maps/test.tmx": {Data: []byte(testArena)}}

	data, err := LoadArena(fsys, "maps/test.tmx")
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}

	if data.MapWidth != 80 || data.MapHeight != 60 {
		t.Errorf("size = %dx%d, want 80x60", data.MapWidth, data.MapHeight)
	}
	if data.PlayerSpawn == nil || data.PlayerSpawn.X != 40 || data.PlayerSpawn.Y != 30 {
		t.Errorf("PlayerSpawn = %+v, want (40, 30)", data.PlayerSpawn)
	}
	if len(data.PowerUpRegions) != 2 {
		t.Fatalf("got %d regions, want 2 (zero-size objects skipped)", len(data.PowerUpRegions))
	}
	if data.PowerUpRegions[0].Name != "high" || data.PowerUpRegions[1].Name != "low" {
		t.Errorf("regions not sorted top to bottom: %+v", data.PowerUpRegions)
	}
}

func TestLoadArenaMissingFile(t *testing.T) {
	if _, err := LoadArena(fstest.MapFS{}, "maps/none.tmx"); err == nil {
		t.Fatal("expected error for missing map")
	}
}
