package systems

import (
	"testing"

	"github.com/automoto/survivor/components"
	"github.com/automoto/survivor/systems/factory"
	"github.com/automoto/survivor/tags"
)

func TestUpdateBulletsFiltersBeforeMoving(t *testing.T) {
	e := newTestArena(t, nil)

	inside := factory.CreateBullet(e, 100, 100, 200, 100)
	onEdge := factory.CreateBullet(e, testWidth, 300, testWidth+100, 300)
	outside := factory.CreateBullet(e, -1, 300, -100, 300)

	UpdateBullets(e)

	if outside.Valid() {
		t.Error("bullet outside the playfield was not removed")
	}
	if !inside.Valid() || !onEdge.Valid() {
		t.Fatal("bullet inside the playfield was removed")
	}
	if got := components.Object.Get(inside).X; got != 110 {
		t.Errorf("inside bullet x = %v, want 110", got)
	}

	// The edge bullet moved past the edge and goes on the next pass
	UpdateBullets(e)
	if onEdge.Valid() {
		t.Error("bullet past the edge survived a second pass")
	}
	if n := count(e, tags.Bullet); n != 1 {
		t.Errorf("bullets = %d, want 1", n)
	}
}
