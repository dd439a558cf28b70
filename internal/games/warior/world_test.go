package warior

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/space-warior/internal/config"
)

func TestCullBoundaries(t *testing.T) {
	s := EntityStore{
		Enemies: []Entity{
			{Y: 640, H: 40},   // exactly one height below: kept
			{Y: 640.5, H: 40}, // gone
			{Y: -50, H: 50},   // just spawned above the field: kept
		},
		Bullets: []Entity{
			{Y: -16, H: 16}, // exactly one height above: kept
			{Y: -17, H: 16}, // gone
			{Y: 300, H: 16},
		},
	}
	s.Cull(600)

	if len(s.Enemies) != 2 || s.Enemies[0].Y != 640 || s.Enemies[1].Y != -50 {
		t.Errorf("enemies after Cull = %+v", s.Enemies)
	}
	if len(s.Bullets) != 2 || s.Bullets[0].Y != -16 || s.Bullets[1].Y != 300 {
		t.Errorf("bullets after Cull = %+v", s.Bullets)
	}
}

func TestCullIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	var s EntityStore
	for i := 0; i < 200; i++ {
		s.Enemies = append(s.Enemies, Entity{Y: rng.Float64()*900 - 100, H: 10 + rng.Float64()*80})
		s.Bullets = append(s.Bullets, Entity{Y: rng.Float64()*900 - 200, H: 16})
	}

	s.Cull(600)
	enemies, bullets := slices.Clone(s.Enemies), slices.Clone(s.Bullets)
	s.Cull(600)

	if !slices.Equal(s.Enemies, enemies) || !slices.Equal(s.Bullets, bullets) {
		t.Error("second Cull changed the surviving set")
	}
}

func TestPurgeRemovesCollided(t *testing.T) {
	s := EntityStore{
		Enemies: []Entity{{X: 1, Collided: true}, {X: 2}, {X: 3, Collided: true}},
		Bullets: []Entity{{X: 4, Collided: true}},
	}
	s.Purge()
	if len(s.Enemies) != 1 || s.Enemies[0].X != 2 {
		t.Errorf("enemies after Purge = %+v", s.Enemies)
	}
	if len(s.Bullets) != 0 {
		t.Errorf("bullets after Purge = %+v", s.Bullets)
	}
}

func TestAdvanceDirections(t *testing.T) {
	s := EntityStore{
		Enemies: []Entity{{Y: 0, Speed: 300}},
		Bullets: []Entity{{Y: 500, Speed: 600}},
	}
	s.Advance(0.5)
	if s.Enemies[0].Y != 150 {
		t.Errorf("enemy y = %v, expected 150", s.Enemies[0].Y)
	}
	if s.Bullets[0].Y != 200 {
		t.Errorf("bullet y = %v, expected 200", s.Bullets[0].Y)
	}
}

func TestMovePlayerTinyField(t *testing.T) {
	s := EntityStore{Player: Entity{X: 5, Y: 5, Speed: 100}}
	s.MovePlayer(1, 1, 1, 20, 20, 30, 30)
	if s.Player.X != 15 || s.Player.Y != 15 {
		t.Errorf("player at (%v, %v), expected pinned to (15, 15)", s.Player.X, s.Player.Y)
	}
}

func TestResolveCollisionsAABBSymmetric(t *testing.T) {
	a := Entity{X: 10, Y: 10, W: 20, H: 20}
	b := Entity{X: 30, Y: 30, W: 20, H: 20} // shares the corner (20, 20)
	if !a.Overlaps(b) || !b.Overlaps(a) {
		t.Error("entities sharing one corner should overlap both ways")
	}

	s := EntityStore{
		Player:  Entity{X: 100, Y: 100, W: 32, H: 32},
		Enemies: []Entity{{X: 500, Y: 500, W: 40, H: 40}},
		Bullets: []Entity{{X: 479.5, Y: 479.5, W: 1, H: 1}},
	}
	hitPlayer, hits := ResolveCollisions(&s, config.CollisionAABB)
	if hitPlayer {
		t.Error("player should not be hit")
	}
	if len(hits) != 1 || !s.Enemies[0].Collided || !s.Bullets[0].Collided {
		t.Errorf("bullet touching the enemy corner should hit, hits = %v", hits)
	}
}

func TestResolveCollisionsCircleMode(t *testing.T) {
	s := EntityStore{
		Player:  Entity{X: 100, Y: 100, W: 32, H: 32},
		Enemies: []Entity{{X: 100, Y: 100, W: 16, H: 16}},
	}
	if hit, _ := ResolveCollisions(&s, config.CollisionCircle); !hit {
		t.Error("coincident centres should collide in circle mode")
	}
}

func TestCollidedIsNeverCleared(t *testing.T) {
	s := EntityStore{
		Enemies: []Entity{{X: 0, Y: 0, W: 10, H: 10, Collided: true}},
		Bullets: []Entity{{X: 100, Y: 100, W: 1, H: 1}},
	}
	ResolveCollisions(&s, config.CollisionAABB)
	if !s.Enemies[0].Collided {
		t.Error("a collided enemy must stay collided")
	}
}
