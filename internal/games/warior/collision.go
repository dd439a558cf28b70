package warior

import (
	"github.com/vovakirdan/space-warior/internal/config"
	"github.com/vovakirdan/space-warior/internal/core"
)

// Hit records one bullet destroying one enemy.
type Hit struct {
	Bullet, Enemy int
}

// playerHit tests the player against one enemy using the configured shape.
// The round player of the squares variant is tested by its centre point
// against the enemy square; the radius only bounds its movement.
func playerHit(player, enemy Entity, mode string) bool {
	if mode == config.CollisionCircle {
		return core.CircleHitsSquare(player.X, player.Y, enemy.X, enemy.Y, enemy.Size())
	}
	return player.Overlaps(enemy)
}

// ResolveCollisions marks collided bullets and enemies and reports whether the
// player touched any enemy. Every overlapping bullet/enemy pair counts, so one
// bullet can destroy several enemies in the same frame.
func ResolveCollisions(s *EntityStore, mode string) (playerCollided bool, hits []Hit) {
	for i := range s.Enemies {
		if playerHit(s.Player, s.Enemies[i], mode) {
			playerCollided = true
		}
	}
	for bi := range s.Bullets {
		for ei := range s.Enemies {
			if s.Bullets[bi].Overlaps(s.Enemies[ei]) {
				s.Bullets[bi].Collided = true
				s.Enemies[ei].Collided = true
				hits = append(hits, Hit{Bullet: bi, Enemy: ei})
			}
		}
	}
	return playerCollided, hits
}
