package warior

// EntityStore owns every live entity of one session.
type EntityStore struct {
	Player  Entity
	Bullets []Entity
	Enemies []Entity
}

// Reset replaces the player and empties the bullet and enemy collections.
func (s *EntityStore) Reset(player Entity) {
	s.Player = player
	s.Bullets = s.Bullets[:0]
	s.Enemies = s.Enemies[:0]
}

// MovePlayer applies a velocity to the player and clamps it so that a margin
// of halfW/halfH around the centre stays inside the field.
func (s *EntityStore) MovePlayer(dx, dy, dt, halfW, halfH, fieldW, fieldH float64) {
	p := &s.Player
	p.X = clampAxis(p.X+dx*p.Speed*dt, halfW, fieldW-halfW)
	p.Y = clampAxis(p.Y+dy*p.Speed*dt, halfH, fieldH-halfH)
}

// Advance moves enemies down and bullets up.
func (s *EntityStore) Advance(dt float64) {
	for i := range s.Enemies {
		s.Enemies[i].Y += s.Enemies[i].Speed * dt
	}
	for i := range s.Bullets {
		s.Bullets[i].Y -= s.Bullets[i].Speed * dt
	}
}

// Cull removes enemies more than their height below the field and bullets
// more than their height above it.
func (s *EntityStore) Cull(fieldH float64) {
	s.Enemies = retain(s.Enemies, func(e Entity) bool { return e.Y <= fieldH+e.H })
	s.Bullets = retain(s.Bullets, func(b Entity) bool { return b.Y >= -b.H })
}

// Purge removes every collided bullet and enemy.
func (s *EntityStore) Purge() {
	live := func(e Entity) bool { return !e.Collided }
	s.Enemies = retain(s.Enemies, live)
	s.Bullets = retain(s.Bullets, live)
}

// retain filters in place, keeping the order of survivors.
func retain(list []Entity, keep func(Entity) bool) []Entity {
	out := list[:0]
	for _, e := range list {
		if keep(e) {
			out = append(out, e)
		}
	}
	clear(list[len(out):])
	return out
}

// clampAxis keeps v within [lo, hi]; a field smaller than the entity pins it
// to the centre of the range.
func clampAxis(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return min(max(v, lo), hi)
}
