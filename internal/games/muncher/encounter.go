package muncher

// detectEncounter reports an encounter on the tick the characters come
// within encounter distance. Staying close does not fire again until they
// have separated; the flag survives the post-encounter reset.
func (s *Session) detectEncounter() bool {
	near := s.player.Pos.Dist(s.pursuer.Pos) < s.encounterDist
	fired := near && !s.overlapping
	s.overlapping = near
	return fired
}

// loseLife takes one life and, if any are left, puts both characters back
// at their spawn tiles. Lives never go below zero.
func (s *Session) loseLife() int {
	if s.lives > 0 {
		s.lives--
	}
	if s.lives > 0 {
		s.spawn()
	}
	return s.lives
}
