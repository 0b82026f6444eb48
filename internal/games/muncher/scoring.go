package muncher

// consume eats whatever is under the player. It returns true when the
// last collectible has just been eaten.
func (s *Session) consume(emit func(Event)) bool {
	at := s.board.TileOf(s.player.Pos)
	t, ok := s.board.Consume(at)
	if !ok {
		return false
	}

	switch t {
	case BonusCollectible:
		s.score += s.bonusPoints
	default:
		s.score += s.collectiblePoints
	}
	s.remaining--

	emit(Event{
		Kind:      EventScoreChanged,
		Score:     s.score,
		Remaining: s.remaining,
		Consumed:  t,
		At:        Coord{Col: s.board.wrapCol(at.Col), Row: at.Row},
	})
	return s.remaining == 0
}
