package muncher

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/pixel-muncher/internal/config"
)

type fakeScheduler struct {
	scheduled []uint64
	delays    []time.Duration
	cancelled []uint64
}

func (f *fakeScheduler) Schedule(token uint64, after time.Duration) {
	f.scheduled = append(f.scheduled, token)
	f.delays = append(f.delays, after)
}

func (f *fakeScheduler) Cancel(token uint64) {
	f.cancelled = append(f.cancelled, token)
}

func (f *fakeScheduler) last() uint64 {
	if len(f.scheduled) == 0 {
		return 0
	}
	return f.scheduled[len(f.scheduled)-1]
}

type memPrefs struct {
	vals   map[string]int
	getErr error
	setErr error
	sets   int
}

func newMemPrefs() *memPrefs {
	return &memPrefs{vals: make(map[string]int)}
}

func (p *memPrefs) GetInt(key string) (int, bool, error) {
	if p.getErr != nil {
		return 0, false, p.getErr
	}
	v, ok := p.vals[key]
	return v, ok, nil
}

func (p *memPrefs) RaiseInt(key string, value int) (int, bool, error) {
	p.sets++
	if p.setErr != nil {
		return 0, false, p.setErr
	}
	if cur, ok := p.vals[key]; ok && cur >= value {
		return cur, false, nil
	}
	p.vals[key] = value
	return value, true, nil
}

// squareTemplate parks the pursuer on the wall in the middle of the ring,
// out of encounter range of every ring tile.
func squareTemplate() *Template {
	return &Template{
		ID:           "square",
		Name:         "Square",
		Grid:         MustGrid(square),
		PlayerSpawn:  Coord{1, 1},
		PursuerSpawn: Coord{2, 2},
	}
}

// sharedTemplate spawns both characters on the same tile.
func sharedTemplate() *Template {
	t := squareTemplate()
	t.PursuerSpawn = t.PlayerSpawn
	return t
}

func startedMachine(t *testing.T, tmpl *Template, opts ...Option) *Machine {
	t.Helper()
	m := NewMachine(tmpl, config.DefaultMuncherConfig(), opts...)
	if err := m.Start(config.DifficultyEasy); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return m
}

// freeze stops both characters, including after resets.
func freeze(s *Session) {
	s.playerSpeed, s.pursuerSpeed = 0, 0
	s.player.Speed, s.pursuer.Speed = 0, 0
}

func TestSquareScenarioWins(t *testing.T) {
	prefs := newMemPrefs()
	m := startedMachine(t, squareTemplate(), WithHighScores(prefs))
	s := m.Session()
	s.pursuer.Speed = 0

	if s.Remaining() != 7 {
		t.Fatalf("Remaining() = %d, want 7 (spawn tile is cleared)", s.Remaining())
	}

	turns := map[Coord]Direction{
		{3, 1}: DirDown,
		{3, 3}: DirLeft,
		{1, 3}: DirUp,
	}
	m.SetIntent(DirRight)

	var evs []Event
	for i := 0; i < 500 && m.State() == StatePlaying; i++ {
		if d, ok := turns[s.board.TileOf(s.player.Pos)]; ok {
			m.SetIntent(d)
		}
		evs = append(evs, m.Tick()...)
	}

	if m.State() != StateWon {
		t.Fatalf("State() = %s, want won (score %d, remaining %d)", m.State(), s.Score(), s.Remaining())
	}
	if s.Score() != 70 {
		t.Errorf("Score() = %d, want 70", s.Score())
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", s.Remaining())
	}
	if n := countKind(evs, EventScoreChanged); n != 7 {
		t.Errorf("score events = %d, want 7", n)
	}
	if n := countKind(evs, EventWon); n != 1 {
		t.Fatalf("won events = %d, want 1", n)
	}

	for _, e := range evs {
		if e.Kind != EventWon {
			continue
		}
		if e.Score != 70 || !e.NewHighScore || e.HighScore != 70 {
			t.Errorf("won event = %+v, want score 70 and a new high score", e)
		}
	}
	if prefs.vals[HighScoreKey] != 70 {
		t.Errorf("persisted high score = %d, want 70", prefs.vals[HighScoreKey])
	}

	// Terminal: further ticks do nothing.
	if evs := m.Tick(); len(evs) != 0 {
		t.Errorf("tick after win produced %v", evs)
	}
}

func TestConsumptionIsIdempotent(t *testing.T) {
	m := startedMachine(t, squareTemplate())
	s := m.Session()
	s.player.Pos = s.board.Center(Coord{2, 1})

	var evs []Event
	emit := func(e Event) { evs = append(evs, e) }

	s.consume(emit)
	s.consume(emit)

	if s.Score() != 10 || s.Remaining() != 6 {
		t.Errorf("score=%d remaining=%d, want 10 and 6", s.Score(), s.Remaining())
	}
	if len(evs) != 1 {
		t.Errorf("events = %d, want 1", len(evs))
	}
}

func TestBonusScoresFifty(t *testing.T) {
	tmpl := squareTemplate()
	rows := tmpl.Grid.Codes()
	rows[1][2] = CodeBonus
	tmpl.Grid = MustGrid(rows)

	m := startedMachine(t, tmpl)
	s := m.Session()
	s.player.Pos = s.board.Center(Coord{2, 1})
	s.consume(func(Event) {})

	if s.Score() != 50 {
		t.Errorf("Score() = %d, want 50", s.Score())
	}
}

func TestSameTileEncounter(t *testing.T) {
	sched := &fakeScheduler{}
	m := startedMachine(t, sharedTemplate(), WithScheduler(sched))
	s := m.Session()
	spawn := s.board.Center(Coord{1, 1})

	evs := m.Tick()

	if n := countKind(evs, EventEncounter); n != 1 {
		t.Fatalf("encounter events = %d, want 1", n)
	}
	if s.Lives() != 2 {
		t.Errorf("Lives() = %d, want 2", s.Lives())
	}
	if m.State() != StatePaused {
		t.Errorf("State() = %s, want paused", m.State())
	}
	if s.player.Pos != spawn || s.pursuer.Pos != spawn {
		t.Errorf("positions not reset: player %v pursuer %v", s.player.Pos, s.pursuer.Pos)
	}
	if s.player.Heading != DirNone || s.pursuer.Heading != DirNone {
		t.Error("headings not reset")
	}
	if len(sched.scheduled) != 1 || sched.delays[0] != 500*time.Millisecond {
		t.Fatalf("scheduled %v after %v, want one resume after 500ms", sched.scheduled, sched.delays)
	}

	// Nothing moves while paused.
	s.player.SetIntent(DirRight)
	for range 5 {
		m.Tick()
	}
	if s.player.Pos != spawn {
		t.Error("player moved during the reset pause")
	}

	if !m.Resume(sched.last()) {
		t.Fatal("Resume() with the live token returned false")
	}
	if m.State() != StatePlaying {
		t.Errorf("State() = %s, want playing", m.State())
	}
}

func TestEncounterDecrementsOncePerApproach(t *testing.T) {
	sched := &fakeScheduler{}
	m := startedMachine(t, sharedTemplate(), WithScheduler(sched))
	s := m.Session()
	freeze(s)

	var evs []Event
	for range 10 {
		evs = append(evs, m.Tick()...)
		if m.State() == StatePaused {
			m.Resume(sched.last())
		}
	}

	if n := countKind(evs, EventEncounter); n != 1 {
		t.Errorf("encounter events = %d, want 1", n)
	}
	if s.Lives() != 2 {
		t.Errorf("Lives() = %d, want 2", s.Lives())
	}

	// Separating and coming back counts as a new approach.
	s.pursuer.Pos = s.board.Center(Coord{3, 3})
	m.Tick()
	s.pursuer.Pos = s.player.Pos
	evs = m.Tick()
	if n := countKind(evs, EventEncounter); n != 1 {
		t.Errorf("encounter events after re-approach = %d, want 1", n)
	}
	if s.Lives() != 1 {
		t.Errorf("Lives() = %d, want 1", s.Lives())
	}
}

func TestLastLifeLost(t *testing.T) {
	sched := &fakeScheduler{}
	prefs := newMemPrefs()
	prefs.vals[HighScoreKey] = 100

	cfg := config.DefaultMuncherConfig()
	cfg.Gameplay.Lives = 1
	m := NewMachine(sharedTemplate(), cfg, WithScheduler(sched), WithHighScores(prefs))
	if err := m.Start(config.DifficultyHard); err != nil {
		t.Fatal(err)
	}

	evs := m.Tick()

	if m.State() != StateLost {
		t.Fatalf("State() = %s, want lost", m.State())
	}
	if n := countKind(evs, EventLost); n != 1 {
		t.Errorf("lost events = %d, want 1", n)
	}
	if m.Session().Lives() != 0 {
		t.Errorf("Lives() = %d, want 0", m.Session().Lives())
	}
	if len(sched.scheduled) != 0 {
		t.Errorf("resume scheduled on loss: %v", sched.scheduled)
	}
	for _, e := range evs {
		if e.Kind == EventLost && (e.NewHighScore || e.HighScore != 100) {
			t.Errorf("lost event = %+v, want no new high score", e)
		}
	}
	if prefs.sets != 0 {
		t.Errorf("store written %d times, want 0", prefs.sets)
	}
}

func TestStaleResumeIgnored(t *testing.T) {
	sched := &fakeScheduler{}
	m := startedMachine(t, sharedTemplate(), WithScheduler(sched))
	m.Tick()
	token := sched.last()

	for _, bad := range []uint64{0, token + 1, token - 1} {
		if m.Resume(bad) {
			t.Errorf("Resume(%d) accepted a stale token", bad)
		}
	}
	if m.State() != StatePaused {
		t.Fatalf("State() = %s, want paused", m.State())
	}
	if !m.Resume(token) {
		t.Fatal("Resume() rejected the live token")
	}
	if m.Resume(token) {
		t.Error("Resume() accepted the same token twice")
	}
}

func TestTransitions(t *testing.T) {
	m := NewMachine(squareTemplate(), config.DefaultMuncherConfig())

	if m.State() != StateMenu {
		t.Fatalf("initial State() = %s, want menu", m.State())
	}
	if evs := m.Tick(); len(evs) != 0 {
		t.Errorf("Tick() in menu produced %v", evs)
	}
	if err := m.Restart(); !errors.Is(err, ErrBadTransition) {
		t.Errorf("Restart() from menu error = %v", err)
	}

	if err := m.Start(config.DifficultyEasy); err != nil {
		t.Fatal(err)
	}
	if err := m.Start(config.DifficultyEasy); !errors.Is(err, ErrBadTransition) {
		t.Errorf("second Start() error = %v", err)
	}
	if err := m.Restart(); !errors.Is(err, ErrBadTransition) {
		t.Errorf("Restart() while playing error = %v", err)
	}

	evs := m.Drain()
	if len(evs) != 1 || evs[0].Kind != EventStateChanged || evs[0].State != StatePlaying {
		t.Errorf("events after start = %v", evs)
	}

	m.state = StateWon
	if err := m.Restart(); err != nil {
		t.Fatalf("Restart() from won error = %v", err)
	}
	if m.State() != StateMenu || m.Session() != nil {
		t.Errorf("after restart: state %s session %v", m.State(), m.Session())
	}
}

func TestHighScoreStore(t *testing.T) {
	tests := []struct {
		name     string
		stored   int
		present  bool
		getErr   error
		setErr   error
		wantHigh int
		wantNew  bool
		wantSets int
	}{
		{"absent", 0, false, nil, nil, 70, true, 1},
		{"lower stored", 50, true, nil, nil, 70, true, 1},
		{"higher stored", 100, true, nil, nil, 100, false, 0},
		{"equal stored", 70, true, nil, nil, 70, false, 0},
		{"corrupt stored", 0, false, errors.New("bad value"), nil, 70, true, 1},
		{"write fails", 0, false, nil, errors.New("disk full"), 70, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := newMemPrefs()
			if tt.present {
				prefs.vals[HighScoreKey] = tt.stored
			}
			prefs.getErr, prefs.setErr = tt.getErr, tt.setErr

			m := startedMachine(t, squareTemplate(), WithHighScores(prefs))
			m.Session().score = 70
			m.finish(StateWon)

			evs := m.Drain()
			var won *Event
			for i := range evs {
				if evs[i].Kind == EventWon {
					won = &evs[i]
				}
			}
			if won == nil {
				t.Fatal("no won event")
			}
			if won.HighScore != tt.wantHigh || won.NewHighScore != tt.wantNew {
				t.Errorf("won event high=%d new=%t, want %d %t", won.HighScore, won.NewHighScore, tt.wantHigh, tt.wantNew)
			}
			if prefs.sets != tt.wantSets {
				t.Errorf("store writes = %d, want %d", prefs.sets, tt.wantSets)
			}
		})
	}
}

func TestPursuerSpeedByDifficulty(t *testing.T) {
	tmpl := &Template{
		ID: "lane",
		Grid: MustGrid([][]int{
			{1, 1, 1, 1, 1, 1, 1, 1},
			{1, 2, 2, 2, 2, 2, 0, 1},
			{1, 1, 1, 1, 1, 1, 1, 1},
		}),
		PlayerSpawn:  Coord{6, 1},
		PursuerSpawn: Coord{1, 1},
	}
	cfg := config.DefaultMuncherConfig()

	tests := []struct {
		preset config.DifficultyPreset
		want   float64
	}{
		{config.DifficultyEasy, 4 * 0.75 * 0.75},
		{config.DifficultyHard, 4 * 0.75 * 1.25},
		{"nightmare", 4 * 0.75 * 0.75},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			m := NewMachine(tmpl, cfg)
			if err := m.Start(tt.preset); err != nil {
				t.Fatal(err)
			}
			s := m.Session()
			start := s.pursuer.Pos

			m.Tick()

			moved := s.pursuer.Pos.Dist(start)
			if !near(moved, tt.want) {
				t.Errorf("pursuer moved %v per tick, want %v", moved, tt.want)
			}
			if !near(moved, cfg.PursuerSpeed(tt.preset)) {
				t.Errorf("moved %v, config says %v", moved, cfg.PursuerSpeed(tt.preset))
			}
		})
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	m := startedMachine(t, squareTemplate())
	snap := m.Snapshot()

	snap.Grid.Consume(2, 1)

	if m.Session().board.Grid.Classify(2, 1) != Collectible {
		t.Error("mutating the snapshot grid changed the session")
	}
	if !snap.Active || snap.State != StatePlaying || snap.Lives != 3 || snap.Remaining != 7 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestSnapshotInMenu(t *testing.T) {
	tmpl := squareTemplate()
	m := NewMachine(tmpl, config.DefaultMuncherConfig())
	snap := m.Snapshot()

	if snap.Active {
		t.Error("menu snapshot marked active")
	}
	if snap.Player.Tile != tmpl.PlayerSpawn || snap.Pursuer.Tile != tmpl.PursuerSpawn {
		t.Errorf("spawns = %s %s", snap.Player.Tile, snap.Pursuer.Tile)
	}
	if snap.Remaining != tmpl.Grid.CountEdible() {
		t.Errorf("Remaining = %d, want %d", snap.Remaining, tmpl.Grid.CountEdible())
	}
}
