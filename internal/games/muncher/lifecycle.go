package muncher

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-muncher/internal/config"
	"github.com/vovakirdan/pixel-muncher/internal/core"
)

// HighScoreKey is the key under which the best score is persisted.
const HighScoreKey = "pixelMuncherHighScore"

// ErrBadTransition is returned when a lifecycle call is not valid in the
// current state.
var ErrBadTransition = errors.New("muncher: invalid state transition")

// State is the lifecycle state of the Machine.
type State uint8

const (
	StateMenu State = iota
	StatePlaying
	StatePaused // Resetting after a lost life
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Terminal reports whether the state ends a session.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// Scheduler runs the post-encounter resume outside the tick loop.
// Schedule must not block; the holder calls Machine.Resume(token) once
// after has elapsed unless the token was cancelled first.
type Scheduler interface {
	Schedule(token uint64, after time.Duration)
	Cancel(token uint64)
}

// Option configures a Machine.
type Option func(*Machine)

// WithHighScores persists the best score in kv under HighScoreKey.
func WithHighScores(kv core.KeyValue) Option {
	return func(m *Machine) { m.prefs = kv }
}

// WithScheduler sets the scheduler for post-encounter resumes. Without one
// the machine stays paused until Resume is called by hand.
func WithScheduler(s Scheduler) Option {
	return func(m *Machine) { m.sched = s }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// Machine drives sessions through menu, playing, paused, won and lost.
// It is not safe for concurrent use; the tick driver owns it.
type Machine struct {
	tmpl   *Template
	cfg    config.MuncherConfig
	prefs  core.KeyValue
	sched  Scheduler
	logger *log.Logger

	state     State
	session   *Session
	highScore int
	lastToken uint64
	events    []Event
}

// NewMachine creates a machine in the Menu state and reads the persisted
// high score. A missing or unreadable value counts as 0.
func NewMachine(tmpl *Template, cfg config.MuncherConfig, opts ...Option) *Machine {
	m := &Machine{
		tmpl:   tmpl,
		cfg:    cfg,
		logger: log.New(io.Discard),
		state:  StateMenu,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.highScore = m.loadHighScore()
	return m
}

func (m *Machine) loadHighScore() int {
	if m.prefs == nil {
		return 0
	}
	v, ok, err := m.prefs.GetInt(HighScoreKey)
	if err != nil {
		m.logger.Warn("high score unreadable, using 0", "err", err)
		return 0
	}
	if !ok || v < 0 {
		return 0
	}
	return v
}

// State returns the current lifecycle state.
func (m *Machine) State() State { return m.state }

// HighScore returns the best score known to the machine.
func (m *Machine) HighScore() int { return m.highScore }

// Session returns the active session, or nil in the Menu state.
func (m *Machine) Session() *Session { return m.session }

// Start begins a new session. Only valid from Menu.
func (m *Machine) Start(difficulty config.DifficultyPreset) error {
	if m.state != StateMenu {
		return fmt.Errorf("start from %s: %w", m.state, ErrBadTransition)
	}
	m.session = newSession(m.tmpl, m.cfg, difficulty)
	m.logger.Info("session started",
		"maze", m.tmpl.ID,
		"difficulty", difficulty.Label(),
		"collectibles", m.session.remaining,
	)
	m.setState(StatePlaying)
	return nil
}

// Restart drops the finished session and returns to Menu. Only valid from
// Won or Lost.
func (m *Machine) Restart() error {
	if !m.state.Terminal() {
		return fmt.Errorf("restart from %s: %w", m.state, ErrBadTransition)
	}
	m.cancelReset()
	m.session = nil
	m.setState(StateMenu)
	return nil
}

// SetIntent buffers a player heading. Ignored without a session.
func (m *Machine) SetIntent(d Direction) {
	if m.session == nil {
		return
	}
	m.session.player.SetIntent(d)
}

// Tick advances the session by one step when Playing and returns every
// event raised since the previous call. In any other state nothing moves.
func (m *Machine) Tick() []Event {
	if m.state == StatePlaying {
		m.step()
	}
	return m.Drain()
}

// Drain returns and clears pending events without ticking.
func (m *Machine) Drain() []Event {
	evs := m.events
	m.events = nil
	return evs
}

func (m *Machine) step() {
	s := m.session
	switch s.tick(m.emit) {
	case outcomeWon:
		m.finish(StateWon)
	case outcomeEncounter:
		m.encounter()
	}
}

func (m *Machine) encounter() {
	s := m.session
	lives := s.loseLife()
	m.logger.Debug("encounter", "lives", lives, "tick", s.ticks)
	m.emit(Event{Kind: EventEncounter, Lives: lives})
	m.emit(Event{Kind: EventLivesChanged, Lives: lives})

	if lives == 0 {
		m.cancelReset()
		m.finish(StateLost)
		return
	}

	m.cancelReset()
	m.lastToken++
	s.resetToken = m.lastToken
	m.setState(StatePaused)
	if m.sched != nil {
		m.sched.Schedule(s.resetToken, m.cfg.ResetDelay())
	}
}

// Resume ends the post-encounter pause. Tokens that are stale, cancelled
// or unknown are ignored and false is returned.
func (m *Machine) Resume(token uint64) bool {
	if m.state != StatePaused || m.session == nil || token == 0 || token != m.session.resetToken {
		m.logger.Debug("stale resume ignored", "token", token)
		return false
	}
	m.session.resetToken = 0
	m.setState(StatePlaying)
	return true
}

func (m *Machine) cancelReset() {
	if m.session == nil || m.session.resetToken == 0 {
		return
	}
	if m.sched != nil {
		m.sched.Cancel(m.session.resetToken)
	}
	m.session.resetToken = 0
}

// finish enters a terminal state and persists the score if it is a new best.
func (m *Machine) finish(state State) {
	final := m.session.score
	isNew := final > m.highScore
	if isNew {
		m.highScore = final
		if m.prefs != nil {
			// Another session on the same store may have set a better score
			// since this machine read it; the store decides.
			best, raised, err := m.prefs.RaiseInt(HighScoreKey, final)
			if err != nil {
				m.logger.Warn("high score not saved", "score", final, "err", err)
			} else {
				m.highScore, isNew = max(best, final), raised
			}
		}
	}

	kind := EventLost
	if state == StateWon {
		kind = EventWon
	}
	m.logger.Info("session finished", "result", state, "score", final, "high_score", m.highScore, "new_high", isNew)
	m.emit(Event{
		Kind:         kind,
		State:        state,
		Score:        final,
		HighScore:    m.highScore,
		NewHighScore: isNew,
	})
	m.setState(state)
}

func (m *Machine) setState(s State) {
	if m.state == s {
		return
	}
	m.logger.Debug("state", "from", m.state, "to", s)
	m.state = s
	m.emit(Event{Kind: EventStateChanged, State: s})
}

func (m *Machine) emit(e Event) {
	if e.Kind == EventScoreChanged {
		m.logger.Debug("consumed", "tile", e.Consumed, "at", e.At, "score", e.Score, "remaining", e.Remaining)
	}
	m.events = append(m.events, e)
}
