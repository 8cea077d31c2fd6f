// Package playback reveals scripted terminal lines on a timer.
package playback

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrInvalidSpeed is returned for a non-positive playback speed.
var ErrInvalidSpeed = errors.New("playback speed must be greater than 0")

// Option configures an Engine.
type Option func(*Engine) error

// WithRevealHook calls fn after each line turns visible.
func WithRevealHook(fn func(index int, line Line)) Option {
	return func(e *Engine) error {
		e.hook = fn
		return nil
	}
}

// WithSpeed divides every delay by factor.
func WithSpeed(factor float64) Option {
	return func(e *Engine) error {
		if factor <= 0 {
			return fmt.Errorf("%w: %v", ErrInvalidSpeed, factor)
		}
		e.speed = factor
		return nil
	}
}

// WithLogger sets the engine logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) error {
		e.logger = logger
		return nil
	}
}

// Engine owns the reveal state of one scripted session at a time.
//
// An Engine is not safe for concurrent use. All calls, including timer
// callbacks, must happen on one goroutine; LoopClock and ManualClock both
// guarantee that for callbacks.
type Engine struct {
	clock  Clock
	speed  float64
	hook   func(int, Line)
	logger zerolog.Logger

	session  string
	lines    []Line
	revealed []bool
	timers   []Timer
	pending  int
	torndown bool
}

// Handle refers to one scheduled session.
type Handle struct {
	engine  *Engine
	session string
}

// New creates an engine driven by clock.
func New(clock Clock, opts ...Option) (*Engine, error) {
	if clock == nil {
		return nil, errors.New("playback clock is required")
	}
	e := &Engine{
		clock:  clock,
		speed:  1,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Schedule starts a new session over lines. Every flag is reset and any
// timers from the previous session are cancelled first. Each delay is
// measured from now, independent of the other lines.
func (e *Engine) Schedule(lines []Line) *Handle {
	e.stopTimers()

	e.session = uuid.NewString()
	e.torndown = false
	e.lines = append([]Line(nil), lines...)
	e.revealed = make([]bool, len(lines))
	e.timers = make([]Timer, len(lines))
	e.pending = len(lines)

	session := e.session
	for i, line := range e.lines {
		idx := i
		e.timers[i] = e.clock.AfterFunc(e.scaled(line.Delay), func() {
			e.reveal(session, idx)
		})
	}

	e.logger.Debug().
		Str("session", session).
		Int("lines", len(lines)).
		Float64("speed", e.speed).
		Msg("playback scheduled")

	return &Handle{engine: e, session: session}
}

// Teardown cancels every pending timer. Nothing is revealed afterwards
// until Schedule is called again.
func (e *Engine) Teardown() {
	if e.torndown {
		return
	}
	e.stopTimers()
	e.torndown = true
	e.pending = 0
	e.logger.Debug().Str("session", e.session).Msg("playback torn down")
}

// Visible reports whether line i has been revealed.
func (e *Engine) Visible(i int) bool {
	if i < 0 || i >= len(e.revealed) {
		return false
	}
	return e.revealed[i]
}

// Snapshot copies the reveal flags.
func (e *Engine) Snapshot() []bool {
	return append([]bool(nil), e.revealed...)
}

// Lines returns the scheduled script.
func (e *Engine) Lines() []Line {
	return e.lines
}

// Pending returns how many reveals are still armed.
func (e *Engine) Pending() int {
	return e.pending
}

// Done reports whether the current session has nothing left to reveal.
func (e *Engine) Done() bool {
	return e.pending == 0
}

// Session returns the current session id, empty before the first Schedule.
func (e *Engine) Session() string {
	return e.session
}

// Speed returns the delay divisor.
func (e *Engine) Speed() float64 {
	return e.speed
}

// Cancel tears down the handle's session if it is still current.
func (h *Handle) Cancel() {
	if h == nil || h.engine == nil || h.engine.session != h.session {
		return
	}
	h.engine.Teardown()
}

// Session returns the id of the session this handle refers to.
func (h *Handle) Session() string {
	return h.session
}

func (e *Engine) reveal(session string, i int) {
	if e.torndown || session != e.session {
		return
	}
	if e.revealed[i] {
		return
	}
	e.revealed[i] = true
	e.timers[i] = nil
	e.pending--

	e.logger.Debug().Str("session", session).Int("line", i).Msg("line revealed")
	if e.hook != nil {
		e.hook(i, e.lines[i])
	}
}

func (e *Engine) stopTimers() {
	for i, t := range e.timers {
		if t != nil {
			t.Stop()
		}
		e.timers[i] = nil
	}
}

func (e *Engine) scaled(d time.Duration) time.Duration {
	if e.speed == 1 {
		return d
	}
	return time.Duration(float64(d) / e.speed)
}
