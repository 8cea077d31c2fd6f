package playback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(delays ...time.Duration) []Line {
	out := make([]Line, 0, len(delays))
	for _, d := range delays {
		out = append(out, Line{Delay: d, Prefix: DefaultPrefix, Segments: []Segment{{Role: RolePlain, Text: d.String()}}})
	}
	return out
}

func newEngine(t *testing.T, opts ...Option) (*Engine, *ManualClock) {
	t.Helper()
	clock := NewManualClock()
	engine, err := New(clock, opts...)
	require.NoError(t, err)
	return engine, clock
}

func TestDelaysAreAbsolute(t *testing.T) {
	engine, clock := newEngine(t)
	engine.Schedule(lines(200*time.Millisecond, 600*time.Millisecond, 200*time.Millisecond))

	clock.Advance(300 * time.Millisecond)
	assert.Equal(t, []bool{true, false, true}, engine.Snapshot())
	assert.Equal(t, 1, engine.Pending())
	assert.False(t, engine.Done())

	clock.Advance(300 * time.Millisecond)
	assert.Equal(t, []bool{true, true, true}, engine.Snapshot())
	assert.True(t, engine.Done())
}

func TestTeardownSuppressesLateReveals(t *testing.T) {
	engine, clock := newEngine(t)
	engine.Schedule(lines(200*time.Millisecond, 600*time.Millisecond, 200*time.Millisecond))

	engine.Teardown()
	clock.Advance(10 * time.Second)

	assert.Equal(t, []bool{false, false, false}, engine.Snapshot())
	assert.Equal(t, 0, clock.Pending())
	assert.True(t, engine.Done())
}

func TestRescheduleResetsFlags(t *testing.T) {
	var revealed []int
	engine, clock := newEngine(t, WithRevealHook(func(i int, _ Line) {
		revealed = append(revealed, i)
	}))

	script := lines(100*time.Millisecond, 500*time.Millisecond)
	first := engine.Schedule(script)
	clock.Advance(200 * time.Millisecond)
	require.True(t, engine.Visible(0))

	second := engine.Schedule(script)
	assert.NotEqual(t, first.Session(), second.Session())
	assert.Equal(t, []bool{false, false}, engine.Snapshot())

	// The first session's 500ms timer would land at 500ms; the new one lands at 700ms.
	clock.Advance(350 * time.Millisecond)
	assert.Equal(t, []bool{true, false}, engine.Snapshot())

	clock.Advance(200 * time.Millisecond)
	assert.Equal(t, []bool{true, true}, engine.Snapshot())
	assert.Equal(t, []int{0, 0, 1}, revealed)
}

func TestStaleHandleCancelIsNoop(t *testing.T) {
	engine, clock := newEngine(t)
	script := lines(100 * time.Millisecond)

	stale := engine.Schedule(script)
	engine.Schedule(script)
	stale.Cancel()

	clock.Advance(time.Second)
	assert.True(t, engine.Visible(0))
}

func TestHandleCancel(t *testing.T) {
	engine, clock := newEngine(t)
	handle := engine.Schedule(lines(100*time.Millisecond, 300*time.Millisecond))

	clock.Advance(150 * time.Millisecond)
	handle.Cancel()
	clock.Advance(time.Second)

	assert.Equal(t, []bool{true, false}, engine.Snapshot())
}

func TestScheduleAfterTeardown(t *testing.T) {
	engine, clock := newEngine(t)
	engine.Schedule(lines(100 * time.Millisecond))
	engine.Teardown()

	engine.Schedule(lines(100 * time.Millisecond))
	clock.Advance(100 * time.Millisecond)
	assert.True(t, engine.Visible(0))
}

func TestWithSpeed(t *testing.T) {
	engine, clock := newEngine(t, WithSpeed(4))
	engine.Schedule(lines(400*time.Millisecond, 800*time.Millisecond))

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, []bool{true, false}, engine.Snapshot())
	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, []bool{true, true}, engine.Snapshot())
}

func TestInvalidSpeed(t *testing.T) {
	for _, speed := range []float64{0, -1} {
		_, err := New(NewManualClock(), WithSpeed(speed))
		assert.ErrorIs(t, err, ErrInvalidSpeed)
	}
}

func TestNewRequiresClock(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestVisibleOutOfRange(t *testing.T) {
	engine, _ := newEngine(t)
	assert.False(t, engine.Visible(0))
	assert.False(t, engine.Visible(-1))
	assert.Empty(t, engine.Snapshot())
}

func TestManualClockOrdering(t *testing.T) {
	clock := NewManualClock()
	var order []string
	clock.AfterFunc(2*time.Second, func() { order = append(order, "b") })
	clock.AfterFunc(time.Second, func() { order = append(order, "a1") })
	clock.AfterFunc(time.Second, func() { order = append(order, "a2") })
	stopped := clock.AfterFunc(time.Second, func() { order = append(order, "never") })

	assert.True(t, stopped.Stop())
	assert.False(t, stopped.Stop())

	clock.Advance(3 * time.Second)
	assert.Equal(t, []string{"a1", "a2", "b"}, order)
	assert.Equal(t, 3*time.Second, clock.Now())
}

func TestLoopClockQueuesCallbacks(t *testing.T) {
	clock := NewLoopClock(4)
	defer clock.Close()

	engine, err := New(clock)
	require.NoError(t, err)
	engine.Schedule(lines(time.Millisecond, 2*time.Millisecond))

	deadline := time.After(2 * time.Second)
	for !engine.Done() {
		select {
		case fn := <-clock.C():
			fn()
		case <-deadline:
			t.Fatal("timed out waiting for reveals")
		}
	}
	assert.Equal(t, []bool{true, true}, engine.Snapshot())
}

func TestLineText(t *testing.T) {
	line := Line{Segments: []Segment{{Role: RoleMuted, Text: "? Team:"}, {Role: RolePlain, Text: " "}, {Role: RoleBright, Text: "core"}}}
	assert.Equal(t, "? Team: core", line.Text())
	assert.False(t, line.HasPrefix())
	assert.True(t, RoleEmphasis.Valid())
	assert.False(t, Role("loud").Valid())
}
